package mail

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

type CancellationData struct {
	Locale   string
	Provider string
	User     string
	Date     string
}

// RenderCancellation renders the cancellation notice for the provider.
func RenderCancellation(data CancellationData) (string, error) {
	name := "cancellation_en.html"
	if data.Locale == "pt" {
		name = "cancellation_pt.html"
	}

	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return buf.String(), nil
}
