package mail

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddress(t *testing.T) {
	assert.Equal(t, "Paula <paula@example.com>", Address("Paula", "paula@example.com"))
	assert.Equal(t, "paula@example.com", Address("", "paula@example.com"))
}

func TestEnvelopeAddress(t *testing.T) {
	assert.Equal(t, "paula@example.com", envelopeAddress("Paula <paula@example.com>"))
	assert.Equal(t, "paula@example.com", envelopeAddress(" paula@example.com "))
}

func TestRenderCancellation(t *testing.T) {
	body, err := RenderCancellation(CancellationData{
		Locale:   "en",
		Provider: "Paula",
		User:     "Alice <script>",
		Date:     "day 01 of January, at 9:00h",
	})
	require.NoError(t, err)

	assert.Contains(t, body, "Hello, Paula")
	assert.Contains(t, body, "day 01 of January, at 9:00h")
	assert.Contains(t, body, "Alice &lt;script&gt;")
}

func TestRenderCancellationPortuguese(t *testing.T) {
	body, err := RenderCancellation(CancellationData{Locale: "pt", Provider: "Paula", User: "Alice", Date: "dia 01"})
	require.NoError(t, err)

	assert.Contains(t, body, "Olá, Paula")
}

func TestCompose(t *testing.T) {
	s := NewSMTPSender(SMTPConfig{From: "Team <noreply@example.com>"})

	raw := string(s.compose(Message{To: "Paula <paula@example.com>", Subject: "Appointment canceled", Body: "<p>hi</p>"}))

	assert.True(t, strings.HasPrefix(raw, "From: Team <noreply@example.com>\r\n"))
	assert.Contains(t, raw, "Subject: Appointment canceled\r\n")
	assert.True(t, strings.HasSuffix(raw, "\r\n\r\n<p>hi</p>"))
}

func TestLogSender(t *testing.T) {
	assert.NoError(t, LogSender{}.Send(context.Background(), Message{To: "a@example.com"}))
}

func TestNewSender(t *testing.T) {
	assert.IsType(t, LogSender{}, NewSender(SMTPConfig{}))
	assert.IsType(t, &SMTPSender{}, NewSender(SMTPConfig{Host: "smtp.example.com", Port: 587}))
}
