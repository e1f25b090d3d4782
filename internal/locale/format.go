// Package locale renders appointment dates for human-facing messages.
package locale

import (
	"fmt"
	"strings"
	"time"
)

const (
	English    = "en"
	Portuguese = "pt"
)

var ptMonths = [...]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

// Normalize maps a locale tag ("pt-BR", "EN") to a supported locale.
func Normalize(tag string) string {
	tag = strings.ToLower(strings.TrimSpace(tag))
	if strings.HasPrefix(tag, Portuguese) {
		return Portuguese
	}
	return English
}

// FormatAppointmentDate renders t in loc, e.g. "day 05 of October, at 10:00h".
func FormatAppointmentDate(t time.Time, lang string, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	t = t.In(loc)

	switch Normalize(lang) {
	case Portuguese:
		return fmt.Sprintf(
			"dia %02d de %s, às %d:%02dh",
			t.Day(), ptMonths[t.Month()-1], t.Hour(), t.Minute(),
		)
	default:
		return fmt.Sprintf(
			"day %02d of %s, at %d:%02dh",
			t.Day(), t.Month().String(), t.Hour(), t.Minute(),
		)
	}
}

// NewAppointmentMessage is the in-app notification text sent to a provider.
func NewAppointmentMessage(requester string, date time.Time, lang string, loc *time.Location) string {
	formatted := FormatAppointmentDate(date, lang, loc)
	if Normalize(lang) == Portuguese {
		return fmt.Sprintf("Novo agendamento de %s para %s", requester, formatted)
	}
	return fmt.Sprintf("New appointment from %s for %s", requester, formatted)
}

func CancellationSubject(lang string) string {
	if Normalize(lang) == Portuguese {
		return "Agendamento cancelado"
	}
	return "Appointment canceled"
}
