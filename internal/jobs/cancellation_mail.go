package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/BruksfildServices01/appointment-scheduler/internal/locale"
	"github.com/BruksfildServices01/appointment-scheduler/internal/mail"
	"github.com/BruksfildServices01/appointment-scheduler/internal/queue"
)

const CancellationMailKey = "CancellationMail"

type Contact struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

// CancellationSnapshot carries everything the job needs. The handler does
// no lookups of its own.
type CancellationSnapshot struct {
	AppointmentID uint      `json:"appointment_id"`
	Date          time.Time `json:"date"`
	CanceledAt    time.Time `json:"canceled_at"`
	Provider      Contact   `json:"provider"`
	User          Contact   `json:"user"`
}

type CancellationMail struct {
	sender mail.Sender
	lang   string
	loc    *time.Location
}

func NewCancellationMail(sender mail.Sender, lang string, loc *time.Location) *CancellationMail {
	if loc == nil {
		loc = time.UTC
	}
	return &CancellationMail{
		sender: sender,
		lang:   locale.Normalize(lang),
		loc:    loc,
	}
}

func (h *CancellationMail) Key() string {
	return CancellationMailKey
}

func (h *CancellationMail) Handle(ctx context.Context, job queue.Job) error {
	var snap CancellationSnapshot
	if err := json.Unmarshal(job.Payload, &snap); err != nil {
		return fmt.Errorf("decode cancellation snapshot: %w", err)
	}
	if snap.Provider.Email == "" {
		return fmt.Errorf("appointment %d: provider has no email", snap.AppointmentID)
	}

	body, err := mail.RenderCancellation(mail.CancellationData{
		Locale:   h.lang,
		Provider: snap.Provider.Name,
		User:     snap.User.Name,
		Date:     locale.FormatAppointmentDate(snap.Date, h.lang, h.loc),
	})
	if err != nil {
		return err
	}

	if err := h.sender.Send(ctx, mail.Message{
		To:      mail.Address(snap.Provider.Name, snap.Provider.Email),
		Subject: locale.CancellationSubject(h.lang),
		Body:    body,
	}); err != nil {
		return fmt.Errorf("appointment %d: %w", snap.AppointmentID, err)
	}

	log.Info().
		Uint("appointment_id", snap.AppointmentID).
		Msg("cancellation mail sent")
	return nil
}

var _ queue.Handler = (*CancellationMail)(nil)
