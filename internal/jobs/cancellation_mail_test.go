package jobs

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/appointment-scheduler/internal/mail"
	"github.com/BruksfildServices01/appointment-scheduler/internal/queue"
)

type mockSender struct {
	mock.Mock
}

func (m *mockSender) Send(ctx context.Context, msg mail.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func snapshotJob(t *testing.T) queue.Job {
	t.Helper()

	job, err := queue.NewJob(CancellationMailKey, CancellationSnapshot{
		AppointmentID: 9,
		Date:          time.Date(2099, 1, 1, 9, 0, 0, 0, time.UTC),
		Provider:      Contact{Name: "Paula", Email: "paula@example.com"},
		User:          Contact{Name: "Alice"},
	})
	require.NoError(t, err)
	return job
}

func TestCancellationMailSends(t *testing.T) {
	sender := new(mockSender)
	sender.On("Send", mock.Anything, mock.MatchedBy(func(msg mail.Message) bool {
		return msg.To == "Paula <paula@example.com>" &&
			msg.Subject == "Appointment canceled" &&
			containsAll(msg.Body, "Paula", "Alice", "day 01 of January, at 9:00h")
	})).Return(nil).Once()

	h := NewCancellationMail(sender, "en", time.UTC)

	require.NoError(t, h.Handle(context.Background(), snapshotJob(t)))
	sender.AssertExpectations(t)
}

func TestCancellationMailPortuguese(t *testing.T) {
	sender := new(mockSender)
	sender.On("Send", mock.Anything, mock.MatchedBy(func(msg mail.Message) bool {
		return msg.Subject == "Agendamento cancelado" &&
			containsAll(msg.Body, "dia 01 de janeiro, às 9:00h")
	})).Return(nil).Once()

	h := NewCancellationMail(sender, "pt-BR", time.UTC)

	require.NoError(t, h.Handle(context.Background(), snapshotJob(t)))
	sender.AssertExpectations(t)
}

func TestCancellationMailSendFailure(t *testing.T) {
	sender := new(mockSender)
	sender.On("Send", mock.Anything, mock.Anything).Return(errors.New("smtp down"))

	h := NewCancellationMail(sender, "en", time.UTC)

	err := h.Handle(context.Background(), snapshotJob(t))
	assert.ErrorContains(t, err, "smtp down")
}

func TestCancellationMailBadPayload(t *testing.T) {
	sender := new(mockSender)
	h := NewCancellationMail(sender, "en", time.UTC)

	err := h.Handle(context.Background(), queue.Job{Type: CancellationMailKey, Payload: []byte(`"nope"`)})

	assert.Error(t, err)
	sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestCancellationMailThroughRegistry(t *testing.T) {
	sender := new(mockSender)
	sender.On("Send", mock.Anything, mock.Anything).Return(errors.New("smtp down"))

	registry := queue.NewRegistry(NewCancellationMail(sender, "en", time.UTC))

	assert.NotPanics(t, func() {
		registry.Process(context.Background(), snapshotJob(t))
	})
	sender.AssertNumberOfCalls(t, "Send", 1)
}

func containsAll(s string, parts ...string) bool {
	for _, p := range parts {
		if !strings.Contains(s, p) {
			return false
		}
	}
	return true
}
