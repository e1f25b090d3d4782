package appointment

import (
	"errors"
	"net/http"

	"github.com/BruksfildServices01/appointment-scheduler/internal/httperr"
)

var (
	ErrValidation = httperr.NewBusiness(
		http.StatusBadRequest, "validation_fails", "Validation fails")
	ErrSelfBooking = httperr.NewBusiness(
		http.StatusBadRequest, "self_booking", "You can not create appointments with yourself")
	ErrNotAProvider = httperr.NewBusiness(
		http.StatusUnauthorized, "not_a_provider", "You can only create appointments with providers")
	ErrPastDate = httperr.NewBusiness(
		http.StatusBadRequest, "past_date", "Past dates are not allowed")
	ErrSlotUnavailable = httperr.NewBusiness(
		http.StatusBadRequest, "slot_unavailable", "Date not available")

	ErrNotFound = httperr.NewBusiness(
		http.StatusNotFound, "appointment_not_found", "Appointment not found")
	ErrUnauthorized = httperr.NewBusiness(
		http.StatusUnauthorized, "unauthorized", "You don't have permission to cancel this appointment")
	ErrCancellationWindow = httperr.NewBusiness(
		http.StatusUnauthorized, "cancellation_window", "You can only cancel appointments 2 hours in advance")
	ErrAlreadyCanceled = httperr.NewBusiness(
		http.StatusBadRequest, "already_canceled", "Appointment already canceled")

	ErrRequesterNotProvider = httperr.NewBusiness(
		http.StatusUnauthorized, "user_not_provider", "User is not a provider")
	ErrProviderNotFound = httperr.NewBusiness(
		http.StatusNotFound, "provider_not_found", "Provider not found")
)

// ErrNotificationDispatch marks side-effect failures. It is logged, never
// returned to a caller of Book or Cancel.
var ErrNotificationDispatch = errors.New("notification dispatch failed")
