package appointment

import (
	"time"

	"github.com/BruksfildServices01/barbertime/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Cancel(ap *models.Appointment, now time.Time) bool {
	if !CanCancel(Status(ap.Status)) {
		return false
	}

	ap.Status = string(StatusCancelled)
	ap.CancelledAt = &now
	return true
}

func Confirm(ap *models.Appointment) bool {
	if !CanConfirm(Status(ap.Status)) {
		return false
	}

	ap.Status = string(StatusConfirmed)
	return true
}
