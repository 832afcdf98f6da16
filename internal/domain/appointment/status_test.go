package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/barbertime/internal/models"
)

func TestIsLive(t *testing.T) {
	assert.True(t, IsLive(StatusScheduled))
	assert.True(t, IsLive(StatusConfirmed))
	assert.False(t, IsLive(StatusCancelled))
}

func TestCancelAction(t *testing.T) {
	now := time.Now()

	ap := &models.Appointment{Status: string(StatusConfirmed)}
	assert.True(t, Cancel(ap, now))
	assert.Equal(t, string(StatusCancelled), ap.Status)
	assert.Equal(t, &now, ap.CancelledAt)

	// Já cancelado: nada a fazer.
	assert.False(t, Cancel(ap, now))
}

func TestConfirmAction(t *testing.T) {
	ap := &models.Appointment{Status: string(StatusScheduled)}
	assert.True(t, Confirm(ap))
	assert.Equal(t, string(StatusConfirmed), ap.Status)

	assert.False(t, Confirm(ap))

	cancelled := &models.Appointment{Status: string(StatusCancelled)}
	assert.False(t, Confirm(cancelled))
}
