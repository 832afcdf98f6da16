package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/barbertime/internal/audit"
	domain "github.com/BruksfildServices01/barbertime/internal/domain/appointment"
)

type Invalidator interface {
	Invalidate(ctx context.Context, barberID, date string)
}

// ======================================================
// CANCEL (soft) - o registro fica para histórico, o slot
// volta a ficar disponível porque cancelled não é "vivo".
// ======================================================

type Cancel struct {
	repo  domain.Repository
	cache Invalidator
	audit *audit.Dispatcher
}

func NewCancel(
	repo domain.Repository,
	cache Invalidator,
	audit *audit.Dispatcher,
) *Cancel {
	return &Cancel{repo: repo, cache: cache, audit: audit}
}

// Execute é idempotente: agendamento ausente, de outro barbeiro ou já
// cancelado devolve false, nunca erro.
func (uc *Cancel) Execute(
	ctx context.Context,
	barberID string,
	appointmentID uint,
) (bool, error) {

	ap, err := uc.repo.Get(ctx, appointmentID)
	if err != nil {
		return false, err
	}
	if ap == nil || ap.BarberID != barberID {
		return false, nil
	}

	if !domain.Cancel(ap, time.Now()) {
		return false, nil
	}

	if err := uc.repo.Update(ctx, ap); err != nil {
		return false, err
	}

	if uc.cache != nil {
		uc.cache.Invalidate(ctx, barberID, ap.Date)
	}

	if uc.audit != nil {
		uc.audit.Dispatch(audit.Event{
			BarberID: barberID,
			Action:   "appointment_cancelled",
			Entity:   "appointment",
			EntityID: &ap.ID,
		})
	}

	return true, nil
}
