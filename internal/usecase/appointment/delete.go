package appointment

import (
	"context"

	"github.com/BruksfildServices01/barbertime/internal/audit"
	domain "github.com/BruksfildServices01/barbertime/internal/domain/appointment"
)

// ======================================================
// DELETE (hard) - remoção física, usada pelo "liberar
// este horário" do painel. Diferente do cancel: não fica
// registro, o slot reabre na hora.
// ======================================================

type Delete struct {
	repo  domain.Repository
	cache Invalidator
	audit *audit.Dispatcher
}

func NewDelete(
	repo domain.Repository,
	cache Invalidator,
	audit *audit.Dispatcher,
) *Delete {
	return &Delete{repo: repo, cache: cache, audit: audit}
}

// Execute é idempotente: ausente ou de outro barbeiro devolve false.
func (uc *Delete) Execute(
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

	removed, err := uc.repo.Delete(ctx, appointmentID)
	if err != nil {
		return false, err
	}
	if !removed {
		return false, nil
	}

	if uc.cache != nil {
		uc.cache.Invalidate(ctx, barberID, ap.Date)
	}

	if uc.audit != nil {
		uc.audit.Dispatch(audit.Event{
			BarberID: barberID,
			Action:   "appointment_deleted",
			Entity:   "appointment",
			EntityID: &appointmentID,
		})
	}

	return true, nil
}
