package appointment

import (
	"context"

	"github.com/BruksfildServices01/barbertime/internal/audit"
	domain "github.com/BruksfildServices01/barbertime/internal/domain/appointment"
)

// ======================================================
// CONFIRM - scheduled → confirmed (fluxo do barbeiro)
// ======================================================

type Confirm struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewConfirm(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *Confirm {
	return &Confirm{repo: repo, audit: audit}
}

func (uc *Confirm) Execute(
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

	if !domain.Confirm(ap) {
		return false, nil
	}

	if err := uc.repo.Update(ctx, ap); err != nil {
		return false, err
	}

	if uc.audit != nil {
		uc.audit.Dispatch(audit.Event{
			BarberID: barberID,
			Action:   "appointment_confirmed",
			Entity:   "appointment",
			EntityID: &ap.ID,
		})
	}

	return true, nil
}
