package appointment

import (
	"context"
	"sort"

	domain "github.com/BruksfildServices01/barbertime/internal/domain/appointment"
	"github.com/BruksfildServices01/barbertime/internal/models"
)

// ======================================================
// LIST BY DATE - painel do barbeiro
// ======================================================

type ListByDate struct {
	repo domain.Repository
}

func NewListByDate(repo domain.Repository) *ListByDate {
	return &ListByDate{repo: repo}
}

// Execute lista o dia inteiro, cancelados incluídos (histórico). A ordem do
// repositório não é garantida, então ordenamos por horário aqui.
func (uc *ListByDate) Execute(
	ctx context.Context,
	barberID string,
	date string,
) ([]models.Appointment, error) {

	apps, err := uc.repo.ListForDay(ctx, barberID, date)
	if err != nil {
		return nil, err
	}

	sort.Slice(apps, func(i, j int) bool {
		return apps[i].Time < apps[j].Time
	})

	return apps, nil
}
