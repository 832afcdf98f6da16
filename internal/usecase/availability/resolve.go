package availability

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	domain "github.com/BruksfildServices01/barbertime/internal/domain/appointment"
	"github.com/BruksfildServices01/barbertime/internal/domain/schedule"
)

// Cache é a camada opcional de leitura (redis). Miss ou erro caem na
// resolução direta.
type Cache interface {
	Get(ctx context.Context, barberID, date string) ([]domain.SlotView, bool)
	Set(ctx context.Context, barberID, date string, slots []domain.SlotView)
}

type Resolve struct {
	barbers domain.BarberStore
	repo    domain.Repository
	cache   Cache
}

func NewResolve(
	barbers domain.BarberStore,
	repo domain.Repository,
	cache Cache,
) *Resolve {
	return &Resolve{barbers: barbers, repo: repo, cache: cache}
}

// Execute classifica cada horário candidato do dia como available, booked
// ou break. Dia fechado devolve lista vazia; falha de repositório devolve
// ErrUnavailable - os dois nunca se confundem.
func (uc *Resolve) Execute(
	ctx context.Context,
	barberID string,
	date string,
) ([]domain.SlotView, error) {

	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", date, err)
	}

	if uc.cache != nil {
		if slots, ok := uc.cache.Get(ctx, barberID, date); ok {
			return slots, nil
		}
	}

	ws, err := uc.barbers.ScheduleFor(ctx, barberID)
	if err != nil {
		var schedErr schedule.ScheduleError
		if errors.As(err, &schedErr) {
			// Configuração incompleta é tratada como dia fechado, mas fica
			// registrada: indica cadastro mal terminado, não ausência real
			// de expediente.
			log.Printf("schedule defect for barber %s: %v", barberID, schedErr)
			return []domain.SlotView{}, nil
		}
		return nil, err
	}

	candidates := schedule.Slots(ws, day)
	if len(candidates) == 0 {
		return []domain.SlotView{}, nil
	}

	// Uma única consulta para o dia inteiro - nunca uma por slot.
	appointments, err := uc.repo.ListForDay(ctx, barberID, date)
	if err != nil {
		return nil, err
	}

	occupied := make(map[string]bool, len(appointments))
	for _, ap := range appointments {
		if domain.IsLive(domain.Status(ap.Status)) {
			occupied[ap.Time] = true
		}
	}

	slots := make([]domain.SlotView, 0, len(candidates))
	for _, hm := range candidates {
		view := domain.SlotView{Time: hm, Status: domain.SlotAvailable}

		// A pausa vence mesmo quando existe agendamento no horário -
		// compatibilidade com agendamentos criados antes da pausa ser
		// configurada.
		switch {
		case ws.IsBreakActiveAt(hm):
			view.Status = domain.SlotBreak
		case occupied[hm]:
			view.Status = domain.SlotBooked
		}

		slots = append(slots, view)
	}

	if uc.cache != nil {
		uc.cache.Set(ctx, barberID, date, slots)
	}

	return slots, nil
}
