package booking

import (
	"context"
	"strings"
	"time"

	"github.com/BruksfildServices01/barbertime/internal/audit"
	domain "github.com/BruksfildServices01/barbertime/internal/domain/appointment"
	"github.com/BruksfildServices01/barbertime/internal/domain/schedule"
	"github.com/BruksfildServices01/barbertime/internal/httperr"
	"github.com/BruksfildServices01/barbertime/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type Input struct {
	BarberID string

	Date string // YYYY-MM-DD
	Time string // HH:MM, alinhado à granularidade de 30min

	ClientName  string
	ClientPhone string

	Service string

	// Reserva do próprio barbeiro entra como scheduled; do cliente,
	// confirmed.
	BarberInitiated bool
}

type Invalidator interface {
	Invalidate(ctx context.Context, barberID, date string)
}

// ======================================================
// USE CASE
// ======================================================

type Book struct {
	barbers domain.BarberStore
	repo    domain.Repository
	cache   Invalidator
	audit   *audit.Dispatcher
}

func NewBook(
	barbers domain.BarberStore,
	repo domain.Repository,
	cache Invalidator,
	audit *audit.Dispatcher,
) *Book {
	return &Book{
		barbers: barbers,
		repo:    repo,
		cache:   cache,
		audit:   audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *Book) Execute(
	ctx context.Context,
	in Input,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// Validação - antes de qualquer I/O
	// --------------------------------------------------
	name := strings.TrimSpace(in.ClientName)
	if name == "" {
		return nil, httperr.ErrBusiness("invalid_client_name")
	}

	day, err := time.Parse("2006-01-02", in.Date)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}
	if _, err := schedule.ParseHM(in.Time); err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	// --------------------------------------------------
	// Barbeiro + serviço (snapshot de nome e preço)
	// --------------------------------------------------
	barber, err := uc.barbers.GetByBarberID(ctx, in.BarberID)
	if err != nil {
		return nil, err
	}
	if barber == nil {
		return nil, httperr.ErrBusiness("barber_not_found")
	}

	serviceName, price, err := uc.resolveService(ctx, barber, in.Service)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Agenda: dia aberto, horário alinhado e fora da pausa
	// --------------------------------------------------
	ws, err := uc.barbers.ScheduleFor(ctx, in.BarberID)
	if err != nil {
		return nil, err
	}

	if !ws.IsOpenOn(day.Weekday()) {
		return nil, httperr.ErrBusiness("day_closed")
	}

	if !slotExists(ws, day, in.Time) {
		return nil, httperr.ErrBusiness("slot_unavailable")
	}

	if ws.IsBreakActiveAt(in.Time) {
		return nil, httperr.ErrBusiness("slot_unavailable")
	}

	// --------------------------------------------------
	// Escrita condicional - a checagem de conflito e o insert são a
	// MESMA operação. Reler a disponibilidade aqui só estreitaria a
	// janela da corrida; o índice parcial a elimina: entre dois
	// escritores concorrentes, exatamente um cria.
	// --------------------------------------------------
	status := domain.StatusConfirmed
	if in.BarberInitiated {
		status = domain.StatusScheduled
	}

	ap := &models.Appointment{
		BarberID:    in.BarberID,
		Date:        in.Date,
		Time:        in.Time,
		ClientName:  name,
		ClientPhone: strings.TrimSpace(in.ClientPhone),
		Service:     serviceName,
		Price:       price,
		Status:      string(status),
	}

	created, err := uc.repo.CreateIfAbsent(ctx, ap)
	if err != nil {
		return nil, err
	}
	if !created {
		return nil, httperr.ErrBusiness("slot_unavailable")
	}

	if uc.cache != nil {
		uc.cache.Invalidate(ctx, in.BarberID, in.Date)
	}

	if uc.audit != nil {
		uc.audit.Dispatch(audit.Event{
			BarberID: in.BarberID,
			Action:   "appointment_created",
			Entity:   "appointment",
			EntityID: &ap.ID,
		})
	}

	return ap, nil
}

// resolveService busca o Service nomeado do barbeiro; sem correspondência,
// cai nos preços legados por tipo (corte/barba/completo/barbear).
func (uc *Book) resolveService(
	ctx context.Context,
	barber *models.Barber,
	name string,
) (string, string, error) {

	name = strings.TrimSpace(name)
	if name == "" {
		return "", "", httperr.ErrBusiness("service_not_found")
	}

	svc, err := uc.barbers.FindServiceByName(ctx, barber.BarberID, name)
	if err != nil {
		return "", "", err
	}
	if svc != nil {
		return svc.Name, svc.Price, nil
	}

	switch strings.ToLower(name) {
	case "corte", "haircut":
		return name, barber.PriceHaircut, nil
	case "barba", "beard":
		return name, barber.PriceBeard, nil
	case "completo", "complete":
		return name, barber.PriceComplete, nil
	case "barbear", "shave":
		return name, barber.PriceShave, nil
	}

	return "", "", httperr.ErrBusiness("service_not_found")
}

func slotExists(ws schedule.WorkingSchedule, day time.Time, hm string) bool {
	for _, slot := range schedule.Slots(ws, day) {
		if slot == hm {
			return true
		}
	}
	return false
}
