package availability

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/barbertime/internal/domain/appointment"
	"github.com/BruksfildServices01/barbertime/internal/domain/schedule"
	"github.com/BruksfildServices01/barbertime/internal/models"
)

// ----- fakes -----

type storeFake struct {
	ws    schedule.WorkingSchedule
	wsErr error
}

func (s *storeFake) GetByBarberID(ctx context.Context, barberID string) (*models.Barber, error) {
	return &models.Barber{BarberID: barberID}, nil
}

func (s *storeFake) UpdateByBarberID(ctx context.Context, barberID string, patch map[string]any) (*models.Barber, error) {
	return nil, nil
}

func (s *storeFake) ScheduleFor(ctx context.Context, barberID string) (schedule.WorkingSchedule, error) {
	return s.ws, s.wsErr
}

func (s *storeFake) ReplaceSchedule(ctx context.Context, barberID string, ws schedule.WorkingSchedule) error {
	s.ws = ws
	return nil
}

func (s *storeFake) FindServiceByName(ctx context.Context, barberID, name string) (*models.Service, error) {
	return nil, nil
}

type repoFake struct {
	apps    []models.Appointment
	listErr error
}

func (r *repoFake) ListForDay(ctx context.Context, barberID, date string) ([]models.Appointment, error) {
	return r.apps, r.listErr
}

func (r *repoFake) Get(ctx context.Context, id uint) (*models.Appointment, error) {
	return nil, nil
}

func (r *repoFake) CreateIfAbsent(ctx context.Context, ap *models.Appointment) (bool, error) {
	return false, nil
}

func (r *repoFake) Update(ctx context.Context, ap *models.Appointment) error { return nil }

func (r *repoFake) Delete(ctx context.Context, id uint) (bool, error) { return false, nil }

type cacheFake struct {
	stored map[string][]domain.SlotView
	hits   int
}

func newCacheFake() *cacheFake {
	return &cacheFake{stored: map[string][]domain.SlotView{}}
}

func (c *cacheFake) Get(ctx context.Context, barberID, date string) ([]domain.SlotView, bool) {
	slots, ok := c.stored[barberID+"|"+date]
	if ok {
		c.hits++
	}
	return slots, ok
}

func (c *cacheFake) Set(ctx context.Context, barberID, date string, slots []domain.SlotView) {
	c.stored[barberID+"|"+date] = slots
}

// ----- tests -----

const (
	barberID = "b-1"
	mondayTS = "2025-01-06"
	sundayTS = "2025-01-05"
)

func statusAt(slots []domain.SlotView, hm string) domain.SlotStatus {
	for _, s := range slots {
		if s.Time == hm {
			return s.Status
		}
	}
	return ""
}

func TestResolve_Classification(t *testing.T) {
	store := &storeFake{ws: schedule.Default()}
	repo := &repoFake{apps: []models.Appointment{
		{BarberID: barberID, Date: mondayTS, Time: "10:00", Status: "confirmed"},
		{BarberID: barberID, Date: mondayTS, Time: "10:30", Status: "cancelled"},
		{BarberID: barberID, Date: mondayTS, Time: "11:00", Status: "scheduled"},
	}}

	uc := NewResolve(store, repo, nil)

	slots, err := uc.Execute(context.Background(), barberID, mondayTS)
	require.NoError(t, err)

	assert.Equal(t, domain.SlotBooked, statusAt(slots, "10:00"))
	// Cancelado não ocupa o horário.
	assert.Equal(t, domain.SlotAvailable, statusAt(slots, "10:30"))
	assert.Equal(t, domain.SlotBooked, statusAt(slots, "11:00"))
	assert.Equal(t, domain.SlotAvailable, statusAt(slots, "11:30"))
	assert.Equal(t, domain.SlotBreak, statusAt(slots, "14:00"))
}

func TestResolve_BreakWinsOverAppointment(t *testing.T) {
	store := &storeFake{ws: schedule.Default()}
	// Agendamento criado antes da pausa ser configurada: a pausa vence.
	repo := &repoFake{apps: []models.Appointment{
		{BarberID: barberID, Date: mondayTS, Time: "14:00", Status: "confirmed"},
	}}

	uc := NewResolve(store, repo, nil)

	slots, err := uc.Execute(context.Background(), barberID, mondayTS)
	require.NoError(t, err)

	assert.Equal(t, domain.SlotBreak, statusAt(slots, "14:00"))
}

func TestResolve_ClosedDay(t *testing.T) {
	uc := NewResolve(&storeFake{ws: schedule.Default()}, &repoFake{}, nil)

	slots, err := uc.Execute(context.Background(), barberID, sundayTS)
	require.NoError(t, err)

	assert.Empty(t, slots)
}

func TestResolve_RepoFailureIsNotEmptyResult(t *testing.T) {
	store := &storeFake{ws: schedule.Default()}
	repo := &repoFake{listErr: domain.ErrUnavailable}

	uc := NewResolve(store, repo, nil)

	slots, err := uc.Execute(context.Background(), barberID, mondayTS)

	// Indisponibilidade transitória nunca vira "sem horários".
	require.ErrorIs(t, err, domain.ErrUnavailable)
	assert.Nil(t, slots)
}

func TestResolve_ScheduleDefectReadsAsClosed(t *testing.T) {
	store := &storeFake{wsErr: schedule.ScheduleError{Reason: "barber not found"}}

	uc := NewResolve(store, &repoFake{}, nil)

	slots, err := uc.Execute(context.Background(), barberID, mondayTS)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestResolve_InvalidDate(t *testing.T) {
	uc := NewResolve(&storeFake{ws: schedule.Default()}, &repoFake{}, nil)

	_, err := uc.Execute(context.Background(), barberID, "06/01/2025")
	assert.Error(t, err)
}

func TestResolve_CacheRoundTrip(t *testing.T) {
	store := &storeFake{ws: schedule.Default()}
	repo := &repoFake{}
	cache := newCacheFake()

	uc := NewResolve(store, repo, cache)

	first, err := uc.Execute(context.Background(), barberID, mondayTS)
	require.NoError(t, err)
	require.Equal(t, 0, cache.hits)

	second, err := uc.Execute(context.Background(), barberID, mondayTS)
	require.NoError(t, err)

	assert.Equal(t, 1, cache.hits)
	assert.Equal(t, first, second)
}
