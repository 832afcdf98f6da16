package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/barbertime/internal/domain/appointment"
	"github.com/BruksfildServices01/barbertime/internal/models"
)

// ----- fakes -----

type repoFake struct {
	items  map[uint]models.Appointment
	getErr error
}

func newRepoFake(apps ...models.Appointment) *repoFake {
	r := &repoFake{items: map[uint]models.Appointment{}}
	for _, ap := range apps {
		r.items[ap.ID] = ap
	}
	return r
}

func (r *repoFake) ListForDay(ctx context.Context, barberID, date string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range r.items {
		if ap.BarberID == barberID && ap.Date == date {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (r *repoFake) Get(ctx context.Context, id uint) (*models.Appointment, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	ap, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return &ap, nil
}

func (r *repoFake) CreateIfAbsent(ctx context.Context, ap *models.Appointment) (bool, error) {
	return false, nil
}

func (r *repoFake) Update(ctx context.Context, ap *models.Appointment) error {
	r.items[ap.ID] = *ap
	return nil
}

func (r *repoFake) Delete(ctx context.Context, id uint) (bool, error) {
	if _, ok := r.items[id]; !ok {
		return false, nil
	}
	delete(r.items, id)
	return true, nil
}

var _ domain.Repository = (*repoFake)(nil)

type invalidatorFake struct {
	calls []string
}

func (i *invalidatorFake) Invalidate(ctx context.Context, barberID, date string) {
	i.calls = append(i.calls, barberID+"|"+date)
}

// ----- helpers -----

const barberID = "b-1"

func liveAppointment(id uint) models.Appointment {
	return models.Appointment{
		ID:       id,
		BarberID: barberID,
		Date:     "2025-01-06",
		Time:     "09:00",
		Status:   "confirmed",
	}
}

// ----- tests -----

func TestCancel(t *testing.T) {
	repo := newRepoFake(liveAppointment(1))
	inv := &invalidatorFake{}
	uc := NewCancel(repo, inv, nil)

	ok, err := uc.Execute(context.Background(), barberID, 1)
	require.NoError(t, err)
	assert.True(t, ok)

	stored := repo.items[1]
	assert.Equal(t, "cancelled", stored.Status)
	require.NotNil(t, stored.CancelledAt)
	assert.Equal(t, []string{barberID + "|2025-01-06"}, inv.calls)
}

func TestCancel_Idempotent(t *testing.T) {
	repo := newRepoFake(liveAppointment(1))
	uc := NewCancel(repo, nil, nil)

	ok, err := uc.Execute(context.Background(), barberID, 1)
	require.NoError(t, err)
	require.True(t, ok)

	// Cancelar de novo: no-op, nunca erro.
	ok, err = uc.Execute(context.Background(), barberID, 1)
	require.NoError(t, err)
	assert.False(t, ok)

	// Cancelar o que não existe também.
	ok, err = uc.Execute(context.Background(), barberID, 99)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCancel_OtherBarber(t *testing.T) {
	repo := newRepoFake(liveAppointment(1))
	uc := NewCancel(repo, nil, nil)

	ok, err := uc.Execute(context.Background(), "intruso", 1)
	require.NoError(t, err)
	assert.False(t, ok)

	assert.Equal(t, "confirmed", repo.items[1].Status)
}

func TestDelete(t *testing.T) {
	repo := newRepoFake(liveAppointment(1))
	inv := &invalidatorFake{}
	uc := NewDelete(repo, inv, nil)

	ok, err := uc.Execute(context.Background(), barberID, 1)
	require.NoError(t, err)
	assert.True(t, ok)

	_, exists := repo.items[1]
	assert.False(t, exists)
	assert.Len(t, inv.calls, 1)
}

func TestDelete_Idempotent(t *testing.T) {
	repo := newRepoFake()
	uc := NewDelete(repo, nil, nil)

	ok, err := uc.Execute(context.Background(), barberID, 42)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestConfirm(t *testing.T) {
	ap := liveAppointment(1)
	ap.Status = "scheduled"
	repo := newRepoFake(ap)

	uc := NewConfirm(repo, nil)

	ok, err := uc.Execute(context.Background(), barberID, 1)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "confirmed", repo.items[1].Status)

	// Confirmar o que já está confirmado: no-op.
	ok, err = uc.Execute(context.Background(), barberID, 1)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCancel_RepoFailure(t *testing.T) {
	repo := newRepoFake(liveAppointment(1))
	repo.getErr = domain.ErrUnavailable

	uc := NewCancel(repo, nil, nil)

	_, err := uc.Execute(context.Background(), barberID, 1)
	assert.ErrorIs(t, err, domain.ErrUnavailable)
}

func TestListByDate_SortsByTime(t *testing.T) {
	a := liveAppointment(1)
	a.Time = "11:00"
	b := liveAppointment(2)
	b.Time = "09:30"
	c := liveAppointment(3)
	c.Time = "10:00"
	c.Status = "cancelled"

	repo := newRepoFake(a, b, c)
	uc := NewListByDate(repo)

	apps, err := uc.Execute(context.Background(), barberID, "2025-01-06")
	require.NoError(t, err)
	require.Len(t, apps, 3)

	// Ordenado por horário; cancelados aparecem (histórico).
	assert.Equal(t, "09:30", apps[0].Time)
	assert.Equal(t, "10:00", apps[1].Time)
	assert.Equal(t, "11:00", apps[2].Time)
}
