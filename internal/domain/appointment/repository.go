package appointment

import (
	"context"

	"github.com/BruksfildServices01/barbertime/internal/domain/schedule"
	"github.com/BruksfildServices01/barbertime/internal/models"
)

type Repository interface {
	// -------- Appointment (leitura) --------
	ListForDay(
		ctx context.Context,
		barberID string,
		date string,
	) ([]models.Appointment, error)

	Get(
		ctx context.Context,
		appointmentID uint,
	) (*models.Appointment, error)

	// -------- Appointment (escrita) --------

	// CreateIfAbsent insere o agendamento apenas se nenhum outro vivo
	// ocupa (barber_id, date, time). É a primitiva que impede reserva
	// dupla sob escrita concorrente; created=false quando outro escritor
	// chegou primeiro.
	CreateIfAbsent(
		ctx context.Context,
		ap *models.Appointment,
	) (created bool, err error)

	Update(
		ctx context.Context,
		ap *models.Appointment,
	) error

	Delete(
		ctx context.Context,
		appointmentID uint,
	) (bool, error)
}

type BarberStore interface {
	GetByBarberID(
		ctx context.Context,
		barberID string,
	) (*models.Barber, error)

	// UpdateByBarberID aplica merge parcial: campos ausentes no patch são
	// preservados, nunca zerados.
	UpdateByBarberID(
		ctx context.Context,
		barberID string,
		patch map[string]any,
	) (*models.Barber, error)

	// ScheduleFor monta o value object a partir das linhas WorkingDay e
	// das colunas de pausa do barbeiro.
	ScheduleFor(
		ctx context.Context,
		barberID string,
	) (schedule.WorkingSchedule, error)

	ReplaceSchedule(
		ctx context.Context,
		barberID string,
		ws schedule.WorkingSchedule,
	) error

	FindServiceByName(
		ctx context.Context,
		barberID string,
		name string,
	) (*models.Service, error)
}
