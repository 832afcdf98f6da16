package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/barbertime/internal/domain/appointment"
	"github.com/BruksfildServices01/barbertime/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Leitura
// --------------------------------------------------

func (r *AppointmentGormRepository) ListForDay(
	ctx context.Context,
	barberID string,
	date string,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where("barber_id = ? AND date = ?", barberID, date).
		Order("time ASC").
		Find(&apps).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnavailable, err)
	}

	return apps, nil
}

func (r *AppointmentGormRepository) Get(
	ctx context.Context,
	appointmentID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	err := r.db.WithContext(ctx).First(&ap, appointmentID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnavailable, err)
	}

	return &ap, nil
}

// --------------------------------------------------
// Escrita
// --------------------------------------------------

// CreateIfAbsent se apoia no índice parcial idx_appointments_live_slot:
// ON CONFLICT ... DO NOTHING faz com que, entre dois escritores
// concorrentes do mesmo horário, exatamente um insira - o outro recebe
// created=false sem erro. Linhas canceladas não participam do índice,
// então um horário liberado por soft-cancel pode ser reservado de novo.
func (r *AppointmentGormRepository) CreateIfAbsent(
	ctx context.Context,
	ap *models.Appointment,
) (bool, error) {

	tx := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "barber_id"},
				{Name: "date"},
				{Name: "time"},
			},
			TargetWhere: clause.Where{
				Exprs: []clause.Expression{
					clause.Expr{SQL: "status <> 'cancelled'"},
				},
			},
			DoNothing: true,
		}).
		Create(ap)

	if tx.Error != nil {
		return false, fmt.Errorf("%w: %v", domain.ErrBookingFailed, tx.Error)
	}

	return tx.RowsAffected > 0, nil
}

func (r *AppointmentGormRepository) Update(
	ctx context.Context,
	ap *models.Appointment,
) error {
	if err := r.db.WithContext(ctx).Save(ap).Error; err != nil {
		return fmt.Errorf("%w: %v", domain.ErrBookingFailed, err)
	}
	return nil
}

func (r *AppointmentGormRepository) Delete(
	ctx context.Context,
	appointmentID uint,
) (bool, error) {

	tx := r.db.WithContext(ctx).Delete(&models.Appointment{}, appointmentID)
	if tx.Error != nil {
		return false, fmt.Errorf("%w: %v", domain.ErrBookingFailed, tx.Error)
	}

	return tx.RowsAffected > 0, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
