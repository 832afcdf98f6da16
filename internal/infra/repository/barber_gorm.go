package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/barbertime/internal/domain/appointment"
	"github.com/BruksfildServices01/barbertime/internal/domain/schedule"
	"github.com/BruksfildServices01/barbertime/internal/models"
)

type BarberGormStore struct {
	db *gorm.DB
}

func NewBarberGormStore(db *gorm.DB) *BarberGormStore {
	return &BarberGormStore{db: db}
}

func (s *BarberGormStore) GetByBarberID(
	ctx context.Context,
	barberID string,
) (*models.Barber, error) {

	var barber models.Barber
	err := s.db.WithContext(ctx).
		Where("barber_id = ?", barberID).
		First(&barber).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnavailable, err)
	}

	return &barber, nil
}

// UpdateByBarberID faz merge parcial: só os campos presentes no patch são
// escritos, o resto fica como está.
func (s *BarberGormStore) UpdateByBarberID(
	ctx context.Context,
	barberID string,
	patch map[string]any,
) (*models.Barber, error) {

	if len(patch) > 0 {
		tx := s.db.WithContext(ctx).
			Model(&models.Barber{}).
			Where("barber_id = ?", barberID).
			Updates(patch)

		if tx.Error != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrUnavailable, tx.Error)
		}
		if tx.RowsAffected == 0 {
			return nil, nil
		}
	}

	return s.GetByBarberID(ctx, barberID)
}

// ScheduleFor monta o value object a partir das linhas WorkingDay mais as
// colunas de pausa do barbeiro. Dia sem linha persiste fechado.
func (s *BarberGormStore) ScheduleFor(
	ctx context.Context,
	barberID string,
) (schedule.WorkingSchedule, error) {

	var ws schedule.WorkingSchedule

	barber, err := s.GetByBarberID(ctx, barberID)
	if err != nil {
		return ws, err
	}
	if barber == nil {
		return ws, schedule.ScheduleError{Reason: "barber not found"}
	}

	var days []models.WorkingDay
	if err := s.db.WithContext(ctx).
		Where("barber_id = ?", barberID).
		Order("weekday ASC").
		Find(&days).Error; err != nil {
		return ws, fmt.Errorf("%w: %v", domain.ErrUnavailable, err)
	}

	for _, d := range days {
		if d.Weekday < 0 || d.Weekday > 6 {
			continue
		}
		ws.Days[d.Weekday] = schedule.Day{
			Open:  d.Open,
			Start: d.StartTime,
			End:   d.EndTime,
		}
	}

	ws.Break = schedule.Break{
		Enabled: barber.BreakEnabled,
		Start:   barber.BreakStart,
		End:     barber.BreakEnd,
	}

	return ws, nil
}

// ReplaceSchedule troca a agenda inteira - a agenda é substituída junto com
// o dono, nunca removida sozinha.
func (s *BarberGormStore) ReplaceSchedule(
	ctx context.Context,
	barberID string,
	ws schedule.WorkingSchedule,
) error {

	if err := ws.Validate(); err != nil {
		return err
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("barber_id = ?", barberID).
			Delete(&models.WorkingDay{}).Error; err != nil {
			return err
		}

		days := make([]models.WorkingDay, 0, 7)
		for wd, day := range ws.Days {
			days = append(days, models.WorkingDay{
				BarberID:  barberID,
				Weekday:   wd,
				Open:      day.Open,
				StartTime: day.Start,
				EndTime:   day.End,
			})
		}
		if err := tx.Create(&days).Error; err != nil {
			return err
		}

		return tx.Model(&models.Barber{}).
			Where("barber_id = ?", barberID).
			Updates(map[string]any{
				"break_enabled": ws.Break.Enabled,
				"break_start":   ws.Break.Start,
				"break_end":     ws.Break.End,
			}).Error
	})
}

func (s *BarberGormStore) FindServiceByName(
	ctx context.Context,
	barberID string,
	name string,
) (*models.Service, error) {

	var svc models.Service
	err := s.db.WithContext(ctx).
		Where("barber_id = ? AND LOWER(name) = LOWER(?) AND active = ?", barberID, name, true).
		First(&svc).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnavailable, err)
	}

	return &svc, nil
}

// Compile-time check
var _ domain.BarberStore = (*BarberGormStore)(nil)
