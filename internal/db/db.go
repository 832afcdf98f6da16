package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barbertime/internal/config"
	"github.com/BruksfildServices01/barbertime/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.Barber{},
		&models.WorkingDay{},
		&models.Service{},
		&models.Appointment{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	// Índice parcial que garante no máximo um agendamento vivo por
	// (barber_id, date, time). AutoMigrate não expressa índice parcial,
	// então criamos direto. É nele que o CreateIfAbsent se apoia.
	db.Exec(`
        CREATE UNIQUE INDEX IF NOT EXISTS idx_appointments_live_slot
        ON appointments (barber_id, date, time)
        WHERE status <> 'cancelled'
    `)

	return db
}
