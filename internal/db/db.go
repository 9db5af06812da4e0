package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/healthcare-scheduler/internal/config"
	"github.com/BruksfildServices01/healthcare-scheduler/internal/models"
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
		&models.User{},
		&models.Specialty{},
		&models.HealthcareProfessional{},
		&models.Appointment{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	seedSpecialties(db)

	return db
}

func seedSpecialties(db *gorm.DB) {
	names := []string{
		"Cardiology",
		"Dermatology",
		"Neurology",
		"Pediatrics",
		"Orthopedics",
	}

	for _, name := range names {
		db.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&models.Specialty{Name: name})
	}
}
