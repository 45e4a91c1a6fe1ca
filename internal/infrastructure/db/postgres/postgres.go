package postgres

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/clinicore/clinic-system/internal/core/domain"
)

// Config captures the settings for establishing a PostgreSQL connection.
type Config struct {
	DSN string
}

// Connect opens a gorm handle against PostgreSQL. TranslateError lets the
// repositories match on gorm.ErrDuplicatedKey instead of driver error codes.
func Connect(cfg Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("postgres connect: %w", err)
	}
	return db, nil
}

// Migrate creates or updates the schema for every entity table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.User{},
		&domain.Doctor{},
		&domain.Assistant{},
		&domain.Patient{},
		&domain.Treatment{},
		&domain.PatientAssistant{},
		&domain.TreatmentApplication{},
	)
}
