package database

import (
	"shiftmate/internal/logger"
	"shiftmate/internal/models"

	"gorm.io/gorm"
)

// Migrate прогоняет AutoMigrate по всем моделям и добавляет то,
// что AutoMigrate сам не умеет: расширение для uuid_generate_v4.
// Уникальный индекс (user_id, job_id) на откликах объявлен в модели -
// он закрывает гонку двух конкурентных apply на уровне БД.
func Migrate(db *gorm.DB) error {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return err
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Job{},
		&models.Application{},
		&models.Message{},
	); err != nil {
		return err
	}

	logger.Info("Database migration completed")
	return nil
}
