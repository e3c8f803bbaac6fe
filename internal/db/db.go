package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/navalha-studio/booking-api/internal/config"
	"github.com/navalha-studio/booking-api/internal/models"
	"github.com/navalha-studio/booking-api/internal/timezone"
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
		&models.Shop{},
		&models.User{},
		&models.Barber{},
		&models.Service{},
		&models.Client{},
		&models.Reservation{},
		&models.UnavailabilityBlock{},
		&models.Notification{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	seedShop(db)

	return db
}

// Linha única de configuração da barbearia.
func seedShop(db *gorm.DB) {
	var count int64
	db.Model(&models.Shop{}).Count(&count)
	if count > 0 {
		db.Exec(`
            UPDATE barbearia
            SET timezone = ?
            WHERE timezone IS NULL OR timezone = ''
        `, timezone.DefaultTimezone)
		return
	}

	shop := models.Shop{
		Name:              "Navalha Studio",
		Timezone:          timezone.DefaultTimezone,
		MinAdvanceMinutes: 120,
	}
	if err := db.Create(&shop).Error; err != nil {
		log.Printf("failed to seed shop row: %v", err)
	}
}
