package repo

import (
	"errors"
	"fmt"

	"github.com/aumtheo/Energie-Berechner/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func Connect(dsn string) (*gorm.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("dsn is empty")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	if db == nil {
		return errors.New("db is nil")
	}

	err := db.AutoMigrate(
		&models.Location{},
		&models.Building{},
		&models.EnvelopeComponent{},
		&models.PVSystem{},
		&models.VentilationSystem{},
		&models.LightingZone{},
		&models.HeatSource{},
		&models.SolarShading{},
		&models.CalcResult{},
		&models.Log{},
	)
	if err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	if err := ensureDefaultLocations(db); err != nil {
		return fmt.Errorf("ensure default locations: %w", err)
	}

	return nil
}

// defaultLocations are the seeded climate profiles for German cities.
// Irradiation in kWh/m²a, heating degree days in Kd.
var defaultLocations = []models.Location{
	{Name: "München", MeanTemperature: 9.1, HeatingDegreeDays: 3500, IrradiationNorth: 300, IrradiationSouth: 1100, IrradiationEast: 700, IrradiationWest: 700, IrradiationHorizontal: 1000},
	{Name: "Berlin", MeanTemperature: 9.6, HeatingDegreeDays: 3200, IrradiationNorth: 280, IrradiationSouth: 1050, IrradiationEast: 680, IrradiationWest: 680, IrradiationHorizontal: 950},
	{Name: "Hamburg", MeanTemperature: 9.1, HeatingDegreeDays: 3300, IrradiationNorth: 270, IrradiationSouth: 1000, IrradiationEast: 650, IrradiationWest: 650, IrradiationHorizontal: 900},
	{Name: "Köln", MeanTemperature: 10.3, HeatingDegreeDays: 3000, IrradiationNorth: 290, IrradiationSouth: 1080, IrradiationEast: 690, IrradiationWest: 690, IrradiationHorizontal: 980},
	{Name: "Frankfurt", MeanTemperature: 10.6, HeatingDegreeDays: 2900, IrradiationNorth: 300, IrradiationSouth: 1120, IrradiationEast: 710, IrradiationWest: 710, IrradiationHorizontal: 1020},
	{Name: "Stuttgart", MeanTemperature: 9.3, HeatingDegreeDays: 3400, IrradiationNorth: 310, IrradiationSouth: 1150, IrradiationEast: 720, IrradiationWest: 720, IrradiationHorizontal: 1050},
}

func ensureDefaultLocations(db *gorm.DB) error {
	if db == nil {
		return errors.New("db is nil")
	}

	for _, location := range defaultLocations {
		var count int64
		if err := db.Model(&models.Location{}).Where("name = ?", location.Name).Count(&count).Error; err != nil {
			return fmt.Errorf("count locations: %w", err)
		}
		if count > 0 {
			continue
		}

		record := location
		if err := db.Create(&record).Error; err != nil {
			return fmt.Errorf("create location %q: %w", location.Name, err)
		}
	}

	return nil
}
