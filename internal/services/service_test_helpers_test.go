package services

import (
	"context"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite db: %v", err)
	}

	return db
}

func createBuildingTables(t *testing.T, db *gorm.DB) {
	t.Helper()

	queries := []string{
		`CREATE TABLE buildings (
			id TEXT PRIMARY KEY DEFAULT (lower(hex(randomblob(16)))),
			name TEXT,
			description TEXT,
			location TEXT NOT NULL DEFAULT '',
			use_category TEXT NOT NULL DEFAULT 'buero',
			length_ns REAL NOT NULL DEFAULT 0,
			width_ew REAL NOT NULL DEFAULT 0,
			floors INTEGER NOT NULL DEFAULT 0,
			floor_height REAL NOT NULL DEFAULT 2.8,
			window_area_north REAL NOT NULL DEFAULT 0,
			window_area_south REAL NOT NULL DEFAULT 0,
			window_area_east REAL NOT NULL DEFAULT 0,
			window_area_west REAL NOT NULL DEFAULT 0,
			g_value_north REAL NOT NULL DEFAULT 0.6,
			g_value_south REAL NOT NULL DEFAULT 0.6,
			g_value_east REAL NOT NULL DEFAULT 0.6,
			g_value_west REAL NOT NULL DEFAULT 0.6,
			occupancy_density REAL NOT NULL DEFAULT 15,
			created_at DATETIME,
			updated_at DATETIME
		)`,
		`CREATE TABLE envelope_components (
			id TEXT PRIMARY KEY DEFAULT (lower(hex(randomblob(16)))),
			building_id TEXT NOT NULL,
			type TEXT NOT NULL,
			u_value REAL NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE pv_systems (
			id TEXT PRIMARY KEY DEFAULT (lower(hex(randomblob(16)))),
			building_id TEXT NOT NULL,
			window_area_north REAL NOT NULL DEFAULT 0,
			window_area_south REAL NOT NULL DEFAULT 0,
			window_area_east REAL NOT NULL DEFAULT 0,
			window_area_west REAL NOT NULL DEFAULT 0,
			opaque_area_north REAL NOT NULL DEFAULT 0,
			opaque_area_south REAL NOT NULL DEFAULT 0,
			opaque_area_east REAL NOT NULL DEFAULT 0,
			opaque_area_west REAL NOT NULL DEFAULT 0,
			efficiency REAL NOT NULL DEFAULT 0.2
		)`,
		`CREATE TABLE ventilation_systems (
			id TEXT PRIMARY KEY DEFAULT (lower(hex(randomblob(16)))),
			building_id TEXT NOT NULL,
			type TEXT NOT NULL DEFAULT 'natuerlich',
			air_change_rate REAL NOT NULL DEFAULT 0.5,
			heat_recovery_efficiency REAL NOT NULL DEFAULT 0,
			setpoint_temperature REAL NOT NULL DEFAULT 20,
			hours_per_day REAL NOT NULL DEFAULT 8,
			days_per_year REAL NOT NULL DEFAULT 250
		)`,
		`CREATE TABLE lighting_zones (
			id TEXT PRIMARY KEY DEFAULT (lower(hex(randomblob(16)))),
			building_id TEXT NOT NULL,
			usage_area TEXT NOT NULL,
			fixture_type TEXT NOT NULL DEFAULT 'led',
			control TEXT NOT NULL DEFAULT 'manuell',
			target_illuminance REAL NOT NULL DEFAULT 500,
			hours_per_day REAL NOT NULL DEFAULT 8,
			days_per_year REAL NOT NULL DEFAULT 250
		)`,
		`CREATE TABLE heat_sources (
			id TEXT PRIMARY KEY DEFAULT (lower(hex(randomblob(16)))),
			building_id TEXT NOT NULL,
			type TEXT NOT NULL DEFAULT 'geraet',
			name TEXT NOT NULL DEFAULT '',
			count INTEGER NOT NULL DEFAULT 1,
			power REAL NOT NULL DEFAULT 0,
			hours_per_day REAL NOT NULL DEFAULT 8,
			days_per_year REAL NOT NULL DEFAULT 250
		)`,
		`CREATE TABLE solar_shadings (
			id TEXT PRIMARY KEY DEFAULT (lower(hex(randomblob(16)))),
			building_id TEXT NOT NULL,
			critical_room TEXT,
			facade_orientation TEXT NOT NULL DEFAULT 'sued',
			type TEXT NOT NULL DEFAULT 'aussen_beweglich',
			glazing TEXT NOT NULL DEFAULT 'zweifach',
			passive_cooling INTEGER NOT NULL DEFAULT 0,
			window_tilt REAL NOT NULL DEFAULT 90
		)`,
		`CREATE TABLE calc_results (
			id TEXT PRIMARY KEY DEFAULT (lower(hex(randomblob(16)))),
			building_id TEXT NOT NULL,
			useful_heating REAL NOT NULL DEFAULT 0,
			useful_hot_water REAL NOT NULL DEFAULT 0,
			useful_total REAL NOT NULL DEFAULT 0,
			final_heating REAL NOT NULL DEFAULT 0,
			final_hot_water REAL NOT NULL DEFAULT 0,
			final_ventilation REAL NOT NULL DEFAULT 0,
			final_lighting REAL NOT NULL DEFAULT 0,
			final_process REAL NOT NULL DEFAULT 0,
			final_total REAL NOT NULL DEFAULT 0,
			primary_total REAL NOT NULL DEFAULT 0,
			pv_yield REAL NOT NULL DEFAULT 0,
			pv_surplus REAL NOT NULL DEFAULT 0,
			emissions_variant1 REAL NOT NULL DEFAULT 0,
			emissions_variant2 REAL NOT NULL DEFAULT 0,
			computed_at DATETIME NOT NULL
		)`,
	}

	for _, query := range queries {
		if err := db.Exec(query).Error; err != nil {
			t.Fatalf("create table: %v", err)
		}
	}
}

func createLocationsTable(t *testing.T, db *gorm.DB) {
	t.Helper()

	query := `CREATE TABLE locations (
		id TEXT PRIMARY KEY DEFAULT (lower(hex(randomblob(16)))),
		name TEXT NOT NULL UNIQUE,
		mean_temperature REAL NOT NULL DEFAULT 0,
		heating_degree_days REAL NOT NULL DEFAULT 0,
		irradiation_north REAL NOT NULL DEFAULT 0,
		irradiation_south REAL NOT NULL DEFAULT 0,
		irradiation_east REAL NOT NULL DEFAULT 0,
		irradiation_west REAL NOT NULL DEFAULT 0,
		irradiation_horizontal REAL NOT NULL DEFAULT 0
	)`
	if err := db.Exec(query).Error; err != nil {
		t.Fatalf("create locations table: %v", err)
	}
}

func createLogsTable(t *testing.T, db *gorm.DB) {
	t.Helper()

	query := "CREATE TABLE logs (id TEXT PRIMARY KEY DEFAULT (lower(hex(randomblob(16)))), datetime DATETIME NOT NULL, action TEXT NOT NULL, outcome TEXT NOT NULL, message TEXT)"
	if err := db.Exec(query).Error; err != nil {
		t.Fatalf("create logs table: %v", err)
	}
}

type loggedEntry struct {
	action  string
	outcome string
	message *string
}

type stubLogWriter struct {
	entries []loggedEntry
}

func (s *stubLogWriter) CreateLog(ctx context.Context, action string, outcome string, message *string) error {
	var copied *string
	if message != nil {
		value := *message
		copied = &value
	}

	s.entries = append(s.entries, loggedEntry{
		action:  action,
		outcome: outcome,
		message: copied,
	})
	return nil
}
