package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aumtheo/Energie-Berechner/internal/models"

	"gorm.io/gorm"
)

var ErrBuildingNotFound = errors.New("building not found")
var ErrInvalidBuilding = errors.New("invalid building")

type BuildingService struct {
	db         *gorm.DB
	balance    BalanceCalculator
	locations  ClimateResolver
	logService LogWriter
}

func NewBuildingService(db *gorm.DB, balance BalanceCalculator, locations ClimateResolver, logService LogWriter) (*BuildingService, error) {
	if db == nil {
		return nil, errors.New("db is nil")
	}
	if balance == nil {
		return nil, errors.New("balance service is nil")
	}
	if locations == nil {
		return nil, errors.New("location service is nil")
	}
	if logService == nil {
		return nil, errors.New("log service is nil")
	}

	return &BuildingService{
		db:         db,
		balance:    balance,
		locations:  locations,
		logService: logService,
	}, nil
}

func (s *BuildingService) CreateBuilding(ctx context.Context, building models.Building) (models.Building, error) {
	if s == nil {
		return models.Building{}, errors.New("building service is nil")
	}
	if s.db == nil {
		return models.Building{}, errors.New("db is nil")
	}

	applyBuildingDefaults(&building)
	if err := validateBuilding(building); err != nil {
		return models.Building{}, err
	}

	if err := s.db.WithContext(ctx).Create(&building).Error; err != nil {
		return models.Building{}, fmt.Errorf("create building: %w", err)
	}

	return building, nil
}

func (s *BuildingService) GetBuildings(ctx context.Context) ([]models.Building, error) {
	if s == nil {
		return nil, errors.New("building service is nil")
	}
	if s.db == nil {
		return nil, errors.New("db is nil")
	}

	var buildings []models.Building
	if err := s.db.WithContext(ctx).Order("created_at").Find(&buildings).Error; err != nil {
		return nil, fmt.Errorf("get buildings: %w", err)
	}

	return buildings, nil
}

func (s *BuildingService) GetBuilding(ctx context.Context, id string) (models.Building, error) {
	if s == nil {
		return models.Building{}, errors.New("building service is nil")
	}
	if s.db == nil {
		return models.Building{}, errors.New("db is nil")
	}
	if id == "" {
		return models.Building{}, errors.New("building id is empty")
	}

	var building models.Building
	err := s.db.WithContext(ctx).
		Preload("Components").
		Preload("PV").
		Preload("Ventilation").
		Preload("Lighting").
		Preload("HeatSources").
		Preload("Shading").
		Where("id = ?", id).
		First(&building).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Building{}, ErrBuildingNotFound
	}
	if err != nil {
		return models.Building{}, fmt.Errorf("get building %s: %w", id, err)
	}

	return building, nil
}

// DeleteBuilding removes a building together with all records it owns.
func (s *BuildingService) DeleteBuilding(ctx context.Context, id string) error {
	if s == nil {
		return errors.New("building service is nil")
	}
	if s.db == nil {
		return errors.New("db is nil")
	}
	if id == "" {
		return errors.New("building id is empty")
	}

	var building models.Building
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&building).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrBuildingNotFound
	}
	if err != nil {
		return fmt.Errorf("get building %s: %w", id, err)
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		owned := []interface{}{
			&models.EnvelopeComponent{},
			&models.PVSystem{},
			&models.VentilationSystem{},
			&models.LightingZone{},
			&models.HeatSource{},
			&models.SolarShading{},
			&models.CalcResult{},
		}
		for _, record := range owned {
			if err := tx.Where("building_id = ?", id).Delete(record).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&building).Error
	})
	if err != nil {
		return fmt.Errorf("delete building %s: %w", id, err)
	}

	return nil
}

// CalculateBuilding runs the balance for a persisted building and stores the
// snapshot, replacing any prior one.
func (s *BuildingService) CalculateBuilding(ctx context.Context, id string) (BalanceResult, error) {
	if s == nil {
		return BalanceResult{}, errors.New("building service is nil")
	}
	if s.balance == nil {
		return BalanceResult{}, errors.New("balance service is nil")
	}
	if s.locations == nil {
		return BalanceResult{}, errors.New("location service is nil")
	}
	if s.logService == nil {
		return BalanceResult{}, errors.New("log service is nil")
	}

	building, err := s.GetBuilding(ctx, id)
	if err != nil {
		return BalanceResult{}, err
	}

	climate, err := s.locations.ClimateForName(ctx, building.Location)
	if err != nil {
		return BalanceResult{}, err
	}

	uValues := make(map[models.ComponentType]float64, len(building.Components))
	for _, component := range building.Components {
		uValues[component.Type] = component.UValue
	}

	input := BalanceInput{
		Building:    building,
		UValues:     uValues,
		PV:          building.PV,
		Ventilation: building.Ventilation,
		Lighting:    building.Lighting,
		HeatSources: building.HeatSources,
		Climate:     climate,
	}

	result, err := s.balance.Calculate(input)
	if err != nil {
		failMsg := fmt.Sprintf("building=%s: %v", id, err)
		_ = s.logService.CreateLog(ctx, LogActionBalanceCalc, LogOutcomeFail, &failMsg)
		return BalanceResult{}, fmt.Errorf("calculate building %s: %w", id, err)
	}

	if err := s.storeResult(ctx, id, result); err != nil {
		failMsg := fmt.Sprintf("building=%s: %v", id, err)
		_ = s.logService.CreateLog(ctx, LogActionResultStore, LogOutcomeFail, &failMsg)
		return BalanceResult{}, err
	}

	successMsg := fmt.Sprintf("building=%s final_total=%.1f", id, result.FinalEnergy.Total)
	_ = s.logService.CreateLog(ctx, LogActionBalanceCalc, LogOutcomeSuccess, &successMsg)

	return result, nil
}

// RecalculateAll refreshes the stored snapshot of every persisted building.
// Failures do not stop the run; the first error is reported at the end.
func (s *BuildingService) RecalculateAll(ctx context.Context) (int, error) {
	if s == nil {
		return 0, errors.New("building service is nil")
	}

	buildings, err := s.GetBuildings(ctx)
	if err != nil {
		return 0, err
	}

	count := 0
	var recalcErr error
	for _, building := range buildings {
		if _, err := s.CalculateBuilding(ctx, building.ID); err != nil {
			if recalcErr == nil {
				recalcErr = err
			}
			continue
		}
		count++
	}

	summary := fmt.Sprintf("recalculated=%d of %d", count, len(buildings))
	outcome := LogOutcomeSuccess
	if recalcErr != nil {
		outcome = LogOutcomeFail
	}
	_ = s.logService.CreateLog(ctx, LogActionRecalcAll, outcome, &summary)

	return count, recalcErr
}

func (s *BuildingService) GetResult(ctx context.Context, buildingID string) (models.CalcResult, error) {
	if s == nil {
		return models.CalcResult{}, errors.New("building service is nil")
	}
	if s.db == nil {
		return models.CalcResult{}, errors.New("db is nil")
	}

	var result models.CalcResult
	err := s.db.WithContext(ctx).Where("building_id = ?", buildingID).First(&result).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.CalcResult{}, ErrBuildingNotFound
	}
	if err != nil {
		return models.CalcResult{}, fmt.Errorf("get result for building %s: %w", buildingID, err)
	}

	return result, nil
}

func (s *BuildingService) storeResult(ctx context.Context, buildingID string, result BalanceResult) error {
	record := models.CalcResult{
		BuildingID:        buildingID,
		UsefulHeating:     result.UsefulEnergy.Heating,
		UsefulHotWater:    result.UsefulEnergy.HotWater,
		UsefulTotal:       result.UsefulEnergy.Total,
		FinalHeating:      result.FinalEnergy.Heating,
		FinalHotWater:     result.FinalEnergy.HotWater,
		FinalVentilation:  result.FinalEnergy.Ventilation,
		FinalLighting:     result.FinalEnergy.Lighting,
		FinalProcess:      result.FinalEnergy.Process,
		FinalTotal:        result.FinalEnergy.Total,
		PrimaryTotal:      result.PrimaryEnergy.Total,
		PVYield:           result.PV.Yield,
		PVSurplus:         result.PV.Surplus,
		EmissionsVariant1: result.Emissions.Variant1,
		EmissionsVariant2: result.Emissions.Variant2,
		ComputedAt:        time.Now().UTC(),
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("building_id = ?", buildingID).Delete(&models.CalcResult{}).Error; err != nil {
			return err
		}
		return tx.Create(&record).Error
	})
	if err != nil {
		return fmt.Errorf("store result for building %s: %w", buildingID, err)
	}

	return nil
}

func applyBuildingDefaults(building *models.Building) {
	if building.UseCategory == "" {
		building.UseCategory = models.UseOffice
	}
	if building.FloorHeight == 0 {
		building.FloorHeight = 2.8
	}
	if building.OccupancyDensity == 0 {
		building.OccupancyDensity = 15
	}
	if building.GValueNorth == 0 {
		building.GValueNorth = 0.6
	}
	if building.GValueSouth == 0 {
		building.GValueSouth = 0.6
	}
	if building.GValueEast == 0 {
		building.GValueEast = 0.6
	}
	if building.GValueWest == 0 {
		building.GValueWest = 0.6
	}
}

func validateBuilding(building models.Building) error {
	if building.LengthNS <= 0 {
		return fmt.Errorf("%w: laenge_ns must be positive", ErrInvalidBuilding)
	}
	if building.WidthEW <= 0 {
		return fmt.Errorf("%w: breite_ow must be positive", ErrInvalidBuilding)
	}
	if building.Floors < 1 {
		return fmt.Errorf("%w: geschosse must be at least 1", ErrInvalidBuilding)
	}
	if building.FloorHeight <= 0 {
		return fmt.Errorf("%w: geschosshoehe must be positive", ErrInvalidBuilding)
	}
	if building.OccupancyDensity <= 0 {
		return fmt.Errorf("%w: personendichte must be positive", ErrInvalidBuilding)
	}

	for _, orientation := range models.Orientations {
		if building.WindowArea(orientation) < 0 {
			return fmt.Errorf("%w: fensterflaeche_%s must not be negative", ErrInvalidBuilding, orientation)
		}
		g := building.GValue(orientation)
		if g < 0 || g > 1 {
			return fmt.Errorf("%w: g_wert_%s must be between 0 and 1", ErrInvalidBuilding, orientation)
		}
	}

	switch building.UseCategory {
	case models.UseOffice, models.UseSchool, models.UseResidentialCare:
	default:
		return fmt.Errorf("%w: unknown gebaeudeart %q", ErrInvalidBuilding, building.UseCategory)
	}

	seen := make(map[models.ComponentType]bool, len(building.Components))
	for _, component := range building.Components {
		if !validComponentType(component.Type) {
			return fmt.Errorf("%w: unknown bauteil typ %q", ErrInvalidBuilding, component.Type)
		}
		if component.UValue <= 0 {
			return fmt.Errorf("%w: u_wert for %s must be positive", ErrInvalidBuilding, component.Type)
		}
		if seen[component.Type] {
			return fmt.Errorf("%w: duplicate bauteil typ %q", ErrInvalidBuilding, component.Type)
		}
		seen[component.Type] = true
	}

	if building.PV != nil {
		if building.PV.Efficiency < 0 || building.PV.Efficiency > 1 {
			return fmt.Errorf("%w: pv wirkungsgrad must be between 0 and 1", ErrInvalidBuilding)
		}
	}

	return nil
}

func validComponentType(t models.ComponentType) bool {
	for _, known := range models.ComponentTypes {
		if t == known {
			return true
		}
	}
	return false
}
