package services

import (
	"errors"
	"math"

	"github.com/aumtheo/Energie-Berechner/internal/models"
)

var ErrInvalidOccupancyDensity = errors.New("occupancy density must be positive")

const (
	windowUValue             = 1.3  // W/m²K, fixed for all glazing
	groundSlabFactor         = 0.5  // below-grade reduction
	airChangeRate            = 0.5  // 1/h
	airDensity               = 1.2  // kg/m³
	airHeatCapacity          = 1000 // J/kgK
	defaultHeatingDegreeDays = 3500

	solarReductionFactor   = 0.7
	gainsUtilizationFactor = 0.7

	personHeatOutput     = 80 // W
	occupancyHoursPerDay = 8
	occupancyDaysPerYear = 250

	heatGeneratorEfficiency  = 0.9
	primaryFactorGas         = 1.1
	primaryFactorElectricity = 1.8

	emissionFactorVariant1 = 0.5 // kg CO2-eq/kWh
	emissionFactorVariant2 = 0.3

	lightingPowerDensity  = 10   // W/m²
	lightingZoneAreaShare = 0.25 // fixed share of net floor area per zone
)

// Specific demand values in kWh/m²a per building use category.
var (
	hotWaterDemandByUse = map[models.UseCategory]float64{
		models.UseOffice:          15,
		models.UseSchool:          5,
		models.UseResidentialCare: 25,
	}
	ventilationDemandByUse = map[models.UseCategory]float64{
		models.UseOffice:          8,
		models.UseSchool:          6,
		models.UseResidentialCare: 5,
	}
	lightingDemandByUse = map[models.UseCategory]float64{
		models.UseOffice:          10,
		models.UseSchool:          12,
		models.UseResidentialCare: 8,
	}
	processDemandByUse = map[models.UseCategory]float64{
		models.UseOffice:          5,
		models.UseSchool:          2,
		models.UseResidentialCare: 3,
	}
)

type BalanceService struct{}

func NewBalanceService() (*BalanceService, error) {
	return &BalanceService{}, nil
}

// Calculate produces the full annual energy balance for one building. It
// either returns a complete result or an error, never a partial result.
func (s *BalanceService) Calculate(input BalanceInput) (BalanceResult, error) {
	if s == nil {
		return BalanceResult{}, errors.New("balance service is nil")
	}
	if input.Building.OccupancyDensity <= 0 {
		return BalanceResult{}, ErrInvalidOccupancyDensity
	}

	building := input.Building

	usefulHeating := heatingDemand(building, input.UValues, input.Climate)
	usefulHotWater := hotWaterDemand(building)

	gains := solarGains(building, input.Climate) + internalGains(building, input.HeatSources)
	usefulHeating = math.Max(0, usefulHeating-gains*gainsUtilizationFactor)

	usefulTotal := usefulHeating + usefulHotWater

	finalHeating := usefulHeating / heatGeneratorEfficiency
	finalHotWater := usefulHotWater / heatGeneratorEfficiency
	finalVentilation := ventilationEnergy(building, input.Ventilation)
	finalLighting := lightingEnergy(building, input.Lighting)
	finalProcess := processEnergy(building)

	finalTotal := finalHeating + finalHotWater + finalVentilation + finalLighting + finalProcess

	primaryTotal := (finalHeating+finalHotWater)*primaryFactorGas +
		(finalVentilation+finalLighting+finalProcess)*primaryFactorElectricity

	yield := pvYield(input.PV, input.Climate)
	surplus := math.Max(0, yield-(finalVentilation+finalLighting+finalProcess))

	netFloorArea := building.NetFloorArea()

	result := BalanceResult{
		UsefulEnergy: UsefulEnergy{
			Heating:  round1(usefulHeating),
			HotWater: round1(usefulHotWater),
			Total:    round1(usefulTotal),
		},
		FinalEnergy: FinalEnergy{
			Heating:     round1(finalHeating),
			HotWater:    round1(finalHotWater),
			Ventilation: round1(finalVentilation),
			Lighting:    round1(finalLighting),
			Process:     round1(finalProcess),
			Total:       round1(finalTotal),
		},
		PrimaryEnergy: PrimaryEnergy{
			Total: round1(primaryTotal),
		},
		PV: PVBalance{
			Yield:   round1(yield),
			Surplus: round1(surplus),
		},
		Emissions: Emissions{
			Variant1: round1(finalTotal * emissionFactorVariant1),
			Variant2: round1(finalTotal * emissionFactorVariant2),
		},
		BuildingData: BuildingData{
			Height:         round1(building.Height()),
			Footprint:      round1(building.Footprint()),
			GrossFloorArea: round1(building.GrossFloorArea()),
			NetFloorArea:   round1(netFloorArea),
			Volume:         round1(building.Volume()),
		},
	}

	if netFloorArea > 0 {
		result.UsefulEnergy.Specific = round1(usefulTotal / netFloorArea)
		result.FinalEnergy.Specific = round1(finalTotal / netFloorArea)
		result.PrimaryEnergy.Specific = round1(primaryTotal / netFloorArea)
	}

	return result, nil
}

// heatingDemand is the annual transmission plus ventilation heat loss in
// kWh/a, before gains are subtracted.
func heatingDemand(building models.Building, uValues map[models.ComponentType]float64, climate Climate) float64 {
	lossCoefficient := 0.0 // W/K

	for _, orientation := range models.Orientations {
		uValue, ok := uValues[wallComponent(orientation)]
		if !ok {
			continue
		}

		grossArea := building.WidthEW * building.Height()
		if orientation == models.OrientationNorth || orientation == models.OrientationSouth {
			grossArea = building.LengthNS * building.Height()
		}

		opaqueArea := math.Max(0, grossArea-building.WindowArea(orientation))
		lossCoefficient += uValue * opaqueArea
	}

	if uValue, ok := uValues[models.ComponentRoof]; ok {
		lossCoefficient += uValue * building.Footprint()
	}
	if uValue, ok := uValues[models.ComponentGroundSlab]; ok {
		lossCoefficient += uValue * building.Footprint() * groundSlabFactor
	}

	// Windows are always counted, regardless of which wall U-values exist.
	for _, orientation := range models.Orientations {
		lossCoefficient += windowUValue * building.WindowArea(orientation)
	}

	lossCoefficient += airChangeRate * building.Volume() * airDensity * airHeatCapacity / 3600

	degreeDays := climate.HeatingDegreeDays
	if degreeDays == 0 {
		degreeDays = defaultHeatingDegreeDays
	}

	return math.Max(0, lossCoefficient*degreeDays*24/1000)
}

func wallComponent(o models.Orientation) models.ComponentType {
	switch o {
	case models.OrientationNorth:
		return models.ComponentWallNorth
	case models.OrientationSouth:
		return models.ComponentWallSouth
	case models.OrientationEast:
		return models.ComponentWallEast
	default:
		return models.ComponentWallWest
	}
}

func solarGains(building models.Building, climate Climate) float64 {
	gains := 0.0
	for _, orientation := range models.Orientations {
		gains += building.WindowArea(orientation) *
			building.GValue(orientation) *
			climate.Irradiation(orientation) *
			solarReductionFactor
	}
	return gains
}

func internalGains(building models.Building, heatSources []models.HeatSource) float64 {
	people := building.NetFloorArea() / building.OccupancyDensity
	gains := people * personHeatOutput * occupancyHoursPerDay * occupancyDaysPerYear / 1000

	for _, source := range heatSources {
		gains += float64(source.Count) * source.Power * source.HoursPerDay * source.DaysPerYear / 1000
	}

	return gains
}

func hotWaterDemand(building models.Building) float64 {
	return building.NetFloorArea() * specificDemand(hotWaterDemandByUse, building.UseCategory, 15)
}

// ventilationEnergy only gates on the record's presence; its fields are not
// consulted. Kept as-is for compatibility with the original tool.
func ventilationEnergy(building models.Building, ventilation *models.VentilationSystem) float64 {
	if ventilation == nil {
		return 0
	}
	return building.NetFloorArea() * specificDemand(ventilationDemandByUse, building.UseCategory, 8)
}

func lightingEnergy(building models.Building, zones []models.LightingZone) float64 {
	if len(zones) == 0 {
		return building.NetFloorArea() * specificDemand(lightingDemandByUse, building.UseCategory, 10)
	}

	total := 0.0
	for _, zone := range zones {
		zoneArea := building.NetFloorArea() * lightingZoneAreaShare
		total += lightingPowerDensity * zoneArea * zone.HoursPerDay * zone.DaysPerYear / 1000
	}
	return total
}

func processEnergy(building models.Building) float64 {
	return building.NetFloorArea() * specificDemand(processDemandByUse, building.UseCategory, 5)
}

func pvYield(pv *models.PVSystem, climate Climate) float64 {
	if pv == nil {
		return 0
	}

	yield := 0.0
	for _, orientation := range models.Orientations {
		area := pv.WindowArea(orientation) + pv.OpaqueArea(orientation)
		yield += area * climate.Irradiation(orientation) * pv.Efficiency
	}
	return yield
}

func specificDemand(table map[models.UseCategory]float64, use models.UseCategory, fallback float64) float64 {
	if value, ok := table[use]; ok {
		return value
	}
	return fallback
}

func round1(value float64) float64 {
	return math.Round(value*10) / 10
}
