package services

import "github.com/aumtheo/Energie-Berechner/internal/models"

// Climate carries the per-location constants the balance calculation needs.
// A zero HeatingDegreeDays falls back to the built-in default, an absent
// irradiation value is simply zero.
type Climate struct {
	HeatingDegreeDays float64
	IrradiationNorth  float64
	IrradiationSouth  float64
	IrradiationEast   float64
	IrradiationWest   float64
}

func (c Climate) Irradiation(o models.Orientation) float64 {
	switch o {
	case models.OrientationNorth:
		return c.IrradiationNorth
	case models.OrientationSouth:
		return c.IrradiationSouth
	case models.OrientationEast:
		return c.IrradiationEast
	case models.OrientationWest:
		return c.IrradiationWest
	}
	return 0
}

// DefaultClimate is the Munich profile used when no location is given.
func DefaultClimate() Climate {
	return Climate{
		HeatingDegreeDays: 3500,
		IrradiationNorth:  300,
		IrradiationSouth:  1100,
		IrradiationEast:   700,
		IrradiationWest:   700,
	}
}

func ClimateFromLocation(location models.Location) Climate {
	return Climate{
		HeatingDegreeDays: location.HeatingDegreeDays,
		IrradiationNorth:  location.IrradiationNorth,
		IrradiationSouth:  location.IrradiationSouth,
		IrradiationEast:   location.IrradiationEast,
		IrradiationWest:   location.IrradiationWest,
	}
}

// BalanceInput is the single input shape for both callers: the ad-hoc
// parameter endpoint builds it from query values, the persisted path from a
// building's stored records. The U-value mapping is sparse; a surface type
// that is absent is excluded from the transmission loss.
type BalanceInput struct {
	Building    models.Building
	UValues     map[models.ComponentType]float64
	PV          *models.PVSystem
	Ventilation *models.VentilationSystem
	Lighting    []models.LightingZone
	HeatSources []models.HeatSource
	Climate     Climate
}

type UsefulEnergy struct {
	Heating  float64 `json:"heating"`
	HotWater float64 `json:"hot_water"`
	Total    float64 `json:"total"`
	Specific float64 `json:"specific"`
}

type FinalEnergy struct {
	Heating     float64 `json:"heating"`
	HotWater    float64 `json:"hot_water"`
	Ventilation float64 `json:"ventilation"`
	Lighting    float64 `json:"lighting"`
	Process     float64 `json:"process"`
	Total       float64 `json:"total"`
	Specific    float64 `json:"specific"`
}

type PrimaryEnergy struct {
	Total    float64 `json:"total"`
	Specific float64 `json:"specific"`
}

type PVBalance struct {
	Yield   float64 `json:"yield"`
	Surplus float64 `json:"surplus"`
}

type Emissions struct {
	Variant1 float64 `json:"variant1"`
	Variant2 float64 `json:"variant2"`
}

type BuildingData struct {
	Height         float64 `json:"height"`
	Footprint      float64 `json:"footprint"`
	GrossFloorArea float64 `json:"gross_floor_area"`
	NetFloorArea   float64 `json:"net_floor_area"`
	Volume         float64 `json:"volume"`
}

// BalanceResult is the complete annual balance, all values in kWh/a (specific
// values in kWh/m²a, emissions in kg CO2-eq/a), rounded to one decimal.
type BalanceResult struct {
	UsefulEnergy  UsefulEnergy  `json:"useful_energy"`
	FinalEnergy   FinalEnergy   `json:"final_energy"`
	PrimaryEnergy PrimaryEnergy `json:"primary_energy"`
	PV            PVBalance     `json:"pv"`
	Emissions     Emissions     `json:"emissions"`
	BuildingData  BuildingData  `json:"building_data"`
}
