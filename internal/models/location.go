package models

// Location is shared climate reference data, looked up by name. Irradiation
// values are annual sums in kWh/m²a, heating degree days in Kd.
type Location struct {
	ID                    string  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name                  string  `gorm:"type:text;not null;uniqueIndex" json:"name"`
	MeanTemperature       float64 `gorm:"not null" json:"temperatur_mittel"`
	HeatingDegreeDays     float64 `gorm:"not null" json:"heizgradtage"`
	IrradiationNorth      float64 `gorm:"not null" json:"solarstrahlung_nord"`
	IrradiationSouth      float64 `gorm:"not null" json:"solarstrahlung_sued"`
	IrradiationEast       float64 `gorm:"not null" json:"solarstrahlung_ost"`
	IrradiationWest       float64 `gorm:"not null" json:"solarstrahlung_west"`
	IrradiationHorizontal float64 `gorm:"not null" json:"solarstrahlung_horizontal"`
}

func (l Location) Irradiation(o Orientation) float64 {
	switch o {
	case OrientationNorth:
		return l.IrradiationNorth
	case OrientationSouth:
		return l.IrradiationSouth
	case OrientationEast:
		return l.IrradiationEast
	case OrientationWest:
		return l.IrradiationWest
	}
	return 0
}
