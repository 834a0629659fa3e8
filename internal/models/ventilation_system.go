package models

type VentilationType string

const (
	VentilationNatural                VentilationType = "natuerlich"
	VentilationMechanical             VentilationType = "mechanisch"
	VentilationMechanicalHeatRecovery VentilationType = "mechanisch_wrg"
)

type VentilationSystem struct {
	ID         string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	BuildingID string `gorm:"type:uuid;not null;uniqueIndex" json:"-"`

	Type                   VentilationType `gorm:"type:text;not null;default:natuerlich" json:"typ"`
	AirChangeRate          float64         `gorm:"not null;default:0.5" json:"luftwechselrate"`
	HeatRecoveryEfficiency float64         `gorm:"not null;default:0" json:"wirkungsgrad_wrg"`
	SetpointTemperature    float64         `gorm:"not null;default:20" json:"raum_soll_temperatur"`
	HoursPerDay            float64         `gorm:"not null;default:8" json:"laufzeit_h_d"`
	DaysPerYear            float64         `gorm:"not null;default:250" json:"laufzeit_d_a"`
}
