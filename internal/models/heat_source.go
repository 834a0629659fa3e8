package models

type HeatSourceType string

const (
	HeatSourceDevice HeatSourceType = "geraet"
	HeatSourceOther  HeatSourceType = "sonstige"
)

type HeatSource struct {
	ID         string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	BuildingID string `gorm:"type:uuid;not null" json:"-"`

	Type        HeatSourceType `gorm:"type:text;not null;default:geraet" json:"typ"`
	Name        string         `gorm:"type:text;not null" json:"name"`
	Count       int            `gorm:"not null;default:1" json:"anzahl"`
	Power       float64        `gorm:"not null" json:"leistung"`
	HoursPerDay float64        `gorm:"not null;default:8" json:"betrieb_h_d"`
	DaysPerYear float64        `gorm:"not null;default:250" json:"betrieb_d_a"`
}
