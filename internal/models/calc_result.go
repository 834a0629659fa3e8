package models

import "time"

// CalcResult is the persisted snapshot of one balance computation. At most
// one live snapshot per building; a new computation overwrites the prior one.
type CalcResult struct {
	ID         string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	BuildingID string `gorm:"type:uuid;not null;uniqueIndex" json:"-"`

	UsefulHeating  float64 `gorm:"not null;default:0" json:"ne_heizung"`
	UsefulHotWater float64 `gorm:"not null;default:0" json:"ne_tww"`
	UsefulTotal    float64 `gorm:"not null;default:0" json:"ne_gesamt"`

	FinalHeating     float64 `gorm:"not null;default:0" json:"ee_heizung"`
	FinalHotWater    float64 `gorm:"not null;default:0" json:"ee_tww"`
	FinalVentilation float64 `gorm:"not null;default:0" json:"ee_lueftung"`
	FinalLighting    float64 `gorm:"not null;default:0" json:"ee_beleuchtung"`
	FinalProcess     float64 `gorm:"not null;default:0" json:"ee_prozesse"`
	FinalTotal       float64 `gorm:"not null;default:0" json:"ee_gesamt"`

	PrimaryTotal float64 `gorm:"not null;default:0" json:"pe_gesamt"`

	PVYield   float64 `gorm:"not null;default:0" json:"pv_ertrag"`
	PVSurplus float64 `gorm:"not null;default:0" json:"strom_ueberschuss"`

	EmissionsVariant1 float64 `gorm:"not null;default:0" json:"gwp_var1"`
	EmissionsVariant2 float64 `gorm:"not null;default:0" json:"gwp_var2"`

	ComputedAt time.Time `gorm:"not null" json:"berechnet_am"`
}
