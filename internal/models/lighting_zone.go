package models

type UsageArea string

const (
	UsageAreaOffice      UsageArea = "buero"
	UsageAreaLiving      UsageArea = "wohnen"
	UsageAreaSanitary    UsageArea = "sanitaer"
	UsageAreaCirculation UsageArea = "verkehr"
)

type FixtureType string

const (
	FixtureLED         FixtureType = "led"
	FixtureFluorescent FixtureType = "leuchtstoff"
	FixtureHalogen     FixtureType = "halogen"
)

type LightingControl string

const (
	ControlManual           LightingControl = "manuell"
	ControlPresence         LightingControl = "praesenz"
	ControlDaylight         LightingControl = "tageslicht"
	ControlPresenceDaylight LightingControl = "praesenz_tageslicht"
)

type LightingZone struct {
	ID         string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	BuildingID string `gorm:"type:uuid;not null;uniqueIndex:idx_building_usage_area" json:"-"`

	UsageArea         UsageArea       `gorm:"type:text;not null;uniqueIndex:idx_building_usage_area" json:"nutzungsbereich"`
	FixtureType       FixtureType     `gorm:"type:text;not null;default:led" json:"beleuchtungsart"`
	Control           LightingControl `gorm:"type:text;not null;default:manuell" json:"regelungsart"`
	TargetIlluminance float64         `gorm:"not null;default:500" json:"e_soll"`
	HoursPerDay       float64         `gorm:"not null;default:8" json:"laufzeit_h_d"`
	DaysPerYear       float64         `gorm:"not null;default:250" json:"laufzeit_d_a"`
}
