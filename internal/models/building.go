package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UseCategory string

const (
	UseOffice          UseCategory = "buero"
	UseSchool          UseCategory = "schule"
	UseResidentialCare UseCategory = "heim"
)

type Building struct {
	ID          string      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name        string      `gorm:"type:text" json:"name"`
	Description *string     `gorm:"type:text" json:"beschreibung,omitempty"`
	Location    string      `gorm:"type:text;not null" json:"ort"`
	UseCategory UseCategory `gorm:"type:text;not null;default:buero" json:"gebaeudeart"`

	LengthNS    float64 `gorm:"not null" json:"laenge_ns"`
	WidthEW     float64 `gorm:"not null" json:"breite_ow"`
	Floors      int     `gorm:"not null" json:"geschosse"`
	FloorHeight float64 `gorm:"not null;default:2.8" json:"geschosshoehe"`

	WindowAreaNorth float64 `gorm:"not null;default:0" json:"fensterflaeche_nord"`
	WindowAreaSouth float64 `gorm:"not null;default:0" json:"fensterflaeche_sued"`
	WindowAreaEast  float64 `gorm:"not null;default:0" json:"fensterflaeche_ost"`
	WindowAreaWest  float64 `gorm:"not null;default:0" json:"fensterflaeche_west"`

	GValueNorth float64 `gorm:"not null;default:0.6" json:"g_wert_nord"`
	GValueSouth float64 `gorm:"not null;default:0.6" json:"g_wert_sued"`
	GValueEast  float64 `gorm:"not null;default:0.6" json:"g_wert_ost"`
	GValueWest  float64 `gorm:"not null;default:0.6" json:"g_wert_west"`

	// OccupancyDensity is the floor area per person in m²; must stay positive
	// for the internal-gains calculation.
	OccupancyDensity float64 `gorm:"not null;default:15" json:"personendichte"`

	Components  []EnvelopeComponent `gorm:"constraint:OnDelete:CASCADE" json:"bauteile,omitempty"`
	PV          *PVSystem           `gorm:"constraint:OnDelete:CASCADE" json:"pv_anlage,omitempty"`
	Ventilation *VentilationSystem  `gorm:"constraint:OnDelete:CASCADE" json:"lueftung,omitempty"`
	Lighting    []LightingZone      `gorm:"constraint:OnDelete:CASCADE" json:"beleuchtungen,omitempty"`
	HeatSources []HeatSource        `gorm:"constraint:OnDelete:CASCADE" json:"waermequellen,omitempty"`
	Shading     *SolarShading       `gorm:"constraint:OnDelete:CASCADE" json:"sonnenschutz,omitempty"`

	CreatedAt time.Time `json:"erstellt_am"`
	UpdatedAt time.Time `json:"aktualisiert_am"`
}

// BeforeCreate assigns the id in the application so owned records can
// reference it within the same create, independent of the database's uuid
// support.
func (b *Building) BeforeCreate(*gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}

// Derived geometry. Always recomputed from the stored fields, never cached.

func (b Building) Height() float64 {
	return float64(b.Floors) * b.FloorHeight
}

func (b Building) Footprint() float64 {
	return b.LengthNS * b.WidthEW
}

func (b Building) GrossFloorArea() float64 {
	return b.Footprint() * float64(b.Floors)
}

// NetFloorArea is the usable share of the gross floor area, fixed at 85%.
func (b Building) NetFloorArea() float64 {
	return b.GrossFloorArea() * 0.85
}

func (b Building) Volume() float64 {
	return b.GrossFloorArea() * b.FloorHeight
}

func (b Building) WindowArea(o Orientation) float64 {
	switch o {
	case OrientationNorth:
		return b.WindowAreaNorth
	case OrientationSouth:
		return b.WindowAreaSouth
	case OrientationEast:
		return b.WindowAreaEast
	case OrientationWest:
		return b.WindowAreaWest
	}
	return 0
}

func (b Building) GValue(o Orientation) float64 {
	switch o {
	case OrientationNorth:
		return b.GValueNorth
	case OrientationSouth:
		return b.GValueSouth
	case OrientationEast:
		return b.GValueEast
	case OrientationWest:
		return b.GValueWest
	}
	return 0
}
