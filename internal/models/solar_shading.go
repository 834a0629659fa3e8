package models

type ShadingType string

const (
	ShadingExternalFixed   ShadingType = "aussen_fest"
	ShadingExternalMovable ShadingType = "aussen_beweglich"
	ShadingInternal        ShadingType = "innen"
	ShadingBetweenPanes    ShadingType = "zwischen_scheiben"
)

type GlazingType string

const (
	GlazingDouble      GlazingType = "zweifach"
	GlazingTriple      GlazingType = "dreifach"
	GlazingDoubleSolar GlazingType = "zweifach_sonnenschutz"
)

// SolarShading is descriptive only; the balance calculation does not consume
// it.
type SolarShading struct {
	ID         string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	BuildingID string `gorm:"type:uuid;not null;uniqueIndex" json:"-"`

	CriticalRoom      string      `gorm:"type:text" json:"kritischer_raum"`
	FacadeOrientation Orientation `gorm:"type:text;not null;default:sued" json:"fassadenorientierung"`
	Type              ShadingType `gorm:"type:text;not null;default:aussen_beweglich" json:"sonnenschutzart"`
	Glazing           GlazingType `gorm:"type:text;not null;default:zweifach" json:"verglasungsart"`
	PassiveCooling    bool        `gorm:"not null;default:false" json:"passive_kuehlung"`
	WindowTilt        float64     `gorm:"not null;default:90" json:"fensterneigung"`
}
