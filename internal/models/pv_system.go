package models

// PVSystem describes photovoltaic areas mounted in front of windows and in
// front of opaque surfaces, per orientation. At most one per building.
type PVSystem struct {
	ID         string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	BuildingID string `gorm:"type:uuid;not null;uniqueIndex" json:"-"`

	WindowAreaNorth float64 `gorm:"not null;default:0" json:"pv_vor_fenster_nord"`
	WindowAreaSouth float64 `gorm:"not null;default:0" json:"pv_vor_fenster_sued"`
	WindowAreaEast  float64 `gorm:"not null;default:0" json:"pv_vor_fenster_ost"`
	WindowAreaWest  float64 `gorm:"not null;default:0" json:"pv_vor_fenster_west"`

	OpaqueAreaNorth float64 `gorm:"not null;default:0" json:"pv_vor_opak_nord"`
	OpaqueAreaSouth float64 `gorm:"not null;default:0" json:"pv_vor_opak_sued"`
	OpaqueAreaEast  float64 `gorm:"not null;default:0" json:"pv_vor_opak_ost"`
	OpaqueAreaWest  float64 `gorm:"not null;default:0" json:"pv_vor_opak_west"`

	Efficiency float64 `gorm:"not null;default:0.2" json:"wirkungsgrad"`
}

func (p PVSystem) WindowArea(o Orientation) float64 {
	switch o {
	case OrientationNorth:
		return p.WindowAreaNorth
	case OrientationSouth:
		return p.WindowAreaSouth
	case OrientationEast:
		return p.WindowAreaEast
	case OrientationWest:
		return p.WindowAreaWest
	}
	return 0
}

func (p PVSystem) OpaqueArea(o Orientation) float64 {
	switch o {
	case OrientationNorth:
		return p.OpaqueAreaNorth
	case OrientationSouth:
		return p.OpaqueAreaSouth
	case OrientationEast:
		return p.OpaqueAreaEast
	case OrientationWest:
		return p.OpaqueAreaWest
	}
	return 0
}
