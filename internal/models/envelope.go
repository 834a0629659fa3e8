package models

type ComponentType string

const (
	ComponentWallNorth  ComponentType = "wand_nord"
	ComponentWallSouth  ComponentType = "wand_sued"
	ComponentWallEast   ComponentType = "wand_ost"
	ComponentWallWest   ComponentType = "wand_west"
	ComponentRoof       ComponentType = "dach"
	ComponentGroundSlab ComponentType = "bodenplatte"
)

var ComponentTypes = []ComponentType{
	ComponentWallNorth,
	ComponentWallSouth,
	ComponentWallEast,
	ComponentWallWest,
	ComponentRoof,
	ComponentGroundSlab,
}

// EnvelopeComponent holds one U-value per building surface. A surface with no
// component is excluded from the transmission loss, it is not a zero U-value.
type EnvelopeComponent struct {
	ID         string        `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	BuildingID string        `gorm:"type:uuid;not null;uniqueIndex:idx_building_component" json:"-"`
	Type       ComponentType `gorm:"type:text;not null;uniqueIndex:idx_building_component" json:"typ"`
	UValue     float64       `gorm:"not null" json:"u_wert"`
}
