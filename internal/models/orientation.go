package models

type Orientation string

const (
	OrientationNorth Orientation = "nord"
	OrientationSouth Orientation = "sued"
	OrientationEast  Orientation = "ost"
	OrientationWest  Orientation = "west"
)

// Orientations is the closed set of facade orientations, in the order the
// original tool reports them.
var Orientations = []Orientation{
	OrientationNorth,
	OrientationSouth,
	OrientationEast,
	OrientationWest,
}
