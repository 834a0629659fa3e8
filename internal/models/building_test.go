package models

import "testing"

func TestBuildingGeometry(t *testing.T) {
	building := Building{
		LengthNS:    20,
		WidthEW:     15,
		Floors:      3,
		FloorHeight: 2.8,
	}

	if got := building.Height(); got != 8.4 {
		t.Fatalf("Height = %v, want 8.4", got)
	}
	if got := building.Footprint(); got != 300 {
		t.Fatalf("Footprint = %v, want 300", got)
	}
	if got := building.GrossFloorArea(); got != 900 {
		t.Fatalf("GrossFloorArea = %v, want 900", got)
	}
	if got := building.NetFloorArea(); got != 765 {
		t.Fatalf("NetFloorArea = %v, want 765", got)
	}
	if got := building.Volume(); got != 2520 {
		t.Fatalf("Volume = %v, want 2520", got)
	}
}

func TestBuildingOrientationAccessors(t *testing.T) {
	building := Building{
		WindowAreaNorth: 1,
		WindowAreaSouth: 2,
		WindowAreaEast:  3,
		WindowAreaWest:  4,
		GValueNorth:     0.5,
		GValueSouth:     0.6,
		GValueEast:      0.7,
		GValueWest:      0.8,
	}

	windows := map[Orientation]float64{
		OrientationNorth: 1,
		OrientationSouth: 2,
		OrientationEast:  3,
		OrientationWest:  4,
	}
	gValues := map[Orientation]float64{
		OrientationNorth: 0.5,
		OrientationSouth: 0.6,
		OrientationEast:  0.7,
		OrientationWest:  0.8,
	}

	for _, orientation := range Orientations {
		if got := building.WindowArea(orientation); got != windows[orientation] {
			t.Fatalf("WindowArea(%s) = %v, want %v", orientation, got, windows[orientation])
		}
		if got := building.GValue(orientation); got != gValues[orientation] {
			t.Fatalf("GValue(%s) = %v, want %v", orientation, got, gValues[orientation])
		}
	}
}

func TestBuildingBeforeCreateAssignsID(t *testing.T) {
	building := Building{}
	if err := building.BeforeCreate(nil); err != nil {
		t.Fatalf("BeforeCreate: %v", err)
	}
	if building.ID == "" {
		t.Fatal("BeforeCreate left id empty")
	}

	existing := Building{ID: "b-1"}
	if err := existing.BeforeCreate(nil); err != nil {
		t.Fatalf("BeforeCreate: %v", err)
	}
	if existing.ID != "b-1" {
		t.Fatalf("BeforeCreate replaced id: %q", existing.ID)
	}
}
