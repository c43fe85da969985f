package model

import "testing"

func TestNewRoomDefaults(t *testing.T) {
	r := NewRoom("Bedroom", 10, 12, 8)
	if r.ID == "" {
		t.Error("expected generated ID")
	}
	if r.Floor != 1 {
		t.Errorf("expected floor 1, got %d", r.Floor)
	}
	if r.Ceiling != "" && r.Ceiling != CeilingFlat {
		t.Errorf("unexpected ceiling type %q", r.Ceiling)
	}
}

func TestStairwellWallsArrayWins(t *testing.T) {
	st := NewStaircase("Stairs")
	st.Walls = []StairWall{{TallHeight: 10, ShortHeight: 8}}
	st.SecondaryWallTall = 99 // stale legacy data alongside the array

	walls := st.StairwellWalls()
	if len(walls) != 1 || walls[0].TallHeight != 10 {
		t.Errorf("walls array should win over legacy fields, got %+v", walls)
	}
}

func TestStairwellWallsLegacyPair(t *testing.T) {
	st := NewStaircase("Old Stairs")
	st.SecondaryWallTall = 12
	st.SecondaryWallShort = 8
	st.SecondaryDoubleSide = true

	walls := st.StairwellWalls()
	if len(walls) != 1 {
		t.Fatalf("expected one normalized wall, got %d", len(walls))
	}
	if walls[0].TallHeight != 12 || walls[0].ShortHeight != 8 || !walls[0].DoubleSided {
		t.Errorf("legacy pair not normalized: %+v", walls[0])
	}
}

func TestStairwellWallsCapped(t *testing.T) {
	st := NewStaircase("Stairs")
	for i := 0; i < MaxStairWalls+2; i++ {
		st.Walls = append(st.Walls, StairWall{TallHeight: 10, ShortHeight: 8})
	}
	if got := len(st.StairwellWalls()); got != MaxStairWalls {
		t.Errorf("expected cap of %d walls, got %d", MaxStairWalls, got)
	}
}

func TestStairwellWallsEmpty(t *testing.T) {
	if walls := NewStaircase("Bare").StairwellWalls(); walls != nil {
		t.Errorf("expected no walls, got %+v", walls)
	}
}

func TestFireplaceResolvedVariantExplicit(t *testing.T) {
	f := Fireplace{Variant: FireplaceLegacy, HasMantel: true}
	if got := f.ResolvedVariant(); got != FireplaceLegacy {
		t.Errorf("explicit variant should win, got %q", got)
	}
}

func TestFireplaceResolvedVariantInferred(t *testing.T) {
	threePart := Fireplace{HasLegs: true}
	if got := threePart.ResolvedVariant(); got != FireplaceThreePart {
		t.Errorf("three-part flags should infer three_part, got %q", got)
	}

	legacy := Fireplace{Width: 5, Height: 4}
	if got := legacy.ResolvedVariant(); got != FireplaceLegacy {
		t.Errorf("box dimensions alone should infer legacy, got %q", got)
	}
}

func TestNewProjectSlicesNotNil(t *testing.T) {
	p := NewProject()
	if p.Rooms == nil || p.Staircases == nil || p.Fireplaces == nil || p.BrickWalls == nil {
		t.Error("new project should carry empty, non-nil object slices")
	}
}
