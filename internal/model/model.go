package model

import "github.com/google/uuid"

// CeilingType describes the ceiling geometry of a room.
type CeilingType string

const (
	CeilingFlat      CeilingType = "flat"      // Standard horizontal ceiling
	CeilingCathedral CeilingType = "cathedral" // Sloped ceiling rising to a peak
)

// WallOpening represents a free-form penetration in a room wall, such as a
// pass-through, archway, or built-in niche. Openings always reduce paintable
// wall area; trim may be drawn on the interior face, the exterior face,
// both, or neither.
type WallOpening struct {
	Width        float64 `json:"width"`  // ft
	Height       float64 `json:"height"` // ft
	TrimInterior bool    `json:"trim_interior"`
	TrimExterior bool    `json:"trim_exterior"`
}

// Room represents a single paintable room with its geometric inputs,
// fixture counts, and per-category paint toggles.
//
// Toggles that default to "on" are pointers so that a missing field in a
// stored record is distinguishable from an explicit false: nil means the
// category is painted, only an explicit false disables it.
type Room struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Floor int    `json:"floor"` // 1-based floor number

	Length     float64     `json:"length"`                // ft
	Width      float64     `json:"width"`                 // ft
	Height     float64     `json:"height"`                // ft
	ManualArea float64     `json:"manual_area,omitempty"` // sq ft floor-area override when length/width unknown
	Ceiling    CeilingType `json:"ceiling,omitempty"`
	PeakHeight float64     `json:"peak_height,omitempty"` // ft, cathedral ceilings only

	WindowCount       int `json:"window_count"`
	DoorCount         int `json:"door_count"`
	SingleClosetCount int `json:"single_closet_count"`
	DoubleClosetCount int `json:"double_closet_count"`

	PaintWalls        *bool `json:"paint_walls,omitempty"`
	PaintCeilings     *bool `json:"paint_ceilings,omitempty"`
	PaintTrim         *bool `json:"paint_trim,omitempty"`
	PaintBaseboard    *bool `json:"paint_baseboard,omitempty"`
	PaintDoors        *bool `json:"paint_doors,omitempty"`
	PaintJambs        *bool `json:"paint_jambs,omitempty"`
	PaintWindowFrames *bool `json:"paint_window_frames,omitempty"`
	PaintDoorFrames   *bool `json:"paint_door_frames,omitempty"`
	HasCrownMoulding  bool  `json:"has_crown_moulding,omitempty"`

	IncludeWindows        *bool `json:"include_windows,omitempty"`
	IncludeDoors          *bool `json:"include_doors,omitempty"`
	IncludeTrim           *bool `json:"include_trim,omitempty"`
	IncludeClosetInterior *bool `json:"include_closet_interior,omitempty"`
	Included              *bool `json:"included,omitempty"` // master flag for the whole room

	WallCoats    int `json:"wall_coats,omitempty"` // 0 = unset, resolved at pricing time
	CeilingCoats int `json:"ceiling_coats,omitempty"`
	TrimCoats    int `json:"trim_coats,omitempty"`
	DoorCoats    int `json:"door_coats,omitempty"`

	IsBathroom    bool `json:"is_bathroom,omitempty"`
	HasAccentWall bool `json:"has_accent_wall,omitempty"`

	Openings []WallOpening `json:"openings,omitempty"`
}

// NewRoom creates a room with the given name and dimensions on floor 1.
func NewRoom(name string, length, width, height float64) Room {
	return Room{
		ID:     uuid.New().String()[:8],
		Name:   name,
		Floor:  1,
		Length: length,
		Width:  width,
		Height: height,
	}
}

// StairWall is one stairwell wall segment. Stairwell walls slope with the
// stairs, so the paintable height is the average of the tall and short ends.
type StairWall struct {
	TallHeight  float64 `json:"tall_height"`  // ft at the high end
	ShortHeight float64 `json:"short_height"` // ft at the low end
	DoubleSided bool    `json:"double_sided"` // painted on both sides
}

// MaxStairWalls is the maximum number of independent stairwell wall
// segments on one staircase.
const MaxStairWalls = 4

// Staircase represents a staircase with risers, handrail, spindles, and
// stairwell walls. Older records carry a single secondary stairwell pair
// instead of the walls array; StairwellWalls resolves both shapes.
type Staircase struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	RiserCount     int     `json:"riser_count"`
	RiserHeight    float64 `json:"riser_height"`          // ft
	TreadDepth     float64 `json:"tread_depth,omitempty"` // ft, legacy field, typically 0
	HandrailLength float64 `json:"handrail_length"`       // ft
	SpindleCount   int     `json:"spindle_count"`

	Walls []StairWall `json:"walls,omitempty"` // up to MaxStairWalls segments

	// Legacy secondary stairwell pair, superseded by Walls.
	SecondaryWallTall   float64 `json:"secondary_wall_tall,omitempty"`
	SecondaryWallShort  float64 `json:"secondary_wall_short,omitempty"`
	SecondaryDoubleSide bool    `json:"secondary_double_side,omitempty"`

	Coats    int   `json:"coats,omitempty"`
	Included *bool `json:"included,omitempty"`
}

// NewStaircase creates a staircase with the given name.
func NewStaircase(name string) Staircase {
	return Staircase{
		ID:   uuid.New().String()[:8],
		Name: name,
	}
}

// StairwellWalls resolves the staircase wall segments once, normalizing the
// legacy secondary-stairwell pair into the walls-array shape. At most
// MaxStairWalls segments are returned.
func (s Staircase) StairwellWalls() []StairWall {
	if len(s.Walls) > 0 {
		if len(s.Walls) > MaxStairWalls {
			return s.Walls[:MaxStairWalls]
		}
		return s.Walls
	}
	if s.SecondaryWallTall > 0 || s.SecondaryWallShort > 0 {
		return []StairWall{{
			TallHeight:  s.SecondaryWallTall,
			ShortHeight: s.SecondaryWallShort,
			DoubleSided: s.SecondaryDoubleSide,
		}}
	}
	return nil
}

// FireplaceVariant discriminates the two fireplace measurement models.
type FireplaceVariant string

const (
	FireplaceLegacy    FireplaceVariant = "legacy"     // Box dimensions: width x height x depth
	FireplaceThreePart FireplaceVariant = "three_part" // Mantel / legs / over-mantel
)

// Fixed paintable areas for the three-part fireplace model, in sq ft.
const (
	MantelArea = 6.0
	LegsArea   = 8.0
)

// Fireplace represents a paintable fireplace surround. New records use the
// three-part model (mantel, legs, measured over-mantel); older records use
// box dimensions. Variant is the explicit discriminant; records saved
// before it existed are inferred by ResolvedVariant.
type Fireplace struct {
	ID      string           `json:"id"`
	Name    string           `json:"name"`
	Variant FireplaceVariant `json:"variant,omitempty"`

	// Legacy box model.
	Width          float64 `json:"width,omitempty"`  // ft
	Height         float64 `json:"height,omitempty"` // ft
	Depth          float64 `json:"depth,omitempty"`  // ft
	TrimLinearFeet float64 `json:"trim_linear_feet,omitempty"`

	// Three-part model.
	HasMantel        bool    `json:"has_mantel,omitempty"`
	HasLegs          bool    `json:"has_legs,omitempty"`
	HasOverMantel    bool    `json:"has_over_mantel,omitempty"`
	OverMantelWidth  float64 `json:"over_mantel_width,omitempty"`  // ft
	OverMantelHeight float64 `json:"over_mantel_height,omitempty"` // ft

	Coats    int   `json:"coats,omitempty"`
	Included *bool `json:"included,omitempty"`
}

// NewFireplace creates a three-part fireplace with the given name.
func NewFireplace(name string) Fireplace {
	return Fireplace{
		ID:      uuid.New().String()[:8],
		Name:    name,
		Variant: FireplaceThreePart,
	}
}

// ResolvedVariant returns the explicit variant when set, otherwise infers
// it from which fields the record carries. Three-part flags win over box
// dimensions for records that carry both.
func (f Fireplace) ResolvedVariant() FireplaceVariant {
	if f.Variant == FireplaceLegacy || f.Variant == FireplaceThreePart {
		return f.Variant
	}
	if f.HasMantel || f.HasLegs || f.HasOverMantel {
		return FireplaceThreePart
	}
	return FireplaceLegacy
}

// BrickWall represents a brick or masonry wall painted with wall paint,
// optionally primed first.
type BrickWall struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	Width         float64 `json:"width"`  // ft
	Height        float64 `json:"height"` // ft
	IncludePrimer bool    `json:"include_primer"`
	Coats         int     `json:"coats,omitempty"` // 1 or 2

	Included *bool `json:"included,omitempty"`
}

// NewBrickWall creates a brick wall with the given name and dimensions.
func NewBrickWall(name string, width, height float64) BrickWall {
	return BrickWall{
		ID:     uuid.New().String()[:8],
		Name:   name,
		Width:  width,
		Height: height,
	}
}

// Project ties everything together for estimating and save/load.
type Project struct {
	Name       string      `json:"name"`
	Rooms      []Room      `json:"rooms"`
	Staircases []Staircase `json:"staircases"`
	Fireplaces []Fireplace `json:"fireplaces"`
	BrickWalls []BrickWall `json:"brick_walls"`

	// Coats overrides every object-level coat count when > 0.
	Coats int `json:"coats,omitempty"`

	// IncludeClosetInterior adds closet cavity interiors to every room
	// that has closets; a room-level flag overrides it per room.
	IncludeClosetInterior *bool `json:"include_closet_interior,omitempty"`

	MoveFurniture     bool `json:"move_furniture,omitempty"`
	RemoveNailsScrews bool `json:"remove_nails_screws,omitempty"`

	Quote *QuoteBuilder `json:"quote,omitempty"` // nil = default unfiltered quote
}

// NewProject creates an empty untitled project.
func NewProject() Project {
	return Project{
		Name:       "Untitled",
		Rooms:      []Room{},
		Staircases: []Staircase{},
		Fireplaces: []Fireplace{},
		BrickWalls: []BrickWall{},
	}
}
