package model

import "github.com/google/uuid"

// MaxPaintOptions is the number of paint tiers a quote may carry
// (Good / Better / Best).
const MaxPaintOptions = 3

// PaintOption is one alternate wall-paint tier offered on a proposal.
// Only wall paint varies between tiers: ceilings, trim, doors, and primer
// are priced at the standard pricing-table rates for every option.
type PaintOption struct {
	ID              string  `json:"id"`
	Enabled         bool    `json:"enabled"`
	Name            string  `json:"name"`
	PricePerGallon  float64 `json:"price_per_gallon"`
	CoverageSqFt    float64 `json:"coverage_sqft"`    // sq ft per gallon
	MaterialMarkup  float64 `json:"material_markup"`  // multiplier on wall paint cost, 0 = 1.0
	LaborMultiplier float64 `json:"labor_multiplier"` // multiplier on base labor, 0 = 1.0
	Notes           string  `json:"notes,omitempty"`
}

// NewPaintOption creates an enabled paint option with neutral multipliers.
func NewPaintOption(name string, pricePerGallon, coverage float64) PaintOption {
	return PaintOption{
		ID:              uuid.New().String()[:8],
		Enabled:         true,
		Name:            name,
		PricePerGallon:  pricePerGallon,
		CoverageSqFt:    coverage,
		MaterialMarkup:  1.0,
		LaborMultiplier: 1.0,
	}
}

// QuoteBuilder is the quote-level scope configuration: which rooms, floors,
// and paint categories appear in a given proposal. Every toggle is a
// pointer with nil meaning "include"; only an explicit false excludes.
// A nil *QuoteBuilder anywhere in the engine behaves as the default,
// unfiltered quote.
type QuoteBuilder struct {
	IncludeAllRooms *bool    `json:"include_all_rooms,omitempty"`
	IncludedRoomIDs []string `json:"included_room_ids,omitempty"`

	IncludeFloor1 *bool `json:"include_floor_1,omitempty"`
	IncludeFloor2 *bool `json:"include_floor_2,omitempty"`
	IncludeFloor3 *bool `json:"include_floor_3,omitempty"`
	IncludeFloor4 *bool `json:"include_floor_4,omitempty"`
	IncludeFloor5 *bool `json:"include_floor_5,omitempty"`

	IncludeWalls      *bool `json:"include_walls,omitempty"`
	IncludeCeilings   *bool `json:"include_ceilings,omitempty"`
	IncludeTrim       *bool `json:"include_trim,omitempty"`
	IncludeDoors      *bool `json:"include_doors,omitempty"`
	IncludeWindows    *bool `json:"include_windows,omitempty"`
	IncludeBaseboards *bool `json:"include_baseboards,omitempty"`
	IncludeClosets    *bool `json:"include_closets,omitempty"`

	IncludeStaircases *bool `json:"include_staircases,omitempty"`
	IncludeFireplaces *bool `json:"include_fireplaces,omitempty"`
	// IncludeBuiltIns is carried for record compatibility; no billable
	// built-in object type exists in the engine.
	IncludeBuiltIns *bool `json:"include_built_ins,omitempty"`
	IncludePrimer   *bool `json:"include_primer,omitempty"`

	PaintOptions               []PaintOption `json:"paint_options,omitempty"`
	ShowPaintOptionsInProposal bool          `json:"show_paint_options_in_proposal,omitempty"`
}

// DefaultQuoteBuilder returns the unfiltered quote: everything included.
func DefaultQuoteBuilder() QuoteBuilder {
	return QuoteBuilder{}
}

// Enabled reads a default-true toggle: nil counts as true, only an
// explicit false disables.
func Enabled(flag *bool) bool {
	return flag == nil || *flag
}

// ResolveInclusion implements the combined inclusion rule for one paint
// category: the category is painted iff both the object-level and the
// quote-level toggles allow it. Either side absent defaults to "paint it";
// an explicit false on either side is a hard veto.
func ResolveInclusion(objectFlag, quoteFlag *bool) bool {
	return Enabled(objectFlag) && Enabled(quoteFlag)
}

// IncludesFloor reports whether the given floor number is in scope.
// Floors outside 1..5 have no toggle and are always included.
func (q *QuoteBuilder) IncludesFloor(floor int) bool {
	if q == nil {
		return true
	}
	switch floor {
	case 1:
		return Enabled(q.IncludeFloor1)
	case 2:
		return Enabled(q.IncludeFloor2)
	case 3:
		return Enabled(q.IncludeFloor3)
	case 4:
		return Enabled(q.IncludeFloor4)
	case 5:
		return Enabled(q.IncludeFloor5)
	default:
		return true
	}
}

// IncludesRoom reports whether a room is in scope for this quote. The
// room-selection and floor filters run before any per-category
// resolution, so an out-of-scope room contributes nothing regardless of
// its own category flags.
func (q *QuoteBuilder) IncludesRoom(r Room) bool {
	if !Enabled(r.Included) {
		return false
	}
	if q == nil {
		return true
	}
	if !q.IncludesFloor(r.Floor) {
		return false
	}
	if !Enabled(q.IncludeAllRooms) {
		for _, id := range q.IncludedRoomIDs {
			if id == r.ID {
				return true
			}
		}
		return false
	}
	return true
}

// EnabledPaintOptions returns the enabled paint tiers, capped at
// MaxPaintOptions.
func (q *QuoteBuilder) EnabledPaintOptions() []PaintOption {
	if q == nil {
		return nil
	}
	var opts []PaintOption
	for _, opt := range q.PaintOptions {
		if !opt.Enabled {
			continue
		}
		opts = append(opts, opt)
		if len(opts) == MaxPaintOptions {
			break
		}
	}
	return opts
}
