// Package engine implements the estimation engine: it combines the
// geometry calculators, the combined inclusion rule, and a pricing table
// into per-object cost breakdowns and project-level quote summaries.
//
// Every function is a pure computation over value inputs: the engine
// performs no I/O, holds no mutable state between calls, and is safe for
// concurrent use. Malformed numeric input is normalized rather than
// raised, so a partially entered project always prices to a defined,
// non-negative result.
package engine

import (
	"math"

	"github.com/piwi3910/PaintQuote/internal/model"
)

// Line is one paint category's billed quantities for a single object.
// A category vetoed by the combined inclusion rule contributes a zero
// Line: zero area, gallons, labor, and materials alike.
type Line struct {
	Area       float64 `json:"area"`        // sq ft
	LinearFeet float64 `json:"linear_feet"` // ft, for footage-priced categories
	Gallons    float64 `json:"gallons"`
	Labor      float64 `json:"labor"`
	Materials  float64 `json:"materials"`
}

// Total returns the billed price of the line.
func (l Line) Total() float64 {
	return model.NonNegative(l.Labor + l.Materials)
}

// Estimator prices objects against a pricing table and calculation
// settings. Both are treated as immutable snapshots; the estimator never
// writes back to them.
type Estimator struct {
	pricing  model.PricingTable
	settings model.CalculationSettings
}

// New creates an estimator for the given pricing table and settings.
func New(pricing model.PricingTable, settings model.CalculationSettings) *Estimator {
	return &Estimator{pricing: pricing, settings: settings}
}

// gallonsFor converts an area into paint gallons for the given coverage
// rate and coat count. Coverage is floored at 1 sq ft/gal so an
// unconfigured rate cannot divide by zero.
func gallonsFor(area, coverage float64, coats int) float64 {
	area = model.NonNegative(area)
	if area == 0 {
		return 0
	}
	return area / math.Max(1, model.SafeNumber(coverage, 1)) * float64(coats)
}

// materialCost prices gallons at a per-gallon rate. Gallons are always
// rounded up before pricing: a partial gallon still requires buying a
// full unit.
func materialCost(gallons, pricePerGallon float64) float64 {
	gallons = model.NonNegative(gallons)
	if gallons == 0 {
		return 0
	}
	return math.Ceil(gallons) * model.NonNegative(pricePerGallon)
}

// RoomSummary is the per-room breakdown of areas, gallons, labor, and
// materials, one Line per paint category. Door and window counts are
// physical counts and are never gated by paint toggles.
type RoomSummary struct {
	Walls      Line `json:"walls"`
	Ceilings   Line `json:"ceilings"`
	Trim       Line `json:"trim"`
	Baseboards Line `json:"baseboards"`
	Doors      Line `json:"doors"`
	Windows    Line `json:"windows"`
	Closets    Line `json:"closets"`

	DoorCount   int `json:"door_count"`
	WindowCount int `json:"window_count"`

	Labor     float64 `json:"labor"`
	Materials float64 `json:"materials"`
	Total     float64 `json:"total"`
}

// roomScope carries the project-level overrides that apply to every room.
type roomScope struct {
	coats                 int
	includeClosetInterior *bool
	quote                 *model.QuoteBuilder
}

// SummarizeRoom prices a single room under the given project-level coat
// override, closet-interior default, and quote scope. A nil quote behaves
// as the default, unfiltered quote.
func (e *Estimator) SummarizeRoom(r model.Room, projectCoats int, projectClosetInterior *bool, quote *model.QuoteBuilder) RoomSummary {
	return e.summarizeRoom(r, roomScope{
		coats:                 projectCoats,
		includeClosetInterior: projectClosetInterior,
		quote:                 quote,
	})
}

func (e *Estimator) summarizeRoom(r model.Room, scope roomScope) RoomSummary {
	p, s, q := e.pricing, e.settings, scope.quote

	sum := RoomSummary{
		DoorCount:   r.DoorCount,
		WindowCount: r.WindowCount,
	}

	var qWalls, qCeilings, qTrim, qDoors, qWindows, qBaseboards, qClosets *bool
	if q != nil {
		qWalls, qCeilings, qTrim = q.IncludeWalls, q.IncludeCeilings, q.IncludeTrim
		qDoors, qWindows = q.IncludeDoors, q.IncludeWindows
		qBaseboards, qClosets = q.IncludeBaseboards, q.IncludeClosets
	}

	// Closet interiors: the room-level flag overrides the project-level
	// default; the quote-level closet toggle can veto both.
	closetObjFlag := r.IncludeClosetInterior
	if closetObjFlag == nil {
		closetObjFlag = scope.includeClosetInterior
	}
	closetsIncluded := model.ResolveInclusion(closetObjFlag, qClosets)
	hasClosets := r.SingleClosetCount+r.DoubleClosetCount > 0
	var closet model.ClosetInteriorMetrics
	if closetsIncluded && hasClosets {
		closet = model.GetClosetInteriorMetrics(r, s)
	}

	wallCoats := model.ResolveCoats(scope.coats, r.WallCoats)
	ceilingCoats := model.ResolveCoats(scope.coats, r.CeilingCoats)
	trimCoats := model.ResolveCoats(scope.coats, r.TrimCoats)
	doorCoats := model.ResolveCoats(scope.coats, r.DoorCoats)

	bathroomMult := 1.0
	if r.IsBathroom && p.BathroomMultiplier > 0 {
		bathroomMult = p.BathroomMultiplier
	}
	closetMult := 1.0
	if p.ClosetMultiplier > 0 {
		closetMult = p.ClosetMultiplier
	}

	// Walls.
	if model.ResolveInclusion(r.PaintWalls, qWalls) {
		roomWall := model.RoomWallArea(r, s)
		mult := p.CoatMultiplier(wallCoats)

		labor := roomWall * p.WallLaborPerSqFt * mult
		if r.HasAccentWall && p.AccentWallMultiplier > 0 {
			labor *= p.AccentWallMultiplier
		}
		labor *= bathroomMult
		labor += closet.WallArea * p.WallLaborPerSqFt * mult * closetMult

		area := roomWall + closet.WallArea
		gallons := gallonsFor(area, p.WallCoverage, wallCoats)
		sum.Walls = Line{
			Area:      area,
			Gallons:   gallons,
			Labor:     model.NonNegative(labor),
			Materials: materialCost(gallons, p.WallPaintPerGallon),
		}
	}

	// Ceilings.
	if model.ResolveInclusion(r.PaintCeilings, qCeilings) {
		roomCeiling := model.RoomCeilingArea(r)
		mult := p.CoatMultiplier(ceilingCoats)

		labor := roomCeiling * p.CeilingLaborPerSqFt * mult * bathroomMult
		labor += closet.CeilingArea * p.CeilingLaborPerSqFt * mult * closetMult

		area := roomCeiling + closet.CeilingArea
		gallons := gallonsFor(area, p.CeilingCoverage, ceilingCoats)
		sum.Ceilings = Line{
			Area:      area,
			Gallons:   gallons,
			Labor:     model.NonNegative(labor),
			Materials: materialCost(gallons, p.CeilingPaintPerGallon),
		}
	}

	baseboardsPainted := model.ResolveInclusion(r.PaintBaseboard, qBaseboards)
	doorsIncluded := model.ResolveInclusion(r.IncludeDoors, qDoors)
	windowsIncluded := model.ResolveInclusion(r.IncludeWindows, qWindows)

	// Baseboards (footage-priced; the painted face area joins trim below).
	var baseboardFeet float64
	if baseboardsPainted {
		baseboardFeet = model.BaseboardLength(r, s, closetsIncluded && hasClosets)
		mult := p.CoatMultiplier(trimCoats)
		sum.Baseboards = Line{
			LinearFeet: baseboardFeet,
			Labor:      model.NonNegative(baseboardFeet * p.BaseboardLaborPerFt * mult),
		}
	}

	// Trim: the sum of independently gated sub-areas, converted to trim
	// paint. Crown moulding is the only trim element priced by footage
	// inside this line; frames and baseboards carry their labor on their
	// own lines.
	if trimIncluded := model.ResolveInclusion(r.PaintTrim, qTrim) && model.Enabled(r.IncludeTrim); trimIncluded {
		var area float64
		if model.Enabled(r.PaintWindowFrames) && windowsIncluded {
			area += model.WindowFrameTrimArea(r, s)
		}
		if model.Enabled(r.PaintDoorFrames) && doorsIncluded {
			area += model.DoorFrameTrimArea(r, s)
		}
		if model.Enabled(r.PaintJambs) && doorsIncluded {
			area += model.DoorJambTrimArea(r, s)
		}
		// Closet door casings are trimmed whenever trim painting is on.
		area += model.ClosetFrameTrimArea(r, s)
		if baseboardsPainted {
			area += model.BaseboardTrimArea(baseboardFeet, s)
		}

		mult := p.CoatMultiplier(trimCoats)
		var labor float64
		if r.HasCrownMoulding {
			area += model.CrownTrimArea(r, s)
			labor = model.RoomPerimeter(r) * p.CrownLaborPerFt * mult
		}
		area += model.OpeningTrimArea(r, s)

		gallons := gallonsFor(area, p.TrimCoverage, trimCoats)
		sum.Trim = Line{
			Area:      area,
			Gallons:   gallons,
			Labor:     model.NonNegative(labor),
			Materials: materialCost(gallons, p.TrimPaintPerGallon),
		}
	}

	// Doors.
	if model.ResolveInclusion(r.PaintDoors, qDoors) && doorsIncluded && r.DoorCount > 0 {
		area := float64(r.DoorCount) * model.NonNegative(s.DoorWidth) * model.NonNegative(s.DoorHeight)
		mult := p.CoatMultiplier(doorCoats)
		gallons := gallonsFor(area, p.DoorCoverage, doorCoats)
		sum.Doors = Line{
			Area:      area,
			Gallons:   gallons,
			Labor:     model.NonNegative(float64(r.DoorCount) * p.DoorLabor * mult),
			Materials: materialCost(gallons, p.DoorPaintPerGallon),
		}
	}

	// Windows: per-unit frame labor; the frame paint itself is trim area.
	if model.Enabled(r.PaintWindowFrames) && windowsIncluded && r.WindowCount > 0 {
		mult := p.CoatMultiplier(trimCoats)
		sum.Windows = Line{
			Labor: model.NonNegative(float64(r.WindowCount) * p.WindowLabor * mult),
		}
	}

	// Closets: per-unit labor when the cavity interiors are in the quote.
	if closetsIncluded && hasClosets {
		count := float64(r.SingleClosetCount + r.DoubleClosetCount)
		mult := p.CoatMultiplier(wallCoats)
		sum.Closets = Line{
			Labor: model.NonNegative(count * p.ClosetLabor * mult),
		}
	}

	sum.Labor = sum.Walls.Labor + sum.Ceilings.Labor + sum.Trim.Labor +
		sum.Baseboards.Labor + sum.Doors.Labor + sum.Windows.Labor + sum.Closets.Labor
	sum.Materials = sum.Walls.Materials + sum.Ceilings.Materials + sum.Trim.Materials +
		sum.Doors.Materials
	sum.Total = model.NonNegative(sum.Labor + sum.Materials)
	return sum
}

// StaircaseSummary is the per-staircase breakdown. Stairwell walls take
// wall paint, ceiling patches take ceiling paint, risers and treads take
// trim paint; the handrail and spindles are labor-only items.
type StaircaseSummary struct {
	Walls    Line `json:"walls"`
	Ceilings Line `json:"ceilings"`
	Trim     Line `json:"trim"`
	Handrail Line `json:"handrail"`
	Spindles Line `json:"spindles"`

	Labor     float64 `json:"labor"`
	Materials float64 `json:"materials"`
	Total     float64 `json:"total"`
}

// SummarizeStaircase prices a single staircase.
func (e *Estimator) SummarizeStaircase(st model.Staircase, projectCoats int) StaircaseSummary {
	p := e.pricing
	areas := model.CalculateStaircaseAreas(st)
	coats := model.ResolveCoats(projectCoats, st.Coats)
	mult := p.CoatMultiplier(coats)

	var sum StaircaseSummary

	wallGallons := gallonsFor(areas.WallArea, p.WallCoverage, coats)
	sum.Walls = Line{
		Area:      areas.WallArea,
		Gallons:   wallGallons,
		Labor:     model.NonNegative(areas.WallArea * p.WallLaborPerSqFt * mult),
		Materials: materialCost(wallGallons, p.WallPaintPerGallon),
	}

	ceilGallons := gallonsFor(areas.CeilingArea, p.CeilingCoverage, coats)
	sum.Ceilings = Line{
		Area:      areas.CeilingArea,
		Gallons:   ceilGallons,
		Labor:     model.NonNegative(areas.CeilingArea * p.CeilingLaborPerSqFt * mult),
		Materials: materialCost(ceilGallons, p.CeilingPaintPerGallon),
	}

	trimArea := areas.RiserArea + areas.TreadArea
	trimGallons := gallonsFor(trimArea, p.TrimCoverage, coats)
	sum.Trim = Line{
		Area:      trimArea,
		Gallons:   trimGallons,
		Labor:     model.NonNegative(float64(st.RiserCount) * p.RiserLabor * mult),
		Materials: materialCost(trimGallons, p.TrimPaintPerGallon),
	}

	handrail := model.NonNegative(st.HandrailLength)
	sum.Handrail = Line{
		LinearFeet: handrail,
		Labor:      model.NonNegative(handrail * p.HandrailLaborPerFt * mult),
	}
	sum.Spindles = Line{
		Labor: model.NonNegative(float64(st.SpindleCount) * p.SpindleLabor * mult),
	}

	sum.Labor = sum.Walls.Labor + sum.Ceilings.Labor + sum.Trim.Labor +
		sum.Handrail.Labor + sum.Spindles.Labor
	sum.Materials = sum.Walls.Materials + sum.Ceilings.Materials + sum.Trim.Materials
	sum.Total = model.NonNegative(sum.Labor + sum.Materials)
	return sum
}

// FireplaceSummary is the per-fireplace breakdown. Surrounds take trim
// paint; labor depends on the measurement variant.
type FireplaceSummary struct {
	Area      float64 `json:"area"`
	Gallons   float64 `json:"gallons"`
	Labor     float64 `json:"labor"`
	Materials float64 `json:"materials"`
	Total     float64 `json:"total"`
}

// SummarizeFireplace prices a single fireplace. The three-part model
// bills the mantel and legs at their unit rates plus the over-mantel at
// the wall rate; the legacy box model bills the flat fireplace rate.
func (e *Estimator) SummarizeFireplace(f model.Fireplace, projectCoats int) FireplaceSummary {
	p := e.pricing
	area := model.CalculateFireplaceArea(f)
	coats := model.ResolveCoats(projectCoats, f.Coats)
	mult := p.CoatMultiplier(coats)

	var labor float64
	switch f.ResolvedVariant() {
	case model.FireplaceThreePart:
		if f.HasMantel {
			labor += p.MantelLabor
		}
		if f.HasLegs {
			labor += p.LegsLabor
		}
		if f.HasOverMantel {
			over := model.NonNegative(f.OverMantelWidth) * model.NonNegative(f.OverMantelHeight)
			labor += over * p.WallLaborPerSqFt
		}
	default:
		labor = p.FireplaceLabor
	}
	labor *= mult

	gallons := gallonsFor(area, p.TrimCoverage, coats)
	materials := materialCost(gallons, p.TrimPaintPerGallon)
	return FireplaceSummary{
		Area:      area,
		Gallons:   gallons,
		Labor:     model.NonNegative(labor),
		Materials: materials,
		Total:     model.NonNegative(labor + materials),
	}
}

// BrickWallSummary is the per-brick-wall breakdown. Brick takes wall
// paint plus an optional primer coat.
type BrickWallSummary struct {
	Area          float64 `json:"area"`
	Gallons       float64 `json:"gallons"`
	PrimerGallons float64 `json:"primer_gallons"`
	PrimerCost    float64 `json:"primer_cost"`
	Labor         float64 `json:"labor"`
	Materials     float64 `json:"materials"`
	Total         float64 `json:"total"`
}

// SummarizeBrickWall prices a single brick wall. primerAllowed is the
// quote-level primer toggle; the wall's own IncludePrimer flag must also
// be set for primer to be billed.
func (e *Estimator) SummarizeBrickWall(b model.BrickWall, projectCoats int, primerAllowed bool) BrickWallSummary {
	p := e.pricing
	area := model.CalculateBrickWallArea(b)
	coats := model.ResolveCoats(projectCoats, b.Coats)
	mult := p.CoatMultiplier(coats)

	gallons := gallonsFor(area, p.WallCoverage, coats)
	labor := model.NonNegative(area * p.WallLaborPerSqFt * mult)
	materials := materialCost(gallons, p.WallPaintPerGallon)

	var primerGallons, primerCost float64
	if b.IncludePrimer && primerAllowed {
		primerGallons = gallonsFor(area, p.PrimerCoverage, 1)
		primerCost = materialCost(primerGallons, p.PrimerPerGallon)
		materials += primerCost
	}

	return BrickWallSummary{
		Area:          area,
		Gallons:       gallons,
		PrimerGallons: primerGallons,
		PrimerCost:    primerCost,
		Labor:         labor,
		Materials:     materials,
		Total:         model.NonNegative(labor + materials),
	}
}
