package engine

import (
	"math"

	"github.com/piwi3910/PaintQuote/internal/model"
)

// primerFactor is the derived primer demand: primer gallons are estimated
// as a fraction of the wall, ceiling, and trim paint gallons rather than
// measured independently.
const primerFactor = 0.2

// LineItem is one row of the proposal receipt.
type LineItem struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	LaborCost     float64 `json:"labor_cost"`
	MaterialsCost float64 `json:"materials_cost"`
}

// PaintOptionResult is the priced outcome of one Good/Better/Best paint
// tier. Only the wall paint varies between tiers; labor scales from the
// already-aggregated base labor and non-wall materials are identical
// across options.
type PaintOptionResult struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	WallGallons   float64 `json:"wall_gallons"`
	WallPaintCost float64 `json:"wall_paint_cost"`
	LaborCost     float64 `json:"labor_cost"`
	MaterialsCost float64 `json:"materials_cost"` // wall paint + non-wall materials
	Total         float64 `json:"total"`
	Notes         string  `json:"notes,omitempty"`
}

// ProjectSummary is the aggregated quote for a whole project, recomputed
// on every call and never cached. Every numeric field is finite and >= 0;
// ItemizedPrices preserves input iteration order (rooms, staircases,
// fireplaces, brick walls, flat fees) since callers render it as a
// receipt.
type ProjectSummary struct {
	WallGallons    float64 `json:"wall_gallons"`
	CeilingGallons float64 `json:"ceiling_gallons"`
	TrimGallons    float64 `json:"trim_gallons"`
	DoorGallons    float64 `json:"door_gallons"`
	PrimerGallons  float64 `json:"primer_gallons"`

	WallArea    float64 `json:"wall_area"`
	CeilingArea float64 `json:"ceiling_area"`
	TrimArea    float64 `json:"trim_area"`
	DoorArea    float64 `json:"door_area"`

	DoorCount   int `json:"door_count"`
	WindowCount int `json:"window_count"`

	LaborTotal        float64 `json:"labor_total"`
	MaterialsTotal    float64 `json:"materials_total"`
	WallMaterialsCost float64 `json:"wall_materials_cost"`
	GrandTotal        float64 `json:"grand_total"`

	ItemizedPrices []LineItem          `json:"itemized_prices"`
	PaintOptions   []PaintOptionResult `json:"paint_options,omitempty"`
}

// Summarize aggregates every in-scope object of the project into a
// ProjectSummary. Room-selection and floor filters run before any
// per-category resolution; objects excluded by their own master flag or
// by the quote scope contribute nothing.
func (e *Estimator) Summarize(p model.Project) ProjectSummary {
	q := p.Quote
	var sum ProjectSummary
	sum.ItemizedPrices = []LineItem{}

	for _, r := range p.Rooms {
		if !q.IncludesRoom(r) {
			continue
		}
		rs := e.SummarizeRoom(r, p.Coats, p.IncludeClosetInterior, q)

		sum.WallGallons += rs.Walls.Gallons
		sum.CeilingGallons += rs.Ceilings.Gallons
		sum.TrimGallons += rs.Trim.Gallons
		sum.DoorGallons += rs.Doors.Gallons

		sum.WallArea += rs.Walls.Area
		sum.CeilingArea += rs.Ceilings.Area
		sum.TrimArea += rs.Trim.Area
		sum.DoorArea += rs.Doors.Area

		sum.DoorCount += rs.DoorCount
		sum.WindowCount += rs.WindowCount

		sum.LaborTotal += rs.Labor
		sum.MaterialsTotal += rs.Materials
		sum.WallMaterialsCost += rs.Walls.Materials

		sum.ItemizedPrices = append(sum.ItemizedPrices, LineItem{
			ID:            r.ID,
			Name:          r.Name,
			Price:         rs.Total,
			LaborCost:     rs.Labor,
			MaterialsCost: rs.Materials,
		})
	}

	includeStaircases := q == nil || model.Enabled(q.IncludeStaircases)
	for _, st := range p.Staircases {
		if !model.Enabled(st.Included) || !includeStaircases {
			continue
		}
		ss := e.SummarizeStaircase(st, p.Coats)

		sum.WallGallons += ss.Walls.Gallons
		sum.CeilingGallons += ss.Ceilings.Gallons
		sum.TrimGallons += ss.Trim.Gallons

		sum.WallArea += ss.Walls.Area
		sum.CeilingArea += ss.Ceilings.Area
		sum.TrimArea += ss.Trim.Area

		sum.LaborTotal += ss.Labor
		sum.MaterialsTotal += ss.Materials
		sum.WallMaterialsCost += ss.Walls.Materials

		sum.ItemizedPrices = append(sum.ItemizedPrices, LineItem{
			ID:            st.ID,
			Name:          st.Name,
			Price:         ss.Total,
			LaborCost:     ss.Labor,
			MaterialsCost: ss.Materials,
		})
	}

	includeFireplaces := q == nil || model.Enabled(q.IncludeFireplaces)
	for _, f := range p.Fireplaces {
		if !model.Enabled(f.Included) || !includeFireplaces {
			continue
		}
		fs := e.SummarizeFireplace(f, p.Coats)

		sum.TrimGallons += fs.Gallons
		sum.TrimArea += fs.Area
		sum.LaborTotal += fs.Labor
		sum.MaterialsTotal += fs.Materials

		sum.ItemizedPrices = append(sum.ItemizedPrices, LineItem{
			ID:            f.ID,
			Name:          f.Name,
			Price:         fs.Total,
			LaborCost:     fs.Labor,
			MaterialsCost: fs.Materials,
		})
	}

	primerAllowed := q == nil || model.Enabled(q.IncludePrimer)
	for _, b := range p.BrickWalls {
		if !model.Enabled(b.Included) {
			continue
		}
		bs := e.SummarizeBrickWall(b, p.Coats, primerAllowed)

		sum.WallGallons += bs.Gallons
		sum.PrimerGallons += bs.PrimerGallons
		sum.WallArea += bs.Area
		sum.LaborTotal += bs.Labor
		sum.MaterialsTotal += bs.Materials
		sum.WallMaterialsCost += bs.Materials - bs.PrimerCost

		sum.ItemizedPrices = append(sum.ItemizedPrices, LineItem{
			ID:            b.ID,
			Name:          b.Name,
			Price:         bs.Total,
			LaborCost:     bs.Labor,
			MaterialsCost: bs.Materials,
		})
	}

	// Derived primer: a fraction of the finish-paint demand, billed only
	// when primer is in scope. Brick walls keep their measured primer.
	if primerAllowed {
		derived := primerFactor * (sum.WallGallons + sum.CeilingGallons + sum.TrimGallons)
		sum.PrimerGallons += derived
		primerCost := materialCost(derived, e.pricing.PrimerPerGallon)
		sum.MaterialsTotal += primerCost
	}

	// Flat-fee line items.
	if p.MoveFurniture && e.pricing.FurnitureMovingFee > 0 {
		fee := e.pricing.FurnitureMovingFee
		sum.LaborTotal += fee
		sum.ItemizedPrices = append(sum.ItemizedPrices, LineItem{
			ID:        "fee-furniture",
			Name:      "Furniture moving",
			Price:     fee,
			LaborCost: fee,
		})
	}
	if p.RemoveNailsScrews && e.pricing.NailsRemovalFee > 0 {
		fee := e.pricing.NailsRemovalFee
		sum.LaborTotal += fee
		sum.ItemizedPrices = append(sum.ItemizedPrices, LineItem{
			ID:        "fee-nails",
			Name:      "Nail and screw removal",
			Price:     fee,
			LaborCost: fee,
		})
	}

	sum.WallGallons = model.NonNegative(sum.WallGallons)
	sum.CeilingGallons = model.NonNegative(sum.CeilingGallons)
	sum.TrimGallons = model.NonNegative(sum.TrimGallons)
	sum.DoorGallons = model.NonNegative(sum.DoorGallons)
	sum.PrimerGallons = model.NonNegative(sum.PrimerGallons)
	sum.LaborTotal = model.NonNegative(sum.LaborTotal)
	sum.MaterialsTotal = model.NonNegative(sum.MaterialsTotal)
	sum.GrandTotal = model.NonNegative(sum.LaborTotal + sum.MaterialsTotal)

	sum.PaintOptions = e.computePaintOptions(sum, q)
	return sum
}

// computePaintOptions prices each enabled Good/Better/Best tier against
// the aggregated summary. Wall gallons are recomputed from the option's
// coverage rate (rounded up to one decimal); labor scales the aggregated
// base labor; ceilings, trim, doors, and primer stay at standard pricing.
func (e *Estimator) computePaintOptions(sum ProjectSummary, q *model.QuoteBuilder) []PaintOptionResult {
	opts := q.EnabledPaintOptions()
	if len(opts) == 0 {
		return nil
	}

	nonWallMaterials := model.NonNegative(sum.MaterialsTotal - sum.WallMaterialsCost)

	results := make([]PaintOptionResult, 0, len(opts))
	for _, opt := range opts {
		coverage := math.Max(1, model.SafeNumber(opt.CoverageSqFt, 1))
		gallons := math.Ceil(sum.WallArea/coverage*10) / 10

		markup := opt.MaterialMarkup
		if markup <= 0 {
			markup = 1.0
		}
		laborMult := opt.LaborMultiplier
		if laborMult <= 0 {
			laborMult = 1.0
		}

		wallPaint := model.NonNegative(gallons * model.NonNegative(opt.PricePerGallon) * markup)
		labor := model.NonNegative(sum.LaborTotal * laborMult)
		materials := wallPaint + nonWallMaterials

		results = append(results, PaintOptionResult{
			ID:            opt.ID,
			Name:          opt.Name,
			WallGallons:   gallons,
			WallPaintCost: wallPaint,
			LaborCost:     labor,
			MaterialsCost: materials,
			Total:         model.NonNegative(labor + materials),
			Notes:         opt.Notes,
		})
	}
	return results
}

// ShoppingList is the optimized bucket purchase for every paint product
// in the summary.
type ShoppingList struct {
	Wall    model.PurchasePlan `json:"wall"`
	Ceiling model.PurchasePlan `json:"ceiling"`
	Trim    model.PurchasePlan `json:"trim"`
	Door    model.PurchasePlan `json:"door"`
	Primer  model.PurchasePlan `json:"primer"`

	TotalCost float64 `json:"total_cost"`
}

// ShoppingList converts the summary's aggregated gallon demands into
// per-product bucket purchases and a total purchase cost. Five-gallon
// pails are preferred wherever the pricing table configures a pail price.
func (e *Estimator) ShoppingList(sum ProjectSummary) ShoppingList {
	p := e.pricing
	list := ShoppingList{
		Wall:    model.CalculatePaintPurchase(sum.WallGallons),
		Ceiling: model.CalculatePaintPurchase(sum.CeilingGallons),
		Trim:    model.CalculatePaintPurchase(sum.TrimGallons),
		Door:    model.CalculatePaintPurchase(sum.DoorGallons),
		Primer:  model.CalculatePaintPurchase(sum.PrimerGallons),
	}
	list.TotalCost = model.CalculatePaintCost(sum.WallGallons, p.WallPaintPerGallon, p.WallPaintPer5Gallon) +
		model.CalculatePaintCost(sum.CeilingGallons, p.CeilingPaintPerGallon, p.CeilingPaintPer5Gallon) +
		model.CalculatePaintCost(sum.TrimGallons, p.TrimPaintPerGallon, p.TrimPaintPer5Gallon) +
		model.CalculatePaintCost(sum.DoorGallons, p.DoorPaintPerGallon, 0) +
		model.CalculatePaintCost(sum.PrimerGallons, p.PrimerPerGallon, p.PrimerPer5Gallon)
	return list
}

// Supplies estimates masking supplies for the project from its aggregated
// taped edges (baseboard, crown, and casing runs approximated by the trim
// area over the trim width) and protected floor area.
func (e *Estimator) Supplies(p model.Project, sum ProjectSummary, wastePercent, tapeRollPrice, dropClothPrice float64) model.SuppliesSummary {
	trimW := math.Max(0.01, model.SafeNumber(e.settings.TrimWidth, 0.01))
	tapedFeet := sum.TrimArea / trimW

	var floorArea float64
	for _, r := range p.Rooms {
		if !p.Quote.IncludesRoom(r) {
			continue
		}
		area := model.NonNegative(r.ManualArea)
		if area == 0 {
			area = model.NonNegative(r.Length) * model.NonNegative(r.Width)
		}
		floorArea += area
	}

	return model.CalculateSupplies(tapedFeet, floorArea, wastePercent, tapeRollPrice, dropClothPrice)
}
