package model

// PricingTable holds every unit rate used to price a quote. It is owned by
// configuration and treated as an immutable snapshot for the duration of a
// calculation; the engine never writes back to it.
type PricingTable struct {
	// Per-square-foot labor rates.
	WallLaborPerSqFt    float64 `json:"wall_labor_per_sqft"`
	CeilingLaborPerSqFt float64 `json:"ceiling_labor_per_sqft"`

	// Per-linear-foot labor rates.
	BaseboardLaborPerFt float64 `json:"baseboard_labor_per_ft"`
	HandrailLaborPerFt  float64 `json:"handrail_labor_per_ft"`
	CrownLaborPerFt     float64 `json:"crown_labor_per_ft"`

	// Per-unit fixed labor.
	DoorLabor      float64 `json:"door_labor"`
	WindowLabor    float64 `json:"window_labor"`
	ClosetLabor    float64 `json:"closet_labor"`
	RiserLabor     float64 `json:"riser_labor"`
	SpindleLabor   float64 `json:"spindle_labor"`
	MantelLabor    float64 `json:"mantel_labor"`
	LegsLabor      float64 `json:"legs_labor"`
	FireplaceLabor float64 `json:"fireplace_labor"`

	// Material prices per gallon and per 5-gallon bucket. A zero 5-gallon
	// price means the product is only sold by the gallon.
	WallPaintPerGallon     float64 `json:"wall_paint_per_gallon"`
	WallPaintPer5Gallon    float64 `json:"wall_paint_per_5gallon"`
	CeilingPaintPerGallon  float64 `json:"ceiling_paint_per_gallon"`
	CeilingPaintPer5Gallon float64 `json:"ceiling_paint_per_5gallon"`
	TrimPaintPerGallon     float64 `json:"trim_paint_per_gallon"`
	TrimPaintPer5Gallon    float64 `json:"trim_paint_per_5gallon"`
	DoorPaintPerGallon     float64 `json:"door_paint_per_gallon"`
	PrimerPerGallon        float64 `json:"primer_per_gallon"`
	PrimerPer5Gallon       float64 `json:"primer_per_5gallon"`

	// Coverage rates in sq ft per gallon.
	WallCoverage    float64 `json:"wall_coverage"`
	CeilingCoverage float64 `json:"ceiling_coverage"`
	TrimCoverage    float64 `json:"trim_coverage"`
	DoorCoverage    float64 `json:"door_coverage"`
	PrimerCoverage  float64 `json:"primer_coverage"`

	// Labor multipliers.
	SecondCoatLaborMultiplier float64 `json:"second_coat_labor_multiplier"`
	AccentWallMultiplier      float64 `json:"accent_wall_multiplier"`
	BathroomMultiplier        float64 `json:"bathroom_multiplier"`
	ClosetMultiplier          float64 `json:"closet_multiplier"`

	// Optional flat fees.
	FurnitureMovingFee float64 `json:"furniture_moving_fee"`
	NailsRemovalFee    float64 `json:"nails_removal_fee"`
}

// DefaultPricing returns a pricing table with typical residential rates.
func DefaultPricing() PricingTable {
	return PricingTable{
		WallLaborPerSqFt:    1.50,
		CeilingLaborPerSqFt: 1.25,

		BaseboardLaborPerFt: 2.00,
		HandrailLaborPerFt:  6.00,
		CrownLaborPerFt:     3.00,

		DoorLabor:      65.0,
		WindowLabor:    45.0,
		ClosetLabor:    90.0,
		RiserLabor:     12.0,
		SpindleLabor:   9.0,
		MantelLabor:    85.0,
		LegsLabor:      70.0,
		FireplaceLabor: 200.0,

		WallPaintPerGallon:     45.0,
		WallPaintPer5Gallon:    200.0,
		CeilingPaintPerGallon:  38.0,
		CeilingPaintPer5Gallon: 170.0,
		TrimPaintPerGallon:     52.0,
		TrimPaintPer5Gallon:    235.0,
		DoorPaintPerGallon:     52.0,
		PrimerPerGallon:        28.0,
		PrimerPer5Gallon:       120.0,

		WallCoverage:    350.0,
		CeilingCoverage: 350.0,
		TrimCoverage:    400.0,
		DoorCoverage:    400.0,
		PrimerCoverage:  300.0,

		SecondCoatLaborMultiplier: 2.0,
		AccentWallMultiplier:      1.25,
		BathroomMultiplier:        1.15,
		ClosetMultiplier:          1.10,

		FurnitureMovingFee: 150.0,
		NailsRemovalFee:    75.0,
	}
}

// CoatMultiplier returns the labor scaling factor for the given coat
// count: 1.0 for a single coat, otherwise the second-coat multiplier
// (2.0 when unconfigured).
func (p PricingTable) CoatMultiplier(coats int) float64 {
	if coats <= 1 {
		return 1.0
	}
	if p.SecondCoatLaborMultiplier > 0 {
		return p.SecondCoatLaborMultiplier
	}
	return 2.0
}

// ResolveCoats resolves the effective coat count for one category:
// the project-level override wins, then the object-level count, then the
// default of two coats.
func ResolveCoats(projectCoats, objectCoats int) int {
	if projectCoats > 0 {
		return projectCoats
	}
	if objectCoats > 0 {
		return objectCoats
	}
	return 2
}
