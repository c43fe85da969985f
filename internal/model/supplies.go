package model

import "math"

// Masking supply assumptions: a standard roll of painter's tape is 60 yd
// (180 ft); one 9x12 ft drop cloth covers roughly 100 sq ft of floor
// allowing for overlap.
const (
	TapeRollFeet       = 180.0
	DropClothCoverSqFt = 100.0
)

// SuppliesSummary holds the masking supply requirements for a project:
// painter's tape along every taped edge and drop cloths over the floors.
type SuppliesSummary struct {
	TapeFeet          float64 `json:"tape_feet"`            // Taped edge length, no waste
	WastePercent      float64 `json:"waste_percent"`        // Waste percentage applied
	TapeFeetWithWaste float64 `json:"tape_feet_with_waste"` // Rounded up
	TapeRolls         int     `json:"tape_rolls"`
	FloorAreaSqFt     float64 `json:"floor_area_sqft"`
	DropCloths        int     `json:"drop_cloths"`
	TapeCost          float64 `json:"tape_cost"`
	DropClothCost     float64 `json:"drop_cloth_cost"`
	TotalCost         float64 `json:"total_cost"`
}

// CalculateSupplies estimates masking supplies from the taped edge length
// (baseboard plus crown plus casing runs) and the protected floor area.
// wastePercent is the additional percentage to add for overlap and tears.
func CalculateSupplies(tapedEdgeFeet, floorAreaSqFt, wastePercent, tapeRollPrice, dropClothPrice float64) SuppliesSummary {
	tapedEdgeFeet = NonNegative(tapedEdgeFeet)
	floorAreaSqFt = NonNegative(floorAreaSqFt)
	wastePercent = NonNegative(wastePercent)

	// Multiply before dividing so an exact product like 200 ft at 10%
	// stays 220 instead of picking up float noise and ceiling to 221.
	withWaste := math.Ceil(tapedEdgeFeet * (100 + wastePercent) / 100)

	rolls := int(math.Ceil(withWaste / TapeRollFeet))
	cloths := int(math.Ceil(floorAreaSqFt / DropClothCoverSqFt))

	tapeCost := float64(rolls) * NonNegative(tapeRollPrice)
	clothCost := float64(cloths) * NonNegative(dropClothPrice)

	return SuppliesSummary{
		TapeFeet:          tapedEdgeFeet,
		WastePercent:      wastePercent,
		TapeFeetWithWaste: withWaste,
		TapeRolls:         rolls,
		FloorAreaSqFt:     floorAreaSqFt,
		DropCloths:        cloths,
		TapeCost:          tapeCost,
		DropClothCost:     clothCost,
		TotalCost:         tapeCost + clothCost,
	}
}
