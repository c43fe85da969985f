package model

// CalculationSettings holds the secondary geometry constants consumed by
// the geometry calculators: nominal fixture sizes and trim widths. They
// are passed explicitly to every calculation rather than read from any
// process-wide state.
type CalculationSettings struct {
	DoorWidth  float64 `json:"door_width"`  // ft
	DoorHeight float64 `json:"door_height"` // ft

	WindowWidth  float64 `json:"window_width"`  // ft
	WindowHeight float64 `json:"window_height"` // ft

	SingleClosetWidth float64 `json:"single_closet_width"` // ft, door opening
	DoubleClosetWidth float64 `json:"double_closet_width"` // ft, door opening
	ClosetDepth       float64 `json:"closet_depth"`        // ft, interior cavity depth

	TrimWidth          float64 `json:"trim_width"`           // ft, casing around openings
	BaseboardTrimWidth float64 `json:"baseboard_trim_width"` // ft, baseboard face height
	CrownWidth         float64 `json:"crown_width"`          // ft, crown moulding face
}

// DefaultCalculationSettings returns nominal US residential dimensions.
func DefaultCalculationSettings() CalculationSettings {
	return CalculationSettings{
		DoorWidth:  2.5,
		DoorHeight: 6.67, // 80 in

		WindowWidth:  3.0,
		WindowHeight: 4.0,

		SingleClosetWidth: 2.5,
		DoubleClosetWidth: 5.0,
		ClosetDepth:       2.0,

		TrimWidth:          0.29, // 3.5 in casing
		BaseboardTrimWidth: 0.46, // 5.5 in baseboard
		CrownWidth:         0.38, // 4.5 in crown
	}
}
