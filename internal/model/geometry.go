package model

import "math"

// Fixed geometry assumptions, in feet. Stairwell walls are measured as a
// sloped panel over an assumed 12 ft horizontal run; risers and treads are
// assumed 3 ft wide; each stairwell wall brings a 15 x 3.5 ft ceiling
// patch over the stairs.
const (
	StairWidth           = 3.0
	StairWallRun         = 12.0
	StairCeilingPatchLen = 15.0
	StairCeilingPatchWid = 3.5
)

// fireplaceTrimWidth is the face width of the legacy fireplace trim strip.
const fireplaceTrimWidth = 0.5

// nonNegCount converts a fixture count to float, flooring it at zero.
func nonNegCount(n int) float64 {
	if n < 0 {
		return 0
	}
	return float64(n)
}

// RoomPerimeter returns the wall perimeter of a room. When length and width
// are present it is the exact rectangle perimeter; when only a manual floor
// area is known the perimeter is estimated as 4*sqrt(area), which assumes a
// square footprint and under- or over-estimates for elongated rooms.
func RoomPerimeter(r Room) float64 {
	length := NonNegative(r.Length)
	width := NonNegative(r.Width)
	if length > 0 && width > 0 {
		return 2 * (length + width)
	}
	if area := NonNegative(r.ManualArea); area > 0 {
		return 4 * math.Sqrt(area)
	}
	return 0
}

// EffectiveWallHeight returns the paintable wall height. Cathedral rooms
// whose peak rises above the base height average the two, since the gable
// walls climb from base height to the peak.
func EffectiveWallHeight(r Room) float64 {
	height := NonNegative(r.Height)
	if r.Ceiling == CeilingCathedral {
		if peak := NonNegative(r.PeakHeight); peak > height {
			return (height + peak) / 2
		}
	}
	return height
}

// RoomWallArea returns the paintable wall area of a room, net of every
// physical penetration. Windows, doors, closet openings, and free-form
// wall openings are deducted regardless of paint toggles: the drywall
// behind them does not exist whether or not the category is painted. Only
// the paint application is gated by toggles, never the geometry.
func RoomWallArea(r Room, s CalculationSettings) float64 {
	gross := RoomPerimeter(r) * EffectiveWallHeight(r)
	if gross <= 0 {
		return 0
	}

	trimW := NonNegative(s.TrimWidth)
	height := NonNegative(r.Height)

	var deductions float64

	// Window cutout plus the casing band around all four sides.
	winW, winH := NonNegative(s.WindowWidth), NonNegative(s.WindowHeight)
	deductions += nonNegCount(r.WindowCount) * (winW*winH + 2*(winW+winH)*trimW)

	// Door cutout plus casing on two sides and the top.
	doorW, doorH := NonNegative(s.DoorWidth), NonNegative(s.DoorHeight)
	deductions += nonNegCount(r.DoorCount) * (doorW*doorH + (2*doorH+doorW)*trimW)

	// Closet openings run floor to ceiling, so the cutout uses the room's
	// actual ceiling height rather than a nominal door height.
	singleW := NonNegative(s.SingleClosetWidth)
	doubleW := NonNegative(s.DoubleClosetWidth)
	deductions += nonNegCount(r.SingleClosetCount) * (singleW*height + (2*height+singleW)*trimW)
	deductions += nonNegCount(r.DoubleClosetCount) * (doubleW*height + (2*height+doubleW)*trimW)

	// Free-form openings deduct their raw rectangle.
	for _, o := range r.Openings {
		deductions += NonNegative(o.Width) * NonNegative(o.Height)
	}

	return NonNegative(gross - deductions)
}

// RoomCeilingArea returns the paintable ceiling area. The manual floor-area
// override wins when set; cathedral ceilings are scaled by the slope factor
// of the pitched surface.
func RoomCeilingArea(r Room) float64 {
	area := NonNegative(r.ManualArea)
	if area == 0 {
		area = NonNegative(r.Length) * NonNegative(r.Width)
	}
	if area == 0 || r.Ceiling != CeilingCathedral {
		return area
	}
	return area * cathedralSlopeFactor(r)
}

// cathedralSlopeFactor returns sqrt(1+(rise/run)^2) for the pitched ceiling
// surface, where rise is the peak above base height and run is half the
// room width. When only a manual area is known the run is estimated from a
// square footprint and the factor is clamped to [1.0, 1.4].
func cathedralSlopeFactor(r Room) float64 {
	rise := NonNegative(r.PeakHeight) - NonNegative(r.Height)
	if rise <= 0 {
		return 1.0
	}

	if width := NonNegative(r.Width); width > 0 {
		run := width / 2
		if run <= 0 {
			return 1.0
		}
		return math.Sqrt(1 + (rise/run)*(rise/run))
	}

	// Area-only data: estimate the run and clamp the factor.
	area := NonNegative(r.ManualArea)
	if area == 0 {
		return 1.0
	}
	run := math.Sqrt(area) / 2
	if run <= 0 {
		return 1.0
	}
	factor := math.Sqrt(1 + (rise/run)*(rise/run))
	return math.Min(1.4, math.Max(1.0, factor))
}

// ClosetInteriorMetrics holds the paintable surfaces of closet cavity
// interiors: the three cavity walls, the cavity ceiling, and the cavity
// baseboard run.
type ClosetInteriorMetrics struct {
	WallArea      float64 `json:"wall_area"`      // sq ft
	CeilingArea   float64 `json:"ceiling_area"`   // sq ft
	BaseboardFeet float64 `json:"baseboard_feet"` // linear ft
}

// GetClosetInteriorMetrics models each closet as a real cavity behind its
// door opening: back wall plus two side walls at full room height, a
// ceiling the size of the cavity footprint, and baseboard along the back
// and one side pair. Singles and doubles differ only in opening width.
func GetClosetInteriorMetrics(r Room, s CalculationSettings) ClosetInteriorMetrics {
	height := NonNegative(r.Height)
	depth := NonNegative(s.ClosetDepth)

	var m ClosetInteriorMetrics
	addCloset := func(opening float64, count int) {
		if count <= 0 || opening <= 0 {
			return
		}
		n := float64(count)
		m.WallArea += n * (opening + 2*depth) * height
		m.CeilingArea += n * opening * depth
		m.BaseboardFeet += n * 2 * (opening + depth)
	}
	addCloset(NonNegative(s.SingleClosetWidth), r.SingleClosetCount)
	addCloset(NonNegative(s.DoubleClosetWidth), r.DoubleClosetCount)
	return m
}

// BaseboardLength returns the baseboard linear footage of a room: the
// perimeter minus the door and closet opening widths (each widened by the
// casing on both sides), plus the closet-interior baseboard when the
// cavity interiors are part of the quote.
func BaseboardLength(r Room, s CalculationSettings, includeClosetInterior bool) float64 {
	perimeter := RoomPerimeter(r)
	if perimeter <= 0 {
		return 0
	}

	trimW := NonNegative(s.TrimWidth)
	gaps := nonNegCount(r.DoorCount) * (NonNegative(s.DoorWidth) + 2*trimW)
	gaps += nonNegCount(r.SingleClosetCount) * (NonNegative(s.SingleClosetWidth) + 2*trimW)
	gaps += nonNegCount(r.DoubleClosetCount) * (NonNegative(s.DoubleClosetWidth) + 2*trimW)

	feet := NonNegative(perimeter - gaps)
	if includeClosetInterior {
		feet += GetClosetInteriorMetrics(r, s).BaseboardFeet
	}
	return feet
}

// WindowFrameTrimArea returns the paintable casing area around the room's
// windows: a trim band on all four sides of each window.
func WindowFrameTrimArea(r Room, s CalculationSettings) float64 {
	w, h := NonNegative(s.WindowWidth), NonNegative(s.WindowHeight)
	return NonNegative(float64(r.WindowCount) * 2 * (w + h) * NonNegative(s.TrimWidth))
}

// DoorFrameTrimArea returns the paintable casing area around the room's
// doors: two sides and the head of each frame.
func DoorFrameTrimArea(r Room, s CalculationSettings) float64 {
	return NonNegative(float64(r.DoorCount) * (2*NonNegative(s.DoorHeight) + NonNegative(s.DoorWidth)) * NonNegative(s.TrimWidth))
}

// DoorJambTrimArea returns the paintable jamb area inside the room's door
// frames: the same two-sides-and-head run as the casing, on the jamb face.
func DoorJambTrimArea(r Room, s CalculationSettings) float64 {
	return DoorFrameTrimArea(r, s)
}

// ClosetFrameTrimArea returns the paintable casing area around the room's
// closet doors. Closet frames run to the room's ceiling height.
func ClosetFrameTrimArea(r Room, s CalculationSettings) float64 {
	trimW := NonNegative(s.TrimWidth)
	height := NonNegative(r.Height)

	area := NonNegative(float64(r.SingleClosetCount) * (2*height + NonNegative(s.SingleClosetWidth)) * trimW)
	area += NonNegative(float64(r.DoubleClosetCount) * (2*height + NonNegative(s.DoubleClosetWidth)) * trimW)
	return area
}

// BaseboardTrimArea converts a baseboard run into paintable face area.
func BaseboardTrimArea(baseboardFeet float64, s CalculationSettings) float64 {
	return NonNegative(baseboardFeet) * NonNegative(s.BaseboardTrimWidth)
}

// CrownTrimArea returns the paintable crown moulding face area along the
// room perimeter.
func CrownTrimArea(r Room, s CalculationSettings) float64 {
	return RoomPerimeter(r) * NonNegative(s.CrownWidth)
}

// OpeningTrimArea returns the trim area of the room's free-form openings.
// Each opening may carry trim on its interior face, its exterior face,
// both, or neither; each flagged face contributes a full-perimeter band.
func OpeningTrimArea(r Room, s CalculationSettings) float64 {
	trimW := NonNegative(s.TrimWidth)
	var area float64
	for _, o := range r.Openings {
		perim := 2 * (NonNegative(o.Width) + NonNegative(o.Height))
		if o.TrimInterior {
			area += perim * trimW
		}
		if o.TrimExterior {
			area += perim * trimW
		}
	}
	return area
}

// StaircaseAreas holds the paintable surfaces of one staircase, split by
// the paint they take: risers and treads are trim-painted, stairwell walls
// take wall paint, ceiling patches take ceiling paint.
type StaircaseAreas struct {
	RiserArea   float64 `json:"riser_area"`   // sq ft
	TreadArea   float64 `json:"tread_area"`   // sq ft, legacy, usually 0
	WallArea    float64 `json:"wall_area"`    // sq ft
	CeilingArea float64 `json:"ceiling_area"` // sq ft
}

// CalculateStaircaseAreas derives the paintable areas of a staircase. Each
// stairwell wall is a sloped panel averaging its tall and short heights
// over the assumed run, doubled when painted on both sides, and brings a
// fixed ceiling patch over the stairs.
func CalculateStaircaseAreas(st Staircase) StaircaseAreas {
	var a StaircaseAreas
	a.RiserArea = float64(st.RiserCount) * NonNegative(st.RiserHeight) * StairWidth
	a.TreadArea = float64(st.RiserCount) * NonNegative(st.TreadDepth) * StairWidth

	for _, w := range st.StairwellWalls() {
		avg := (NonNegative(w.TallHeight) + NonNegative(w.ShortHeight)) / 2
		wall := avg * StairWallRun
		if w.DoubleSided {
			wall *= 2
		}
		a.WallArea += wall
		a.CeilingArea += StairCeilingPatchLen * StairCeilingPatchWid
	}

	a.RiserArea = NonNegative(a.RiserArea)
	a.TreadArea = NonNegative(a.TreadArea)
	return a
}

// CalculateFireplaceArea returns the paintable area of a fireplace
// surround for its resolved variant. The three-part model sums the fixed
// mantel and legs areas plus the measured over-mantel rectangle; the
// legacy box model sums front and back faces, top, one side, and the
// optional trim strip.
func CalculateFireplaceArea(f Fireplace) float64 {
	switch f.ResolvedVariant() {
	case FireplaceThreePart:
		var area float64
		if f.HasMantel {
			area += MantelArea
		}
		if f.HasLegs {
			area += LegsArea
		}
		if f.HasOverMantel {
			area += NonNegative(f.OverMantelWidth) * NonNegative(f.OverMantelHeight)
		}
		return area
	default:
		w, h, d := NonNegative(f.Width), NonNegative(f.Height), NonNegative(f.Depth)
		area := 2*w*h + w*d + h*d
		area += NonNegative(f.TrimLinearFeet) * fireplaceTrimWidth
		return area
	}
}

// CalculateBrickWallArea returns the paintable face area of a brick wall.
func CalculateBrickWallArea(b BrickWall) float64 {
	return NonNegative(b.Width) * NonNegative(b.Height)
}
