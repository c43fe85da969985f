package importer

import (
	"fmt"
	"math"
	"sort"

	"github.com/piwi3910/PaintQuote/internal/model"
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/entity"
)

// point is a 2D floor-plan coordinate in drawing units.
type point struct {
	X, Y float64
}

// segment represents a line segment between two points, used for chaining
// disconnected LINE entities into closed room outlines.
type segment struct {
	start point
	end   point
}

// DefaultRoomHeight is assumed for imported floor plans, which carry no
// elevation data.
const DefaultRoomHeight = 8.0

// ImportDXF imports rooms from a DXF floor plan. Each closed outline
// (LWPOLYLINE or chain of connected LINEs) becomes a room: the bounding
// box supplies length and width, and when the outline is not rectangular
// the polygon area is kept as a manual floor-area override. unitScale
// converts drawing units to feet (for plans drawn in inches pass 1/12).
func ImportDXF(path string, unitScale float64) ImportResult {
	result := ImportResult{}

	if unitScale <= 0 {
		unitScale = 1
	}

	drawing, err := dxf.Open(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open DXF file: %v", err))
		return result
	}

	entities := drawing.Entities()
	if len(entities) == 0 {
		result.Errors = append(result.Errors, "DXF file contains no entities")
		return result
	}

	var outlines [][]point
	var segments []segment

	for _, ent := range entities {
		switch e := ent.(type) {
		case *entity.LwPolyline:
			outline := make([]point, 0, len(e.Vertices))
			for _, v := range e.Vertices {
				outline = append(outline, point{X: v[0], Y: v[1]})
			}
			if len(outline) >= 3 {
				outlines = append(outlines, outline)
			} else {
				result.Warnings = append(result.Warnings,
					"Skipped LWPOLYLINE with fewer than 3 vertices")
			}

		case *entity.Line:
			segments = append(segments, segment{
				start: point{X: e.Start[0], Y: e.Start[1]},
				end:   point{X: e.End[0], Y: e.End[1]},
			})

		default:
			// Unsupported entity types are silently skipped
		}
	}

	// Chain loose LINE segments into closed outlines
	outlines = append(outlines, chainSegments(segments, 0.01)...)

	if len(outlines) == 0 {
		result.Errors = append(result.Errors, "No closed room outlines found in DXF file")
		return result
	}

	roomNum := 0
	for _, outline := range outlines {
		roomNum++
		minP, maxP := boundingBox(outline)
		length := (maxP.X - minP.X) * unitScale
		width := (maxP.Y - minP.Y) * unitScale

		if length < 0.1 || width < 0.1 {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("Skipped degenerate outline (%.2f x %.2f ft)", length, width))
			continue
		}

		room := model.NewRoom(fmt.Sprintf("Room %d", roomNum), length, width, DefaultRoomHeight)

		// Non-rectangular outlines keep the polygon area so wall and
		// ceiling math does not overstate an L-shaped footprint.
		area := outlineArea(outline) * unitScale * unitScale
		if area > 0 && math.Abs(area-length*width) > 0.05*length*width {
			room.ManualArea = area
		}

		result.Rooms = append(result.Rooms, room)
	}

	return result
}

// chainSegments connects individual segments into closed outlines.
// tolerance is the maximum distance between endpoints to consider them connected.
func chainSegments(segs []segment, tolerance float64) [][]point {
	if len(segs) == 0 {
		return nil
	}

	used := make([]bool, len(segs))
	var outlines [][]point

	for {
		startIdx := -1
		for i, u := range used {
			if !u {
				startIdx = i
				break
			}
		}
		if startIdx == -1 {
			break
		}

		chain := []point{segs[startIdx].start, segs[startIdx].end}
		used[startIdx] = true

		changed := true
		for changed {
			changed = false
			tail := chain[len(chain)-1]

			for i, seg := range segs {
				if used[i] {
					continue
				}
				if pointsClose(tail, seg.start, tolerance) {
					chain = append(chain, seg.end)
					used[i] = true
					changed = true
					break
				}
				if pointsClose(tail, seg.end, tolerance) {
					chain = append(chain, seg.start)
					used[i] = true
					changed = true
					break
				}
			}
		}

		// Only closed chains count as room outlines
		if len(chain) >= 4 && pointsClose(chain[0], chain[len(chain)-1], tolerance) {
			outlines = append(outlines, chain[:len(chain)-1])
		}
	}

	// Sort outlines by area (largest first) for consistent ordering
	sort.Slice(outlines, func(i, j int) bool {
		return outlineArea(outlines[i]) > outlineArea(outlines[j])
	})

	return outlines
}

// pointsClose checks whether two points are within the given tolerance.
func pointsClose(a, b point, tolerance float64) bool {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx+dy*dy) <= tolerance
}

// outlineArea computes the absolute area of a polygon using the shoelace formula.
func outlineArea(o []point) float64 {
	n := len(o)
	if n < 3 {
		return 0
	}
	var area float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += o[i].X * o[j].Y
		area -= o[j].X * o[i].Y
	}
	return math.Abs(area) / 2
}

// boundingBox returns the min and max corners of an outline.
func boundingBox(o []point) (point, point) {
	minP := point{X: math.Inf(1), Y: math.Inf(1)}
	maxP := point{X: math.Inf(-1), Y: math.Inf(-1)}
	for _, p := range o {
		minP.X = math.Min(minP.X, p.X)
		minP.Y = math.Min(minP.Y, p.Y)
		maxP.X = math.Max(maxP.X, p.X)
		maxP.Y = math.Max(maxP.Y, p.Y)
	}
	return minP, maxP
}
