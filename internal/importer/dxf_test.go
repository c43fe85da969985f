package importer

import (
	"math"
	"path/filepath"
	"testing"
)

func TestChainSegments_ClosedRectangle(t *testing.T) {
	segs := []segment{
		{start: point{0, 0}, end: point{10, 0}},
		{start: point{10, 0}, end: point{10, 12}},
		{start: point{10, 12}, end: point{0, 12}},
		{start: point{0, 12}, end: point{0, 0}},
	}

	outlines := chainSegments(segs, 0.01)
	if len(outlines) != 1 {
		t.Fatalf("expected 1 closed outline, got %d", len(outlines))
	}
	if len(outlines[0]) != 4 {
		t.Errorf("expected 4 corner points, got %d", len(outlines[0]))
	}
}

func TestChainSegments_ReversedSegment(t *testing.T) {
	// Third wall drawn in the opposite direction; chaining must flip it.
	segs := []segment{
		{start: point{0, 0}, end: point{10, 0}},
		{start: point{10, 0}, end: point{10, 12}},
		{start: point{0, 12}, end: point{10, 12}},
		{start: point{0, 12}, end: point{0, 0}},
	}

	outlines := chainSegments(segs, 0.01)
	if len(outlines) != 1 {
		t.Fatalf("expected 1 closed outline, got %d", len(outlines))
	}
}

func TestChainSegments_OpenChainIgnored(t *testing.T) {
	segs := []segment{
		{start: point{0, 0}, end: point{10, 0}},
		{start: point{10, 0}, end: point{10, 12}},
	}

	outlines := chainSegments(segs, 0.01)
	if len(outlines) != 0 {
		t.Errorf("open chain should not form an outline, got %d", len(outlines))
	}
}

func TestChainSegments_LargestFirst(t *testing.T) {
	small := []segment{
		{start: point{20, 0}, end: point{22, 0}},
		{start: point{22, 0}, end: point{22, 2}},
		{start: point{22, 2}, end: point{20, 2}},
		{start: point{20, 2}, end: point{20, 0}},
	}
	big := []segment{
		{start: point{0, 0}, end: point{10, 0}},
		{start: point{10, 0}, end: point{10, 12}},
		{start: point{10, 12}, end: point{0, 12}},
		{start: point{0, 12}, end: point{0, 0}},
	}

	outlines := chainSegments(append(small, big...), 0.01)
	if len(outlines) != 2 {
		t.Fatalf("expected 2 outlines, got %d", len(outlines))
	}
	if outlineArea(outlines[0]) < outlineArea(outlines[1]) {
		t.Error("outlines should be sorted largest first")
	}
}

func TestOutlineArea_Rectangle(t *testing.T) {
	o := []point{{0, 0}, {10, 0}, {10, 12}, {0, 12}}
	if got := outlineArea(o); math.Abs(got-120) > 1e-9 {
		t.Errorf("outlineArea = %v, want 120", got)
	}
}

func TestOutlineArea_LShape(t *testing.T) {
	// 10x12 rectangle with a 4x6 corner notch removed
	o := []point{{0, 0}, {10, 0}, {10, 6}, {6, 6}, {6, 12}, {0, 12}}
	if got := outlineArea(o); math.Abs(got-96) > 1e-9 {
		t.Errorf("outlineArea = %v, want 96", got)
	}
}

func TestOutlineArea_Degenerate(t *testing.T) {
	if got := outlineArea([]point{{0, 0}, {10, 0}}); got != 0 {
		t.Errorf("two-point outline should have zero area, got %v", got)
	}
}

func TestBoundingBox(t *testing.T) {
	o := []point{{3, 7}, {-1, 2}, {8, 5}}
	minP, maxP := boundingBox(o)
	if minP.X != -1 || minP.Y != 2 || maxP.X != 8 || maxP.Y != 7 {
		t.Errorf("boundingBox = %v, %v", minP, maxP)
	}
}

func TestPointsClose(t *testing.T) {
	if !pointsClose(point{0, 0}, point{0.005, 0.005}, 0.01) {
		t.Error("points within tolerance should be close")
	}
	if pointsClose(point{0, 0}, point{1, 0}, 0.01) {
		t.Error("distant points should not be close")
	}
}

func TestImportDXF_MissingFile(t *testing.T) {
	result := ImportDXF(filepath.Join(t.TempDir(), "nope.dxf"), 1)
	if len(result.Errors) == 0 {
		t.Error("expected error for missing file")
	}
}
