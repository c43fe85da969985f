package engine

import (
	"testing"

	"github.com/piwi3910/PaintQuote/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testProject builds a small two-room project with one staircase and one
// brick wall.
func testProject() model.Project {
	p := model.NewProject()
	p.Name = "Test House"
	p.Coats = 2

	bedroom := model.NewRoom("Bedroom", 10, 12, 8)
	bedroom.DoorCount = 1
	bedroom.WindowCount = 2

	bath := model.NewRoom("Bathroom", 8, 6, 8)
	bath.Floor = 2
	bath.IsBathroom = true

	p.Rooms = []model.Room{bedroom, bath}

	st := model.NewStaircase("Stairs")
	st.RiserCount = 14
	st.RiserHeight = 0.625
	st.Walls = []model.StairWall{{TallHeight: 17, ShortHeight: 9}}
	p.Staircases = []model.Staircase{st}

	b := model.NewBrickWall("Chimney", 6, 10)
	b.IncludePrimer = true
	p.BrickWalls = []model.BrickWall{b}

	return p
}

func TestSummarize_Idempotent(t *testing.T) {
	est := New(model.DefaultPricing(), model.DefaultCalculationSettings())
	p := testProject()

	first := est.Summarize(p)
	second := est.Summarize(p)
	require.Equal(t, first, second, "summaries of identical input must be identical")
}

func TestSummarize_ItemizedOrder(t *testing.T) {
	est := New(model.DefaultPricing(), model.DefaultCalculationSettings())
	p := testProject()
	p.MoveFurniture = true

	sum := est.Summarize(p)

	require.Len(t, sum.ItemizedPrices, 5)
	assert.Equal(t, "Bedroom", sum.ItemizedPrices[0].Name)
	assert.Equal(t, "Bathroom", sum.ItemizedPrices[1].Name)
	assert.Equal(t, "Stairs", sum.ItemizedPrices[2].Name)
	assert.Equal(t, "Chimney", sum.ItemizedPrices[3].Name)
	assert.Equal(t, "Furniture moving", sum.ItemizedPrices[4].Name)
}

func TestSummarize_GrandTotal(t *testing.T) {
	est := New(model.DefaultPricing(), model.DefaultCalculationSettings())
	sum := est.Summarize(testProject())

	assert.InDelta(t, sum.LaborTotal+sum.MaterialsTotal, sum.GrandTotal, 1e-9)
	assert.Positive(t, sum.WallGallons)
	assert.Positive(t, sum.CeilingGallons)
	assert.Equal(t, 1, sum.DoorCount)
	assert.Equal(t, 2, sum.WindowCount)
}

func TestSummarize_RoomSelectionFilter(t *testing.T) {
	est := New(model.DefaultPricing(), model.DefaultCalculationSettings())
	p := testProject()

	p.Quote = &model.QuoteBuilder{
		IncludeAllRooms: boolPtr(false),
		IncludedRoomIDs: []string{p.Rooms[0].ID},
	}
	sum := est.Summarize(p)

	names := make([]string, 0, len(sum.ItemizedPrices))
	for _, item := range sum.ItemizedPrices {
		names = append(names, item.Name)
	}
	assert.Contains(t, names, "Bedroom")
	assert.NotContains(t, names, "Bathroom")
}

func TestSummarize_FloorFilter(t *testing.T) {
	est := New(model.DefaultPricing(), model.DefaultCalculationSettings())
	p := testProject()
	p.Quote = &model.QuoteBuilder{IncludeFloor2: boolPtr(false)}

	sum := est.Summarize(p)
	for _, item := range sum.ItemizedPrices {
		assert.NotEqual(t, "Bathroom", item.Name, "floor 2 room should be filtered")
	}
}

func TestSummarize_StaircaseToggle(t *testing.T) {
	est := New(model.DefaultPricing(), model.DefaultCalculationSettings())
	p := testProject()
	p.Quote = &model.QuoteBuilder{IncludeStaircases: boolPtr(false)}

	sum := est.Summarize(p)
	for _, item := range sum.ItemizedPrices {
		assert.NotEqual(t, "Stairs", item.Name)
	}
}

func TestSummarize_DerivedPrimer(t *testing.T) {
	est := New(model.DefaultPricing(), model.DefaultCalculationSettings())
	p := testProject()
	p.BrickWalls = nil // isolate the derived fraction

	sum := est.Summarize(p)
	want := primerFactor * (sum.WallGallons + sum.CeilingGallons + sum.TrimGallons)
	assert.InDelta(t, want, sum.PrimerGallons, 1e-9)
}

func TestSummarize_PrimerVeto(t *testing.T) {
	est := New(model.DefaultPricing(), model.DefaultCalculationSettings())
	p := testProject()
	p.Quote = &model.QuoteBuilder{IncludePrimer: boolPtr(false)}

	sum := est.Summarize(p)
	assert.Zero(t, sum.PrimerGallons, "primer veto drops both derived and brick primer")
}

func TestSummarize_FlatFees(t *testing.T) {
	pr := model.DefaultPricing()
	est := New(pr, model.DefaultCalculationSettings())
	p := testProject()

	base := est.Summarize(p)

	p.MoveFurniture = true
	p.RemoveNailsScrews = true
	withFees := est.Summarize(p)

	assert.InDelta(t, base.LaborTotal+pr.FurnitureMovingFee+pr.NailsRemovalFee,
		withFees.LaborTotal, 1e-9)
}

func TestSummarize_EmptyProject(t *testing.T) {
	est := New(model.DefaultPricing(), model.DefaultCalculationSettings())
	sum := est.Summarize(model.NewProject())

	assert.Zero(t, sum.GrandTotal)
	assert.NotNil(t, sum.ItemizedPrices)
	assert.Empty(t, sum.ItemizedPrices)
	assert.Empty(t, sum.PaintOptions)
}

func TestComputePaintOptions(t *testing.T) {
	est := New(model.DefaultPricing(), model.DefaultCalculationSettings())
	p := testProject()
	p.BrickWalls = nil

	good := model.NewPaintOption("Good", 32, 400)
	best := model.NewPaintOption("Best", 68, 300)
	best.LaborMultiplier = 1.1
	p.Quote = &model.QuoteBuilder{PaintOptions: []model.PaintOption{good, best}}

	sum := est.Summarize(p)
	require.Len(t, sum.PaintOptions, 2)

	// Gallons recomputed from the option's coverage, rounded up to one
	// decimal; labor scales the aggregated base labor.
	wantGoodGallons := ceil1(sum.WallArea / 400)
	assert.InDelta(t, wantGoodGallons, sum.PaintOptions[0].WallGallons, 1e-9)
	assert.InDelta(t, wantGoodGallons*32, sum.PaintOptions[0].WallPaintCost, 1e-9)
	assert.InDelta(t, sum.LaborTotal, sum.PaintOptions[0].LaborCost, 1e-9)
	assert.InDelta(t, sum.LaborTotal*1.1, sum.PaintOptions[1].LaborCost, 1e-9)

	// Non-wall materials are identical across tiers.
	nonWallGood := sum.PaintOptions[0].MaterialsCost - sum.PaintOptions[0].WallPaintCost
	nonWallBest := sum.PaintOptions[1].MaterialsCost - sum.PaintOptions[1].WallPaintCost
	assert.InDelta(t, nonWallGood, nonWallBest, 1e-9)
	assert.InDelta(t, sum.MaterialsTotal-sum.WallMaterialsCost, nonWallGood, 1e-9)
}

// ceil1 rounds up to one decimal place, mirroring the tier gallon rule.
func ceil1(v float64) float64 {
	scaled := v * 10
	whole := float64(int(scaled))
	if scaled > whole {
		whole++
	}
	return whole / 10
}

func TestShoppingList(t *testing.T) {
	pr := model.DefaultPricing()
	est := New(pr, model.DefaultCalculationSettings())
	sum := est.Summarize(testProject())

	list := est.ShoppingList(sum)
	assert.InDelta(t, sum.WallGallons, list.Wall.GallonsNeeded, 1e-9)
	assert.GreaterOrEqual(t, list.Wall.GallonsPurchased, sum.WallGallons)
	assert.Positive(t, list.TotalCost)
}

func TestSupplies(t *testing.T) {
	est := New(model.DefaultPricing(), model.DefaultCalculationSettings())
	p := testProject()
	sum := est.Summarize(p)

	s := est.Supplies(p, sum, 10, 8.50, 24)
	assert.Positive(t, s.TapeRolls)
	// Floors: 120 + 48 sq ft, two cloths at 100 sq ft each.
	assert.Equal(t, 2, s.DropCloths)
}

func TestSummarize_MalformedInputStaysFinite(t *testing.T) {
	est := New(model.DefaultPricing(), model.DefaultCalculationSettings())
	p := model.NewProject()

	r := model.NewRoom("Broken", -10, 12, 8)
	r.ManualArea = -500
	r.WindowCount = -3
	p.Rooms = []model.Room{r}

	sum := est.Summarize(p)
	for name, v := range map[string]float64{
		"wall gallons": sum.WallGallons,
		"labor":        sum.LaborTotal,
		"materials":    sum.MaterialsTotal,
		"grand total":  sum.GrandTotal,
	} {
		assert.GreaterOrEqual(t, v, 0.0, name)
		assert.False(t, v != v, "%s must not be NaN", name)
	}
}
