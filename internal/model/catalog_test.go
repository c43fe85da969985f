package model

import "testing"

func TestDefaultCatalogProducts(t *testing.T) {
	cat := DefaultCatalog()
	if len(cat.Products) == 0 {
		t.Fatal("expected default products")
	}
	for _, p := range cat.Products {
		if p.ID == "" || p.Name == "" {
			t.Errorf("product missing identity: %+v", p)
		}
		if p.PricePerGallon <= 0 || p.CoverageSqFt <= 0 {
			t.Errorf("product %q has unusable pricing", p.Name)
		}
	}
}

func TestCatalogFind(t *testing.T) {
	cat := DefaultCatalog()
	first := cat.Products[0]

	if got := cat.FindProductByID(first.ID); got == nil || got.Name != first.Name {
		t.Errorf("FindProductByID failed for %q", first.ID)
	}
	if got := cat.FindProductByName(first.Name); got == nil || got.ID != first.ID {
		t.Errorf("FindProductByName failed for %q", first.Name)
	}
	if cat.FindProductByID("nope") != nil {
		t.Error("expected nil for unknown ID")
	}
}

func TestToPaintOption(t *testing.T) {
	p := NewPaintProduct("Premium Eggshell", "Eggshell", 45, 200, 350)
	opt := p.ToPaintOption()

	if !opt.Enabled {
		t.Error("converted option should be enabled")
	}
	if opt.PricePerGallon != 45 || opt.CoverageSqFt != 350 {
		t.Errorf("pricing not carried over: %+v", opt)
	}
	if opt.MaterialMarkup != 1.0 || opt.LaborMultiplier != 1.0 {
		t.Errorf("expected neutral multipliers, got %+v", opt)
	}
	if opt.Notes != "Eggshell" {
		t.Errorf("sheen should land in notes, got %q", opt.Notes)
	}
}
