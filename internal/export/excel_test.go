package export

import (
	"path/filepath"
	"testing"

	"github.com/piwi3910/PaintQuote/internal/engine"
	"github.com/piwi3910/PaintQuote/internal/model"
	"github.com/xuri/excelize/v2"
)

func TestExportExcel_CreatesWorkbook(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "estimate.xlsx")

	p := buildTestProject()
	sum, list := summarize(p)

	err := ExportExcel(path, p, sum, list)
	if err != nil {
		t.Fatalf("ExportExcel returned error: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("workbook was not created: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	want := map[string]bool{"Estimate": false, "Totals": false, "Shopping List": false}
	for _, s := range sheets {
		if _, ok := want[s]; ok {
			want[s] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("missing sheet %q in %v", name, sheets)
		}
	}
}

func TestExportExcel_EstimateRows(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "estimate.xlsx")

	p := buildTestProject()
	sum, list := summarize(p)

	if err := ExportExcel(path, p, sum, list); err != nil {
		t.Fatalf("ExportExcel returned error: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	name, err := f.GetCellValue("Estimate", "B1")
	if err != nil {
		t.Fatal(err)
	}
	if name != "Maple Street House" {
		t.Errorf("expected project name in B1, got %q", name)
	}

	first, err := f.GetCellValue("Estimate", "A4")
	if err != nil {
		t.Fatal(err)
	}
	if first != sum.ItemizedPrices[0].Name {
		t.Errorf("first line item mismatch: got %q, want %q", first, sum.ItemizedPrices[0].Name)
	}
}

func TestExportExcel_EmptySummary(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.xlsx")

	var sum engine.ProjectSummary
	var list engine.ShoppingList

	err := ExportExcel(path, model.NewProject(), sum, list)
	if err == nil {
		t.Fatal("expected error for summary with no line items, got nil")
	}
}
