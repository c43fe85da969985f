package export

import (
	"fmt"

	"github.com/piwi3910/PaintQuote/internal/engine"
	"github.com/piwi3910/PaintQuote/internal/model"
	"github.com/xuri/excelize/v2"
)

// ExportExcel writes the project summary as an .xlsx workbook with three
// sheets: the itemized estimate, aggregate totals by category, and the
// paint shopping list. The workbook is meant for contractors who keep
// their books in spreadsheets rather than for client delivery.
func ExportExcel(path string, p model.Project, sum engine.ProjectSummary, list engine.ShoppingList) error {
	if len(sum.ItemizedPrices) == 0 {
		return fmt.Errorf("no line items to export")
	}

	f := excelize.NewFile()
	defer f.Close()

	const estimateSheet = "Estimate"
	f.SetSheetName("Sheet1", estimateSheet)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"E6E6E6"}},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}
	moneyFmt := "$#,##0.00"
	moneyStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &moneyFmt})
	if err != nil {
		return fmt.Errorf("failed to create currency style: %w", err)
	}

	if err := writeEstimateSheet(f, estimateSheet, p, sum, headerStyle, moneyStyle); err != nil {
		return err
	}
	if err := writeTotalsSheet(f, sum, headerStyle, moneyStyle); err != nil {
		return err
	}
	if err := writeShoppingSheet(f, list, headerStyle, moneyStyle); err != nil {
		return err
	}

	return f.SaveAs(path)
}

// writeEstimateSheet fills the itemized receipt rows.
func writeEstimateSheet(f *excelize.File, sheet string, p model.Project, sum engine.ProjectSummary, headerStyle, moneyStyle int) error {
	f.SetCellValue(sheet, "A1", "Project")
	f.SetCellValue(sheet, "B1", p.Name)

	headers := []string{"Item", "Labor", "Materials", "Price"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 3)
		f.SetCellValue(sheet, cell, h)
		f.SetCellStyle(sheet, cell, cell, headerStyle)
	}

	row := 4
	for _, item := range sum.ItemizedPrices {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), item.Name)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), item.LaborCost)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), item.MaterialsCost)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), item.Price)
		f.SetCellStyle(sheet, fmt.Sprintf("B%d", row), fmt.Sprintf("D%d", row), moneyStyle)
		row++
	}

	row++
	f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "Labor total")
	f.SetCellValue(sheet, fmt.Sprintf("D%d", row), sum.LaborTotal)
	f.SetCellStyle(sheet, fmt.Sprintf("D%d", row), fmt.Sprintf("D%d", row), moneyStyle)
	row++
	f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "Materials total")
	f.SetCellValue(sheet, fmt.Sprintf("D%d", row), sum.MaterialsTotal)
	f.SetCellStyle(sheet, fmt.Sprintf("D%d", row), fmt.Sprintf("D%d", row), moneyStyle)
	row++
	f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "Grand total")
	f.SetCellValue(sheet, fmt.Sprintf("D%d", row), sum.GrandTotal)
	f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("A%d", row), headerStyle)
	f.SetCellStyle(sheet, fmt.Sprintf("D%d", row), fmt.Sprintf("D%d", row), moneyStyle)

	f.SetColWidth(sheet, "A", "A", 36)
	f.SetColWidth(sheet, "B", "D", 14)
	return nil
}

// writeTotalsSheet fills the per-category gallon and area aggregates.
func writeTotalsSheet(f *excelize.File, sum engine.ProjectSummary, headerStyle, moneyStyle int) error {
	const sheet = "Totals"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create totals sheet: %w", err)
	}

	headers := []string{"Category", "Area (sq ft)", "Gallons"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
		f.SetCellStyle(sheet, cell, cell, headerStyle)
	}

	rows := []struct {
		name    string
		area    float64
		gallons float64
	}{
		{"Walls", sum.WallArea, sum.WallGallons},
		{"Ceilings", sum.CeilingArea, sum.CeilingGallons},
		{"Trim", sum.TrimArea, sum.TrimGallons},
		{"Doors", sum.DoorArea, sum.DoorGallons},
		{"Primer", 0, sum.PrimerGallons},
	}
	for i, r := range rows {
		row := i + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), r.name)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), r.area)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), r.gallons)
	}

	f.SetCellValue(sheet, "A8", "Doors")
	f.SetCellValue(sheet, "B8", sum.DoorCount)
	f.SetCellValue(sheet, "A9", "Windows")
	f.SetCellValue(sheet, "B9", sum.WindowCount)

	f.SetColWidth(sheet, "A", "C", 16)
	return nil
}

// writeShoppingSheet fills the bucket purchase plan per paint product.
func writeShoppingSheet(f *excelize.File, list engine.ShoppingList, headerStyle, moneyStyle int) error {
	const sheet = "Shopping List"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create shopping sheet: %w", err)
	}

	headers := []string{"Product", "Gallons Needed", "5-gal Pails", "1-gal Cans", "Leftover"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
		f.SetCellStyle(sheet, cell, cell, headerStyle)
	}

	rows := []struct {
		name string
		plan model.PurchasePlan
	}{
		{"Wall paint", list.Wall},
		{"Ceiling paint", list.Ceiling},
		{"Trim paint", list.Trim},
		{"Door paint", list.Door},
		{"Primer", list.Primer},
	}
	row := 2
	for _, r := range rows {
		if r.plan.GallonsNeeded <= 0 {
			continue
		}
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), r.name)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), r.plan.GallonsNeeded)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), r.plan.FiveGallonPails)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), r.plan.SingleGallons)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), r.plan.LeftoverGallons)
		row++
	}

	row++
	f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "Total cost")
	f.SetCellValue(sheet, fmt.Sprintf("B%d", row), list.TotalCost)
	f.SetCellStyle(sheet, fmt.Sprintf("B%d", row), fmt.Sprintf("B%d", row), moneyStyle)

	f.SetColWidth(sheet, "A", "E", 16)
	return nil
}
