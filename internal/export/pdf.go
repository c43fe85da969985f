// Package export renders client-facing proposal documents and workbooks
// from a computed project summary.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/piwi3910/PaintQuote/internal/engine"
	"github.com/piwi3910/PaintQuote/internal/model"
	qrcode "github.com/skip2/go-qrcode"
)

// Page layout constants (US Letter portrait in mm).
const (
	pageWidth    = 215.9
	pageHeight   = 279.4
	marginLeft   = 18.0
	marginRight  = 18.0
	marginTop    = 15.0
	marginBottom = 18.0
	contentWidth = pageWidth - marginLeft - marginRight
	bannerHeight = 26.0
	qrSize       = 22.0 // QR code size in mm
)

// ShareInfo is the data encoded into the proposal's QR code.
type ShareInfo struct {
	Project    string  `json:"project"`
	GrandTotal float64 `json:"grand_total"`
	LaborTotal float64 `json:"labor_total"`
	CreatedAt  string  `json:"created_at"`
}

// ExportProposalPDF generates the client-facing proposal: a letterhead
// banner, the itemized receipt, optional Good/Better/Best paint tiers,
// the paint shopping list, and the profile's terms footer.
func ExportProposalPDF(path string, p model.Project, sum engine.ProjectSummary, list engine.ShoppingList, profile model.ProposalProfile) error {
	if len(sum.ItemizedPrices) == 0 {
		return fmt.Errorf("no line items to export")
	}

	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetAutoPageBreak(false, marginBottom)
	pdf.AddPage()

	y := renderLetterhead(pdf, p, profile)
	if profile.ShowQRCode {
		info := ShareInfo{
			Project:    p.Name,
			GrandTotal: sum.GrandTotal,
			LaborTotal: sum.LaborTotal,
			CreatedAt:  time.Now().UTC().Format(time.RFC3339),
		}
		if err := attachShareQR(pdf, info); err != nil {
			return err
		}
	}
	y = renderItemized(pdf, sum, y+4)
	y = renderTotals(pdf, sum, y+2)

	if showPaintOptions(p) && len(sum.PaintOptions) > 0 {
		y = ensureRoom(pdf, y+6, 40)
		y = renderPaintOptions(pdf, sum.PaintOptions, y)
	}

	y = ensureRoom(pdf, y+6, 50)
	renderShoppingList(pdf, list, y)

	renderFooter(pdf, profile)
	return pdf.OutputFileAndClose(path)
}

// showPaintOptions reports whether the quote asks for tier tables on the
// rendered proposal.
func showPaintOptions(p model.Project) bool {
	return p.Quote != nil && p.Quote.ShowPaintOptionsInProposal
}

// ensureRoom starts a new page when fewer than needed mm remain below y.
func ensureRoom(pdf *fpdf.Fpdf, y, needed float64) float64 {
	if y+needed > pageHeight-marginBottom {
		pdf.AddPage()
		return marginTop
	}
	return y
}

// renderLetterhead draws the accent banner with the company identity and
// the project line. Returns the y position below the banner.
func renderLetterhead(pdf *fpdf.Fpdf, p model.Project, profile model.ProposalProfile) float64 {
	pdf.SetFillColor(profile.AccentColorR, profile.AccentColorG, profile.AccentColorB)
	pdf.Rect(0, 0, pageWidth, bannerHeight, "F")

	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetXY(marginLeft, 6)
	pdf.CellFormat(contentWidth-qrSize, 8, profile.CompanyName, "", 1, "L", false, 0, "")

	if profile.Tagline != "" {
		pdf.SetFont("Helvetica", "I", 9)
		pdf.SetXY(marginLeft, 14)
		pdf.CellFormat(contentWidth-qrSize, 5, profile.Tagline, "", 1, "L", false, 0, "")
	}

	contact := contactLine(profile)
	if contact != "" {
		pdf.SetFont("Helvetica", "", 8)
		pdf.SetXY(marginLeft, 19)
		pdf.CellFormat(contentWidth-qrSize, 4, contact, "", 1, "L", false, 0, "")
	}

	// Project line below the banner
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, bannerHeight+5)
	pdf.CellFormat(contentWidth/2, 6, "Painting Proposal: "+p.Name, "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(100, 100, 100)
	dateStr := time.Now().Format("January 2, 2006")
	pdf.SetXY(marginLeft+contentWidth/2, bannerHeight+5)
	pdf.CellFormat(contentWidth/2, 6, dateStr, "", 0, "R", false, 0, "")
	pdf.SetTextColor(0, 0, 0)

	return bannerHeight + 13
}

// contactLine joins the profile's phone, email, and license into one line.
func contactLine(profile model.ProposalProfile) string {
	var parts []string
	if profile.Phone != "" {
		parts = append(parts, profile.Phone)
	}
	if profile.Email != "" {
		parts = append(parts, profile.Email)
	}
	if profile.License != "" {
		parts = append(parts, "Lic. "+profile.License)
	}
	line := ""
	for i, part := range parts {
		if i > 0 {
			line += "  |  "
		}
		line += part
	}
	return line
}

// renderItemized draws the receipt table in input order. Returns the y
// position below the table.
func renderItemized(pdf *fpdf.Fpdf, sum engine.ProjectSummary, y float64) float64 {
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Itemized Estimate", "", 0, "L", false, 0, "")
	y += 8

	colWidths := []float64{85, 31, 31, 33}
	headers := []string{"Item", "Labor", "Materials", "Price"}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	xPos := marginLeft
	for i, header := range headers {
		align := "L"
		if i > 0 {
			align = "R"
		}
		pdf.SetXY(xPos, y)
		pdf.CellFormat(colWidths[i], 6, header, "1", 0, align, true, 0, "")
		xPos += colWidths[i]
	}
	y += 6

	pdf.SetFont("Helvetica", "", 9)
	for i, item := range sum.ItemizedPrices {
		if y+6 > pageHeight-marginBottom {
			pdf.AddPage()
			y = marginTop
		}

		// Alternate row background
		if i%2 == 0 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}

		rowData := []string{
			item.Name,
			fmt.Sprintf("$%.2f", item.LaborCost),
			fmt.Sprintf("$%.2f", item.MaterialsCost),
			fmt.Sprintf("$%.2f", item.Price),
		}
		xPos = marginLeft
		for j, cell := range rowData {
			align := "L"
			if j > 0 {
				align = "R"
			}
			pdf.SetXY(xPos, y)
			pdf.CellFormat(colWidths[j], 6, cell, "1", 0, align, true, 0, "")
			xPos += colWidths[j]
		}
		y += 6
	}
	return y
}

// renderTotals draws the labor, materials, and grand total block right
// aligned under the receipt.
func renderTotals(pdf *fpdf.Fpdf, sum engine.ProjectSummary, y float64) float64 {
	y = ensureRoom(pdf, y, 24)

	totals := []struct {
		label string
		value float64
		bold  bool
	}{
		{"Labor", sum.LaborTotal, false},
		{"Materials", sum.MaterialsTotal, false},
		{"Total", sum.GrandTotal, true},
	}

	labelX := marginLeft + contentWidth - 64
	for _, t := range totals {
		if t.bold {
			pdf.SetFont("Helvetica", "B", 11)
		} else {
			pdf.SetFont("Helvetica", "", 10)
		}
		pdf.SetXY(labelX, y)
		pdf.CellFormat(31, 6, t.label+":", "", 0, "R", false, 0, "")
		pdf.CellFormat(33, 6, fmt.Sprintf("$%.2f", t.value), "", 0, "R", false, 0, "")
		y += 6
	}
	return y
}

// renderPaintOptions draws the Good/Better/Best tier table.
func renderPaintOptions(pdf *fpdf.Fpdf, options []engine.PaintOptionResult, y float64) float64 {
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Paint Options", "", 0, "L", false, 0, "")
	y += 8

	colWidths := []float64{55, 25, 33, 33, 34}
	headers := []string{"Option", "Gallons", "Wall Paint", "Labor", "Total"}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	xPos := marginLeft
	for i, header := range headers {
		align := "L"
		if i > 0 {
			align = "R"
		}
		pdf.SetXY(xPos, y)
		pdf.CellFormat(colWidths[i], 6, header, "1", 0, align, true, 0, "")
		xPos += colWidths[i]
	}
	y += 6

	pdf.SetFont("Helvetica", "", 9)
	for i, opt := range options {
		if i%2 == 0 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}
		rowData := []string{
			opt.Name,
			fmt.Sprintf("%.1f", opt.WallGallons),
			fmt.Sprintf("$%.2f", opt.WallPaintCost),
			fmt.Sprintf("$%.2f", opt.LaborCost),
			fmt.Sprintf("$%.2f", opt.Total),
		}
		xPos = marginLeft
		for j, cell := range rowData {
			align := "L"
			if j > 0 {
				align = "R"
			}
			pdf.SetXY(xPos, y)
			pdf.CellFormat(colWidths[j], 6, cell, "1", 0, align, true, 0, "")
			xPos += colWidths[j]
		}
		y += 6

		if opt.Notes != "" {
			pdf.SetFont("Helvetica", "I", 8)
			pdf.SetTextColor(100, 100, 100)
			pdf.SetXY(marginLeft+3, y)
			pdf.CellFormat(contentWidth-3, 4, opt.Notes, "", 0, "L", false, 0, "")
			pdf.SetTextColor(0, 0, 0)
			pdf.SetFont("Helvetica", "", 9)
			y += 5
		}
	}
	return y
}

// renderShoppingList draws the bucket purchase table for every paint
// product with a nonzero demand.
func renderShoppingList(pdf *fpdf.Fpdf, list engine.ShoppingList, y float64) float64 {
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

	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Paint Shopping List", "", 0, "L", false, 0, "")
	y += 8

	colWidths := []float64{55, 31, 31, 31, 32}
	headers := []string{"Product", "Needed", "5-gal Pails", "1-gal Cans", "Leftover"}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	xPos := marginLeft
	for i, header := range headers {
		align := "L"
		if i > 0 {
			align = "R"
		}
		pdf.SetXY(xPos, y)
		pdf.CellFormat(colWidths[i], 6, header, "1", 0, align, true, 0, "")
		xPos += colWidths[i]
	}
	y += 6

	pdf.SetFont("Helvetica", "", 9)
	rowIdx := 0
	for _, row := range rows {
		if row.plan.GallonsNeeded <= 0 {
			continue
		}
		if rowIdx%2 == 0 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}
		rowData := []string{
			row.name,
			fmt.Sprintf("%.1f gal", row.plan.GallonsNeeded),
			fmt.Sprintf("%d", row.plan.FiveGallonPails),
			fmt.Sprintf("%d", row.plan.SingleGallons),
			fmt.Sprintf("%.1f gal", row.plan.LeftoverGallons),
		}
		xPos = marginLeft
		for j, cell := range rowData {
			align := "L"
			if j > 0 {
				align = "R"
			}
			pdf.SetXY(xPos, y)
			pdf.CellFormat(colWidths[j], 6, cell, "1", 0, align, true, 0, "")
			xPos += colWidths[j]
		}
		y += 6
		rowIdx++
	}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetXY(marginLeft, y+1)
	pdf.CellFormat(contentWidth, 5, fmt.Sprintf("Estimated paint purchase: $%.2f", list.TotalCost), "", 0, "L", false, 0, "")
	return y + 7
}

// renderFooter draws the terms and footer text pinned to the bottom of the
// current page.
func renderFooter(pdf *fpdf.Fpdf, profile model.ProposalProfile) {
	y := pageHeight - marginBottom - 10

	if profile.TermsText != "" {
		pdf.SetFont("Helvetica", "", 8)
		pdf.SetTextColor(80, 80, 80)
		pdf.SetXY(marginLeft, y)
		pdf.CellFormat(contentWidth, 4, profile.TermsText, "", 1, "L", false, 0, "")
		y += 4
	}
	if profile.FooterText != "" {
		pdf.SetFont("Helvetica", "I", 8)
		pdf.SetTextColor(120, 120, 120)
		pdf.SetXY(marginLeft, y)
		pdf.CellFormat(contentWidth, 4, profile.FooterText, "", 0, "C", false, 0, "")
	}
	pdf.SetTextColor(0, 0, 0)
}

// attachShareQR encodes the share payload as a QR code and places it in
// the top-right corner of the banner.
func attachShareQR(pdf *fpdf.Fpdf, info ShareInfo) error {
	qrData, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("failed to marshal share info: %w", err)
	}

	qrPNG, err := qrcode.Encode(string(qrData), qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("failed to generate QR code: %w", err)
	}

	imgName := fmt.Sprintf("qr_%s", info.Project)
	pdf.RegisterImageOptionsReader(imgName, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))
	pdf.ImageOptions(imgName, pageWidth-marginRight-qrSize, 2, qrSize, qrSize, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")
	return nil
}
