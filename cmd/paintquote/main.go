// PaintQuote is an interior painting estimator.
//
// Loads a project file, computes the quote, and optionally renders the
// client proposal or an accounting workbook.
//
// Build:
//   go build -o paintquote ./cmd/paintquote
//
// Usage:
//   paintquote -project house.json
//   paintquote -project house.json -pdf proposal.pdf -profile Classic
//   paintquote -project house.json -xlsx estimate.xlsx
//   paintquote -import-csv rooms.csv -project house.json

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/piwi3910/PaintQuote/internal/engine"
	"github.com/piwi3910/PaintQuote/internal/export"
	"github.com/piwi3910/PaintQuote/internal/importer"
	"github.com/piwi3910/PaintQuote/internal/model"
	"github.com/piwi3910/PaintQuote/internal/project"
)

func main() {
	var (
		projectPath = flag.String("project", "", "project JSON file to load or create")
		pricingPath = flag.String("pricing", "", "pricing table JSON (default ~/.paintquote/pricing.json)")
		pdfPath     = flag.String("pdf", "", "write the client proposal PDF to this path")
		xlsxPath    = flag.String("xlsx", "", "write the estimate workbook to this path")
		profileName = flag.String("profile", "", "proposal profile name (default from app config)")
		importCSV   = flag.String("import-csv", "", "import rooms from a CSV schedule into the project")
		importXLSX  = flag.String("import-xlsx", "", "import rooms from an Excel schedule into the project")
		importDXF   = flag.String("import-dxf", "", "import rooms from a DXF floor plan into the project")
		dxfScale    = flag.Float64("dxf-scale", 1, "DXF drawing units to feet (1/12 for inches)")
		showList    = flag.Bool("shopping", false, "print the paint shopping list")
	)
	flag.Parse()

	if *projectPath == "" {
		fmt.Fprintln(os.Stderr, "paintquote: -project is required")
		flag.Usage()
		os.Exit(2)
	}

	if err := run(*projectPath, *pricingPath, *pdfPath, *xlsxPath, *profileName,
		*importCSV, *importXLSX, *importDXF, *dxfScale, *showList); err != nil {
		fmt.Fprintln(os.Stderr, "paintquote:", err)
		os.Exit(1)
	}
}

func run(projectPath, pricingPath, pdfPath, xlsxPath, profileName, importCSV, importXLSX, importDXF string, dxfScale float64, showList bool) error {
	config, err := project.LoadAppConfig(project.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	var pricing model.PricingTable
	if pricingPath != "" {
		pricing, err = project.LoadPricing(pricingPath)
	} else {
		pricing, _, err = project.LoadOrCreatePricing()
	}
	if err != nil {
		return fmt.Errorf("load pricing: %w", err)
	}

	settingsPath, err := project.DefaultSettingsPath()
	if err != nil {
		return fmt.Errorf("resolve settings path: %w", err)
	}
	settings, err := project.LoadSettings(settingsPath)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	p, err := loadOrCreateProject(projectPath, config)
	if err != nil {
		return err
	}

	dirty := false
	for _, imp := range []struct {
		path string
		kind string
	}{
		{importCSV, "csv"},
		{importXLSX, "xlsx"},
		{importDXF, "dxf"},
	} {
		if imp.path == "" {
			continue
		}
		var result importer.ImportResult
		switch imp.kind {
		case "csv":
			result = importer.ImportCSV(imp.path)
		case "xlsx":
			result = importer.ImportExcel(imp.path)
		case "dxf":
			result = importer.ImportDXF(imp.path, dxfScale)
		}
		for _, w := range result.Warnings {
			fmt.Fprintln(os.Stderr, "warning:", w)
		}
		for _, e := range result.Errors {
			fmt.Fprintln(os.Stderr, "error:", e)
		}
		if len(result.Rooms) > 0 {
			p.Rooms = append(p.Rooms, result.Rooms...)
			dirty = true
			fmt.Printf("Imported %d room(s) from %s\n", len(result.Rooms), imp.path)
		}
	}

	if dirty {
		if err := project.SaveProject(projectPath, p); err != nil {
			return fmt.Errorf("save project: %w", err)
		}
	}

	est := engine.New(pricing, settings)
	sum := est.Summarize(p)
	list := est.ShoppingList(sum)

	printSummary(p, sum)
	if showList {
		printShoppingList(list)
		supplies := est.Supplies(p, sum, config.TapeWastePercent, config.TapeRollPrice, config.DropClothPrice)
		printSupplies(supplies)
	}

	if profileName == "" {
		profileName = config.DefaultProposalProfile
	}
	profile := resolveProfile(profileName)

	if pdfPath != "" {
		if err := export.ExportProposalPDF(pdfPath, p, sum, list, profile); err != nil {
			return fmt.Errorf("export pdf: %w", err)
		}
		fmt.Println("Wrote proposal:", pdfPath)
	}
	if xlsxPath != "" {
		if err := export.ExportExcel(xlsxPath, p, sum, list); err != nil {
			return fmt.Errorf("export xlsx: %w", err)
		}
		fmt.Println("Wrote workbook:", xlsxPath)
	}

	project.RememberRecentProject(&config, projectPath, 10)
	if err := project.SaveAppConfig(project.DefaultConfigPath(), config); err != nil {
		return fmt.Errorf("save config: %w", err)
	}
	return nil
}

// loadOrCreateProject loads the project file, or starts a fresh project
// carrying the config defaults when the file does not exist yet.
func loadOrCreateProject(path string, config model.AppConfig) (model.Project, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		p := model.NewProject()
		config.ApplyToProject(&p)
		return p, nil
	}
	p, err := project.LoadProject(path)
	if err != nil {
		return model.Project{}, fmt.Errorf("load project: %w", err)
	}
	return p, nil
}

// resolveProfile looks the name up among custom profiles first, then the
// built-ins.
func resolveProfile(name string) model.ProposalProfile {
	custom, err := project.LoadCustomProfilesFromDefault()
	if err == nil {
		for _, prof := range custom {
			if prof.Name == name {
				return prof
			}
		}
	}
	return model.GetProposalProfile(name)
}

func printSummary(p model.Project, sum engine.ProjectSummary) {
	fmt.Printf("Project: %s\n\n", p.Name)
	for _, item := range sum.ItemizedPrices {
		fmt.Printf("  %-32s $%10.2f  (labor $%.2f, materials $%.2f)\n",
			item.Name, item.Price, item.LaborCost, item.MaterialsCost)
	}
	fmt.Println()
	fmt.Printf("  Wall area:    %8.1f sq ft  (%.1f gal)\n", sum.WallArea, sum.WallGallons)
	fmt.Printf("  Ceiling area: %8.1f sq ft  (%.1f gal)\n", sum.CeilingArea, sum.CeilingGallons)
	fmt.Printf("  Trim area:    %8.1f sq ft  (%.1f gal)\n", sum.TrimArea, sum.TrimGallons)
	fmt.Printf("  Door area:    %8.1f sq ft  (%.1f gal)\n", sum.DoorArea, sum.DoorGallons)
	fmt.Printf("  Primer:       %20s%.1f gal\n", "", sum.PrimerGallons)
	fmt.Println()
	fmt.Printf("  Labor:     $%10.2f\n", sum.LaborTotal)
	fmt.Printf("  Materials: $%10.2f\n", sum.MaterialsTotal)
	fmt.Printf("  Total:     $%10.2f\n", sum.GrandTotal)

	if len(sum.PaintOptions) > 0 {
		fmt.Println("\nPaint options:")
		for _, opt := range sum.PaintOptions {
			fmt.Printf("  %-24s %5.1f gal   $%10.2f\n", opt.Name, opt.WallGallons, opt.Total)
		}
	}
}

func printShoppingList(list engine.ShoppingList) {
	fmt.Println("\nShopping list:")
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
	for _, r := range rows {
		if r.plan.GallonsNeeded <= 0 {
			continue
		}
		fmt.Printf("  %-14s %5.1f gal -> %d x 5-gal + %d x 1-gal\n",
			r.name, r.plan.GallonsNeeded, r.plan.FiveGallonPails, r.plan.SingleGallons)
	}
	fmt.Printf("  Estimated cost: $%.2f\n", list.TotalCost)
}

func printSupplies(s model.SuppliesSummary) {
	fmt.Println("\nMasking supplies:")
	fmt.Printf("  Tape:        %d roll(s) for %.0f ft taped  $%.2f\n", s.TapeRolls, s.TapeFeetWithWaste, s.TapeCost)
	fmt.Printf("  Drop cloths: %d for %.0f sq ft of floor    $%.2f\n", s.DropCloths, s.FloorAreaSqFt, s.DropClothCost)
	fmt.Printf("  Total:       $%.2f\n", s.TotalCost)
}
