package importer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

// ─── DetectCSVDelimiter Tests ──────────────────────────────

func TestDetectCSVDelimiter_Comma(t *testing.T) {
	data := []byte("Name,Length,Width,Height\nBedroom,10,12,8\nBath,8,6,8\n")
	got := DetectCSVDelimiter(data)
	if got != ',' {
		t.Errorf("expected comma delimiter, got %q", got)
	}
}

func TestDetectCSVDelimiter_Semicolon(t *testing.T) {
	data := []byte("Name;Length;Width;Height\nBedroom;10;12;8\nBath;8;6;8\n")
	got := DetectCSVDelimiter(data)
	if got != ';' {
		t.Errorf("expected semicolon delimiter, got %q", got)
	}
}

func TestDetectCSVDelimiter_Tab(t *testing.T) {
	data := []byte("Name\tLength\tWidth\tHeight\nBedroom\t10\t12\t8\n")
	got := DetectCSVDelimiter(data)
	if got != '\t' {
		t.Errorf("expected tab delimiter, got %q", got)
	}
}

func TestDetectCSVDelimiter_Pipe(t *testing.T) {
	data := []byte("Name|Length|Width|Height\nBedroom|10|12|8\n")
	got := DetectCSVDelimiter(data)
	if got != '|' {
		t.Errorf("expected pipe delimiter, got %q", got)
	}
}

// ─── DetectColumns Tests ───────────────────────────────────

func TestDetectColumns_StandardHeaders(t *testing.T) {
	row := []string{"Name", "Length", "Width", "Height", "Floor", "Windows", "Doors"}
	mapping, isHeader := DetectColumns(row)

	if !isHeader {
		t.Error("expected header to be detected")
	}
	if mapping.Name != 0 {
		t.Errorf("expected Name at 0, got %d", mapping.Name)
	}
	if mapping.Length != 1 {
		t.Errorf("expected Length at 1, got %d", mapping.Length)
	}
	if mapping.Width != 2 {
		t.Errorf("expected Width at 2, got %d", mapping.Width)
	}
	if mapping.Height != 3 {
		t.Errorf("expected Height at 3, got %d", mapping.Height)
	}
	if mapping.Floor != 4 {
		t.Errorf("expected Floor at 4, got %d", mapping.Floor)
	}
	if mapping.Windows != 5 {
		t.Errorf("expected Windows at 5, got %d", mapping.Windows)
	}
	if mapping.Doors != 6 {
		t.Errorf("expected Doors at 6, got %d", mapping.Doors)
	}
}

func TestDetectColumns_CaseInsensitive(t *testing.T) {
	row := []string{"ROOM", "LEN", "W", "CEILING HEIGHT"}
	mapping, isHeader := DetectColumns(row)

	if !isHeader {
		t.Error("expected header to be detected")
	}
	if mapping.Name != 0 || mapping.Length != 1 || mapping.Width != 2 || mapping.Height != 3 {
		t.Errorf("alias mapping failed: %+v", mapping)
	}
}

func TestDetectColumns_NoHeaderFallsBackPositional(t *testing.T) {
	row := []string{"Bedroom", "10", "12", "8"}
	mapping, isHeader := DetectColumns(row)

	if isHeader {
		t.Error("numeric row should not look like a header")
	}
	if mapping.Name != 0 || mapping.Length != 1 || mapping.Width != 2 || mapping.Height != 3 {
		t.Errorf("expected positional mapping, got %+v", mapping)
	}
}

// ─── CSV Import Tests ──────────────────────────────────────

func TestImportCSV_WithHeader(t *testing.T) {
	path := writeTemp(t, "rooms.csv",
		"Name,Length,Width,Height,Floor,Windows,Doors\n"+
			"Bedroom,10,12,8,1,2,1\n"+
			"Bathroom,8,6,8,2,1,1\n")

	result := ImportCSV(path)
	if len(result.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if len(result.Rooms) != 2 {
		t.Fatalf("expected 2 rooms, got %d", len(result.Rooms))
	}

	bedroom := result.Rooms[0]
	if bedroom.Name != "Bedroom" || bedroom.Length != 10 || bedroom.Width != 12 || bedroom.Height != 8 {
		t.Errorf("bedroom did not parse: %+v", bedroom)
	}
	if bedroom.WindowCount != 2 || bedroom.DoorCount != 1 {
		t.Errorf("fixture counts did not parse: %+v", bedroom)
	}
	if result.Rooms[1].Floor != 2 {
		t.Errorf("expected bathroom on floor 2, got %d", result.Rooms[1].Floor)
	}
}

func TestImportCSV_SemicolonDelimiter(t *testing.T) {
	path := writeTemp(t, "rooms.csv",
		"Name;Length;Width;Height\nKitchen;12;14;9\n")

	result := ImportCSV(path)
	if len(result.Rooms) != 1 {
		t.Fatalf("expected 1 room, got %d (errors: %v)", len(result.Rooms), result.Errors)
	}
	found := false
	for _, w := range result.Warnings {
		if strings.Contains(w, "semicolon") {
			found = true
		}
	}
	if !found {
		t.Error("expected a delimiter warning")
	}
}

func TestImportCSV_InvalidRowsReported(t *testing.T) {
	path := writeTemp(t, "rooms.csv",
		"Name,Length,Width,Height\n"+
			"Good,10,12,8\n"+
			"BadWidth,10,abc,8\n"+
			"Negative,10,-12,8\n")

	result := ImportCSV(path)
	if len(result.Rooms) != 1 {
		t.Errorf("expected only the good row, got %d rooms", len(result.Rooms))
	}
	if len(result.Errors) != 2 {
		t.Errorf("expected 2 row errors, got %v", result.Errors)
	}
}

func TestImportCSV_MissingRequiredColumns(t *testing.T) {
	path := writeTemp(t, "rooms.csv", "Name,Floor\nBedroom,1\n")

	result := ImportCSV(path)
	if len(result.Errors) == 0 {
		t.Fatal("expected an error for missing dimension columns")
	}
	if !strings.Contains(result.Errors[0], "Length") {
		t.Errorf("error should name the missing columns: %v", result.Errors)
	}
}

func TestImportCSV_EmptyFile(t *testing.T) {
	path := writeTemp(t, "empty.csv", "")
	result := ImportCSV(path)
	if len(result.Errors) == 0 {
		t.Error("expected error for empty file")
	}
}

func TestImportCSV_MissingFile(t *testing.T) {
	result := ImportCSV(filepath.Join(t.TempDir(), "nope.csv"))
	if len(result.Errors) == 0 {
		t.Error("expected error for missing file")
	}
}

func TestImportCSVFromReader(t *testing.T) {
	csvData := "Name,Length,Width,Height\nDen,11,13,8\n"
	result := ImportCSVFromReader(strings.NewReader(csvData), ',')
	if len(result.Rooms) != 1 || result.Rooms[0].Name != "Den" {
		t.Errorf("reader import failed: %+v", result)
	}
}

func TestImportCSV_BlankNameGetsDefault(t *testing.T) {
	path := writeTemp(t, "rooms.csv", "Name,Length,Width,Height\n,10,12,8\n")
	result := ImportCSV(path)
	if len(result.Rooms) != 1 {
		t.Fatalf("expected 1 room, got %d", len(result.Rooms))
	}
	if result.Rooms[0].Name != "Room 1" {
		t.Errorf("expected generated name, got %q", result.Rooms[0].Name)
	}
}

// ─── Excel Import Tests ────────────────────────────────────

func TestImportExcel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rooms.xlsx")

	f := excelize.NewFile()
	rows := [][]interface{}{
		{"Name", "Length", "Width", "Height", "Windows"},
		{"Bedroom", 10, 12, 8, 2},
		{"Office", 9, 10, 8, 1},
	}
	for i, row := range rows {
		for j, cell := range row {
			name, _ := excelize.CoordinatesToCellName(j+1, i+1)
			if err := f.SetCellValue("Sheet1", name, cell); err != nil {
				t.Fatal(err)
			}
		}
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatal(err)
	}
	f.Close()

	result := ImportExcel(path)
	if len(result.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if len(result.Rooms) != 2 {
		t.Fatalf("expected 2 rooms, got %d", len(result.Rooms))
	}
	if result.Rooms[0].WindowCount != 2 {
		t.Errorf("window count did not parse: %+v", result.Rooms[0])
	}
}

func TestImportExcel_MissingFile(t *testing.T) {
	result := ImportExcel(filepath.Join(t.TempDir(), "nope.xlsx"))
	if len(result.Errors) == 0 {
		t.Error("expected error for missing file")
	}
}

// writeTemp writes content to a temp file and returns its path.
func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}
