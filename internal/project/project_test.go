package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/PaintQuote/internal/model"
)

func TestSaveLoadProject(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "house.json")

	p := model.NewProject()
	p.Name = "Smith Residence"
	room := model.NewRoom("Bedroom", 10, 12, 8)
	room.WindowCount = 2
	p.Rooms = append(p.Rooms, room)
	p.Coats = 2

	if err := SaveProject(path, p); err != nil {
		t.Fatalf("SaveProject failed: %v", err)
	}

	loaded, err := LoadProject(path)
	if err != nil {
		t.Fatalf("LoadProject failed: %v", err)
	}
	if loaded.Name != "Smith Residence" {
		t.Errorf("expected name to round-trip, got %q", loaded.Name)
	}
	if len(loaded.Rooms) != 1 || loaded.Rooms[0].WindowCount != 2 {
		t.Errorf("rooms did not round-trip: %+v", loaded.Rooms)
	}
	if loaded.Staircases == nil || loaded.Fireplaces == nil || loaded.BrickWalls == nil {
		t.Error("object slices should be normalized to non-nil")
	}
}

func TestSaveLoadProjectToggles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "house.json")

	off := false
	p := model.NewProject()
	room := model.NewRoom("Den", 10, 10, 8)
	room.PaintCeilings = &off
	p.Rooms = append(p.Rooms, room)

	if err := SaveProject(path, p); err != nil {
		t.Fatalf("SaveProject failed: %v", err)
	}
	loaded, err := LoadProject(path)
	if err != nil {
		t.Fatalf("LoadProject failed: %v", err)
	}

	got := loaded.Rooms[0]
	if got.PaintCeilings == nil || *got.PaintCeilings {
		t.Error("explicit false toggle must survive the round trip")
	}
	if got.PaintWalls != nil {
		t.Error("unset toggle must stay nil, not become explicit")
	}
}

func TestLoadProjectMissingFile(t *testing.T) {
	_, err := LoadProject(filepath.Join(t.TempDir(), "missing.json"))
	if err == nil {
		t.Fatal("expected error for missing project file")
	}
}

func TestLoadProjectCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadProject(path); err == nil {
		t.Fatal("expected error for corrupt project file")
	}
}

func TestRememberRecentProject(t *testing.T) {
	config := model.DefaultAppConfig()
	RememberRecentProject(&config, "/a.json", 3)
	RememberRecentProject(&config, "/b.json", 3)
	RememberRecentProject(&config, "/a.json", 3) // re-open moves to front

	if len(config.RecentProjects) != 2 {
		t.Fatalf("expected 2 entries after dedup, got %d", len(config.RecentProjects))
	}
	if config.RecentProjects[0] != "/a.json" {
		t.Errorf("most recent should be first, got %v", config.RecentProjects)
	}

	RememberRecentProject(&config, "/c.json", 3)
	RememberRecentProject(&config, "/d.json", 3)
	if len(config.RecentProjects) != 3 {
		t.Errorf("expected cap at 3 entries, got %d", len(config.RecentProjects))
	}
}
