package assets

import "testing"

func TestLoadEmbeddedLayout(t *testing.T) {
	l, err := LoadLayout("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(l.Zones) != 3 {
		t.Errorf("expected 3 zones, got %d", len(l.Zones))
	}
	if len(l.IconsIn("projects-cluster")) != 4 {
		t.Errorf("expected 4 project icons, got %d", len(l.IconsIn("projects-cluster")))
	}
	if s := l.SectionFor("weather"); s.Title != "Weather Wear" {
		t.Errorf("expected Weather Wear section, got %q", s.Title)
	}
}

func TestLoadLayoutFromDisk(t *testing.T) {
	if _, err := LoadLayout("layouts/portfolio.tmx"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := LoadLayout("layouts/missing.tmx"); err == nil {
		t.Error("expected error for missing layout")
	}
}
