package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestCatalogPersists(t *testing.T) {
	file := filepath.Join(t.TempDir(), "gallery.yaml")

	cat, err := LoadCatalog(file)
	if err != nil {
		t.Fatalf("LoadCatalog on missing file: %v", err)
	}
	if _, err := cat.Add(Image{Filename: "a.jpg", Title: "A"}); err != nil {
		t.Fatal(err)
	}
	if _, err := cat.Add(Image{Filename: "b.jpg", Title: "B"}); err != nil {
		t.Fatal(err)
	}

	reloaded, err := LoadCatalog(file)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	images := reloaded.List()
	if len(images) != 2 || images[0].Filename != "a.jpg" || images[1].Filename != "b.jpg" {
		t.Fatalf("reloaded images = %+v", images)
	}

	// IDs continue after the highest loaded one.
	img, err := reloaded.Add(Image{Filename: "c.jpg"})
	if err != nil {
		t.Fatal(err)
	}
	if img.ID != 3 {
		t.Errorf("next id = %d, want 3", img.ID)
	}
}

func TestCatalogRejectsBadFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "gallery.yaml")
	if err := os.WriteFile(file, []byte("- id: [oops"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadCatalog(file); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestCatalogListIsCopy(t *testing.T) {
	cat := NewCatalog("")
	if _, err := cat.Add(Image{Filename: "a.jpg", Title: "A"}); err != nil {
		t.Fatal(err)
	}
	list := cat.List()
	list[0].Title = "changed"
	if cat.List()[0].Title != "A" {
		t.Error("List exposed internal storage")
	}
}

func TestValidFilename(t *testing.T) {
	cases := map[string]bool{
		"a.jpg":            true,
		"IMG 0119 (1).JPG": true,
		"":                 false,
		"..":               false,
		"../a.jpg":         false,
		`dir\a.jpg`:        false,
		"/abs.jpg":         false,
	}
	for name, want := range cases {
		if got := validFilename(name); got != want {
			t.Errorf("validFilename(%q) = %v, want %v", name, got, want)
		}
	}
	if _, err := NewCatalog("").Add(Image{Filename: "../x"}); !errors.Is(err, ErrInvalidFilename) {
		t.Errorf("Add error = %v, want ErrInvalidFilename", err)
	}
}
