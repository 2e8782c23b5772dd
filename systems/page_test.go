package systems

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/automoto/racrec/components"
	cfg "github.com/automoto/racrec/config"
	"github.com/automoto/racrec/gallery"
	"github.com/automoto/racrec/systems/factory"
	"github.com/automoto/racrec/tags"
	"github.com/yohamta/donburi"
)

func TestScrollClamps(t *testing.T) {
	e := newTestECS()
	s := GetOrCreateScroll(e)
	SetPageHeight(e, 2000)

	if want := 2000 - s.ViewH; s.Max != want {
		t.Fatalf("max = %v, want %v", s.Max, want)
	}
	ScrollBy(e, 5000)
	if s.Y != s.Max {
		t.Errorf("scrolled past the end: %v", s.Y)
	}
	ScrollBy(e, -9000)
	if s.Y != 0 {
		t.Errorf("scrolled past the top: %v", s.Y)
	}

	// Short pages do not scroll.
	SetPageHeight(e, 100)
	if s.Max != 0 || s.Y != 0 {
		t.Errorf("short page max = %v y = %v", s.Max, s.Y)
	}
}

func TestScrollLockedIgnoresWheel(t *testing.T) {
	e := newTestECS()
	SetPageHeight(e, 3000)
	s := GetOrCreateScroll(e)
	p := getOrCreatePointer(e)

	applyPointer(p, 10, 300, false, -2)
	UpdateScroll(e)
	if want := 2 * cfg.Input.WheelStep; s.Y != want {
		t.Fatalf("wheel scroll = %v, want %v", s.Y, want)
	}

	s.Locked = true
	UpdateScroll(e)
	if want := 2 * cfg.Input.WheelStep; s.Y != want {
		t.Errorf("locked page scrolled to %v", s.Y)
	}
}

func TestCoordinateConversion(t *testing.T) {
	e := newTestECS()
	SetPageHeight(e, 3000)
	ScrollBy(e, 250)

	sy := ToScreen(e, 400)
	x, py := ToPage(e, 30, sy)
	if x != 30 || py != 400 {
		t.Errorf("round trip = (%v, %v), want (30, 400)", x, py)
	}
	if want := 400 - 250 + cfg.Nav.Height; sy != want {
		t.Errorf("ToScreen = %v, want %v", sy, want)
	}
}

func TestPointerOverNavbarIsOffPage(t *testing.T) {
	e := newTestECS()
	applyPointer(getOrCreatePointer(e), 100, cfg.Nav.Height-1, false, 0)
	if _, _, ok := PointerOnPage(e); ok {
		t.Error("pointer over the navbar should not be on the page")
	}
}

func TestApplyPointerEdges(t *testing.T) {
	var p components.PointerData

	applyPointer(&p, 1, 2, true, 0)
	if !p.JustPressed || p.JustReleased || !p.Pressed {
		t.Fatalf("after press: %+v", p)
	}
	if !p.Click() {
		t.Fatal("fresh press should report a click")
	}
	if p.Click() {
		t.Fatal("a click can only be taken once")
	}

	applyPointer(&p, 1, 2, true, 0)
	if p.JustPressed || p.Consumed {
		t.Fatalf("held button: %+v", p)
	}

	applyPointer(&p, 3, 4, false, 1)
	if !p.JustReleased || p.Pressed || p.X != 3 || p.WheelY != 1 {
		t.Fatalf("after release: %+v", p)
	}
}

func TestAdjacentRoute(t *testing.T) {
	tests := []struct {
		route string
		delta int
		want  string
	}{
		{cfg.RouteHome, 1, cfg.RouteStory},
		{cfg.RouteHome, -1, cfg.RoutePixelDemo},
		{cfg.RoutePixelDemo, 1, cfg.RouteHome},
		{cfg.RouteJoin, 1, cfg.RoutePixelDemo},
		{"/nowhere", 1, cfg.RouteStory},
	}
	for _, tt := range tests {
		if got := AdjacentRoute(tt.route, tt.delta); got != tt.want {
			t.Errorf("AdjacentRoute(%q, %d) = %q, want %q", tt.route, tt.delta, got, tt.want)
		}
	}
}

func TestGalleryBuildsGridFromBackend(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]gallery.Entry{
			{Filename: "a.jpg", Title: "A"},
			{Filename: "b.jpg", Title: "B"},
			{Filename: "c.jpg", Title: "C"},
		})
	}))
	defer srv.Close()

	e := newTestECS()
	client := gallery.NewClient(srv.URL, nil)
	factory.CreateGallery(e, gallery.NewLoader(client), 800, 4)

	deadline := time.Now().Add(5 * time.Second)
	for {
		UpdateGallery(e)
		entry, _ := components.Gallery.First(e.World)
		if components.Gallery.Get(entry).Loaded {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("gallery never loaded")
		}
		time.Sleep(5 * time.Millisecond)
	}

	var tiles []*components.GalleryTileData
	components.GalleryTile.Each(e.World, func(entry *donburi.Entry) {
		tiles = append(tiles, components.GalleryTile.Get(entry))
	})
	if len(tiles) != 3 {
		t.Fatalf("got %d tiles, want 3", len(tiles))
	}
	if want := srv.URL + gallery.UploadsPath + "a.jpg"; tiles[0].Photo.Src != want {
		t.Errorf("first tile src = %q, want %q", tiles[0].Photo.Src, want)
	}

	var counters int
	components.Counter.Each(e.World, func(*donburi.Entry) { counters++ })
	if counters != 3 {
		t.Errorf("got %d stat counters, want 3", counters)
	}
	if GetOrCreateScroll(e).Max == 0 {
		t.Error("page height was not extended for the grid")
	}
}

func TestGalleryTileClickOpensLightbox(t *testing.T) {
	e := newTestECS()
	factory.CreateGalleryGrid(e, []gallery.Photo{{Src: "/x.jpg", Title: "X"}}, 100)

	tile, _ := components.GalleryTile.First(e.World)
	l := components.Layout.Get(tile)
	if HitTest(e, l.X+1, l.Y+1, tags.ResolvTile) != tile {
		t.Fatal("tile not hit-testable")
	}

	click(e, l.X+l.W/2, ToScreen(e, l.Y+l.H/2))
	UpdateGallery(e)
	if src, ok := GetOrCreateLightbox(e).Selected(); !ok || src != "/x.jpg" {
		t.Errorf("lightbox = %q %v, want /x.jpg", src, ok)
	}
}
