package scenes

import (
	"testing"

	cfg "github.com/automoto/racrec/config"
)

func TestEveryNavItemHasAPage(t *testing.T) {
	for _, item := range cfg.NavItems {
		if _, ok := routes[item.Path]; !ok {
			t.Errorf("navbar entry %q has no page", item.Path)
		}
		if got := Resolve(item.Path); got != item.Path {
			t.Errorf("Resolve(%q) = %q", item.Path, got)
		}
	}
}

func TestUnknownRouteFallsBack(t *testing.T) {
	for _, path := range []string{"", "/nope", "/team/", "story"} {
		if got := Resolve(path); got != cfg.RouteNotFound {
			t.Errorf("Resolve(%q) = %q, want %q", path, got, cfg.RouteNotFound)
		}
	}
}

func TestNewRouteScene(t *testing.T) {
	s := NewRouteScene(nil, "/missing", true)
	if s.route != cfg.RouteHome || !s.dissolve || s.build == nil {
		t.Errorf("scene = route %q dissolve %v", s.route, s.dissolve)
	}
	if NewRouteScene(nil, cfg.RoutePixelDemo, false).panel == nil {
		t.Error("pixel demo page should have a control panel")
	}
	if NewRouteScene(nil, cfg.RouteStory, false).panel != nil {
		t.Error("story page should not have a control panel")
	}
}
