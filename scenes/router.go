package scenes

import (
	"log"

	cfg "github.com/automoto/racrec/config"
)

type page struct {
	build PageBuilder
	panel PanelBuilder
}

var routes = map[string]page{
	cfg.RouteHome:      {build: buildHome},
	cfg.RouteStory:     {build: buildStory},
	cfg.RouteTeam:      {build: buildTeam},
	cfg.RouteImpact:    {build: buildImpact},
	cfg.RouteGallery:   {build: buildGallery},
	cfg.RouteJoin:      {build: buildJoin},
	cfg.RoutePixelDemo: {build: buildPixelDemo, panel: demoPanel},
}

// Resolve returns path if it names a page, and the fallback route otherwise.
func Resolve(path string) string {
	if _, ok := routes[path]; ok {
		return path
	}
	log.Printf("[router] unknown route %q, showing %q", path, cfg.RouteNotFound)
	return cfg.RouteNotFound
}

// NewRouteScene creates the page scene for path. dissolve plays the pixel
// transition over the page as it appears.
func NewRouteScene(sc SceneChanger, path string, dissolve bool) *PageScene {
	path = Resolve(path)
	p := routes[path]
	return &PageScene{
		sceneChanger: sc,
		route:        path,
		build:        p.build,
		panel:        p.panel,
		dissolve:     dissolve,
	}
}
