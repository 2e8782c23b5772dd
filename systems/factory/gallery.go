package factory

import (
	"github.com/automoto/racrec/archetypes"
	"github.com/automoto/racrec/assets"
	"github.com/automoto/racrec/components"
	cfg "github.com/automoto/racrec/config"
	"github.com/automoto/racrec/gallery"
	"github.com/automoto/racrec/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateGallery creates the gallery page state. The grid is built once the
// loader delivers photos.
func CreateGallery(ecs *ecs.ECS, loader *gallery.Loader, top float64, projects int) *donburi.Entry {
	entry := ecs.World.Entry(ecs.World.Create(components.Gallery))
	components.Gallery.SetValue(entry, components.GalleryData{
		Loader:   loader,
		Top:      top,
		Projects: projects,
	})
	return entry
}

// CreateGalleryGrid creates one clickable tile per photo from page y top and
// returns the page y below the grid.
func CreateGalleryGrid(ecs *ecs.ECS, photos []gallery.Photo, top float64) float64 {
	gap := cfg.Gallery.Gap
	cols := max(1, cfg.Gallery.Columns)
	w := (ContentWidth() - gap*float64(cols-1)) / float64(cols)
	rects := GridLayout(len(photos), cols, w, cfg.Gallery.TileHeight, gap, top)
	for i, p := range photos {
		tile := archetypes.GalleryTile.Spawn(ecs)
		components.GalleryTile.SetValue(tile, components.GalleryTileData{Index: i, Photo: p})
		r := rects[i]
		components.Layout.SetValue(tile, components.LayoutData{X: r.X, Y: r.Y, W: r.W, H: r.H})
		components.Reveal.SetValue(tile, components.RevealData{Delay: float32(i) * cfg.Reveal.Stagger})
		addHitArea(ecs, tile, tags.ResolvTile)
	}
	return Bottom(rects, top)
}

// CreateGalleryStats creates the counters under the grid and returns the page
// y below them.
func CreateGalleryStats(ecs *ecs.ECS, photos, projects int, top float64) float64 {
	return CreateCounterRow(ecs, []assets.Stat{
		{End: photos, Suffix: "+", Label: "Memorable Moments"},
		{End: projects, Suffix: "+", Label: "Events Captured"},
		{End: cfg.Gallery.SmilesShared, Suffix: "+", Label: "Smiles Shared"},
	}, top+cfg.Page.SectionGap)
}
