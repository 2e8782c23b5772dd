package systems

import (
	"context"
	"hash/fnv"
	"image/color"
	"path"

	"github.com/automoto/racrec/components"
	cfg "github.com/automoto/racrec/config"
	"github.com/automoto/racrec/systems/factory"
	"github.com/automoto/racrec/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var photoTints = []color.RGBA{
	{R: 24, G: 126, B: 95, A: 255},
	{R: 38, G: 150, B: 116, A: 255},
	{R: 217, G: 104, B: 49, A: 255},
	{R: 63, G: 81, B: 98, A: 255},
	{R: 141, G: 110, B: 79, A: 255},
}

// photoTint picks a stable placeholder color for an image source.
func photoTint(src string) color.RGBA {
	h := fnv.New32a()
	_, _ = h.Write([]byte(src))
	return photoTints[h.Sum32()%uint32(len(photoTints))]
}

// UpdateGallery starts the background fetch, builds the grid once photos
// arrive and opens the lightbox for a clicked tile.
func UpdateGallery(e *ecs.ECS) {
	entry, ok := components.Gallery.First(e.World)
	if !ok {
		return
	}
	g := components.Gallery.Get(entry)
	if !g.Started {
		g.Started = true
		g.Loader.Start(context.Background())
	}
	if !g.Loaded {
		if photos, ok := g.Loader.Poll(); ok {
			g.Loaded = true
			g.Photos = photos
			bottom := factory.CreateGalleryGrid(e, photos, g.Top)
			bottom = factory.CreateGalleryStats(e, len(photos), g.Projects, bottom)
			SetPageHeight(e, bottom+cfg.Page.SectionGap)
		}
	}

	if OverlayOpen(e) {
		return
	}
	x, y, onPage := PointerOnPage(e)
	if !onPage {
		return
	}
	tile := HitTest(e, x, y, tags.ResolvTile)
	if tile == nil || !getOrCreatePointer(e).Click() {
		return
	}
	GetOrCreateLightbox(e).Select(components.GalleryTile.Get(tile).Photo.Src)
}

// DrawGalleryTiles draws the photo grid.
func DrawGalleryTiles(e *ecs.ECS, screen *ebiten.Image) {
	components.GalleryTile.Each(e.World, func(entry *donburi.Entry) {
		t := components.GalleryTile.Get(entry)
		l := components.Layout.Get(entry)
		alpha, offset := revealState(entry)
		if alpha <= 0 {
			return
		}
		r := l.Rect()
		r.Y = ToScreen(e, l.Y) + offset
		if !onScreen(r.Y, r.H) {
			return
		}
		caption := t.Photo.Title
		if caption == "" {
			caption = path.Base(t.Photo.Src)
		}
		drawPhoto(screen, t.Photo.Src, caption, r)
	})
}
