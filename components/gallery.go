package components

import (
	"github.com/automoto/racrec/gallery"
	"github.com/yohamta/donburi"
)

// GalleryData is the gallery page's photo list.
type GalleryData struct {
	Loader   *gallery.Loader
	Started  bool
	Photos   []gallery.Photo
	Loaded   bool
	Top      float64 // page y where the grid starts
	Projects int     // events captured, shown under the grid
}

var Gallery = donburi.NewComponentType[GalleryData]()

// GalleryTileData is one clickable photo tile.
type GalleryTileData struct {
	Index int
	Photo gallery.Photo
}

var GalleryTile = donburi.NewComponentType[GalleryTileData]()
