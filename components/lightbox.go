package components

import (
	"github.com/automoto/racrec/gallery"
	"github.com/yohamta/donburi"
)

// LightboxData shows one enlarged image over the page.
type LightboxData struct {
	gallery.Lightbox
}

var Lightbox = donburi.NewComponentType[LightboxData]()
