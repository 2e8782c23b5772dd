package tags

import "github.com/yohamta/donburi"

var (
	ProjectCard = donburi.NewTag().SetName("ProjectCard")
	TeamCard    = donburi.NewTag().SetName("TeamCard")
	GalleryTile = donburi.NewTag().SetName("GalleryTile")
	Heading     = donburi.NewTag().SetName("Heading")
)

// Resolv tags for pointer hit testing
const (
	ResolvCursor = "cursor"
	ResolvCard   = "card"
	ResolvTile   = "tile"
	ResolvTab    = "tab"
)
