package config

// Route paths
const (
	RouteHome      = "/"
	RouteStory     = "/story"
	RouteTeam      = "/team"
	RouteImpact    = "/impact"
	RouteGallery   = "/gallery"
	RouteJoin      = "/join"
	RoutePixelDemo = "/pixel-demo"
	RouteNotFound  = RouteHome
)

// NavItem is one navbar entry
type NavItem struct {
	Path  string
	Label string
}

// NavItems lists the navbar in display order.
var NavItems = []NavItem{
	{Path: RouteHome, Label: "Home"},
	{Path: RouteStory, Label: "Our Story"},
	{Path: RouteTeam, Label: "Team"},
	{Path: RouteImpact, Label: "Impact"},
	{Path: RouteGallery, Label: "Gallery"},
	{Path: RouteJoin, Label: "Join Us"},
	{Path: RoutePixelDemo, Label: "Pixel FX"},
}
