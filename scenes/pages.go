package scenes

import (
	"github.com/automoto/racrec/assets"
	cfg "github.com/automoto/racrec/config"
	"github.com/automoto/racrec/fonts"
	"github.com/automoto/racrec/gallery"
	"github.com/automoto/racrec/systems/factory"
	"github.com/automoto/racrec/ui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/yohamta/donburi/ecs"
)

// Team tab keys
const (
	tabCore  = "core"
	tabBoard = "board"
)

func buildSections(e *ecs.ECS, sections []assets.Section, y float64) float64 {
	for _, s := range sections {
		y = factory.CreateSection(e, s.Heading, s.Body, y)
	}
	return y
}

func buildHome(e *ecs.ECS) float64 {
	site := assets.MustLoadSite()
	y := factory.CreatePageHeader(e, site.Home.Title, site.Home.Subtitle)
	y = factory.CreateCounterRow(e, site.Home.Stats, y)
	y = buildSections(e, site.Home.Sections, y)

	_, y = factory.CreateHeading(e, "Featured Projects", fonts.Bold, y)
	y = factory.CreateProjectGrid(e, site.Projects, y+16)
	return y + cfg.Page.SectionGap
}

func buildStory(e *ecs.ECS) float64 {
	site := assets.MustLoadSite()
	y := factory.CreatePageHeader(e, site.Story.Title, site.Story.Subtitle)
	return buildSections(e, site.Story.Sections, y)
}

func buildTeam(e *ecs.ECS) float64 {
	site := assets.MustLoadSite()
	team := site.Team
	y := factory.CreatePageHeader(e, "Meet the Changemakers",
		"Our dedicated team of leaders and volunteers who work tirelessly to create positive change in our community and beyond.")

	_, y = factory.CreateHeading(e, "Faculty Coordinator", fonts.Bold, y)
	box := factory.GridLayout(1, 1, cfg.Card.Width, cfg.Card.Height, cfg.Card.Gap, y+16)
	factory.CreateTeamCard(e, team.Coordinator, "", false, box[0], 0)
	y = factory.Bottom(box, y) + cfg.Page.SectionGap

	_, y = factory.CreateHeading(e, "Our Leadership Team", fonts.Bold, y)
	_, y = factory.CreateTabs(e, []string{tabCore, tabBoard}, []string{"Core Leadership", "Board Members"}, y+8)
	y += 24

	// Both rosters share the grid area; only the active tab's cards are shown.
	core := factory.CreateTeamGrid(e, team.Core, tabCore, false, y)
	board := factory.CreateTeamGrid(e, team.Board, tabBoard, true, y)
	return max(core, board) + cfg.Page.SectionGap
}

func buildImpact(e *ecs.ECS) float64 {
	site := assets.MustLoadSite()
	y := factory.CreatePageHeader(e, site.Impact.Title, site.Impact.Subtitle)
	y = factory.CreateCounterRow(e, site.Impact.Stats, y)
	y = buildSections(e, site.Impact.Sections, y)

	_, y = factory.CreateHeading(e, "Our Projects", fonts.Bold, y)
	y = factory.CreateProjectGrid(e, site.Projects, y+16)
	return y + cfg.Page.SectionGap
}

func buildGallery(e *ecs.ECS) float64 {
	site := assets.MustLoadSite()
	y := factory.CreatePageHeader(e, site.Gallery.Title, site.Gallery.Subtitle)
	y = buildSections(e, site.Gallery.Sections, y)

	client := gallery.NewClient(cfg.Gallery.BaseURL, cfg.Gallery.Fallback)
	factory.CreateGallery(e, gallery.NewLoader(client), y, len(site.Projects))
	return y
}

func buildJoin(e *ecs.ECS) float64 {
	site := assets.MustLoadSite()
	y := factory.CreatePageHeader(e, site.Join.Title, site.Join.Subtitle)
	return buildSections(e, site.Join.Sections, y)
}

func buildPixelDemo(e *ecs.ECS) float64 {
	site := assets.MustLoadSite()
	return factory.CreatePageHeader(e, site.Demo.Title, site.Demo.Subtitle)
}

func demoPanel(e *ecs.ECS) *widget.Container {
	return ui.NewDemoPanel(e).Container
}
