package factory

import (
	"github.com/automoto/racrec/archetypes"
	"github.com/automoto/racrec/assets"
	"github.com/automoto/racrec/components"
	cfg "github.com/automoto/racrec/config"
	"github.com/automoto/racrec/fonts"
	"github.com/automoto/racrec/tags"
	"github.com/automoto/racrec/viewport"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const cardTextPadding = 24

func setCardBox(ecs *ecs.ECS, card *donburi.Entry, r viewport.Rect, index int) {
	components.Layout.SetValue(card, components.LayoutData{X: r.X, Y: r.Y, W: r.W, H: r.H})
	components.Reveal.SetValue(card, components.RevealData{Delay: float32(index) * cfg.Reveal.Stagger})
	addHitArea(ecs, card, tags.ResolvCard)
}

// CreateProjectCard creates a clickable project card in box r.
func CreateProjectCard(ecs *ecs.ECS, p assets.Project, r viewport.Rect, index int) *donburi.Entry {
	card := archetypes.ProjectCard.Spawn(ecs)
	components.Card.SetValue(card, components.CardData{
		Kind:     components.CardProject,
		Title:    p.Title,
		Subtitle: p.Date,
		Location: p.Location,
		Summary:  p.Description,
		Details:  p.Details,
		Image:    p.Image,
		Gallery:  p.Gallery,
		Lines:    fonts.Small.Wrap(p.Description, r.W-cardTextPadding),
	})
	setCardBox(ecs, card, r, index)
	return card
}

// CreateTeamCard creates a team member card in box r belonging to tab group.
func CreateTeamCard(ecs *ecs.ECS, m assets.Member, group string, hidden bool, r viewport.Rect, index int) *donburi.Entry {
	card := archetypes.TeamCard.Spawn(ecs)
	components.Card.SetValue(card, components.CardData{
		Kind:     components.CardTeam,
		Title:    m.Name,
		Subtitle: m.Title,
		Image:    m.Image,
		Links:    m.Links,
		Group:    group,
		Hidden:   hidden,
		Lines:    m.Links,
	})
	setCardBox(ecs, card, r, index)
	return card
}

// CreateProjectGrid lays out project cards from page y top and returns the
// page y below the grid.
func CreateProjectGrid(ecs *ecs.ECS, projects []assets.Project, top float64) float64 {
	cols := GridColumns(ContentWidth(), cfg.Card.Width, cfg.Card.Gap)
	rects := GridLayout(len(projects), cols, cfg.Card.Width, cfg.Card.Height, cfg.Card.Gap, top)
	for i, p := range projects {
		CreateProjectCard(ecs, p, rects[i], i%cols)
	}
	return Bottom(rects, top)
}

// CreateTeamGrid lays out one tab group's members from page y top. Every
// group starts at the same top so switching tabs swaps rosters in place.
func CreateTeamGrid(ecs *ecs.ECS, members []assets.Member, group string, hidden bool, top float64) float64 {
	cols := GridColumns(ContentWidth(), cfg.Card.Width, cfg.Card.Gap)
	rects := GridLayout(len(members), cols, cfg.Card.Width, cfg.Card.Height, cfg.Card.Gap, top)
	for i, m := range members {
		CreateTeamCard(ecs, m, group, hidden, rects[i], i%cols)
	}
	return Bottom(rects, top)
}
