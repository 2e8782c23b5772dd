package archetypes

import (
	"github.com/automoto/racrec/components"
	cfg "github.com/automoto/racrec/config"
	"github.com/automoto/racrec/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	ProjectCard = newArchetype(
		tags.ProjectCard,
		components.Card,
		components.Layout,
		components.Object,
		components.Reveal,
	)
	TeamCard = newArchetype(
		tags.TeamCard,
		components.Card,
		components.Layout,
		components.Object,
		components.Reveal,
	)
	GalleryTile = newArchetype(
		tags.GalleryTile,
		components.GalleryTile,
		components.Layout,
		components.Object,
		components.Reveal,
	)
	Counter = newArchetype(
		components.Counter,
		components.Layout,
	)
	TextBlock = newArchetype(
		components.Text,
		components.Layout,
		components.Reveal,
	)
	Heading = newArchetype(
		tags.Heading,
		components.Text,
		components.Layout,
	)
	Panel = newArchetype(
		components.Panel,
		components.Layout,
	)
	Tabs = newArchetype(
		components.Tabs,
		components.Layout,
	)
	Space = newArchetype(
		components.Space,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(append([]donburi.IComponentType{}, a.components...), cs...)...,
	))
	return e
}
