package factory

import (
	"github.com/automoto/racrec/archetypes"
	"github.com/automoto/racrec/components"
	cfg "github.com/automoto/racrec/config"
	"github.com/automoto/racrec/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	spaceHeight = 8192
	cellSize    = 16
)

// CreateSpace creates the page's hit-test space with the pointer probe.
func CreateSpace(ecs *ecs.ECS, width, height int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(width, height, cellSize, cellSize)
	cursor := resolv.NewObject(-1, -1, 1, 1, tags.ResolvCursor)
	spaceData.Add(cursor)
	components.Space.SetValue(space, components.SpaceData{Space: spaceData, Cursor: cursor})
	return space
}

func getOrCreateSpace(ecs *ecs.ECS) *components.SpaceData {
	entry, ok := components.Space.First(ecs.World)
	if !ok {
		entry = CreateSpace(ecs, cfg.C.Width, spaceHeight)
	}
	return components.Space.Get(entry)
}

// addHitArea registers entry's layout box as a clickable area.
func addHitArea(ecs *ecs.ECS, entry *donburi.Entry, tag string) {
	l := components.Layout.Get(entry)
	obj := resolv.NewObject(l.X, l.Y, l.W, l.H, tag)
	obj.Data = entry
	getOrCreateSpace(ecs).Space.Add(obj)
	components.Object.SetValue(entry, components.ObjectData{Object: obj})
}
