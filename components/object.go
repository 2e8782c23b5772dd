package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is an entity's hit area in page coordinates.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// SpaceData holds the page's hit-test space and the pointer probe.
type SpaceData struct {
	Space  *resolv.Space
	Cursor *resolv.Object
}

var Space = donburi.NewComponentType[SpaceData]()
