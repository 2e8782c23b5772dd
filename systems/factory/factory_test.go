package factory

import (
	"os"
	"testing"

	"github.com/automoto/racrec/assets"
	"github.com/automoto/racrec/components"
	"github.com/automoto/racrec/fonts"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestMain(m *testing.M) {
	if err := fonts.LoadDefaults(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func TestGridColumns(t *testing.T) {
	tests := []struct {
		width, cell, gap float64
		want             int
	}{
		{1000, 300, 20, 3},
		{940, 300, 20, 3},
		{939, 300, 20, 2},
		{100, 300, 20, 1},
		{100, 0, 20, 1},
	}
	for _, tt := range tests {
		if got := GridColumns(tt.width, tt.cell, tt.gap); got != tt.want {
			t.Errorf("GridColumns(%v, %v, %v) = %d, want %d", tt.width, tt.cell, tt.gap, got, tt.want)
		}
	}
}

func TestGridLayoutRowsAndCentering(t *testing.T) {
	rects := GridLayout(5, 3, 100, 50, 10, 200)
	if len(rects) != 5 {
		t.Fatalf("got %d rects", len(rects))
	}

	rowW := 3*100.0 + 2*10
	if want := ContentLeft() + (ContentWidth()-rowW)/2; rects[0].X != want {
		t.Errorf("first x = %v, want %v", rects[0].X, want)
	}
	if rects[2].X-rects[1].X != 110 {
		t.Errorf("column pitch = %v, want 110", rects[2].X-rects[1].X)
	}
	if rects[3].X != rects[0].X || rects[3].Y != 260 {
		t.Errorf("second row starts at (%v, %v)", rects[3].X, rects[3].Y)
	}
	if got := Bottom(rects, 200); got != 310 {
		t.Errorf("Bottom = %v, want 310", got)
	}
}

func TestGridLayoutFewerCellsThanColumns(t *testing.T) {
	rects := GridLayout(1, 4, 100, 50, 10, 0)
	if want := ContentLeft() + (ContentWidth()-100)/2; rects[0].X != want {
		t.Errorf("single cell x = %v, want %v (centered)", rects[0].X, want)
	}
	if GridLayout(0, 4, 100, 50, 10, 0) != nil {
		t.Error("empty grid should have no cells")
	}
	if Bottom(nil, 42) != 42 {
		t.Error("empty Bottom should return top")
	}
}

func TestTeamGridRegistersHitAreas(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	members := []assets.Member{{Name: "A"}, {Name: "B"}, {Name: "C"}}

	bottom := CreateTeamGrid(e, members, "board", true, 100)
	if bottom <= 100 {
		t.Fatalf("grid bottom = %v", bottom)
	}

	space, ok := components.Space.First(e.World)
	if !ok {
		t.Fatal("no hit-test space created")
	}
	sp := components.Space.Get(space).Space

	var n int
	components.Card.Each(e.World, func(entry *donburi.Entry) {
		c := components.Card.Get(entry)
		if c.Group != "board" || !c.Hidden {
			t.Errorf("card %q group = %q hidden = %v", c.Title, c.Group, c.Hidden)
		}
		obj := components.Object.Get(entry)
		if obj.Space != sp {
			t.Errorf("card %q not added to the page space", c.Title)
		}
		if obj.Data != entry {
			t.Errorf("card %q hit area does not point back at it", c.Title)
		}
		n++
	})
	if n != 3 {
		t.Errorf("created %d cards, want 3", n)
	}
}

func TestCounterRowUsesStatDelays(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	CreateCounterRow(e, []assets.Stat{
		{End: 10, Label: "a"},
		{End: 20, Label: "b", Delay: 0.4},
	}, 0)

	got := map[int]float32{}
	components.Counter.Each(e.World, func(entry *donburi.Entry) {
		c := components.Counter.Get(entry)
		got[c.End] = c.Delay
	})
	if len(got) != 2 || got[10] != 0 || got[20] != 0.4 {
		t.Errorf("counters = %v", got)
	}
}
