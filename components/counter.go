package components

import (
	"math"

	"github.com/automoto/racrec/viewport"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// CounterData is a number that counts up once it scrolls into view.
type CounterData struct {
	End    int
	Delay  float32 // seconds after entering view before counting starts
	Suffix string
	Label  string

	Value   float32
	InView  bool
	Waiting float32 // remaining delay
	Tween   *gween.Tween
	Handle  viewport.Handle
}

var Counter = donburi.NewComponentType[CounterData]()

// Display returns the value rounded to the nearest integer.
func (c *CounterData) Display() int {
	return int(math.Round(float64(c.Value)))
}
