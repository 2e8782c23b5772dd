// Package viewport notifies callers when tracked rectangles scroll into or
// out of view.
package viewport

import "sort"

// Rect is an axis-aligned rectangle in page coordinates.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) area() float64 {
	if r.W <= 0 || r.H <= 0 {
		return 0
	}
	return r.W * r.H
}

// Intersect returns the overlap of r and o (zero size when disjoint).
func (r Rect) Intersect(o Rect) Rect {
	x0, y0 := max(r.X, o.X), max(r.Y, o.Y)
	x1, y1 := min(r.X+r.W, o.X+o.W), min(r.Y+r.H, o.Y+o.H)
	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Contains reports whether the point lies inside r.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Handle identifies an observed element.
type Handle int

// Callbacks are invoked from Update when visibility crosses the threshold.
type Callbacks struct {
	OnEnter func()
	OnLeave func()
}

type element struct {
	bounds  Rect
	cb      Callbacks
	once    bool
	visible bool
}

// Observer tracks element visibility against a viewport rectangle.
// It is not safe for concurrent use.
type Observer struct {
	// Threshold is the visible fraction of an element's area needed to count
	// as in view. Zero means any overlap.
	Threshold float64

	next     Handle
	elements map[Handle]*element
}

func NewObserver(threshold float64) *Observer {
	return &Observer{Threshold: threshold, elements: make(map[Handle]*element)}
}

// Observe starts tracking bounds. A once element is dropped after its first
// enter, and never reports a leave.
func (o *Observer) Observe(bounds Rect, cb Callbacks, once bool) Handle {
	o.next++
	o.elements[o.next] = &element{bounds: bounds, cb: cb, once: once}
	return o.next
}

// Unobserve stops tracking h. Unknown handles are ignored.
func (o *Observer) Unobserve(h Handle) {
	delete(o.elements, h)
}

// Move updates the bounds of h; the change is seen on the next Update.
func (o *Observer) Move(h Handle, bounds Rect) {
	if el, ok := o.elements[h]; ok {
		el.bounds = bounds
	}
}

// Visible reports the state computed by the last Update.
func (o *Observer) Visible(h Handle) bool {
	el, ok := o.elements[h]
	return ok && el.visible
}

// Len returns the number of tracked elements.
func (o *Observer) Len() int {
	return len(o.elements)
}

// Ratio returns the visible fraction of bounds inside view.
func Ratio(bounds, view Rect) float64 {
	a := bounds.area()
	if a == 0 {
		return 0
	}
	return bounds.Intersect(view).area() / a
}

// Update recomputes visibility against view and fires callbacks for every
// crossing, in handle order.
func (o *Observer) Update(view Rect) {
	handles := make([]Handle, 0, len(o.elements))
	for h := range o.elements {
		handles = append(handles, h)
	}
	sort.Slice(handles, func(i, j int) bool { return handles[i] < handles[j] })

	for _, h := range handles {
		el, ok := o.elements[h]
		if !ok {
			continue // removed by an earlier callback
		}
		visible := o.inView(Ratio(el.bounds, view))
		if visible == el.visible {
			continue
		}
		el.visible = visible
		if visible {
			if el.once {
				delete(o.elements, h)
			}
			if el.cb.OnEnter != nil {
				el.cb.OnEnter()
			}
			continue
		}
		if el.cb.OnLeave != nil {
			el.cb.OnLeave()
		}
	}
}

func (o *Observer) inView(ratio float64) bool {
	if o.Threshold <= 0 {
		return ratio > 0
	}
	return ratio >= o.Threshold
}
