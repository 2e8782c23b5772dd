package factory

import (
	cfg "github.com/automoto/racrec/config"
	"github.com/automoto/racrec/viewport"
)

// ContentLeft is the x where page content starts.
func ContentLeft() float64 {
	return cfg.Page.Margin
}

// ContentWidth is the width available to page content.
func ContentWidth() float64 {
	return float64(cfg.C.Width) - 2*cfg.Page.Margin
}

// GridColumns returns how many cells of width cellW fit in width.
func GridColumns(width, cellW, gap float64) int {
	if cellW <= 0 {
		return 1
	}
	return max(1, int((width+gap)/(cellW+gap)))
}

// GridLayout places n cells of cellW x cellH in rows of cols, centered in the
// content area, starting at page y top.
func GridLayout(n, cols int, cellW, cellH, gap, top float64) []viewport.Rect {
	if n <= 0 {
		return nil
	}
	cols = max(1, min(cols, n))
	rowW := float64(cols)*cellW + float64(cols-1)*gap
	left := ContentLeft() + (ContentWidth()-rowW)/2

	rects := make([]viewport.Rect, n)
	for i := range rects {
		col, row := i%cols, i/cols
		rects[i] = viewport.Rect{
			X: left + float64(col)*(cellW+gap),
			Y: top + float64(row)*(cellH+gap),
			W: cellW,
			H: cellH,
		}
	}
	return rects
}

// Bottom returns the lowest edge of rects, or top when there are none.
func Bottom(rects []viewport.Rect, top float64) float64 {
	b := top
	for _, r := range rects {
		b = max(b, r.Y+r.H)
	}
	return b
}
