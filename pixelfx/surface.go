package pixelfx

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
)

// Surface is the raster target a run paints onto.
type Surface interface {
	ClearRect(x, y, w, h float64)
	// SetFillColor sets the paint used by FillRect. alpha scales the
	// color's own opacity.
	SetFillColor(c color.Color, alpha float64)
	FillRect(x, y, w, h float64)
}

// RGBASurface paints onto an in-memory image. Coordinates are rounded to
// the nearest pixel.
type RGBASurface struct {
	Img  *image.RGBA
	fill color.NRGBA
}

func NewRGBASurface(width, height int) *RGBASurface {
	return &RGBASurface{Img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

func (s *RGBASurface) ClearRect(x, y, w, h float64) {
	draw.Draw(s.Img, pixelRect(x, y, w, h), image.Transparent, image.Point{}, draw.Src)
}

func (s *RGBASurface) SetFillColor(c color.Color, alpha float64) {
	s.fill = WithAlpha(c, alpha)
}

func (s *RGBASurface) FillRect(x, y, w, h float64) {
	draw.Draw(s.Img, pixelRect(x, y, w, h), image.NewUniform(s.fill), image.Point{}, draw.Over)
}

// WithAlpha returns c with its alpha multiplied by alpha (clamped to [0,1]).
func WithAlpha(c color.Color, alpha float64) color.NRGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	alpha = math.Max(0, math.Min(1, alpha))
	n.A = uint8(math.Round(float64(n.A) * alpha))
	return n
}

func pixelRect(x, y, w, h float64) image.Rectangle {
	return image.Rect(
		int(math.Round(x)), int(math.Round(y)),
		int(math.Round(x+w)), int(math.Round(y+h)),
	)
}
