package config

import (
	"image/color"
	"time"

	"github.com/automoto/racrec/gallery"
)

// Config holds general window configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// TransitionConfig contains pixel dissolve defaults
type TransitionConfig struct {
	PixelSize  int
	Duration   float64     // seconds
	Color      color.NRGBA // fill color; alpha is the base opacity of every square
	OnNavigate bool        // play the dissolve over every page change
}

// CounterConfig contains animated counter configuration
type CounterConfig struct {
	Duration float32 // seconds to count from 0 to the target
	Color    color.RGBA
}

// CardConfig contains project and team card interaction values
type CardConfig struct {
	Width, Height   float64
	Gap             float64
	HoverLift       float64 // pixels a hovered card rises
	SpringFrequency float64 // harmonica angular frequency
	SpringDamping   float64 // harmonica damping ratio
	ShadowColor     color.RGBA
	BackgroundColor color.RGBA
	TitleColor      color.RGBA
	TextColor       color.RGBA
}

// RevealConfig contains scroll-reveal fade-in values
type RevealConfig struct {
	Offset    float64 // starting downward offset in pixels
	Duration  float32 // seconds
	Stagger   float32 // extra delay per item index
	Threshold float64 // visible fraction needed to trigger
}

// LightboxConfig contains lightbox and modal overlay values
type LightboxConfig struct {
	BackdropColor  color.RGBA
	CloseSize      float64
	CloseMargin    float64
	ContentPadding float64
	PanelColor     color.RGBA
}

// GalleryConfig contains gallery page configuration
type GalleryConfig struct {
	BaseURL      string
	Columns      int
	TileHeight   float64
	Gap          float64
	TitleColor   color.RGBA
	Fallback     []gallery.Photo
	SmilesShared int
}

// NavConfig contains navbar layout values
type NavConfig struct {
	Height          float64
	BackgroundColor color.RGBA
}

// PageConfig contains shared page layout values
type PageConfig struct {
	Margin          float64
	SectionGap      float64
	LineHeight      float64
	BackgroundColor color.RGBA
	HeaderColor     color.RGBA
	TitleColor      color.RGBA
	TextColor       color.RGBA
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	StartRoute   string
	StrictPixels bool // panic on invalid dissolve configuration
	Overlay      bool // hit areas and frame stats, toggled with F3
}

// Global configuration instances
var C *Config
var Transition TransitionConfig
var Counter CounterConfig
var Card CardConfig
var Reveal RevealConfig
var Lightbox LightboxConfig
var Gallery GalleryConfig
var Nav NavConfig
var Page PageConfig
var Debug DebugConfig

// Site palette
var (
	White      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Primary    = color.RGBA{R: 24, G: 126, B: 95, A: 255}
	Accent     = color.RGBA{R: 217, G: 104, B: 49, A: 255}
	TextDark   = color.RGBA{R: 33, G: 37, B: 41, A: 255}
	Gray       = color.RGBA{R: 107, G: 114, B: 128, A: 255}
	Background = color.RGBA{R: 248, G: 247, B: 243, A: 255}
)

// DefaultTransitionDuration is Transition.Duration as a time.Duration.
func DefaultTransitionDuration() time.Duration {
	return time.Duration(Transition.Duration * float64(time.Second))
}

func init() {
	C = &Config{
		Width:  1280,
		Height: 720,
		Title:  "Rotaract Club - RACREC",
	}

	Transition = TransitionConfig{
		PixelSize:  10,
		Duration:   0.6,
		Color:      color.NRGBA{R: 24, G: 126, B: 95, A: 204}, // primary at 0.8
		OnNavigate: true,
	}

	Counter = CounterConfig{
		Duration: 1.5,
		Color:    Primary,
	}

	Card = CardConfig{
		Width:           280,
		Height:          240,
		Gap:             24,
		HoverLift:       5,
		SpringFrequency: 6.0,
		SpringDamping:   0.7,
		ShadowColor:     color.RGBA{R: 0, G: 0, B: 0, A: 40},
		BackgroundColor: White,
		TitleColor:      TextDark,
		TextColor:       Gray,
	}

	Reveal = RevealConfig{
		Offset:    20,
		Duration:  0.5,
		Stagger:   0.05,
		Threshold: 0,
	}

	Lightbox = LightboxConfig{
		BackdropColor:  color.RGBA{R: 0, G: 0, B: 0, A: 230},
		CloseSize:      48,
		CloseMargin:    24,
		ContentPadding: 32,
		PanelColor:     White,
	}

	Nav = NavConfig{
		Height:          56,
		BackgroundColor: White,
	}

	Page = PageConfig{
		Margin:          48,
		SectionGap:      48,
		LineHeight:      22,
		BackgroundColor: Background,
		HeaderColor:     White,
		TitleColor:      TextDark,
		TextColor:       Gray,
	}

	Gallery = GalleryConfig{
		BaseURL:      "http://localhost:5000/api",
		Columns:      4,
		TileHeight:   180,
		Gap:          16,
		TitleColor:   White,
		SmilesShared: 150,
		Fallback: []gallery.Photo{
			{Src: "/gallery/WhatsApp Image 2025-08-11 at 23.23.53_d9a3a398.jpg", Title: "Gallery"},
			{Src: "/gallery/IMG-20250811-WA0090.jpg", Title: "Gallery"},
			{Src: "/uploads/20250809_133106.jpg", Title: "Gallery"},
			{Src: "/uploads/20251019_115005 (1).jpg", Title: "Gallery"},
			{Src: "/uploads/Copy of IMG_1433.JPG", Title: "Gallery"},
			{Src: "/uploads/d2.jpeg", Title: "Gallery"},
			{Src: "/uploads/IMG_0119.JPG", Title: "Gallery"},
			{Src: "/uploads/IMG_3163.JPG", Title: "Gallery"},
			{Src: "/uploads/IMG-20250706-WA0149.jpg", Title: "Gallery"},
			{Src: "/uploads/IMG-20251104-WA0016 (1).jpg", Title: "Gallery"},
			{Src: "/uploads/IMG-20251104-WA0023.jpg", Title: "Gallery"},
			{Src: "/uploads/Screenshot 2025-11-30 163046.png", Title: "Gallery"},
			{Src: "/uploads/Untitled design (5)-min.png", Title: "Gallery"},
			{Src: "/uploads/WhatsApp Image 2025-11-25 at 6.23.19 PM.jpeg", Title: "Gallery"},
		},
	}

	Debug = DebugConfig{
		StartRoute:   RouteHome,
		StrictPixels: false,
	}
}
