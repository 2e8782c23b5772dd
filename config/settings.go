package config

// DemoConfig contains the pixel demo page's adjustable ranges
type DemoConfig struct {
	MinPixelSize  int
	MaxPixelSize  int
	PixelSizeStep int

	MinDuration  float64 // seconds
	MaxDuration  float64
	DurationStep float64

	Features []string
}

// Demo is the global pixel demo configuration
var Demo DemoConfig

func init() {
	Demo = DemoConfig{
		MinPixelSize:  5,
		MaxPixelSize:  30,
		PixelSizeStep: 1,
		MinDuration:   0.3,
		MaxDuration:   2.0,
		DurationStep:  0.1,
		Features: []string{
			"Customizable pixel size",
			"Smooth animations",
			"Easy to integrate",
			"Fully responsive",
			"Adjustable duration",
			"Beautiful dissolve effect",
		},
	}
}
