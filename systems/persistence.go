package systems

import (
	"encoding/json"
	"log"

	"github.com/automoto/racrec/components"
	"github.com/quasilyte/gdata"
)

const demoItemKey = "demo"

// SavedDemoSettings represents the pixel demo settings stored on disk
type SavedDemoSettings struct {
	PixelSize int     `json:"pixelSize"`
	Duration  float64 `json:"duration"`
}

// itemStore is the part of gdata.Manager used for settings.
type itemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

var store itemStore

// savedDemo is applied to the demo page when it is created.
var savedDemo *SavedDemoSettings

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "racrec",
	})
	if err != nil {
		log.Printf("[persist] warning: could not initialize persistence: %v", err)
		return err
	}
	store = m
	return nil
}

// LoadDemoSettings loads the demo settings from disk. It returns nil when
// nothing has been saved yet or the store is unavailable.
func LoadDemoSettings() (*SavedDemoSettings, error) {
	if store == nil {
		return nil, nil
	}

	data, err := store.LoadItem(demoItemKey)
	if err != nil {
		log.Printf("[persist] warning: could not load demo settings: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var settings SavedDemoSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("[persist] warning: could not parse saved demo settings: %v", err)
		return nil, err
	}
	return &settings, nil
}

// ApplySavedDemoSettings makes s the starting point of the demo page.
func ApplySavedDemoSettings(s *SavedDemoSettings) {
	savedDemo = s
}

// SaveDemoSettings saves d to disk and remembers it for the next demo page.
func SaveDemoSettings(d *components.DemoData) {
	saved := &SavedDemoSettings{PixelSize: d.PixelSize, Duration: d.Duration}
	savedDemo = saved
	if store == nil {
		return
	}

	data, err := json.Marshal(saved)
	if err != nil {
		log.Printf("[persist] warning: could not serialize demo settings: %v", err)
		return
	}
	if err := store.SaveItem(demoItemKey, data); err != nil {
		log.Printf("[persist] warning: could not save demo settings: %v", err)
	}
}
