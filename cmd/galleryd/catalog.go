package main

import (
	"errors"
	"fmt"
	"os"
	"path"
	"strings"
	"sync"
	"time"

	"gopkg.in/yaml.v3"
)

// Image describes one uploaded gallery image.
type Image struct {
	ID        int       `json:"id" yaml:"id"`
	Filename  string    `json:"filename" yaml:"filename"`
	Title     string    `json:"title" yaml:"title"`
	Width     int       `json:"width,omitempty" yaml:"width,omitempty"`
	Height    int       `json:"height,omitempty" yaml:"height,omitempty"`
	CreatedAt time.Time `json:"createdAt" yaml:"createdAt"`
}

var ErrInvalidFilename = errors.New("invalid filename")

// Catalog is the gallery image list, kept in memory and mirrored to a YAML
// file when one is configured.
type Catalog struct {
	mu     sync.RWMutex
	images []Image
	nextID int
	file   string
	now    func() time.Time
}

func NewCatalog(file string) *Catalog {
	return &Catalog{file: file, nextID: 1, now: time.Now}
}

// LoadCatalog reads file into a new catalog. A missing file yields an empty
// catalog that will be created on the first Add.
func LoadCatalog(file string) (*Catalog, error) {
	c := NewCatalog(file)
	data, err := os.ReadFile(file)
	if errors.Is(err, os.ErrNotExist) {
		return c, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	if err := yaml.Unmarshal(data, &c.images); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", file, err)
	}
	for _, img := range c.images {
		c.nextID = max(c.nextID, img.ID+1)
	}
	return c, nil
}

// List returns a copy of every image in insertion order.
func (c *Catalog) List() []Image {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Image, len(c.images))
	copy(out, c.images)
	return out
}

// Add appends img with a fresh ID and creation time and saves the catalog.
func (c *Catalog) Add(img Image) (Image, error) {
	if !validFilename(img.Filename) {
		return Image{}, fmt.Errorf("%w: %q", ErrInvalidFilename, img.Filename)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	img.ID = c.nextID
	img.CreatedAt = c.now().UTC()
	c.images = append(c.images, img)
	c.nextID++

	if err := c.saveLocked(); err != nil {
		c.images = c.images[:len(c.images)-1]
		c.nextID--
		return Image{}, err
	}
	return img, nil
}

func (c *Catalog) saveLocked() error {
	if c.file == "" {
		return nil
	}
	data, err := yaml.Marshal(c.images)
	if err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}
	tmp := c.file + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write catalog: %w", err)
	}
	if err := os.Rename(tmp, c.file); err != nil {
		return fmt.Errorf("replace catalog: %w", err)
	}
	return nil
}

// validFilename accepts a bare file name inside the uploads directory.
func validFilename(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	if strings.ContainsAny(name, `/\`) {
		return false
	}
	return path.Base(name) == name
}
