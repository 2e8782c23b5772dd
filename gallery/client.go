// Package gallery fetches the photo list shown on the gallery page.
package gallery

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

// UploadsPath is appended to the API base URL to build image URLs.
const UploadsPath = "/gallery-uploads/"

var (
	// ErrStatus is returned for non-2xx responses.
	ErrStatus = errors.New("unexpected status")
	// ErrMalformed is returned when the body is not exactly one JSON array.
	ErrMalformed = errors.New("malformed gallery body")
)

// Entry is one item of the backend's /gallery response.
type Entry struct {
	Filename string `json:"filename"`
	Title    string `json:"title"`
}

// Photo is a displayable gallery image.
type Photo struct {
	Src   string `json:"src" yaml:"src"`
	Title string `json:"title" yaml:"title"`
}

// Client loads photos from the backend, substituting a fixed list on any failure.
type Client struct {
	baseURL    string
	httpClient *http.Client
	fallback   []Photo
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default 5s-timeout client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func NewClient(baseURL string, fallback []Photo, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 5 * time.Second},
		fallback:   append([]Photo(nil), fallback...),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Fallback returns a copy of the fixed list used when the backend fails.
func (c *Client) Fallback() []Photo {
	return append([]Photo(nil), c.fallback...)
}

// ImageURL maps a backend filename to its URL.
func (c *Client) ImageURL(filename string) string {
	return c.baseURL + UploadsPath + filename
}

// Photos returns the remote gallery, or exactly the fallback list when the
// request fails for any reason. Errors are logged, never returned.
func (c *Client) Photos(ctx context.Context) []Photo {
	photos, err := c.Fetch(ctx)
	if err != nil {
		log.Printf("[gallery] backend not available, using default gallery: %v", err)
		return c.Fallback()
	}
	return photos
}

// Fetch requests the remote gallery without falling back.
func (c *Client) Fetch(ctx context.Context) ([]Photo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/gallery", nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get gallery: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w %d", ErrStatus, resp.StatusCode)
	}

	dec := json.NewDecoder(resp.Body)
	var entries []Entry
	if err := dec.Decode(&entries); err != nil {
		return nil, fmt.Errorf("decode gallery: %w", err)
	}
	if entries == nil {
		return nil, fmt.Errorf("decode gallery: %w: not an array", ErrMalformed)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("decode gallery: %w: trailing data", ErrMalformed)
	}

	photos := make([]Photo, 0, len(entries))
	for _, e := range entries {
		photos = append(photos, Photo{Src: c.ImageURL(e.Filename), Title: e.Title})
	}
	return photos, nil
}
