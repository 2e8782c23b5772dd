package gallery

import (
	"context"
	"sync"
)

// Loader runs a Client fetch in the background and hands the result to the
// frame loop through Poll.
type Loader struct {
	client *Client

	mu      sync.Mutex
	pending bool
	done    bool
	photos  []Photo
}

func NewLoader(c *Client) *Loader {
	return &Loader{client: c}
}

// Start begins a fetch unless one is already in flight.
func (l *Loader) Start(ctx context.Context) {
	l.mu.Lock()
	if l.pending {
		l.mu.Unlock()
		return
	}
	l.pending = true
	l.mu.Unlock()

	go func() {
		photos := l.client.Photos(ctx)
		l.mu.Lock()
		l.photos = photos
		l.done = true
		l.pending = false
		l.mu.Unlock()
	}()
}

// Poll returns the fetched photos once, after the fetch has finished.
func (l *Loader) Poll() ([]Photo, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.done {
		return nil, false
	}
	photos := l.photos
	l.done = false
	l.photos = nil
	return photos, true
}
