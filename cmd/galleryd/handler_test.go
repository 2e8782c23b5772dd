package main

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func newTestServer(t *testing.T) (*httptest.Server, *Catalog, string) {
	t.Helper()
	dir := t.TempDir()
	cat := NewCatalog(filepath.Join(dir, "gallery.yaml"))
	cat.now = func() time.Time { return time.Date(2025, 12, 21, 23, 23, 12, 0, time.UTC) }
	uploads := filepath.Join(dir, "uploads")
	if err := os.Mkdir(uploads, 0o755); err != nil {
		t.Fatal(err)
	}
	srv := httptest.NewServer(NewMux(cat, uploads))
	t.Cleanup(srv.Close)
	return srv, cat, uploads
}

func TestListEmpty(t *testing.T) {
	srv, _, _ := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/gallery")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("CORS header = %q, want *", got)
	}
	var images []Image
	if err := json.NewDecoder(resp.Body).Decode(&images); err != nil {
		t.Fatal(err)
	}
	if len(images) != 0 {
		t.Errorf("got %d images, want 0", len(images))
	}
}

func TestAddThenList(t *testing.T) {
	srv, _, _ := newTestServer(t)

	body := `{"filename":"orientation.jpg","title":"The First Step","width":1080,"height":1440}`
	resp, err := http.Post(srv.URL+"/api/gallery", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d, want 201", resp.StatusCode)
	}

	resp, err = http.Get(srv.URL + "/api/gallery")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	var images []Image
	if err := json.NewDecoder(resp.Body).Decode(&images); err != nil {
		t.Fatal(err)
	}
	if len(images) != 1 {
		t.Fatalf("got %d images, want 1", len(images))
	}
	if images[0].ID != 1 || images[0].Filename != "orientation.jpg" || images[0].Title != "The First Step" {
		t.Errorf("unexpected image %+v", images[0])
	}
}

func TestAddRejects(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"invalid json", `{"filename":`},
		{"empty filename", `{"filename":"","title":"x"}`},
		{"path traversal", `{"filename":"../secret.yaml","title":"x"}`},
		{"nested path", `{"filename":"a/b.jpg","title":"x"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, cat, _ := newTestServer(t)
			resp, err := http.Post(srv.URL+"/api/gallery", "application/json", strings.NewReader(tt.body))
			if err != nil {
				t.Fatal(err)
			}
			resp.Body.Close()
			if resp.StatusCode != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", resp.StatusCode)
			}
			if n := len(cat.List()); n != 0 {
				t.Errorf("catalog has %d images after rejected add", n)
			}
		})
	}
}

func TestUploadsServed(t *testing.T) {
	srv, _, uploads := newTestServer(t)
	if err := os.WriteFile(filepath.Join(uploads, "d2.jpeg"), []byte("jpeg bytes"), 0o644); err != nil {
		t.Fatal(err)
	}

	resp, err := http.Get(srv.URL + "/api/gallery-uploads/d2.jpeg")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	data, _ := io.ReadAll(resp.Body)
	if string(data) != "jpeg bytes" {
		t.Errorf("body = %q", data)
	}

	resp2, err := http.Get(srv.URL + "/api/gallery-uploads/missing.jpg")
	if err != nil {
		t.Fatal(err)
	}
	resp2.Body.Close()
	if resp2.StatusCode != http.StatusNotFound {
		t.Errorf("missing file status = %d, want 404", resp2.StatusCode)
	}
}

func TestHealth(t *testing.T) {
	srv, _, _ := newTestServer(t)
	resp, err := http.Get(srv.URL + "/health")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	data, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK || !strings.Contains(string(data), "ok") {
		t.Errorf("health = %d %q", resp.StatusCode, data)
	}
}
