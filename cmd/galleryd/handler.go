package main

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
)

type addImageRequest struct {
	Filename string `json:"filename"`
	Title    string `json:"title"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
}

const maxRequestBody = 1 << 16 // 64 KB

func ListImages(cat *Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Access-Control-Allow-Origin", "*")

		if err := json.NewEncoder(w).Encode(cat.List()); err != nil {
			log.Printf("[galleryd] list encode error: %v", err)
		}
	}
}

func AddImage(cat *Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Access-Control-Allow-Origin", "*")

		r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)
		var req addImageRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, `{"error":"invalid json"}`, http.StatusBadRequest)
			return
		}

		img, err := cat.Add(Image{
			Filename: req.Filename,
			Title:    req.Title,
			Width:    req.Width,
			Height:   req.Height,
		})
		if errors.Is(err, ErrInvalidFilename) {
			http.Error(w, `{"error":"filename must be a plain file name"}`, http.StatusBadRequest)
			return
		}
		if err != nil {
			log.Printf("[galleryd] add image error: %v", err)
			http.Error(w, `{"error":"could not save catalog"}`, http.StatusInternalServerError)
			return
		}

		log.Printf("[galleryd] added image %q (id=%d)", img.Filename, img.ID)

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(img)
	}
}

// Uploads serves image files from dir under prefix.
func Uploads(prefix, dir string) http.Handler {
	files := http.StripPrefix(prefix, http.FileServer(http.Dir(dir)))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		files.ServeHTTP(w, r)
	})
}

func Health() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}
}

// NewMux wires every galleryd route.
func NewMux(cat *Catalog, uploadsDir string) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/gallery", ListImages(cat))
	mux.HandleFunc("POST /api/gallery", AddImage(cat))
	mux.Handle("GET /api/gallery-uploads/", Uploads("/api/gallery-uploads/", uploadsDir))
	mux.HandleFunc("GET /health", Health())
	return mux
}
