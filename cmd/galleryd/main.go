package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"

	"github.com/caarlos0/env/v11"
)

// serverEnv supplies flag defaults from the environment.
type serverEnv struct {
	Port    int    `env:"GALLERYD_PORT" envDefault:"5000"`
	Catalog string `env:"GALLERYD_CATALOG" envDefault:"gallery.yaml"`
	Uploads string `env:"GALLERYD_UPLOADS" envDefault:"gallery_uploads"`
}

func main() {
	var defaults serverEnv
	if err := env.Parse(&defaults); err != nil {
		log.Fatalf("[galleryd] fatal: parse env: %v", err)
	}

	port := flag.Int("port", defaults.Port, "HTTP listen port")
	catalogFile := flag.String("catalog", defaults.Catalog, "YAML catalog file")
	uploadsDir := flag.String("uploads", defaults.Uploads, "Directory of uploaded images")
	flag.Parse()

	cat, err := LoadCatalog(*catalogFile)
	if err != nil {
		log.Fatalf("[galleryd] fatal: %v", err)
	}

	addr := fmt.Sprintf(":%d", *port)
	log.Printf("[galleryd] starting on %s (%d images, uploads=%s)", addr, len(cat.List()), *uploadsDir)
	if err := http.ListenAndServe(addr, NewMux(cat, *uploadsDir)); err != nil {
		log.Fatalf("[galleryd] fatal: %v", err)
	}
}
