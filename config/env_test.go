package config

import "testing"

func TestParseEnvDefaults(t *testing.T) {
	t.Setenv("RACREC_API_URL", "")
	t.Setenv("RACREC_HOST", "localhost")
	t.Setenv("RACREC_API_PORT", "5000")
	cfg, err := ParseEnv()
	if err != nil {
		t.Fatalf("ParseEnv: %v", err)
	}
	if got := cfg.APIBaseURL(); got != "http://localhost:5000/api" {
		t.Errorf("APIBaseURL = %q", got)
	}
}

func TestParseEnvOverrides(t *testing.T) {
	t.Setenv("RACREC_API_URL", "https://api.example.org/api/")
	t.Setenv("RACREC_START_ROUTE", "/gallery")
	t.Setenv("RACREC_STRICT_PIXELS", "true")
	cfg, err := ParseEnv()
	if err != nil {
		t.Fatalf("ParseEnv: %v", err)
	}
	if got := cfg.APIBaseURL(); got != "https://api.example.org/api" {
		t.Errorf("APIBaseURL = %q", got)
	}

	prevGallery, prevDebug := Gallery, Debug
	defer func() { Gallery, Debug = prevGallery, prevDebug }()
	ApplyEnv(cfg)
	if Gallery.BaseURL != "https://api.example.org/api" || Debug.StartRoute != "/gallery" || !Debug.StrictPixels {
		t.Errorf("ApplyEnv left Gallery=%q Debug=%+v", Gallery.BaseURL, Debug)
	}
}

func TestParseEnvHost(t *testing.T) {
	t.Setenv("RACREC_API_URL", "")
	t.Setenv("RACREC_HOST", "10.0.0.7")
	t.Setenv("RACREC_API_PORT", "8080")
	cfg, err := ParseEnv()
	if err != nil {
		t.Fatalf("ParseEnv: %v", err)
	}
	if got := cfg.APIBaseURL(); got != "http://10.0.0.7:8080/api" {
		t.Errorf("APIBaseURL = %q", got)
	}
}
