package main

import (
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/storybite/storybite/internal/validate"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != 8080 {
		t.Errorf("expected port 8080, got %d", cfg.Port)
	}
	if cfg.BaseURL != "http://localhost:8080" {
		t.Errorf("expected default base URL, got %q", cfg.BaseURL)
	}
	if cfg.MediaURLExpiry != 6*time.Hour {
		t.Errorf("expected 6h media URL expiry, got %v", cfg.MediaURLExpiry)
	}
	if cfg.UsesBucket() {
		t.Error("expected local media without S3_ENDPOINT")
	}
}

func TestLoadConfigReadsEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("BASE_URL", "https://storybite.example.com/")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("MEDIA_SYNC", "true")
	t.Setenv("MEDIA_URL_EXPIRY", "30m")
	t.Setenv("S3_ENDPOINT", "http://localhost:3900")
	t.Setenv("S3_BUCKET", "showcase")

	cfg, err := loadConfig(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.Port)
	}
	if cfg.BaseURL != "https://storybite.example.com" {
		t.Errorf("expected trailing slash trimmed, got %q", cfg.BaseURL)
	}
	if cfg.slogLevel() != slog.LevelDebug {
		t.Errorf("expected debug level, got %v", cfg.slogLevel())
	}
	if !cfg.MediaSync {
		t.Error("expected media sync enabled")
	}
	if cfg.MediaURLExpiry != 30*time.Minute {
		t.Errorf("expected 30m expiry, got %v", cfg.MediaURLExpiry)
	}
	if !cfg.UsesBucket() || cfg.S3Bucket != "showcase" {
		t.Errorf("expected bucket showcase, got %q", cfg.S3Bucket)
	}
}

func TestLoadConfigFlagsOverrideEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")

	cfg, err := loadConfig([]string{"--port", "7070", "--media-dir", "/srv/media"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != 7070 {
		t.Errorf("expected flag port 7070, got %d", cfg.Port)
	}
	if cfg.MediaDir != "/srv/media" {
		t.Errorf("expected media dir from flag, got %q", cfg.MediaDir)
	}
}

func TestLoadConfigRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		env   map[string]string
		args  []string
		field string
	}{
		{"bad log level", map[string]string{"LOG_LEVEL": "verbose"}, nil, "log-level"},
		{"port out of range", map[string]string{"PORT": "70000"}, nil, "port"},
		{"base url not a url", map[string]string{"BASE_URL": "storybite"}, nil, "base-url"},
		{"expiry too short", map[string]string{"MEDIA_URL_EXPIRY": "10s"}, nil, "media-url-expiry"},
		{"endpoint without bucket", map[string]string{"S3_ENDPOINT": "http://localhost:3900"}, []string{"--s3-bucket="}, "s3-bucket"},
		{"analytics not a url", map[string]string{"ANALYTICS_SCRIPT": "script.js"}, nil, "analytics-script"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := loadConfig(tt.args)
			var fieldErrs validate.Errors
			if !errors.As(err, &fieldErrs) {
				t.Fatalf("expected validation errors, got %v", err)
			}
			found := false
			for _, fe := range fieldErrs {
				if fe.Field == tt.field {
					found = true
				}
			}
			if !found {
				t.Errorf("expected error on %s, got %v", tt.field, fieldErrs)
			}
		})
	}
}

func TestLoadConfigUnknownFlag(t *testing.T) {
	_, err := loadConfig([]string{"--database-url", "postgres://"})
	if err == nil || !strings.Contains(err.Error(), "unknown flag") {
		t.Errorf("expected unknown flag error, got %v", err)
	}
}
