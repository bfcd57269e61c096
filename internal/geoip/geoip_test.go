package geoip

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestOpen_EmptyPathDisablesLookups(t *testing.T) {
	l := Open("", nil)
	if l.Enabled() {
		t.Error("expected locator without database to be disabled")
	}
	country, city := l.Locate("8.8.8.8")
	if country != "" || city != "" {
		t.Errorf("expected empty location, got country=%q city=%q", country, city)
	}
}

func TestOpen_MissingFileLogsAndDegrades(t *testing.T) {
	var buf bytes.Buffer
	l := Open("/nonexistent/GeoLite2-City.mmdb", slog.New(slog.NewTextHandler(&buf, nil)))

	if l.Enabled() {
		t.Error("expected locator to be disabled")
	}
	if !strings.Contains(buf.String(), "geoip database unavailable") {
		t.Errorf("expected warning, got %q", buf.String())
	}
}

func TestLocate_InvalidInput(t *testing.T) {
	l := Open("", nil)
	for _, ip := range []string{"", "not-an-ip", "::1"} {
		if country, city := l.Locate(ip); country != "" || city != "" {
			t.Errorf("%q: expected empty location, got %q/%q", ip, country, city)
		}
	}
}

func TestLocate_NilLocator(t *testing.T) {
	var l *Locator
	if country, _ := l.Locate("8.8.8.8"); country != "" {
		t.Errorf("expected empty country, got %q", country)
	}
	if err := l.Close(); err != nil {
		t.Errorf("expected no error closing nil locator, got %v", err)
	}
}

func TestClose_Disabled(t *testing.T) {
	if err := Open("", nil).Close(); err != nil {
		t.Errorf("expected no error, got %v", err)
	}
}
