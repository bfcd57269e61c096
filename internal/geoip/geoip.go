// Package geoip places a client address in a country and city using a
// MaxMind database. Without a database every lookup comes back empty.
package geoip

import (
	"log/slog"
	"net"

	"github.com/oschwald/maxminddb-golang"
)

type cityRecord struct {
	Country struct {
		ISOCode string `maxminddb:"iso_code"`
	} `maxminddb:"country"`
	City struct {
		Names map[string]string `maxminddb:"names"`
	} `maxminddb:"city"`
}

type Locator struct {
	db *maxminddb.Reader
}

// Open loads the database at path. A missing or unreadable file disables
// lookups rather than failing startup.
func Open(path string, logger *slog.Logger) *Locator {
	if logger == nil {
		logger = slog.Default()
	}
	if path == "" {
		return &Locator{}
	}
	db, err := maxminddb.Open(path)
	if err != nil {
		logger.Warn("geoip database unavailable, locations disabled", "path", path, "error", err)
		return &Locator{}
	}
	logger.Info("geoip database loaded", "path", path, "type", db.Metadata.DatabaseType)
	return &Locator{db: db}
}

func (l *Locator) Enabled() bool {
	return l != nil && l.db != nil
}

// Locate returns the ISO country code and English city name for ip.
func (l *Locator) Locate(ip string) (country, city string) {
	if !l.Enabled() || ip == "" {
		return "", ""
	}
	parsed := net.ParseIP(ip)
	if parsed == nil {
		return "", ""
	}
	var rec cityRecord
	if err := l.db.Lookup(parsed, &rec); err != nil {
		return "", ""
	}
	return rec.Country.ISOCode, rec.City.Names["en"]
}

func (l *Locator) Close() error {
	if !l.Enabled() {
		return nil
	}
	return l.db.Close()
}
