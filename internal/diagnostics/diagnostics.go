// Package diagnostics receives reports from the page script when a browser
// refuses to start playback. Reports are logged and then dropped.
package diagnostics

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/mssola/useragent"
	"github.com/storybite/storybite/internal/httputil"
	"github.com/storybite/storybite/internal/validate"
)

const maxReportBytes = 4 << 10

// Report is the beacon body. State mirrors the player state names.
type Report struct {
	ViewID string `json:"viewId" validate:"required,uuid4"`
	Source string `json:"source" validate:"required,max=2048"`
	Reason string `json:"reason" validate:"required,max=500"`
	State  string `json:"state" validate:"omitempty,oneof=idle loading playing paused"`
	Muted  bool   `json:"muted"`
}

type validationResponse struct {
	Error  string          `json:"error"`
	Fields validate.Errors `json:"fields"`
}

// Locator places a client address. geoip.Locator implements it.
type Locator interface {
	Locate(ip string) (country, city string)
}

type Handler struct {
	logger    *slog.Logger
	validator *validate.Validator
	locator   Locator
}

type Option func(*Handler)

func WithLocator(l Locator) Option {
	return func(h *Handler) { h.locator = l }
}

func NewHandler(logger *slog.Logger, opts ...Option) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	h := &Handler{logger: logger, validator: validate.New()}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// PlaybackRejected handles POST /api/diagnostics/playback. Browsers send
// beacons as text/plain, so the content type is not checked.
func (h *Handler) PlaybackRejected(w http.ResponseWriter, r *http.Request) {
	var report Report
	if err := httputil.DecodeJSON(r.Body, maxReportBytes, &report); err != nil {
		httputil.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validator.Struct(report); err != nil {
		var fields validate.Errors
		if errors.As(err, &fields) {
			httputil.WriteJSON(w, http.StatusBadRequest, validationResponse{Error: "invalid report", Fields: fields})
			return
		}
		httputil.WriteError(w, http.StatusBadRequest, "invalid report")
		return
	}

	ua := useragent.New(r.UserAgent())
	browser, version := ua.Browser()
	clientIP := httputil.ClientIP(r)
	attrs := []any{
		"view_id", report.ViewID,
		"source", report.Source,
		"reason", report.Reason,
		"state", report.State,
		"muted", report.Muted,
		"browser", browser,
		"browser_version", version,
		"os", ua.OS(),
		"mobile", ua.Mobile(),
		"bot", ua.Bot(),
		"client_ip", clientIP,
	}
	if h.locator != nil {
		if country, city := h.locator.Locate(clientIP); country != "" {
			attrs = append(attrs, "country", country, "city", city)
		}
	}
	h.logger.Warn("playback request rejected", attrs...)
	w.WriteHeader(http.StatusNoContent)
}
