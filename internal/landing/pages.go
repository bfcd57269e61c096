// Package landing renders the two public pages and the showcase API the demo
// page is built from.
package landing

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/storybite/storybite/internal/catalog"
	"github.com/storybite/storybite/internal/httputil"
	"github.com/storybite/storybite/internal/playback"
)

// Assets names the home page videos that are not part of the catalog.
type Assets struct {
	Hero string
	Demo string
	Reel string
}

func DefaultAssets() Assets {
	return Assets{
		Hero: "sandy-lake.mp4",
		Demo: "sandy-lake-sora.mp4",
		Reel: "sandy-lake-reel.mp4",
	}
}

type Config struct {
	Catalog         catalog.Catalog
	Resolver        catalog.Resolver
	Assets          Assets
	AnalyticsScript string
	Logger          *slog.Logger
}

type Handler struct {
	catalog         catalog.Catalog
	resolver        catalog.Resolver
	assets          Assets
	analyticsScript string
	logger          *slog.Logger
}

func NewHandler(cfg Config) *Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	assets := cfg.Assets
	if assets == (Assets{}) {
		assets = DefaultAssets()
	}
	cat := cfg.Catalog
	if cat.Len() == 0 {
		cat = catalog.Default()
	}
	return &Handler{
		catalog:         cat,
		resolver:        cfg.Resolver,
		assets:          assets,
		analyticsScript: cfg.AnalyticsScript,
		logger:          logger,
	}
}

type pageMeta struct {
	Lang            string
	Title           string
	Description     string
	OGVideo         string
	Nonce           string
	AnalyticsScript string
	ViewID          string
	HideDelayMS     int64
	Threshold       float64
}

type homePageData struct {
	pageMeta
	Content   HomeContent
	HeroVideo string
	DemoVideo string
	ReelVideo string
}

type demoPageData struct {
	pageMeta
	Content DemoContent
	Main    catalog.Card
	Cards   []catalog.Card
}

// ShowcaseResponse is the body of GET /api/showcase.
type ShowcaseResponse struct {
	Main     catalog.Card   `json:"main"`
	Previews []catalog.Card `json:"previews"`
}

func (h *Handler) meta(r *http.Request, lang, title, description string) pageMeta {
	return pageMeta{
		Lang:            lang,
		Title:           title,
		Description:     description,
		Nonce:           httputil.NonceFromContext(r.Context()),
		AnalyticsScript: h.analyticsScript,
		ViewID:          uuid.NewString(),
		HideDelayMS:     playback.HideDelay.Milliseconds(),
		Threshold:       playback.VisibilityThreshold,
	}
}

func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	urls, err := h.resolveAll(r.Context(), h.assets.Hero, h.assets.Demo, h.assets.Reel)
	if err != nil {
		h.logger.Error("home page: resolve media failed", "error", err)
		http.Error(w, "media unavailable", http.StatusInternalServerError)
		return
	}

	data := homePageData{
		pageMeta:  h.meta(r, "ko", "StoryBite | 당신의 가게에는 이야기가 있습니다", homeContent.Hero.Subtitle),
		Content:   homeContent,
		HeroVideo: urls[0],
		DemoVideo: urls[1],
		ReelVideo: urls[2],
	}
	data.OGVideo = urls[1]
	httputil.RenderHTML(w, http.StatusOK, homePageTemplate, data)
}

func (h *Handler) Demo(w http.ResponseWriter, r *http.Request) {
	resolved, err := h.catalog.Resolve(r.Context(), h.resolver)
	if err != nil {
		h.logger.Error("demo page: resolve catalog failed", "error", err)
		http.Error(w, "media unavailable", http.StatusInternalServerError)
		return
	}

	featured := resolved.Featured()
	data := demoPageData{
		pageMeta: h.meta(r, "en", "StoryBite | See the Magic in Action", demoContent.Subtitle),
		Content:  demoContent,
		Main:     featured,
		Cards:    resolved.Cards(),
	}
	data.OGVideo = featured.Source
	httputil.RenderHTML(w, http.StatusOK, demoPageTemplate, data)
}

// Showcase returns the main card and the previews beside it. The featured
// query parameter promotes a card by id.
func (h *Handler) Showcase(w http.ResponseWriter, r *http.Request) {
	featured := h.catalog.Featured()
	if id := r.URL.Query().Get("featured"); id != "" {
		card, ok := h.catalog.Lookup(id)
		if !ok {
			httputil.WriteError(w, http.StatusNotFound, "card not found")
			return
		}
		featured = card
	}

	resolved, err := h.catalog.Resolve(r.Context(), h.resolver)
	if err != nil {
		h.logger.Error("showcase: resolve catalog failed", "error", err)
		httputil.WriteError(w, http.StatusInternalServerError, "media unavailable")
		return
	}
	featured, _ = resolved.Lookup(featured.ID)

	httputil.WriteJSON(w, http.StatusOK, ShowcaseResponse{
		Main:     featured,
		Previews: resolved.Previews(featured.Source),
	})
}

func (h *Handler) resolveAll(ctx context.Context, names ...string) ([]string, error) {
	urls := make([]string, len(names))
	for i, name := range names {
		url, err := h.resolver.URL(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("resolve %s: %w", name, err)
		}
		urls[i] = url
	}
	return urls, nil
}
