package handlers

import (
	"bytes"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"g1.vc/site/internal/feed"
	"g1.vc/site/internal/metrics"
	"g1.vc/site/internal/models"
	"g1.vc/site/internal/motion"
	"g1.vc/site/internal/shell"
	"g1.vc/site/internal/theme"
	"g1.vc/site/internal/views"
)

// PageHandler renders the landing page
type PageHandler struct {
	site       *models.Site
	styles     theme.Styles
	feeds      feed.Provider
	feedDelay  time.Duration
	withClient bool
	mode       string
	metrics    *metrics.Registry
	log        zerolog.Logger
}

// PageOptions configures a PageHandler
type PageOptions struct {
	Site       *models.Site
	Styles     theme.Styles
	Feeds      feed.Provider
	FeedDelay  time.Duration
	WithClient bool
	Mode       string
	Metrics    *metrics.Registry
	Log        zerolog.Logger
}

// NewPageHandler creates a new PageHandler
func NewPageHandler(opts PageOptions) *PageHandler {
	return &PageHandler{
		site:       opts.Site,
		styles:     opts.Styles,
		feeds:      opts.Feeds,
		feedDelay:  opts.FeedDelay,
		withClient: opts.WithClient,
		mode:       opts.Mode,
		metrics:    opts.Metrics,
		log:        opts.Log,
	}
}

// Data returns the render input for a visitor
func (h *PageHandler) Data(reducedMotion bool) views.PageData {
	return views.PageData{
		Site:       h.site,
		Styles:     h.styles,
		State:      shell.State{ReducedMotion: reducedMotion},
		Feeds:      h.feeds,
		FeedDelay:  h.feedDelay,
		WithClient: h.withClient,
	}
}

// Home handles GET /
func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	reduced := motion.FromRequest(r).Matches()

	var buf bytes.Buffer
	if err := views.Page(h.Data(reduced)).Render(&buf); err != nil {
		h.log.Error().Err(err).Msg("render page")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	if h.metrics != nil {
		h.metrics.PageRenders.WithLabelValues(h.mode, strconv.FormatBool(reduced)).Inc()
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		h.log.Debug().Err(err).Msg("write page")
	}
}
