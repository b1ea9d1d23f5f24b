package handlers

import (
	"encoding/json"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"

	"g1.vc/site/internal/config"
	"g1.vc/site/internal/metrics"
	"g1.vc/site/internal/middleware"
	"g1.vc/site/internal/services"
	"g1.vc/site/internal/theme"
	"g1.vc/site/web"
)

// ClientBinary is the WebAssembly build the page loads when present.
const ClientBinary = "app.wasm"

// ClientAvailable reports whether dir holds a built client.
func ClientAvailable(dir string) bool {
	if dir == "" {
		return false
	}
	info, err := os.Stat(filepath.Join(dir, ClientBinary))
	return err == nil && !info.IsDir()
}

// NewPage builds the page handler for cfg.
func NewPage(cfg *config.Config, log zerolog.Logger, reg *metrics.Registry) *PageHandler {
	return NewPageHandler(PageOptions{
		Site:       cfg.Site,
		Styles:     theme.Default(),
		Feeds:      cfg.FeedProvider(),
		FeedDelay:  cfg.Server.FeedDelay,
		WithClient: ClientAvailable(cfg.Server.ClientDir),
		Mode:       string(cfg.Server.Mode),
		Metrics:    reg,
		Log:        log,
	})
}

// SetupRoutes configures all routes and returns the router
func SetupRoutes(cfg *config.Config, log zerolog.Logger, reg *metrics.Registry) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Recovery(log, reg))
	r.Use(middleware.Logger(log))
	r.Use(middleware.Metrics(reg))

	// Initialize services
	portfolioService := services.NewPortfolioService(&cfg.Site.Portfolio)

	// Initialize handlers
	pageHandler := NewPage(cfg, log, reg)
	portfolioHandler := NewPortfolioHandler(portfolioService)

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/portfolio", portfolioHandler.ListPortfolio)
		r.Get("/portfolio/{id}", portfolioHandler.GetPortfolioItem)

		// Health check
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})
	})

	r.Handle("/metrics", reg.Handler())

	// Static files
	static, err := fs.Sub(web.Static, "static")
	if err != nil {
		panic(err)
	}
	compress := chimw.Compress(5)
	r.With(compress).Handle("/static/*", http.StripPrefix("/static", http.FileServer(http.FS(static))))

	// WebAssembly client
	if cfg.Server.ClientDir != "" {
		r.Handle("/client/*", http.StripPrefix("/client", http.FileServer(http.Dir(cfg.Server.ClientDir))))
	}

	// Only the page render reads the motion hint
	r.With(compress, middleware.ClientHints).Get("/", pageHandler.Home)

	return r
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		zlog.Error().Err(err).Msg("encode json")
	}
}

// respondError writes an error JSON response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
