package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"g1.vc/site/internal/services"
)

// PortfolioHandler handles portfolio-related endpoints
type PortfolioHandler struct {
	portfolioService *services.PortfolioService
}

// NewPortfolioHandler creates a new PortfolioHandler
func NewPortfolioHandler(ps *services.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{portfolioService: ps}
}

// ListPortfolio handles GET /api/portfolio
func (h *PortfolioHandler) ListPortfolio(w http.ResponseWriter, r *http.Request) {
	items := h.portfolioService.GetAll()
	respondJSON(w, http.StatusOK, items)
}

// GetPortfolioItem handles GET /api/portfolio/{id}
func (h *PortfolioHandler) GetPortfolioItem(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	item, err := h.portfolioService.GetByID(id)
	if errors.Is(err, services.ErrNotFound) {
		respondError(w, http.StatusNotFound, "Portfolio item not found")
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, item)
}
