package services

import (
	"errors"
	"fmt"

	"g1.vc/site/internal/models"
)

// ErrNotFound is returned when a portfolio item does not exist
var ErrNotFound = errors.New("not found")

// PortfolioService handles portfolio-related operations
type PortfolioService struct {
	portfolio *models.Portfolio
}

// NewPortfolioService creates a new PortfolioService
func NewPortfolioService(portfolio *models.Portfolio) *PortfolioService {
	return &PortfolioService{portfolio: portfolio}
}

// GetAll returns all portfolio items
func (s *PortfolioService) GetAll() []models.PortfolioItem {
	return s.portfolio.Items
}

// GetByID returns a specific portfolio item by ID
func (s *PortfolioService) GetByID(id string) (*models.PortfolioItem, error) {
	for i := range s.portfolio.Items {
		if s.portfolio.Items[i].ID == id {
			return &s.portfolio.Items[i], nil
		}
	}
	return nil, fmt.Errorf("portfolio item %s: %w", id, ErrNotFound)
}
