package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"g1.vc/site/internal/models"
)

func testPortfolio() *models.Portfolio {
	return &models.Portfolio{Items: []models.PortfolioItem{
		{ID: "item-01", Name: "Saline", Year: 2024, Stage: "Pre-seed"},
		{ID: "item-02", Name: "Tidal", Year: 2023, Stage: "Seed"},
	}}
}

func TestPortfolioServiceGetAll(t *testing.T) {
	svc := NewPortfolioService(testPortfolio())
	items := svc.GetAll()
	require.Len(t, items, 2)
	assert.Equal(t, "item-01", items[0].ID)
}

func TestPortfolioServiceGetByID(t *testing.T) {
	svc := NewPortfolioService(testPortfolio())

	item, err := svc.GetByID("item-02")
	require.NoError(t, err)
	assert.Equal(t, "Tidal", item.Name)

	_, err = svc.GetByID("item-99")
	assert.ErrorIs(t, err, ErrNotFound)
}
