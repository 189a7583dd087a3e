package catalog_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stokpilot/stokpilot/internal/client/catalog"
	"github.com/stokpilot/stokpilot/internal/core/domain"
)

func TestSummarize(t *testing.T) {
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

	t.Run("ZeroProducts", func(t *testing.T) {
		cats := []domain.Category{{ID: "C1", Name: "Atıştırmalık"}}
		brs := []domain.Brand{{ID: "B1", Name: "Eti"}}

		var s catalog.Stats
		require.NotPanics(t, func() {
			s = catalog.Summarize(nil, cats, brs, now)
		})

		assert.Zero(t, s.TotalProducts)
		assert.Zero(t, s.AveragePrice)
		assert.Zero(t, s.AverageStock)
		require.Len(t, s.Categories, 1)
		assert.Zero(t, s.Categories[0].Share)
		require.Len(t, s.Brands, 1)
		assert.Zero(t, s.Brands[0].Share)
	})

	t.Run("TotalsAndAverages", func(t *testing.T) {
		s := catalog.Summarize(testProducts(), nil, nil, now)

		assert.Equal(t, 4, s.TotalProducts)
		assert.InDelta(t, 72.5, s.TotalValue, 1e-9)
		assert.Equal(t, 26, s.TotalStock)
		assert.InDelta(t, 18.125, s.AveragePrice, 1e-9)
		assert.InDelta(t, 6.5, s.AverageStock, 1e-9)
	})

	t.Run("PerBrandSortedByCountDesc", func(t *testing.T) {
		ps := []domain.Product{
			{Brand: "B1", Price: 10, Stock: 1},
			{Brand: "B2", Price: 20, Stock: 2},
			{Brand: "B2", Price: 30, Stock: 3},
		}
		brs := []domain.Brand{
			{ID: "B1", Name: "Eti"},
			{ID: "B2", Name: "Ülker"},
		}

		s := catalog.Summarize(ps, nil, brs, now)
		require.Len(t, s.Brands, 2)

		assert.Equal(t, "Ülker", s.Brands[0].Name)
		assert.Equal(t, 2, s.Brands[0].ProductCount)
		assert.InDelta(t, 50, s.Brands[0].TotalValue, 1e-9)
		assert.Equal(t, 5, s.Brands[0].TotalStock)
		assert.InDelta(t, 2.0/3.0, s.Brands[0].Share, 1e-9)

		assert.Equal(t, "Eti", s.Brands[1].Name)
		assert.Equal(t, 1, s.Brands[1].ProductCount)
	})

	t.Run("DanglingReferenceCountsNowhere", func(t *testing.T) {
		ps := []domain.Product{{Brand: "gone", Price: 5}}
		brs := []domain.Brand{{ID: "B1", Name: "Eti"}}

		s := catalog.Summarize(ps, nil, brs, now)
		require.Len(t, s.Brands, 1)
		assert.Zero(t, s.Brands[0].ProductCount)
		assert.Equal(t, 1, s.TotalProducts)
	})

	t.Run("RecentWindow", func(t *testing.T) {
		ps := []domain.Product{
			{ID: "fresh", CreatedAt: now.Add(-6 * 24 * time.Hour)},
			{ID: "stale", CreatedAt: now.Add(-8 * 24 * time.Hour)},
			{ID: "edge", CreatedAt: now.Add(-7 * 24 * time.Hour)},
		}
		s := catalog.Summarize(ps, nil, nil, now)
		assert.Equal(t, 1, s.RecentCount)
	})
}
