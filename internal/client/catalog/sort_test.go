package catalog_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stokpilot/stokpilot/internal/client/catalog"
	"github.com/stokpilot/stokpilot/internal/core/domain"
)

func TestSort(t *testing.T) {
	t.Run("StableOnTies", func(t *testing.T) {
		ps := []domain.Product{
			{Title: "B", Price: 5},
			{Title: "A", Price: 5},
		}
		got := catalog.Sort(ps, catalog.SortSpec{
			Field: catalog.SortPrice, Direction: catalog.Asc,
		})
		require.Len(t, got, 2)
		assert.Equal(t, "B", got[0].Title)
		assert.Equal(t, "A", got[1].Title)
	})

	t.Run("PriceDesc", func(t *testing.T) {
		got := catalog.Sort(testProducts(), catalog.SortSpec{
			Field: catalog.SortPrice, Direction: catalog.Desc,
		})
		prices := []float64{35, 20, 10, 7.5}
		for i, want := range prices {
			assert.Equal(t, want, got[i].Price)
		}
	})

	t.Run("StockAsc", func(t *testing.T) {
		got := catalog.Sort(testProducts(), catalog.SortSpec{
			Field: catalog.SortStock, Direction: catalog.Asc,
		})
		stocks := []int{0, 5, 10, 11}
		for i, want := range stocks {
			assert.Equal(t, want, got[i].Stock)
		}
	})

	t.Run("TitleUsesTurkishCollation", func(t *testing.T) {
		ps := []domain.Product{
			{Title: "dut"},
			{Title: "çilek"},
			{Title: "ceviz"},
		}
		got := catalog.Sort(ps, catalog.SortSpec{
			Field: catalog.SortTitle, Direction: catalog.Asc,
		})
		// ç sorts between c and d in the Turkish alphabet.
		assert.Equal(t, "ceviz", got[0].Title)
		assert.Equal(t, "çilek", got[1].Title)
		assert.Equal(t, "dut", got[2].Title)
	})

	t.Run("DateDesc", func(t *testing.T) {
		base := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
		ps := []domain.Product{
			{ID: "old", CreatedAt: base},
			{ID: "new", CreatedAt: base.Add(time.Hour)},
		}
		got := catalog.Sort(ps, catalog.SortSpec{
			Field: catalog.SortDate, Direction: catalog.Desc,
		})
		assert.Equal(t, "new", got[0].ID)
		assert.Equal(t, "old", got[1].ID)
	})

	t.Run("NoFieldKeepsOrder", func(t *testing.T) {
		ps := testProducts()
		got := catalog.Sort(ps, catalog.SortSpec{})
		assert.Equal(t, ps, got)
	})

	t.Run("InputNotMutated", func(t *testing.T) {
		ps := testProducts()
		catalog.Sort(ps, catalog.SortSpec{
			Field: catalog.SortPrice, Direction: catalog.Desc,
		})
		assert.Equal(t, testProducts(), ps)
	})
}
