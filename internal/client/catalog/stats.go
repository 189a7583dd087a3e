package catalog

import (
	"slices"
	"time"

	"github.com/stokpilot/stokpilot/internal/core/domain"
)

const recentWindow = 7 * 24 * time.Hour

type (
	// TaxonomyStat aggregates the products referencing one category or
	// brand entry.
	TaxonomyStat struct {
		ID           string
		Name         string
		ProductCount int
		TotalValue   float64
		TotalStock   int
		Share        float64
	}

	Stats struct {
		TotalProducts   int
		TotalCategories int
		TotalBrands     int
		TotalValue      float64
		TotalStock      int
		AveragePrice    float64
		AverageStock    float64
		RecentCount     int
		Categories      []TaxonomyStat
		Brands          []TaxonomyStat
	}
)

// Summarize derives the statistics view from the full, unfiltered
// collections. The trailing 7-day window is measured from now, passed
// in by the caller so the live view stays testable.
func Summarize(
	ps []domain.Product,
	cats []domain.Category,
	brs []domain.Brand,
	now time.Time,
) Stats {
	s := Stats{
		TotalProducts:   len(ps),
		TotalCategories: len(cats),
		TotalBrands:     len(brs),
	}

	weekAgo := now.Add(-recentWindow)
	for _, p := range ps {
		s.TotalValue += p.Price
		s.TotalStock += p.Stock
		if p.CreatedAt.After(weekAgo) {
			s.RecentCount++
		}
	}

	if len(ps) > 0 {
		s.AveragePrice = s.TotalValue / float64(len(ps))
		s.AverageStock = float64(s.TotalStock) / float64(len(ps))
	}

	categoryOf := func(p domain.Product) string { return p.Category }
	brandOf := func(p domain.Product) string { return p.Brand }
	for _, c := range cats {
		s.Categories = append(s.Categories, taxonomyStat(ps, c.ID, c.Name, categoryOf))
	}
	for _, b := range brs {
		s.Brands = append(s.Brands, taxonomyStat(ps, b.ID, b.Name, brandOf))
	}
	sortByCount(s.Categories)
	sortByCount(s.Brands)

	return s
}

func taxonomyStat(
	ps []domain.Product, id, name string, keyOf func(domain.Product) string,
) TaxonomyStat {
	ts := TaxonomyStat{ID: id, Name: name}
	for _, p := range ps {
		if keyOf(p) != id {
			continue
		}
		ts.ProductCount++
		ts.TotalValue += p.Price
		ts.TotalStock += p.Stock
	}
	// 0/0 renders as 0%, never NaN.
	if len(ps) > 0 {
		ts.Share = float64(ts.ProductCount) / float64(len(ps))
	}
	return ts
}

func sortByCount(stats []TaxonomyStat) {
	slices.SortStableFunc(stats, func(a, b TaxonomyStat) int {
		return b.ProductCount - a.ProductCount
	})
}
