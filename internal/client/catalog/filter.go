package catalog

import (
	"math"
	"strings"

	"github.com/stokpilot/stokpilot/internal/core/domain"
)

// lowStockThreshold splits in-stock from low-stock: a product with
// exactly 10 units is low, 11 is the first in-stock value.
const lowStockThreshold = 10

type StockBucket string

const (
	StockAll StockBucket = "all"
	StockIn  StockBucket = "inStock"
	StockLow StockBucket = "lowStock"
	StockOut StockBucket = "outOfStock"
)

// Criteria is the combined filter state applied conjunctively.
// Empty Category/Brand and Query mean "any". Nil price bounds leave
// that side unbounded.
type Criteria struct {
	Category string
	Brand    string
	Query    string
	PriceMin *float64
	PriceMax *float64
	Stock    StockBucket
}

// Filter returns the subset of ps matching every criteria axis.
// Pure and order-preserving: survivors keep their relative input order.
func Filter(ps []domain.Product, c Criteria) []domain.Product {
	out := make([]domain.Product, 0, len(ps))
	for _, p := range ps {
		if c.matches(p) {
			out = append(out, p)
		}
	}
	return out
}

func (c Criteria) matches(p domain.Product) bool {
	return c.matchesCategory(p) &&
		c.matchesBrand(p) &&
		c.matchesQuery(p) &&
		c.matchesPrice(p) &&
		c.matchesStock(p)
}

func (c Criteria) matchesCategory(p domain.Product) bool {
	return c.Category == "" || p.Category == c.Category
}

func (c Criteria) matchesBrand(p domain.Product) bool {
	return c.Brand == "" || p.Brand == c.Brand
}

func (c Criteria) matchesQuery(p domain.Product) bool {
	if c.Query == "" {
		return true
	}
	return strings.Contains(
		strings.ToLower(p.Title), strings.ToLower(c.Query),
	)
}

func (c Criteria) matchesPrice(p domain.Product) bool {
	if min, ok := bound(c.PriceMin); ok && p.Price < min {
		return false
	}
	if max, ok := bound(c.PriceMax); ok && p.Price > max {
		return false
	}
	return true
}

// bound reports whether v constrains anything. NaN never constrains.
func bound(v *float64) (float64, bool) {
	if v == nil || math.IsNaN(*v) {
		return 0, false
	}
	return *v, true
}

func (c Criteria) matchesStock(p domain.Product) bool {
	if c.Stock == StockAll || c.Stock == "" {
		return true
	}
	return BucketOf(p.Stock) == c.Stock
}

// BucketOf classifies a stock level into its display bucket.
func BucketOf(stock int) StockBucket {
	switch {
	case stock == 0:
		return StockOut
	case stock <= lowStockThreshold:
		return StockLow
	default:
		return StockIn
	}
}
