package catalog

import (
	"cmp"
	"slices"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/stokpilot/stokpilot/internal/core/domain"
)

type SortField string

const (
	SortNone  SortField = ""
	SortPrice SortField = "price"
	SortStock SortField = "stock"
	SortTitle SortField = "title"
	SortDate  SortField = "date"
)

type SortDirection string

const (
	Asc  SortDirection = "asc"
	Desc SortDirection = "desc"
)

type SortSpec struct {
	Field     SortField
	Direction SortDirection
}

// Titles compare with the display locale's collation, not byte order.
var (
	collatorMu sync.Mutex
	collator   = collate.New(language.Turkish)
)

func compareTitles(a, b string) int {
	collatorMu.Lock()
	defer collatorMu.Unlock()
	return collator.CompareString(a, b)
}

// Sort returns a new slice ordered by spec. The sort is stable for ties
// and never mutates ps. SortNone keeps the input order untouched.
func Sort(ps []domain.Product, spec SortSpec) []domain.Product {
	out := slices.Clone(ps)
	if spec.Field == SortNone {
		return out
	}

	slices.SortStableFunc(out, func(a, b domain.Product) int {
		c := spec.compare(a, b)
		if spec.Direction == Desc {
			c = -c
		}
		return c
	})
	return out
}

func (s SortSpec) compare(a, b domain.Product) int {
	switch s.Field {
	case SortPrice:
		return cmp.Compare(a.Price, b.Price)
	case SortStock:
		return cmp.Compare(a.Stock, b.Stock)
	case SortTitle:
		return compareTitles(a.Title, b.Title)
	case SortDate:
		return a.CreatedAt.Compare(b.CreatedAt)
	default:
		return 0
	}
}
