package domain

import "time"

// DefaultLabel is assigned to products created without an explicit
// category or brand.
const DefaultLabel = "Genel"

type (
	Product struct {
		ID        string
		Title     string
		Price     float64
		Stock     int
		Category  string
		Brand     string
		UserID    string
		CreatedAt time.Time
		UpdatedAt time.Time
	}

	Category struct {
		ID        string
		Name      string
		UserID    string
		CreatedAt time.Time
	}

	Brand struct {
		ID        string
		Name      string
		UserID    string
		CreatedAt time.Time
	}

	User struct {
		ID           string
		Email        string
		Name         string
		PasswordHash string
		CreatedAt    time.Time
	}
)

// Edited reports whether the product was changed after creation.
// Equal timestamps mean the record still shows its "created" labeling.
func (p Product) Edited() bool {
	return p.UpdatedAt.After(p.CreatedAt)
}

type ProductDraft struct {
	Title    string
	Price    float64
	Stock    int
	Category string
	Brand    string
}
