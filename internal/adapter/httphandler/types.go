package httphandler

import (
	"time"

	"github.com/stokpilot/stokpilot/internal/core/domain"
)

type (
	Product struct {
		ID        string    `json:"id"`
		Title     string    `json:"title"`
		Price     float64   `json:"price"`
		Stock     int       `json:"stock"`
		Category  string    `json:"category"`
		Brand     string    `json:"brand"`
		UserID    string    `json:"userId"`
		CreatedAt time.Time `json:"createdAt"`
		UpdatedAt time.Time `json:"updatedAt"`
	}

	Taxonomy struct {
		ID        string    `json:"id"`
		Name      string    `json:"name"`
		UserID    string    `json:"userId"`
		CreatedAt time.Time `json:"createdAt"`
	}

	User struct {
		ID        string    `json:"id"`
		Email     string    `json:"email"`
		Name      string    `json:"name"`
		CreatedAt time.Time `json:"createdAt"`
	}

	AuthResponse struct {
		Token string `json:"token"`
		User  User   `json:"user"`
	}

	RegisterRequest struct {
		Email    string `json:"email"`
		Name     string `json:"name"`
		Password string `json:"password"`
	}

	LoginRequest struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	ProductRequest struct {
		Title    string  `json:"title"`
		Price    float64 `json:"price"`
		Stock    int     `json:"stock"`
		Category string  `json:"category"`
		Brand    string  `json:"brand"`
	}

	NameRequest struct {
		Name string `json:"name"`
	}
)

func toProduct(p domain.Product) Product {
	return Product{
		ID:        p.ID,
		Title:     p.Title,
		Price:     p.Price,
		Stock:     p.Stock,
		Category:  p.Category,
		Brand:     p.Brand,
		UserID:    p.UserID,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func toProducts(ps []domain.Product) []Product {
	out := make([]Product, len(ps))
	for i, p := range ps {
		out[i] = toProduct(p)
	}
	return out
}

func toTaxonomy(id, name, userID string, createdAt time.Time) Taxonomy {
	return Taxonomy{ID: id, Name: name, UserID: userID, CreatedAt: createdAt}
}

func toUser(u domain.User) User {
	return User{ID: u.ID, Email: u.Email, Name: u.Name, CreatedAt: u.CreatedAt}
}

func (r ProductRequest) toDraft() domain.ProductDraft {
	return domain.ProductDraft{
		Title:    r.Title,
		Price:    r.Price,
		Stock:    r.Stock,
		Category: r.Category,
		Brand:    r.Brand,
	}
}
