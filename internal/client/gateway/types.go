package gateway

import (
	"time"

	"github.com/stokpilot/stokpilot/internal/core/domain"
)

type (
	productWire struct {
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

	taxonomyWire struct {
		ID        string    `json:"id"`
		Name      string    `json:"name"`
		UserID    string    `json:"userId"`
		CreatedAt time.Time `json:"createdAt"`
	}

	userWire struct {
		ID        string    `json:"id"`
		Email     string    `json:"email"`
		Name      string    `json:"name"`
		CreatedAt time.Time `json:"createdAt"`
	}

	authResponse struct {
		Token string   `json:"token"`
		User  userWire `json:"user"`
	}

	credentialsPayload struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	registerPayload struct {
		Email    string `json:"email"`
		Name     string `json:"name"`
		Password string `json:"password"`
	}

	productPayload struct {
		Title    string  `json:"title"`
		Price    float64 `json:"price"`
		Stock    int     `json:"stock"`
		Category string  `json:"category,omitempty"`
		Brand    string  `json:"brand,omitempty"`
	}

	namePayload struct {
		Name string `json:"name"`
	}
)

// taxonomy is the shared shape of categories and brands.
type taxonomy struct {
	ID        string
	Name      string
	UserID    string
	CreatedAt time.Time
}

func (w productWire) toDomain() domain.Product {
	return domain.Product{
		ID:        w.ID,
		Title:     w.Title,
		Price:     w.Price,
		Stock:     w.Stock,
		Category:  w.Category,
		Brand:     w.Brand,
		UserID:    w.UserID,
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
}

func (w taxonomyWire) toDomain() taxonomy {
	return taxonomy{
		ID:        w.ID,
		Name:      w.Name,
		UserID:    w.UserID,
		CreatedAt: w.CreatedAt,
	}
}

func (w userWire) toDomain() domain.User {
	return domain.User{
		ID:        w.ID,
		Email:     w.Email,
		Name:      w.Name,
		CreatedAt: w.CreatedAt,
	}
}

func draftPayload(d domain.ProductDraft) productPayload {
	return productPayload{
		Title:    d.Title,
		Price:    d.Price,
		Stock:    d.Stock,
		Category: d.Category,
		Brand:    d.Brand,
	}
}
