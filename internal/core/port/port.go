package port

import (
	"context"
	"errors"

	"github.com/stokpilot/stokpilot/internal/core/domain"
)

var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("already exists")
)

type UsersRepository interface {
	SaveUser(context.Context, domain.User) error
	UserByEmail(context.Context, string) (domain.User, error)
}

type ProductsRepository interface {
	ProductsByUser(ctx context.Context, userID string) ([]domain.Product, error)
	ProductByID(ctx context.Context, userID, id string) (domain.Product, error)
	SaveProduct(context.Context, domain.Product) error
	UpdateProduct(context.Context, domain.Product) error
	DeleteProduct(ctx context.Context, userID, id string) error
}

type CategoriesRepository interface {
	CategoriesByUser(ctx context.Context, userID string) ([]domain.Category, error)
	SaveCategory(context.Context, domain.Category) error
	DeleteCategory(ctx context.Context, userID, id string) error
}

type BrandsRepository interface {
	BrandsByUser(ctx context.Context, userID string) ([]domain.Brand, error)
	SaveBrand(context.Context, domain.Brand) error
	DeleteBrand(ctx context.Context, userID, id string) error
}

type TokenIssuer interface {
	Issue(userID string) (string, error)
	Verify(token string) (userID string, err error)
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}
