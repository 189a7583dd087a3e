package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/stokpilot/stokpilot/internal/core/domain"
	"github.com/stokpilot/stokpilot/internal/core/port"
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
)

// Service applies the domain rules over the repositories: every read
// and mutation is scoped to the owning user.
type Service struct {
	users      port.UsersRepository
	products   port.ProductsRepository
	categories port.CategoriesRepository
	brands     port.BrandsRepository
	tokens     port.TokenIssuer
	passwords  port.PasswordHasher
	now        func() time.Time
}

func New(
	users port.UsersRepository,
	products port.ProductsRepository,
	categories port.CategoriesRepository,
	brands port.BrandsRepository,
	tokens port.TokenIssuer,
	passwords port.PasswordHasher,
) Service {
	return Service{
		users:      users,
		products:   products,
		categories: categories,
		brands:     brands,
		tokens:     tokens,
		passwords:  passwords,
		now:        time.Now,
	}
}

func (s Service) Register(
	ctx context.Context, email, name, password string,
) (domain.User, string, error) {
	const op = "Service.Register"

	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return domain.User{}, "", fmt.Errorf("%s: %w", op, ErrInvalidInput)
	}

	hash, err := s.passwords.Hash(password)
	if err != nil {
		return domain.User{}, "", fmt.Errorf("%s: %w", op, err)
	}

	u := domain.User{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         strings.TrimSpace(name),
		PasswordHash: hash,
		CreatedAt:    s.now().UTC(),
	}

	if err := s.users.SaveUser(ctx, u); err != nil {
		if errors.Is(err, port.ErrConflict) {
			return domain.User{}, "", fmt.Errorf("%s: %w", op, ErrEmailTaken)
		}
		return domain.User{}, "", fmt.Errorf("%s: %w", op, err)
	}

	token, err := s.tokens.Issue(u.ID)
	if err != nil {
		return domain.User{}, "", fmt.Errorf("%s: %w", op, err)
	}
	return u, token, nil
}

func (s Service) Login(
	ctx context.Context, email, password string,
) (domain.User, string, error) {
	const op = "Service.Login"

	email = strings.ToLower(strings.TrimSpace(email))
	u, err := s.users.UserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, port.ErrNotFound) {
			return domain.User{}, "", fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
		}
		return domain.User{}, "", fmt.Errorf("%s: %w", op, err)
	}

	if err := s.passwords.Compare(u.PasswordHash, password); err != nil {
		return domain.User{}, "", fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	token, err := s.tokens.Issue(u.ID)
	if err != nil {
		return domain.User{}, "", fmt.Errorf("%s: %w", op, err)
	}
	return u, token, nil
}

// VerifyToken resolves a bearer token to the owning user's ID.
func (s Service) VerifyToken(token string) (string, error) {
	return s.tokens.Verify(token)
}

// ListProducts returns the caller's products, newest first.
func (s Service) ListProducts(
	ctx context.Context, userID string,
) ([]domain.Product, error) {
	const op = "Service.ListProducts"

	ps, err := s.products.ProductsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return ps, nil
}

func (s Service) CreateProduct(
	ctx context.Context, userID string, d domain.ProductDraft,
) (domain.Product, error) {
	const op = "Service.CreateProduct"

	d = normalizeDraft(d)
	if err := validateDraft(d); err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}

	now := s.now().UTC()
	p := domain.Product{
		ID:        uuid.NewString(),
		Title:     d.Title,
		Price:     d.Price,
		Stock:     d.Stock,
		Category:  d.Category,
		Brand:     d.Brand,
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.products.SaveProduct(ctx, p); err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}
	return p, nil
}

// UpdateProduct mutates the record in place. Only the owner sees it:
// a foreign or absent id surfaces as not found.
func (s Service) UpdateProduct(
	ctx context.Context, userID, id string, d domain.ProductDraft,
) (domain.Product, error) {
	const op = "Service.UpdateProduct"

	d = normalizeDraft(d)
	if err := validateDraft(d); err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}

	p, err := s.products.ProductByID(ctx, userID, id)
	if err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}

	p.Title = d.Title
	p.Price = d.Price
	p.Stock = d.Stock
	p.Category = d.Category
	p.Brand = d.Brand
	p.UpdatedAt = s.now().UTC()

	if err := s.products.UpdateProduct(ctx, p); err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}
	return p, nil
}

func (s Service) DeleteProduct(ctx context.Context, userID, id string) error {
	const op = "Service.DeleteProduct"

	if err := s.products.DeleteProduct(ctx, userID, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s Service) ListCategories(
	ctx context.Context, userID string,
) ([]domain.Category, error) {
	const op = "Service.ListCategories"

	cs, err := s.categories.CategoriesByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return cs, nil
}

func (s Service) CreateCategory(
	ctx context.Context, userID, name string,
) (domain.Category, error) {
	const op = "Service.CreateCategory"

	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Category{}, fmt.Errorf("%s: %w", op, ErrInvalidInput)
	}

	c := domain.Category{
		ID:        uuid.NewString(),
		Name:      name,
		UserID:    userID,
		CreatedAt: s.now().UTC(),
	}
	if err := s.categories.SaveCategory(ctx, c); err != nil {
		return domain.Category{}, fmt.Errorf("%s: %w", op, err)
	}
	return c, nil
}

// DeleteCategory removes the entry even when products still reference
// it; those references dangle and display falls back to a not-found
// label. Inherited from the source and kept on purpose.
func (s Service) DeleteCategory(ctx context.Context, userID, id string) error {
	const op = "Service.DeleteCategory"

	if err := s.categories.DeleteCategory(ctx, userID, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s Service) ListBrands(
	ctx context.Context, userID string,
) ([]domain.Brand, error) {
	const op = "Service.ListBrands"

	bs, err := s.brands.BrandsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return bs, nil
}

func (s Service) CreateBrand(
	ctx context.Context, userID, name string,
) (domain.Brand, error) {
	const op = "Service.CreateBrand"

	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Brand{}, fmt.Errorf("%s: %w", op, ErrInvalidInput)
	}

	b := domain.Brand{
		ID:        uuid.NewString(),
		Name:      name,
		UserID:    userID,
		CreatedAt: s.now().UTC(),
	}
	if err := s.brands.SaveBrand(ctx, b); err != nil {
		return domain.Brand{}, fmt.Errorf("%s: %w", op, err)
	}
	return b, nil
}

func (s Service) DeleteBrand(ctx context.Context, userID, id string) error {
	const op = "Service.DeleteBrand"

	if err := s.brands.DeleteBrand(ctx, userID, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func normalizeDraft(d domain.ProductDraft) domain.ProductDraft {
	d.Title = strings.TrimSpace(d.Title)
	if d.Category == "" {
		d.Category = domain.DefaultLabel
	}
	if d.Brand == "" {
		d.Brand = domain.DefaultLabel
	}
	return d
}

func validateDraft(d domain.ProductDraft) error {
	if d.Title == "" || d.Price < 0 || d.Stock < 0 {
		return ErrInvalidInput
	}
	return nil
}
