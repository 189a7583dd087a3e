package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/stokpilot/stokpilot/internal/core/domain"
	"github.com/stokpilot/stokpilot/internal/core/port"
)

var _ port.ProductsRepository = (*ProductsRepository)(nil)

type ProductsRepository struct {
	sqldb sqldb
}

func NewProductsRepository(sqldb sqldb) ProductsRepository {
	return ProductsRepository{sqldb}
}

// ProductsByUser lists the user's products newest first, matching the
// order the REST surface promises.
func (r ProductsRepository) ProductsByUser(
	ctx context.Context, userID string,
) ([]domain.Product, error) {
	const op = "ProductsRepository.ProductsByUser"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	query := `
		SELECT id, title, price, stock, category, brand,
			user_id, created_at, updated_at
		FROM products
		WHERE user_id = $1
		ORDER BY created_at DESC;
	`

	rows, err := r.sqldb.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var ps []domain.Product
	for rows.Next() {
		var p domain.Product
		err := rows.Scan(
			&p.ID, &p.Title, &p.Price, &p.Stock, &p.Category, &p.Brand,
			&p.UserID, &p.CreatedAt, &p.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		ps = append(ps, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return ps, nil
}

func (r ProductsRepository) ProductByID(
	ctx context.Context, userID, id string,
) (domain.Product, error) {
	const op = "ProductsRepository.ProductByID"

	if err := ctx.Err(); err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}

	query := `
		SELECT id, title, price, stock, category, brand,
			user_id, created_at, updated_at
		FROM products
		WHERE id = $1 AND user_id = $2;
	`

	var p domain.Product
	err := r.sqldb.QueryRowContext(ctx, query, id, userID).Scan(
		&p.ID, &p.Title, &p.Price, &p.Stock, &p.Category, &p.Brand,
		&p.UserID, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Product{}, fmt.Errorf("%s: %w", op, port.ErrNotFound)
		}
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}
	return p, nil
}

func (r ProductsRepository) SaveProduct(
	ctx context.Context, p domain.Product,
) error {
	const op = "ProductsRepository.SaveProduct"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	query := `
		INSERT INTO products (
			id, title, price, stock, category, brand,
			user_id, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.sqldb.ExecContext(ctx, query,
		p.ID, p.Title, p.Price, p.Stock, p.Category, p.Brand,
		p.UserID, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (r ProductsRepository) UpdateProduct(
	ctx context.Context, p domain.Product,
) error {
	const op = "ProductsRepository.UpdateProduct"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	query := `
		UPDATE products
		SET title = $1, price = $2, stock = $3,
			category = $4, brand = $5, updated_at = $6
		WHERE id = $7 AND user_id = $8;
	`
	res, err := r.sqldb.ExecContext(ctx, query,
		p.Title, p.Price, p.Stock, p.Category, p.Brand, p.UpdatedAt,
		p.ID, p.UserID,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return affectedOrNotFound(res, op)
}

func (r ProductsRepository) DeleteProduct(
	ctx context.Context, userID, id string,
) error {
	const op = "ProductsRepository.DeleteProduct"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	query := `DELETE FROM products WHERE id = $1 AND user_id = $2;`
	res, err := r.sqldb.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return affectedOrNotFound(res, op)
}

func affectedOrNotFound(res sql.Result, op string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", op, port.ErrNotFound)
	}
	return nil
}
