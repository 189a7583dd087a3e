package storage

import (
	"context"
	"fmt"

	"github.com/stokpilot/stokpilot/internal/core/domain"
	"github.com/stokpilot/stokpilot/internal/core/port"
)

// Categories and brands share one schema shape, so both repositories
// lean on the same table-parameterized helpers.

var (
	_ port.CategoriesRepository = (*CategoriesRepository)(nil)
	_ port.BrandsRepository     = (*BrandsRepository)(nil)
)

type CategoriesRepository struct {
	sqldb sqldb
}

func NewCategoriesRepository(sqldb sqldb) CategoriesRepository {
	return CategoriesRepository{sqldb}
}

func (r CategoriesRepository) CategoriesByUser(
	ctx context.Context, userID string,
) ([]domain.Category, error) {
	const op = "CategoriesRepository.CategoriesByUser"

	rows, err := taxonomyByUser(ctx, r.sqldb, "categories", userID, op)
	if err != nil {
		return nil, err
	}

	cs := make([]domain.Category, len(rows))
	for i, row := range rows {
		cs[i] = domain.Category(row)
	}
	return cs, nil
}

func (r CategoriesRepository) SaveCategory(
	ctx context.Context, c domain.Category,
) error {
	const op = "CategoriesRepository.SaveCategory"

	return saveTaxonomy(ctx, r.sqldb, "categories", c, op)
}

func (r CategoriesRepository) DeleteCategory(
	ctx context.Context, userID, id string,
) error {
	const op = "CategoriesRepository.DeleteCategory"

	return deleteTaxonomy(ctx, r.sqldb, "categories", userID, id, op)
}

type BrandsRepository struct {
	sqldb sqldb
}

func NewBrandsRepository(sqldb sqldb) BrandsRepository {
	return BrandsRepository{sqldb}
}

func (r BrandsRepository) BrandsByUser(
	ctx context.Context, userID string,
) ([]domain.Brand, error) {
	const op = "BrandsRepository.BrandsByUser"

	rows, err := taxonomyByUser(ctx, r.sqldb, "brands", userID, op)
	if err != nil {
		return nil, err
	}

	bs := make([]domain.Brand, len(rows))
	for i, row := range rows {
		bs[i] = domain.Brand(row)
	}
	return bs, nil
}

func (r BrandsRepository) SaveBrand(
	ctx context.Context, b domain.Brand,
) error {
	const op = "BrandsRepository.SaveBrand"

	return saveTaxonomy(ctx, r.sqldb, "brands", domain.Category(b), op)
}

func (r BrandsRepository) DeleteBrand(
	ctx context.Context, userID, id string,
) error {
	const op = "BrandsRepository.DeleteBrand"

	return deleteTaxonomy(ctx, r.sqldb, "brands", userID, id, op)
}

func taxonomyByUser(
	ctx context.Context, db sqldb, table, userID, op string,
) ([]domain.Category, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	query := fmt.Sprintf(`
		SELECT id, name, user_id, created_at
		FROM %s
		WHERE user_id = $1
		ORDER BY created_at ASC;
	`, table)

	rows, err := db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var out []domain.Category
	for rows.Next() {
		var row domain.Category
		err := rows.Scan(&row.ID, &row.Name, &row.UserID, &row.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return out, nil
}

func saveTaxonomy(
	ctx context.Context, db sqldb, table string, row domain.Category, op string,
) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (id, name, user_id, created_at)
		VALUES ($1, $2, $3, $4);
	`, table)

	_, err := db.ExecContext(ctx, query, row.ID, row.Name, row.UserID, row.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%s: %w", op, port.ErrConflict)
		}
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func deleteTaxonomy(
	ctx context.Context, db sqldb, table, userID, id, op string,
) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	query := fmt.Sprintf(
		`DELETE FROM %s WHERE id = $1 AND user_id = $2;`, table,
	)
	res, err := db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return affectedOrNotFound(res, op)
}
