package repository

import (
	"context"

	"github.com/deppfellow/bakery-api/internal/database"
	"github.com/deppfellow/bakery-api/internal/model"
	"github.com/deppfellow/bakery-api/internal/sqlerr"
	"github.com/pkg/errors"
)

type BakeryRepository struct {
	db database.DBTX
}

func NewBakeryRepository(db database.DBTX) *BakeryRepository {
	return &BakeryRepository{db: db}
}

// ListBakeries returns every bakery ordered by id.
func (r *BakeryRepository) ListBakeries(ctx context.Context) ([]model.Bakery, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, created_at, updated_at
		FROM bakeries
		ORDER BY id ASC`)
	if err != nil {
		return nil, errors.Wrap(sqlerr.WithTable(bakeriesTable, err), "failed to list bakeries")
	}

	bakeries, err := collect(rows, scanBakery)
	if err != nil {
		return nil, errors.Wrap(sqlerr.WithTable(bakeriesTable, err), "failed to scan bakeries")
	}
	return bakeries, nil
}

func (r *BakeryRepository) GetBakeryByID(ctx context.Context, id int64) (*model.Bakery, error) {
	bakery, err := scanBakery(r.db.QueryRow(ctx, `
		SELECT id, name, created_at, updated_at
		FROM bakeries
		WHERE id = $1`, id))
	if err != nil {
		return nil, errors.Wrapf(sqlerr.WithTable(bakeriesTable, err), "failed to get bakery %d", id)
	}
	return &bakery, nil
}

func (r *BakeryRepository) CreateBakery(ctx context.Context, name string) (*model.Bakery, error) {
	bakery, err := scanBakery(r.db.QueryRow(ctx, `
		INSERT INTO bakeries (name)
		VALUES ($1)
		RETURNING id, name, created_at, updated_at`, name))
	if err != nil {
		return nil, errors.Wrap(sqlerr.WithTable(bakeriesTable, err), "failed to create bakery")
	}
	return &bakery, nil
}

// UpdateBakeryName renames a bakery and bumps updated_at.
// A missing id surfaces as a not-found error.
func (r *BakeryRepository) UpdateBakeryName(ctx context.Context, id int64, name string) (*model.Bakery, error) {
	bakery, err := scanBakery(r.db.QueryRow(ctx, `
		UPDATE bakeries
		SET name = $2, updated_at = now()
		WHERE id = $1
		RETURNING id, name, created_at, updated_at`, id, name))
	if err != nil {
		return nil, errors.Wrapf(sqlerr.WithTable(bakeriesTable, err), "failed to update bakery %d", id)
	}
	return &bakery, nil
}
