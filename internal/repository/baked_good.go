package repository

import (
	"context"

	"github.com/deppfellow/bakery-api/internal/database"
	"github.com/deppfellow/bakery-api/internal/model"
	"github.com/deppfellow/bakery-api/internal/sqlerr"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
)

type BakedGoodRepository struct {
	db database.DBTX
}

func NewBakedGoodRepository(db database.DBTX) *BakedGoodRepository {
	return &BakedGoodRepository{db: db}
}

func (r *BakedGoodRepository) list(ctx context.Context, query string, args ...any) ([]model.BakedGood, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, sqlerr.WithTable(bakedGoodsTable, err)
	}

	goods, err := collect(rows, scanBakedGood)
	if err != nil {
		return nil, sqlerr.WithTable(bakedGoodsTable, err)
	}
	return goods, nil
}

func (r *BakedGoodRepository) ListBakedGoods(ctx context.Context) ([]model.BakedGood, error) {
	goods, err := r.list(ctx, `SELECT `+bakedGoodColumns+` FROM baked_goods ORDER BY id ASC`)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list baked goods")
	}
	return goods, nil
}

func (r *BakedGoodRepository) GetBakedGoodByID(ctx context.Context, id int64) (*model.BakedGood, error) {
	good, err := scanBakedGood(r.db.QueryRow(ctx,
		`SELECT `+bakedGoodColumns+` FROM baked_goods WHERE id = $1`, id))
	if err != nil {
		return nil, errors.Wrapf(sqlerr.WithTable(bakedGoodsTable, err), "failed to get baked good %d", id)
	}
	return &good, nil
}

// CreateBakedGood inserts an unowned baked good.
func (r *BakedGoodRepository) CreateBakedGood(ctx context.Context, name string, price float64) (*model.BakedGood, error) {
	good, err := scanBakedGood(r.db.QueryRow(ctx, `
		INSERT INTO baked_goods (name, price)
		VALUES ($1, $2)
		RETURNING `+bakedGoodColumns, name, price))
	if err != nil {
		return nil, errors.Wrap(sqlerr.WithTable(bakedGoodsTable, err), "failed to create baked good")
	}
	return &good, nil
}

// DeleteBakedGood removes a baked good. Deleting an id that does not exist
// reports pgx.ErrNoRows so callers see a not-found error.
func (r *BakedGoodRepository) DeleteBakedGood(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM baked_goods WHERE id = $1`, id)
	if err != nil {
		return errors.Wrapf(sqlerr.WithTable(bakedGoodsTable, err), "failed to delete baked good %d", id)
	}

	if tag.RowsAffected() == 0 {
		return errors.Wrapf(sqlerr.WithTable(bakedGoodsTable, pgx.ErrNoRows), "failed to delete baked good %d", id)
	}
	return nil
}

// ListBakedGoodsByPriceDesc orders by price, highest first. Ties keep id order.
func (r *BakedGoodRepository) ListBakedGoodsByPriceDesc(ctx context.Context) ([]model.BakedGood, error) {
	goods, err := r.list(ctx, `SELECT `+bakedGoodColumns+` FROM baked_goods ORDER BY price DESC, id ASC`)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list baked goods by price")
	}
	return goods, nil
}

// GetMostExpensiveBakedGood returns nil, nil when there are no baked goods.
func (r *BakedGoodRepository) GetMostExpensiveBakedGood(ctx context.Context) (*model.BakedGood, error) {
	good, err := scanBakedGood(r.db.QueryRow(ctx,
		`SELECT `+bakedGoodColumns+` FROM baked_goods ORDER BY price DESC, id ASC LIMIT 1`))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(sqlerr.WithTable(bakedGoodsTable, err), "failed to get most expensive baked good")
	}
	return &good, nil
}

func (r *BakedGoodRepository) ListBakedGoodsForBakery(ctx context.Context, bakeryID int64) ([]model.BakedGood, error) {
	goods, err := r.list(ctx,
		`SELECT `+bakedGoodColumns+` FROM baked_goods WHERE bakery_id = $1 ORDER BY id ASC`, bakeryID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list baked goods for bakery %d", bakeryID)
	}
	return goods, nil
}
