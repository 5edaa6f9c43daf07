// Package repository handles all interactions with the database.
//
// It contains raw SQL queries and methods to fetch, persist,
// or update data, abstracting SQL logic away from the service layer.
package repository

import (
	"github.com/deppfellow/bakery-api/internal/model"
	"github.com/jackc/pgx/v5"
)

const (
	bakeriesTable   = "bakeries"
	bakedGoodsTable = "baked_goods"
)

const bakedGoodColumns = `id, name, price, bakery_id, created_at, updated_at`

func scanBakery(row pgx.Row) (model.Bakery, error) {
	var b model.Bakery
	err := row.Scan(&b.ID, &b.Name, &b.CreatedAt, &b.UpdatedAt)
	return b, err
}

func scanBakedGood(row pgx.Row) (model.BakedGood, error) {
	var bg model.BakedGood
	err := row.Scan(&bg.ID, &bg.Name, &bg.Price, &bg.BakeryID, &bg.CreatedAt, &bg.UpdatedAt)
	return bg, err
}

// collect drains rows with scan. The result is never nil so it encodes as [].
func collect[T any](rows pgx.Rows, scan func(pgx.Row) (T, error)) ([]T, error) {
	defer rows.Close()

	items := make([]T, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
