package service

import (
	"context"

	"github.com/deppfellow/bakery-api/internal/model"
	"github.com/stretchr/testify/mock"
)

type mockBakeryStore struct {
	mock.Mock
}

func (m *mockBakeryStore) ListBakeries(ctx context.Context) ([]model.Bakery, error) {
	args := m.Called(ctx)
	bakeries, _ := args.Get(0).([]model.Bakery)
	return bakeries, args.Error(1)
}

func (m *mockBakeryStore) GetBakeryByID(ctx context.Context, id int64) (*model.Bakery, error) {
	args := m.Called(ctx, id)
	bakery, _ := args.Get(0).(*model.Bakery)
	return bakery, args.Error(1)
}

func (m *mockBakeryStore) CreateBakery(ctx context.Context, name string) (*model.Bakery, error) {
	args := m.Called(ctx, name)
	bakery, _ := args.Get(0).(*model.Bakery)
	return bakery, args.Error(1)
}

func (m *mockBakeryStore) UpdateBakeryName(ctx context.Context, id int64, name string) (*model.Bakery, error) {
	args := m.Called(ctx, id, name)
	bakery, _ := args.Get(0).(*model.Bakery)
	return bakery, args.Error(1)
}

type mockBakedGoodStore struct {
	mock.Mock
}

func (m *mockBakedGoodStore) CreateBakedGood(ctx context.Context, name string, price float64) (*model.BakedGood, error) {
	args := m.Called(ctx, name, price)
	good, _ := args.Get(0).(*model.BakedGood)
	return good, args.Error(1)
}

func (m *mockBakedGoodStore) DeleteBakedGood(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockBakedGoodStore) ListBakedGoodsByPriceDesc(ctx context.Context) ([]model.BakedGood, error) {
	args := m.Called(ctx)
	goods, _ := args.Get(0).([]model.BakedGood)
	return goods, args.Error(1)
}

func (m *mockBakedGoodStore) GetMostExpensiveBakedGood(ctx context.Context) (*model.BakedGood, error) {
	args := m.Called(ctx)
	good, _ := args.Get(0).(*model.BakedGood)
	return good, args.Error(1)
}

func (m *mockBakedGoodStore) ListBakedGoodsForBakery(ctx context.Context, bakeryID int64) ([]model.BakedGood, error) {
	args := m.Called(ctx, bakeryID)
	goods, _ := args.Get(0).([]model.BakedGood)
	return goods, args.Error(1)
}
