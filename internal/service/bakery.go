package service

import (
	"context"

	"github.com/deppfellow/bakery-api/internal/model"
	"github.com/rs/zerolog"
)

// BakeryStore is the persistence the bakery service needs.
type BakeryStore interface {
	ListBakeries(ctx context.Context) ([]model.Bakery, error)
	GetBakeryByID(ctx context.Context, id int64) (*model.Bakery, error)
	CreateBakery(ctx context.Context, name string) (*model.Bakery, error)
	UpdateBakeryName(ctx context.Context, id int64, name string) (*model.Bakery, error)
}

// BakeryGoodsLister loads the baked goods owned by a bakery.
type BakeryGoodsLister interface {
	ListBakedGoodsForBakery(ctx context.Context, bakeryID int64) ([]model.BakedGood, error)
}

type BakeryService struct {
	bakeries BakeryStore
	goods    BakeryGoodsLister
}

func NewBakeryService(bakeries BakeryStore, goods BakeryGoodsLister) *BakeryService {
	return &BakeryService{bakeries: bakeries, goods: goods}
}

// List returns bakeries without their baked goods.
func (s *BakeryService) List(ctx context.Context) ([]model.Bakery, error) {
	return s.bakeries.ListBakeries(ctx)
}

// Get returns a bakery together with its baked goods.
func (s *BakeryService) Get(ctx context.Context, id int64) (*model.BakeryDetail, error) {
	bakery, err := s.bakeries.GetBakeryByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.detail(ctx, bakery)
}

func (s *BakeryService) Create(ctx context.Context, name string) (*model.Bakery, error) {
	logger := zerolog.Ctx(ctx)

	bakery, err := s.bakeries.CreateBakery(ctx, name)
	if err != nil {
		logger.Error().Err(err).Msg("failed to create bakery")
		return nil, err
	}

	logger.Info().Int64("bakery_id", bakery.ID).Msg("bakery created")
	return bakery, nil
}

// UpdateName renames a bakery and returns it with its baked goods.
func (s *BakeryService) UpdateName(ctx context.Context, id int64, name string) (*model.BakeryDetail, error) {
	logger := zerolog.Ctx(ctx)

	bakery, err := s.bakeries.UpdateBakeryName(ctx, id, name)
	if err != nil {
		logger.Warn().Err(err).Int64("bakery_id", id).Msg("failed to update bakery")
		return nil, err
	}

	logger.Info().Int64("bakery_id", bakery.ID).Msg("bakery renamed")
	return s.detail(ctx, bakery)
}

func (s *BakeryService) detail(ctx context.Context, bakery *model.Bakery) (*model.BakeryDetail, error) {
	goods, err := s.goods.ListBakedGoodsForBakery(ctx, bakery.ID)
	if err != nil {
		return nil, err
	}
	if goods == nil {
		goods = []model.BakedGood{}
	}

	return &model.BakeryDetail{Bakery: *bakery, BakedGoods: goods}, nil
}
