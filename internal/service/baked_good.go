package service

import (
	"context"

	"github.com/deppfellow/bakery-api/internal/model"
	"github.com/rs/zerolog"
)

// BakedGoodStore is the persistence the baked good service needs.
type BakedGoodStore interface {
	CreateBakedGood(ctx context.Context, name string, price float64) (*model.BakedGood, error)
	DeleteBakedGood(ctx context.Context, id int64) error
	ListBakedGoodsByPriceDesc(ctx context.Context) ([]model.BakedGood, error)
	GetMostExpensiveBakedGood(ctx context.Context) (*model.BakedGood, error)
}

type BakedGoodService struct {
	goods BakedGoodStore
}

func NewBakedGoodService(goods BakedGoodStore) *BakedGoodService {
	return &BakedGoodService{goods: goods}
}

// Create adds a baked good that belongs to no bakery.
func (s *BakedGoodService) Create(ctx context.Context, name string, price float64) (*model.BakedGood, error) {
	logger := zerolog.Ctx(ctx)

	good, err := s.goods.CreateBakedGood(ctx, name, price)
	if err != nil {
		logger.Error().Err(err).Msg("failed to create baked good")
		return nil, err
	}

	logger.Info().Int64("baked_good_id", good.ID).Float64("price", good.Price).Msg("baked good created")
	return good, nil
}

func (s *BakedGoodService) Delete(ctx context.Context, id int64) error {
	logger := zerolog.Ctx(ctx)

	if err := s.goods.DeleteBakedGood(ctx, id); err != nil {
		logger.Warn().Err(err).Int64("baked_good_id", id).Msg("failed to delete baked good")
		return err
	}

	logger.Info().Int64("baked_good_id", id).Msg("baked good deleted")
	return nil
}

func (s *BakedGoodService) ListByPrice(ctx context.Context) ([]model.BakedGood, error) {
	return s.goods.ListBakedGoodsByPriceDesc(ctx)
}

// MostExpensive returns nil when there are no baked goods.
func (s *BakedGoodService) MostExpensive(ctx context.Context) (*model.BakedGood, error) {
	return s.goods.GetMostExpensiveBakedGood(ctx)
}
