package handler

import (
	"context"

	"github.com/deppfellow/bakery-api/internal/model"
	"github.com/deppfellow/bakery-api/internal/server"
	"github.com/labstack/echo/v4"
)

// BakedGoodService is the business logic the baked good routes call.
type BakedGoodService interface {
	Create(ctx context.Context, name string, price float64) (*model.BakedGood, error)
	Delete(ctx context.Context, id int64) error
	ListByPrice(ctx context.Context) ([]model.BakedGood, error)
	MostExpensive(ctx context.Context) (*model.BakedGood, error)
}

// MessageResponse is a bare {"message": ...} body.
type MessageResponse struct {
	Message string `json:"message"`
}

type BakedGoodHandler struct {
	Handler
	goods BakedGoodService
}

func NewBakedGoodHandler(s *server.Server, goods BakedGoodService) *BakedGoodHandler {
	return &BakedGoodHandler{
		Handler: NewHandler(s),
		goods:   goods,
	}
}

// CreateBakedGood creates a baked good that belongs to no bakery.
func (h *BakedGoodHandler) CreateBakedGood(c echo.Context, req *CreateBakedGoodRequest) (*model.BakedGood, error) {
	return h.goods.Create(c.Request().Context(), req.Name, req.ParsedPrice())
}

func (h *BakedGoodHandler) DeleteBakedGood(c echo.Context, req *BakedGoodIDRequest) (MessageResponse, error) {
	if err := h.goods.Delete(c.Request().Context(), req.ID()); err != nil {
		return MessageResponse{}, err
	}
	return MessageResponse{Message: msgSuccessfullyDeleted}, nil
}

func (h *BakedGoodHandler) ListBakedGoodsByPrice(c echo.Context, _ *EmptyRequest) ([]model.BakedGood, error) {
	return h.goods.ListByPrice(c.Request().Context())
}

// MostExpensiveBakedGood responds with {} when there are no baked goods.
func (h *BakedGoodHandler) MostExpensiveBakedGood(c echo.Context, _ *EmptyRequest) (any, error) {
	good, err := h.goods.MostExpensive(c.Request().Context())
	if err != nil {
		return nil, err
	}
	if good == nil {
		return struct{}{}, nil
	}
	return good, nil
}
