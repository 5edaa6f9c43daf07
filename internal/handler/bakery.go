package handler

import (
	"context"

	"github.com/deppfellow/bakery-api/internal/model"
	"github.com/deppfellow/bakery-api/internal/server"
	"github.com/labstack/echo/v4"
)

// BakeryService is the business logic the bakery routes call.
type BakeryService interface {
	List(ctx context.Context) ([]model.Bakery, error)
	Get(ctx context.Context, id int64) (*model.BakeryDetail, error)
	Create(ctx context.Context, name string) (*model.Bakery, error)
	UpdateName(ctx context.Context, id int64, name string) (*model.BakeryDetail, error)
}

type BakeryHandler struct {
	Handler
	bakeries BakeryService
}

func NewBakeryHandler(s *server.Server, bakeries BakeryService) *BakeryHandler {
	return &BakeryHandler{
		Handler:  NewHandler(s),
		bakeries: bakeries,
	}
}

func (h *BakeryHandler) ListBakeries(c echo.Context, _ *EmptyRequest) ([]model.Bakery, error) {
	return h.bakeries.List(c.Request().Context())
}

func (h *BakeryHandler) GetBakery(c echo.Context, req *BakeryIDRequest) (*model.BakeryDetail, error) {
	return h.bakeries.Get(c.Request().Context(), req.ID())
}

func (h *BakeryHandler) CreateBakery(c echo.Context, req *CreateBakeryRequest) (*model.Bakery, error) {
	return h.bakeries.Create(c.Request().Context(), req.Name)
}

func (h *BakeryHandler) UpdateBakery(c echo.Context, req *UpdateBakeryRequest) (*model.BakeryDetail, error) {
	return h.bakeries.UpdateName(c.Request().Context(), req.ID(), req.Name)
}
