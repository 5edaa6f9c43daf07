package router

import (
	"net/http"

	"github.com/deppfellow/bakery-api/internal/handler"
	"github.com/labstack/echo/v4"
)

func registerBakeryRoutes(r *echo.Echo, h *handler.Handlers) {
	get(r, "/", handler.HandleHTML(h.Home.Handler, h.Home.Index, handler.NewEmptyRequest))

	bakeries := r.Group("/bakeries")
	get(bakeries, "", handler.Handle(h.Bakery.Handler, h.Bakery.ListBakeries, http.StatusOK, handler.NewEmptyRequest))
	bakeries.POST("", handler.Handle(h.Bakery.Handler, h.Bakery.CreateBakery, http.StatusCreated, handler.NewCreateBakeryRequest))
	get(bakeries, "/:id", handler.Handle(h.Bakery.Handler, h.Bakery.GetBakery, http.StatusOK, handler.NewBakeryIDRequest))
	bakeries.PATCH("/:id", handler.Handle(h.Bakery.Handler, h.Bakery.UpdateBakery, http.StatusOK, handler.NewUpdateBakeryRequest))

	goods := r.Group("/baked_goods")
	goods.POST("", handler.Handle(h.BakedGood.Handler, h.BakedGood.CreateBakedGood, http.StatusCreated, handler.NewCreateBakedGoodRequest))
	goods.DELETE("/:id", handler.Handle(h.BakedGood.Handler, h.BakedGood.DeleteBakedGood, http.StatusOK, handler.NewBakedGoodIDRequest))
	get(goods, "/by_price", handler.Handle(h.BakedGood.Handler, h.BakedGood.ListBakedGoodsByPrice, http.StatusOK, handler.NewEmptyRequest))
	get(goods, "/most_expensive", handler.Handle(h.BakedGood.Handler, h.BakedGood.MostExpensiveBakedGood, http.StatusOK, handler.NewEmptyRequest))
}
