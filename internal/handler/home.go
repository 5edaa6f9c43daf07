package handler

import (
	"github.com/deppfellow/bakery-api/internal/server"
	"github.com/labstack/echo/v4"
)

const homePage = "<h1>Bakery GET-POST-PATCH-DELETE API</h1>"

type HomeHandler struct {
	Handler
}

func NewHomeHandler(s *server.Server) *HomeHandler {
	return &HomeHandler{Handler: NewHandler(s)}
}

func (h *HomeHandler) Index(c echo.Context, _ *EmptyRequest) (string, error) {
	return homePage, nil
}
