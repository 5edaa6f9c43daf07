// Package handler is the HTTP entry point for business logic.
//
// It binds and validates typed request structs, calls the service layer
// and writes the response. Errors are left to the global error handler.
package handler

import (
	"github.com/deppfellow/bakery-api/internal/server"
	"github.com/deppfellow/bakery-api/internal/service"
)

// Handlers groups every HTTP handler so the router receives one value.
type Handlers struct {
	Home      *HomeHandler
	Bakery    *BakeryHandler
	BakedGood *BakedGoodHandler
	Health    *HealthHandler
	OpenAPI   *OpenAPIHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Home:      NewHomeHandler(s),
		Bakery:    NewBakeryHandler(s, services.Bakery),
		BakedGood: NewBakedGoodHandler(s, services.BakedGood),
		Health:    NewHealthHandler(s),
		OpenAPI:   NewOpenAPIHandler(s),
	}
}
