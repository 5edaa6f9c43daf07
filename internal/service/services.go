// Package service contains the business logic.
//
// It sits between the handler and repository layers.
// It receives validated data from the handler, performs
// business operations, and calls repository methods to interact
// with the data.
package service

import (
	"github.com/deppfellow/bakery-api/internal/repository"
	"github.com/deppfellow/bakery-api/internal/server"
)

type Services struct {
	Bakery    *BakeryService
	BakedGood *BakedGoodService
}

// NewServices wires every service onto its repositories.
func NewServices(_ *server.Server, repos *repository.Repositories) (*Services, error) {
	return &Services{
		Bakery:    NewBakeryService(repos.Bakery, repos.BakedGood),
		BakedGood: NewBakedGoodService(repos.BakedGood),
	}, nil
}
