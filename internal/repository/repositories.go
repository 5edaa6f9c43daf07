package repository

import (
	"github.com/deppfellow/bakery-api/internal/server"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	Bakery    *BakeryRepository
	BakedGood *BakedGoodRepository
}

// NewRepositories builds every repository on the shared connection pool.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Bakery:    NewBakeryRepository(s.DB.Pool),
		BakedGood: NewBakedGoodRepository(s.DB.Pool),
	}
}
