package model

// BakedGood is a named, priced product, optionally owned by a bakery.
type BakedGood struct {
	Base
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	BakeryID *int64  `json:"bakery_id"`
}
