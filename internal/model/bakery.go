package model

// Bakery is a named producer of baked goods.
type Bakery struct {
	Base
	Name string `json:"name"`
}

// BakeryDetail is a bakery together with the baked goods it produces.
// Baked goods are serialized shallowly, without a back reference.
type BakeryDetail struct {
	Bakery
	BakedGoods []BakedGood `json:"baked_goods"`
}
