package handler

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/deppfellow/bakery-api/internal/errs"
	"github.com/deppfellow/bakery-api/internal/validation"
)

const (
	msgMissingName         = "Missing name parameter"
	msgMissingNameOrPrice  = "Missing name or price parameter"
	msgSuccessfullyDeleted = "Successfully deleted."
)

// EmptyRequest is bound by routes that take no input.
type EmptyRequest struct{}

func (r *EmptyRequest) Validate() error { return nil }

func NewEmptyRequest() *EmptyRequest { return &EmptyRequest{} }

// PathID is a path segment that must be a non-negative integer. Anything
// else is reported as an unknown route, the same as a route that never matched.
type PathID struct {
	RawID string `param:"id" json:"-"`

	id int64
}

func (p *PathID) parse() error {
	id, err := strconv.ParseInt(p.RawID, 10, 64)
	if err != nil || id < 0 || strings.HasPrefix(p.RawID, "+") {
		return errs.NewNotFoundError("Route not found", false, nil)
	}
	p.id = id
	return nil
}

// ID is valid once Validate has succeeded.
func (p *PathID) ID() int64 { return p.id }

type BakeryIDRequest struct {
	PathID
}

func (r *BakeryIDRequest) Validate() error { return r.parse() }

func NewBakeryIDRequest() *BakeryIDRequest { return &BakeryIDRequest{} }

// CreateBakeryRequest only treats an absent or empty name as missing;
// whitespace is a name like any other.
type CreateBakeryRequest struct {
	Name string `form:"name" json:"name" validate:"required"`
}

func (r *CreateBakeryRequest) Validate() error {
	if err := validation.Struct(r); err != nil {
		return validation.MissingParameterError(err, msgMissingName)
	}
	return nil
}

func NewCreateBakeryRequest() *CreateBakeryRequest { return &CreateBakeryRequest{} }

// UpdateBakeryRequest checks the id before the name, so a malformed id is a
// 404 even when the name is missing.
type UpdateBakeryRequest struct {
	PathID
	Name string `form:"name" json:"name" validate:"required"`
}

func (r *UpdateBakeryRequest) Validate() error {
	if err := r.parse(); err != nil {
		return err
	}
	if err := validation.Struct(r); err != nil {
		return validation.MissingParameterError(err, msgMissingName)
	}
	return nil
}

func NewUpdateBakeryRequest() *UpdateBakeryRequest { return &UpdateBakeryRequest{} }

// priceParam holds the raw price. JSON bodies may send it as a number or
// a string; form bodies always send a string.
type priceParam string

func (p *priceParam) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*p = priceParam(s)
		return nil
	}
	*p = priceParam(strings.TrimSpace(string(data)))
	return nil
}

// Float accepts plain decimal notation only. NaN and infinities cannot be
// encoded as JSON, so they are rejected along with hex floats.
func (p priceParam) Float() (float64, bool) {
	return validation.ParseDecimal(string(p))
}

// CreateBakedGoodRequest reports name and price together: one message
// covers either or both being missing or unusable.
type CreateBakedGoodRequest struct {
	Name  string     `form:"name" json:"name" validate:"required"`
	Price priceParam `form:"price" json:"price" validate:"decimal"`

	price float64
}

func (r *CreateBakedGoodRequest) Validate() error {
	if err := validation.Struct(r); err != nil {
		return validation.MissingParameterError(err, msgMissingNameOrPrice)
	}

	r.price, _ = r.Price.Float()
	return nil
}

// ParsedPrice is valid once Validate has succeeded.
func (r *CreateBakedGoodRequest) ParsedPrice() float64 { return r.price }

func NewCreateBakedGoodRequest() *CreateBakedGoodRequest { return &CreateBakedGoodRequest{} }

type BakedGoodIDRequest struct {
	PathID
}

func (r *BakedGoodIDRequest) Validate() error { return r.parse() }

func NewBakedGoodIDRequest() *BakedGoodIDRequest { return &BakedGoodIDRequest{} }

var (
	_ validation.Validatable = (*EmptyRequest)(nil)
	_ validation.Validatable = (*BakeryIDRequest)(nil)
	_ validation.Validatable = (*CreateBakeryRequest)(nil)
	_ validation.Validatable = (*UpdateBakeryRequest)(nil)
	_ validation.Validatable = (*CreateBakedGoodRequest)(nil)
	_ validation.Validatable = (*BakedGoodIDRequest)(nil)
)
