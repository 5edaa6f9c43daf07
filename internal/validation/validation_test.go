package validation

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/deppfellow/bakery-api/internal/errs"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type taggedRequest struct {
	Name string `form:"name" json:"name" validate:"required,max=10"`
}

func (r *taggedRequest) Validate() error {
	return Struct(r)
}

type passthroughRequest struct {
	Name string `form:"name"`
}

var errMissingName = errs.NewMissingParameterError("Missing name parameter", errs.FieldError{Field: "name", Error: "is required"})

func (r *passthroughRequest) Validate() error {
	if r.Name == "" {
		return errMissingName
	}
	return nil
}

type amountRequest struct {
	Label  string `json:"label" validate:"required"`
	Amount string `form:"amount" validate:"decimal"`
}

func (r *amountRequest) Validate() error {
	if err := Struct(r); err != nil {
		return MissingParameterError(err, "Missing label or amount")
	}
	return nil
}

type plainErrorRequest struct{}

func (r *plainErrorRequest) Validate() error {
	return errors.New("something odd")
}

func newFormContext(body string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	return e.NewContext(req, httptest.NewRecorder())
}

func asHTTPError(t *testing.T, err error) *errs.HTTPError {
	t.Helper()

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr), "expected *errs.HTTPError, got %T", err)
	return httpErr
}

func TestBindAndValidate_Success(t *testing.T) {
	c := newFormContext(url.Values{"name": {"Bagels"}}.Encode())

	req := &taggedRequest{}
	require.NoError(t, BindAndValidate(c, req))
	assert.Equal(t, "Bagels", req.Name)
}

func TestBindAndValidate_TagErrors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		message string
	}{
		{"missing", "", "is required"},
		{"too long", url.Values{"name": {"Extraordinary Bagels"}}.Encode(), "must not exceed 10 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpErr := asHTTPError(t, BindAndValidate(newFormContext(tt.body), &taggedRequest{}))

			assert.Equal(t, http.StatusBadRequest, httpErr.Status)
			assert.Equal(t, "Validation failed", httpErr.Message)
			require.Len(t, httpErr.Errors, 1)
			assert.Equal(t, "name", httpErr.Errors[0].Field)
			assert.Equal(t, tt.message, httpErr.Errors[0].Error)
		})
	}
}

func TestBindAndValidate_PassesHTTPErrorThrough(t *testing.T) {
	err := BindAndValidate(newFormContext(""), &passthroughRequest{})

	assert.Same(t, errMissingName, err)
}

func TestBindAndValidate_MissingParameters(t *testing.T) {
	httpErr := asHTTPError(t, BindAndValidate(newFormContext(url.Values{"amount": {"0x1p-2"}}.Encode()), &amountRequest{}))

	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, errs.CodeMissingParameter, httpErr.Code)
	assert.Equal(t, "Missing label or amount", httpErr.Message)
	assert.Equal(t, []errs.FieldError{
		{Field: "label", Error: "is required"},
		{Field: "amount", Error: "must be a number"},
	}, httpErr.Errors)
}

func TestMissingParameterError_PassesOtherErrorsThrough(t *testing.T) {
	boom := errors.New("boom")

	assert.Same(t, boom, MissingParameterError(boom, "Missing name parameter"))
}

func TestParseDecimal(t *testing.T) {
	tests := []struct {
		in    string
		want  float64
		valid bool
	}{
		{"3.50", 3.5, true},
		{" 4 ", 4, true},
		{"-1", -1, true},
		{"+2", 2, true},
		{"5.", 5, true},
		{".25", 0.25, true},
		{"2e3", 2000, true},
		{"1E-2", 0.01, true},
		{"", 0, false},
		{".", 0, false},
		{"e5", 0, false},
		{"0x1p-2", 0, false},
		{"0x10", 0, false},
		{"NaN", 0, false},
		{"inf", 0, false},
		{"Infinity", 0, false},
		{"1_000", 0, false},
		{"1e999", 0, false},
		{"12abc", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseDecimal(tt.in)

			assert.Equal(t, tt.valid, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBindAndValidate_PlainError(t *testing.T) {
	httpErr := asHTTPError(t, BindAndValidate(newFormContext(""), &plainErrorRequest{}))

	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "Validation failed: something odd", httpErr.Message)
}

func TestBindAndValidate_MalformedJSON(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c := e.NewContext(req, httptest.NewRecorder())

	httpErr := asHTTPError(t, BindAndValidate(c, &taggedRequest{}))
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.NotEmpty(t, httpErr.Message)
}
