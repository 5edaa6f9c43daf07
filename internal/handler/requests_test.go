package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/deppfellow/bakery-api/internal/errs"
	"github.com/deppfellow/bakery-api/internal/validation"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bindContext(method, target, contentType, body string, params map[string]string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if contentType != "" {
		req.Header.Set(echo.HeaderContentType, contentType)
	}
	c := e.NewContext(req, httptest.NewRecorder())

	for name, value := range params {
		c.SetParamNames(name)
		c.SetParamValues(value)
	}
	return c
}

func requireHTTPError(t *testing.T, err error, status int, message string) *errs.HTTPError {
	t.Helper()

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr), "expected *errs.HTTPError, got %v", err)
	assert.Equal(t, status, httpErr.Status)
	assert.Equal(t, message, httpErr.Message)
	return httpErr
}

func TestPathID(t *testing.T) {
	tests := []struct {
		raw   string
		valid bool
		want  int64
	}{
		{"1", true, 1},
		{"0", true, 0},
		{"9223372036854775807", true, 9223372036854775807},
		{"abc", false, 0},
		{"-1", false, 0},
		{"+1", false, 0},
		{"1.5", false, 0},
		{"", false, 0},
		{"99999999999999999999", false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			req := &BakeryIDRequest{PathID: PathID{RawID: tt.raw}}
			err := req.Validate()

			if !tt.valid {
				requireHTTPError(t, err, http.StatusNotFound, "Route not found")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, req.ID())
		})
	}
}

func TestBindAndValidate_BakeryIDFromPath(t *testing.T) {
	c := bindContext(http.MethodGet, "/bakeries/7", "", "", map[string]string{"id": "7"})

	req := NewBakeryIDRequest()
	require.NoError(t, validation.BindAndValidate(c, req))
	assert.EqualValues(t, 7, req.ID())
}

func TestCreateBakeryRequest(t *testing.T) {
	c := bindContext(http.MethodPost, "/bakeries", echo.MIMEApplicationForm,
		url.Values{"name": {"Bagel Barn"}}.Encode(), nil)

	req := NewCreateBakeryRequest()
	require.NoError(t, validation.BindAndValidate(c, req))
	assert.Equal(t, "Bagel Barn", req.Name)

	c = bindContext(http.MethodPost, "/bakeries", echo.MIMEApplicationForm, "", nil)
	httpErr := requireHTTPError(t, validation.BindAndValidate(c, NewCreateBakeryRequest()),
		http.StatusBadRequest, "Missing name parameter")
	assert.Equal(t, errs.CodeMissingParameter, httpErr.Code)
	assert.Equal(t, []errs.FieldError{{Field: "name", Error: "is required"}}, httpErr.Errors)
}

func TestUpdateBakeryRequest(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		c := bindContext(http.MethodPatch, "/bakeries/3", echo.MIMEApplicationForm,
			url.Values{"name": {"Renamed"}}.Encode(), map[string]string{"id": "3"})

		req := NewUpdateBakeryRequest()
		require.NoError(t, validation.BindAndValidate(c, req))
		assert.EqualValues(t, 3, req.ID())
		assert.Equal(t, "Renamed", req.Name)
	})

	t.Run("missing name", func(t *testing.T) {
		c := bindContext(http.MethodPatch, "/bakeries/3", echo.MIMEApplicationForm, "", map[string]string{"id": "3"})

		requireHTTPError(t, validation.BindAndValidate(c, NewUpdateBakeryRequest()),
			http.StatusBadRequest, "Missing name parameter")
	})

	t.Run("bad id wins over missing name", func(t *testing.T) {
		c := bindContext(http.MethodPatch, "/bakeries/x", echo.MIMEApplicationForm, "", map[string]string{"id": "x"})

		requireHTTPError(t, validation.BindAndValidate(c, NewUpdateBakeryRequest()),
			http.StatusNotFound, "Route not found")
	})

	t.Run("json body cannot override path id", func(t *testing.T) {
		c := bindContext(http.MethodPatch, "/bakeries/3", echo.MIMEApplicationJSON,
			`{"name":"Renamed","RawID":"8","id":"8"}`, map[string]string{"id": "3"})

		req := NewUpdateBakeryRequest()
		require.NoError(t, validation.BindAndValidate(c, req))
		assert.EqualValues(t, 3, req.ID())
	})
}

func TestCreateBakedGoodRequest_Form(t *testing.T) {
	tests := []struct {
		name   string
		form   url.Values
		valid  bool
		price  float64
		fields []string
	}{
		{"numeric string", url.Values{"name": {"Croissant"}, "price": {"3.50"}}, true, 3.5, nil},
		{"integer", url.Values{"name": {"Bagel"}, "price": {"2"}}, true, 2, nil},
		{"padded", url.Values{"name": {"Bagel"}, "price": {" 4.25 "}}, true, 4.25, nil},
		{"negative", url.Values{"name": {"Refund"}, "price": {"-1"}}, true, -1, nil},
		{"exponent", url.Values{"name": {"Cake"}, "price": {"1e3"}}, true, 1000, nil},
		{"leading dot", url.Values{"name": {"Mint"}, "price": {".5"}}, true, 0.5, nil},
		{"whitespace name", url.Values{"name": {" "}, "price": {"1"}}, true, 1, nil},
		{"missing price", url.Values{"name": {"Croissant"}}, false, 0, []string{"price"}},
		{"empty price", url.Values{"name": {"Croissant"}, "price": {""}}, false, 0, []string{"price"}},
		{"unparsable price", url.Values{"name": {"Croissant"}, "price": {"cheap"}}, false, 0, []string{"price"}},
		{"nan", url.Values{"name": {"Croissant"}, "price": {"NaN"}}, false, 0, []string{"price"}},
		{"infinity", url.Values{"name": {"Croissant"}, "price": {"Inf"}}, false, 0, []string{"price"}},
		{"hex float", url.Values{"name": {"Croissant"}, "price": {"0x1p-2"}}, false, 0, []string{"price"}},
		{"underscores", url.Values{"name": {"Croissant"}, "price": {"1_000"}}, false, 0, []string{"price"}},
		{"overflow", url.Values{"name": {"Croissant"}, "price": {"1e999"}}, false, 0, []string{"price"}},
		{"missing name", url.Values{"price": {"3.50"}}, false, 0, []string{"name"}},
		{"missing both", url.Values{}, false, 0, []string{"name", "price"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := bindContext(http.MethodPost, "/baked_goods", echo.MIMEApplicationForm, tt.form.Encode(), nil)

			req := NewCreateBakedGoodRequest()
			err := validation.BindAndValidate(c, req)

			if tt.valid {
				require.NoError(t, err)
				assert.Equal(t, tt.price, req.ParsedPrice())
				return
			}

			httpErr := requireHTTPError(t, err, http.StatusBadRequest, "Missing name or price parameter")
			assert.Equal(t, errs.CodeMissingParameter, httpErr.Code)
			var fields []string
			for _, fe := range httpErr.Errors {
				fields = append(fields, fe.Field)
			}
			assert.Equal(t, tt.fields, fields)
		})
	}
}

func TestCreateBakedGoodRequest_FieldMessages(t *testing.T) {
	c := bindContext(http.MethodPost, "/baked_goods", echo.MIMEApplicationForm,
		url.Values{"price": {"cheap"}}.Encode(), nil)

	httpErr := requireHTTPError(t, validation.BindAndValidate(c, NewCreateBakedGoodRequest()),
		http.StatusBadRequest, "Missing name or price parameter")

	assert.Equal(t, []errs.FieldError{
		{Field: "name", Error: "is required"},
		{Field: "price", Error: "must be a number"},
	}, httpErr.Errors)
}

func TestCreateBakedGoodRequest_JSON(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		valid bool
		price float64
	}{
		{"number", `{"name":"Eclair","price":2.99}`, true, 2.99},
		{"string", `{"name":"Eclair","price":"2.99"}`, true, 2.99},
		{"hex string", `{"name":"Eclair","price":"0x10"}`, false, 0},
		{"null", `{"name":"Eclair","price":null}`, false, 0},
		{"absent", `{"name":"Eclair"}`, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := bindContext(http.MethodPost, "/baked_goods", echo.MIMEApplicationJSON, tt.body, nil)

			req := NewCreateBakedGoodRequest()
			err := validation.BindAndValidate(c, req)

			if tt.valid {
				require.NoError(t, err)
				assert.Equal(t, tt.price, req.ParsedPrice())
				return
			}
			requireHTTPError(t, err, http.StatusBadRequest, "Missing name or price parameter")
		})
	}
}
