package http

import (
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/storekit/admin-backend/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePriceToCents(t *testing.T) {
	cases := []struct {
		name    string
		input   string
		want    int64
		wantErr error
	}{
		{"whole units", "600", 60000, nil},
		{"two decimals", "599.99", 59999, nil},
		{"one decimal", "4.5", 450, nil},
		{"zero", "0", 0, nil},
		{"smallest cent", "0.01", 1, nil},
		{"empty", "", 0, e.ErrInvalidPrice},
		{"spaces only", "   ", 0, e.ErrInvalidPrice},
		{"letters", "abc", 0, e.ErrInvalidPrice},
		{"negative", "-1", 0, e.ErrInvalidPrice},
		{"above catalog limit", "1000000001", 0, e.ErrInvalidPrice},
		{"three decimals", "1.999", 0, e.ErrPricePrecision},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parsePriceToCents(tc.input)
			if tc.wantErr != nil {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestFormatCents(t *testing.T) {
	assert.Equal(t, "599.99", formatCents(59999))
	assert.Equal(t, "600.00", formatCents(60000))
	assert.Equal(t, "0.05", formatCents(5))
	assert.Equal(t, "0.00", formatCents(0))
}

func TestParseStock(t *testing.T) {
	got, err := parseStock("42")
	require.NoError(t, err)
	assert.Equal(t, int32(42), got)

	_, err = parseStock("")
	assert.ErrorIs(t, err, e.ErrInvalidStock)

	_, err = parseStock("-1")
	assert.ErrorIs(t, err, e.ErrInvalidStock)

	_, err = parseStock("many")
	assert.ErrorIs(t, err, e.ErrInvalidStock)
}

func TestParseProductID(t *testing.T) {
	id, err := parseProductID("15")
	require.NoError(t, err)
	assert.Equal(t, int64(15), id)

	for _, bad := range []string{"", "0", "-3", "abc", "1.5"} {
		_, err := parseProductID(bad)
		assert.ErrorIs(t, err, e.ErrInvalidProductID, "input %q", bad)
	}
}

func postForm(t *testing.T, values url.Values) *ProductForm {
	t.Helper()

	r := httptest.NewRequest("POST", "/admin/products/add", strings.NewReader(values.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	require.NoError(t, ensureForm(r, 1<<20))

	form, err := parseProductForm(r)
	require.NoError(t, err)
	return form
}

func TestParseProductForm(t *testing.T) {
	form := postForm(t, url.Values{
		"name":        {"Blue Mug"},
		"price":       {"12.99"},
		"category_id": {"3"},
		"stock":       {"7"},
		"description": {"ceramic"},
		"image_url":   {"https://example.com/mug.png"},
	})

	assert.Equal(t, "Blue Mug", form.Name)
	assert.Equal(t, int64(1299), form.Price)
	assert.Equal(t, int64(3), form.CategoryID)
	assert.Equal(t, int32(7), form.Stock)
	assert.Equal(t, "ceramic", form.Description)
	assert.Equal(t, "https://example.com/mug.png", form.ImageURL)
}

func TestParseProductForm_MissingFields(t *testing.T) {
	r := httptest.NewRequest("POST", "/admin/products/add",
		strings.NewReader(url.Values{"name": {"Mug"}}.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	require.NoError(t, ensureForm(r, 1<<20))

	_, err := parseProductForm(r)
	assert.ErrorIs(t, err, e.ErrMissingFields)
}

func TestParseProductForm_BadCategory(t *testing.T) {
	r := httptest.NewRequest("POST", "/admin/products/add",
		strings.NewReader(url.Values{
			"name":        {"Mug"},
			"price":       {"5"},
			"category_id": {"0"},
			"stock":       {"1"},
		}.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	require.NoError(t, ensureForm(r, 1<<20))

	_, err := parseProductForm(r)
	assert.ErrorIs(t, err, e.ErrCategoryRequired)
}
