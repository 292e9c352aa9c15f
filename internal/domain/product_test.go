package domain

import (
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	at := time.UnixMilli(1748772000000)

	assert.Equal(t, "blue-mug-1748772000000", Slugify("Blue Mug", at))
	assert.Equal(t, "lamp-1748772000000", Slugify("LAMP", at))
	assert.Equal(t, "a--b-1748772000000", Slugify("a  b", at), "consecutive spaces each become a hyphen")
}

func TestNewProductDerivesSlug(t *testing.T) {
	at := time.UnixMilli(1700000000123)
	p := NewProduct("Desk Lamp", 4999, "warm light", 2, 5, at)

	assert.Equal(t, "desk-lamp-1700000000123", p.Slug)
	assert.Equal(t, int64(4999), p.Price)
	assert.True(t, p.CreatedAt.Equal(at))
}

func TestSlugifyProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	nameGen := gen.RegexMatch(`[A-Za-z][A-Za-z0-9 ]{0,40}`)

	properties.Property("slug is lowercase and space-free", prop.ForAll(
		func(name string, millis int64) bool {
			slug := Slugify(name, time.UnixMilli(millis))
			return slug == strings.ToLower(slug) && !strings.Contains(slug, " ")
		},
		nameGen,
		gen.Int64Range(0, 4_102_444_800_000),
	))

	properties.Property("slug ends with the creation timestamp in milliseconds", prop.ForAll(
		func(name string, millis int64) bool {
			slug := Slugify(name, time.UnixMilli(millis))
			return strings.HasSuffix(slug, "-"+strconv.FormatInt(millis, 10))
		},
		nameGen,
		gen.Int64Range(0, 4_102_444_800_000),
	))

	properties.Property("same name at distinct instants yields distinct slugs", prop.ForAll(
		func(name string, millis int64, delta int64) bool {
			first := Slugify(name, time.UnixMilli(millis))
			second := Slugify(name, time.UnixMilli(millis+delta))
			return first != second
		},
		nameGen,
		gen.Int64Range(0, 4_102_444_800_000),
		gen.Int64Range(1, 1_000_000),
	))

	properties.TestingRun(t)
}
