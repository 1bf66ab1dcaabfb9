package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resolveFor(t *testing.T, target string, defaultPerPage, maxPerPage int) Paging {
	t.Helper()
	app := fiber.New()
	var got Paging
	app.Get("/x", func(c *fiber.Ctx) error {
		got = ResolvePaging(c, defaultPerPage, maxPerPage)
		return c.SendStatus(fiber.StatusOK)
	})
	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	return got
}

func TestResolvePaging(t *testing.T) {
	t.Run("default", func(t *testing.T) {
		p := resolveFor(t, "/x", 5, 100)
		assert.Equal(t, Paging{Page: 1, PerPage: 5, Offset: 0, Limit: 5}, p)
	})

	t.Run("page dan per_page", func(t *testing.T) {
		p := resolveFor(t, "/x?page=3&per_page=10", 5, 100)
		assert.Equal(t, Paging{Page: 3, PerPage: 10, Offset: 20, Limit: 10}, p)
	})

	t.Run("nilai invalid dinormalisasi", func(t *testing.T) {
		p := resolveFor(t, "/x?page=-2&per_page=abc", 5, 100)
		assert.Equal(t, 1, p.Page)
		assert.Equal(t, 5, p.PerPage)
	})

	t.Run("per_page dibatasi maksimum", func(t *testing.T) {
		p := resolveFor(t, "/x?per_page=9999", 5, 100)
		assert.Equal(t, 100, p.PerPage)
	})

	t.Run("alias skip menggeser offset", func(t *testing.T) {
		p := resolveFor(t, "/x?skip=15", 5, 100)
		assert.Equal(t, 15, p.Offset)
		assert.Equal(t, 4, p.Page)
	})
}

func TestBuildPaginationFromPage(t *testing.T) {
	t.Run("halaman tengah", func(t *testing.T) {
		p := BuildPaginationFromPage(42, 2, 10)
		assert.Equal(t, 5, p.TotalPages)
		assert.True(t, p.HasNext)
		assert.True(t, p.HasPrev)
	})

	t.Run("kosong tetap satu halaman", func(t *testing.T) {
		p := BuildPaginationFromPage(0, 1, 10)
		assert.Equal(t, 1, p.TotalPages)
		assert.False(t, p.HasNext)
		assert.False(t, p.HasPrev)
	})

	t.Run("halaman terakhir", func(t *testing.T) {
		p := BuildPaginationFromPage(42, 5, 10)
		assert.False(t, p.HasNext)
		assert.True(t, p.HasPrev)
	})
}
