package binder_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/valkit-go/valkit/binder"
)

func TestBindQuery(t *testing.T) {
	t.Parallel()

	type listOrders struct {
		Customer string   `query:"customer"`
		Page     int      `query:"page"`
		Active   bool     `query:"active"`
		Tags     []string `query:"tags"`
		Limit    *int     `query:"limit"`
		Internal string   `query:"-"`
		Sort     string
	}

	t.Run("binds tagged and untagged fields", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/orders?customer=jo@example.com&page=2&active=true&sort=created", nil)

		var dto listOrders
		err := binder.BindQuery()(req, &dto)

		require.NoError(t, err)
		assert.Equal(t, "jo@example.com", dto.Customer)
		assert.Equal(t, 2, dto.Page)
		assert.True(t, dto.Active)
		assert.Equal(t, "created", dto.Sort, "untagged fields match their lowercased name")
	})

	t.Run("missing parameters keep zero values", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/orders", nil)

		var dto listOrders
		err := binder.BindQuery()(req, &dto)

		require.NoError(t, err)
		assert.Empty(t, dto.Customer)
		assert.Zero(t, dto.Page)
		assert.Nil(t, dto.Limit)
	})

	t.Run("slices accept repeated and comma-separated values", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/orders?tags=a,b&tags=c", nil)

		var dto listOrders
		err := binder.BindQuery()(req, &dto)

		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b", "c"}, dto.Tags)
	})

	t.Run("pointer fields allocate on demand", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/orders?limit=50", nil)

		var dto listOrders
		err := binder.BindQuery()(req, &dto)

		require.NoError(t, err)
		require.NotNil(t, dto.Limit)
		assert.Equal(t, 50, *dto.Limit)
	})

	t.Run("skipped fields are never bound", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/orders?internal=hacked&-=hacked", nil)

		var dto listOrders
		err := binder.BindQuery()(req, &dto)

		require.NoError(t, err)
		assert.Empty(t, dto.Internal)
	})

	t.Run("invalid int fails with field name", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/orders?page=abc", nil)

		var dto listOrders
		err := binder.BindQuery()(req, &dto)

		require.ErrorIs(t, err, binder.ErrInvalidQuery)
		assert.Contains(t, err.Error(), "Page")
	})

	t.Run("non-pointer target fails", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/orders", nil)

		var dto listOrders
		err := binder.BindQuery()(req, dto)

		assert.ErrorIs(t, err, binder.ErrInvalidQuery)
	})
}
