package validation_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/valkit-go/valkit/validation"
)

// testContext implements validation.Context and validation.ItemStore.
type testContext struct {
	context.Context
	r     *http.Request
	w     http.ResponseWriter
	items map[string]string
}

func newTestContext(method string) *testContext {
	return &testContext{
		Context: context.Background(),
		r:       httptest.NewRequest(method, "/orders", nil),
		w:       httptest.NewRecorder(),
	}
}

func (c *testContext) Request() *http.Request              { return c.r }
func (c *testContext) ResponseWriter() http.ResponseWriter { return c.w }

func (c *testContext) Item(key string) (string, bool) {
	v, ok := c.items[key]
	return v, ok
}

func (c *testContext) SetItem(key, value string) {
	if c.items == nil {
		c.items = make(map[string]string)
	}
	c.items[key] = value
}

// plainContext implements validation.Context without the item store.
type plainContext struct {
	context.Context
	r *http.Request
	w http.ResponseWriter
}

func newPlainContext(method string) *plainContext {
	return &plainContext{
		Context: context.Background(),
		r:       httptest.NewRequest(method, "/orders", nil),
		w:       httptest.NewRecorder(),
	}
}

func (c *plainContext) Request() *http.Request              { return c.r }
func (c *plainContext) ResponseWriter() http.ResponseWriter { return c.w }

// stubValidator records which paths the executor took.
type stubValidator struct {
	async bool
	res   validation.Result
	err   error

	lastInv       validation.Invocation
	validateCalls int
	ctxCalls      int
	closeCalls    int
}

func (s *stubValidator) HasAsyncRules(validation.Invocation) bool { return s.async }

func (s *stubValidator) Validate(inv validation.Invocation) (validation.Result, error) {
	s.validateCalls++
	s.lastInv = inv
	return s.res, s.err
}

func (s *stubValidator) ValidateContext(_ context.Context, inv validation.Invocation) (validation.Result, error) {
	s.ctxCalls++
	s.lastInv = inv
	return s.res, s.err
}

func (s *stubValidator) Close() error {
	s.closeCalls++
	return nil
}

type testDTO struct {
	Name string
}

func TestExec(t *testing.T) {
	t.Parallel()

	t.Run("nil validator", func(t *testing.T) {
		t.Parallel()
		_, err := validation.Exec(newTestContext(http.MethodPost), nil, testDTO{})
		assert.ErrorIs(t, err, validation.ErrNilValidator)
	})

	t.Run("nil validator checked before nil context", func(t *testing.T) {
		t.Parallel()
		_, err := validation.Exec(nil, nil, testDTO{})
		assert.ErrorIs(t, err, validation.ErrNilValidator)
	})

	t.Run("nil context", func(t *testing.T) {
		t.Parallel()
		_, err := validation.Exec(nil, &stubValidator{}, testDTO{})
		assert.ErrorIs(t, err, validation.ErrNilRequest)
	})

	t.Run("nil dto", func(t *testing.T) {
		t.Parallel()
		_, err := validation.Exec(newTestContext(http.MethodPost), &stubValidator{}, nil)
		assert.ErrorIs(t, err, validation.ErrNilDTO)
	})

	t.Run("sync validation runs and releases validator", func(t *testing.T) {
		t.Parallel()
		v := &stubValidator{res: validation.Result{Errors: []validation.FieldError{{Code: "Required", Field: "Name"}}}}

		res, err := validation.Exec(newTestContext(http.MethodPost), v, testDTO{})

		require.NoError(t, err)
		assert.False(t, res.Valid())
		assert.Equal(t, 1, v.validateCalls)
		assert.Equal(t, 0, v.ctxCalls)
		assert.Equal(t, 1, v.closeCalls)
	})

	t.Run("rule set derives from request method", func(t *testing.T) {
		t.Parallel()
		v := &stubValidator{}
		dto := testDTO{Name: "x"}

		_, err := validation.Exec(newTestContext(http.MethodPut), v, dto)

		require.NoError(t, err)
		assert.Equal(t, http.MethodPut, v.lastInv.RuleSet)
		assert.Equal(t, dto, v.lastInv.DTO)
	})

	t.Run("async rules fail before any evaluation", func(t *testing.T) {
		t.Parallel()
		v := &stubValidator{async: true}

		_, err := validation.Exec(newTestContext(http.MethodPost), v, testDTO{})

		assert.ErrorIs(t, err, validation.ErrAsyncNotSupported)
		assert.Equal(t, 0, v.validateCalls)
		assert.Equal(t, 0, v.ctxCalls)
		assert.Equal(t, 1, v.closeCalls, "validator must be released on the failure path")
	})
}

func TestExecContext(t *testing.T) {
	t.Parallel()

	t.Run("argument checks match Exec", func(t *testing.T) {
		t.Parallel()
		_, err := validation.ExecContext(newTestContext(http.MethodPost), nil, testDTO{})
		assert.ErrorIs(t, err, validation.ErrNilValidator)

		_, err = validation.ExecContext(nil, &stubValidator{}, testDTO{})
		assert.ErrorIs(t, err, validation.ErrNilRequest)

		_, err = validation.ExecContext(newTestContext(http.MethodPost), &stubValidator{}, nil)
		assert.ErrorIs(t, err, validation.ErrNilDTO)
	})

	t.Run("dispatches to sync path without async rules", func(t *testing.T) {
		t.Parallel()
		v := &stubValidator{}

		_, err := validation.ExecContext(newTestContext(http.MethodGet), v, testDTO{})

		require.NoError(t, err)
		assert.Equal(t, 1, v.validateCalls)
		assert.Equal(t, 0, v.ctxCalls)
		assert.Equal(t, 1, v.closeCalls)
	})

	t.Run("dispatches to context path with async rules", func(t *testing.T) {
		t.Parallel()
		v := &stubValidator{async: true}

		_, err := validation.ExecContext(newTestContext(http.MethodPost), v, testDTO{})

		require.NoError(t, err)
		assert.Equal(t, 0, v.validateCalls)
		assert.Equal(t, 1, v.ctxCalls)
		assert.Equal(t, 1, v.closeCalls)
	})

	t.Run("cancelled context short-circuits", func(t *testing.T) {
		t.Parallel()
		ctx := newTestContext(http.MethodPost)
		cancelled, cancel := context.WithCancel(context.Background())
		cancel()
		ctx.Context = cancelled

		v := &stubValidator{async: true}
		_, err := validation.ExecContext(ctx, v, testDTO{})

		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 0, v.validateCalls)
		assert.Equal(t, 0, v.ctxCalls)
		assert.Equal(t, 1, v.closeCalls)
	})
}

func TestRuleSetFromMethod(t *testing.T) {
	t.Parallel()

	assert.Equal(t, http.MethodGet, validation.RuleSetFromMethod(""))
	assert.Equal(t, http.MethodPost, validation.RuleSetFromMethod("post"))
	assert.Equal(t, http.MethodDelete, validation.RuleSetFromMethod(http.MethodDelete))
}
