package router

import (
	"errors"
	"testing"

	"kinobot/internal/bot/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestDispatch_CallsRegisteredHandler(t *testing.T) {
	r := NewRouter()

	var called bool
	r.Handle(IntentStart, func(ctx types.Context) error {
		called = true
		return nil
	})

	err := r.Dispatch(types.Context{
		Update: textUpdate("/start"),
		Deps:   &types.Dependencies{Logger: zap.NewNop()},
	})

	require.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, int64(1), r.GetMetrics().TotalRequests())
	assert.Equal(t, int64(1), r.GetMetrics().IntentRequests(IntentStart))
	assert.Equal(t, int64(0), r.GetMetrics().TotalErrors())
}

func TestDispatch_UnrecognizedIsSilent(t *testing.T) {
	r := NewRouter()

	err := r.Dispatch(types.Context{
		Update: textUpdate("hello bot"),
		Deps:   &types.Dependencies{Logger: zap.NewNop()},
	})

	require.NoError(t, err)
	assert.Equal(t, int64(0), r.GetMetrics().TotalRequests())
}

func TestDispatch_NoHandlerForIntent(t *testing.T) {
	r := NewRouter()

	err := r.Dispatch(types.Context{
		Update: textUpdate("/start"),
		Deps:   &types.Dependencies{Logger: zap.NewNop()},
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrNoHandler))
	assert.Equal(t, int64(1), r.GetMetrics().TotalErrors())
}

func TestDispatch_WrapsHandlerError(t *testing.T) {
	r := NewRouter()

	boom := errors.New("boom")
	r.Handle(IntentStart, func(ctx types.Context) error {
		return boom
	})

	err := r.Dispatch(types.Context{
		Update: textUpdate("/start"),
		Deps:   &types.Dependencies{Logger: zap.NewNop()},
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, boom))

	var intentErr *types.IntentError
	require.True(t, errors.As(err, &intentErr))
	assert.Equal(t, string(IntentStart), intentErr.Intent)
	assert.Equal(t, int64(1), r.GetMetrics().IntentRequests(IntentStart))
	assert.Equal(t, int64(1), r.GetMetrics().TotalErrors())
}

func TestDispatch_RecoversFromPanic(t *testing.T) {
	r := NewRouter()

	r.Handle(IntentStart, func(ctx types.Context) error {
		panic("handler exploded")
	})

	err := r.Dispatch(types.Context{
		Update: textUpdate("/start"),
		Deps:   &types.Dependencies{Logger: zap.NewNop()},
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "handler panicked")
}

func TestDispatch_MiddlewareOrder(t *testing.T) {
	r := NewRouter()

	var order []string
	r.Use(func(ctx types.Context, next types.HandlerFunc) error {
		order = append(order, "first")
		return next(ctx)
	})
	r.Use(func(ctx types.Context, next types.HandlerFunc) error {
		order = append(order, "second")
		return next(ctx)
	})
	r.Handle(IntentStart, func(ctx types.Context) error {
		order = append(order, "handler")
		return nil
	})

	err := r.Dispatch(types.Context{
		Update: textUpdate("/start"),
		Deps:   &types.Dependencies{Logger: zap.NewNop()},
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second", "handler"}, order)
}

func TestDispatch_MiddlewareCanShortCircuit(t *testing.T) {
	r := NewRouter()

	r.Use(func(ctx types.Context, next types.HandlerFunc) error {
		return nil
	})

	var called bool
	r.Handle(IntentStart, func(ctx types.Context) error {
		called = true
		return nil
	})

	err := r.Dispatch(types.Context{
		Update: textUpdate("/start"),
		Deps:   &types.Dependencies{Logger: zap.NewNop()},
	})

	require.NoError(t, err)
	assert.False(t, called)
}

func TestHandle_IgnoresInvalidRegistrations(t *testing.T) {
	r := NewRouter()

	r.Handle("", func(ctx types.Context) error { return nil })
	r.Handle(IntentStart, nil)
	r.Use(nil)

	assert.Empty(t, r.routes)
	assert.Empty(t, r.middlewares)
}
