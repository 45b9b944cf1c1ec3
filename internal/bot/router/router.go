// Package router classifies incoming updates and dispatches them to
// intent handlers.
package router

import (
	"fmt"
	"sync"
	"time"

	"kinobot/internal/bot/types"

	"go.uber.org/zap"
)

// Router manages intent routes and middleware
type Router struct {
	routes      map[Intent]types.HandlerFunc
	middlewares []types.Middleware
	metrics     *Metrics
	mu          sync.RWMutex
}

// Metrics содержит метрики роутера
type Metrics struct {
	mu             sync.RWMutex
	totalRequests  int64
	totalErrors    int64
	totalDuration  time.Duration
	intentRequests map[Intent]int64
	intentErrors   map[Intent]int64
}

// NewMetrics создает новые метрики роутера
func NewMetrics() *Metrics {
	return &Metrics{
		intentRequests: make(map[Intent]int64),
		intentErrors:   make(map[Intent]int64),
	}
}

// NewRouter creates a new Router instance
func NewRouter() *Router {
	return &Router{
		routes:  make(map[Intent]types.HandlerFunc),
		metrics: NewMetrics(),
	}
}

// Use adds a middleware to the router
func (r *Router) Use(middleware types.Middleware) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if middleware == nil {
		return
	}

	r.middlewares = append(r.middlewares, middleware)
}

// Handle registers an intent handler
func (r *Router) Handle(intent Intent, handler types.HandlerFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if intent == "" || handler == nil {
		return
	}

	r.routes[intent] = handler
}

// Dispatch classifies the update and dispatches it to its handler.
// Unrecognized events are dropped silently.
func (r *Router) Dispatch(ctx types.Context) error {
	intent, ok := Classify(ctx.Update)
	if !ok {
		ctx.Deps.Logger.Debug("Unrecognized update, ignoring",
			zap.Int("update_id", ctx.UpdateID),
			zap.String("text", ctx.Text()))
		return nil
	}

	startTime := time.Now()

	r.mu.RLock()
	handler, registered := r.routes[intent]
	middlewares := make([]types.Middleware, len(r.middlewares))
	copy(middlewares, r.middlewares)
	r.mu.RUnlock()

	if !registered {
		r.updateMetrics(intent, time.Since(startTime), true)
		return types.NewIntentError(string(intent), ctx.UserID(), ctx.ChatID(), types.ErrNoHandler)
	}

	currentHandler := r.wrapHandlerWithPanicRecovery(handler, intent, ctx.Deps.Logger)
	for i := len(middlewares) - 1; i >= 0; i-- {
		mw := middlewares[i]
		currentHandler = r.wrapWithMiddleware(currentHandler, mw)
	}

	err := currentHandler(ctx)
	r.updateMetrics(intent, time.Since(startTime), err != nil)

	if err != nil {
		return types.NewIntentError(string(intent), ctx.UserID(), ctx.ChatID(), err)
	}

	return nil
}

// wrapHandlerWithPanicRecovery оборачивает обработчик для защиты от паники
func (r *Router) wrapHandlerWithPanicRecovery(handler types.HandlerFunc, intent Intent, logger *zap.Logger) types.HandlerFunc {
	return func(ctx types.Context) (err error) {
		defer func() {
			if panicErr := recover(); panicErr != nil {
				logger.Error("Handler panic recovered",
					zap.String("intent", string(intent)),
					zap.Int64("user_id", ctx.UserID()),
					zap.Int64("chat_id", ctx.ChatID()),
					zap.Any("panic", panicErr))

				err = fmt.Errorf("handler panicked: %v", panicErr)
			}
		}()

		return handler(ctx)
	}
}

// wrapWithMiddleware оборачивает обработчик в middleware
func (r *Router) wrapWithMiddleware(handler types.HandlerFunc, mw types.Middleware) types.HandlerFunc {
	return func(ctx types.Context) error {
		return mw(ctx, handler)
	}
}

// updateMetrics обновляет метрики роутера
func (r *Router) updateMetrics(intent Intent, duration time.Duration, isError bool) {
	r.metrics.mu.Lock()
	defer r.metrics.mu.Unlock()

	r.metrics.totalRequests++
	r.metrics.totalDuration += duration
	r.metrics.intentRequests[intent]++

	if isError {
		r.metrics.totalErrors++
		r.metrics.intentErrors[intent]++
	}
}

// GetMetrics возвращает копию метрик роутера
func (r *Router) GetMetrics() *Metrics {
	r.metrics.mu.RLock()
	defer r.metrics.mu.RUnlock()

	metrics := Metrics{
		totalRequests:  r.metrics.totalRequests,
		totalErrors:    r.metrics.totalErrors,
		totalDuration:  r.metrics.totalDuration,
		intentRequests: make(map[Intent]int64),
		intentErrors:   make(map[Intent]int64),
	}

	for k, v := range r.metrics.intentRequests {
		metrics.intentRequests[k] = v
	}
	for k, v := range r.metrics.intentErrors {
		metrics.intentErrors[k] = v
	}

	return &metrics
}

// TotalRequests возвращает число обработанных событий
func (m *Metrics) TotalRequests() int64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.totalRequests
}

// TotalErrors возвращает число ошибок обработки
func (m *Metrics) TotalErrors() int64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.totalErrors
}

// IntentRequests возвращает число событий по интенту
func (m *Metrics) IntentRequests(intent Intent) int64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.intentRequests[intent]
}
