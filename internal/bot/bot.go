// Package bot содержит основную логику Telegram-бота.
package bot

import (
	"context"
	"fmt"
	"sync"
	"time"

	"kinobot/internal/bot/botapi"
	"kinobot/internal/bot/handlers"
	"kinobot/internal/bot/middleware"
	"kinobot/internal/bot/router"
	"kinobot/internal/bot/types"
	"kinobot/internal/bot/worker"
	"kinobot/internal/config"
	"kinobot/internal/model"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// Bot represents the main bot instance
type Bot struct {
	api         *tgbotapi.BotAPI
	logger      *zap.Logger
	config      *config.Config
	router      *router.Router
	deps        *types.Dependencies
	workerPool  *worker.Pool
	rateLimiter *middleware.RateLimiter
	stopChan    chan struct{}
	stopOnce    sync.Once
	wg          sync.WaitGroup
	ctx         context.Context
	cancel      context.CancelFunc
}

// New creates a new Bot instance
func New(cfg *config.Config, logger *zap.Logger, films model.FilmRepository,
	cinemas model.CinemaRepository, users model.UserRepository) (*Bot, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}

	api, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram client: %w", err)
	}

	deps := &types.Dependencies{
		BotAPI:  botapi.NewTelegramBotAPI(api, logger),
		Logger:  logger,
		Config:  cfg,
		Films:   films,
		Cinemas: cinemas,
		Users:   users,
	}

	r := router.NewRouter()
	r.Use(middleware.LogRequest)
	r.Use(middleware.ErrorHandler)

	var rateLimiter *middleware.RateLimiter
	if cfg.RateLimitEnabled {
		rateLimiter = middleware.NewRateLimiter(cfg.RateLimitRequests, cfg.RateLimitWindow, logger)
		r.Use(middleware.RateLimit(rateLimiter))
	}

	logger.Info("Initializing intent routes")
	handlers.RegisterRoutes(r)

	ctx, cancel := context.WithCancel(context.Background())

	return &Bot{
		api:         api,
		logger:      logger,
		config:      cfg,
		router:      r,
		deps:        deps,
		workerPool:  worker.NewPool(cfg.WorkerPoolSize, cfg.WorkerQueueSize, logger),
		rateLimiter: rateLimiter,
		stopChan:    make(chan struct{}),
		ctx:         ctx,
		cancel:      cancel,
	}, nil
}

// Start runs the bot until the context is cancelled
func (b *Bot) Start(ctx context.Context) error {
	b.workerPool.Start()
	defer b.workerPool.Stop()

	if b.rateLimiter != nil {
		b.wg.Add(1)
		go func() {
			defer b.wg.Done()
			ticker := time.NewTicker(b.config.RateLimitWindow)
			defer ticker.Stop()

			for {
				select {
				case <-ticker.C:
					b.rateLimiter.Cleanup()
				case <-b.ctx.Done():
					return
				case <-b.stopChan:
					return
				}
			}
		}()
	}

	go func() {
		select {
		case <-ctx.Done():
			b.cancel()
		case <-b.ctx.Done():
		}
	}()

	b.logger.Info("Bot started", zap.String("username", b.api.Self.UserName))

	if err := b.deps.SetBotCommands(); err != nil {
		b.logger.Warn("Failed to set bot commands", zap.Error(err))
	}

	u := tgbotapi.NewUpdate(0)
	u.Timeout = int(b.config.UpdateTimeout.Seconds())
	u.AllowedUpdates = []string{"message", "callback_query", "inline_query"}

	updatesChan := b.api.GetUpdatesChan(u)

	for {
		select {
		case <-b.ctx.Done():
			b.logger.Info("Update loop cancelled by context")
			return b.ctx.Err()
		case <-b.stopChan:
			b.logger.Info("Update loop stopped by stop signal")
			return nil
		case update, ok := <-updatesChan:
			if !ok {
				return fmt.Errorf("update channel closed")
			}
			b.processUpdate(update)
		}
	}
}

// processUpdate submits one update to the worker pool; on queue
// overflow the update is processed synchronously as a fallback
func (b *Bot) processUpdate(update tgbotapi.Update) {
	select {
	case <-b.ctx.Done():
		return
	default:
	}

	ctx := types.Context{
		Update:   update,
		UpdateID: update.UpdateID,
		Deps:     b.deps,
	}

	job := worker.Job{
		UpdateID: update.UpdateID,
		UserID:   ctx.UserID(),
		Intent:   updateType(update),
		Handler: func() error {
			return b.router.Dispatch(ctx)
		},
	}

	if err := b.workerPool.Submit(job); err != nil {
		b.logger.Warn("Failed to submit job, processing synchronously",
			zap.Int("update_id", update.UpdateID),
			zap.Error(err))
		if err := b.router.Dispatch(ctx); err != nil {
			b.logger.Error("Failed to dispatch update",
				zap.Int("update_id", update.UpdateID),
				zap.Error(err))
		}
	}
}

// Stop gracefully stops the bot
func (b *Bot) Stop() {
	b.logger.Info("Stopping bot gracefully")

	b.cancel()
	b.stopOnce.Do(func() {
		close(b.stopChan)
	})

	done := make(chan struct{})
	go func() {
		defer close(done)
		b.wg.Wait()
	}()

	select {
	case <-done:
		b.logger.Info("All goroutines stopped successfully")
	case <-time.After(b.config.GracefulShutdownTimeout):
		b.logger.Warn("Graceful shutdown timeout exceeded, forcing stop")
	}
}

// updateType определяет тип обновления для логов и метрик пула
func updateType(update tgbotapi.Update) string {
	switch {
	case update.CallbackQuery != nil:
		return "callback_query"
	case update.InlineQuery != nil:
		return "inline_query"
	case update.Message != nil && update.Message.Location != nil:
		return "location"
	default:
		return "message"
	}
}
