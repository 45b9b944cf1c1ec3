// Package middleware содержит middleware роутера.
package middleware

import (
	"errors"
	"fmt"
	"time"

	"kinobot/internal/bot/callback"
	"kinobot/internal/bot/types"

	"go.uber.org/zap"
)

// LogRequest logs incoming events with context
func LogRequest(ctx types.Context, next types.HandlerFunc) error {
	startTime := time.Now()
	requestID := fmt.Sprintf("%d-%d", ctx.UpdateID, startTime.UnixNano())
	user := types.GetUserIdentifier(ctx.From())

	ctx.Deps.Logger.Info("Processing event",
		zap.String("request_id", requestID),
		zap.Int64("chat_id", ctx.ChatID()),
		zap.String("user", user),
		zap.Int("update_id", ctx.UpdateID))

	err := next(ctx)

	duration := time.Since(startTime)
	if err != nil {
		ctx.Deps.Logger.Error("Event completed with error",
			zap.String("request_id", requestID),
			zap.Duration("duration", duration),
			zap.Error(err))
	} else {
		ctx.Deps.Logger.Info("Event completed successfully",
			zap.String("request_id", requestID),
			zap.Duration("duration", duration))
	}

	return err
}

// ErrorHandler converts handler failures into the logging policy:
// malformed callback payloads and storage failures are logged and the
// event is dropped without a user-visible reply. Handlers deal with
// NotFound themselves before errors reach this point.
func ErrorHandler(ctx types.Context, next types.HandlerFunc) error {
	err := next(ctx)
	if err == nil {
		return nil
	}

	user := types.GetUserIdentifier(ctx.From())

	if errors.Is(err, callback.ErrProtocol) {
		ctx.Deps.Logger.Warn("Malformed callback payload, event dropped",
			zap.Int64("chat_id", ctx.ChatID()),
			zap.String("user", user),
			zap.Int("update_id", ctx.UpdateID),
			zap.Error(err))
		return nil
	}

	ctx.Deps.Logger.Error("Event failed, no reply sent",
		zap.Int64("chat_id", ctx.ChatID()),
		zap.String("user", user),
		zap.Int("update_id", ctx.UpdateID),
		zap.Error(err))

	return err
}

// RateLimit drops events from users exceeding the limiter window
func RateLimit(limiter RateLimiterInterface) types.Middleware {
	return func(ctx types.Context, next types.HandlerFunc) error {
		if !limiter.AllowRequest(ctx.UserID()) {
			ctx.Deps.Logger.Warn("Rate limit exceeded, event dropped",
				zap.Int64("user_id", ctx.UserID()),
				zap.Int("update_id", ctx.UpdateID))
			return nil
		}
		return next(ctx)
	}
}
