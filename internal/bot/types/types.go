// Package types contains the shared types of the Telegram bot.
package types

import (
	"errors"
	"fmt"
	"strings"

	"kinobot/internal/bot/botapi"
	"kinobot/internal/config"
	"kinobot/internal/model"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// Стандартные ошибки бота
var (
	ErrNoHandler = errors.New("no handler for intent")
)

// HandlerFunc defines an intent handler function
type HandlerFunc func(ctx Context) error

// Middleware defines a middleware function
type Middleware func(ctx Context, next HandlerFunc) error

// Dependencies holds all bot dependencies. There is no ambient state:
// every handler receives its collaborators through this struct.
type Dependencies struct {
	BotAPI  botapi.BotAPI
	Logger  *zap.Logger
	Config  *config.Config
	Films   model.FilmRepository
	Cinemas model.CinemaRepository
	Users   model.UserRepository
}

// Context holds the context for intent handlers
type Context struct {
	Update   tgbotapi.Update
	UpdateID int
	Deps     *Dependencies
}

// ChatID returns the chat the event originated from, 0 for events
// without a chat (inline queries)
func (c Context) ChatID() int64 {
	switch {
	case c.Update.Message != nil:
		return c.Update.Message.Chat.ID
	case c.Update.CallbackQuery != nil && c.Update.CallbackQuery.Message != nil:
		return c.Update.CallbackQuery.Message.Chat.ID
	}
	return 0
}

// UserID returns the Telegram id of the user behind the event
func (c Context) UserID() int64 {
	switch {
	case c.Update.Message != nil && c.Update.Message.From != nil:
		return c.Update.Message.From.ID
	case c.Update.CallbackQuery != nil && c.Update.CallbackQuery.From != nil:
		return c.Update.CallbackQuery.From.ID
	case c.Update.InlineQuery != nil && c.Update.InlineQuery.From != nil:
		return c.Update.InlineQuery.From.ID
	}
	return 0
}

// Text returns the message text, empty for non-message events
func (c Context) Text() string {
	if c.Update.Message != nil {
		return c.Update.Message.Text
	}
	return ""
}

// From returns the user behind the event
func (c Context) From() *tgbotapi.User {
	switch {
	case c.Update.Message != nil:
		return c.Update.Message.From
	case c.Update.CallbackQuery != nil:
		return c.Update.CallbackQuery.From
	case c.Update.InlineQuery != nil:
		return c.Update.InlineQuery.From
	}
	return nil
}

// IntentError represents a failed intent dispatch
type IntentError struct {
	Intent string
	UserID int64
	ChatID int64
	Err    error
}

func (e *IntentError) Error() string {
	return fmt.Sprintf("intent %s failed for user %d in chat %d: %v",
		e.Intent, e.UserID, e.ChatID, e.Err)
}

func (e *IntentError) Unwrap() error {
	return e.Err
}

// NewIntentError создает новую ошибку обработки интента
func NewIntentError(intent string, userID, chatID int64, err error) *IntentError {
	return &IntentError{
		Intent: intent,
		UserID: userID,
		ChatID: chatID,
		Err:    err,
	}
}

// SetBotCommands sets the bot's command menu
func (d *Dependencies) SetBotCommands() error {
	commands := []tgbotapi.BotCommand{
		{Command: "/start", Description: "Show the home menu"},
	}
	if err := d.BotAPI.SetBotCommands(commands); err != nil {
		return err
	}
	d.Logger.Info("Bot commands set successfully")
	return nil
}

// GetUserIdentifier returns the username (if available) or name of the user
func GetUserIdentifier(user *tgbotapi.User) string {
	if user == nil {
		return "unknown"
	}
	if user.UserName != "" {
		return "@" + user.UserName
	}
	nameParts := []string{}
	if user.FirstName != "" {
		nameParts = append(nameParts, user.FirstName)
	}
	if user.LastName != "" {
		nameParts = append(nameParts, user.LastName)
	}
	if len(nameParts) > 0 {
		return strings.Join(nameParts, " ")
	}
	return "unknown"
}
