package botapi

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// BotAPI defines the interface for interacting with Telegram API
type BotAPI interface {
	SendMessage(chatID int64, text string) error
	SendMessageWithMarkup(chatID int64, text string, markup any) error
	SendPhotoWithMarkup(chatID int64, photoURL, caption string, markup any) error
	SendLocation(chatID int64, lat, lon float64) error
	AnswerCallback(callbackID, text string) error
	AnswerInlineQuery(queryID string, results []any, cacheSeconds int) error
	SetBotCommands(commands []tgbotapi.BotCommand) error
}

// TelegramBotAPI wraps tgbotapi.BotAPI to implement the BotAPI interface
type TelegramBotAPI struct {
	api    *tgbotapi.BotAPI
	logger *zap.Logger
}

var _ BotAPI = (*TelegramBotAPI)(nil)

// NewTelegramBotAPI creates a new TelegramBotAPI instance
func NewTelegramBotAPI(api *tgbotapi.BotAPI, logger *zap.Logger) *TelegramBotAPI {
	return &TelegramBotAPI{
		api:    api,
		logger: logger,
	}
}

// GetAPI returns the underlying tgbotapi.BotAPI instance
func (t *TelegramBotAPI) GetAPI() *tgbotapi.BotAPI {
	return t.api
}

// SendMessage sends a simple text message
func (t *TelegramBotAPI) SendMessage(chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	_, err := t.api.Send(msg)
	if err != nil {
		t.logger.Error("Failed to send message", zap.Int64("chat_id", chatID), zap.Error(err))
	}
	return err
}

// SendMessageWithMarkup sends a message with a reply markup
func (t *TelegramBotAPI) SendMessageWithMarkup(chatID int64, text string, markup any) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = markup
	msg.DisableWebPagePreview = true
	_, err := t.api.Send(msg)
	if err != nil {
		t.logger.Error("Failed to send message with markup", zap.Int64("chat_id", chatID), zap.Error(err))
	}
	return err
}

// SendPhotoWithMarkup sends a photo by URL with a caption and markup
func (t *TelegramBotAPI) SendPhotoWithMarkup(chatID int64, photoURL, caption string, markup any) error {
	photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileURL(photoURL))
	photo.Caption = caption
	photo.ReplyMarkup = markup
	_, err := t.api.Send(photo)
	if err != nil {
		t.logger.Error("Failed to send photo", zap.Int64("chat_id", chatID), zap.Error(err))
	}
	return err
}

// SendLocation sends a map location
func (t *TelegramBotAPI) SendLocation(chatID int64, lat, lon float64) error {
	loc := tgbotapi.NewLocation(chatID, lat, lon)
	_, err := t.api.Send(loc)
	if err != nil {
		t.logger.Error("Failed to send location", zap.Int64("chat_id", chatID), zap.Error(err))
	}
	return err
}

// AnswerCallback answers a callback query with an ephemeral notification
func (t *TelegramBotAPI) AnswerCallback(callbackID, text string) error {
	_, err := t.api.Request(tgbotapi.NewCallback(callbackID, text))
	if err != nil {
		t.logger.Error("Failed to answer callback", zap.String("callback_id", callbackID), zap.Error(err))
	}
	return err
}

// AnswerInlineQuery answers an inline query with selectable results
func (t *TelegramBotAPI) AnswerInlineQuery(queryID string, results []any, cacheSeconds int) error {
	_, err := t.api.Request(tgbotapi.InlineConfig{
		InlineQueryID: queryID,
		Results:       results,
		CacheTime:     cacheSeconds,
	})
	if err != nil {
		t.logger.Error("Failed to answer inline query", zap.String("query_id", queryID), zap.Error(err))
	}
	return err
}

// SetBotCommands sets the bot's command menu
func (t *TelegramBotAPI) SetBotCommands(commands []tgbotapi.BotCommand) error {
	_, err := t.api.Request(tgbotapi.NewSetMyCommands(commands...))
	if err != nil {
		t.logger.Error("Failed to set bot commands", zap.Error(err))
	}
	return err
}
