package router

import (
	"kinobot/internal/bot/command"
	"kinobot/internal/bot/keyboard"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Intent идентифицирует распознанное намерение входящего события
type Intent string

// Поддерживаемые интенты
const (
	IntentStart         Intent = "start"
	IntentHome          Intent = "home"
	IntentFavorites     Intent = "favorites"
	IntentFilmsMenu     Intent = "films_menu"
	IntentFilmsCategory Intent = "films_category"
	IntentCinemasPrompt Intent = "cinemas_prompt"
	IntentFilmDetail    Intent = "film_detail"
	IntentCinemaDetail  Intent = "cinema_detail"
	IntentLocation      Intent = "location"
	IntentCallback      Intent = "callback"
	IntentInlineQuery   Intent = "inline_query"
)

// Classify относит событие к одному из интентов. Каждое событие
// классифицируется независимо, только по своему содержимому; состояние
// диалога нигде не хранится. Нераспознанный текст не дает интента:
// это намеренный молчаливый no-op, а не ошибка.
func Classify(update tgbotapi.Update) (Intent, bool) {
	if update.InlineQuery != nil {
		return IntentInlineQuery, true
	}
	if update.CallbackQuery != nil {
		return IntentCallback, true
	}

	msg := update.Message
	if msg == nil {
		return "", false
	}

	if msg.Location != nil {
		return IntentLocation, true
	}

	switch msg.Text {
	case keyboard.LabelFavorites:
		return IntentFavorites, true
	case keyboard.LabelFilms:
		return IntentFilmsMenu, true
	case keyboard.LabelCinemas:
		return IntentCinemasPrompt, true
	case keyboard.LabelBack:
		return IntentHome, true
	}

	if _, ok := keyboard.CategoryByLabel(msg.Text); ok {
		return IntentFilmsCategory, true
	}

	if msg.Text == "/start" {
		return IntentStart, true
	}
	if command.Matches(msg.Text, command.FilmPrefix) {
		return IntentFilmDetail, true
	}
	if command.Matches(msg.Text, command.CinemaPrefix) {
		return IntentCinemaDetail, true
	}

	return "", false
}
