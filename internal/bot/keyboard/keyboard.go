// Package keyboard содержит reply-клавиатуры и подписи меню бота.
package keyboard

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Подписи кнопок главного меню и меню категорий
const (
	LabelFavorites = "Favorite films"
	LabelFilms     = "Films"
	LabelCinemas   = "Cinemas"
	LabelBack      = "Back"
	LabelLocation  = "Send location"
)

// Категории каталога в порядке меню
var categories = []string{"comedy", "action", "random"}

var titleCaser = cases.Title(language.English)

// Home возвращает клавиатуру главного меню
func Home() tgbotapi.ReplyKeyboardMarkup {
	kb := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(LabelFilms),
			tgbotapi.NewKeyboardButton(LabelCinemas),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(LabelFavorites),
		),
	)
	kb.ResizeKeyboard = true
	return kb
}

// Films возвращает клавиатуру категорий фильмов
func Films() tgbotapi.ReplyKeyboardMarkup {
	row := make([]tgbotapi.KeyboardButton, 0, len(categories))
	for _, c := range categories {
		row = append(row, tgbotapi.NewKeyboardButton(CategoryLabel(c)))
	}

	kb := tgbotapi.NewReplyKeyboard(
		row,
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(LabelBack),
		),
	)
	kb.ResizeKeyboard = true
	return kb
}

// Cinemas возвращает клавиатуру с кнопкой отправки геопозиции
func Cinemas() tgbotapi.ReplyKeyboardMarkup {
	kb := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButtonLocation(LabelLocation),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(LabelBack),
		),
	)
	kb.ResizeKeyboard = true
	return kb
}

// CategoryLabel возвращает подпись кнопки категории
func CategoryLabel(category string) string {
	return titleCaser.String(category)
}

// CategoryByLabel возвращает тег категории по подписи кнопки.
// Для категории random возвращается пустой тег: это выборка без фильтра.
func CategoryByLabel(label string) (string, bool) {
	for _, c := range categories {
		if CategoryLabel(c) == label {
			if c == "random" {
				return "", true
			}
			return c, true
		}
	}
	return "", false
}
