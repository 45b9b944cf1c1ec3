package router

import (
	"testing"

	"kinobot/internal/bot/keyboard"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
)

func textUpdate(text string) tgbotapi.Update {
	return tgbotapi.Update{
		Message: &tgbotapi.Message{
			Text: text,
			Chat: &tgbotapi.Chat{ID: 1},
			From: &tgbotapi.User{ID: 99},
		},
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		update tgbotapi.Update
		want   Intent
		wantOk bool
	}{
		{name: "start", update: textUpdate("/start"), want: IntentStart, wantOk: true},
		{name: "back", update: textUpdate(keyboard.LabelBack), want: IntentHome, wantOk: true},
		{name: "favorites", update: textUpdate(keyboard.LabelFavorites), want: IntentFavorites, wantOk: true},
		{name: "films menu", update: textUpdate(keyboard.LabelFilms), want: IntentFilmsMenu, wantOk: true},
		{name: "cinemas prompt", update: textUpdate(keyboard.LabelCinemas), want: IntentCinemasPrompt, wantOk: true},
		{name: "comedy category", update: textUpdate("Comedy"), want: IntentFilmsCategory, wantOk: true},
		{name: "action category", update: textUpdate("Action"), want: IntentFilmsCategory, wantOk: true},
		{name: "random category", update: textUpdate("Random"), want: IntentFilmsCategory, wantOk: true},
		{name: "film deep link", update: textUpdate("/f42"), want: IntentFilmDetail, wantOk: true},
		{name: "cinema deep link", update: textUpdate("/c77"), want: IntentCinemaDetail, wantOk: true},
		{
			name: "location",
			update: tgbotapi.Update{Message: &tgbotapi.Message{
				Location: &tgbotapi.Location{Latitude: 55, Longitude: 37},
				Chat:     &tgbotapi.Chat{ID: 1},
			}},
			want:   IntentLocation,
			wantOk: true,
		},
		{
			name:   "callback",
			update: tgbotapi.Update{CallbackQuery: &tgbotapi.CallbackQuery{ID: "cb"}},
			want:   IntentCallback,
			wantOk: true,
		},
		{
			name:   "inline query",
			update: tgbotapi.Update{InlineQuery: &tgbotapi.InlineQuery{ID: "iq"}},
			want:   IntentInlineQuery,
			wantOk: true,
		},
		{name: "unknown text is silent", update: textUpdate("hello bot"), wantOk: false},
		{name: "bare film prefix", update: textUpdate("/f"), wantOk: false},
		{name: "empty update", update: tgbotapi.Update{}, wantOk: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Classify(tt.update)
			assert.Equal(t, tt.wantOk, ok)
			if tt.wantOk {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
