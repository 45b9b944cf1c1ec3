package handlers

import (
	"fmt"

	"kinobot/internal/bot/format"
	"kinobot/internal/bot/keyboard"
	"kinobot/internal/bot/types"
	"kinobot/internal/model"
)

func handleStart(ctx types.Context) error {
	name := "there"
	if from := ctx.From(); from != nil && from.FirstName != "" {
		name = from.FirstName
	}

	text := fmt.Sprintf("Hello, %s\nchoose command for starting", name)
	return ctx.Deps.BotAPI.SendMessageWithMarkup(ctx.ChatID(), text, keyboard.Home())
}

func handleHome(ctx types.Context) error {
	return ctx.Deps.BotAPI.SendMessageWithMarkup(ctx.ChatID(),
		"What would you like to watch?", keyboard.Home())
}

func handleFilmsMenu(ctx types.Context) error {
	return ctx.Deps.BotAPI.SendMessageWithMarkup(ctx.ChatID(),
		"Choose a category..", keyboard.Films())
}

func handleCinemasPrompt(ctx types.Context) error {
	return ctx.Deps.BotAPI.SendMessageWithMarkup(ctx.ChatID(),
		"Send location", keyboard.Cinemas())
}

func handleFilmsCategory(ctx types.Context) error {
	category, ok := keyboard.CategoryByLabel(ctx.Text())
	if !ok {
		return nil
	}

	films, err := ctx.Deps.Films.Find(model.FilmFilter{Type: category})
	if err != nil {
		return err
	}

	return ctx.Deps.BotAPI.SendMessageWithMarkup(ctx.ChatID(),
		format.FilmList(films), keyboard.Films())
}

func handleFavorites(ctx types.Context) error {
	favorites, err := ctx.Deps.Users.GetFavorites(ctx.UserID())
	if err != nil {
		return err
	}

	films, err := ctx.Deps.Films.Find(model.FilmFilter{UUIDs: favorites})
	if err != nil {
		return err
	}

	return ctx.Deps.BotAPI.SendMessageWithMarkup(ctx.ChatID(),
		format.FavoriteList(films), keyboard.Home())
}
