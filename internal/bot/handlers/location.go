package handlers

import (
	"kinobot/internal/bot/format"
	"kinobot/internal/bot/keyboard"
	"kinobot/internal/bot/types"
	"kinobot/internal/geo"
	"kinobot/internal/model"
)

// handleLocation ranks all cinemas by distance from the shared
// coordinate and shows them closest first
func handleLocation(ctx types.Context) error {
	location := ctx.Update.Message.Location

	cinemas, err := ctx.Deps.Cinemas.Find(model.CinemaFilter{})
	if err != nil {
		return err
	}

	ranked := geo.RankByDistance(location.Latitude, location.Longitude, cinemas)

	return ctx.Deps.BotAPI.SendMessageWithMarkup(ctx.ChatID(),
		format.RankedCinemaList(ranked), keyboard.Home())
}
