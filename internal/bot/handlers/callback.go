package handlers

import (
	"fmt"

	"kinobot/internal/bot/callback"
	"kinobot/internal/bot/format"
	"kinobot/internal/bot/keyboard"
	"kinobot/internal/bot/types"
	"kinobot/internal/model"
)

// Callback answer texts for the favorite toggle
const (
	answerAdded   = "Added"
	answerDeleted = "Deleted"
)

// handleCallback decodes the callback payload and dispatches on its
// action. A payload that fails to decode is a protocol error: it is
// logged by the error middleware and the event is dropped.
func handleCallback(ctx types.Context) error {
	query := ctx.Update.CallbackQuery

	payload, err := callback.Decode(query.Data)
	if err != nil {
		return err
	}

	switch p := payload.(type) {
	case callback.ToggleFavorite:
		return toggleFavorite(ctx, query.ID, p)

	case callback.ShowCinemasMap:
		return ctx.Deps.BotAPI.SendLocation(ctx.ChatID(), p.Lat, p.Lon)

	case callback.ShowCinemas:
		cinemas, err := ctx.Deps.Cinemas.Find(model.CinemaFilter{UUIDs: p.CinemaUUIDs})
		if err != nil {
			return err
		}
		return ctx.Deps.BotAPI.SendMessageWithMarkup(ctx.ChatID(),
			format.CinemaList(cinemas), keyboard.Home())

	case callback.ShowFilms:
		films, err := ctx.Deps.Films.Find(model.FilmFilter{UUIDs: p.FilmUUIDs})
		if err != nil {
			return err
		}
		return ctx.Deps.BotAPI.SendMessageWithMarkup(ctx.ChatID(),
			format.FilmList(films), keyboard.Home())

	default:
		return fmt.Errorf("%w: unhandled action %q", callback.ErrProtocol, payload.Action())
	}
}

// toggleFavorite flips the film's membership in the user's favorites
// and answers with an ephemeral confirmation reflecting the new state
func toggleFavorite(ctx types.Context, queryID string, p callback.ToggleFavorite) error {
	added, err := ctx.Deps.Users.ToggleFavorite(ctx.UserID(), p.FilmUUID)
	if err != nil {
		return err
	}

	answer := answerDeleted
	if added {
		answer = answerAdded
	}

	return ctx.Deps.BotAPI.AnswerCallback(queryID, answer)
}
