package handlers

import (
	"kinobot/internal/bot/format"
	"kinobot/internal/bot/types"
	"kinobot/internal/model"
)

// handleInlineQuery answers an inline query with catalog films as
// selectable photo results. Cache time is zero: results are always
// revalidated.
func handleInlineQuery(ctx types.Context) error {
	query := ctx.Update.InlineQuery

	films, err := ctx.Deps.Films.Find(model.FilmFilter{})
	if err != nil {
		return err
	}

	limit := ctx.Deps.Config.InlineResultLimit
	if len(films) > limit {
		films = films[:limit]
	}

	results := make([]any, 0, len(films))
	for _, film := range films {
		results = append(results, format.InlineFilmResult(film))
	}

	return ctx.Deps.BotAPI.AnswerInlineQuery(query.ID, results, 0)
}
