package handlers

import (
	"errors"

	"kinobot/internal/bot/command"
	"kinobot/internal/bot/format"
	"kinobot/internal/bot/types"
	"kinobot/internal/model"

	"go.uber.org/zap"
)

// handleFilmDetail shows a single film: photo with caption and the
// toggle-favorite / show-cinemas / external-link keyboard. A stale
// deep-linked id degrades to an explicit "not found" reply.
func handleFilmDetail(ctx types.Context) error {
	uuid, err := command.Decode(ctx.Text(), command.FilmPrefix)
	if err != nil {
		return err
	}

	film, err := ctx.Deps.Films.GetByUUID(uuid)
	if errors.Is(err, model.ErrNotFound) {
		ctx.Deps.Logger.Info("Deep-linked film no longer exists", zap.String("uuid", uuid))
		return ctx.Deps.BotAPI.SendMessage(ctx.ChatID(), format.MsgFilmGone)
	}
	if err != nil {
		return err
	}

	isFav, err := ctx.Deps.Users.IsFavorite(ctx.UserID(), film.UUID)
	if err != nil {
		return err
	}

	markup, err := format.FilmDetailKeyboard(film, isFav)
	if err != nil {
		return err
	}

	return ctx.Deps.BotAPI.SendPhotoWithMarkup(ctx.ChatID(), film.Picture,
		format.FilmCaption(film), markup)
}

// handleCinemaDetail shows a single cinema with its link, map and
// film-list actions
func handleCinemaDetail(ctx types.Context) error {
	uuid, err := command.Decode(ctx.Text(), command.CinemaPrefix)
	if err != nil {
		return err
	}

	cinema, err := ctx.Deps.Cinemas.GetByUUID(uuid)
	if errors.Is(err, model.ErrNotFound) {
		ctx.Deps.Logger.Info("Deep-linked cinema no longer exists", zap.String("uuid", uuid))
		return ctx.Deps.BotAPI.SendMessage(ctx.ChatID(), format.MsgCinemaGone)
	}
	if err != nil {
		return err
	}

	markup, err := format.CinemaDetailKeyboard(cinema)
	if err != nil {
		return err
	}

	return ctx.Deps.BotAPI.SendMessageWithMarkup(ctx.ChatID(),
		format.CinemaDetailText(cinema), markup)
}
