// Package format renders catalog entities into reply payloads.
package format

import (
	"fmt"
	"strings"

	"kinobot/internal/bot/callback"
	"kinobot/internal/bot/command"
	"kinobot/internal/geo"
	"kinobot/internal/model"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Fallback messages: an empty list is never rendered as an empty body
const (
	MsgNoFavorites = "You have not added to favorites anything"
	MsgNoCinemas   = "No cinema is showing this film"
	MsgNoFilms     = "No films found"
	MsgFilmGone    = "Film not found"
	MsgCinemaGone  = "Cinema not found"
)

// Button labels
const (
	LabelAddFavorite    = "Add to favorites"
	LabelDeleteFavorite = "Delete from Favorites"
	LabelShowCinemas    = "Show cinemas"
	LabelShowOnMap      = "Show on map"
	LabelShowMovies     = "Show movies"
)

// FilmList renders a numbered film list with deep-link commands
func FilmList(films []model.Film) string {
	if len(films) == 0 {
		return MsgNoFilms
	}

	items := make([]string, len(films))
	for i, f := range films {
		items[i] = fmt.Sprintf("%d. %s - %s", i+1, f.Name, command.Encode(command.FilmPrefix, f.UUID))
	}
	return strings.Join(items, "\n")
}

// FavoriteList renders the user's favorite films with ratings
func FavoriteList(films []model.Film) string {
	if len(films) == 0 {
		return MsgNoFavorites
	}

	items := make([]string, len(films))
	for i, f := range films {
		items[i] = fmt.Sprintf("%d. %s - %s (%s)", i+1, f.Name, f.RateString(),
			command.Encode(command.FilmPrefix, f.UUID))
	}
	return strings.Join(items, "\n")
}

// CinemaList renders a plain cinema list (e.g. cinemas showing a film)
func CinemaList(cinemas []model.Cinema) string {
	if len(cinemas) == 0 {
		return MsgNoCinemas
	}

	items := make([]string, len(cinemas))
	for i, c := range cinemas {
		items[i] = fmt.Sprintf("%d. %s - (%s)", i+1, c.Name,
			command.Encode(command.CinemaPrefix, c.UUID))
	}
	return strings.Join(items, "\n")
}

// RankedCinemaList renders cinemas ordered by distance from the user
func RankedCinemaList(ranked []geo.RankedCinema) string {
	if len(ranked) == 0 {
		return MsgNoCinemas
	}

	items := make([]string, len(ranked))
	for i, rc := range ranked {
		items[i] = fmt.Sprintf("%d. %s. Distance - %d km. %s", i+1, rc.Cinema.Name,
			rc.DistanceKm, command.Encode(command.CinemaPrefix, rc.Cinema.UUID))
	}
	return strings.Join(items, "\n")
}

// FilmCaption renders the detail caption of a single film
func FilmCaption(film *model.Film) string {
	return fmt.Sprintf("Name: %s\nYear: %d\nRating: %s\nLength: %d\nCountry: %s",
		film.Name, film.Year, film.RateString(), film.Length, film.Country)
}

// FilmDetailKeyboard builds the inline keyboard of the film detail view:
// toggle favorite, show cinemas, external link.
func FilmDetailKeyboard(film *model.Film, isFav bool) (tgbotapi.InlineKeyboardMarkup, error) {
	favLabel := LabelAddFavorite
	if isFav {
		favLabel = LabelDeleteFavorite
	}

	favData, err := callback.Encode(callback.ToggleFavorite{FilmUUID: film.UUID, IsFav: isFav})
	if err != nil {
		return tgbotapi.InlineKeyboardMarkup{}, err
	}
	cinemasData, err := callback.Encode(callback.ShowCinemas{CinemaUUIDs: film.Cinemas})
	if err != nil {
		return tgbotapi.InlineKeyboardMarkup{}, err
	}

	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(favLabel, favData),
			tgbotapi.NewInlineKeyboardButtonData(LabelShowCinemas, cinemasData),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonURL(fmt.Sprintf("link to Kinopoisk %s", film.Name), film.Link),
		),
	), nil
}

// CinemaDetailText renders the detail text of a single cinema
func CinemaDetailText(cinema *model.Cinema) string {
	return fmt.Sprintf("Cinema %s", cinema.Name)
}

// CinemaDetailKeyboard builds the inline keyboard of the cinema detail
// view: external link, show on map, show movies.
func CinemaDetailKeyboard(cinema *model.Cinema) (tgbotapi.InlineKeyboardMarkup, error) {
	mapData, err := callback.Encode(callback.ShowCinemasMap{Lat: cinema.Lat, Lon: cinema.Lon})
	if err != nil {
		return tgbotapi.InlineKeyboardMarkup{}, err
	}
	filmsData, err := callback.Encode(callback.ShowFilms{FilmUUIDs: cinema.Films})
	if err != nil {
		return tgbotapi.InlineKeyboardMarkup{}, err
	}

	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonURL(cinema.Name, cinema.URL),
			tgbotapi.NewInlineKeyboardButtonData(LabelShowOnMap, mapData),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(LabelShowMovies, filmsData),
		),
	), nil
}

// InlineFilmResult builds an inline query result for a film
func InlineFilmResult(film model.Film) tgbotapi.InlineQueryResultPhoto {
	result := tgbotapi.NewInlineQueryResultPhoto(film.UUID, film.Picture)
	result.ThumbURL = film.Picture
	result.Caption = FilmCaption(&film)
	result.ReplyMarkup = &tgbotapi.InlineKeyboardMarkup{
		InlineKeyboard: [][]tgbotapi.InlineKeyboardButton{
			{tgbotapi.NewInlineKeyboardButtonURL(fmt.Sprintf("Kinopoisk %s", film.Name), film.Link)},
		},
	}
	return result
}
