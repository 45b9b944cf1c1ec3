package format

import (
	"strings"
	"testing"

	"kinobot/internal/geo"
	"kinobot/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var matrix = model.Film{
	UUID:    "42",
	Name:    "Matrix",
	Type:    "action",
	Year:    1999,
	Rate:    8.7,
	Length:  136,
	Country: "USA",
	Picture: "https://example.com/matrix.jpg",
	Link:    "https://kinopoisk.example/matrix",
	Cinemas: []string{"c1", "c2"},
}

func TestFilmList(t *testing.T) {
	films := []model.Film{matrix, {UUID: "7", Name: "Alien"}}

	got := FilmList(films)

	lines := strings.Split(got, "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "1. Matrix - /f42", lines[0])
	assert.Equal(t, "2. Alien - /f7", lines[1])
}

func TestFilmList_EmptyFallback(t *testing.T) {
	assert.Equal(t, MsgNoFilms, FilmList(nil))
	assert.Equal(t, MsgNoFilms, FilmList([]model.Film{}))
}

func TestFavoriteList(t *testing.T) {
	got := FavoriteList([]model.Film{matrix})
	assert.Equal(t, "1. Matrix - 8.7 (/f42)", got)
}

func TestFavoriteList_EmptyFallback(t *testing.T) {
	// Пустое избранное никогда не рендерится пустым телом
	assert.Equal(t, MsgNoFavorites, FavoriteList(nil))
}

func TestCinemaList(t *testing.T) {
	cinemas := []model.Cinema{{UUID: "77", Name: "Oktyabr"}}
	assert.Equal(t, "1. Oktyabr - (/c77)", CinemaList(cinemas))
}

func TestCinemaList_EmptyFallback(t *testing.T) {
	assert.Equal(t, MsgNoCinemas, CinemaList(nil))
}

func TestRankedCinemaList(t *testing.T) {
	ranked := []geo.RankedCinema{
		{Cinema: model.Cinema{UUID: "a", Name: "Near"}, DistanceKm: 2},
		{Cinema: model.Cinema{UUID: "b", Name: "Far"}, DistanceKm: 5},
	}

	got := RankedCinemaList(ranked)

	lines := strings.Split(got, "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "1. Near. Distance - 2 km. /ca", lines[0])
	assert.Equal(t, "2. Far. Distance - 5 km. /cb", lines[1])
}

func TestRankedCinemaList_EmptyFallback(t *testing.T) {
	assert.Equal(t, MsgNoCinemas, RankedCinemaList(nil))
}

func TestFilmCaption(t *testing.T) {
	got := FilmCaption(&matrix)

	assert.Contains(t, got, "Matrix")
	assert.Contains(t, got, "1999")
	assert.Contains(t, got, "8.7")
	assert.Contains(t, got, "136")
	assert.Contains(t, got, "USA")
	assert.NotContains(t, got, "8.70")
}

func TestFilmDetailKeyboard(t *testing.T) {
	tests := []struct {
		name      string
		isFav     bool
		wantLabel string
	}{
		{name: "not favorite", isFav: false, wantLabel: LabelAddFavorite},
		{name: "favorite", isFav: true, wantLabel: LabelDeleteFavorite},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			markup, err := FilmDetailKeyboard(&matrix, tt.isFav)
			require.NoError(t, err)

			require.Len(t, markup.InlineKeyboard, 2)
			require.Len(t, markup.InlineKeyboard[0], 2)
			assert.Equal(t, tt.wantLabel, markup.InlineKeyboard[0][0].Text)
			assert.Equal(t, LabelShowCinemas, markup.InlineKeyboard[0][1].Text)

			link := markup.InlineKeyboard[1][0]
			require.NotNil(t, link.URL)
			assert.Equal(t, matrix.Link, *link.URL)
		})
	}
}

func TestCinemaDetailKeyboard(t *testing.T) {
	cinema := model.Cinema{
		UUID:  "77",
		Name:  "Oktyabr",
		Lat:   55.75,
		Lon:   37.62,
		URL:   "https://example.com/oktyabr",
		Films: []string{"42"},
	}

	assert.Equal(t, "Cinema Oktyabr", CinemaDetailText(&cinema))

	markup, err := CinemaDetailKeyboard(&cinema)
	require.NoError(t, err)

	require.Len(t, markup.InlineKeyboard, 2)
	require.Len(t, markup.InlineKeyboard[0], 2)
	assert.Equal(t, cinema.Name, markup.InlineKeyboard[0][0].Text)
	assert.Equal(t, LabelShowOnMap, markup.InlineKeyboard[0][1].Text)
	assert.Equal(t, LabelShowMovies, markup.InlineKeyboard[1][0].Text)
}

func TestInlineFilmResult(t *testing.T) {
	result := InlineFilmResult(matrix)

	assert.Equal(t, matrix.UUID, result.ID)
	assert.Equal(t, matrix.Picture, result.URL)
	assert.Equal(t, matrix.Picture, result.ThumbURL)
	assert.Contains(t, result.Caption, "Matrix")
	require.NotNil(t, result.ReplyMarkup)
}
