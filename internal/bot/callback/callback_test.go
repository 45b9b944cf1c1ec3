package callback

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		payload Payload
	}{
		{name: "toggle favorite add", payload: ToggleFavorite{FilmUUID: "42", IsFav: false}},
		{name: "toggle favorite delete", payload: ToggleFavorite{FilmUUID: "42", IsFav: true}},
		{name: "show cinemas", payload: ShowCinemas{CinemaUUIDs: []string{"1", "2", "3"}}},
		{name: "show cinemas empty", payload: ShowCinemas{CinemaUUIDs: []string{}}},
		{name: "show cinemas map", payload: ShowCinemasMap{Lat: 55.75, Lon: 37.62}},
		{name: "show cinemas map zero coordinate", payload: ShowCinemasMap{Lat: 0, Lon: 0}},
		{name: "show films", payload: ShowFilms{FilmUUIDs: []string{"7"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := Encode(tt.payload)
			require.NoError(t, err)

			got, err := Decode(data)
			require.NoError(t, err)
			assert.Equal(t, tt.payload, got)
		})
	}
}

func TestRoundTripNilSlice(t *testing.T) {
	data, err := Encode(ShowFilms{})
	require.NoError(t, err)

	got, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, ShowFilms{FilmUUIDs: []string{}}, got)
}

func TestDecodeMalformed(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "not json", data: "not json at all"},
		{name: "empty", data: ""},
		{name: "unknown action", data: `{"type":"xyz"}`},
		{name: "missing action", data: `{"filmUuid":"42"}`},
		{name: "toggle without film", data: `{"type":"tff","isFav":true}`},
		{name: "toggle with empty film", data: `{"type":"tff","filmUuid":"","isFav":true}`},
		{name: "toggle without flag", data: `{"type":"tff","filmUuid":"42"}`},
		{name: "map without coordinates", data: `{"type":"scm"}`},
		{name: "map with half coordinate", data: `{"type":"scm","lat":55.75}`},
		{name: "show cinemas without ids", data: `{"type":"sc"}`},
		{name: "show films without ids", data: `{"type":"sf"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.data)
			assert.True(t, errors.Is(err, ErrProtocol), "expected ErrProtocol, got %v", err)
		})
	}
}

func TestDecodeLegacyWire(t *testing.T) {
	// Формат провода исторического бота
	got, err := Decode(`{"type":"tff","filmUuid":"f42","isFav":false}`)
	require.NoError(t, err)
	assert.Equal(t, ToggleFavorite{FilmUUID: "f42", IsFav: false}, got)

	got, err = Decode(`{"type":"sc","cinemaUuids":["c1","c2"]}`)
	require.NoError(t, err)
	assert.Equal(t, ShowCinemas{CinemaUUIDs: []string{"c1", "c2"}}, got)
}
