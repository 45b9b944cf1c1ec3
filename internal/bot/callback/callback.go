// Package callback содержит кодек callback-данных inline-кнопок.
//
// Формат провода совместим с историческим: компактный JSON с полем
// type (tff, sc, scm, sf) и полями конкретного действия. Декодирование
// проверяет обязательные поля и при любой неоднозначности закрывается
// ошибкой ErrProtocol.
package callback

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Action определяет тип действия callback-кнопки
type Action string

// Поддерживаемые действия
const (
	ActionToggleFavorite Action = "tff"
	ActionShowCinemas    Action = "sc"
	ActionShowCinemasMap Action = "scm"
	ActionShowFilms      Action = "sf"
)

// ErrProtocol возвращается при некорректных callback-данных
var ErrProtocol = errors.New("malformed callback payload")

// Payload представляет декодированные callback-данные
type Payload interface {
	Action() Action
}

// ToggleFavorite переключает фильм в избранном
type ToggleFavorite struct {
	FilmUUID string
	IsFav    bool
}

// Action реализует Payload
func (ToggleFavorite) Action() Action { return ActionToggleFavorite }

// ShowCinemas показывает кинотеатры, где идет фильм
type ShowCinemas struct {
	CinemaUUIDs []string
}

// Action реализует Payload
func (ShowCinemas) Action() Action { return ActionShowCinemas }

// ShowCinemasMap показывает кинотеатр на карте
type ShowCinemasMap struct {
	Lat float64
	Lon float64
}

// Action реализует Payload
func (ShowCinemasMap) Action() Action { return ActionShowCinemasMap }

// ShowFilms показывает фильмы кинотеатра
type ShowFilms struct {
	FilmUUIDs []string
}

// Action реализует Payload
func (ShowFilms) Action() Action { return ActionShowFilms }

// wirePayload описывает JSON-представление callback-данных.
// Указатели нужны, чтобы отличать отсутствующее поле от нулевого.
type wirePayload struct {
	Type        Action    `json:"type"`
	FilmUUID    *string   `json:"filmUuid,omitempty"`
	IsFav       *bool     `json:"isFav,omitempty"`
	CinemaUUIDs *[]string `json:"cinemaUuids,omitempty"`
	FilmUUIDs   *[]string `json:"filmUuids,omitempty"`
	Lat         *float64  `json:"lat,omitempty"`
	Lon         *float64  `json:"lon,omitempty"`
}

// Encode сериализует callback-данные в строку для callback_data
func Encode(p Payload) (string, error) {
	var wire wirePayload

	switch v := p.(type) {
	case ToggleFavorite:
		wire = wirePayload{Type: v.Action(), FilmUUID: &v.FilmUUID, IsFav: &v.IsFav}
	case ShowCinemas:
		if v.CinemaUUIDs == nil {
			v.CinemaUUIDs = []string{}
		}
		wire = wirePayload{Type: v.Action(), CinemaUUIDs: &v.CinemaUUIDs}
	case ShowCinemasMap:
		wire = wirePayload{Type: v.Action(), Lat: &v.Lat, Lon: &v.Lon}
	case ShowFilms:
		if v.FilmUUIDs == nil {
			v.FilmUUIDs = []string{}
		}
		wire = wirePayload{Type: v.Action(), FilmUUIDs: &v.FilmUUIDs}
	default:
		return "", fmt.Errorf("unknown payload type %T", p)
	}

	data, err := json.Marshal(wire)
	if err != nil {
		return "", fmt.Errorf("failed to marshal callback payload: %w", err)
	}
	return string(data), nil
}

// Decode разбирает callback-данные и валидирует обязательные поля
func Decode(data string) (Payload, error) {
	var wire wirePayload
	if err := json.Unmarshal([]byte(data), &wire); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProtocol, err)
	}

	switch wire.Type {
	case ActionToggleFavorite:
		if wire.FilmUUID == nil || *wire.FilmUUID == "" || wire.IsFav == nil {
			return nil, fmt.Errorf("%w: toggle favorite requires filmUuid and isFav", ErrProtocol)
		}
		return ToggleFavorite{FilmUUID: *wire.FilmUUID, IsFav: *wire.IsFav}, nil

	case ActionShowCinemas:
		if wire.CinemaUUIDs == nil {
			return nil, fmt.Errorf("%w: show cinemas requires cinemaUuids", ErrProtocol)
		}
		return ShowCinemas{CinemaUUIDs: *wire.CinemaUUIDs}, nil

	case ActionShowCinemasMap:
		if wire.Lat == nil || wire.Lon == nil {
			return nil, fmt.Errorf("%w: show on map requires lat and lon", ErrProtocol)
		}
		return ShowCinemasMap{Lat: *wire.Lat, Lon: *wire.Lon}, nil

	case ActionShowFilms:
		if wire.FilmUUIDs == nil {
			return nil, fmt.Errorf("%w: show films requires filmUuids", ErrProtocol)
		}
		return ShowFilms{FilmUUIDs: *wire.FilmUUIDs}, nil

	default:
		return nil, fmt.Errorf("%w: unknown action %q", ErrProtocol, wire.Type)
	}
}
