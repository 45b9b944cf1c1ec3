// Package model содержит модели данных.
package model

import (
	"strconv"

	"github.com/uptrace/bun"
)

// Film представляет фильм из каталога
type Film struct {
	bun.BaseModel `bun:"table:films"`

	UUID    string   `bun:"uuid,pk" json:"uuid"`
	Name    string   `bun:"name,notnull" json:"name"`
	Type    string   `bun:"type,notnull" json:"type"`
	Year    int      `bun:"year" json:"year"`
	Rate    float64  `bun:"rate" json:"rate"`
	Length  int      `bun:"length" json:"length"`
	Country string   `bun:"country" json:"country"`
	Picture string   `bun:"picture" json:"picture"`
	Link    string   `bun:"link" json:"link"`
	Cinemas []string `bun:"cinemas,array" json:"cinemas"`
}

// RateString возвращает рейтинг без хвостовых нулей (8.7, а не 8.70)
func (f *Film) RateString() string {
	return strconv.FormatFloat(f.Rate, 'f', -1, 64)
}

// FilmFilter задает необязательные условия выборки фильмов.
// Пустой фильтр означает "все фильмы".
type FilmFilter struct {
	Type  string
	UUIDs []string
}

// FilmRepository определяет интерфейс для работы с фильмами
type FilmRepository interface {
	GetByUUID(uuid string) (*Film, error)
	Find(filter FilmFilter) ([]Film, error)
}
