package model

import "github.com/uptrace/bun"

// Cinema представляет кинотеатр из каталога
type Cinema struct {
	bun.BaseModel `bun:"table:cinemas"`

	UUID  string   `bun:"uuid,pk" json:"uuid"`
	Name  string   `bun:"name,notnull" json:"name"`
	Lat   float64  `bun:"lat" json:"lat"`
	Lon   float64  `bun:"lon" json:"lon"`
	URL   string   `bun:"url" json:"url"`
	Films []string `bun:"films,array" json:"films"`
}

// CinemaFilter задает необязательные условия выборки кинотеатров
type CinemaFilter struct {
	UUIDs []string
}

// CinemaRepository определяет интерфейс для работы с кинотеатрами
type CinemaRepository interface {
	GetByUUID(uuid string) (*Cinema, error)
	Find(filter CinemaFilter) ([]Cinema, error)
}
