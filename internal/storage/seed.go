package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"kinobot/internal/model"

	"go.uber.org/zap"
)

// catalogFile описывает формат файла каталога (database.json)
type catalogFile struct {
	Films   []model.Film   `json:"films"`
	Cinemas []model.Cinema `json:"cinemas"`
}

// Seed загружает каталог фильмов и кинотеатров из JSON-файла.
// Существующие записи обновляются по uuid, лишние не удаляются.
func (p *Postgres) Seed(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read catalog file: %w", err)
	}

	var catalog catalogFile
	if err := json.Unmarshal(data, &catalog); err != nil {
		return fmt.Errorf("failed to parse catalog file: %w", err)
	}

	ctx := context.Background()

	if len(catalog.Films) > 0 {
		_, err := p.db.NewInsert().
			Model(&catalog.Films).
			On("CONFLICT (uuid) DO UPDATE").
			Set("name = EXCLUDED.name").
			Set("type = EXCLUDED.type").
			Set("year = EXCLUDED.year").
			Set("rate = EXCLUDED.rate").
			Set("length = EXCLUDED.length").
			Set("country = EXCLUDED.country").
			Set("picture = EXCLUDED.picture").
			Set("link = EXCLUDED.link").
			Set("cinemas = EXCLUDED.cinemas").
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to seed films: %w", err)
		}
	}

	if len(catalog.Cinemas) > 0 {
		_, err := p.db.NewInsert().
			Model(&catalog.Cinemas).
			On("CONFLICT (uuid) DO UPDATE").
			Set("name = EXCLUDED.name").
			Set("lat = EXCLUDED.lat").
			Set("lon = EXCLUDED.lon").
			Set("url = EXCLUDED.url").
			Set("films = EXCLUDED.films").
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to seed cinemas: %w", err)
		}
	}

	p.logger.Info("Catalog seeded",
		zap.Int("films", len(catalog.Films)),
		zap.Int("cinemas", len(catalog.Cinemas)),
		zap.String("path", path))

	return nil
}
