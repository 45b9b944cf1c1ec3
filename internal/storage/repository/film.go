// Package repository содержит репозитории для работы с базой данных.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"kinobot/internal/model"

	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// FilmRepository реализует интерфейс для работы с фильмами
type FilmRepository struct {
	db     *bun.DB
	logger *zap.Logger
}

var _ model.FilmRepository = (*FilmRepository)(nil)

// NewFilmRepository создает новый репозиторий фильмов
func NewFilmRepository(db *bun.DB, logger *zap.Logger) *FilmRepository {
	return &FilmRepository{
		db:     db,
		logger: logger,
	}
}

// GetByUUID возвращает фильм по uuid
func (r *FilmRepository) GetByUUID(uuid string) (*model.Film, error) {
	ctx := context.Background()
	film := new(model.Film)

	err := r.db.NewSelect().
		Model(film).
		Where("uuid = ?", uuid).
		Scan(ctx)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("failed to query film by uuid: %w", err)
	}

	return film, nil
}

// Find возвращает фильмы по фильтру; пустой фильтр означает все фильмы
func (r *FilmRepository) Find(filter model.FilmFilter) ([]model.Film, error) {
	ctx := context.Background()
	films := make([]model.Film, 0)

	// Явно заданный пустой набор uuid не дает совпадений
	if filter.UUIDs != nil && len(filter.UUIDs) == 0 {
		return films, nil
	}

	q := r.db.NewSelect().Model(&films)
	if filter.Type != "" {
		q = q.Where("type = ?", filter.Type)
	}
	if filter.UUIDs != nil {
		q = q.Where("uuid IN (?)", bun.In(filter.UUIDs))
	}

	if err := q.Order("name ASC").Scan(ctx); err != nil {
		return nil, fmt.Errorf("failed to query films: %w", err)
	}

	return films, nil
}
