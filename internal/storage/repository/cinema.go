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

// CinemaRepository реализует интерфейс для работы с кинотеатрами
type CinemaRepository struct {
	db     *bun.DB
	logger *zap.Logger
}

var _ model.CinemaRepository = (*CinemaRepository)(nil)

// NewCinemaRepository создает новый репозиторий кинотеатров
func NewCinemaRepository(db *bun.DB, logger *zap.Logger) *CinemaRepository {
	return &CinemaRepository{
		db:     db,
		logger: logger,
	}
}

// GetByUUID возвращает кинотеатр по uuid
func (r *CinemaRepository) GetByUUID(uuid string) (*model.Cinema, error) {
	ctx := context.Background()
	cinema := new(model.Cinema)

	err := r.db.NewSelect().
		Model(cinema).
		Where("uuid = ?", uuid).
		Scan(ctx)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("failed to query cinema by uuid: %w", err)
	}

	return cinema, nil
}

// Find возвращает кинотеатры по фильтру; пустой фильтр означает все кинотеатры
func (r *CinemaRepository) Find(filter model.CinemaFilter) ([]model.Cinema, error) {
	ctx := context.Background()
	cinemas := make([]model.Cinema, 0)

	// Явно заданный пустой набор uuid не дает совпадений
	if filter.UUIDs != nil && len(filter.UUIDs) == 0 {
		return cinemas, nil
	}

	q := r.db.NewSelect().Model(&cinemas)
	if filter.UUIDs != nil {
		q = q.Where("uuid IN (?)", bun.In(filter.UUIDs))
	}

	if err := q.Order("name ASC").Scan(ctx); err != nil {
		return nil, fmt.Errorf("failed to query cinemas: %w", err)
	}

	return cinemas, nil
}
