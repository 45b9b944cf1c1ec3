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

// UserRepository реализует интерфейс для работы с избранным пользователей
type UserRepository struct {
	db     *bun.DB
	logger *zap.Logger
}

var _ model.UserRepository = (*UserRepository)(nil)

// NewUserRepository создает новый репозиторий пользователей
func NewUserRepository(db *bun.DB, logger *zap.Logger) *UserRepository {
	return &UserRepository{
		db:     db,
		logger: logger,
	}
}

// GetFavorites возвращает избранные фильмы пользователя.
// Для незнакомого пользователя возвращается пустой набор.
func (r *UserRepository) GetFavorites(telegramID int64) ([]string, error) {
	ctx := context.Background()
	user := new(model.User)

	err := r.db.NewSelect().
		Model(user).
		Where("telegram_id = ?", telegramID).
		Scan(ctx)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to query user favorites: %w", err)
	}

	if user.Films == nil {
		return []string{}, nil
	}
	return user.Films, nil
}

// IsFavorite проверяет, есть ли фильм в избранном пользователя
func (r *UserRepository) IsFavorite(telegramID int64, filmUUID string) (bool, error) {
	favorites, err := r.GetFavorites(telegramID)
	if err != nil {
		return false, err
	}

	for _, uuid := range favorites {
		if uuid == filmUUID {
			return true, nil
		}
	}
	return false, nil
}

// ToggleFavorite переключает членство фильма в избранном и возвращает
// новое состояние. Чтение и запись выполняются в одной транзакции с
// блокировкой строки пользователя, поэтому одновременные переключения
// для одного пользователя сериализуются.
func (r *UserRepository) ToggleFavorite(telegramID int64, filmUUID string) (bool, error) {
	ctx := context.Background()
	var added bool

	err := r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		user := new(model.User)

		err := tx.NewSelect().
			Model(user).
			Where("telegram_id = ?", telegramID).
			For("UPDATE").
			Scan(ctx)

		if errors.Is(err, sql.ErrNoRows) {
			// Первый фильм пользователя: создаем запись
			user = &model.User{
				TelegramID: telegramID,
				Films:      []string{filmUUID},
			}
			added = true

			_, err := tx.NewInsert().
				Model(user).
				On("CONFLICT (telegram_id) DO UPDATE").
				Set("films = EXCLUDED.films").
				Exec(ctx)
			if err != nil {
				return fmt.Errorf("failed to create user record: %w", err)
			}
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to lock user record: %w", err)
		}

		if user.HasFilm(filmUUID) {
			films := make([]string, 0, len(user.Films))
			for _, uuid := range user.Films {
				if uuid != filmUUID {
					films = append(films, uuid)
				}
			}
			user.Films = films
			added = false
		} else {
			user.Films = append(user.Films, filmUUID)
			added = true
		}

		_, err = tx.NewUpdate().
			Model(user).
			Column("films").
			WherePK().
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to update user favorites: %w", err)
		}
		return nil
	})

	if err != nil {
		return false, err
	}

	r.logger.Debug("Favorite toggled",
		zap.Int64("telegram_id", telegramID),
		zap.String("film_uuid", filmUUID),
		zap.Bool("added", added))

	return added, nil
}
