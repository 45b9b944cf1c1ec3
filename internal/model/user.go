package model

import "github.com/uptrace/bun"

// User представляет пользователя бота. Запись создается лениво при
// первом добавлении фильма в избранное и никогда не удаляется.
type User struct {
	bun.BaseModel `bun:"table:users"`

	TelegramID int64    `bun:"telegram_id,pk" json:"telegram_id"`
	Films      []string `bun:"films,array" json:"films"`
}

// HasFilm проверяет, есть ли фильм в избранном
func (u *User) HasFilm(filmUUID string) bool {
	for _, uuid := range u.Films {
		if uuid == filmUUID {
			return true
		}
	}
	return false
}

// UserRepository определяет интерфейс для работы с избранным пользователей
type UserRepository interface {
	// GetFavorites возвращает избранные фильмы; для незнакомого
	// пользователя возвращается пустой набор
	GetFavorites(telegramID int64) ([]string, error)
	IsFavorite(telegramID int64, filmUUID string) (bool, error)
	// ToggleFavorite атомарно переключает членство фильма в избранном
	// и возвращает новое состояние
	ToggleFavorite(telegramID int64, filmUUID string) (bool, error)
}
