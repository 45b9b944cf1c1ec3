package model

import "errors"

// ErrNotFound возвращается при точечном поиске несуществующей записи.
// Пустой результат списочного запроса ошибкой не является.
var ErrNotFound = errors.New("not found")
