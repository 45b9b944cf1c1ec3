// Package command содержит кодек deep-link команд вида /f<id> и /c<id>.
package command

import (
	"errors"
	"strings"
)

// Префиксы deep-link команд
const (
	FilmPrefix   = "f"
	CinemaPrefix = "c"
)

// ErrMalformed возвращается, когда команда не содержит идентификатора
var ErrMalformed = errors.New("malformed command")

// Encode собирает slash-команду из префикса и идентификатора
func Encode(prefix, id string) string {
	return "/" + prefix + id
}

// Decode извлекает идентификатор из slash-команды с известным префиксом
func Decode(text, prefix string) (string, error) {
	if !strings.HasPrefix(text, "/"+prefix) {
		return "", ErrMalformed
	}
	id := text[len(prefix)+1:]
	if id == "" {
		return "", ErrMalformed
	}
	return id, nil
}

// Matches проверяет, является ли текст deep-link командой с данным префиксом
func Matches(text, prefix string) bool {
	return strings.HasPrefix(text, "/"+prefix) && len(text) > len(prefix)+1
}
