// Package handlers содержит обработчики интентов бота.
package handlers

import (
	"kinobot/internal/bot/router"
)

// RegisterRoutes registers all intent handlers
func RegisterRoutes(r *router.Router) {
	r.Handle(router.IntentStart, handleStart)
	r.Handle(router.IntentHome, handleHome)
	r.Handle(router.IntentFavorites, handleFavorites)
	r.Handle(router.IntentFilmsMenu, handleFilmsMenu)
	r.Handle(router.IntentFilmsCategory, handleFilmsCategory)
	r.Handle(router.IntentCinemasPrompt, handleCinemasPrompt)
	r.Handle(router.IntentFilmDetail, handleFilmDetail)
	r.Handle(router.IntentCinemaDetail, handleCinemaDetail)
	r.Handle(router.IntentLocation, handleLocation)
	r.Handle(router.IntentCallback, handleCallback)
	r.Handle(router.IntentInlineQuery, handleInlineQuery)
}
