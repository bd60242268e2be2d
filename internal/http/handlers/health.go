package handlers

import (
	"net/http"
)

// Health reports liveness and whether the optional history store is wired.
func (a *App) Health(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"history": a.History != nil,
	})
}
