package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"server/internal/domain"
	"server/internal/domain/adcopy"
)

// historyUnavailable answers history routes when no database is configured.
func (a *App) historyUnavailable(w http.ResponseWriter) bool {
	if a.History != nil {
		return false
	}
	a.error(w, http.StatusServiceUnavailable, CodeInternalError, "히스토리 저장소가 구성되어 있지 않습니다")
	return true
}

// HistoryList handles GET /v1/history.
func (a *App) HistoryList(w http.ResponseWriter, r *http.Request) {
	if a.historyUnavailable(w) {
		return
	}

	q := r.URL.Query()
	filter := domain.HistoryFilter{
		Search:        q.Get("search"),
		FavoritesOnly: q.Get("favorites") == "true",
		Sort:          domain.HistorySortNewest,
	}
	if p := q.Get("platform"); p != "" {
		platform := adcopy.Platform(p)
		if !platform.Valid() {
			a.error(w, http.StatusBadRequest, CodeValidationError, "platform: 지원하지 않는 플랫폼입니다")
			return
		}
		filter.Platform = platform
	}
	if q.Get("sort") == string(domain.HistorySortOldest) {
		filter.Sort = domain.HistorySortOldest
	}
	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > 200 {
			a.error(w, http.StatusBadRequest, CodeValidationError, "limit: 1에서 200 사이의 정수여야 합니다")
			return
		}
		filter.Limit = n
	}

	items, err := a.History.List(r.Context(), filter)
	if err != nil {
		a.Log.Error().Err(err).Msg("history list failed")
		a.error(w, http.StatusInternalServerError, CodeInternalError, message(CodeInternalError, "ko"))
		return
	}
	if items == nil {
		items = []domain.HistoryItem{}
	}
	a.json(w, http.StatusOK, map[string]any{"items": items, "count": len(items)})
}

type favoriteRequest struct {
	Favorite bool `json:"favorite"`
}

// HistoryFavorite handles POST /v1/history/{id}/favorite.
func (a *App) HistoryFavorite(w http.ResponseWriter, r *http.Request) {
	if a.historyUnavailable(w) {
		return
	}

	id := chi.URLParam(r, "id")
	var req favoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, CodeInvalidJSON, message(CodeInvalidJSON, "ko"))
		return
	}

	if err := a.History.SetFavorite(r.Context(), id, req.Favorite); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.error(w, http.StatusNotFound, CodeValidationError, "해당 히스토리 항목을 찾을 수 없습니다")
			return
		}
		a.Log.Error().Err(err).Str("id", id).Msg("history favorite update failed")
		a.error(w, http.StatusInternalServerError, CodeInternalError, message(CodeInternalError, "ko"))
		return
	}
	a.json(w, http.StatusOK, map[string]any{"id": id, "favorite": req.Favorite})
}

// HistoryDelete handles DELETE /v1/history/{id}.
func (a *App) HistoryDelete(w http.ResponseWriter, r *http.Request) {
	if a.historyUnavailable(w) {
		return
	}

	id := chi.URLParam(r, "id")
	if err := a.History.Delete(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.error(w, http.StatusNotFound, CodeValidationError, "해당 히스토리 항목을 찾을 수 없습니다")
			return
		}
		a.Log.Error().Err(err).Str("id", id).Msg("history delete failed")
		a.error(w, http.StatusInternalServerError, CodeInternalError, message(CodeInternalError, "ko"))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
