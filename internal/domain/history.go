// Package domain holds persistence-facing entities shared between the HTTP
// layer and the repositories.
package domain

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"server/internal/domain/adcopy"
)

var ErrNotFound = errors.New("not found")

// HistoryItem is one recorded generation: the request that produced it and
// the copies it delivered. The generation core never touches this; recording
// happens behind the HTTP layer.
type HistoryItem struct {
	ID               string          `json:"id"`
	CreatedAt        time.Time       `json:"createdAt"`
	ValueProposition string          `json:"valueProposition"`
	RequestJSON      json.RawMessage `json:"request"`
	Copies           []adcopy.Copy   `json:"copies"`
	Model            string          `json:"model"`
	Favorite         bool            `json:"favorite"`
}

// HistorySort orders history listings.
type HistorySort string

const (
	HistorySortNewest HistorySort = "newest"
	HistorySortOldest HistorySort = "oldest"
)

// HistoryFilter narrows a history listing.
type HistoryFilter struct {
	Search        string
	Platform      adcopy.Platform
	FavoritesOnly bool
	Sort          HistorySort
	Limit         int
}

// HistoryRepository is the persistence contract for generation history.
type HistoryRepository interface {
	Insert(ctx context.Context, item *HistoryItem) error
	List(ctx context.Context, filter HistoryFilter) ([]HistoryItem, error)
	SetFavorite(ctx context.Context, id string, favorite bool) error
	Delete(ctx context.Context, id string) error
}
