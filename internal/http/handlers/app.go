// Package handlers implements the public HTTP surface of the copy
// generation service.
package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/rs/zerolog"

	"server/internal/domain"
	"server/internal/domain/adcopy"
)

// CopyGenerator runs the full generation pipeline for a validated request.
// Satisfied by *copygen.Generator.
type CopyGenerator interface {
	Generate(ctx context.Context, req *adcopy.Request) (*adcopy.Result, error)
}

// Speaker converts text to an audio stream. Satisfied by *llm.Client.
type Speaker interface {
	Speech(ctx context.Context, text string) (io.ReadCloser, error)
}

// App aggregates handler dependencies. History is nil when no database is
// configured; handlers degrade accordingly.
type App struct {
	Log       zerolog.Logger
	Generator CopyGenerator
	Speaker   Speaker
	History   domain.HistoryRepository
}

// NewApp builds the handler container.
func NewApp(log zerolog.Logger, generator CopyGenerator, speaker Speaker, history domain.HistoryRepository) *App {
	return &App{Log: log, Generator: generator, Speaker: speaker, History: history}
}

type errorEnvelope struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, status int, code, message string) {
	a.json(w, status, errorEnvelope{Status: "error", Message: message, Code: code})
}
