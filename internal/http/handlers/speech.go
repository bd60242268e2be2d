package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"unicode/utf8"

	"server/internal/middleware"
	"server/internal/providers/llm"
)

// maxSpeechRunes matches the upstream text-to-speech input limit.
const maxSpeechRunes = 4096

type speechRequest struct {
	Text string `json:"text"`
}

// Speech handles POST /v1/speech. On success it streams MPEG audio;
// every failure keeps the JSON error envelope.
func (a *App) Speech(w http.ResponseWriter, r *http.Request) {
	locale := middleware.LocaleFromContext(r.Context())

	var req speechRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, CodeInvalidJSON, message(CodeInvalidJSON, locale))
		return
	}
	if req.Text == "" {
		a.error(w, http.StatusBadRequest, CodeValidationError, "text: 변환할 텍스트를 입력해주세요")
		return
	}
	if utf8.RuneCountInString(req.Text) > maxSpeechRunes {
		a.error(w, http.StatusBadRequest, CodeValidationError, "text: 텍스트는 4096자를 초과할 수 없습니다")
		return
	}

	audio, err := a.Speaker.Speech(r.Context(), req.Text)
	if err != nil {
		a.speechError(w, r, err, locale)
		return
	}
	defer audio.Close()

	w.Header().Set("Content-Type", "audio/mpeg")
	w.WriteHeader(http.StatusOK)
	if _, err := io.Copy(w, audio); err != nil {
		// Headers are gone by now, all we can do is log the broken stream.
		a.Log.Warn().Err(err).Msg("speech stream interrupted")
	}
}

func (a *App) speechError(w http.ResponseWriter, r *http.Request, err error, locale string) {
	a.Log.Error().Err(err).Str("request_id", middleware.RequestIDFromContext(r.Context())).Msg("speech synthesis failed")

	var upstream *llm.UpstreamError
	if errors.As(err, &upstream) {
		switch upstream.Kind {
		case llm.KindAuth:
			a.error(w, http.StatusInternalServerError, CodeInvalidAPIKey, message(CodeInvalidAPIKey, locale))
			return
		case llm.KindRateLimit:
			a.error(w, http.StatusTooManyRequests, CodeRateLimitExceeded, message(CodeRateLimitExceeded, locale))
			return
		}
	}
	a.error(w, http.StatusInternalServerError, CodeGenerationError, message(CodeGenerationError, locale))
}
