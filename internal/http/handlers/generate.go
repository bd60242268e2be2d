package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"server/internal/copygen"
	"server/internal/domain"
	"server/internal/domain/adcopy"
	"server/internal/middleware"
	"server/internal/providers/llm"
)

// Error codes of the generation endpoint, part of the wire contract.
const (
	CodeInvalidJSON       = "INVALID_JSON"
	CodeValidationError   = "VALIDATION_ERROR"
	CodeInvalidAPIKey     = "INVALID_API_KEY"
	CodeRateLimitExceeded = "RATE_LIMIT_EXCEEDED"
	CodeGenerationError   = "GENERATION_ERROR"
	CodeInternalError     = "INTERNAL_SERVER_ERROR"
)

// genericMessages localizes the envelope message for failures that carry no
// caller-actionable detail. Field errors stay in Korean, the service's
// primary audience language, matching the enum wire literals.
var genericMessages = map[string]map[string]string{
	CodeInvalidJSON: {
		"ko": "요청 바디를 파싱할 수 없습니다. 유효한 JSON 형식인지 확인해주세요.",
		"en": "The request body could not be parsed. Check that it is valid JSON.",
		"ja": "リクエストボディを解析できません。有効なJSON形式か確認してください。",
	},
	CodeInvalidAPIKey: {
		"ko": "업스트림 API 키가 유효하지 않습니다. 서버 설정을 확인해주세요.",
		"en": "The upstream API key is invalid. Check the server configuration.",
		"ja": "アップストリームAPIキーが無効です。サーバー設定を確認してください。",
	},
	CodeRateLimitExceeded: {
		"ko": "API 요청 한도를 초과했습니다. 잠시 후 다시 시도해주세요.",
		"en": "The API request quota was exceeded. Try again shortly.",
		"ja": "APIリクエストの上限を超えました。しばらくしてから再試行してください。",
	},
	CodeGenerationError: {
		"ko": "문구 생성 중 오류가 발생했습니다.",
		"en": "Copy generation failed.",
		"ja": "コピー生成中にエラーが発生しました。",
	},
	CodeInternalError: {
		"ko": "서버 내부 오류가 발생했습니다.",
		"en": "An internal server error occurred.",
		"ja": "サーバー内部エラーが発生しました。",
	},
}

func message(code, locale string) string {
	if byLocale, ok := genericMessages[code]; ok {
		if msg, ok := byLocale[locale]; ok {
			return msg
		}
		return byLocale["ko"]
	}
	return code
}

type generateMetadata struct {
	Model          string `json:"model"`
	GeneratedAt    string `json:"generatedAt"`
	RequestedCount int    `json:"requestedCount"`
	DeliveredCount int    `json:"deliveredCount"`
}

type generateResponse struct {
	Status          string           `json:"status"`
	GeneratedCopies []adcopyCopy     `json:"generated_copies"`
	Metadata        generateMetadata `json:"metadata"`
}

// adcopyCopy aliases the domain copy for response encoding.
type adcopyCopy = struct {
	Platform string `json:"platform"`
	Text     string `json:"text"`
}

// Generate handles POST /v1/generate.
func (a *App) Generate(w http.ResponseWriter, r *http.Request) {
	locale := middleware.LocaleFromContext(r.Context())

	body, err := io.ReadAll(r.Body)
	if err != nil {
		a.error(w, http.StatusBadRequest, CodeInvalidJSON, message(CodeInvalidJSON, locale))
		return
	}

	req, err := copygen.ParseRequest(body)
	if err != nil {
		var invalidJSON *copygen.ErrInvalidJSON
		if errors.As(err, &invalidJSON) {
			a.error(w, http.StatusBadRequest, CodeInvalidJSON, message(CodeInvalidJSON, locale))
			return
		}
		var fieldErrs copygen.FieldErrors
		if errors.As(err, &fieldErrs) {
			a.Log.Debug().Str("errors", fieldErrs.Error()).Msg("request validation failed")
			a.error(w, http.StatusBadRequest, CodeValidationError, fieldErrs.Error())
			return
		}
		a.error(w, http.StatusInternalServerError, CodeInternalError, message(CodeInternalError, locale))
		return
	}

	start := time.Now()
	result, err := a.Generator.Generate(r.Context(), req)
	if err != nil {
		a.generationError(w, r, err, locale)
		return
	}
	a.Log.Info().
		Int("copies", result.DeliveredCount).
		Dur("duration", time.Since(start)).
		Str("model", result.Model).
		Msg("generation complete")

	a.recordHistory(r, req, result, body)

	copies := make([]adcopyCopy, 0, len(result.Copies))
	for _, c := range result.Copies {
		copies = append(copies, adcopyCopy{Platform: string(c.Platform), Text: c.Text})
	}
	a.json(w, http.StatusOK, generateResponse{
		Status:          "success",
		GeneratedCopies: copies,
		Metadata: generateMetadata{
			Model:          result.Model,
			GeneratedAt:    result.GeneratedAt.Format(time.RFC3339),
			RequestedCount: result.RequestedCount,
			DeliveredCount: result.DeliveredCount,
		},
	})
}

// generationError maps classified upstream failures onto the wire contract.
func (a *App) generationError(w http.ResponseWriter, r *http.Request, err error, locale string) {
	a.Log.Error().Err(err).Str("request_id", middleware.RequestIDFromContext(r.Context())).Msg("generation failed")

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
		a.error(w, http.StatusInternalServerError, CodeGenerationError, message(CodeGenerationError, locale))
		return
	}
	if errors.Is(err, llm.ErrMissingResponse) {
		a.error(w, http.StatusInternalServerError, CodeGenerationError, message(CodeGenerationError, locale))
		return
	}
	var parseErr *llm.ParseError
	if errors.As(err, &parseErr) {
		a.error(w, http.StatusInternalServerError, CodeGenerationError, message(CodeGenerationError, locale))
		return
	}
	a.error(w, http.StatusInternalServerError, CodeInternalError, message(CodeInternalError, locale))
}

// recordHistory persists the finished generation when a history store is
// configured. Failures are logged, never surfaced: history is best-effort.
func (a *App) recordHistory(r *http.Request, req *adcopy.Request, result *adcopy.Result, rawRequest []byte) {
	if a.History == nil {
		return
	}
	item := &domain.HistoryItem{
		ID:               uuid.NewString(),
		CreatedAt:        result.GeneratedAt,
		ValueProposition: req.ValueProposition,
		RequestJSON:      json.RawMessage(rawRequest),
		Copies:           result.Copies,
		Model:            result.Model,
	}
	if err := a.History.Insert(r.Context(), item); err != nil {
		a.Log.Warn().Err(err).Msg("failed to record generation history")
	}
}
