package handlers

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"server/internal/providers/llm"
)

type stubSpeaker struct {
	audio   string
	err     error
	gotText string
}

func (s *stubSpeaker) Speech(_ context.Context, text string) (io.ReadCloser, error) {
	s.gotText = text
	if s.err != nil {
		return nil, s.err
	}
	return io.NopCloser(strings.NewReader(s.audio)), nil
}

func TestSpeechStreamsAudio(t *testing.T) {
	t.Parallel()

	speaker := &stubSpeaker{audio: "mp3-bytes"}
	app := NewApp(zerolog.Nop(), nil, speaker, nil)

	req := httptest.NewRequest("POST", "/v1/speech", strings.NewReader(`{"text":"읽어줄 문구"}`))
	rr := httptest.NewRecorder()
	app.Speech(rr, req)

	if rr.Code != 200 {
		t.Fatalf("status = %d, want 200: %s", rr.Code, rr.Body.String())
	}
	if ct := rr.Header().Get("Content-Type"); ct != "audio/mpeg" {
		t.Errorf("Content-Type = %q, want audio/mpeg", ct)
	}
	if rr.Body.String() != "mp3-bytes" {
		t.Errorf("body = %q", rr.Body.String())
	}
	if speaker.gotText != "읽어줄 문구" {
		t.Errorf("speaker received %q", speaker.gotText)
	}
}

func TestSpeechRejectsEmptyText(t *testing.T) {
	t.Parallel()

	app := NewApp(zerolog.Nop(), nil, &stubSpeaker{}, nil)

	req := httptest.NewRequest("POST", "/v1/speech", strings.NewReader(`{"text":""}`))
	rr := httptest.NewRecorder()
	app.Speech(rr, req)

	if rr.Code != 400 {
		t.Fatalf("status = %d, want 400", rr.Code)
	}
	if env := decodeError(t, rr); env.Code != CodeValidationError {
		t.Errorf("code = %q", env.Code)
	}
}

func TestSpeechRejectsOversizedText(t *testing.T) {
	t.Parallel()

	app := NewApp(zerolog.Nop(), nil, &stubSpeaker{}, nil)

	long := strings.Repeat("가", maxSpeechRunes+1)
	req := httptest.NewRequest("POST", "/v1/speech", strings.NewReader(`{"text":"`+long+`"}`))
	rr := httptest.NewRecorder()
	app.Speech(rr, req)

	if rr.Code != 400 {
		t.Fatalf("status = %d, want 400", rr.Code)
	}
}

func TestSpeechAcceptsTextAtLimit(t *testing.T) {
	t.Parallel()

	speaker := &stubSpeaker{audio: "ok"}
	app := NewApp(zerolog.Nop(), nil, speaker, nil)

	exact := strings.Repeat("가", maxSpeechRunes)
	req := httptest.NewRequest("POST", "/v1/speech", strings.NewReader(`{"text":"`+exact+`"}`))
	rr := httptest.NewRecorder()
	app.Speech(rr, req)

	if rr.Code != 200 {
		t.Fatalf("status = %d, want 200 at the limit", rr.Code)
	}
}

func TestSpeechMalformedBody(t *testing.T) {
	t.Parallel()

	app := NewApp(zerolog.Nop(), nil, &stubSpeaker{}, nil)

	req := httptest.NewRequest("POST", "/v1/speech", strings.NewReader(`{"text"`))
	rr := httptest.NewRecorder()
	app.Speech(rr, req)

	if rr.Code != 400 {
		t.Fatalf("status = %d, want 400", rr.Code)
	}
	if env := decodeError(t, rr); env.Code != CodeInvalidJSON {
		t.Errorf("code = %q, want %q", env.Code, CodeInvalidJSON)
	}
}

func TestSpeechUpstreamErrorMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"auth", &llm.UpstreamError{Kind: llm.KindAuth, Status: 401}, 500, CodeInvalidAPIKey},
		{"rate limit", &llm.UpstreamError{Kind: llm.KindRateLimit, Status: 429}, 429, CodeRateLimitExceeded},
		{"server", &llm.UpstreamError{Kind: llm.KindServer, Status: 503}, 500, CodeGenerationError},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			app := NewApp(zerolog.Nop(), nil, &stubSpeaker{err: tt.err}, nil)
			req := httptest.NewRequest("POST", "/v1/speech", strings.NewReader(`{"text":"읽어줄 문구"}`))
			rr := httptest.NewRecorder()
			app.Speech(rr, req)

			if rr.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rr.Code, tt.wantStatus)
			}
			if env := decodeError(t, rr); env.Code != tt.wantCode {
				t.Errorf("code = %q, want %q", env.Code, tt.wantCode)
			}
		})
	}
}
