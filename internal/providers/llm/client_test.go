package llm

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"testing"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

// chatResponse fakes a successful chat completion carrying the given content.
func chatResponse(content string) *http.Response {
	body := fmt.Sprintf(`{
		"id": "chatcmpl-test",
		"object": "chat.completion",
		"choices": [{"index": 0, "message": {"role": "assistant", "content": %q}, "finish_reason": "stop"}]
	}`, content)
	return &http.Response{
		StatusCode: http.StatusOK,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(bytes.NewBufferString(body)),
	}
}

// apiErrorResponse fakes the provider's error envelope with the given status.
func apiErrorResponse(status int, message string) *http.Response {
	body := fmt.Sprintf(`{"error": {"message": %q, "type": "test_error"}}`, message)
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(bytes.NewBufferString(body)),
	}
}

func newFakeClient(t *testing.T, rt roundTripFunc) *Client {
	t.Helper()
	c, err := New(Options{
		APIKey:     "dummy",
		HTTPClient: &http.Client{Transport: rt},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

func TestNewRequiresAPIKey(t *testing.T) {
	t.Parallel()

	if _, err := New(Options{}); err == nil {
		t.Fatal("New without api key succeeded")
	}
	if _, err := New(Options{APIKey: "   "}); err == nil {
		t.Fatal("New with blank api key succeeded")
	}
}

func TestNewDefaults(t *testing.T) {
	t.Parallel()

	c, err := New(Options{APIKey: "dummy"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c.Model() != "gpt-4o" {
		t.Errorf("Model() = %q, want gpt-4o", c.Model())
	}
	if c.temperature != defaultTemperature || c.maxTokens != defaultMaxTokens {
		t.Errorf("temperature/maxTokens = %v/%d, want defaults", c.temperature, c.maxTokens)
	}
}

func TestCompleteTextTrimsContent(t *testing.T) {
	t.Parallel()

	c := newFakeClient(t, func(r *http.Request) (*http.Response, error) {
		return chatResponse("  생성된 마케팅 문구  \n"), nil
	})
	got, err := c.CompleteText(context.Background(), "system", "user")
	if err != nil {
		t.Fatalf("CompleteText: %v", err)
	}
	if got != "생성된 마케팅 문구" {
		t.Errorf("CompleteText = %q", got)
	}
}

func TestCompleteTextEmptyContent(t *testing.T) {
	t.Parallel()

	c := newFakeClient(t, func(r *http.Request) (*http.Response, error) {
		return chatResponse("   "), nil
	})
	_, err := c.CompleteText(context.Background(), "system", "user")
	if !errors.Is(err, ErrMissingResponse) {
		t.Fatalf("error = %v, want ErrMissingResponse", err)
	}
}

func TestCompleteTextClassifiesStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		status int
		kind   Kind
	}{
		{"unauthorized", http.StatusUnauthorized, KindAuth},
		{"forbidden", http.StatusForbidden, KindAuth},
		{"rate limited", http.StatusTooManyRequests, KindRateLimit},
		{"server error", http.StatusInternalServerError, KindServer},
		{"bad request", http.StatusBadRequest, KindOther},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := newFakeClient(t, func(r *http.Request) (*http.Response, error) {
				return apiErrorResponse(tt.status, "upstream said no"), nil
			})
			_, err := c.CompleteText(context.Background(), "system", "user")
			var upstream *UpstreamError
			if !errors.As(err, &upstream) {
				t.Fatalf("error = %v, want *UpstreamError", err)
			}
			if upstream.Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", upstream.Kind, tt.kind)
			}
			if upstream.Status != tt.status {
				t.Errorf("Status = %d, want %d", upstream.Status, tt.status)
			}
		})
	}
}

func TestCompleteTextTransportError(t *testing.T) {
	t.Parallel()

	c := newFakeClient(t, func(r *http.Request) (*http.Response, error) {
		return nil, errors.New("connection refused")
	})
	_, err := c.CompleteText(context.Background(), "system", "user")
	var upstream *UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("error = %v, want *UpstreamError", err)
	}
	if upstream.Kind != KindOther {
		t.Errorf("Kind = %v, want KindOther", upstream.Kind)
	}
}

func TestCompleteJSONExtractsFencedPayload(t *testing.T) {
	t.Parallel()

	var sawContract bool
	c := newFakeClient(t, func(r *http.Request) (*http.Response, error) {
		body, _ := io.ReadAll(r.Body)
		sawContract = bytes.Contains(body, []byte("JSON"))
		return chatResponse("```json\n[{\"text\":\"문구\"}]\n```"), nil
	})
	raw, err := c.CompleteJSON(context.Background(), "system", "user")
	if err != nil {
		t.Fatalf("CompleteJSON: %v", err)
	}
	if string(raw) != `[{"text":"문구"}]` {
		t.Errorf("CompleteJSON = %s", raw)
	}
	if !sawContract {
		t.Error("request did not carry the JSON-only contract")
	}
}

func TestCompleteJSONUnparsablePayload(t *testing.T) {
	t.Parallel()

	c := newFakeClient(t, func(r *http.Request) (*http.Response, error) {
		return chatResponse("죄송하지만 생성할 수 없습니다."), nil
	})
	_, err := c.CompleteJSON(context.Background(), "system", "user")
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("error = %v, want *ParseError", err)
	}
	if parseErr.Raw != "죄송하지만 생성할 수 없습니다." {
		t.Errorf("Raw = %q, want the original model output", parseErr.Raw)
	}
}

func TestCompleteJSONUpstreamErrorPassesThrough(t *testing.T) {
	t.Parallel()

	c := newFakeClient(t, func(r *http.Request) (*http.Response, error) {
		return apiErrorResponse(http.StatusTooManyRequests, "quota exceeded"), nil
	})
	_, err := c.CompleteJSON(context.Background(), "system", "user")
	var upstream *UpstreamError
	if !errors.As(err, &upstream) || upstream.Kind != KindRateLimit {
		t.Fatalf("error = %v, want rate-limit *UpstreamError", err)
	}
}
