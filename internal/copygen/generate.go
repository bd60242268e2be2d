// Package copygen holds the marketing-copy generation core: request
// validation, deterministic prompt composition, and reconciliation of model
// output against the requested cardinality.
package copygen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"server/internal/domain/adcopy"
	"server/internal/providers/llm"
)

// Completer is the chat-completion capability the generator consumes. It is
// satisfied by *llm.Client and by test stubs.
type Completer interface {
	CompleteText(ctx context.Context, system, user string) (string, error)
	CompleteJSON(ctx context.Context, system, user string) (json.RawMessage, error)
	Model() string
}

// Generator orchestrates prompt composition, model invocation, and output
// reconciliation. It holds no per-request state; one instance serves
// concurrent requests.
type Generator struct {
	completer Completer
	log       zerolog.Logger
}

// NewGenerator wires a generator onto a completion capability.
func NewGenerator(completer Completer, log zerolog.Logger) *Generator {
	return &Generator{completer: completer, log: log}
}

// mode names the generation strategy selected from the request cardinality.
type mode int

const (
	singlePlatformSingle mode = iota
	singlePlatformMulti
	multiPlatformSingle
	multiPlatformMulti
)

// modeFor is the pure transition selector over (platformCount, outputCount).
func modeFor(platformCount, outputCount int) mode {
	switch {
	case platformCount == 1 && outputCount == 1:
		return singlePlatformSingle
	case platformCount == 1:
		return singlePlatformMulti
	case outputCount == 1:
		return multiPlatformSingle
	default:
		return multiPlatformMulti
	}
}

// variantItem is one element of the JSON array contract used for
// multi-variant single-platform generation.
type variantItem struct {
	Text string `json:"text"`
}

// batchPayload is the JSON object contract used for multi-platform
// single-variant generation.
type batchPayload struct {
	Copies []adcopy.Copy `json:"copies"`
}

// Generate runs the full pipeline for a validated request.
func (g *Generator) Generate(ctx context.Context, req *adcopy.Request) (*adcopy.Result, error) {
	var (
		copies []adcopy.Copy
		err    error
	)
	switch modeFor(len(req.Platforms), req.OutputCount) {
	case singlePlatformSingle:
		copies, err = g.generateOne(ctx, req, req.Platforms[0])
	case singlePlatformMulti:
		copies, err = g.generateVariants(ctx, req, req.Platforms[0])
	case multiPlatformSingle:
		copies, err = g.generateBatch(ctx, req)
	case multiPlatformMulti:
		copies, err = g.fanOut(ctx, req)
	}
	if err != nil {
		return nil, err
	}

	requested := len(req.Platforms) * req.OutputCount
	if len(copies) != requested {
		g.log.Warn().
			Int("requested", requested).
			Int("delivered", len(copies)).
			Msg("generation cardinality mismatch")
	}
	return &adcopy.Result{
		Copies:         copies,
		Model:          g.completer.Model(),
		GeneratedAt:    time.Now().UTC(),
		RequestedCount: requested,
		DeliveredCount: len(copies),
	}, nil
}

// generateOne runs the plain-text path and wraps the answer as one copy.
func (g *Generator) generateOne(ctx context.Context, req *adcopy.Request, platform adcopy.Platform) ([]adcopy.Copy, error) {
	prompt := Compose(req, platform)
	text, err := g.completer.CompleteText(ctx, prompt.System, prompt.User)
	if err != nil {
		return nil, fmt.Errorf("complete text for %s: %w", platform, err)
	}
	return []adcopy.Copy{{Platform: platform, Text: text}}, nil
}

// generateVariants requests outputCount variants as a JSON array. Excess
// items are truncated, shortfall is kept as-is; a parse failure or empty
// array degrades to a single plain-text completion so the caller always gets
// at least one result.
func (g *Generator) generateVariants(ctx context.Context, req *adcopy.Request, platform adcopy.Platform) ([]adcopy.Copy, error) {
	prompt := ComposeVariants(req, platform, req.OutputCount)
	raw, err := g.completer.CompleteJSON(ctx, prompt.System, prompt.User)
	var items []variantItem
	if err == nil {
		if uerr := json.Unmarshal(raw, &items); uerr != nil {
			err = llm.NewParseError(string(raw), uerr)
		}
	}
	if err != nil {
		var parseErr *llm.ParseError
		if !errors.As(err, &parseErr) {
			return nil, fmt.Errorf("complete variants for %s: %w", platform, err)
		}
		g.log.Warn().Str("platform", string(platform)).Msg("structured variants unparsable, falling back to plain completion")
		return g.generateOne(ctx, req, platform)
	}
	if len(items) == 0 {
		g.log.Warn().Str("platform", string(platform)).Msg("structured variants empty, falling back to plain completion")
		return g.generateOne(ctx, req, platform)
	}
	if len(items) != req.OutputCount {
		g.log.Warn().
			Str("platform", string(platform)).
			Int("requested", req.OutputCount).
			Int("returned", len(items)).
			Msg("variant count mismatch, truncating to requested count")
	}
	if len(items) > req.OutputCount {
		items = items[:req.OutputCount]
	}
	copies := make([]adcopy.Copy, 0, len(items))
	for _, item := range items {
		copies = append(copies, adcopy.Copy{Platform: platform, Text: item.Text})
	}
	return copies, nil
}

// generateBatch requests one copy per platform in a single structured call.
// Any failure of that call degrades to independent per-platform generation in
// the original platform order.
func (g *Generator) generateBatch(ctx context.Context, req *adcopy.Request) ([]adcopy.Copy, error) {
	prompt := ComposeBatch(req)
	raw, err := g.completer.CompleteJSON(ctx, prompt.System, prompt.User)
	if err == nil {
		var payload batchPayload
		if uerr := json.Unmarshal(raw, &payload); uerr != nil {
			err = llm.NewParseError(string(raw), uerr)
		} else if len(payload.Copies) == 0 {
			err = llm.NewParseError(string(raw), errors.New("copies field absent or empty"))
		} else {
			if len(payload.Copies) != len(req.Platforms) {
				g.log.Warn().
					Int("requested", len(req.Platforms)).
					Int("returned", len(payload.Copies)).
					Msg("batch platform count mismatch")
			}
			return payload.Copies, nil
		}
	}
	g.log.Warn().Err(err).Msg("batch generation failed, falling back to per-platform generation")
	return g.fanOutSingle(ctx, req)
}

// fanOut handles multi-platform multi-variant generation: one independent
// variants call per platform, sequential, results concatenated in request
// order. Batch JSON for N platforms x M variants is skipped deliberately.
func (g *Generator) fanOut(ctx context.Context, req *adcopy.Request) ([]adcopy.Copy, error) {
	var copies []adcopy.Copy
	for _, platform := range req.Platforms {
		platformCopies, err := g.generateVariants(ctx, req, platform)
		if err != nil {
			return nil, err
		}
		copies = append(copies, platformCopies...)
	}
	return copies, nil
}

// fanOutSingle is the batch fallback: one plain single-copy call per
// platform, in request order.
func (g *Generator) fanOutSingle(ctx context.Context, req *adcopy.Request) ([]adcopy.Copy, error) {
	var copies []adcopy.Copy
	for _, platform := range req.Platforms {
		platformCopies, err := g.generateOne(ctx, req, platform)
		if err != nil {
			return nil, err
		}
		copies = append(copies, platformCopies...)
	}
	return copies, nil
}
