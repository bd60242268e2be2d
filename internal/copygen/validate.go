package copygen

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"server/internal/domain/adcopy"
)

// FieldError describes one validation rule violation.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FieldErrors aggregates every violation found in a request. Rules are
// evaluated independently so the caller sees all problems at once.
type FieldErrors []FieldError

func (e FieldErrors) Error() string {
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		parts = append(parts, fmt.Sprintf("%s: %s", fe.Field, fe.Message))
	}
	return strings.Join(parts, ", ")
}

// rawRequest mirrors the wire payload before validation. Optional numeric
// fields decode as float64 so a non-integer value becomes a field error
// instead of a decode failure.
type rawRequest struct {
	ValueProposition string   `json:"valueProposition"`
	Gender           string   `json:"gender"`
	AgeRange         string   `json:"ageRange"`
	Platforms        []string `json:"platforms"`
	Purpose          string   `json:"purpose"`
	Tone             string   `json:"tone"`
	Language         string   `json:"language"`
	ToneIntensity    *float64 `json:"toneIntensity"`
	OutputCount      *float64 `json:"outputCount"`
	IncludeEmojis    *bool    `json:"includeEmojis"`
	IncludeHashtags  *bool    `json:"includeHashtags"`
}

// ErrInvalidJSON reports a body that could not be decoded at all, as opposed
// to one that decoded but violates the schema.
type ErrInvalidJSON struct{ cause error }

func (e *ErrInvalidJSON) Error() string { return "invalid json body: " + e.cause.Error() }
func (e *ErrInvalidJSON) Unwrap() error { return e.cause }

// ParseRequest decodes and validates a raw generation payload. On success it
// returns an immutable request with defaults applied for absent optional
// fields; otherwise the returned error is either *ErrInvalidJSON or a
// non-empty FieldErrors listing every violated rule.
func ParseRequest(body []byte) (*adcopy.Request, error) {
	var raw rawRequest
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, &ErrInvalidJSON{cause: err}
	}
	return validate(raw)
}

func validate(raw rawRequest) (*adcopy.Request, error) {
	var errs FieldErrors
	add := func(field, message string) {
		errs = append(errs, FieldError{Field: field, Message: message})
	}

	proposition := strings.TrimSpace(raw.ValueProposition)
	if n := utf8.RuneCountInString(proposition); n < adcopy.MinValueProposition {
		add("valueProposition", fmt.Sprintf("가치 제언은 최소 %d자 이상이어야 합니다.", adcopy.MinValueProposition))
	} else if n > adcopy.MaxValueProposition {
		add("valueProposition", fmt.Sprintf("가치 제언은 최대 %d자를 초과할 수 없습니다.", adcopy.MaxValueProposition))
	}

	gender := adcopy.Gender(raw.Gender)
	if !gender.Valid() {
		add("gender", fmt.Sprintf("지원하지 않는 성별 값입니다: %q", raw.Gender))
	}
	ageRange := adcopy.AgeRange(raw.AgeRange)
	if !ageRange.Valid() {
		add("ageRange", fmt.Sprintf("지원하지 않는 연령대 값입니다: %q", raw.AgeRange))
	}
	purpose := adcopy.Purpose(raw.Purpose)
	if !purpose.Valid() {
		add("purpose", fmt.Sprintf("지원하지 않는 마케팅 목적입니다: %q", raw.Purpose))
	}
	tone := adcopy.Tone(raw.Tone)
	if !tone.Valid() {
		add("tone", fmt.Sprintf("지원하지 않는 어조 스타일입니다: %q", raw.Tone))
	}
	language := adcopy.Language(raw.Language)
	if !language.Valid() {
		add("language", fmt.Sprintf("지원하지 않는 언어입니다: %q", raw.Language))
	}

	platforms := validatePlatforms(raw.Platforms, add)

	intensity := intInRange(raw.ToneIntensity, "toneIntensity", "톤 강도",
		adcopy.MinToneIntensity, adcopy.MaxToneIntensity, adcopy.DefaultToneIntensity, add)
	count := intInRange(raw.OutputCount, "outputCount", "생성 분량",
		adcopy.MinOutputCount, adcopy.MaxOutputCount, adcopy.DefaultOutputCount, add)

	if len(errs) > 0 {
		return nil, errs
	}

	req := &adcopy.Request{
		ValueProposition: proposition,
		Gender:           gender,
		AgeRange:         ageRange,
		Platforms:        platforms,
		Purpose:          purpose,
		Tone:             tone,
		Language:         language,
		ToneIntensity:    intensity,
		OutputCount:      count,
		IncludeEmojis:    boolOrDefault(raw.IncludeEmojis, true),
		IncludeHashtags:  boolOrDefault(raw.IncludeHashtags, true),
	}
	return req, nil
}

// validatePlatforms checks length bounds, membership, and uniqueness.
// Duplicates are rejected rather than deduplicated: a repeated platform would
// only spend upstream quota on an identical second answer.
func validatePlatforms(values []string, add func(field, message string)) []adcopy.Platform {
	if len(values) == 0 {
		add("platforms", "최소 1개 이상의 플랫폼을 선택해야 합니다.")
		return nil
	}
	if len(values) > adcopy.MaxPlatforms {
		add("platforms", fmt.Sprintf("플랫폼은 최대 %d개까지만 선택할 수 있습니다.", adcopy.MaxPlatforms))
	}
	seen := make(map[adcopy.Platform]struct{}, len(values))
	platforms := make([]adcopy.Platform, 0, len(values))
	for _, v := range values {
		p := adcopy.Platform(v)
		if !p.Valid() {
			add("platforms", fmt.Sprintf("지원하지 않는 플랫폼입니다: %q", v))
			continue
		}
		if _, dup := seen[p]; dup {
			add("platforms", fmt.Sprintf("플랫폼이 중복되었습니다: %q", v))
			continue
		}
		seen[p] = struct{}{}
		platforms = append(platforms, p)
	}
	return platforms
}

func intInRange(v *float64, field, label string, min, max, fallback int, add func(field, message string)) int {
	if v == nil {
		return fallback
	}
	if *v != float64(int(*v)) {
		add(field, fmt.Sprintf("%s는 정수여야 합니다.", label))
		return fallback
	}
	n := int(*v)
	if n < min || n > max {
		add(field, fmt.Sprintf("%s는 %d에서 %d 사이여야 합니다.", label, min, max))
		return fallback
	}
	return n
}

func boolOrDefault(v *bool, fallback bool) bool {
	if v == nil {
		return fallback
	}
	return *v
}
