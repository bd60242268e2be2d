package adcopy

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestEnumValidation(t *testing.T) {
	t.Parallel()

	if !PlatformInstagram.Valid() || Platform("트위터").Valid() || Platform("").Valid() {
		t.Error("Platform.Valid misclassifies values")
	}
	if !GenderAll.Valid() || Gender("기타").Valid() {
		t.Error("Gender.Valid misclassifies values")
	}
	if !AgeFiftiesPlus.Valid() || AgeRange("60대").Valid() {
		t.Error("AgeRange.Valid misclassifies values")
	}
	if !PurposeNewSubscribers.Valid() || Purpose("후원 요청").Valid() {
		t.Error("Purpose.Valid misclassifies values")
	}
	if !ToneTrendy.Valid() || Tone("공격적").Valid() {
		t.Error("Tone.Valid misclassifies values")
	}
	if !LanguageJapanese.Valid() || Language("중국어").Valid() {
		t.Error("Language.Valid misclassifies values")
	}
}

func TestPlatformsListMatchesValidation(t *testing.T) {
	t.Parallel()

	if len(Platforms) != 5 {
		t.Fatalf("len(Platforms) = %d, want 5", len(Platforms))
	}
	seen := make(map[Platform]bool, len(Platforms))
	for _, p := range Platforms {
		if !p.Valid() {
			t.Errorf("listed platform %q fails Valid()", p)
		}
		if seen[p] {
			t.Errorf("platform %q listed twice", p)
		}
		seen[p] = true
	}
}

func TestProfileForEveryPlatform(t *testing.T) {
	t.Parallel()

	wantLengths := map[Platform]int{
		PlatformInstagram: 150,
		PlatformYouTube:   200,
		PlatformFacebook:  180,
		PlatformTikTok:    100,
		PlatformBlog:      300,
	}
	for _, p := range Platforms {
		profile, ok := ProfileFor(p)
		if !ok {
			t.Fatalf("ProfileFor(%q) missing", p)
		}
		if profile.Platform != p {
			t.Errorf("ProfileFor(%q).Platform = %q", p, profile.Platform)
		}
		if profile.MaxLength != wantLengths[p] {
			t.Errorf("ProfileFor(%q).MaxLength = %d, want %d", p, profile.MaxLength, wantLengths[p])
		}
		if strings.TrimSpace(profile.Guideline) == "" {
			t.Errorf("ProfileFor(%q) has empty guideline", p)
		}
		if len(profile.Features) == 0 {
			t.Errorf("ProfileFor(%q) has no features", p)
		}
	}
	if _, ok := ProfileFor(Platform("트위터")); ok {
		t.Error("ProfileFor accepted an unknown platform")
	}
}

func TestValuePropositionBoundsAreRuneBased(t *testing.T) {
	t.Parallel()

	// Korean text is multi-byte; the bounds count runes, not bytes.
	seed := strings.Repeat("가", MinValueProposition)
	if utf8.RuneCountInString(seed) != MinValueProposition {
		t.Fatalf("rune count = %d", utf8.RuneCountInString(seed))
	}
	if len(seed) == MinValueProposition {
		t.Fatal("test seed is not multi-byte")
	}
}
