package copygen

import (
	"fmt"
	"strings"

	"server/internal/domain/adcopy"
)

// Prompt is a composed (system, user) instruction pair. Prompts are built
// fresh per invocation and never mutated; identical inputs yield
// byte-identical prompts.
type Prompt struct {
	System string
	User   string
}

// systemPrompt defines the copywriter persona. It is constant across every
// generation call.
const systemPrompt = `당신은 20년 경력의 마케팅 카피라이터입니다.
다양한 플랫폼과 타겟에 맞춘 효과적인 마케팅 문구를 작성하는 전문가입니다.

당신의 역할:
- 타겟 고객의 감정을 움직이는 설득력 있는 문구 작성
- 플랫폼별 특성을 완벽하게 이해하고 최적화된 콘텐츠 제공
- 브랜드 가치와 제품의 핵심 메시지를 명확하게 전달
- 측정 가능한 마케팅 성과를 달성하는 카피 작성

핵심 원칙:
1. 간결하고 명확한 메시지
2. 타겟의 언어와 톤 사용
3. 행동을 유도하는 강력한 CTA (Call To Action)
4. 플랫폼별 최적화된 형식과 길이`

// Directive functions, one per request axis. Each is a pure mapping from the
// enum value to an instruction sentence so wording changes stay local to one
// axis without touching assembly order.

func genderDirective(g adcopy.Gender) string {
	switch g {
	case adcopy.GenderMale:
		return "남성 타겟을 고려하여 직접적이고 논리적인 어조를 사용하세요."
	case adcopy.GenderFemale:
		return "여성 타겟을 고려하여 감성적이고 공감적인 어조를 사용하세요."
	case adcopy.GenderAll:
		return "성별 구분 없이 보편적으로 공감할 수 있는 중립적 어조를 사용하세요."
	}
	return ""
}

func ageRangeDirective(a adcopy.AgeRange) string {
	switch a {
	case adcopy.AgeTeens:
		return "10대가 사용하는 트렌디한 신조어와 유행어를 활용하고, 짧고 임팩트 있는 문장을 사용하세요."
	case adcopy.AgeTwenties:
		return "20대의 라이프스타일과 가치관을 반영하고, 자기 표현과 개성을 중시하는 메시지를 전달하세요."
	case adcopy.AgeThirties:
		return "30대의 실용성과 품질을 중시하는 가치관을 반영하고, 신뢰감 있는 전문적인 톤을 사용하세요."
	case adcopy.AgeForties:
		return "40대의 경험과 안정성을 중시하는 특성을 고려하고, 가치와 혜택을 명확히 제시하세요."
	case adcopy.AgeFiftiesPlus:
		return "50대 이상의 신중하고 세심한 특성을 고려하고, 명확하고 이해하기 쉬운 메시지를 전달하세요."
	}
	return ""
}

func purposeDirective(p adcopy.Purpose) string {
	switch p {
	case adcopy.PurposeBrandAwareness:
		return "브랜드의 핵심 가치와 정체성을 각인시키는 데 초점을 맞추세요. 기억에 남는 메시지를 만드세요."
	case adcopy.PurposePurchaseConversion:
		return "구체적인 혜택과 가치를 강조하고, 즉각적인 구매 행동을 유도하는 강력한 CTA를 포함하세요."
	case adcopy.PurposeEventParticipation:
		return "이벤트의 매력과 참여 방법을 명확히 제시하고, FOMO(놓칠 수 있다는 두려움)를 활용하세요."
	case adcopy.PurposeNewSubscribers:
		return "구독 시 얻을 수 있는 가치와 혜택을 구체적으로 제시하고, 쉬운 구독 방법을 안내하세요."
	}
	return ""
}

func toneDirective(t adcopy.Tone) string {
	switch t {
	case adcopy.ToneEmotional:
		return "감정에 호소하는 따뜻하고 공감적인 언어를 사용하세요. 개인적인 경험과 감정을 자극하세요."
	case adcopy.ToneHumorous:
		return "위트 있고 재미있는 표현을 활용하되, 브랜드 이미지를 해치지 않는 선에서 유머를 더하세요."
	case adcopy.ToneProfessional:
		return "신뢰감 있고 권위 있는 전문가적 톤을 유지하세요. 정확한 정보와 데이터를 활용하세요."
	case adcopy.ToneTrendy:
		return "최신 트렌드와 유행을 반영하고, 현대적이고 세련된 언어를 사용하세요."
	case adcopy.ToneAuthentic:
		return "솔직하고 투명한 커뮤니케이션으로 신뢰를 구축하세요. 과장 없이 진실된 메시지를 전달하세요."
	}
	return ""
}

func intensityDirective(intensity int) string {
	switch {
	case intensity <= 2:
		return "부드럽고 온화한 표현을 사용하여 친근하게 접근하세요."
	case intensity == 3:
		return "적절한 균형을 유지하며 자연스럽게 메시지를 전달하세요."
	case intensity == 4:
		return "확신에 찬 강한 표현으로 주목을 끌고 행동을 촉구하세요."
	default:
		return "강렬하고 임팩트 있는 표현으로 즉각적인 반응을 이끌어내세요."
	}
}

func languageDirective(l adcopy.Language) string {
	switch l {
	case adcopy.LanguageKorean:
		return "한국어로 작성하되, 한국 문화와 정서에 맞는 표현을 사용하세요."
	case adcopy.LanguageEnglish:
		return "영어로 작성하되, 글로벌 감각에 맞는 자연스러운 영어 표현을 사용하세요."
	case adcopy.LanguageJapanese:
		return "일본어로 작성하되, 일본 문화의 예의와 정중함을 반영하세요."
	}
	return "한국어로 작성하세요."
}

func emojiDirective(include bool) string {
	if include {
		return "- 이모지를 적절히 활용하세요."
	}
	return "- 이모지를 사용하지 마세요."
}

// hashtagDirective only applies on platforms where hashtags are part of the
// format conventions.
func hashtagDirective(platform adcopy.Platform, include bool) string {
	if !include {
		return ""
	}
	switch platform {
	case adcopy.PlatformInstagram:
		return "- 관련성 높은 해시태그 3-5개를 포함하세요."
	case adcopy.PlatformTikTok:
		return "- 트렌디한 해시태그 2-3개를 포함하세요."
	case adcopy.PlatformYouTube, adcopy.PlatformFacebook, adcopy.PlatformBlog:
		return ""
	}
	return ""
}

// Compose builds the single-platform prompt. Section order is fixed and part
// of the contract: changing it changes model behavior.
func Compose(req *adcopy.Request, platform adcopy.Platform) Prompt {
	profile, _ := adcopy.ProfileFor(platform)

	sb := &strings.Builder{}
	fmt.Fprintf(sb, "다음 조건에 맞는 %s 마케팅 문구를 1개 작성해주세요:\n\n", platform)
	fmt.Fprintf(sb, "【제품/서비스 가치 제언】\n%s\n\n", req.ValueProposition)
	fmt.Fprintf(sb, "【타겟 정보】\n- 성별: %s\n- 연령대: %s\n\n", req.Gender, req.AgeRange)
	fmt.Fprintf(sb, "【마케팅 목적】\n%s\n\n", req.Purpose)
	fmt.Fprintf(sb, "【작성 가이드라인】\n%s\n\n", profile.Guideline)
	sb.WriteString("【타겟 맞춤 어조】\n")
	fmt.Fprintf(sb, "- %s\n", genderDirective(req.Gender))
	fmt.Fprintf(sb, "- %s\n", ageRangeDirective(req.AgeRange))
	fmt.Fprintf(sb, "- %s\n", toneDirective(req.Tone))
	fmt.Fprintf(sb, "- %s\n\n", intensityDirective(req.ToneIntensity))
	fmt.Fprintf(sb, "【마케팅 전략】\n%s\n\n", purposeDirective(req.Purpose))
	sb.WriteString("【언어 및 형식】\n")
	fmt.Fprintf(sb, "- %s\n", languageDirective(req.Language))
	fmt.Fprintf(sb, "- 권장 최대 길이: %d자\n", profile.MaxLength)
	fmt.Fprintf(sb, "%s\n", emojiDirective(req.IncludeEmojis))
	if d := hashtagDirective(platform, req.IncludeHashtags); d != "" {
		fmt.Fprintf(sb, "%s\n", d)
	}
	sb.WriteString("\n【출력 형식】\n마케팅 문구만 작성하고, 설명이나 추가 코멘트는 포함하지 마세요.")

	return Prompt{System: systemPrompt, User: sb.String()}
}

// ComposeVariants extends the single-platform prompt with a strict JSON-array
// contract when more than one variant is requested.
func ComposeVariants(req *adcopy.Request, platform adcopy.Platform, count int) Prompt {
	base := Compose(req, platform)

	sb := &strings.Builder{}
	sb.WriteString(base.User)
	fmt.Fprintf(sb, "\n\n【중요】정확히 %d개의 서로 다른 마케팅 문구를 생성해주세요.\n\n", count)
	sb.WriteString("다음 JSON 형식으로만 응답하세요:\n[\n  {\"text\": \"첫 번째 문구\"},\n  {\"text\": \"두 번째 문구\"}\n]\n\n")
	sb.WriteString("필수 조건:\n")
	fmt.Fprintf(sb, "- 정확히 %d개만 생성 (%d개보다 많거나 적으면 안 됨)\n", count, count)
	sb.WriteString("- 각 문구는 서로 다른 접근 방식과 표현 사용\n")
	fmt.Fprintf(sb, "- 배열의 요소 개수가 정확히 %d개인지 확인", count)

	return Prompt{System: base.System, User: sb.String()}
}

// ComposeBatch builds the multi-platform prompt: one guideline block per
// platform in request order, and a JSON object contract with exactly one
// entry per platform.
func ComposeBatch(req *adcopy.Request) Prompt {
	sb := &strings.Builder{}
	sb.WriteString("다음 조건에 맞는 마케팅 문구를 각 플랫폼별로 1개씩 작성해주세요:\n\n")
	fmt.Fprintf(sb, "【제품/서비스 가치 제언】\n%s\n\n", req.ValueProposition)
	fmt.Fprintf(sb, "【타겟 정보】\n- 성별: %s\n- 연령대: %s\n\n", req.Gender, req.AgeRange)
	fmt.Fprintf(sb, "【마케팅 목적】\n%s\n\n", req.Purpose)
	sb.WriteString("【플랫폼별 작성 가이드라인】\n")
	for _, platform := range req.Platforms {
		profile, _ := adcopy.ProfileFor(platform)
		fmt.Fprintf(sb, "\n[%s]\n%s\n- 권장 최대 길이: %d자\n", platform, profile.Guideline, profile.MaxLength)
	}
	sb.WriteString("\n【타겟 맞춤 어조】\n")
	fmt.Fprintf(sb, "- %s\n", genderDirective(req.Gender))
	fmt.Fprintf(sb, "- %s\n", ageRangeDirective(req.AgeRange))
	fmt.Fprintf(sb, "- %s\n", toneDirective(req.Tone))
	fmt.Fprintf(sb, "- %s\n\n", intensityDirective(req.ToneIntensity))
	fmt.Fprintf(sb, "【마케팅 전략】\n%s\n\n", purposeDirective(req.Purpose))
	sb.WriteString("【언어 및 형식】\n")
	fmt.Fprintf(sb, "- %s\n", languageDirective(req.Language))
	fmt.Fprintf(sb, "%s\n", emojiDirective(req.IncludeEmojis))
	if req.IncludeHashtags {
		sb.WriteString("- 인스타그램과 틱톡의 경우 해시태그를 포함하세요.\n")
	}
	sb.WriteString("\n【출력 형식】\n다음 JSON 형식으로만 응답하세요:\n")
	sb.WriteString("{\n  \"copies\": [\n    {\n      \"platform\": \"플랫폼명\",\n      \"text\": \"마케팅 문구\"\n    }\n  ]\n}\n\n")
	names := make([]string, 0, len(req.Platforms))
	for _, p := range req.Platforms {
		names = append(names, string(p))
	}
	fmt.Fprintf(sb, "각 플랫폼(%s)에 대해 1개씩, 총 %d개의 문구를 나열된 순서대로 생성하세요.",
		strings.Join(names, ", "), len(req.Platforms))

	return Prompt{System: systemPrompt, User: sb.String()}
}
