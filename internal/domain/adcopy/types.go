// Package adcopy defines the marketing-copy generation model: the closed
// option sets a request may use, the validated request itself, and the
// generated output shapes. Enum values carry the Korean wire literals the
// public API speaks; the type names are the English handles used in code.
package adcopy

import "time"

// Platform is a target distribution channel.
type Platform string

const (
	PlatformInstagram Platform = "인스타그램"
	PlatformYouTube   Platform = "유튜브"
	PlatformFacebook  Platform = "페이스북"
	PlatformTikTok    Platform = "틱톡"
	PlatformBlog      Platform = "블로그"
)

// Platforms lists every supported platform in canonical order.
var Platforms = []Platform{
	PlatformInstagram,
	PlatformYouTube,
	PlatformFacebook,
	PlatformTikTok,
	PlatformBlog,
}

// Valid reports whether p is a known platform.
func (p Platform) Valid() bool {
	switch p {
	case PlatformInstagram, PlatformYouTube, PlatformFacebook, PlatformTikTok, PlatformBlog:
		return true
	}
	return false
}

// Gender is the target audience gender.
type Gender string

const (
	GenderMale   Gender = "남성"
	GenderFemale Gender = "여성"
	GenderAll    Gender = "전체"
)

func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderAll:
		return true
	}
	return false
}

// AgeRange is the target audience age band.
type AgeRange string

const (
	AgeTeens       AgeRange = "10대"
	AgeTwenties    AgeRange = "20대"
	AgeThirties    AgeRange = "30대"
	AgeForties     AgeRange = "40대"
	AgeFiftiesPlus AgeRange = "50대 이상"
)

func (a AgeRange) Valid() bool {
	switch a {
	case AgeTeens, AgeTwenties, AgeThirties, AgeForties, AgeFiftiesPlus:
		return true
	}
	return false
}

// Purpose is the marketing objective the copy should serve.
type Purpose string

const (
	PurposeBrandAwareness     Purpose = "브랜드 인지도"
	PurposePurchaseConversion Purpose = "제품 구매 유도"
	PurposeEventParticipation Purpose = "이벤트 참여"
	PurposeNewSubscribers     Purpose = "신규 구독자 유입"
)

func (p Purpose) Valid() bool {
	switch p {
	case PurposeBrandAwareness, PurposePurchaseConversion, PurposeEventParticipation, PurposeNewSubscribers:
		return true
	}
	return false
}

// Tone is the rhetorical style of the copy, independent of its intensity.
type Tone string

const (
	ToneEmotional    Tone = "감성적"
	ToneHumorous     Tone = "유머러스"
	ToneProfessional Tone = "전문적"
	ToneTrendy       Tone = "트렌디"
	ToneAuthentic    Tone = "진정성 있는"
)

func (t Tone) Valid() bool {
	switch t {
	case ToneEmotional, ToneHumorous, ToneProfessional, ToneTrendy, ToneAuthentic:
		return true
	}
	return false
}

// Language selects the output language of the generated copy.
type Language string

const (
	LanguageKorean   Language = "한국어"
	LanguageEnglish  Language = "영어"
	LanguageJapanese Language = "일본어"
)

func (l Language) Valid() bool {
	switch l {
	case LanguageKorean, LanguageEnglish, LanguageJapanese:
		return true
	}
	return false
}

const (
	// MinValueProposition and MaxValueProposition bound the trimmed rune
	// length of the seed statement.
	MinValueProposition = 10
	MaxValueProposition = 200

	// MaxPlatforms caps how many distinct platforms one request may target.
	MaxPlatforms = 5

	// Intensity and output-count share the same closed range.
	MinToneIntensity = 1
	MaxToneIntensity = 5
	MinOutputCount   = 1
	MaxOutputCount   = 5

	DefaultToneIntensity = 3
	DefaultOutputCount   = 3
)

// Request is a fully validated generation request. Instances are produced by
// copygen.ParseRequest and never mutated afterwards.
type Request struct {
	ValueProposition string     `json:"valueProposition"`
	Gender           Gender     `json:"gender"`
	AgeRange         AgeRange   `json:"ageRange"`
	Platforms        []Platform `json:"platforms"`
	Purpose          Purpose    `json:"purpose"`
	Tone             Tone       `json:"tone"`
	Language         Language   `json:"language"`
	ToneIntensity    int        `json:"toneIntensity"`
	OutputCount      int        `json:"outputCount"`
	IncludeEmojis    bool       `json:"includeEmojis"`
	IncludeHashtags  bool       `json:"includeHashtags"`
}

// Copy is one generated marketing text tagged with its platform.
type Copy struct {
	Platform Platform `json:"platform"`
	Text     string   `json:"text"`
}

// Result is a successful generation outcome.
type Result struct {
	Copies         []Copy
	Model          string
	GeneratedAt    time.Time
	RequestedCount int
	DeliveredCount int
}
