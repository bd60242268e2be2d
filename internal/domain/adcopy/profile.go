package adcopy

// Profile captures the static style characteristics of a platform. The table
// is populated once at init and read-only afterwards, so concurrent lookups
// need no locking.
type Profile struct {
	Platform  Platform
	MaxLength int
	Style     string
	Features  []string
	Guideline string
}

var profiles = map[Platform]Profile{
	PlatformInstagram: {
		Platform:  PlatformInstagram,
		MaxLength: 150,
		Style:     "짧고 감성적, 시각적",
		Features:  []string{"해시태그 중심", "이모지 활용", "간결한 메시지"},
		Guideline: `인스타그램 마케팅 문구 작성 가이드라인:
- 첫 1-2문장에 핵심 메시지 압축 (150자 이내 권장)
- 이모지를 자연스럽게 활용하여 시각적 매력 증대
- 해시태그 3-5개 포함 (관련성 높고 검색 가능한 태그)
- 시각적 콘텐츠와 함께 작동하는 캡션 작성
- 질문형 또는 공감 유도 문장으로 참여 유도`,
	},
	PlatformYouTube: {
		Platform:  PlatformYouTube,
		MaxLength: 200,
		Style:     "서사적, 클릭 유도",
		Features:  []string{"호기심 유발", "질문형 제목", "구체적 정보"},
		Guideline: `유튜브 마케팅 문구 작성 가이드라인:
- 호기심을 자극하는 제목 스타일 (200자 이내)
- 클릭을 유도하는 임팩트 있는 첫 문장
- 구체적인 혜택이나 결과 제시
- 영상 내용을 암시하되 너무 많이 공개하지 않음
- 시청자의 문제나 궁금증 해결 약속`,
	},
	PlatformFacebook: {
		Platform:  PlatformFacebook,
		MaxLength: 180,
		Style:     "커뮤니티 중심, 참여 유도",
		Features:  []string{"스토리텔링", "공감 형성", "대화형 톤"},
		Guideline: `페이스북 마케팅 문구 작성 가이드라인:
- 스토리텔링 형식으로 공감 형성 (180자 이내 권장)
- 커뮤니티 중심의 대화형 톤
- 댓글과 공유를 유도하는 질문 포함
- 감정적 연결을 만드는 개인적인 어조
- 친구에게 말하듯 자연스러운 문체`,
	},
	PlatformTikTok: {
		Platform:  PlatformTikTok,
		MaxLength: 100,
		Style:     "트렌디, 짧고 강렬",
		Features:  []string{"임팩트 있는 첫 문장", "트렌드 반영", "액션 유도"},
		Guideline: `틱톡 마케팅 문구 작성 가이드라인:
- 짧고 강렬한 메시지 (100자 이내)
- 트렌드를 반영한 최신 용어 사용
- 즉각적인 반응을 유도하는 액션 중심
- Z세대 감성에 맞는 캐주얼한 톤
- 첫 3초에 주목을 끄는 훅`,
	},
	PlatformBlog: {
		Platform:  PlatformBlog,
		MaxLength: 300,
		Style:     "상세하고 정보 제공",
		Features:  []string{"SEO 최적화", "구조화된 정보", "신뢰성"},
		Guideline: `블로그 마케팅 문구 작성 가이드라인:
- 정보 제공 중심의 상세한 설명 (300자 이내)
- SEO를 고려한 키워드 자연스럽게 포함
- 신뢰성과 전문성을 보여주는 톤
- 구조화된 정보로 읽기 쉽게 작성
- 심층적인 가치 제공에 초점`,
	},
}

// ProfileFor looks up the static profile for a platform. The second return is
// false for unknown platforms, which validated requests never contain.
func ProfileFor(p Platform) (Profile, bool) {
	profile, ok := profiles[p]
	return profile, ok
}
