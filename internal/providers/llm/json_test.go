package llm

import "testing"

func TestExtractJSONFragment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "bare object",
			in:   `{"copies":[]}`,
			want: `{"copies":[]}`,
		},
		{
			name: "bare array",
			in:   `[{"text":"하나"}]`,
			want: `[{"text":"하나"}]`,
		},
		{
			name: "json fence",
			in:   "```json\n{\"copies\":[]}\n```",
			want: `{"copies":[]}`,
		},
		{
			name: "uppercase fence",
			in:   "```JSON\n[1,2]\n```",
			want: `[1,2]`,
		},
		{
			name: "anonymous fence",
			in:   "```\n{\"a\":1}\n```",
			want: `{"a":1}`,
		},
		{
			name: "prose around payload",
			in:   "요청하신 결과입니다:\n[{\"text\":\"문구\"}]\n도움이 되었길 바랍니다.",
			want: `[{"text":"문구"}]`,
		},
		{
			name: "fence and prose",
			in:   "다음과 같습니다.\n```json\n{\"text\":\"문구\"}\n```",
			want: `{"text":"문구"}`,
		},
		{
			name: "no payload at all",
			in:   "죄송하지만 생성할 수 없습니다.",
			want: "죄송하지만 생성할 수 없습니다.",
		},
		{
			name: "empty input",
			in:   "",
			want: "",
		},
		{
			name: "whitespace only",
			in:   "   \n\t ",
			want: "",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := extractJSONFragment(tt.in); got != tt.want {
				t.Errorf("extractJSONFragment(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestTrimCodeFenceUnterminated(t *testing.T) {
	t.Parallel()

	got := trimCodeFence("```json\n{\"a\":1}")
	if got != `{"a":1}` {
		t.Errorf("trimCodeFence = %q", got)
	}
}
