package ai

import "testing"

func TestStripFences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "no fences",
			in:   `{"company": "Acme"}`,
			want: `{"company": "Acme"}`,
		},
		{
			name: "plain fences",
			in:   "```\n{\"company\": \"Acme\"}\n```",
			want: `{"company": "Acme"}`,
		},
		{
			name: "json language tag",
			in:   "```json\n{\"company\": \"Acme\"}\n```",
			want: `{"company": "Acme"}`,
		},
		{
			name: "surrounding whitespace",
			in:   "  \n```json\n{\"a\": 1}\n```\n  ",
			want: `{"a": 1}`,
		},
		{
			name: "no trailing fence",
			in:   "```json\n{\"a\": 1}",
			want: `{"a": 1}`,
		},
		{
			name: "payload containing backticks",
			in:   "```json\n{\"notes\": \"use `go build`\"}\n```",
			want: "{\"notes\": \"use `go build`\"}",
		},
		{
			name: "first line is payload not language tag",
			in:   "```\n[\"a\", \"b\"]\n```",
			want: `["a", "b"]`,
		},
		{
			name: "empty input",
			in:   "",
			want: "",
		},
		{
			name: "only fences",
			in:   "```json\n```",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StripFences(tt.in)
			if got != tt.want {
				t.Errorf("StripFences(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
