package gitops

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeURL(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain URL unchanged",
			input:    "https://github.com/acme/widget",
			expected: "https://github.com/acme/widget",
		},
		{
			name:     "strips github tree suffix",
			input:    "https://github.com/acme/widget/tree/develop",
			expected: "https://github.com/acme/widget",
		},
		{
			name:     "strips github blob suffix",
			input:    "https://github.com/acme/widget/blob/main/pkg/foo.go",
			expected: "https://github.com/acme/widget",
		},
		{
			name:     "strips gitlab tree suffix",
			input:    "https://gitlab.com/acme/widget/-/tree/feature/login",
			expected: "https://gitlab.com/acme/widget",
		},
		{
			name:     "strips query string",
			input:    "https://github.com/acme/widget?ref_type=heads",
			expected: "https://github.com/acme/widget",
		},
		{
			name:     "strips trailing slash",
			input:    "https://github.com/acme/widget/",
			expected: "https://github.com/acme/widget",
		},
		{
			name:     "trims whitespace",
			input:    "  https://github.com/acme/widget  ",
			expected: "https://github.com/acme/widget",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeURL(tt.input))
		})
	}
}

func TestNormalizeURL_Idempotent(t *testing.T) {
	inputs := []string{
		"https://github.com/acme/widget/tree/develop",
		"https://gitlab.com/acme/widget/-/tree/main?ref_type=heads",
		"https://github.com/acme/widget",
	}
	for _, input := range inputs {
		once := NormalizeURL(input)
		assert.Equal(t, once, NormalizeURL(once), "normalization must be idempotent for %q", input)
	}
}

func TestExtractBranch(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "no tree segment falls back to default",
			input:    "https://github.com/acme/widget",
			expected: "main",
		},
		{
			name:     "github tree segment",
			input:    "https://github.com/acme/widget/tree/develop",
			expected: "develop",
		},
		{
			name:     "gitlab tree segment",
			input:    "https://gitlab.com/acme/widget/-/tree/release",
			expected: "release",
		},
		{
			name:     "only first component after separator",
			input:    "https://github.com/acme/widget/tree/develop/pkg/foo",
			expected: "develop",
		},
		{
			name:     "query string ignored",
			input:    "https://gitlab.com/acme/widget/-/tree/release?ref_type=heads",
			expected: "release",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractBranch(tt.input, "main"))
		})
	}
}

func TestExtractRepoName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"https://github.com/acme/widget", "widget"},
		{"https://github.com/acme/widget.git", "widget"},
		{"https://github.com/acme/widget/tree/develop", "widget"},
		{"git@github.com:acme/widget.git", "widget"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, ExtractRepoName(tt.input))
	}
}
