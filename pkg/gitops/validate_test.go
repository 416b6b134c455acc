package gitops

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateBranch(t *testing.T) {
	tests := []struct {
		name    string
		branch  string
		wantErr bool
	}{
		{"simple name", "main", false},
		{"slashes and dashes", "feature/login-v2", false},
		{"dots inside", "release-1.2.3", false},
		{"underscores", "hotfix_urgent", false},
		{"empty", "", true},
		{"too long", strings.Repeat("a", 201), true},
		{"exactly max length", strings.Repeat("a", 200), false},
		{"invalid characters", "feature branch", true},
		{"shell injection attempt", "main;rm -rf /", true},
		{"leading dot", ".hidden", true},
		{"trailing dot", "branch.", true},
		{"leading slash", "/main", true},
		{"trailing slash", "main/", true},
		{"double slash", "feature//login", true},
		{"lock suffix", "main.lock", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBranch(tt.branch)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateRepoURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{"https URL", "https://github.com/acme/widget", false},
		{"ssh shorthand", "git@github.com:acme/widget.git", false},
		{"ssh scheme", "ssh://git@github.com/acme/widget.git", false},
		{"empty", "", true},
		{"http not allowed", "http://github.com/acme/widget", true},
		{"file scheme", "file:///etc/passwd", true},
		{"file scheme mixed case", "File:///etc/passwd", true},
		{"javascript scheme", "javascript:alert(1)", true},
		{"data scheme", "data:text/plain;base64,AAAA", true},
		{"semicolon", "https://github.com/acme/widget;ls", true},
		{"backtick", "https://github.com/acme/`id`", true},
		{"dollar", "https://github.com/acme/$HOME", true},
		{"whitespace", "https://github.com/acme/wid get", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRepoURL(tt.url)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
