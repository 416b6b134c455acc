package gitops

import (
	"fmt"
	"regexp"
	"strings"
)

const maxBranchLength = 200

var branchPattern = regexp.MustCompile(`^[A-Za-z0-9/_.-]+$`)

// Shell metacharacters rejected anywhere in a repository URL. Repository
// URLs end up as git command arguments; none of these are legal in any
// hosting provider's URL.
const shellMetaChars = ";|&$`<>(){}[]\\\"'"

// Rejected URL schemes (case-insensitive prefixes).
var forbiddenSchemes = []string{"file://", "javascript:", "data:"}

// ValidateBranch checks a branch name against the accepted character set and
// the structural rules git itself enforces: no leading/trailing '.' or '/',
// no '//', no trailing '.lock', length capped at 200.
func ValidateBranch(branch string) error {
	if branch == "" {
		return fmt.Errorf("branch name must not be empty")
	}
	if len(branch) > maxBranchLength {
		return fmt.Errorf("branch name exceeds %d characters", maxBranchLength)
	}
	if !branchPattern.MatchString(branch) {
		return fmt.Errorf("branch name contains invalid characters")
	}
	if strings.HasPrefix(branch, ".") || strings.HasSuffix(branch, ".") {
		return fmt.Errorf("branch name must not start or end with '.'")
	}
	if strings.HasPrefix(branch, "/") || strings.HasSuffix(branch, "/") {
		return fmt.Errorf("branch name must not start or end with '/'")
	}
	if strings.Contains(branch, "//") {
		return fmt.Errorf("branch name must not contain '//'")
	}
	if strings.HasSuffix(branch, ".lock") {
		return fmt.Errorf("branch name must not end with '.lock'")
	}
	return nil
}

// ValidateRepoURL checks that a repository URL uses an allowed scheme and is
// free of shell metacharacters.
func ValidateRepoURL(rawURL string) error {
	if rawURL == "" {
		return fmt.Errorf("repository URL must not be empty")
	}

	lower := strings.ToLower(rawURL)
	for _, scheme := range forbiddenSchemes {
		if strings.HasPrefix(lower, scheme) {
			return fmt.Errorf("repository URL scheme is not allowed")
		}
	}

	if !strings.HasPrefix(rawURL, "https://") &&
		!strings.HasPrefix(rawURL, "git@") &&
		!strings.HasPrefix(rawURL, "ssh://") {
		return fmt.Errorf("repository URL must start with https://, git@, or ssh://")
	}

	if strings.ContainsAny(rawURL, shellMetaChars) || strings.ContainsAny(rawURL, " \t\n") {
		return fmt.Errorf("repository URL contains forbidden characters")
	}
	return nil
}
