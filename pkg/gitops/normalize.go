// Package gitops provides git workspace operations, repository URL
// normalization, and input validation for repository identifiers.
package gitops

import (
	"regexp"
	"strings"
)

// Branch/path suffixes that hosting providers append to repository URLs.
// GitLab uses `/-/tree/<ref>`; GitHub uses `/tree/<ref>` and `/blob/<ref>`.
var urlSuffixPatterns = []*regexp.Regexp{
	regexp.MustCompile(`/-/tree/.*$`),
	regexp.MustCompile(`/tree/.*$`),
	regexp.MustCompile(`/blob/.*$`),
}

// NormalizeURL strips provider branch/path suffixes and any query string from
// a repository URL. Normalization is idempotent:
// NormalizeURL(NormalizeURL(u)) == NormalizeURL(u).
func NormalizeURL(rawURL string) string {
	url := strings.TrimSpace(rawURL)

	if idx := strings.IndexByte(url, '?'); idx >= 0 {
		url = url[:idx]
	}
	for _, pat := range urlSuffixPatterns {
		url = pat.ReplaceAllString(url, "")
	}
	return strings.TrimSuffix(url, "/")
}

// ExtractBranch returns the branch referenced by the provider's branch
// separator segment in the URL (for example `/tree/<ref>`), or defaultBranch
// when no such segment exists. An empty defaultBranch falls back to the
// provider table's default. Only the first path component after the separator
// is taken; deeper path components are file paths, not part of the ref.
func ExtractBranch(rawURL, defaultBranch string) string {
	url := rawURL
	if idx := strings.IndexByte(url, '?'); idx >= 0 {
		url = url[:idx]
	}

	if defaultBranch == "" {
		defaultBranch = defaultBranchFor(url)
	}

	for _, sep := range branchSeparatorsFor(url) {
		if idx := strings.Index(url, sep); idx >= 0 {
			rest := url[idx+len(sep):]
			if slash := strings.IndexByte(rest, '/'); slash >= 0 {
				rest = rest[:slash]
			}
			if rest != "" {
				return rest
			}
		}
	}
	return defaultBranch
}

// ExtractRepoName derives the repository name from a URL: the final path
// component of the normalized URL, with any `.git` suffix removed.
func ExtractRepoName(rawURL string) string {
	url := NormalizeURL(rawURL)
	url = strings.TrimSuffix(url, ".git")

	// git@host:org/repo SSH shorthand
	if idx := strings.LastIndexByte(url, ':'); idx >= 0 && strings.HasPrefix(url, "git@") {
		url = url[idx+1:]
	}

	if idx := strings.LastIndexByte(url, '/'); idx >= 0 {
		url = url[idx+1:]
	}
	return url
}
