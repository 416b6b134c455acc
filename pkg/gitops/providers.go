package gitops

import (
	"fmt"
	"regexp"
)

// ProviderRule describes one hosting provider's URL conventions: how to
// recognize its URLs, which path segment separates the branch ref, and which
// branch to assume when none is given.
type ProviderRule struct {
	URLPattern      string
	BranchSeparator string
	DefaultBranch   string
}

type compiledRule struct {
	pattern         *regexp.Regexp
	branchSeparator string
	defaultBranch   string
}

// Built-in table for the common hosts. SetProviders replaces it from
// configuration (git.providers.*).
var providerRules = []compiledRule{
	{
		pattern:         regexp.MustCompile(`^https://github\.com/`),
		branchSeparator: "/tree/",
		defaultBranch:   "main",
	},
	{
		pattern:         regexp.MustCompile(`^https://gitlab\.com/`),
		branchSeparator: "/-/tree/",
		defaultBranch:   "main",
	},
}

// SetProviders installs the provider table from configuration. Call once
// during startup, before serving requests.
func SetProviders(rules map[string]ProviderRule) error {
	compiled := make([]compiledRule, 0, len(rules))
	for name, rule := range rules {
		pattern, err := regexp.Compile(rule.URLPattern)
		if err != nil {
			return fmt.Errorf("git provider %q has invalid url_pattern: %w", name, err)
		}
		compiled = append(compiled, compiledRule{
			pattern:         pattern,
			branchSeparator: rule.BranchSeparator,
			defaultBranch:   rule.DefaultBranch,
		})
	}
	providerRules = compiled
	return nil
}

func ruleFor(url string) (compiledRule, bool) {
	for _, rule := range providerRules {
		if rule.pattern.MatchString(url) {
			return rule, true
		}
	}
	return compiledRule{}, false
}

// branchSeparatorsFor lists the separators to try for a URL: the matching
// provider's separator first, then the built-in ones for unknown hosts.
func branchSeparatorsFor(url string) []string {
	seps := make([]string, 0, 3)
	if rule, ok := ruleFor(url); ok && rule.branchSeparator != "" {
		seps = append(seps, rule.branchSeparator)
	}
	for _, sep := range []string{"/-/tree/", "/tree/"} {
		if len(seps) == 0 || seps[0] != sep {
			seps = append(seps, sep)
		}
	}
	return seps
}

// defaultBranchFor returns the provider's configured default branch, or
// "main" for unknown hosts.
func defaultBranchFor(url string) string {
	if rule, ok := ruleFor(url); ok && rule.defaultBranch != "" {
		return rule.defaultBranch
	}
	return "main"
}
