package graph

import (
	"fmt"
	"regexp"
	"strings"
)

// Cypher clauses that mutate the graph. User-supplied queries from the API
// are read-only; anything containing one of these as a standalone token is
// rejected.
var writeVerbs = []string{"DELETE", "REMOVE", "SET", "CREATE", "MERGE", "DROP"}

var tokenPattern = regexp.MustCompile(`[A-Za-z_]+`)

// ValidateReadOnly rejects queries containing write clauses. Matching is
// case-insensitive and token-based, so identifiers like `offset` or
// `created_at` do not trigger false positives.
func ValidateReadOnly(query string) error {
	for _, token := range tokenPattern.FindAllString(query, -1) {
		upper := strings.ToUpper(token)
		for _, verb := range writeVerbs {
			if upper == verb {
				return fmt.Errorf("query contains forbidden clause %q", verb)
			}
		}
	}
	return nil
}
