package gitops

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetProviders(t *testing.T) {
	original := providerRules
	t.Cleanup(func() { providerRules = original })

	require.NoError(t, SetProviders(map[string]ProviderRule{
		"corp": {
			URLPattern:      `^https://git\.corp\.example/`,
			BranchSeparator: "/browse/",
			DefaultBranch:   "develop",
		},
	}))

	assert.Equal(t, "develop", ExtractBranch("https://git.corp.example/acme/widget", ""))
	assert.Equal(t, "release", ExtractBranch("https://git.corp.example/acme/widget/browse/release", ""))

	// Unknown hosts still get the built-in separators and default.
	assert.Equal(t, "main", ExtractBranch("https://example.com/acme/widget", ""))
	assert.Equal(t, "feat", ExtractBranch("https://example.com/acme/widget/tree/feat", ""))
}

func TestSetProviders_InvalidPattern(t *testing.T) {
	err := SetProviders(map[string]ProviderRule{
		"broken": {URLPattern: `[`},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken")
}

func TestExtractBranch_EmptyDefaultUsesProviderTable(t *testing.T) {
	assert.Equal(t, "main", ExtractBranch("https://github.com/acme/widget", ""))
	assert.Equal(t, "develop", ExtractBranch("https://github.com/acme/widget", "develop"))
}
