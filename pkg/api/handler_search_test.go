package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/coderelay/coderelay/pkg/models"
)

func TestGraphQuery_RejectsWriteClauses(t *testing.T) {
	f := newChatFixture(t)

	for _, query := range []string{
		"MATCH (n) DELETE n",
		"merge (n:Type {name: 'X'})",
		"MATCH (n) SET n.flag = true",
	} {
		rec := f.do(t, http.MethodPost, "/api/v1/search/graph", models.GraphQueryRequest{
			Query: query,
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code, "query %q must be rejected", query)
		assert.Contains(t, rec.Body.String(), "forbidden clause")
	}
}

func TestGraphQuery_EmptyQuery(t *testing.T) {
	f := newChatFixture(t)

	rec := f.do(t, http.MethodPost, "/api/v1/search/graph", models.GraphQueryRequest{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSearch_EmptyQuery(t *testing.T) {
	f := newChatFixture(t)

	rec := f.do(t, http.MethodPost, "/api/v1/search", models.SearchRequest{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
