package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/coderelay/coderelay/pkg/graph"
	"github.com/coderelay/coderelay/pkg/models"
)

const defaultSearchResults = 20

// Search runs an ad-hoc name search over the code graph, optionally scoped
// to specific repositories.
func (s *Server) Search(c *gin.Context) {
	var req models.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	if req.Query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query must not be empty"})
		return
	}
	maxResults := req.MaxResults
	if maxResults <= 0 {
		maxResults = defaultSearchResults
	}

	cypher := `
		MATCH (n)
		WHERE toLower(n.name) CONTAINS toLower($query)
		RETURN labels(n)[0] AS kind, n.name AS name, n.repository_id AS repository_id, n.file_path AS file_path
		ORDER BY size(n.name)
		LIMIT $limit`
	params := map[string]any{"query": req.Query, "limit": maxResults}
	if len(req.RepoIDs) > 0 {
		cypher = `
			MATCH (n)
			WHERE n.repository_id IN $repo_ids AND toLower(n.name) CONTAINS toLower($query)
			RETURN labels(n)[0] AS kind, n.name AS name, n.repository_id AS repository_id, n.file_path AS file_path
			ORDER BY size(n.name)
			LIMIT $limit`
		params["repo_ids"] = req.RepoIDs
	}

	rows, err := s.graph.Read(c.Request.Context(), cypher, params)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"results": rows, "count": len(rows)})
}

// GraphQuery runs a caller-supplied read-only graph query. Queries with
// write clauses are rejected before reaching the store.
func (s *Server) GraphQuery(c *gin.Context) {
	var req models.GraphQueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	if req.Query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query must not be empty"})
		return
	}
	if err := graph.ValidateReadOnly(req.Query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rows, err := s.graph.Read(c.Request.Context(), req.Query, req.Parameters)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"results": rows, "count": len(rows)})
}
