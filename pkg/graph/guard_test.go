package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateReadOnly(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		wantErr bool
	}{
		{
			name:    "plain match",
			query:   "MATCH (t:Type {repository_id: $id}) RETURN t.name",
			wantErr: false,
		},
		{
			name:    "delete clause",
			query:   "MATCH (n) DELETE n",
			wantErr: true,
		},
		{
			name:    "lowercase delete",
			query:   "match (n) delete n",
			wantErr: true,
		},
		{
			name:    "merge clause",
			query:   "MERGE (t:Type {name: 'X'})",
			wantErr: true,
		},
		{
			name:    "set clause",
			query:   "MATCH (n) SET n.flag = true",
			wantErr: true,
		},
		{
			name:    "remove clause",
			query:   "MATCH (n) REMOVE n.flag",
			wantErr: true,
		},
		{
			name:    "drop clause",
			query:   "DROP INDEX type_name",
			wantErr: true,
		},
		{
			name:    "create clause",
			query:   "CREATE (n:Type)",
			wantErr: true,
		},
		{
			name:    "verb as identifier substring is allowed",
			query:   "MATCH (n:Type) WHERE n.created_at > $since RETURN n.offset",
			wantErr: false,
		},
		{
			name:    "verb inside string-like identifier",
			query:   "MATCH (n) RETURN n.dataset_name",
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateReadOnly(tt.query)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
