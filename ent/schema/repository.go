package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Repository holds the schema definition for the Repository entity.
// One row per indexed repository; re-indexing updates the row in place.
type Repository struct {
	ent.Schema
}

// Fields of the Repository.
func (Repository) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("repository_id").
			Unique().
			Immutable(),
		field.String("url").
			Unique().
			Comment("Normalized URL, branch suffixes and query strings stripped"),
		field.String("name"),
		field.String("branch").
			Default("main"),
		field.String("language").
			Optional(),
		field.String("last_indexed_commit").
			Optional().
			Comment("Full SHA of the branch HEAD at last successful index"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("last_indexed_at").
			Optional().
			Nillable(),
	}
}

// Indexes of the Repository.
func (Repository) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("url").
			Unique(),
	}
}
