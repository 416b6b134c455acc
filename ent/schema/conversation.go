package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Conversation holds the schema definition for the Conversation entity.
// One durable exchange between a user and the assistant over one repository.
type Conversation struct {
	ent.Schema
}

// Fields of the Conversation.
func (Conversation) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("conversation_id").
			Unique().
			Immutable(),
		field.String("user_id").
			Comment("Owning user"),
		field.String("repo_url").
			Comment("Normalized repository URL"),
		field.String("repo_name").
			Comment("Derived from the URL"),
		field.String("branch").
			Default("main"),
		field.Enum("mode").
			Values("EXPLORE", "DEBUG", "IMPLEMENT", "REVIEW").
			Default("EXPLORE"),
		field.Bool("active").
			Default(true).
			Comment("Closed conversations reject new messages"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("last_activity_at").
			Default(time.Now).
			Comment("Updated on every append"),
	}
}

// Edges of the Conversation.
func (Conversation) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("messages", Message.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Conversation.
func (Conversation) Indexes() []ent.Index {
	return []ent.Index{
		// Active-conversation listing per user
		index.Fields("user_id", "active"),
		index.Fields("last_activity_at"),
	}
}
