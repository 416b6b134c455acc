// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Conversation is the predicate function for conversation builders.
type Conversation func(*sql.Selector)

// Message is the predicate function for message builders.
type Message func(*sql.Selector)

// Repository is the predicate function for repository builders.
type Repository func(*sql.Selector)
