// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/coderelay/coderelay/ent/conversation"
	"github.com/coderelay/coderelay/ent/message"
	"github.com/coderelay/coderelay/ent/repository"
	"github.com/coderelay/coderelay/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	conversationFields := schema.Conversation{}.Fields()
	_ = conversationFields
	// conversationDescBranch is the schema descriptor for branch field.
	conversationDescBranch := conversationFields[4].Descriptor()
	// conversation.DefaultBranch holds the default value on creation for the branch field.
	conversation.DefaultBranch = conversationDescBranch.Default.(string)
	// conversationDescActive is the schema descriptor for active field.
	conversationDescActive := conversationFields[6].Descriptor()
	// conversation.DefaultActive holds the default value on creation for the active field.
	conversation.DefaultActive = conversationDescActive.Default.(bool)
	// conversationDescCreatedAt is the schema descriptor for created_at field.
	conversationDescCreatedAt := conversationFields[7].Descriptor()
	// conversation.DefaultCreatedAt holds the default value on creation for the created_at field.
	conversation.DefaultCreatedAt = conversationDescCreatedAt.Default.(func() time.Time)
	// conversationDescLastActivityAt is the schema descriptor for last_activity_at field.
	conversationDescLastActivityAt := conversationFields[8].Descriptor()
	// conversation.DefaultLastActivityAt holds the default value on creation for the last_activity_at field.
	conversation.DefaultLastActivityAt = conversationDescLastActivityAt.Default.(func() time.Time)
	messageFields := schema.Message{}.Fields()
	_ = messageFields
	// messageDescCreatedAt is the schema descriptor for created_at field.
	messageDescCreatedAt := messageFields[5].Descriptor()
	// message.DefaultCreatedAt holds the default value on creation for the created_at field.
	message.DefaultCreatedAt = messageDescCreatedAt.Default.(func() time.Time)
	repositoryFields := schema.Repository{}.Fields()
	_ = repositoryFields
	// repositoryDescBranch is the schema descriptor for branch field.
	repositoryDescBranch := repositoryFields[3].Descriptor()
	// repository.DefaultBranch holds the default value on creation for the branch field.
	repository.DefaultBranch = repositoryDescBranch.Default.(string)
	// repositoryDescCreatedAt is the schema descriptor for created_at field.
	repositoryDescCreatedAt := repositoryFields[6].Descriptor()
	// repository.DefaultCreatedAt holds the default value on creation for the created_at field.
	repository.DefaultCreatedAt = repositoryDescCreatedAt.Default.(func() time.Time)
}
