package agent

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coderelay/coderelay/ent"
	"github.com/coderelay/coderelay/ent/message"
	"github.com/coderelay/coderelay/pkg/events"
	"github.com/coderelay/coderelay/pkg/llm"
	"github.com/coderelay/coderelay/pkg/models"
	"github.com/coderelay/coderelay/pkg/tools"
)

// memStore is an in-memory ConversationStore for loop tests.
type memStore struct {
	conv *ent.Conversation
	msgs []*ent.Message
}

func newMemStore() *memStore {
	return &memStore{
		conv: &ent.Conversation{
			ID:      "conv-1",
			UserID:  "user-1",
			RepoURL: "https://github.com/acme/widget",
			Branch:  "main",
			Mode:    "EXPLORE",
		},
	}
}

func (m *memStore) GetWithMessages(ctx context.Context, conversationID string) (*ent.Conversation, error) {
	c := *m.conv
	c.Edges.Messages = append([]*ent.Message(nil), m.msgs...)
	return &c, nil
}

func (m *memStore) RecentUserMessages(ctx context.Context, conversationID string, n int) ([]string, error) {
	var out []string
	for _, msg := range m.msgs {
		if msg.Role == message.RoleUser {
			out = append(out, msg.Content)
		}
	}
	if len(out) > n {
		out = out[len(out)-n:]
	}
	return out, nil
}

func (m *memStore) Append(ctx context.Context, conversationID string, role message.Role, content string) (*ent.Message, error) {
	msg := &ent.Message{
		ConversationID: conversationID,
		Role:           role,
		Content:        content,
		SequenceNumber: len(m.msgs) + 1,
	}
	m.msgs = append(m.msgs, msg)
	return msg, nil
}

// scriptedProvider replays canned responses in order; the last one repeats.
// Prompts are recorded for assertions on prompt content.
type scriptedProvider struct {
	responses []string
	prompts   []string
	calls     int
}

func (p *scriptedProvider) Chat(ctx context.Context, prompt, label, conversationID string) (string, error) {
	p.prompts = append(p.prompts, prompt)
	idx := p.calls
	if idx >= len(p.responses) {
		idx = len(p.responses) - 1
	}
	p.calls++
	return p.responses[idx], nil
}

func (p *scriptedProvider) Model() string { return "scripted" }

type failingProvider struct{}

func (failingProvider) Chat(ctx context.Context, prompt, label, conversationID string) (string, error) {
	return "", errors.New("model unavailable")
}

func (failingProvider) Model() string { return "failing" }

type loopFixture struct {
	loop  *Loop
	store *memStore
	hub   *events.Hub
	tool  *stubTool
	alt   *stubTool
}

func newLoopFixture(t *testing.T, selector, synthesizer llm.Provider) *loopFixture {
	registry := tools.NewRegistry(slog.Default())
	tool := &stubTool{name: "search_code", result: tools.Successf("matches", "found matches")}
	alt := &stubTool{name: "semantic_search", result: tools.Successf("related", "related symbols")}
	alt2 := &stubTool{name: "graph_query", result: tools.Successf("rows", "query rows")}
	registry.Register(tool)
	registry.Register(alt)
	registry.Register(alt2)

	store := newMemStore()
	hub := events.NewHub(slog.Default())
	t.Cleanup(hub.Close)

	loop := NewLoop(registry, selector, synthesizer, store, hub, 10, slog.Default())
	return &loopFixture{loop: loop, store: store, hub: hub, tool: tool, alt: alt}
}

func drainEvents(ch <-chan models.ChatEvent) []models.ChatEvent {
	var out []models.ChatEvent
	for {
		select {
		case e := <-ch:
			out = append(out, e)
		default:
			return out
		}
	}
}

func countEvents(evts []models.ChatEvent, kind models.ChatEventType) int {
	n := 0
	for _, e := range evts {
		if e.Type == kind {
			n++
		}
	}
	return n
}

func TestRun_IterationCapForcesSynthesis(t *testing.T) {
	selector := &scriptedProvider{responses: []string{
		`{"tool": "search_code", "parameters": {"query": "auth"}}`,
	}}
	synthesizer := &scriptedProvider{responses: []string{"The auth flow lives in pkg/auth."}}
	f := newLoopFixture(t, selector, synthesizer)

	ch, unsub := f.hub.Subscribe("conv-1")
	defer unsub()

	answer := f.loop.Run(context.Background(), "conv-1", "where is auth?")

	assert.Equal(t, "The auth flow lives in pkg/auth.", answer)
	assert.Equal(t, 10, f.tool.calls, "cap bounds tool executions")
	assert.Equal(t, 10, selector.calls)
	assert.Equal(t, 1, synthesizer.calls)

	evts := drainEvents(ch)
	require.NotEmpty(t, evts)
	assert.Equal(t, 1, countEvents(evts, models.EventComplete))
	assert.Equal(t, 0, countEvents(evts, models.EventError))
	assert.Equal(t, models.EventComplete, evts[len(evts)-1].Type, "complete is the final event")
	assert.Equal(t, 20, countEvents(evts, models.EventTool), "one Executing and one Completed per call")
}

func TestRun_PlainTextSelectionSkipsTools(t *testing.T) {
	selector := &scriptedProvider{responses: []string{"I can answer from the conversation alone."}}
	synthesizer := &scriptedProvider{responses: []string{"It lives in pkg/billing."}}
	f := newLoopFixture(t, selector, synthesizer)

	ch, unsub := f.hub.Subscribe("conv-1")
	defer unsub()

	answer := f.loop.Run(context.Background(), "conv-1", "where is payment validated?")

	assert.Equal(t, "It lives in pkg/billing.", answer)
	assert.Equal(t, 0, f.tool.calls)
	assert.Equal(t, 1, selector.calls)

	evts := drainEvents(ch)
	assert.Equal(t, 1, countEvents(evts, models.EventComplete))
	assert.Equal(t, 0, countEvents(evts, models.EventTool))
}

func TestRun_HistoryCarriesAcrossTurns(t *testing.T) {
	selector := &scriptedProvider{responses: []string{
		`{"tool": "search_code", "parameters": {"query": "payment"}}`,
		`{}`,
		`{"tool": "search_code", "parameters": {"query": "payment"}}`,
		`{}`,
	}}
	synthesizer := &scriptedProvider{responses: []string{"Payments are validated in pkg/billing."}}
	f := newLoopFixture(t, selector, synthesizer)

	f.loop.Run(context.Background(), "conv-1", "where is payment validated?")
	assert.Equal(t, 1, f.tool.calls)
	assert.Equal(t, 0, f.alt.calls, "first invocation is never augmented")

	f.loop.Run(context.Background(), "conv-1", "give me more detail")

	assert.Equal(t, 2, f.tool.calls)
	assert.Equal(t, 1, f.alt.calls,
		"a repeat invocation with negative feedback runs alternatives")

	tc := f.loop.contextFor(f.store.conv)
	assert.GreaterOrEqual(t, tc.ExecutionCount("search_code"), 2,
		"execution counts accumulate across turns")

	// The augmented result reaches the synthesizer.
	require.NotEmpty(t, synthesizer.prompts)
	finalPrompt := synthesizer.prompts[len(synthesizer.prompts)-1]
	assert.Contains(t, finalPrompt, alternativesSeparator)
	assert.Contains(t, finalPrompt, "### From semantic_search:")
	assert.Contains(t, finalPrompt, "related symbols")
}

func TestRun_SelectorFailureIsTerminalError(t *testing.T) {
	synthesizer := &scriptedProvider{responses: []string{"unused"}}
	f := newLoopFixture(t, failingProvider{}, synthesizer)

	ch, unsub := f.hub.Subscribe("conv-1")
	defer unsub()

	answer := f.loop.Run(context.Background(), "conv-1", "where is auth?")

	assert.Contains(t, answer, "Error: ")
	assert.Contains(t, answer, "model unavailable")

	evts := drainEvents(ch)
	assert.Equal(t, 1, countEvents(evts, models.EventError))
	assert.Equal(t, 0, countEvents(evts, models.EventComplete))
	assert.Equal(t, models.EventError, evts[len(evts)-1].Type)

	last := f.store.msgs[len(f.store.msgs)-1]
	assert.Equal(t, message.RoleAssistant, last.Role)
	assert.Contains(t, last.Content, "Error: ")
}
