package chat

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/MuhamadAgungGumelar/resto-analytics-be/internal/core/analytics"
	"github.com/MuhamadAgungGumelar/resto-analytics-be/internal/core/llm"
	"github.com/MuhamadAgungGumelar/resto-analytics-be/internal/core/metrics"
)

// AnalyticsModel is reported as the model for answers grounded in order data.
const AnalyticsModel = "analytics"

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
)

type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is one stateless chat turn: the full transcript plus an optional user.
type ChatRequest struct {
	Messages []Message `json:"messages"`
	UserID   string    `json:"userId,omitempty"`
}

type Reply struct {
	Text  string `json:"reply"`
	Model string `json:"model"`
}

// Answer is what a strategy produces when it can handle the turn.
type Answer struct {
	Text  string
	Model string
}

// Turn holds everything derived once per request: the clock reading,
// the normalized question and the resolved date range.
type Turn struct {
	UserID      string
	Question    string
	Normalized  string
	Today       time.Time
	DateContext string
	Range       analytics.DateRange
	Messages    []Message
}

// Engine answers chat turns by walking its strategies in order.
type Engine struct {
	invoker    *llm.Invoker
	strategies []Strategy
	now        func() time.Time
}

type Option func(*Engine)

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// NewEngine wires the default fallback chain: fixed intents, then the
// structured query pathway, then the ungrounded model answer.
// A nil invoker means no credential was configured; Reply then fails fast.
func NewEngine(store OrderStore, invoker *llm.Invoker, opts ...Option) *Engine {
	e := &Engine{invoker: invoker, now: time.Now}
	for _, opt := range opts {
		opt(e)
	}

	if invoker != nil {
		composer := NewComposer(invoker)
		e.strategies = []Strategy{
			&intentStrategy{store: store, composer: composer},
			&querySpecStrategy{pipeline: NewQuerySpecPipeline(store, invoker, composer)},
			&generalStrategy{invoker: invoker},
		}
	}
	return e
}

// StrategyNames lists the fallback chain in evaluation order.
func (e *Engine) StrategyNames() []string {
	names := make([]string, len(e.strategies))
	for i, s := range e.strategies {
		names[i] = s.Name()
	}
	return names
}

// Reply validates the request, builds the turn and returns the first strategy answer.
func (e *Engine) Reply(ctx context.Context, req ChatRequest) (*Reply, error) {
	if len(req.Messages) == 0 {
		return nil, ErrMessagesRequired
	}
	if e.invoker == nil {
		return nil, ErrMissingCredential
	}

	turn, err := e.newTurn(req)
	if err != nil {
		return nil, err
	}

	for _, s := range e.strategies {
		ans, err := s.Answer(ctx, turn)
		if err != nil {
			log.Error().Err(err).Str("strategy", s.Name()).Msg("❌ chat strategy failed")
			return nil, err
		}
		if ans == nil {
			continue
		}
		metrics.CountReply(s.Name())
		log.Info().Str("strategy", s.Name()).Str("model", ans.Model).Msg("💬 chat answered")
		return &Reply{Text: ans.Text, Model: ans.Model}, nil
	}

	// unreachable with the default chain: the general strategy always answers or errors
	return nil, llm.ErrNoSupportedModel
}

func (e *Engine) newTurn(req ChatRequest) (*Turn, error) {
	var last *Message
	for i := len(req.Messages) - 1; i >= 0; i-- {
		if req.Messages[i].Role != RoleSystem {
			last = &req.Messages[i]
			break
		}
	}
	if last == nil || strings.TrimSpace(last.Content) == "" {
		return nil, ErrEmptyUserMessage
	}

	today := e.now()
	normalized := Normalize(last.Content)

	return &Turn{
		UserID:      strings.TrimSpace(req.UserID),
		Question:    last.Content,
		Normalized:  normalized,
		Today:       today,
		DateContext: DateContext(today),
		Range:       analytics.ResolveRange(analytics.DetectRangeToken(normalized), today),
		Messages:    req.Messages,
	}, nil
}
