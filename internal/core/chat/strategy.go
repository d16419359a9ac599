package chat

import (
	"context"

	"github.com/MuhamadAgungGumelar/resto-analytics-be/internal/core/llm"
)

// Strategy is one tier of the fallback chain.
// (nil, nil) hands the turn to the next tier; an error ends the request.
type Strategy interface {
	Name() string
	Answer(ctx context.Context, t *Turn) (*Answer, error)
}

type querySpecStrategy struct {
	pipeline *QuerySpecPipeline
}

func (s *querySpecStrategy) Name() string { return "query_spec" }

func (s *querySpecStrategy) Answer(ctx context.Context, t *Turn) (*Answer, error) {
	if t.UserID == "" {
		return nil, nil
	}
	return s.pipeline.ResolveViaSpec(ctx, t)
}

// generalStrategy sends the whole transcript to the model without any data.
type generalStrategy struct {
	invoker *llm.Invoker
}

func (s *generalStrategy) Name() string { return "general" }

func (s *generalStrategy) Answer(ctx context.Context, t *Turn) (*Answer, error) {
	comp, err := s.invoker.Complete(ctx, BuildGeneralPrompt(t.DateContext, t.Messages))
	if err != nil {
		return nil, err
	}
	return &Answer{Text: comp.Text, Model: comp.Model}, nil
}
