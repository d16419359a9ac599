package llm

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/MuhamadAgungGumelar/resto-analytics-be/internal/core/metrics"
)

// EmptyReplyText is returned by Complete when a model answers with nothing.
const EmptyReplyText = "Yanıt alınamadı."

// Completion is a model answer together with the model id that produced it.
type Completion struct {
	Text  string
	Model string
}

// Invoker walks an ordered list of model ids against one Generator.
// It is safe for concurrent use; it holds no per-request state.
type Invoker struct {
	gen        Generator
	candidates []string
}

func NewInvoker(gen Generator, candidates []string) *Invoker {
	return &Invoker{
		gen:        gen,
		candidates: append([]string(nil), candidates...),
	}
}

// Candidates returns a copy of the model order.
func (i *Invoker) Candidates() []string {
	return append([]string(nil), i.candidates...)
}

// Try returns the first non-empty answer. Unavailable models and empty answers
// move on to the next candidate; any other error aborts the walk.
// (nil, nil) means every candidate soft-failed.
func (i *Invoker) Try(ctx context.Context, prompt string) (*Completion, error) {
	for _, model := range i.candidates {
		text, err := i.call(ctx, model, prompt)
		if err != nil {
			if IsModelUnavailable(err) {
				log.Debug().Str("model", model).Err(err).Msg("⏭️ model unavailable, trying next candidate")
				continue
			}
			return nil, err
		}
		if t := strings.TrimSpace(text); t != "" {
			return &Completion{Text: t, Model: model}, nil
		}
	}
	return nil, nil
}

// Complete is the ungrounded variant: the first model that answers wins even
// with empty text, and running out of models is ErrNoSupportedModel.
func (i *Invoker) Complete(ctx context.Context, prompt string) (*Completion, error) {
	for _, model := range i.candidates {
		text, err := i.call(ctx, model, prompt)
		if err != nil {
			if isGeneralSoftFailure(err) {
				log.Warn().Str("model", model).Err(err).Msg("⚠️ model rejected, trying next candidate")
				continue
			}
			return nil, err
		}
		if strings.TrimSpace(text) == "" {
			text = EmptyReplyText
		}
		return &Completion{Text: text, Model: model}, nil
	}
	return nil, ErrNoSupportedModel
}

func (i *Invoker) call(ctx context.Context, model, prompt string) (string, error) {
	start := time.Now()
	text, err := i.gen.Generate(ctx, model, prompt)

	outcome := metrics.OutcomeOK
	switch {
	case err != nil && IsModelUnavailable(err):
		outcome = metrics.OutcomeUnavailable
	case err != nil:
		outcome = metrics.OutcomeError
	case strings.TrimSpace(text) == "":
		outcome = metrics.OutcomeEmpty
	}
	metrics.ObserveModelCall(model, outcome, time.Since(start))

	return text, err
}
