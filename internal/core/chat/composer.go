package chat

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/MuhamadAgungGumelar/resto-analytics-be/internal/core/llm"
)

// Grounding is the fact sheet handed to the model together with its instruction.
type Grounding struct {
	Instruction string
	Label       string
	Facts       string
}

// Composer asks the model to phrase already computed facts.
type Composer struct {
	invoker *llm.Invoker
}

func NewComposer(invoker *llm.Invoker) *Composer {
	return &Composer{invoker: invoker}
}

// Compose returns the model's phrasing of g, or fallback when the model fails
// or stays silent. Errors never escape: the deterministic text is already correct.
func (c *Composer) Compose(ctx context.Context, t *Turn, g Grounding, fallback string) string {
	prompt := fmt.Sprintf("%s\n\n%s\n\n%s:\n%s\n\nKullanıcı sorusu:\n%s",
		t.DateContext, g.Instruction, g.Label, g.Facts, t.Question)

	comp, err := c.invoker.Try(ctx, prompt)
	if err != nil {
		log.Warn().Err(err).Str("label", g.Label).Msg("⚠️ composition failed, using deterministic reply")
		return fallback
	}
	if comp == nil {
		return fallback
	}
	return comp.Text
}
