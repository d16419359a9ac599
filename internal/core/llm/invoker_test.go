package llm

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedGenerator answers per model id and records the call order.
type scriptedGenerator struct {
	mu      sync.Mutex
	answers map[string]string
	errs    map[string]error
	calls   []string
}

func (g *scriptedGenerator) Generate(_ context.Context, model, _ string) (string, error) {
	g.mu.Lock()
	g.calls = append(g.calls, model)
	g.mu.Unlock()
	if err, ok := g.errs[model]; ok {
		return "", err
	}
	return g.answers[model], nil
}

func (g *scriptedGenerator) GetProviderName() string { return "scripted" }

func notFound(model string) error {
	return &ProviderError{Provider: "gemini", Model: model, StatusCode: http.StatusNotFound, Body: "models/" + model + " is not found for API version v1beta"}
}

func TestTrySkipsUnavailableModels(t *testing.T) {
	gen := &scriptedGenerator{
		answers: map[string]string{"m3": "  merhaba  "},
		errs:    map[string]error{"m1": notFound("m1"), "m2": errors.New("model m2 is unsupported")},
	}
	inv := NewInvoker(gen, []string{"m1", "m2", "m3", "m4"})

	got, err := inv.Try(context.Background(), "p")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "merhaba", got.Text)
	assert.Equal(t, "m3", got.Model)
	assert.Equal(t, []string{"m1", "m2", "m3"}, gen.calls)
}

func TestTryAbortsOnCredentialError(t *testing.T) {
	authErr := &ProviderError{Provider: "gemini", Model: "m1", StatusCode: http.StatusBadRequest, Body: `{"error":{"message":"API key not valid. Please pass a valid API key."}}`}
	gen := &scriptedGenerator{
		answers: map[string]string{"m2": "ok"},
		errs:    map[string]error{"m1": authErr},
	}
	inv := NewInvoker(gen, []string{"m1", "m2"})

	got, err := inv.Try(context.Background(), "p")
	assert.Nil(t, got)
	require.Error(t, err)
	assert.True(t, IsInvalidCredential(err))
	assert.Equal(t, []string{"m1"}, gen.calls)
}

func TestTrySkipsEmptyAnswersAndReturnsNilWhenExhausted(t *testing.T) {
	gen := &scriptedGenerator{
		answers: map[string]string{"m1": "   ", "m2": ""},
	}
	inv := NewInvoker(gen, []string{"m1", "m2"})

	got, err := inv.Try(context.Background(), "p")
	assert.NoError(t, err)
	assert.Nil(t, got)
	assert.Equal(t, []string{"m1", "m2"}, gen.calls)
}

func TestCompleteTreatsModelMentionAsSoft(t *testing.T) {
	gen := &scriptedGenerator{
		answers: map[string]string{"m2": "cevap"},
		errs:    map[string]error{"m1": &ProviderError{Provider: "gemini", Model: "m1", StatusCode: http.StatusBadRequest, Body: "model is overloaded"}},
	}
	inv := NewInvoker(gen, []string{"m1", "m2"})

	got, err := inv.Complete(context.Background(), "p")
	require.NoError(t, err)
	assert.Equal(t, &Completion{Text: "cevap", Model: "m2"}, got)
}

func TestCompleteEmptyTextBecomesPlaceholder(t *testing.T) {
	gen := &scriptedGenerator{answers: map[string]string{"m1": ""}}
	inv := NewInvoker(gen, []string{"m1", "m2"})

	got, err := inv.Complete(context.Background(), "p")
	require.NoError(t, err)
	assert.Equal(t, EmptyReplyText, got.Text)
	assert.Equal(t, "m1", got.Model)
	assert.Equal(t, []string{"m1"}, gen.calls)
}

func TestCompleteExhaustion(t *testing.T) {
	gen := &scriptedGenerator{
		errs: map[string]error{"m1": notFound("m1"), "m2": notFound("m2")},
	}
	inv := NewInvoker(gen, []string{"m1", "m2"})

	got, err := inv.Complete(context.Background(), "p")
	assert.Nil(t, got)
	assert.ErrorIs(t, err, ErrNoSupportedModel)
	assert.Equal(t, "no_supported_model_for_api_version", err.Error())
}

func TestCompletePropagatesHardErrors(t *testing.T) {
	boom := errors.New("connection reset by peer")
	gen := &scriptedGenerator{errs: map[string]error{"m1": boom}}
	inv := NewInvoker(gen, []string{"m1", "m2"})

	_, err := inv.Complete(context.Background(), "p")
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"m1"}, gen.calls)
}

func TestCandidatesIsACopy(t *testing.T) {
	src := []string{"a", "b"}
	inv := NewInvoker(&scriptedGenerator{}, src)
	src[0] = "z"

	got := inv.Candidates()
	got[1] = "y"
	assert.Equal(t, []string{"a", "b"}, inv.Candidates())
}
