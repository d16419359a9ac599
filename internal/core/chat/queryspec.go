package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/MuhamadAgungGumelar/resto-analytics-be/internal/core/analytics"
	"github.com/MuhamadAgungGumelar/resto-analytics-be/internal/core/llm"
	"github.com/MuhamadAgungGumelar/resto-analytics-be/internal/core/metrics"
)

// ErrInvalidMetric rejects a spec whose metric is not sum, avg or count.
var ErrInvalidMetric = errors.New("bad_metric")

const (
	defaultSpecLimit = 20
	maxSpecLimit     = 100
)

// rawQuerySpec is the model's output as decoded, before any trust is given to it.
type rawQuerySpec struct {
	Metric  string                           `json:"metric"`
	Field   string                           `json:"field"`
	GroupBy string                           `json:"groupBy"`
	Limit   looseNumber                      `json:"limit"`
	Range   looseObject[analytics.DateRange] `json:"range"`
	Filters looseObject[analytics.Filters]   `json:"filters"`
}

// looseNumber accepts a JSON number or a numeric string. Anything else leaves it unset.
type looseNumber struct {
	Value float64
	Set   bool
}

func (n *looseNumber) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		return nil
	}

	var v float64
	if err := json.Unmarshal(b, &v); err == nil {
		n.Value, n.Set = v, true
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		if v, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			n.Value, n.Set = v, true
		}
	}
	return nil
}

// looseObject decodes T from a JSON object and ignores any other value,
// so "range": "" reads as the whole history.
type looseObject[T any] struct {
	Value T
}

func (o *looseObject[T]) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || b[0] != '{' {
		return nil
	}

	var v T
	if err := json.Unmarshal(b, &v); err == nil {
		o.Value = v
	}
	return nil
}

var (
	leadingFence  = regexp.MustCompile("(?i)^```(?:json)?")
	trailingFence = regexp.MustCompile("```$")
)

// ParseQuerySpec decodes and sanitizes model output into a QuerySpec.
// Unknown metrics are rejected; everything else is coerced to a safe value.
func ParseQuerySpec(raw string) (analytics.QuerySpec, error) {
	cleaned := strings.TrimSpace(raw)
	cleaned = leadingFence.ReplaceAllString(cleaned, "")
	cleaned = trailingFence.ReplaceAllString(cleaned, "")
	cleaned = strings.TrimSpace(cleaned)

	var in rawQuerySpec
	if err := json.Unmarshal([]byte(cleaned), &in); err != nil {
		return analytics.QuerySpec{}, fmt.Errorf("parse query spec: %w", err)
	}

	spec := analytics.QuerySpec{Field: analytics.FieldAmount}

	switch m := analytics.Metric(in.Metric); m {
	case analytics.MetricSum, analytics.MetricAvg, analytics.MetricCount:
		spec.Metric = m
	default:
		return analytics.QuerySpec{}, fmt.Errorf("%w: %q", ErrInvalidMetric, in.Metric)
	}

	switch g := analytics.GroupBy(in.GroupBy); g {
	case analytics.GroupDay, analytics.GroupMenuGroup, analytics.GroupServiceType, analytics.GroupItemName:
		spec.GroupBy = g
	default:
		spec.GroupBy = analytics.GroupNone
	}

	spec.Limit = defaultSpecLimit
	if in.Limit.Set && !math.IsNaN(in.Limit.Value) {
		spec.Limit = clampLimit(in.Limit.Value)
	}

	spec.Range = in.Range.Value
	spec.Filters = in.Filters.Value

	return spec, nil
}

func clampLimit(v float64) int {
	if v < 1 {
		return 1
	}
	if v > maxSpecLimit {
		return maxSpecLimit
	}
	return int(v)
}

// QuerySpecPipeline answers unmatched questions through a model-written query spec.
type QuerySpecPipeline struct {
	store    OrderStore
	invoker  *llm.Invoker
	composer *Composer
}

func NewQuerySpecPipeline(store OrderStore, invoker *llm.Invoker, composer *Composer) *QuerySpecPipeline {
	return &QuerySpecPipeline{store: store, invoker: invoker, composer: composer}
}

// ResolveViaSpec returns (nil, nil) whenever the question could not be answered
// from data. Only a rejected credential is reported as an error.
func (p *QuerySpecPipeline) ResolveViaSpec(ctx context.Context, t *Turn) (*Answer, error) {
	comp, err := p.invoker.Try(ctx, BuildSpecPrompt(t.DateContext, t.Question))
	if err != nil {
		if llm.IsInvalidCredential(err) {
			return nil, err
		}
		log.Warn().Err(err).Msg("⚠️ query spec generation failed")
		metrics.CountRejection("generate")
		return nil, nil
	}
	if comp == nil {
		metrics.CountRejection("no_model")
		return nil, nil
	}

	spec, err := ParseQuerySpec(comp.Text)
	if err != nil {
		stage := "parse"
		if errors.Is(err, ErrInvalidMetric) {
			stage = "validate"
		}
		log.Warn().Err(err).Str("raw", comp.Text).Msg("⚠️ query spec rejected")
		metrics.CountRejection(stage)
		return nil, nil
	}

	rows, err := p.store.FetchOrders(ctx, t.UserID, spec.Range)
	if err != nil {
		log.Error().Err(err).Str("user_id", t.UserID).Msg("❌ query spec fetch failed")
		metrics.CountRejection("fetch")
		return nil, nil
	}

	result := analytics.Aggregate(rows, spec.ToQuery())
	if len(result.Rows) == 0 {
		// zero rows may be the true answer; we cannot tell it from a misread question
		metrics.CountRejection("empty")
		return nil, nil
	}

	log.Info().
		Str("metric", string(spec.Metric)).
		Str("group_by", string(spec.GroupBy)).
		Int("rows", len(result.Rows)).
		Msg("📊 query spec resolved")

	facts, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("marshal query result: %w", err)
	}

	text := p.composer.Compose(ctx, t, Grounding{
		Instruction: instructQueryResult,
		Label:       "Sonuclar(JSON)",
		Facts:       string(facts),
	}, RenderQueryResult(result))

	return &Answer{Text: text, Model: AnalyticsModel}, nil
}

// RenderQueryResult is the deterministic listing used when composition fails.
func RenderQueryResult(res analytics.QueryResult) string {
	unit := " TL"
	if res.Metric == analytics.MetricCount {
		unit = ""
	}

	if res.GroupBy == analytics.GroupNone {
		return fmt.Sprintf("Veritabanı sonucu: %s%s.", formatNumber(res.Rows[0].Value), unit)
	}

	lines := make([]string, len(res.Rows))
	for i, r := range res.Rows {
		lines[i] = fmt.Sprintf("%d. %s: %s%s", i+1, r.KeyString(), formatNumber(r.Value), unit)
	}
	return "Veritabanı sonuçları:\n" + strings.Join(lines, "\n")
}

// formatNumber prints the shortest exact form: 150, 75.5, 10.98.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
