package chat

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/MuhamadAgungGumelar/resto-analytics-be/internal/core/analytics"
)

const (
	noRecordsLatest = "Kayıt bulunamadı."
	noRecordsRange  = "Bu aralıkta kayıt bulunamadı."
)

// intentStrategy answers the fixed question shapes straight from order data.
type intentStrategy struct {
	store    OrderStore
	composer *Composer
}

func (s *intentStrategy) Name() string { return "intent" }

func (s *intentStrategy) Answer(ctx context.Context, t *Turn) (*Answer, error) {
	if t.UserID == "" {
		return nil, nil
	}

	route := RouteQuestion(t.Normalized)
	if route.Intent == IntentNone {
		return nil, nil
	}

	log.Debug().
		Str("intent", string(route.Intent)).
		Str("start", t.Range.Start).
		Str("end", t.Range.End).
		Msg("🧭 intent matched")

	rows, err := s.store.FetchOrders(ctx, t.UserID, t.Range)
	if err != nil {
		return nil, fmt.Errorf("fetch orders: %w", err)
	}

	var text string
	switch route.Intent {
	case IntentLatest:
		text = s.latest(ctx, t, rows)
	case IntentSummary:
		text = s.summary(ctx, t, rows)
	case IntentTopItems:
		text = s.topItems(ctx, t, rows, route.TopN)
	case IntentMenuGroup:
		text = s.menuGroups(ctx, t, rows)
	case IntentServiceType:
		text = s.serviceTypes(ctx, t, rows)
	}

	return &Answer{Text: text, Model: AnalyticsModel}, nil
}

func (s *intentStrategy) latest(ctx context.Context, t *Turn, rows []analytics.OrderRecord) string {
	stats := analytics.LatestDayStats(rows)
	if stats == nil {
		return noRecordsLatest
	}

	facts := fmt.Sprintf("%s\n\nEn son kayıt tarihi: %s\nO günkü sipariş sayısı: %d\nO günkü gelir: %s TL",
		t.DateContext, stats.Date, stats.Count, formatNumber(stats.TotalRevenue))
	fallback := fmt.Sprintf("En son veri %s tarihinde girildi. O gün %d sipariş ve toplam %s gelir var.",
		stats.Date, stats.Count, analytics.FormatLira(stats.TotalRevenue))

	return s.composer.Compose(ctx, t, Grounding{Instruction: instructLatest, Label: "Bilgiler", Facts: facts}, fallback)
}

func (s *intentStrategy) summary(ctx context.Context, t *Turn, rows []analytics.OrderRecord) string {
	sum := analytics.Summarize(rows)

	facts := fmt.Sprintf("%s\n\nSeçili dönem özet:\n- Toplam gelir: %.2f TL\n- Sipariş sayısı: %d\n- Ortalama sepet: %.2f TL",
		t.DateContext, sum.TotalRevenue, sum.OrderCount, sum.AverageOrder)

	// enrichment is best-effort
	fc, err := s.store.FetchFullContext(ctx, t.UserID)
	if err != nil {
		log.Warn().Err(err).Str("user_id", t.UserID).Msg("⚠️ full context unavailable")
	} else if fc != nil {
		facts += fullContextBlock(fc)
	}

	fallback := "Seçili aralık için özet:\n- " + strings.ReplaceAll(facts, "\n", "\n- ")

	return s.composer.Compose(ctx, t, Grounding{Instruction: instructSummary, Label: "Bilgiler", Facts: facts}, fallback)
}

func (s *intentStrategy) topItems(ctx context.Context, t *Turn, rows []analytics.OrderRecord, n int) string {
	top := analytics.TopItems(rows, n)
	if len(top) == 0 {
		return noRecordsRange
	}

	lines := make([]string, len(top))
	for i, b := range top {
		lines[i] = fmt.Sprintf("%d. %s: %.2f TL", i+1, b.Key, b.Revenue)
	}
	facts := strings.Join(lines, "\n")

	return s.composer.Compose(ctx, t,
		Grounding{Instruction: instructTopItems, Label: "En çok satanlar", Facts: facts},
		"En çok satan ürünler:\n"+facts)
}

func (s *intentStrategy) menuGroups(ctx context.Context, t *Turn, rows []analytics.OrderRecord) string {
	groups := analytics.MenuGroupTotals(rows)
	if len(groups) == 0 {
		return noRecordsRange
	}

	facts := breakdownLines(groups)
	return s.composer.Compose(ctx, t,
		Grounding{Instruction: instructMenuGroup, Label: "Dağılım", Facts: facts},
		"Menü grubu gelir dağılımı:\n"+facts)
}

func (s *intentStrategy) serviceTypes(ctx context.Context, t *Turn, rows []analytics.OrderRecord) string {
	services := analytics.ServiceTypeTotals(rows)
	if len(services) == 0 {
		return noRecordsRange
	}

	facts := breakdownLines(services)
	return s.composer.Compose(ctx, t,
		Grounding{Instruction: instructServiceType, Label: "Dağılım", Facts: facts},
		"Servis türüne göre gelir:\n"+facts)
}

func breakdownLines(rows []analytics.Breakdown) string {
	lines := make([]string, len(rows))
	for i, b := range rows {
		lines[i] = fmt.Sprintf("%s: %.2f TL", b.Key, b.Revenue)
	}
	return strings.Join(lines, "\n")
}

func fullContextBlock(fc *analytics.FullContext) string {
	highVolume := "HAYIR"
	if fc.HighVolumeLastMonth {
		highVolume = "EVET"
	}

	var sb strings.Builder
	sb.WriteString("\n\nGenel bağlam:")
	fmt.Fprintf(&sb, "\n- Toplam sipariş sayısı: %d", fc.TotalOrders)
	fmt.Fprintf(&sb, "\n- Farklı menü grubu: %d", fc.DistinctMenuGroups)
	fmt.Fprintf(&sb, "\n- Farklı ürün: %d", fc.DistinctItems)
	fmt.Fprintf(&sb, "\n- Farklı servis türü: %d", fc.DistinctServiceTypes)
	fmt.Fprintf(&sb, "\n- En çok sipariş edilen ürün: %s", itemCountText(fc.MostOrderedItem))
	fmt.Fprintf(&sb, "\n- Son 1 ay sipariş sayısı: %d", fc.LastMonthOrderCount)
	fmt.Fprintf(&sb, "\n- Son 1 ayda en popüler menü grubu: %s", itemCountText(fc.LastMonthTopMenuGroup))
	fmt.Fprintf(&sb, "\n- Son 1 ayda en popüler ürün: %s", itemCountText(fc.LastMonthTopItem))
	fmt.Fprintf(&sb, "\n- Son 1 ayda yüksek hacim (≥%d sipariş): %s", analytics.HighVolumeThreshold, highVolume)
	return sb.String()
}

func itemCountText(ic *analytics.ItemCount) string {
	if ic == nil {
		return "- (0 sipariş)"
	}
	return fmt.Sprintf("%s (%d sipariş)", ic.Name, ic.Count)
}
