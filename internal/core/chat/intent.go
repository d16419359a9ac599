package chat

import (
	"regexp"
	"strconv"
)

// Intent is a question shape with a dedicated deterministic answer.
type Intent string

const (
	IntentLatest      Intent = "latest"
	IntentSummary     Intent = "summary"
	IntentTopItems    Intent = "topItems"
	IntentMenuGroup   Intent = "menuGroup"
	IntentServiceType Intent = "serviceType"
	IntentNone        Intent = "none"
)

const (
	defaultTopN = 5
	maxTopN     = 20
)

// Route is the router's decision for one normalized question.
type Route struct {
	Intent Intent
	TopN   int
}

type intentRule struct {
	intent  Intent
	pattern *regexp.Regexp
}

// Priority order matters: "latest" must beat summary words like "ciro".
var intentRules = []intentRule{
	{IntentLatest, regexp.MustCompile(`en son|son veri|son kayit|son gun|last|latest`)},
	{IntentSummary, regexp.MustCompile(`gelir|ciro|ozet|kpi|toplam|ortalama|kazanc|hasilat`)},
	{IntentTopItems, regexp.MustCompile(`en cok satan|top ?\d+|en cok|populer|en iyi`)},
	{IntentMenuGroup, regexp.MustCompile(`menu grubu|kategori`)},
	{IntentServiceType, regexp.MustCompile(`servis tur|paket|yerinde`)},
}

var topNPattern = regexp.MustCompile(`top\s*(\d+)`)

// RouteQuestion picks the first intent whose pattern matches normalized text.
func RouteQuestion(normalized string) Route {
	route := Route{Intent: IntentNone, TopN: parseTopN(normalized)}
	for _, rule := range intentRules {
		if rule.pattern.MatchString(normalized) {
			route.Intent = rule.intent
			break
		}
	}
	return route
}

// parseTopN reads "top N", defaulting to 5 and clamping to [1,20].
func parseTopN(normalized string) int {
	m := topNPattern.FindStringSubmatch(normalized)
	if m == nil {
		return defaultTopN
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		// overflowing digit runs
		return maxTopN
	}
	if n < 1 {
		return 1
	}
	if n > maxTopN {
		return maxTopN
	}
	return n
}
