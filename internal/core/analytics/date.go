package analytics

import (
	"regexp"
	"time"
)

// DateLayout is the ISO calendar date format orders are stored with.
const DateLayout = "2006-01-02"

// RangeToken is a coarse period a user can ask about
type RangeToken string

const (
	Range7d        RangeToken = "7d"
	Range30d       RangeToken = "30d"
	RangeMonth     RangeToken = "month"
	RangeThisWeek  RangeToken = "thisWeek"
	RangeLastWeek  RangeToken = "lastWeek"
	RangeToday     RangeToken = "today"
	RangeYesterday RangeToken = "yesterday"
	RangeThisYear  RangeToken = "thisYear"
	RangeLastMonth RangeToken = "lastMonth"
	RangeNone      RangeToken = "none"
)

// FormatDate renders t as YYYY-MM-DD in its own location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ResolveRange maps a token to concrete calendar dates relative to today.
// RangeNone (and anything unrecognised) yields an unbounded range, i.e. the whole history.
func ResolveRange(token RangeToken, today time.Time) DateRange {
	day := startOfDay(today)

	switch token {
	case Range7d:
		return span(day.AddDate(0, 0, -6), day)

	case Range30d:
		return span(day.AddDate(0, 0, -29), day)

	case RangeToday:
		return span(day, day)

	case RangeYesterday:
		y := day.AddDate(0, 0, -1)
		return span(y, y)

	case RangeThisWeek:
		return span(startOfWeek(day), day)

	case RangeLastWeek:
		monday := startOfWeek(day)
		return span(monday.AddDate(0, 0, -7), monday.AddDate(0, 0, -1))

	case RangeLastMonth:
		firstThisMonth := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, day.Location())
		// time.Date normalises month 0 to December of the previous year
		firstLastMonth := time.Date(day.Year(), day.Month()-1, 1, 0, 0, 0, 0, day.Location())
		return span(firstLastMonth, firstThisMonth.AddDate(0, 0, -1))

	case RangeThisYear:
		return span(time.Date(day.Year(), 1, 1, 0, 0, 0, 0, day.Location()), day)

	case RangeMonth:
		return span(time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, day.Location()), day)

	default:
		return DateRange{}
	}
}

// rangeRule ties a phrase pattern on normalized text to a token.
type rangeRule struct {
	pattern *regexp.Regexp
	token   RangeToken
}

// Checked top to bottom; first match wins.
var rangeRules = []rangeRule{
	{regexp.MustCompile(`son\s*7\s*gun`), Range7d},
	{regexp.MustCompile(`son\s*30\s*gun`), Range30d},
	{regexp.MustCompile(`(bu|ic)\s*ay`), RangeMonth},
	{regexp.MustCompile(`bugun`), RangeToday},
	{regexp.MustCompile(`dun`), RangeYesterday},
	{regexp.MustCompile(`bu hafta`), RangeThisWeek},
	{regexp.MustCompile(`gecen ?hafta`), RangeLastWeek},
	{regexp.MustCompile(`gecen ?ay`), RangeLastMonth},
	{regexp.MustCompile(`bu (yil|sene)`), RangeThisYear},
}

// DetectRangeToken extracts the period phrase from already-normalized text.
func DetectRangeToken(normalized string) RangeToken {
	for _, rule := range rangeRules {
		if rule.pattern.MatchString(normalized) {
			return rule.token
		}
	}
	return RangeNone
}

// MonthAgo returns the same calendar day one month earlier (time.Date normalisation applies).
func MonthAgo(today time.Time) time.Time {
	return time.Date(today.Year(), today.Month()-1, today.Day(), 0, 0, 0, 0, today.Location())
}

func span(start, end time.Time) DateRange {
	return DateRange{Start: FormatDate(start), End: FormatDate(end)}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// startOfWeek returns the Monday of t's week
func startOfWeek(t time.Time) time.Time {
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday = 7
	}
	return t.AddDate(0, 0, -(weekday - 1))
}
