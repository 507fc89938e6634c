package prompt

import (
	"fmt"
	"strings"
)

// TimeframeRule converts a timeframe phrase into the week count the model must cover.
type TimeframeRule struct {
	Phrase   string
	MinWeeks int
	MaxWeeks int
	// Approximate relaxes the instruction from "exactly" to "approximately".
	Approximate bool
	Hint        string
}

// Weeks renders the week count as "12" or "16-17".
func (r TimeframeRule) Weeks() string {
	if r.MinWeeks == r.MaxWeeks {
		return fmt.Sprintf("%d", r.MinWeeks)
	}
	return fmt.Sprintf("%d-%d", r.MinWeeks, r.MaxWeeks)
}

// TimeframeWeeks is the conversion table embedded in the timetable prompt.
// It documents the intended model behavior; plans are not checked against it.
var TimeframeWeeks = []TimeframeRule{
	{Phrase: "1 month", MinWeeks: 4, MaxWeeks: 4},
	{Phrase: "2 months", MinWeeks: 8, MaxWeeks: 8},
	{Phrase: "3 months", MinWeeks: 12, MaxWeeks: 12},
	{Phrase: "4 months", MinWeeks: 16, MaxWeeks: 17, Hint: "usually four 4-week phases, 16 weeks in total"},
	{Phrase: "6 months", MinWeeks: 24, MaxWeeks: 26, Approximate: true},
	{Phrase: "1 year", MinWeeks: 52, MaxWeeks: 52, Approximate: true},
}

var timeframeAliases = map[string]string{
	"one month":    "1 month",
	"two months":   "2 months",
	"three months": "3 months",
	"four months":  "4 months",
	"six months":   "6 months",
	"12 months":    "1 year",
	"one year":     "1 year",
	"a year":       "1 year",
}

// WeeksFor looks up the rule for a timeframe phrase, ignoring case and extra spaces.
func WeeksFor(timeframe string) (TimeframeRule, bool) {
	key := strings.Join(strings.Fields(strings.ToLower(timeframe)), " ")
	if alias, ok := timeframeAliases[key]; ok {
		key = alias
	}
	for _, rule := range TimeframeWeeks {
		if rule.Phrase == key {
			return rule, true
		}
	}
	return TimeframeRule{}, false
}
