package planner

import (
	"fmt"
	"strings"
)

// DefaultEstimateMinutes is used when the estimate field is missing or
// carries no leading number.
const DefaultEstimateMinutes = 30

// NormalizeEstimate parses a raw estimate string and clamps the result into
// [minMinutes, maxMinutes]. The leading integer is taken, so "45 minutes"
// parses as 45; text with no leading number defaults to
// DefaultEstimateMinutes before clamping.
func NormalizeEstimate(raw string, minMinutes, maxMinutes int) int {
	n, ok := leadingInt(strings.TrimSpace(raw))
	if !ok {
		n = DefaultEstimateMinutes
	}
	if n < minMinutes {
		return minMinutes
	}
	if n > maxMinutes {
		return maxMinutes
	}
	return n
}

// leadingInt reads the decimal digits at the start of s.
func leadingInt(s string) (int, bool) {
	i := 0
	n := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		n = n*10 + int(s[i]-'0')
		i++
	}
	return n, i > 0
}

// PadAcceptanceCriteria appends synthetic entries of the form
// "Verify task {k} is complete" until the list reaches minCount. k counts
// only the synthetic entries, starting at 1. Existing entries are never
// removed or reordered, and an already-sufficient list is returned as-is.
func PadAcceptanceCriteria(criteria []string, minCount int) []string {
	out := make([]string, 0, max(len(criteria), minCount))
	out = append(out, criteria...)
	for k := 1; len(out) < minCount; k++ {
		out = append(out, fmt.Sprintf("Verify task %d is complete", k))
	}
	return out
}
