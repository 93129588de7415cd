// Package planner turns the free-text output of a completion model into a
// validated, dependency-ordered set of atomic tasks. Everything below the
// Decomposer entry point is total: malformed input yields defaults or empty
// results, never errors.
package planner

import "strings"

// Field labels emitted by the decomposition prompt. Matching is
// case-insensitive because models do not reproduce casing reliably.
const (
	labelTask        = "TASK:"
	labelDescription = "DESCRIPTION:"
	labelEstimate    = "ESTIMATE:"
	labelDependsOn   = "DEPENDS_ON:"
	labelPriority    = "PRIORITY:"
	labelCriteria    = "ACCEPTANCE_CRITERIA:"
	labelFiles       = "FILES:"
	labelPatterns    = "PATTERNS:"
)

// RawTask is the untyped intermediate representation of one parsed block.
// Fields hold raw text exactly as found; interpretation (estimate clamping,
// dependency resolution, priority normalization) happens later.
type RawTask struct {
	Title              string
	Description        string
	Estimate           string
	Dependencies       []string
	Priority           string
	AcceptanceCriteria []string
	Files              []string
	Patterns           []string
}

// ParseResponse scans raw completion text line by line and splits it into
// ordered task blocks. A block starts at a "TASK:" marker and runs until the
// next marker or end of input; text before the first marker is discarded.
// Absence of any labeled field is not an error. maxSubtasks > 0 truncates to
// the first N blocks in document order. Zero blocks is a valid empty result.
func ParseResponse(text string, maxSubtasks int) []RawTask {
	var blocks []RawTask
	var cur *RawTask

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)

		if rest, ok := matchLabel(trimmed, labelTask); ok {
			blocks = append(blocks, RawTask{Title: rest})
			cur = &blocks[len(blocks)-1]
			continue
		}
		if cur == nil {
			continue
		}

		switch {
		case hasLabel(trimmed, labelDescription):
			cur.Description, _ = matchLabel(trimmed, labelDescription)
		case hasLabel(trimmed, labelEstimate):
			cur.Estimate, _ = matchLabel(trimmed, labelEstimate)
		case hasLabel(trimmed, labelDependsOn):
			rest, _ := matchLabel(trimmed, labelDependsOn)
			cur.Dependencies = splitList(rest)
		case hasLabel(trimmed, labelPriority):
			cur.Priority, _ = matchLabel(trimmed, labelPriority)
		case hasLabel(trimmed, labelCriteria):
			// Header line only; the criteria follow as bullets.
		case hasLabel(trimmed, labelFiles):
			rest, _ := matchLabel(trimmed, labelFiles)
			cur.Files = splitList(rest)
		case hasLabel(trimmed, labelPatterns):
			rest, _ := matchLabel(trimmed, labelPatterns)
			cur.Patterns = splitList(rest)
		case strings.HasPrefix(trimmed, "-"):
			if item := strings.TrimSpace(strings.TrimPrefix(trimmed, "-")); item != "" {
				cur.AcceptanceCriteria = append(cur.AcceptanceCriteria, item)
			}
		}
	}

	for i := range blocks {
		if strings.TrimSpace(blocks[i].Description) == "" {
			blocks[i].Description = blocks[i].Title
		}
	}

	if maxSubtasks > 0 && len(blocks) > maxSubtasks {
		blocks = blocks[:maxSubtasks]
	}
	return blocks
}

// matchLabel reports whether line starts with label (case-insensitive) and
// returns the trimmed remainder.
func matchLabel(line, label string) (string, bool) {
	if len(line) < len(label) || !strings.EqualFold(line[:len(label)], label) {
		return "", false
	}
	return strings.TrimSpace(line[len(label):]), true
}

func hasLabel(line, label string) bool {
	_, ok := matchLabel(line, label)
	return ok
}

// splitList splits a comma-separated field into trimmed, non-empty tokens.
func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
