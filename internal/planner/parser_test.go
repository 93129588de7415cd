package planner

import (
	"reflect"
	"testing"
)

const sampleResponse = `Here is the breakdown you asked for:

TASK: Create user schema
DESCRIPTION: Define the users table and migration.
ESTIMATE: 20
DEPENDS_ON: none
PRIORITY: P1
ACCEPTANCE_CRITERIA:
- Migration applies cleanly
- Columns match the design doc
FILES: db/migrations/001_users.sql, internal/user/schema.go
PATTERNS: repository

TASK: Implement auth service
DESCRIPTION: Service layer for login and session issuance.
ESTIMATE: 45
DEPENDS_ON: 1
PRIORITY: P0
ACCEPTANCE_CRITERIA:
- Login succeeds with valid credentials
- Login fails with invalid credentials
- Sessions expire

TASK: Expose login endpoint
ESTIMATE: 30
DEPENDS_ON: 2
PRIORITY: P2
`

func TestParseResponse_MultiBlock(t *testing.T) {
	blocks := ParseResponse(sampleResponse, 0)

	if len(blocks) != 3 {
		t.Fatalf("expected 3 blocks, got %d", len(blocks))
	}

	first := blocks[0]
	if first.Title != "Create user schema" {
		t.Errorf("title = %q", first.Title)
	}
	if first.Description != "Define the users table and migration." {
		t.Errorf("description = %q", first.Description)
	}
	if first.Estimate != "20" {
		t.Errorf("estimate = %q", first.Estimate)
	}
	if !reflect.DeepEqual(first.Dependencies, []string{"none"}) {
		t.Errorf("dependencies = %v", first.Dependencies)
	}
	if len(first.AcceptanceCriteria) != 2 {
		t.Errorf("criteria = %v", first.AcceptanceCriteria)
	}
	if !reflect.DeepEqual(first.Files, []string{"db/migrations/001_users.sql", "internal/user/schema.go"}) {
		t.Errorf("files = %v", first.Files)
	}
	if !reflect.DeepEqual(first.Patterns, []string{"repository"}) {
		t.Errorf("patterns = %v", first.Patterns)
	}

	if blocks[1].Priority != "P0" {
		t.Errorf("second priority = %q", blocks[1].Priority)
	}
	if !reflect.DeepEqual(blocks[2].Dependencies, []string{"2"}) {
		t.Errorf("third dependencies = %v", blocks[2].Dependencies)
	}
}

func TestParseResponse_PreambleDiscarded(t *testing.T) {
	blocks := ParseResponse("junk line\n- stray bullet\nTASK: Real task\n", 0)
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocks))
	}
	if len(blocks[0].AcceptanceCriteria) != 0 {
		t.Errorf("bullet before first marker must be discarded, got %v", blocks[0].AcceptanceCriteria)
	}
}

func TestParseResponse_MissingDescriptionFallsBackToTitle(t *testing.T) {
	blocks := ParseResponse("TASK: Wire up metrics\nESTIMATE: 15\n", 0)
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocks))
	}
	if blocks[0].Description != "Wire up metrics" {
		t.Errorf("description = %q, want title fallback", blocks[0].Description)
	}
}

func TestParseResponse_CaseInsensitiveLabels(t *testing.T) {
	blocks := ParseResponse("task: Lowercase marker\ndescription: still parsed\nestimate: 25\n", 0)
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocks))
	}
	if blocks[0].Description != "still parsed" || blocks[0].Estimate != "25" {
		t.Errorf("lowercase labels not matched: %+v", blocks[0])
	}
}

func TestParseResponse_MaxSubtasksTruncatesInDocumentOrder(t *testing.T) {
	blocks := ParseResponse(sampleResponse, 2)
	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks after truncation, got %d", len(blocks))
	}
	if blocks[0].Title != "Create user schema" || blocks[1].Title != "Implement auth service" {
		t.Errorf("truncation must keep document order, got %q, %q", blocks[0].Title, blocks[1].Title)
	}
}

func TestParseResponse_NoBlocks(t *testing.T) {
	for _, input := range []string{"", "no markers here\nat all", "DESCRIPTION: orphan field"} {
		if blocks := ParseResponse(input, 0); len(blocks) != 0 {
			t.Errorf("ParseResponse(%q) = %v, want empty", input, blocks)
		}
	}
}

func TestParseResponse_EmptyTitleStillABlock(t *testing.T) {
	blocks := ParseResponse("TASK:\nESTIMATE: 20\n", 0)
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocks))
	}
	if blocks[0].Estimate != "20" {
		t.Errorf("fields after empty title not captured: %+v", blocks[0])
	}
}
