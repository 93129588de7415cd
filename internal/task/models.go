// Package task defines the entities produced by the decomposition engine and
// the graph analysis that runs over them.
package task

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Status represents the readiness of a task at construction time.
// It is a static property of the parse: a task is ready when it has no
// dependencies and pending otherwise. Later lifecycle transitions
// (in-progress, completed) belong to the orchestration layer, not here.
type Status string

const (
	StatusReady   Status = "ready"
	StatusPending Status = "pending"
)

// Priority represents the importance level of a task.
type Priority string

const (
	PriorityP0 Priority = "P0" // critical
	PriorityP1 Priority = "P1"
	PriorityP2 Priority = "P2"
	PriorityP3 Priority = "P3" // nice-to-have
)

// DefaultPriority is assigned when the priority token is missing or
// unrecognized in the upstream text.
const DefaultPriority = PriorityP2

// ParsePriority normalizes a raw priority token. Unknown tokens resolve to
// DefaultPriority; this is a lenient default, not an error.
func ParsePriority(raw string) Priority {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "P0":
		return PriorityP0
	case "P1":
		return PriorityP1
	case "P2":
		return PriorityP2
	case "P3":
		return PriorityP3
	default:
		return DefaultPriority
	}
}

// Feature is the input descriptor for one decomposition run. It is owned by
// the upstream planning collaborator; the engine never mutates it.
type Feature struct {
	ID          string `json:"id" validate:"required"`
	Description string `json:"description" validate:"required"`
	IsUI        bool   `json:"is_ui"`
	SourceText  string `json:"source_text,omitempty"`
}

// AtomicTask is the smallest unit of planned work. Instances are immutable
// once the decomposition run that produced them returns.
type AtomicTask struct {
	ID                 string   `json:"id" validate:"required"`
	FeatureID          string   `json:"feature_id" validate:"required"`
	Title              string   `json:"title"`
	Description        string   `json:"description"`
	EstimateMinutes    int      `json:"estimate_minutes" validate:"gt=0"`
	DependsOn          []string `json:"depends_on"`
	Blocks             []string `json:"blocks"`
	AcceptanceCriteria []string `json:"acceptance_criteria"`
	Files              []string `json:"files,omitempty"`
	Patterns           []string `json:"patterns,omitempty"`
	Priority           Priority `json:"priority" validate:"required,oneof=P0 P1 P2 P3"`
	IsUI               bool     `json:"is_ui"`
	Status             Status   `json:"status" validate:"required,oneof=ready pending"`
}

// Validate checks structural soundness of a single task.
func (t *AtomicTask) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return fmt.Errorf("task ID required")
	}
	if strings.TrimSpace(t.FeatureID) == "" {
		return fmt.Errorf("task feature ID required")
	}
	if t.EstimateMinutes <= 0 {
		return fmt.Errorf("task estimate must be positive, got %d", t.EstimateMinutes)
	}
	if t.Status != StatusReady && t.Status != StatusPending {
		return fmt.Errorf("unknown task status %q", t.Status)
	}
	if (t.Status == StatusReady) != (len(t.DependsOn) == 0) {
		return fmt.Errorf("task %s status %q inconsistent with %d dependencies", t.ID, t.Status, len(t.DependsOn))
	}
	return nil
}

// DecompositionResult is the full output of one decomposition run. Ownership
// transfers to the caller on return; nothing here is updated afterwards.
type DecompositionResult struct {
	RunID   string  `json:"run_id" validate:"required,uuid4"`
	Feature Feature `json:"feature" validate:"required"`

	// Tasks in parse order. IDs have the form {featureId}.{N}, N 1-based.
	Tasks []AtomicTask `json:"tasks" validate:"dive"`

	// DependencyGraph maps each task ID to the IDs it depends on.
	DependencyGraph map[string][]string `json:"dependency_graph"`

	// Cycles lists circular dependency chains found in the parsed graph.
	// Advisory only: the caller decides whether to reject or regenerate.
	Cycles [][]string `json:"cycles,omitempty"`

	// CriticalPath is the dependency chain with the largest summed estimate,
	// ordered dependency-first.
	CriticalPath []string `json:"critical_path"`

	TotalEstimateMinutes int `json:"total_estimate_minutes"`

	// DroppedDependencyRefs counts dependency references that pointed at
	// non-existent positions and were discarded during resolution.
	DroppedDependencyRefs int `json:"dropped_dependency_refs,omitempty"`

	// UsedFallback is set when the completion collaborator failed and the
	// result degraded to the single fallback task.
	UsedFallback bool `json:"used_fallback,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// global validator instance; caches struct metadata across calls.
var validate = validator.New()

// ValidateStruct runs tag-based validation on any engine entity. It is an
// advisory check for callers and tests; the engine itself never rejects its
// own output.
func ValidateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	var msgs []string
	for _, e := range verrs {
		msgs = append(msgs, fmt.Sprintf("field %q failed rule %q (value %v)", e.StructNamespace(), e.Tag(), e.Value()))
	}
	return fmt.Errorf("%s", strings.Join(msgs, "; "))
}
