package planner

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/planweave/planweave/internal/llm"
	"github.com/planweave/planweave/internal/task"
	"github.com/planweave/planweave/prompts"
)

// Config carries the decomposition knobs. Zero values fall back to the
// defaults below when passed to New.
type Config struct {
	// MinDurationMinutes and MaxDurationMinutes bound every task estimate.
	MinDurationMinutes int
	MaxDurationMinutes int

	// MaxSubtasks truncates the parsed block list in document order.
	// 0 means unbounded.
	MaxSubtasks int

	// MinAcceptanceCriteria is the padded minimum per task.
	MinAcceptanceCriteria int

	// Temperature for the completion call (0 = deterministic).
	Temperature float32

	// SystemPrompt overrides the built-in decomposition prompt when set.
	SystemPrompt string
}

// Default config bounds.
const (
	DefaultMinDurationMinutes    = 15
	DefaultMaxDurationMinutes    = 60
	DefaultMinAcceptanceCriteria = 3
)

// DefaultConfig returns the standard engine configuration.
func DefaultConfig() Config {
	return Config{
		MinDurationMinutes:    DefaultMinDurationMinutes,
		MaxDurationMinutes:    DefaultMaxDurationMinutes,
		MinAcceptanceCriteria: DefaultMinAcceptanceCriteria,
	}
}

// withDefaults fills unset fields.
func (c Config) withDefaults() Config {
	if c.MinDurationMinutes <= 0 {
		c.MinDurationMinutes = DefaultMinDurationMinutes
	}
	if c.MaxDurationMinutes <= 0 {
		c.MaxDurationMinutes = DefaultMaxDurationMinutes
	}
	if c.MinAcceptanceCriteria <= 0 {
		c.MinAcceptanceCriteria = DefaultMinAcceptanceCriteria
	}
	if c.SystemPrompt == "" {
		c.SystemPrompt = prompts.DecomposeSystemPrompt
	}
	return c
}

// Decomposer is the decomposition entry point: it prompts the completion
// collaborator once per call and assembles a DecompositionResult from the
// response. Concurrent calls with distinct features are independent; the
// only shared state is the fallback counter, which is atomic.
type Decomposer struct {
	cfg      Config
	client   llm.CompletionClient
	fallback FallbackGenerator
	logger   *slog.Logger
}

// New creates a Decomposer around a completion client.
func New(client llm.CompletionClient, cfg Config) *Decomposer {
	return &Decomposer{
		cfg:    cfg.withDefaults(),
		client: client,
		logger: slog.Default(),
	}
}

// FallbackCount reports how many runs degraded to the fallback task.
func (d *Decomposer) FallbackCount() int64 {
	return d.fallback.Count()
}

// ResetFallbackCount clears the fallback counter, for test isolation.
func (d *Decomposer) ResetFallbackCount() {
	d.fallback.Reset()
}

// Decompose converts one feature descriptor into a validated task breakdown
// with dependency graph, cycle report, and critical path. contextBlock, when
// non-empty, is appended verbatim to the prompt.
//
// Decompose never fails: if the completion call errors (including
// cancellation of ctx), the result degrades to the single fallback task.
// Once a response is received, assembly runs to completion synchronously.
func (d *Decomposer) Decompose(ctx context.Context, feature task.Feature, contextBlock string) *task.DecompositionResult {
	startedAt := time.Now()
	prompt := BuildPrompt(feature, contextBlock)

	content, err := d.client.Complete(ctx, llm.CompletionRequest{
		Prompt:       prompt,
		SystemPrompt: d.cfg.SystemPrompt,
		Temperature:  d.cfg.Temperature,
	})
	if err != nil {
		d.logger.Warn("completion call failed, substituting fallback task",
			"feature_id", feature.ID, "error", err)
		return d.fallbackResult(feature, startedAt)
	}

	blocks := ParseResponse(content, d.cfg.MaxSubtasks)
	tasks, dropped := resolveTasks(feature, blocks, d.cfg)
	if dropped > 0 {
		d.logger.Debug("dropped dangling dependency references",
			"feature_id", feature.ID, "count", dropped)
	}

	return &task.DecompositionResult{
		RunID:                 uuid.NewString(),
		Feature:               feature,
		Tasks:                 tasks,
		DependencyGraph:       task.BuildDependencyGraph(tasks),
		Cycles:                task.DetectCycles(tasks),
		CriticalPath:          task.FindCriticalPath(tasks),
		TotalEstimateMinutes:  sumEstimates(tasks),
		DroppedDependencyRefs: dropped,
		CreatedAt:             startedAt,
	}
}

// fallbackResult builds the degraded single-task result.
func (d *Decomposer) fallbackResult(feature task.Feature, startedAt time.Time) *task.DecompositionResult {
	ft := d.fallback.Generate(feature)
	return &task.DecompositionResult{
		RunID:                uuid.NewString(),
		Feature:              feature,
		Tasks:                []task.AtomicTask{ft},
		DependencyGraph:      map[string][]string{},
		CriticalPath:         []string{ft.ID},
		TotalEstimateMinutes: ft.EstimateMinutes,
		UsedFallback:         true,
		CreatedAt:            startedAt,
	}
}

// BuildPrompt renders the user prompt for one feature. The context block, if
// supplied, is included verbatim.
func BuildPrompt(feature task.Feature, contextBlock string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Feature ID: %s\n", feature.ID)
	fmt.Fprintf(&sb, "Description: %s\n", feature.Description)
	if feature.IsUI {
		sb.WriteString("UI-Related: Yes\n")
	} else {
		sb.WriteString("UI-Related: No\n")
	}
	if contextBlock != "" {
		sb.WriteString("\n")
		sb.WriteString(prompts.ContextSectionHeader)
		sb.WriteString("\n")
		sb.WriteString(contextBlock)
		sb.WriteString("\n")
	}
	return sb.String()
}

func sumEstimates(tasks []task.AtomicTask) int {
	total := 0
	for _, t := range tasks {
		total += t.EstimateMinutes
	}
	return total
}
