package planner

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/planweave/planweave/internal/task"
)

// resolveTasks converts ordered raw blocks into AtomicTasks for one feature:
// it assigns stable IDs of the form {featureId}.{N} (N = 1-based parse
// order), resolves positional dependency references into those IDs, derives
// the reverse Blocks index, and sets the static ready/pending status.
//
// Reference policy is lenient by design: "none" and unparseable tokens mean
// no dependency, and out-of-range positions are dropped. The second return
// value counts dropped references so callers can surface a diagnostic.
func resolveTasks(feature task.Feature, blocks []RawTask, cfg Config) ([]task.AtomicTask, int) {
	count := len(blocks)
	tasks := make([]task.AtomicTask, 0, count)
	dropped := 0

	for i, b := range blocks {
		deps, d := resolveRefs(feature.ID, b.Dependencies, count)
		dropped += d

		status := task.StatusPending
		if len(deps) == 0 {
			status = task.StatusReady
		}

		tasks = append(tasks, task.AtomicTask{
			ID:                 fmt.Sprintf("%s.%d", feature.ID, i+1),
			FeatureID:          feature.ID,
			Title:              b.Title,
			Description:        b.Description,
			EstimateMinutes:    NormalizeEstimate(b.Estimate, cfg.MinDurationMinutes, cfg.MaxDurationMinutes),
			DependsOn:          deps,
			Blocks:             []string{},
			AcceptanceCriteria: PadAcceptanceCriteria(b.AcceptanceCriteria, cfg.MinAcceptanceCriteria),
			Files:              b.Files,
			Patterns:           b.Patterns,
			Priority:           task.ParsePriority(b.Priority),
			IsUI:               feature.IsUI,
			Status:             status,
		})
	}

	// Blocks is the exact reverse of DependsOn across the whole result.
	index := make(map[string]int, count)
	for i := range tasks {
		index[tasks[i].ID] = i
	}
	for i := range tasks {
		for _, dep := range tasks[i].DependsOn {
			j := index[dep]
			tasks[j].Blocks = append(tasks[j].Blocks, tasks[i].ID)
		}
	}

	return tasks, dropped
}

// resolveRefs maps raw positional references onto task IDs. Positions run
// 1..count. Duplicate references collapse to one edge.
func resolveRefs(featureID string, refs []string, count int) ([]string, int) {
	deps := []string{}
	seen := make(map[int]bool)
	dropped := 0

	for _, ref := range refs {
		token := strings.TrimSpace(ref)
		if token == "" || strings.EqualFold(token, "none") {
			continue
		}
		pos, err := strconv.Atoi(token)
		if err != nil || pos < 1 || pos > count {
			dropped++
			continue
		}
		if seen[pos] {
			continue
		}
		seen[pos] = true
		deps = append(deps, fmt.Sprintf("%s.%d", featureID, pos))
	}

	return deps, dropped
}
