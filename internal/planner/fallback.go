package planner

import (
	"sync/atomic"

	"github.com/planweave/planweave/internal/task"
	"github.com/planweave/planweave/internal/utils"
)

// fallbackTitleLimit is the number of description runes carried into the
// fallback task title.
const fallbackTitleLimit = 50

// FallbackGenerator produces the single safe task substituted when the
// completion collaborator fails. It keeps a count of fallbacks generated so
// repeated upstream failures are observable; the counter is scoped to one
// generator instance and resettable for test isolation.
type FallbackGenerator struct {
	generated atomic.Int64
}

// Generate returns one actionable task for the feature: no dependencies,
// a fixed 30-minute estimate (already inside the valid range), and three
// deterministic acceptance criteria.
func (g *FallbackGenerator) Generate(feature task.Feature) task.AtomicTask {
	g.generated.Add(1)
	return task.AtomicTask{
		ID:              feature.ID + ".1",
		FeatureID:       feature.ID,
		Title:           "Implement: " + utils.Clip(feature.Description, fallbackTitleLimit),
		Description:     feature.Description,
		EstimateMinutes: DefaultEstimateMinutes,
		DependsOn:       []string{},
		Blocks:          []string{},
		AcceptanceCriteria: []string{
			"Feature is implemented as described",
			"Existing tests continue to pass",
			"New behavior is covered by at least one test",
		},
		Priority: task.PriorityP1,
		IsUI:     feature.IsUI,
		Status:   task.StatusReady,
	}
}

// Count reports how many fallback tasks this generator has produced.
func (g *FallbackGenerator) Count() int64 {
	return g.generated.Load()
}

// Reset clears the fallback counter.
func (g *FallbackGenerator) Reset() {
	g.generated.Store(0)
}
