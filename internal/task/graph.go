package task

// Graph analysis over a decomposed task list. All three operations are pure
// functions of the slice they are given: they tolerate cyclic input, unknown
// dependency IDs, and empty lists without ever panicking. Malformed upstream
// text can produce cycles, so nothing here assumes a DAG.

// BuildDependencyGraph returns the adjacency mapping of the task list, one
// entry per task. Edges point from a task to the tasks it depends on.
func BuildDependencyGraph(tasks []AtomicTask) map[string][]string {
	graph := make(map[string][]string, len(tasks))
	for _, t := range tasks {
		deps := make([]string, len(t.DependsOn))
		copy(deps, t.DependsOn)
		graph[t.ID] = deps
	}
	return graph
}

// traversal colors for cycle detection.
const (
	colorUnvisited = iota
	colorInProgress
	colorDone
)

// DetectCycles finds circular dependency chains using a depth-first
// traversal with three-state marking. Each back-edge produces one cycle
// entry: the chain of task IDs from the revisited node back to itself.
// An empty return means the graph is acyclic. This is advisory output;
// cycles are reported as data, never raised as errors.
func DetectCycles(tasks []AtomicTask) [][]string {
	byID := make(map[string]*AtomicTask, len(tasks))
	for i := range tasks {
		byID[tasks[i].ID] = &tasks[i]
	}

	color := make(map[string]int, len(tasks))
	var stack []string
	var cycles [][]string

	var visit func(id string)
	visit = func(id string) {
		color[id] = colorInProgress
		stack = append(stack, id)

		for _, dep := range byID[id].DependsOn {
			if _, exists := byID[dep]; !exists {
				continue
			}
			switch color[dep] {
			case colorUnvisited:
				visit(dep)
			case colorInProgress:
				// Back-edge: the cycle is the stack segment from dep onward.
				start := 0
				for i, s := range stack {
					if s == dep {
						start = i
						break
					}
				}
				cycle := make([]string, len(stack)-start)
				copy(cycle, stack[start:])
				cycles = append(cycles, cycle)
			}
		}

		stack = stack[:len(stack)-1]
		color[id] = colorDone
	}

	for _, t := range tasks {
		if color[t.ID] == colorUnvisited {
			visit(t.ID)
		}
	}

	return cycles
}

// chain is a dependency-first path and its summed estimate.
type chain struct {
	total int
	path  []string
}

// FindCriticalPath returns the dependency chain whose summed EstimateMinutes
// is the largest, ordered dependency-first. Ties keep the first chain
// discovered in task parse order; that tie-break is a traversal artifact, not
// a scheduling policy. Cyclic input terminates cleanly: an in-progress node
// reached again contributes nothing to the chain being built.
func FindCriticalPath(tasks []AtomicTask) []string {
	byID := make(map[string]*AtomicTask, len(tasks))
	for i := range tasks {
		byID[tasks[i].ID] = &tasks[i]
	}

	memo := make(map[string]chain, len(tasks))
	inProgress := make(map[string]bool, len(tasks))

	// longest computes the maximum-estimate chain ending at id.
	var longest func(id string) chain
	longest = func(id string) chain {
		if c, ok := memo[id]; ok {
			return c
		}
		if inProgress[id] {
			return chain{}
		}
		inProgress[id] = true

		t := byID[id]
		var best chain
		for _, dep := range t.DependsOn {
			if _, exists := byID[dep]; !exists {
				continue
			}
			if c := longest(dep); c.total > best.total {
				best = c
			}
		}

		path := make([]string, 0, len(best.path)+1)
		path = append(path, best.path...)
		path = append(path, id)
		result := chain{total: best.total + t.EstimateMinutes, path: path}

		inProgress[id] = false
		memo[id] = result
		return result
	}

	var global chain
	for _, t := range tasks {
		if c := longest(t.ID); c.total > global.total {
			global = c
		}
	}
	return global.path
}
