package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/planweave/planweave/internal/task"
	"github.com/planweave/planweave/store"
)

var graphCmd = &cobra.Command{
	Use:   "graph <result-file>",
	Short: "Re-analyze a stored plan: dependency graph, cycles, critical path",
	Args:  cobra.ExactArgs(1),
	RunE:  runGraph,
}

func init() {
	rootCmd.AddCommand(graphCmd)
}

func runGraph(cmd *cobra.Command, args []string) error {
	res, err := store.NewOsResultStore().Load(args[0])
	if err != nil {
		return fmt.Errorf("load result: %w", err)
	}

	graph := task.BuildDependencyGraph(res.Tasks)
	cycles := task.DetectCycles(res.Tasks)
	path := task.FindCriticalPath(res.Tasks)

	cmd.Printf("Feature %s: %d task(s)\n\n", res.Feature.ID, len(res.Tasks))
	for _, t := range res.Tasks {
		deps := graph[t.ID]
		if len(deps) == 0 {
			cmd.Printf("%s (no dependencies)\n", t.ID)
			continue
		}
		cmd.Printf("%s <- %s\n", t.ID, strings.Join(deps, ", "))
	}

	if len(path) > 0 {
		cmd.Printf("\nCritical path: %s\n", strings.Join(path, " -> "))
	}
	if len(cycles) == 0 {
		cmd.Println("No circular dependencies.")
		return nil
	}
	for _, cycle := range cycles {
		cmd.Printf("WARNING: circular dependency: %s\n", strings.Join(cycle, " -> "))
	}
	return nil
}
