package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/planweave/planweave/internal/llm"
	"github.com/planweave/planweave/internal/planner"
	"github.com/planweave/planweave/internal/task"
	"github.com/planweave/planweave/internal/utils"
	"github.com/planweave/planweave/prompts"
	"github.com/planweave/planweave/store"
)

var (
	decomposeFeatureID   string
	decomposeUI          bool
	decomposeContextFile string
	decomposeOutput      string
)

var decomposeCmd = &cobra.Command{
	Use:   "decompose <description>",
	Short: "Break a feature request into dependency-ordered atomic tasks",
	Long: `Decompose sends the feature description to the configured completion
model, parses the response into atomic tasks, and prints the plan with its
dependency graph, cycle report, and critical path. If the model call fails,
a single fallback task is produced instead.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runDecompose,
}

func init() {
	decomposeCmd.Flags().StringVar(&decomposeFeatureID, "id", "", "feature identifier (default: generated)")
	decomposeCmd.Flags().BoolVar(&decomposeUI, "ui", false, "mark the feature as UI-related")
	decomposeCmd.Flags().StringVar(&decomposeContextFile, "context-file", "", "file whose contents are appended verbatim to the prompt")
	decomposeCmd.Flags().StringVarP(&decomposeOutput, "output", "o", "", "write the full result to this file (.json, .yaml, or .yml)")
	rootCmd.AddCommand(decomposeCmd)
}

func runDecompose(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	featureID := decomposeFeatureID
	if featureID == "" {
		featureID = "F-" + uuid.NewString()[:8]
	}
	feature := task.Feature{
		ID:          featureID,
		Description: strings.Join(args, " "),
		IsUI:        decomposeUI,
	}

	contextBlock := ""
	if decomposeContextFile != "" {
		data, err := os.ReadFile(decomposeContextFile)
		if err != nil {
			return fmt.Errorf("read context file: %w", err)
		}
		contextBlock = string(data)
	}

	systemPrompt, err := prompts.GetPrompt(prompts.KeyDecompose, cfg.Project.TemplatesDir)
	if err != nil {
		return fmt.Errorf("load prompt: %w", err)
	}

	provider, err := llm.ValidateProvider(cfg.LLM.Provider)
	if err != nil {
		return err
	}
	model := cfg.LLM.Model
	if model == "" {
		model = llm.DefaultModelForProvider(provider)
	}

	ctx := cmd.Context()
	if cfg.LLM.RequestTimeoutSeconds > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(cfg.LLM.RequestTimeoutSeconds)*time.Second)
		defer cancel()
	}

	client, err := llm.NewChatClient(ctx, llm.Config{
		Provider: provider,
		Model:    model,
		APIKey:   cfg.LLM.APIKey,
		BaseURL:  cfg.LLM.BaseURL,
	})
	if err != nil {
		return fmt.Errorf("create completion client: %w", err)
	}

	d := planner.New(client, planner.Config{
		MinDurationMinutes:    cfg.Decomposition.MinDurationMinutes,
		MaxDurationMinutes:    cfg.Decomposition.MaxDurationMinutes,
		MaxSubtasks:           cfg.Decomposition.MaxSubtasks,
		MinAcceptanceCriteria: cfg.Decomposition.MinAcceptanceCriteria,
		Temperature:           float32(cfg.LLM.Temperature),
		SystemPrompt:          systemPrompt,
	})

	res := d.Decompose(ctx, feature, contextBlock)
	printResult(cmd, res)

	if decomposeOutput != "" {
		if err := store.NewOsResultStore().Save(decomposeOutput, res); err != nil {
			return fmt.Errorf("save result: %w", err)
		}
		cmd.Printf("\nResult written to %s\n", decomposeOutput)
	}
	return nil
}

// printResult renders a plan summary to the command's output.
func printResult(cmd *cobra.Command, res *task.DecompositionResult) {
	if res.UsedFallback {
		cmd.Println("Completion call failed; produced a single fallback task.")
	}
	cmd.Printf("Feature %s: %d task(s), %d minute(s) total\n\n",
		res.Feature.ID, len(res.Tasks), res.TotalEstimateMinutes)

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tEST\tPRI\tSTATUS\tDEPENDS ON")
	for _, t := range res.Tasks {
		deps := "-"
		if len(t.DependsOn) > 0 {
			deps = strings.Join(t.DependsOn, ", ")
		}
		fmt.Fprintf(w, "%s\t%s\t%dm\t%s\t%s\t%s\n",
			t.ID, utils.Truncate(t.Title, 40), t.EstimateMinutes, t.Priority, t.Status, deps)
	}
	_ = w.Flush()

	if len(res.CriticalPath) > 0 {
		cmd.Printf("\nCritical path: %s\n", strings.Join(res.CriticalPath, " -> "))
	}
	for _, cycle := range res.Cycles {
		cmd.Printf("WARNING: circular dependency: %s\n", strings.Join(cycle, " -> "))
	}
	if res.DroppedDependencyRefs > 0 {
		cmd.Printf("Note: %d dependency reference(s) pointed at unknown tasks and were dropped.\n",
			res.DroppedDependencyRefs)
	}
}
