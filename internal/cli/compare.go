package cli

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"schedsim/internal/report"
	"schedsim/internal/sched"
)

func newCompareCmd() *cobra.Command {
	var (
		policies   []string
		processors int
		quantum    int64
	)

	cmd := &cobra.Command{
		Use:   "compare [workload-file]",
		Short: "Simulate several policies over the same workload",
		Long: `Run each policy over the same workload and print their summary
metrics side by side. Policies that reject the configuration (for example
priority or rr with more than one processor) are reported and skipped.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			applyOverrides(cmd, "", processors, quantum)

			tasks, err := loadWorkload(args)
			if err != nil {
				return err
			}

			built := make([]sched.Policy, 0, len(policies))
			for _, name := range policies {
				p, err := sched.NewPolicy(name, cfg.Quantum)
				if err != nil {
					return err
				}
				built = append(built, p)
			}

			results, errs := simulateAll(built, tasks, cfg.Processors)
			log := logger.With("component", "compare")
			var ok []*sched.Result
			for i, res := range results {
				if errs[i] != nil {
					log.Warn("policy skipped", "policy", built[i].Name(), "error", errs[i])
					continue
				}
				ok = append(ok, res)
			}
			if len(ok) == 0 {
				return fmt.Errorf("no policy could schedule the workload: %w", errors.Join(errs...))
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Workload: %d tasks on %d processor(s)  run: %s\n", len(tasks), cfg.Processors, runID)
			report.Compare(cmd.OutOrStdout(), ok)
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&policies, "policies", sched.PolicyNames(), "Policies to compare ("+strings.Join(sched.PolicyNames(), ", ")+")")
	cmd.Flags().IntVarP(&processors, "processors", "n", 1, "Number of processors")
	cmd.Flags().Int64VarP(&quantum, "quantum", "q", 5, "Round-robin time slice")

	return cmd
}

// simulateAll runs every policy on its own goroutine. Policies keep no state
// between calls, so sharing tasks is safe. Results are in policy order.
func simulateAll(policies []sched.Policy, tasks []sched.Task, processors int) ([]*sched.Result, []error) {
	results := make([]*sched.Result, len(policies))
	errs := make([]error, len(policies))

	var wg sync.WaitGroup
	for i, p := range policies {
		wg.Add(1)
		go func(i int, p sched.Policy) {
			defer wg.Done()
			results[i], errs[i] = sched.Simulate(p, tasks, processors)
		}(i, p)
	}
	wg.Wait()
	return results, errs
}
