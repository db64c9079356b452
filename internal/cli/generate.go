package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"schedsim/internal/job"
)

func newGenerateCmd() *cobra.Command {
	var (
		opts job.GenerateOptions
		out  string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a random workload as CSV",
		Long:  "Write a reproducible random workload; the same --seed always gives the same tasks.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.Count < 0 {
				return fmt.Errorf("--count must not be negative, got %d", opts.Count)
			}
			tasks := job.Generate(opts)

			var w io.Writer = cmd.OutOrStdout()
			if out != "" {
				f, err := os.Create(out)
				if err != nil {
					return fmt.Errorf("create workload file: %w", err)
				}
				defer f.Close()
				w = f
			}
			if err := job.WriteCSV(w, tasks); err != nil {
				return fmt.Errorf("write workload: %w", err)
			}
			logger.Debug("workload generated", "tasks", len(tasks), "seed", opts.Seed, "out", out)
			return nil
		},
	}

	cmd.Flags().IntVar(&opts.Count, "count", 10, "Number of tasks")
	cmd.Flags().Int64Var(&opts.Seed, "seed", 1, "Random seed")
	cmd.Flags().IntVar(&opts.MaxPriority, "max-priority", 5, "Largest priority")
	cmd.Flags().Int64Var(&opts.MaxLength, "max-length", 100, "Largest task length")
	cmd.Flags().Int64Var(&opts.MaxArrival, "max-arrival", 200, "Latest arrival time")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (default stdout)")

	return cmd
}
