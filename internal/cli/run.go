package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"schedsim/internal/report"
	"schedsim/internal/sched"
)

func newRunCmd() *cobra.Command {
	var (
		policy     string
		processors int
		quantum    int64
		events     bool
		eventsCSV  string
	)

	cmd := &cobra.Command{
		Use:   "run [workload-file]",
		Short: "Simulate one policy and print the schedule",
		Long: `Simulate one scheduling policy over a workload and print its Gantt
chart, timeline and statistics.

The workload is a CSV file (id,priority,length,arrival) or a YAML file with a
top-level tasks list. Without an argument the config's tasks_file and inline
tasks are used.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			applyOverrides(cmd, policy, processors, quantum)

			tasks, err := loadWorkload(args)
			if err != nil {
				return err
			}
			p, err := cfg.NewPolicy()
			if err != nil {
				return err
			}

			log := logger.With("component", "run", "policy", p.Name())
			if rr, ok := p.(*sched.RoundRobin); ok {
				log = log.With("quantum", rr.Quantum())
			}
			log.Info("simulation started", "tasks", len(tasks), "processors", cfg.Processors)
			res, err := sched.Simulate(p, tasks, cfg.Processors)
			if err != nil {
				log.Error("simulation failed", "error", err)
				return err
			}
			log.Info("simulation finished",
				"intervals", len(res.Timeline),
				"makespan", res.Stats.Makespan,
				"context_switches", res.Stats.ContextSwitches)

			out := cmd.OutOrStdout()
			report.Summary(out, runID, res)

			trace := sched.Trace(tasks, res.Timeline)
			if events {
				_, _ = fmt.Fprintln(out, "\nEvents")
				report.Events(out, trace)
			}
			if eventsCSV != "" {
				if err := writeEventsCSV(eventsCSV, trace); err != nil {
					return err
				}
				log.Info("event trace written", "path", eventsCSV, "events", len(trace))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&policy, "policy", "p", "fcfs", "Scheduling policy (fcfs, sjf, priority, rr)")
	cmd.Flags().IntVarP(&processors, "processors", "n", 1, "Number of processors")
	cmd.Flags().Int64VarP(&quantum, "quantum", "q", 5, "Round-robin time slice")
	cmd.Flags().BoolVar(&events, "events", false, "Print the event trace")
	cmd.Flags().StringVar(&eventsCSV, "events-csv", "", "Write the event trace to a CSV file")

	return cmd
}

func writeEventsCSV(path string, events []sched.StatusEvent) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create event trace: %w", err)
	}
	if err := report.WriteEventsCSV(f, events); err != nil {
		f.Close()
		return fmt.Errorf("write event trace: %w", err)
	}
	return f.Close()
}
