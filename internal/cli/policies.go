package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"schedsim/internal/sched"
)

var policyHelp = map[string]string{
	"fcfs":     "first-come-first-served, non-preemptive, any number of processors",
	"sjf":      "shortest-job-first, non-preemptive, any number of processors",
	"priority": "preemptive priority (higher value wins), one processor",
	"rr":       "round-robin with --quantum time slices, one processor",
}

func newPoliciesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "policies",
		Short: "List the available scheduling policies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range sched.PolicyNames() {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%-9s %s\n", name, policyHelp[name])
			}
			return nil
		},
	}
}
