package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"schedsim/internal/job"
	"schedsim/internal/logging"
	"schedsim/internal/sched"
)

var (
	flagConfig    string
	flagDebug     bool
	flagLogLevel  string
	flagLogFormat string

	cfg   sched.Config
	runID string
)

// logger is replaced in PersistentPreRunE once the flags are parsed.
var logger = logging.Discard()

// defaultConfigPath returns the config file named by SCHEDSIM_CONFIG, if any.
func defaultConfigPath() string {
	return os.Getenv("SCHEDSIM_CONFIG")
}

// NewRootCmd creates the root cobra command for the schedsim CLI.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "schedsim",
		Short: "Deterministic CPU scheduling simulator",
		Long: `schedsim computes the execution timeline of a task set under
FCFS, SJF, preemptive Priority or Round-Robin scheduling.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = sched.Load(flagConfig)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("log-level") || cfg.LogLevel == "" {
				cfg.LogLevel = flagLogLevel
			}
			if cmd.Flags().Changed("log-format") || cfg.LogFormat == "" {
				cfg.LogFormat = flagLogFormat
			}
			if flagDebug {
				cfg.LogLevel = "debug"
			}

			runID = uuid.New().String()
			logger = logging.New(cmd.ErrOrStderr(), logging.ParseLevel(cfg.LogLevel), cfg.LogFormat).
				With("run_id", runID)
			logger.Debug("config loaded", "path", flagConfig, "policy", cfg.Policy, "processors", cfg.Processors, "quantum", cfg.Quantum)
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVarP(&flagConfig, "config", "c", defaultConfigPath(), "YAML config file (or SCHEDSIM_CONFIG env)")
	root.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	root.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&flagLogFormat, "log-format", "text", "Log format (text, json)")

	root.AddCommand(
		newRunCmd(),
		newCompareCmd(),
		newPoliciesCmd(),
		newGenerateCmd(),
	)

	return root
}

// loadWorkload gathers tasks from the positional file argument (or the
// config's tasks_file) followed by the config's inline tasks.
func loadWorkload(args []string) ([]sched.Task, error) {
	path := cfg.TasksFile
	if path != "" && !filepath.IsAbs(path) && flagConfig != "" {
		path = filepath.Join(filepath.Dir(flagConfig), path)
	}
	if len(args) > 0 {
		path = args[0]
	}
	if path == "" && len(cfg.Tasks) == 0 {
		return nil, fmt.Errorf("no workload: pass a CSV/YAML file or set tasks in the config")
	}

	tasks := []sched.Task{}
	if path != "" {
		loaded, err := job.Load(path)
		if err != nil {
			return nil, err
		}
		logger.Debug("workload loaded", "path", path, "tasks", len(loaded))
		tasks = append(tasks, loaded...)
	}
	return append(tasks, cfg.InlineTasks()...), nil
}

// applyOverrides copies explicitly set simulation flags over the config.
func applyOverrides(cmd *cobra.Command, policy string, processors int, quantum int64) {
	if cmd.Flags().Changed("policy") {
		cfg.Policy = policy
	}
	if cmd.Flags().Changed("processors") {
		cfg.Processors = processors
	}
	if cmd.Flags().Changed("quantum") {
		cfg.Quantum = quantum
	}
}
