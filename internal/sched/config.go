package sched

import (
	"fmt"
	"os"

	yaml "github.com/goccy/go-yaml"
)

// Config mirrors config.yml
type Config struct {
	Policy     string     `yaml:"policy"`     // fcfs (by default)
	Processors int        `yaml:"processors"` // 1 (by default)
	Quantum    int64      `yaml:"quantum"`    // 5 (by default), round-robin only
	LogLevel   string     `yaml:"log_level"`  // info (by default)
	LogFormat  string     `yaml:"log_format"` // text (by default)
	TasksFile  string     `yaml:"tasks_file"` // CSV or YAML workload, relative to the config file
	Tasks      []TaskSpec `yaml:"tasks"`      // inline workload, appended after TasksFile
}

// TaskSpec is the serialised form of a Task.
type TaskSpec struct {
	ID       int   `yaml:"id"`
	Priority int   `yaml:"priority"`
	Length   int64 `yaml:"length"`
	Arrival  int64 `yaml:"arrival"`
}

// Task converts s into a Task.
func (s TaskSpec) Task() Task {
	return NewTask(TaskID(s.ID), s.Priority, s.Length, s.Arrival)
}

// DefaultConfig is used when no config file is given.
func DefaultConfig() Config {
	return Config{
		Policy:     "fcfs",
		Processors: 1,
		Quantum:    5,
		LogLevel:   "info",
		LogFormat:  "text",
	}
}

// Load reads YAML and overrides defaults; empty path = defaults only.
// Values are not clamped: out-of-range settings are reported when the
// simulation is run.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return cfg, nil
}

// NewPolicy builds the policy named by the config.
func (c Config) NewPolicy() (Policy, error) {
	return NewPolicy(c.Policy, c.Quantum)
}

// InlineTasks converts the inline task list.
func (c Config) InlineTasks() []Task {
	tasks := make([]Task, 0, len(c.Tasks))
	for _, s := range c.Tasks {
		tasks = append(tasks, s.Task())
	}
	return tasks
}
