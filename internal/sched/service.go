package sched

import (
	"fmt"
	"math"
)

// RunScheduler validates the inputs, builds processorCount processors and
// hands the tasks to policy. Nothing is scheduled when validation fails.
//
// A nil task slice is rejected; an empty one yields an empty timeline.
func RunScheduler(policy Policy, tasks []Task, processorCount int) ([]ScheduledTask, error) {
	if err := validateInputs(policy, tasks, processorCount); err != nil {
		return nil, err
	}
	if err := validateTasks(tasks); err != nil {
		return nil, err
	}

	processors := NewProcessors(processorCount)
	timeline, err := policy.Schedule(tasks, processors)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", policy.Name(), err)
	}
	return timeline, nil
}

// Result is the outcome of Simulate.
type Result struct {
	Policy     string
	Timeline   []ScheduledTask
	Processors []*Processor
	Stats      Stats
}

// Simulate runs RunScheduler, records every interval in its processor's log
// and computes summary statistics for the timeline.
func Simulate(policy Policy, tasks []Task, processorCount int) (*Result, error) {
	timeline, err := RunScheduler(policy, tasks, processorCount)
	if err != nil {
		return nil, err
	}

	processors := NewProcessors(processorCount)
	for _, st := range timeline {
		if st.ProcessorID < 0 || st.ProcessorID >= len(processors) {
			return nil, fmt.Errorf("%s: interval %s references unknown processor", policy.Name(), st)
		}
		processors[st.ProcessorID].Assign(st)
	}

	return &Result{
		Policy:     policy.Name(),
		Timeline:   timeline,
		Processors: processors,
		Stats:      Summarize(tasks, timeline, processors),
	}, nil
}

func validateInputs(policy Policy, tasks []Task, processorCount int) error {
	if policy == nil {
		return invalid("policy", nil, "cannot be nil")
	}
	if tasks == nil {
		return invalid("task list", nil, "cannot be nil")
	}
	if processorCount < 1 {
		return invalid("processor count", processorCount, "must be at least 1")
	}
	return nil
}

// validateTasks also rejects workloads whose latest arrival plus total work
// does not fit in int64: no interval of any policy can end later than that.
func validateTasks(tasks []Task) error {
	var latest, work int64
	for i, t := range tasks {
		if err := validateTask(t); err != nil {
			return fmt.Errorf("task at index %d: %w", i, err)
		}
		latest = max(latest, t.ArrivalTime)
		if latest > math.MaxInt64-work || t.Length > math.MaxInt64-work-latest {
			return fmt.Errorf("task at index %d: %w", i,
				invalid("length", t.Length, fmt.Sprintf("task %d: schedule would run past the end of the time range", t.ID)))
		}
		work += t.Length
	}
	return nil
}

func validateTask(t Task) error {
	switch {
	case t.ArrivalTime < 0:
		return invalid("arrival time", t.ArrivalTime, fmt.Sprintf("task %d: must not be negative", t.ID))
	case t.Length < 0:
		return invalid("length", t.Length, fmt.Sprintf("task %d: must not be negative", t.ID))
	case t.ID < 0:
		return invalid("id", t.ID, "must not be negative")
	case t.Priority < 0:
		return invalid("priority", t.Priority, fmt.Sprintf("task %d: must not be negative", t.ID))
	}
	return nil
}
