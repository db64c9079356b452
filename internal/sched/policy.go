// internal/sched/policy.go

package sched

import (
	"sort"
	"strings"

	"github.com/emirpasic/gods/trees/binaryheap"
)

// Policy computes an execution timeline for a set of tasks on a processor pool.
//
// Schedule must not modify tasks or keep state between calls; every call is a
// pure function of its arguments (and, for RoundRobin, the quantum). The
// returned intervals are ordered by non-decreasing start time.
type Policy interface {
	Name() string
	Schedule(tasks []Task, processors []*Processor) ([]ScheduledTask, error)
}

var policyNames = map[string]string{
	"fcfs":        "fcfs",
	"sjf":         "sjf",
	"priority":    "priority",
	"rr":          "rr",
	"roundrobin":  "rr",
	"round-robin": "rr",
}

// PolicyNames returns the canonical policy names accepted by NewPolicy.
func PolicyNames() []string {
	seen := make(map[string]bool)
	var names []string
	for _, canonical := range policyNames {
		if !seen[canonical] {
			seen[canonical] = true
			names = append(names, canonical)
		}
	}
	sort.Strings(names)
	return names
}

// NewPolicy builds a policy by name. quantum is only used by round-robin.
func NewPolicy(name string, quantum int64) (Policy, error) {
	switch policyNames[strings.ToLower(strings.TrimSpace(name))] {
	case "fcfs":
		return FCFS{}, nil
	case "sjf":
		return SJF{}, nil
	case "priority":
		return Priority{}, nil
	case "rr":
		return NewRoundRobin(quantum)
	default:
		return nil, invalid("policy", name, "must be one of "+strings.Join(PolicyNames(), ", "))
	}
}

// newSlots returns a min-heap holding one free-at-zero slot per processor.
func newSlots(processors []*Processor) *binaryheap.Heap {
	slots := binaryheap.NewWith(slotCmp)
	for i := range processors {
		slots.Push(slot{idx: i})
	}
	return slots
}

// requireProcessors rejects an empty pool.
func requireProcessors(processors []*Processor) error {
	if len(processors) == 0 {
		return invalid("processor count", 0, "at least one processor is required")
	}
	return nil
}
