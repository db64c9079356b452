package sched

import (
	"fmt"

	"github.com/emirpasic/gods/queues/linkedlistqueue"
)

// RoundRobin time-slices a single processor between ready tasks in FIFO order.
type RoundRobin struct {
	quantum int64
}

// NewRoundRobin creates a round-robin policy with the given time slice.
func NewRoundRobin(quantum int64) (*RoundRobin, error) {
	if quantum <= 0 {
		return nil, invalid("quantum", quantum, "must be positive")
	}
	return &RoundRobin{quantum: quantum}, nil
}

// Quantum returns the configured time slice.
func (r *RoundRobin) Quantum() int64 { return r.quantum }

// Name implements Policy.
func (r *RoundRobin) Name() string {
	if r == nil {
		return "RoundRobin"
	}
	return fmt.Sprintf("RoundRobin(q=%d)", r.quantum)
}

// Schedule implements Policy. It fails unless exactly one processor is given.
//
// A task whose slice expired goes back to the tail of the queue after every
// task that arrived up to and including the end of that slice. Zero-length
// tasks take their turn in the queue like any other task and leave a
// zero-width interval when dequeued.
func (r *RoundRobin) Schedule(tasks []Task, processors []*Processor) ([]ScheduledTask, error) {
	if r == nil || r.quantum <= 0 {
		return nil, invalid("quantum", nil, "round-robin needs a positive quantum")
	}
	if err := requireSingleProcessor("round-robin", processors); err != nil {
		return nil, err
	}
	cpu := processors[0].ID

	entries := byArrival(tasks)
	out := make([]ScheduledTask, 0, len(entries))
	queue := linkedlistqueue.New()
	clock := NewClock(0)
	next := 0

	var requeue *entry // task whose slice just ended with work left
	for next < len(entries) || !queue.Empty() || requeue != nil {
		for next < len(entries) && entries[next].task.ArrivalTime <= clock.Now() {
			queue.Enqueue(entries[next])
			next++
		}
		if requeue != nil {
			queue.Enqueue(requeue)
			requeue = nil
		}

		if queue.Empty() {
			clock.AdvanceTo(entries[next].task.ArrivalTime)
			continue
		}

		v, _ := queue.Dequeue()
		e := v.(*entry)
		run := min(r.quantum, e.remaining)
		start := clock.Now()
		clock.Advance(run)

		out = append(out, ScheduledTask{
			Task:        e.task,
			ProcessorID: cpu,
			StartTime:   start,
			EndTime:     clock.Now(),
		})
		e.remaining -= run
		if e.remaining > 0 {
			requeue = e
		}
	}

	return mergeAdjacent(out), nil
}
