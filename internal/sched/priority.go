// internal/sched/priority.go

package sched

import "github.com/emirpasic/gods/trees/redblacktree"

// Priority is preemptive priority scheduling on a single processor.
// Higher Task.Priority runs first, equal priorities go to the earlier arrival.
// A running task is interrupted only when a task that outranks it arrives.
type Priority struct{}

// Name implements Policy.
func (Priority) Name() string { return "Priority" }

// Schedule implements Policy. It fails unless exactly one processor is given.
func (Priority) Schedule(tasks []Task, processors []*Processor) ([]ScheduledTask, error) {
	if err := requireSingleProcessor("priority", processors); err != nil {
		return nil, err
	}
	cpu := processors[0].ID

	entries := byArrival(tasks)
	out := make([]ScheduledTask, 0, len(entries))

	// ready tasks ordered by (priority desc, arrival, input order)
	ready := redblacktree.NewWith(rankCmp)
	clock := NewClock(0)
	next := 0

	for {
		// 1) admit everything that has arrived by now
		for next < len(entries) && entries[next].task.ArrivalTime <= clock.Now() {
			ready.Put(priorityKey(entries[next]), entries[next])
			next++
		}

		// 2) idle case: jump to the next arrival, or stop when none is left
		if ready.Empty() {
			if next >= len(entries) {
				break
			}
			clock.AdvanceTo(entries[next].task.ArrivalTime)
			continue
		}

		// 3) run the best ready task until it finishes or something outranks it
		node := ready.Left()
		cur := node.Value.(*entry)
		now := clock.Now()
		event := now + cur.remaining
		if at, ok := nextPreemption(entries[next:], cur, event); ok {
			event = at
		}

		out = append(out, ScheduledTask{
			Task:        cur.task,
			ProcessorID: cpu,
			StartTime:   now,
			EndTime:     event,
		})
		cur.remaining -= event - now
		if cur.remaining == 0 {
			ready.Remove(node.Key)
		}
		clock.AdvanceTo(event)
	}

	return mergeAdjacent(out), nil
}

// nextPreemption returns the arrival time of the first pending task that
// arrives strictly before deadline and outranks cur. pending must be ordered
// by arrival and hold only tasks that have not arrived yet.
func nextPreemption(pending []*entry, cur *entry, deadline int64) (int64, bool) {
	curKey := priorityKey(cur)
	for _, e := range pending {
		if e.task.ArrivalTime >= deadline {
			break
		}
		if rankCmp(priorityKey(e), curKey) < 0 {
			return e.task.ArrivalTime, true
		}
	}
	return 0, false
}
