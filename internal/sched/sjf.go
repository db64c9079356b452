package sched

import "github.com/emirpasic/gods/trees/redblacktree"

// SJF is non-preemptive shortest-job-first. Whenever a processor frees up it
// takes the shortest task that has already arrived; equal lengths go to the
// earlier arrival. A task never gets interrupted once started.
type SJF struct{}

// Name implements Policy.
func (SJF) Name() string { return "SJF" }

// Schedule implements Policy.
func (SJF) Schedule(tasks []Task, processors []*Processor) ([]ScheduledTask, error) {
	if err := requireProcessors(processors); err != nil {
		return nil, err
	}

	entries := byArrival(tasks)
	out := make([]ScheduledTask, 0, len(entries))
	slots := newSlots(processors)

	// The earliest free time across the pool never decreases, so arrivals can
	// be admitted into the ready tree with a single forward cursor.
	ready := redblacktree.NewWith(rankCmp)
	next := 0

	for scheduled := 0; scheduled < len(entries); {
		v, _ := slots.Pop()
		s := v.(slot)

		for next < len(entries) && entries[next].task.ArrivalTime <= s.freeAt {
			ready.Put(lengthKey(entries[next]), entries[next])
			next++
		}

		if ready.Empty() {
			// nothing has arrived yet: idle this processor until the next arrival
			s.freeAt = entries[next].task.ArrivalTime
			slots.Push(s)
			continue
		}

		node := ready.Left()
		ready.Remove(node.Key)
		e := node.Value.(*entry)

		start := max(e.task.ArrivalTime, s.freeAt)
		end := start + e.task.Length
		out = append(out, ScheduledTask{
			Task:        e.task,
			ProcessorID: processors[s.idx].ID,
			StartTime:   start,
			EndTime:     end,
		})
		scheduled++

		s.freeAt = end
		slots.Push(s)
	}

	sortByStart(out)
	return out, nil
}
