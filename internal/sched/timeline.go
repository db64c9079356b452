package sched

import "sort"

// entry is the per-run bookkeeping of one input task.
// seq is the task's position in the caller's slice and breaks exact ties.
type entry struct {
	task      Task
	seq       int
	remaining int64
}

// byArrival returns run entries ordered by arrival time.
// Tasks arriving together keep their input order.
func byArrival(tasks []Task) []*entry {
	entries := make([]*entry, len(tasks))
	for i, t := range tasks {
		entries[i] = &entry{task: t, seq: i, remaining: t.Length}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].task.ArrivalTime < entries[j].task.ArrivalTime
	})
	return entries
}

// sortByStart orders intervals by start time; equal starts keep emission order.
func sortByStart(out []ScheduledTask) {
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].StartTime < out[j].StartTime
	})
}

// mergeAdjacent joins consecutive intervals of the same task on the same
// processor when one ends exactly where the next begins.
func mergeAdjacent(in []ScheduledTask) []ScheduledTask {
	if len(in) < 2 {
		return in
	}
	out := make([]ScheduledTask, 0, len(in))
	for _, st := range in {
		if n := len(out); n > 0 {
			last := &out[n-1]
			if last.Task.Same(st.Task) && last.ProcessorID == st.ProcessorID && last.EndTime == st.StartTime {
				last.EndTime = st.EndTime
				continue
			}
		}
		out = append(out, st)
	}
	return out
}

// slot is a processor's next free time, kept in a min-heap by FCFS and SJF.
// idx is the processor's position in the pool.
type slot struct {
	idx    int
	freeAt int64
}

// slotCmp orders slots by free time, then by pool position.
func slotCmp(a, b any) int {
	sa, sb := a.(slot), b.(slot)
	switch {
	case sa.freeAt < sb.freeAt:
		return -1
	case sa.freeAt > sb.freeAt:
		return 1
	case sa.idx < sb.idx:
		return -1
	case sa.idx > sb.idx:
		return 1
	default:
		return 0
	}
}

// rankKey is the red-black tree key for ready sets. primary is negated
// priority for Priority and length for SJF, so the leftmost node always wins.
type rankKey struct {
	primary int64
	arrival int64
	seq     int
}

// rankCmp implements the Comparator for rankKey.
func rankCmp(a, b any) int {
	ka, kb := a.(rankKey), b.(rankKey)
	switch {
	case ka.primary < kb.primary:
		return -1
	case ka.primary > kb.primary:
		return 1
	case ka.arrival < kb.arrival:
		return -1
	case ka.arrival > kb.arrival:
		return 1
	case ka.seq < kb.seq:
		return -1
	case ka.seq > kb.seq:
		return 1
	default:
		return 0
	}
}

func priorityKey(e *entry) rankKey {
	return rankKey{primary: -int64(e.task.Priority), arrival: e.task.ArrivalTime, seq: e.seq}
}

func lengthKey(e *entry) rankKey {
	return rankKey{primary: e.task.Length, arrival: e.task.ArrivalTime, seq: e.seq}
}
