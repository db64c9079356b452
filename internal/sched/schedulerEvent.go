// internal/sched/schedulerEvent.go

package sched

import "sort"

// StatusKind represents the type of scheduler event
type StatusKind int

const (
	StatusIdle StatusKind = iota
	StatusArrive
	StatusDispatch
	StatusPreempt
	StatusFinish
)

// StatusEvent is one state change in a simulated run.
// TaskID and ProcessorID are -1 where they do not apply.
type StatusEvent struct {
	Time        int64
	Kind        StatusKind
	TaskID      TaskID
	ProcessorID int
	Ran         int64 // length of the interval that just ended
	Remaining   int64 // work left after the event
}

func (sk StatusKind) String() string {
	switch sk {
	case StatusIdle:
		return "Idle"
	case StatusArrive:
		return "Arrive"
	case StatusDispatch:
		return "Dispatch"
	case StatusPreempt:
		return "Preempt"
	case StatusFinish:
		return "Finish"
	default:
		return "Unknown"
	}
}

// Trace replays a timeline as a stream of events ordered by time.
//
// At any instant, interval ends come first, then idle periods, arrivals and
// dispatches. A zero-width interval reports its dispatch before its finish.
func Trace(tasks []Task, timeline []ScheduledTask) []StatusEvent {
	type ranked struct {
		ev    StatusEvent
		phase int
	}
	var events []ranked

	for _, t := range tasks {
		events = append(events, ranked{phase: 2, ev: StatusEvent{
			Time:        t.ArrivalTime,
			Kind:        StatusArrive,
			TaskID:      t.ID,
			ProcessorID: -1,
			Remaining:   t.Length,
		}})
	}

	remaining := make(map[TaskID]int64, len(tasks))
	for _, t := range tasks {
		remaining[t.ID] = t.Length
	}
	lastEnd := make(map[int]int64)

	ordered := make([]ScheduledTask, len(timeline))
	copy(ordered, timeline)
	sortByStart(ordered)

	for _, st := range ordered {
		id := st.Task.ID
		if _, ok := remaining[id]; !ok {
			remaining[id] = st.Task.Length
		}

		if end, ok := lastEnd[st.ProcessorID]; (ok && st.StartTime > end) || (!ok && st.StartTime > 0) {
			events = append(events, ranked{phase: 1, ev: StatusEvent{
				Time:        end,
				Kind:        StatusIdle,
				TaskID:      -1,
				ProcessorID: st.ProcessorID,
			}})
		}
		lastEnd[st.ProcessorID] = st.EndTime

		events = append(events, ranked{phase: 3, ev: StatusEvent{
			Time:        st.StartTime,
			Kind:        StatusDispatch,
			TaskID:      id,
			ProcessorID: st.ProcessorID,
			Remaining:   remaining[id],
		}})

		remaining[id] -= st.Duration()
		kind := StatusPreempt
		if remaining[id] <= 0 {
			kind = StatusFinish
		}
		phase := 0
		if st.Duration() == 0 {
			// keep it right behind its own dispatch
			phase = 3
		}
		events = append(events, ranked{phase: phase, ev: StatusEvent{
			Time:        st.EndTime,
			Kind:        kind,
			TaskID:      id,
			ProcessorID: st.ProcessorID,
			Ran:         st.Duration(),
			Remaining:   remaining[id],
		}})
	}

	sort.SliceStable(events, func(i, j int) bool {
		if events[i].ev.Time != events[j].ev.Time {
			return events[i].ev.Time < events[j].ev.Time
		}
		return events[i].phase < events[j].phase
	})

	out := make([]StatusEvent, len(events))
	for i, r := range events {
		out[i] = r.ev
	}
	return out
}
