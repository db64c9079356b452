package sched

// TaskStats holds the per-task outcome of a timeline.
type TaskStats struct {
	Task       Task
	Slices     int   // number of intervals the task ran in
	FirstStart int64 // start of the first interval
	Completion int64 // end of the last interval
	Turnaround int64 // Completion - ArrivalTime
	Waiting    int64 // Turnaround - Length
	Response   int64 // FirstStart - ArrivalTime
}

// ProcessorStats holds the per-processor outcome of a timeline.
type ProcessorStats struct {
	ID              int
	Intervals       int
	Busy            int64
	Utilization     float64 // Busy / Makespan
	ContextSwitches int     // changes of running task on this processor
}

// Stats summarises a timeline.
type Stats struct {
	Tasks           []TaskStats // in input order
	Processors      []ProcessorStats
	Makespan        int64
	AvgTurnaround   float64
	AvgWaiting      float64
	AvgResponse     float64
	Throughput      float64 // tasks per time unit
	ContextSwitches int
}

// Summarize computes statistics of timeline for tasks. processors supplies the
// per-processor logs; when a processor log is empty the timeline is used.
func Summarize(tasks []Task, timeline []ScheduledTask, processors []*Processor) Stats {
	var stats Stats
	for _, st := range timeline {
		stats.Makespan = max(stats.Makespan, st.EndTime)
	}

	byTask := make(map[TaskID]*TaskStats, len(tasks))
	for _, st := range timeline {
		ts, ok := byTask[st.Task.ID]
		if !ok {
			ts = &TaskStats{Task: st.Task, FirstStart: st.StartTime, Completion: st.EndTime}
			byTask[st.Task.ID] = ts
		}
		ts.Slices++
		ts.FirstStart = min(ts.FirstStart, st.StartTime)
		ts.Completion = max(ts.Completion, st.EndTime)
	}

	var sumTurnaround, sumWaiting, sumResponse int64
	for _, t := range tasks {
		ts, ok := byTask[t.ID]
		if !ok {
			continue
		}
		ts.Turnaround = ts.Completion - t.ArrivalTime
		ts.Waiting = ts.Turnaround - t.Length
		ts.Response = ts.FirstStart - t.ArrivalTime
		stats.Tasks = append(stats.Tasks, *ts)

		sumTurnaround += ts.Turnaround
		sumWaiting += ts.Waiting
		sumResponse += ts.Response
	}

	if n := len(stats.Tasks); n > 0 {
		stats.AvgTurnaround = float64(sumTurnaround) / float64(n)
		stats.AvgWaiting = float64(sumWaiting) / float64(n)
		stats.AvgResponse = float64(sumResponse) / float64(n)
		if stats.Makespan > 0 {
			stats.Throughput = float64(n) / float64(stats.Makespan)
		}
	}

	for _, p := range processors {
		if len(p.Schedule()) == 0 {
			filled := NewProcessor(p.ID)
			for _, st := range timeline {
				if st.ProcessorID == p.ID {
					filled.Assign(st)
				}
			}
			p = filled
		}
		ps := processorStats(p, stats.Makespan)
		stats.ContextSwitches += ps.ContextSwitches
		stats.Processors = append(stats.Processors, ps)
	}
	return stats
}

func processorStats(p *Processor, makespan int64) ProcessorStats {
	intervals := p.Schedule()
	sortByStart(intervals)

	ps := ProcessorStats{ID: p.ID, Intervals: len(intervals), Busy: p.Busy()}
	for i, st := range intervals {
		if i > 0 && !intervals[i-1].Task.Same(st.Task) {
			ps.ContextSwitches++
		}
	}
	if makespan > 0 {
		ps.Utilization = float64(ps.Busy) / float64(makespan)
	}
	return ps
}
