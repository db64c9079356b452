package sched

// FCFS runs tasks to completion in arrival order, each on the processor that
// becomes free first (lowest index on ties).
type FCFS struct{}

// Name implements Policy.
func (FCFS) Name() string { return "FCFS" }

// Schedule implements Policy.
func (FCFS) Schedule(tasks []Task, processors []*Processor) ([]ScheduledTask, error) {
	if err := requireProcessors(processors); err != nil {
		return nil, err
	}

	out := make([]ScheduledTask, 0, len(tasks))
	slots := newSlots(processors)
	for _, e := range byArrival(tasks) {
		v, _ := slots.Pop()
		s := v.(slot)

		start := max(e.task.ArrivalTime, s.freeAt)
		end := start + e.task.Length
		out = append(out, ScheduledTask{
			Task:        e.task,
			ProcessorID: processors[s.idx].ID,
			StartTime:   start,
			EndTime:     end,
		})

		s.freeAt = end
		slots.Push(s)
	}

	sortByStart(out)
	return out, nil
}
