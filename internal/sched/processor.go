package sched

// Processor is an execution resource. Its log is for inspection only;
// no policy reads it when making decisions.
type Processor struct {
	ID       int
	schedule []ScheduledTask
}

// NewProcessor creates an idle processor with the given id.
func NewProcessor(id int) *Processor {
	return &Processor{ID: id}
}

// NewProcessors creates n processors with ids 0..n-1.
func NewProcessors(n int) []*Processor {
	if n < 0 {
		n = 0
	}
	procs := make([]*Processor, n)
	for i := range procs {
		procs[i] = NewProcessor(i)
	}
	return procs
}

// Assign appends an interval to the processor's log.
func (p *Processor) Assign(st ScheduledTask) {
	p.schedule = append(p.schedule, st)
}

// Schedule returns a copy of the intervals assigned so far.
func (p *Processor) Schedule() []ScheduledTask {
	out := make([]ScheduledTask, len(p.schedule))
	copy(out, p.schedule)
	return out
}

// Busy returns the total time covered by the processor's intervals.
func (p *Processor) Busy() int64 {
	var busy int64
	for _, st := range p.schedule {
		busy += st.Duration()
	}
	return busy
}
