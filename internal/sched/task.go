package sched

import "fmt"

// TaskID identifies a task. Uniqueness is by convention only.
type TaskID int

// Task represents one unit of work handed to a scheduling policy.
// Tasks are values; policies never modify them.
type Task struct {
	ID          TaskID
	Priority    int   // higher value = higher priority
	Length      int64 // total processing time required
	ArrivalTime int64 // earliest time the task may run
}

// NewTask creates a task. Fields are validated by RunScheduler, not here.
func NewTask(id TaskID, priority int, length, arrival int64) Task {
	return Task{
		ID:          id,
		Priority:    priority,
		Length:      length,
		ArrivalTime: arrival,
	}
}

// Same reports whether t and other describe the same logical task.
// Only ids are compared.
func (t Task) Same(other Task) bool { return t.ID == other.ID }

func (t Task) String() string {
	return fmt.Sprintf("task %d (pri=%d len=%d arr=%d)", t.ID, t.Priority, t.Length, t.ArrivalTime)
}

// ScheduledTask is one execution interval [StartTime, EndTime) of a task on a processor.
type ScheduledTask struct {
	Task        Task
	ProcessorID int
	StartTime   int64
	EndTime     int64
}

// Duration returns EndTime - StartTime.
func (st ScheduledTask) Duration() int64 { return st.EndTime - st.StartTime }

func (st ScheduledTask) String() string {
	return fmt.Sprintf("task %d on cpu %d [%d,%d)", st.Task.ID, st.ProcessorID, st.StartTime, st.EndTime)
}
