package sched

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertValidTimeline checks the properties every policy must satisfy.
func assertValidTimeline(t *testing.T, tasks []Task, timeline []ScheduledTask) {
	t.Helper()

	for i := 1; i < len(timeline); i++ {
		assert.LessOrEqual(t, timeline[i-1].StartTime, timeline[i].StartTime,
			"timeline not ordered by start at %d: %s then %s", i, timeline[i-1], timeline[i])
	}

	ran := make(map[TaskID]int64)
	for _, st := range timeline {
		assert.GreaterOrEqual(t, st.EndTime, st.StartTime, "negative interval %s", st)
		assert.GreaterOrEqual(t, st.StartTime, st.Task.ArrivalTime, "%s starts before arrival", st)
		ran[st.Task.ID] += st.Duration()
	}
	for _, task := range tasks {
		assert.Equal(t, task.Length, ran[task.ID], "task %d ran %d, want %d", task.ID, ran[task.ID], task.Length)
	}

	perCPU := make(map[int][]ScheduledTask)
	for _, st := range timeline {
		perCPU[st.ProcessorID] = append(perCPU[st.ProcessorID], st)
	}
	for cpu, intervals := range perCPU {
		sort.SliceStable(intervals, func(i, j int) bool { return intervals[i].StartTime < intervals[j].StartTime })
		for i := 1; i < len(intervals); i++ {
			assert.LessOrEqual(t, intervals[i-1].EndTime, intervals[i].StartTime,
				"cpu %d overlaps: %s and %s", cpu, intervals[i-1], intervals[i])
		}
	}
}

// ids returns the task ids of a timeline in order.
func ids(timeline []ScheduledTask) []TaskID {
	out := make([]TaskID, len(timeline))
	for i, st := range timeline {
		out[i] = st.Task.ID
	}
	return out
}

// span is a compact expected interval.
type span struct {
	id         TaskID
	cpu        int
	start, end int64
}

func spans(timeline []ScheduledTask) []span {
	out := make([]span, len(timeline))
	for i, st := range timeline {
		out[i] = span{id: st.Task.ID, cpu: st.ProcessorID, start: st.StartTime, end: st.EndTime}
	}
	return out
}

func randomTasks(rng *rand.Rand, n int) []Task {
	tasks := make([]Task, n)
	for i := range tasks {
		tasks[i] = NewTask(TaskID(i+1), rng.Intn(4), rng.Int63n(40), rng.Int63n(100))
	}
	return tasks
}

func TestPolicies_RandomWorkloadsKeepInvariants(t *testing.T) {
	rr, err := NewRoundRobin(7)
	require.NoError(t, err)

	cases := []struct {
		policy Policy
		procs  []int
	}{
		{FCFS{}, []int{1, 2, 3}},
		{SJF{}, []int{1, 2, 3}},
		{Priority{}, []int{1}},
		{rr, []int{1}},
	}

	rng := rand.New(rand.NewSource(42))
	for round := 0; round < 50; round++ {
		tasks := randomTasks(rng, 1+rng.Intn(12))
		for _, tc := range cases {
			for _, n := range tc.procs {
				timeline, err := RunScheduler(tc.policy, tasks, n)
				require.NoError(t, err, "%s on %d cpus", tc.policy.Name(), n)
				assertValidTimeline(t, tasks, timeline)
				for _, st := range timeline {
					assert.Less(t, st.ProcessorID, n)
				}
			}
		}
	}
}

func TestPolicies_DoNotModifyInput(t *testing.T) {
	tasks := []Task{
		NewTask(3, 1, 30, 20),
		NewTask(1, 2, 10, 0),
		NewTask(2, 0, 20, 5),
	}
	orig := append([]Task(nil), tasks...)
	rr, err := NewRoundRobin(4)
	require.NoError(t, err)

	for _, p := range []Policy{FCFS{}, SJF{}, Priority{}, rr} {
		_, err := RunScheduler(p, tasks, 1)
		require.NoError(t, err)
		assert.Equal(t, orig, tasks, p.Name())
	}
}

func TestPolicies_EmptyWorkload(t *testing.T) {
	rr, err := NewRoundRobin(4)
	require.NoError(t, err)

	for _, p := range []Policy{FCFS{}, SJF{}, Priority{}, rr} {
		timeline, err := RunScheduler(p, []Task{}, 1)
		require.NoError(t, err, p.Name())
		assert.Empty(t, timeline, p.Name())
	}
}
