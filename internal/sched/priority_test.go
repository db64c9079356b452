package sched

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriority_Schedule(t *testing.T) {
	tests := []struct {
		name  string
		tasks []Task
		want  []span
	}{
		{
			name:  "higher priority arrival preempts",
			tasks: []Task{NewTask(1, 1, 500, 0), NewTask(2, 3, 200, 100)},
			want:  []span{{1, 0, 0, 100}, {2, 0, 100, 300}, {1, 0, 300, 700}},
		},
		{
			name:  "task ends exactly when higher priority arrives",
			tasks: []Task{NewTask(1, 2, 100, 0), NewTask(2, 3, 150, 100)},
			want:  []span{{1, 0, 0, 100}, {2, 0, 100, 250}},
		},
		{
			name:  "gap in arrivals",
			tasks: []Task{NewTask(1, 1, 50, 0), NewTask(2, 2, 100, 200)},
			want:  []span{{1, 0, 0, 50}, {2, 0, 200, 300}},
		},
		{
			name: "simultaneous arrivals run by priority",
			tasks: []Task{
				NewTask(1, 1, 100, 0),
				NewTask(2, 3, 200, 0),
				NewTask(3, 2, 150, 0),
				NewTask(4, 4, 50, 0),
			},
			want: []span{{4, 0, 0, 50}, {2, 0, 50, 250}, {3, 0, 250, 400}, {1, 0, 400, 500}},
		},
		{
			name: "mixed arrivals",
			tasks: []Task{
				NewTask(1, 1, 10, 0),
				NewTask(2, 3, 5, 0),
				NewTask(3, 2, 2, 2),
				NewTask(4, 4, 1, 4),
			},
			want: []span{{2, 0, 0, 4}, {4, 0, 4, 5}, {2, 0, 5, 6}, {3, 0, 6, 8}, {1, 0, 8, 18}},
		},
		{
			name:  "lower priority arrival waits",
			tasks: []Task{NewTask(1, 5, 100, 0), NewTask(2, 1, 10, 50)},
			want:  []span{{1, 0, 0, 100}, {2, 0, 100, 110}},
		},
		{
			name:  "equal priority arrival does not preempt",
			tasks: []Task{NewTask(1, 2, 100, 0), NewTask(2, 2, 10, 50)},
			want:  []span{{1, 0, 0, 100}, {2, 0, 100, 110}},
		},
		{
			name:  "equal priority goes to earlier arrival",
			tasks: []Task{NewTask(1, 9, 30, 0), NewTask(2, 2, 10, 10), NewTask(3, 2, 10, 5)},
			want:  []span{{1, 0, 0, 30}, {3, 0, 30, 40}, {2, 0, 40, 50}},
		},
		{
			name:  "zero length task preempts instantly",
			tasks: []Task{NewTask(1, 1, 100, 0), NewTask(2, 9, 0, 50)},
			want:  []span{{1, 0, 0, 50}, {2, 0, 50, 50}, {1, 0, 50, 100}},
		},
		{
			name:  "nested preemption",
			tasks: []Task{NewTask(1, 1, 100, 0), NewTask(2, 2, 50, 10), NewTask(3, 3, 10, 20)},
			want:  []span{{1, 0, 0, 10}, {2, 0, 10, 20}, {3, 0, 20, 30}, {2, 0, 30, 70}, {1, 0, 70, 160}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			timeline, err := RunScheduler(Priority{}, tt.tasks, 1)
			require.NoError(t, err)
			assertValidTimeline(t, tt.tasks, timeline)
			assert.Equal(t, tt.want, spans(timeline))
		})
	}
}

func TestPriority_RequiresOneProcessor(t *testing.T) {
	tasks := []Task{NewTask(1, 1, 10, 0)}
	for _, n := range []int{0, 2, 4} {
		_, err := Priority{}.Schedule(tasks, NewProcessors(n))
		assert.ErrorIs(t, err, ErrInvalidArgument, "%d processors", n)
	}

	_, err := RunScheduler(Priority{}, tasks, 2)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestPriority_UsesProcessorID(t *testing.T) {
	cpu := NewProcessor(7)
	timeline, err := Priority{}.Schedule([]Task{NewTask(1, 1, 10, 0)}, []*Processor{cpu})
	require.NoError(t, err)
	require.Len(t, timeline, 1)
	assert.Equal(t, 7, timeline[0].ProcessorID)
}
