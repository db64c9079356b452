package sched

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSJF_EqualLengthsBreakTiesByArrival(t *testing.T) {
	tasks := []Task{
		NewTask(1, 1, 100, 10),
		NewTask(2, 1, 100, 0),
		NewTask(3, 1, 100, 5),
	}

	timeline, err := RunScheduler(SJF{}, tasks, 1)
	require.NoError(t, err)
	assertValidTimeline(t, tasks, timeline)
	assert.Equal(t, []TaskID{2, 3, 1}, ids(timeline))
}

func TestSJF_PicksShortestAvailable(t *testing.T) {
	tasks := []Task{
		NewTask(1, 1, 10, 0),
		NewTask(2, 1, 5, 0),
		NewTask(3, 1, 2, 2),
		NewTask(4, 1, 1, 4),
	}

	timeline, err := RunScheduler(SJF{}, tasks, 1)
	require.NoError(t, err)
	assertValidTimeline(t, tasks, timeline)

	// at 0 only 1 and 2 are there; at 5 both 3 and 4 have arrived and 4 is shorter
	assert.Equal(t, []span{
		{2, 0, 0, 5},
		{4, 0, 5, 6},
		{3, 0, 6, 8},
		{1, 0, 8, 18},
	}, spans(timeline))
}

func TestSJF_NonPreemptive(t *testing.T) {
	tasks := []Task{NewTask(1, 0, 100, 0), NewTask(2, 0, 1, 10)}

	timeline, err := RunScheduler(SJF{}, tasks, 1)
	require.NoError(t, err)
	assert.Equal(t, []span{{1, 0, 0, 100}, {2, 0, 100, 101}}, spans(timeline))
}

func TestSJF_IdleUntilFirstArrival(t *testing.T) {
	tasks := []Task{NewTask(1, 0, 5, 20), NewTask(2, 0, 3, 40)}

	timeline, err := RunScheduler(SJF{}, tasks, 1)
	require.NoError(t, err)
	assert.Equal(t, []span{{1, 0, 20, 25}, {2, 0, 40, 43}}, spans(timeline))
}

func TestSJF_MultipleProcessors(t *testing.T) {
	tasks := []Task{
		NewTask(1, 0, 10, 0),
		NewTask(2, 0, 5, 0),
		NewTask(3, 0, 3, 0),
	}

	timeline, err := RunScheduler(SJF{}, tasks, 2)
	require.NoError(t, err)
	assertValidTimeline(t, tasks, timeline)
	assert.Equal(t, []span{
		{3, 0, 0, 3},
		{2, 1, 0, 5},
		{1, 0, 3, 13},
	}, spans(timeline))
}

func TestSJF_IdleProcessorsWaitForArrival(t *testing.T) {
	// both processors are idle until 30; the lower index wins the tie
	tasks := []Task{NewTask(1, 0, 10, 0), NewTask(2, 0, 5, 30)}

	timeline, err := RunScheduler(SJF{}, tasks, 2)
	require.NoError(t, err)
	assert.Equal(t, []span{{1, 0, 0, 10}, {2, 0, 30, 35}}, spans(timeline))
}

func TestSJF_ZeroLengthRunsFirst(t *testing.T) {
	tasks := []Task{NewTask(1, 0, 10, 0), NewTask(2, 0, 0, 0)}

	timeline, err := RunScheduler(SJF{}, tasks, 1)
	require.NoError(t, err)
	assert.Equal(t, []span{{2, 0, 0, 0}, {1, 0, 0, 10}}, spans(timeline))
}
