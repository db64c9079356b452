package job

import (
	"math/rand"

	"schedsim/internal/sched"
)

// GenerateOptions bounds a random workload. Negative maxima count as zero.
type GenerateOptions struct {
	Count       int
	Seed        int64
	MaxPriority int
	MaxLength   int64
	MaxArrival  int64
}

// Generate returns Count tasks with ids 1..Count and fields drawn uniformly
// from [0, Max]. The same options always yield the same workload.
func Generate(opts GenerateOptions) []sched.Task {
	rng := rand.New(rand.NewSource(opts.Seed))
	tasks := make([]sched.Task, 0, max(opts.Count, 0))
	for i := 1; i <= opts.Count; i++ {
		tasks = append(tasks, sched.NewTask(
			sched.TaskID(i),
			rng.Intn(max(opts.MaxPriority, 0)+1),
			rng.Int63n(max(opts.MaxLength, 0)+1),
			rng.Int63n(max(opts.MaxArrival, 0)+1),
		))
	}
	return tasks
}
