// Package report renders simulation results for terminals and spreadsheets.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"schedsim/internal/sched"
)

// Summary prints the header, Gantt chart, timeline, task and processor tables of a result.
func Summary(w io.Writer, runID string, res *sched.Result) {
	_, _ = fmt.Fprintf(w, "Policy: %s  run: %s\n\n", res.Policy, runID)
	Gantt(w, res.Processors)
	Timeline(w, res.Timeline)
	Tasks(w, res.Stats)
	Processors(w, res.Stats)
}

// Gantt prints one line per processor: "|  id  |" cells with the boundary times below.
func Gantt(w io.Writer, processors []*sched.Processor) {
	_, _ = fmt.Fprintln(w, "Gantt schedule")
	for _, p := range processors {
		intervals := p.Schedule()
		label := fmt.Sprintf("cpu%d ", p.ID)
		_, _ = fmt.Fprint(w, label, "|")
		var times strings.Builder
		times.WriteString(strings.Repeat(" ", len(label)))
		for i, st := range intervals {
			cell := center(strconv.Itoa(int(st.Task.ID)), 8)
			_, _ = fmt.Fprint(w, cell, "|")
			start := strconv.FormatInt(st.StartTime, 10)
			times.WriteString(start)
			times.WriteString(strings.Repeat(" ", max(len(cell)+1-len(start), 1)))
			if i == len(intervals)-1 {
				times.WriteString(strconv.FormatInt(st.EndTime, 10))
			}
		}
		_, _ = fmt.Fprintln(w)
		_, _ = fmt.Fprintln(w, times.String())
	}
	_, _ = fmt.Fprintln(w)
}

// Timeline prints every interval in start order.
func Timeline(w io.Writer, timeline []sched.ScheduledTask) {
	_, _ = fmt.Fprintln(w, "Timeline")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Task", "CPU", "Start", "End", "Ran"})
	for _, st := range timeline {
		table.Append([]string{
			fmt.Sprint(st.Task.ID),
			fmt.Sprint(st.ProcessorID),
			fmt.Sprint(st.StartTime),
			fmt.Sprint(st.EndTime),
			fmt.Sprint(st.Duration()),
		})
	}
	table.Render()
	_, _ = fmt.Fprintln(w)
}

// Tasks prints per-task statistics with averages in the footer.
func Tasks(w io.Writer, stats sched.Stats) {
	_, _ = fmt.Fprintln(w, "Schedule table")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Priority", "Length", "Arrival", "Start", "Exit", "Slices", "Wait", "Turnaround", "Response"})
	for _, ts := range stats.Tasks {
		table.Append([]string{
			fmt.Sprint(ts.Task.ID),
			fmt.Sprint(ts.Task.Priority),
			fmt.Sprint(ts.Task.Length),
			fmt.Sprint(ts.Task.ArrivalTime),
			fmt.Sprint(ts.FirstStart),
			fmt.Sprint(ts.Completion),
			fmt.Sprint(ts.Slices),
			fmt.Sprint(ts.Waiting),
			fmt.Sprint(ts.Turnaround),
			fmt.Sprint(ts.Response),
		})
	}
	table.SetFooter([]string{"", "", "", "", "", "", "",
		fmt.Sprintf("Average\n%.2f", stats.AvgWaiting),
		fmt.Sprintf("Average\n%.2f", stats.AvgTurnaround),
		fmt.Sprintf("Average\n%.2f", stats.AvgResponse),
	})
	table.Render()
	_, _ = fmt.Fprintln(w)
}

// Processors prints per-processor utilisation.
func Processors(w io.Writer, stats sched.Stats) {
	_, _ = fmt.Fprintln(w, "Processors")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"CPU", "Intervals", "Busy", "Utilization", "Switches"})
	for _, ps := range stats.Processors {
		table.Append([]string{
			fmt.Sprint(ps.ID),
			fmt.Sprint(ps.Intervals),
			fmt.Sprint(ps.Busy),
			fmt.Sprintf("%.1f%%", ps.Utilization*100),
			fmt.Sprint(ps.ContextSwitches),
		})
	}
	table.SetFooter([]string{"", "", "", fmt.Sprintf("Makespan\n%d", stats.Makespan),
		fmt.Sprintf("Throughput\n%.4f/t", stats.Throughput)})
	table.Render()
}

// Compare prints one row of summary metrics per result.
func Compare(w io.Writer, results []*sched.Result) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Policy", "Intervals", "Makespan", "Avg Wait", "Avg Turnaround", "Avg Response", "Switches"})
	for _, res := range results {
		table.Append([]string{
			res.Policy,
			fmt.Sprint(len(res.Timeline)),
			fmt.Sprint(res.Stats.Makespan),
			fmt.Sprintf("%.2f", res.Stats.AvgWaiting),
			fmt.Sprintf("%.2f", res.Stats.AvgTurnaround),
			fmt.Sprintf("%.2f", res.Stats.AvgResponse),
			fmt.Sprint(res.Stats.ContextSwitches),
		})
	}
	table.Render()
}

// Events prints one line per event, like:
//
//	t=0000100 [   Preempt    ] => Task: 0001, CPU: 0, ran 0100, remaining 0400
func Events(w io.Writer, events []sched.StatusEvent) {
	for _, ev := range events {
		_, _ = fmt.Fprintf(w, "t=%07d [%s] => Task: %04d, CPU: %d, ran %04d, remaining %04d\n",
			ev.Time,
			center(ev.Kind.String(), 14),
			ev.TaskID,
			ev.ProcessorID,
			ev.Ran,
			ev.Remaining,
		)
	}
}

// WriteEventsCSV writes events with a header row.
func WriteEventsCSV(w io.Writer, events []sched.StatusEvent) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"time", "event", "task_id", "cpu", "ran", "remaining"}); err != nil {
		return err
	}
	for _, ev := range events {
		rec := []string{
			strconv.FormatInt(ev.Time, 10),
			ev.Kind.String(),
			strconv.Itoa(int(ev.TaskID)),
			strconv.Itoa(ev.ProcessorID),
			strconv.FormatInt(ev.Ran, 10),
			strconv.FormatInt(ev.Remaining, 10),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// center pads str with spaces on both sides to width.
func center(str string, width int) string {
	if len(str) >= width {
		return str
	}
	spaces := (width - len(str)) / 2
	return strings.Repeat(" ", spaces) + str + strings.Repeat(" ", width-(spaces+len(str)))
}
