package job

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	yaml "github.com/goccy/go-yaml"

	"schedsim/internal/sched"
)

// ErrUnknownFormat is returned for workload files that are neither CSV nor YAML.
var ErrUnknownFormat = errors.New("unknown workload format")

// Load reads a workload file. The format is picked from the extension:
// .csv, or .yml/.yaml.
func Load(path string) ([]sched.Task, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening workload: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return LoadCSV(f)
	case ".yml", ".yaml":
		return LoadYAML(f)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
}

// LoadCSV parses rows of id,priority,length,arrival.
// A leading header row, blank lines and lines starting with # are skipped.
func LoadCSV(r io.Reader) ([]sched.Task, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	tasks := []sched.Task{}
	for row := 1; ; row++ {
		rec, err := cr.Read()
		if err == io.EOF {
			return tasks, nil
		}
		if err != nil {
			return nil, fmt.Errorf("reading CSV: %w", err)
		}
		if row == 1 && isHeader(rec) {
			continue
		}
		if len(rec) != 4 {
			return nil, fmt.Errorf("row %d: expected 4 fields (id,priority,length,arrival), got %d", row, len(rec))
		}

		var vals [4]int64
		for i, field := range rec {
			v, err := strconv.ParseInt(strings.TrimSpace(field), 10, 64)
			if err != nil {
				return nil, fmt.Errorf("row %d field %d: %w", row, i+1, err)
			}
			vals[i] = v
		}
		tasks = append(tasks, sched.NewTask(sched.TaskID(vals[0]), int(vals[1]), vals[2], vals[3]))
	}
}

func isHeader(rec []string) bool {
	if len(rec) == 0 {
		return false
	}
	_, err := strconv.ParseInt(strings.TrimSpace(rec[0]), 10, 64)
	return err != nil
}

// LoadYAML parses a document with a top-level tasks list.
func LoadYAML(r io.Reader) ([]sched.Task, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading YAML: %w", err)
	}

	var doc struct {
		Tasks []sched.TaskSpec `yaml:"tasks"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing YAML workload: %w", err)
	}

	tasks := make([]sched.Task, 0, len(doc.Tasks))
	for _, s := range doc.Tasks {
		tasks = append(tasks, s.Task())
	}
	return tasks, nil
}

// WriteCSV writes tasks in the format read by LoadCSV, header included.
func WriteCSV(w io.Writer, tasks []sched.Task) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "priority", "length", "arrival"}); err != nil {
		return err
	}
	for _, t := range tasks {
		rec := []string{
			strconv.Itoa(int(t.ID)),
			strconv.Itoa(t.Priority),
			strconv.FormatInt(t.Length, 10),
			strconv.FormatInt(t.ArrivalTime, 10),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
