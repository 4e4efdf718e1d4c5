package scrub

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// BatchSummary collects the results of a directory run.
type BatchSummary struct {
	// Results holds one entry per archive, in processing order.
	Results []*Result
	// Failed counts archives whose status is StatusError.
	Failed int
	// ErrorLogs lists the distinct error logs written to.
	ErrorLogs []string
}

// Status returns StatusError when any archive failed.
func (s *BatchSummary) Status() int {
	if s.Failed > 0 {
		return StatusError
	}
	return StatusOK
}

func (s *BatchSummary) add(r *Result) {
	s.Results = append(s.Results, r)
	if r.Status == StatusOK {
		return
	}
	s.Failed++
	for _, p := range s.ErrorLogs {
		if p == r.ErrorLog {
			return
		}
	}
	if r.ErrorLog != "" {
		s.ErrorLogs = append(s.ErrorLogs, r.ErrorLog)
	}
}

// FindArchives returns the zip files directly inside dir, sorted by name.
func FindArchives(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	var archives []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.HasSuffix(strings.ToLower(entry.Name()), ".zip") {
			archives = append(archives, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(archives)
	return archives, nil
}

// ProcessBatch processes every archive in dir, one after another. A failing
// archive does not stop the batch. The archive list is taken before the
// first archive runs, so zips produced by the batch are not picked up.
func ProcessBatch(dir string, opts Options) (*BatchSummary, error) {
	archives, err := FindArchives(dir)
	if err != nil {
		return nil, NewStageError(dir, StageDiscover, err)
	}

	summary := &BatchSummary{}
	for _, path := range archives {
		opts.status("Processing %s ...", filepath.Base(path))
		summary.add(Process(path, opts))
	}
	return summary, nil
}
