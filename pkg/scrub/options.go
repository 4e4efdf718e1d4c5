// Package scrub turns vendor documentation exports into one formatted
// workbook per client.
package scrub

import (
	"fmt"
	"log/slog"
	"strings"
)

// Retention decides what happens to the source archive after a successful run.
type Retention string

const (
	// RetentionDelete removes the source archive.
	RetentionDelete Retention = "delete"
	// RetentionKeep leaves the source archive in place.
	RetentionKeep Retention = "keep"
)

// ZipOutput decides whether the workbook is re-zipped for distribution.
type ZipOutput string

const (
	// ZipYes replaces the workbook with a zip containing it.
	ZipYes ZipOutput = "yes"
	// ZipNo leaves the workbook as is.
	ZipNo ZipOutput = "no"
)

// Status codes returned to the caller.
const (
	// StatusOK means no error was logged, including the not-an-export case.
	StatusOK = 0
	// StatusError means at least one error was written to the error log.
	StatusError = 1
)

// Options configures a run.
type Options struct {
	// Retention specifies what to do with the source archive.
	Retention Retention
	// Zip specifies whether the workbook is zipped afterwards.
	Zip ZipOutput
	// SortRows sorts a sheet by its first column when that column is one of
	// the sortable labels.
	SortRows bool
	// Logger receives structured progress. If nil, slog.Default() is used.
	Logger *slog.Logger
	// Status receives short human-readable progress lines. May be nil.
	Status func(msg string)
}

// DefaultOptions returns the interactive defaults:
// delete the source, do not zip, sort sheets.
func DefaultOptions() Options {
	return Options{
		Retention: RetentionDelete,
		Zip:       ZipNo,
		SortRows:  true,
	}
}

// ParseRetention parses a retention choice, case-insensitively.
func ParseRetention(s string) (Retention, error) {
	switch Retention(strings.ToLower(strings.TrimSpace(s))) {
	case RetentionDelete:
		return RetentionDelete, nil
	case RetentionKeep:
		return RetentionKeep, nil
	default:
		return "", fmt.Errorf("invalid retention: %s (must be delete or keep)", s)
	}
}

// ParseZipOutput parses a zip choice, case-insensitively.
func ParseZipOutput(s string) (ZipOutput, error) {
	switch ZipOutput(strings.ToLower(strings.TrimSpace(s))) {
	case ZipYes:
		return ZipYes, nil
	case ZipNo:
		return ZipNo, nil
	default:
		return "", fmt.Errorf("invalid zip option: %s (must be yes or no)", s)
	}
}

// ShouldDeleteSource returns whether the source archive is removed.
func (o Options) ShouldDeleteSource() bool {
	return o.Retention != RetentionKeep
}

// ShouldZip returns whether the workbook is zipped.
func (o Options) ShouldZip() bool {
	return o.Zip == ZipYes
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}

func (o Options) status(format string, args ...any) {
	if o.Status != nil {
		o.Status(fmt.Sprintf(format, args...))
	}
}
