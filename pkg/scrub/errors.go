package scrub

import (
	"errors"
	"fmt"

	"github.com/ukaji3/itgscrub-go/pkg/scrub/archive"
	"github.com/ukaji3/itgscrub-go/pkg/scrub/assemble"
	"github.com/ukaji3/itgscrub-go/pkg/scrub/writer"
)

// Archive-level failures. Each aborts processing of one archive.
var (
	// ErrArchiveNotFound indicates the input archive does not exist.
	ErrArchiveNotFound = archive.ErrNotFound
	// ErrPermission indicates the archive or the destination cannot be accessed.
	ErrPermission = archive.ErrPermission
	// ErrCorruptArchive indicates the input is not a valid zip archive.
	ErrCorruptArchive = archive.ErrCorrupt
	// ErrIO indicates an operating-system level failure such as a full disk.
	ErrIO = archive.ErrIO
	// ErrCustomerName indicates the customer name could not be read from the data.
	ErrCustomerName = assemble.ErrCustomerName
	// ErrStaleWorkbook indicates an existing workbook could not be replaced.
	ErrStaleWorkbook = writer.ErrStaleWorkbook
)

// Best-effort output failures. They are logged but do not undo finished work.
var (
	// ErrRemoveSource indicates the source archive could not be deleted.
	ErrRemoveSource = archive.ErrRemoveSource
	// ErrRemoveWorkbook indicates the workbook could not be deleted after zipping.
	ErrRemoveWorkbook = archive.ErrRemoveWorkbook
	// ErrStaleZip indicates an existing output zip could not be replaced.
	ErrStaleZip = archive.ErrStaleZip
)

// Stage names used in StageError.
const (
	StageExtract  = "extract"
	StageRead     = "read"
	StageName     = "name"
	StageWrite    = "write"
	StageCleanup  = "cleanup"
	StageRetain   = "retain"
	StagePackage  = "package"
	StageDiscover = "discover"
)

// StageError represents a failure while processing one archive.
type StageError struct {
	Archive string
	Stage   string // see the Stage constants
	Err     error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %s failed: %v", e.Archive, e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// NewStageError creates a new StageError.
func NewStageError(archivePath, stage string, err error) *StageError {
	return &StageError{
		Archive: archivePath,
		Stage:   stage,
		Err:     err,
	}
}

// hint returns the remedy appended to a logged failure, matching what an
// operator can actually do about it.
func hint(err error) string {
	switch {
	case errors.Is(err, ErrPermission), errors.Is(err, ErrStaleWorkbook),
		errors.Is(err, ErrRemoveSource), errors.Is(err, ErrRemoveWorkbook),
		errors.Is(err, ErrStaleZip):
		return "Try running again as admin."
	case errors.Is(err, ErrCorruptArchive):
		return "The archive may be corrupt."
	case errors.Is(err, ErrIO):
		return "Drive may be full or path is no longer valid."
	default:
		return ""
	}
}
