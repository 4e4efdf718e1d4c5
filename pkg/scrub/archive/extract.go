// Package archive reads export archives and packages the finished workbook.
package archive

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/ukaji3/itgscrub-go/pkg/scrub/policy"
)

var (
	// ErrNotFound indicates the archive does not exist.
	ErrNotFound = errors.New("archive not found")
	// ErrPermission indicates the archive or destination is not accessible.
	ErrPermission = errors.New("permission denied")
	// ErrCorrupt indicates the archive failed structural validation.
	ErrCorrupt = errors.New("archive may be corrupt")
	// ErrIO indicates an operating-system level I/O failure.
	ErrIO = errors.New("os error")
)

// WorkDir returns the extraction directory used for an archive.
func WorkDir(zipPath string) string {
	return filepath.Join(filepath.Dir(zipPath), policy.WorkDirName)
}

// Extract extracts the recognized members of zipPath into destDir and
// returns their names, sorted. Other members are not read at all.
// A leftover destDir from an interrupted run is removed first.
// An archive without recognized members returns no names and no error,
// and destDir is not created.
func Extract(zipPath, destDir string) ([]string, error) {
	r, err := zip.OpenReader(zipPath)
	if err != nil {
		return nil, classify(err)
	}
	defer r.Close()

	if err := os.RemoveAll(destDir); err != nil {
		return nil, classify(err)
	}

	var names []string
	for _, f := range r.File {
		if f.FileInfo().IsDir() || !policy.IsRecognized(f.Name) {
			continue
		}
		if len(names) == 0 {
			if err := os.MkdirAll(destDir, 0755); err != nil {
				return nil, classify(err)
			}
		}
		if err := extractFile(f, filepath.Join(destDir, f.Name)); err != nil {
			return nil, classify(err)
		}
		names = append(names, f.Name)
	}

	sort.Strings(names)
	return names, nil
}

// extractFile copies a single member to target.
func extractFile(f *zip.File, target string) error {
	rc, err := f.Open()
	if err != nil {
		return err
	}
	defer rc.Close()

	out, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, rc); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// classify maps a low-level error onto one of the archive sentinel errors
// while keeping the original error in the chain.
func classify(err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	case errors.Is(err, fs.ErrPermission):
		return fmt.Errorf("%w: %w", ErrPermission, err)
	case errors.Is(err, zip.ErrFormat), errors.Is(err, zip.ErrAlgorithm),
		errors.Is(err, zip.ErrChecksum), errors.Is(err, io.ErrUnexpectedEOF):
		return fmt.Errorf("%w: %w", ErrCorrupt, err)
	default:
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
}
