package archive

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

var (
	// ErrRemoveSource indicates the source archive could not be deleted.
	ErrRemoveSource = errors.New("cannot delete source archive")
	// ErrRemoveWorkbook indicates the workbook could not be deleted after zipping.
	ErrRemoveWorkbook = errors.New("cannot delete zipped workbook")
	// ErrStaleZip indicates an existing output zip could not be replaced.
	ErrStaleZip = errors.New("cannot replace output zip")
)

// Cleanup removes the extraction directory. A missing directory is not an error.
func Cleanup(workDir string) error {
	if err := os.RemoveAll(workDir); err != nil {
		return classify(err)
	}
	return nil
}

// RemoveSource deletes the source archive.
func RemoveSource(zipPath string) error {
	if err := os.Remove(zipPath); err != nil {
		return fmt.Errorf("%w %s: %w", ErrRemoveSource, zipPath, err)
	}
	return nil
}

// ZipWorkbook writes a zip at zipPath holding only the workbook, stored under
// its base name. An existing zip at zipPath is replaced. The workbook itself
// is left in place; see RemoveWorkbook.
func ZipWorkbook(workbookPath, zipPath string) error {
	if err := os.Remove(zipPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w %s: %w", ErrStaleZip, zipPath, err)
	}

	out, err := os.Create(zipPath)
	if err != nil {
		return classify(err)
	}

	if err := writeZip(out, workbookPath); err != nil {
		out.Close()
		os.Remove(zipPath)
		return classify(err)
	}
	if err := out.Close(); err != nil {
		os.Remove(zipPath)
		return classify(err)
	}
	return nil
}

// RemoveWorkbook deletes the workbook once it has been zipped.
func RemoveWorkbook(workbookPath string) error {
	if err := os.Remove(workbookPath); err != nil {
		return fmt.Errorf("%w %s: %w", ErrRemoveWorkbook, workbookPath, err)
	}
	return nil
}

func writeZip(w io.Writer, path string) error {
	in, err := os.Open(path)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}
	header, err := zip.FileInfoHeader(info)
	if err != nil {
		return err
	}
	header.Name = filepath.Base(path)
	header.Method = zip.Deflate

	zw := zip.NewWriter(w)
	entry, err := zw.CreateHeader(header)
	if err != nil {
		return err
	}
	if _, err := io.Copy(entry, in); err != nil {
		return err
	}
	return zw.Close()
}
