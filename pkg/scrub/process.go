package scrub

import (
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/ukaji3/itgscrub-go/pkg/scrub/archive"
	"github.com/ukaji3/itgscrub-go/pkg/scrub/assemble"
	"github.com/ukaji3/itgscrub-go/pkg/scrub/errlog"
	"github.com/ukaji3/itgscrub-go/pkg/scrub/filter"
	"github.com/ukaji3/itgscrub-go/pkg/scrub/models"
	"github.com/ukaji3/itgscrub-go/pkg/scrub/parser"
	"github.com/ukaji3/itgscrub-go/pkg/scrub/policy"
	"github.com/ukaji3/itgscrub-go/pkg/scrub/sanitize"
	"github.com/ukaji3/itgscrub-go/pkg/scrub/writer"
)

// Result describes the outcome of processing one archive.
type Result struct {
	// Archive is the processed archive path.
	Archive string
	// RunID identifies this run in structured logs.
	RunID string
	// Status is StatusOK or StatusError.
	Status int
	// NotExport is set when the archive held no recognized files.
	NotExport bool
	// Customer is the name read from the export data.
	Customer string
	// Workbook is the written workbook path; empty once it has been zipped.
	Workbook string
	// Zip is the output zip path when zipping was requested and succeeded.
	Zip string
	// ErrorLog is the error log path, set only when an entry was written.
	ErrorLog string
	// Errors holds every logged failure, in order.
	Errors []error
}

// run carries the per-archive state shared by the pipeline steps.
type run struct {
	opts   Options
	log    *slog.Logger
	errLog *errlog.Log
	res    *Result
}

// fail records a failure in the result, the error log and the logger.
func (r *run) fail(stage string, err error) {
	se := NewStageError(r.res.Archive, stage, err)
	r.res.Errors = append(r.res.Errors, se)
	r.res.Status = StatusError

	msg := se.Error()
	if h := hint(err); h != "" {
		msg = msg + ". " + h
	}
	if werr := r.errLog.Append(msg); werr != nil {
		r.log.Error("cannot write error log", "error", werr)
	} else {
		r.res.ErrorLog = r.errLog.Path()
	}
	r.log.Error("archive step failed", "stage", stage, "error", err)
}

// Process runs the whole pipeline on one archive: extract, read, sanitize,
// filter, assemble, write, then package according to opts.
//
// Failures never escape: each one is appended to the dated error log in the
// archive's directory and the result status becomes StatusError. An
// archive without recognized files is not a failure.
func Process(archivePath string, opts Options) *Result {
	res := &Result{
		Archive: archivePath,
		RunID:   uuid.NewString(),
		Status:  StatusOK,
	}
	dir := filepath.Dir(archivePath)
	r := &run{
		opts:   opts,
		log:    opts.logger().With("run_id", res.RunID, "archive", archivePath),
		errLog: errlog.New(dir),
		res:    res,
	}

	r.log.Info("processing archive")
	workDir := archive.WorkDir(archivePath)
	names, err := archive.Extract(archivePath, workDir)
	if err != nil {
		r.fail(StageExtract, err)
		r.cleanup(workDir)
		return res
	}
	if len(names) == 0 {
		res.NotExport = true
		opts.status("%s is not a valid ITG export", archivePath)
		r.log.Info("no recognized files, skipping")
		return res
	}

	wb, ok := r.assemble(workDir, policy.SelectFiles(names))
	if !ok {
		r.cleanup(workDir)
		return res
	}

	wbPath := filepath.Join(dir, policy.WorkbookName(wb.Customer))
	err = writer.Write(wb, wbPath)
	r.cleanup(workDir)
	if err != nil {
		r.fail(StageWrite, err)
		return res
	}
	res.Workbook = wbPath
	r.log.Info("workbook written", "path", wbPath, "sheets", strings.Join(wb.SheetNames(), ","))

	if opts.ShouldDeleteSource() {
		if err := archive.RemoveSource(archivePath); err != nil {
			r.fail(StageRetain, err)
		}
	}
	opts.status("Processing of %s complete.", wb.Customer)

	if opts.ShouldZip() {
		r.zip(wbPath, filepath.Join(dir, policy.ZipName(wb.Customer)))
	}

	r.log.Info("archive done", "status", res.Status)
	return res
}

// assemble reads the extracted files and turns them into the client workbook.
func (r *run) assemble(workDir string, files []string) (*models.ClientWorkbook, bool) {
	tables := make([]*models.Table, 0, len(files))
	for _, name := range files {
		t, err := parser.ReadTable(filepath.Join(workDir, name))
		if err != nil {
			r.fail(StageRead, err)
			return nil, false
		}
		tables = append(tables, t)
	}

	customer, err := assemble.CustomerName(tables[0])
	if err != nil {
		r.fail(StageName, err)
		return nil, false
	}
	r.res.Customer = customer
	r.log = r.log.With("customer", customer)
	r.opts.status("Processing %s ...", customer)

	filtered := make([]*models.Table, 0, len(tables))
	for _, t := range tables {
		sanitize.Table(t, sanitize.Default)
		ft, dropped := filter.Apply(t)
		r.log.Debug("table filtered",
			"table", t.Name,
			"rows_in", len(t.Rows),
			"rows_out", len(ft.Rows),
			"columns_out", ft.Width(),
			"dropped", strings.Join(dropped, ","))
		if ft.Width() == 0 {
			r.log.Info("table has no columns left, skipping", "table", t.Name)
		}
		filtered = append(filtered, ft)
	}

	return assemble.Assemble(customer, filtered, r.opts.SortRows), true
}

// zip replaces the workbook with a zip containing it.
func (r *run) zip(wbPath, zipPath string) {
	if err := archive.ZipWorkbook(wbPath, zipPath); err != nil {
		r.fail(StagePackage, err)
		return
	}
	r.res.Zip = zipPath
	r.log.Info("workbook zipped", "path", zipPath)

	if err := archive.RemoveWorkbook(wbPath); err != nil {
		r.fail(StagePackage, err)
		return
	}
	r.res.Workbook = ""
}

func (r *run) cleanup(workDir string) {
	if err := archive.Cleanup(workDir); err != nil {
		r.fail(StageCleanup, err)
	}
}
