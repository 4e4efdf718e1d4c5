// Package main provides the CLI entry point for itgscrub.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/ukaji3/itgscrub-go/internal/config"
	"github.com/ukaji3/itgscrub-go/internal/logging"
	"github.com/ukaji3/itgscrub-go/pkg/scrub"
	"github.com/ukaji3/itgscrub-go/pkg/scrub/writer"
)

var (
	configPath string
	envFile    string
	retention  string
	zipOutput  string
	sortRows   bool
	logLevel   string
	logFormat  string
)

// errFailed signals that errors were logged; the details are already in
// the error log and on screen.
var errFailed = errors.New("processing finished with errors")

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errFailed) {
			fmt.Fprintln(os.Stderr, errorStyle.Render(err.Error()))
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "itgscrub",
		Short: "Turn ITG export archives into one clean workbook per client",
		Long: `itgscrub extracts the recognized CSV files of an ITG export, removes
archived rows, inactive configurations, noise and empty columns, cleans
markup out of cells, and writes one formatted workbook per client.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newRunCmd(), newInspectCmd())
	return rootCmd
}

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [export.zip | folder]",
		Short: "Process one export archive or every archive in a folder",
		Args:  cobra.ExactArgs(1),
		RunE:  run,
	}

	cmd.Flags().StringVar(&configPath, "config", "", "YAML config file with run defaults")
	cmd.Flags().StringVar(&envFile, "env-file", ".env", "Optional .env file with ITGSCRUB_* variables")
	cmd.Flags().StringVar(&retention, "retention", "", "What to do with the source archive: delete or keep")
	cmd.Flags().StringVar(&zipOutput, "zip", "", "Zip the workbook when finished: yes or no")
	cmd.Flags().BoolVar(&sortRows, "sort", true, "Sort sheets whose first column is a name-like column")
	cmd.Flags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	cmd.Flags().StringVar(&logFormat, "log-format", "", "Log format: text or json")

	return cmd
}

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [workbook.xlsx]",
		Short: "Show the sheets, headers and column widths of a produced workbook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			infos, err := writer.Inspect(args[0])
			if err != nil {
				return fmt.Errorf("inspect failed: %w", err)
			}
			printInspect(cmd.OutOrStdout(), infos)
			return nil
		},
	}
}

func run(cmd *cobra.Command, args []string) error {
	target := args[0]

	info, err := os.Stat(target)
	if os.IsNotExist(err) {
		return fmt.Errorf("target not found: %s", target)
	}
	if err != nil {
		return err
	}

	cfg, err := config.Load(envFile, configPath)
	if err != nil {
		return err
	}
	applyFlags(cmd, cfg)

	opts, err := buildOptions(cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	opts.Status = func(msg string) {
		fmt.Fprintln(out, statusStyle.Render("Status: "+msg))
	}

	if !info.IsDir() {
		res := scrub.Process(target, opts)
		printResult(out, res)
		if res.Status != scrub.StatusOK {
			printFailure(out, []string{res.ErrorLog})
			return errFailed
		}
		fmt.Fprintln(out, successStyle.Render("Processing Complete."))
		return nil
	}

	summary, err := scrub.ProcessBatch(target, opts)
	if err != nil {
		return err
	}
	for _, res := range summary.Results {
		printResult(out, res)
	}
	if summary.Status() != scrub.StatusOK {
		fmt.Fprintln(out, warningStyle.Render(fmt.Sprintf("%d of %d archives had errors.", summary.Failed, len(summary.Results))))
		printFailure(out, summary.ErrorLogs)
		return errFailed
	}
	fmt.Fprintln(out, successStyle.Render(fmt.Sprintf("Processing Complete. %d archives processed.", len(summary.Results))))
	return nil
}

// applyFlags lets explicitly set flags override the loaded configuration.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("retention") {
		cfg.Retention = retention
	}
	if flags.Changed("zip") {
		cfg.Zip = zipOutput
	}
	if flags.Changed("sort") {
		cfg.Sort = sortRows
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level = logLevel
	}
	if flags.Changed("log-format") {
		cfg.Logging.Format = logFormat
	}
}

func buildOptions(cfg *config.Config, logOut io.Writer) (scrub.Options, error) {
	r, err := scrub.ParseRetention(cfg.Retention)
	if err != nil {
		return scrub.Options{}, err
	}
	z, err := scrub.ParseZipOutput(cfg.Zip)
	if err != nil {
		return scrub.Options{}, err
	}

	return scrub.Options{
		Retention: r,
		Zip:       z,
		SortRows:  cfg.Sort,
		Logger:    logging.New(logOut, cfg.Logging.Level, logging.Format(cfg.Logging.Format)),
	}, nil
}

func printResult(w io.Writer, res *scrub.Result) {
	switch {
	case res.NotExport:
		fmt.Fprintln(w, warningStyle.Render("skipped  "+res.Archive+" (not an ITG export)"))
	case res.Status != scrub.StatusOK:
		for _, err := range res.Errors {
			fmt.Fprintln(w, errorStyle.Render("error    "+err.Error()))
		}
	default:
		output := res.Workbook
		if res.Zip != "" {
			output = res.Zip
		}
		fmt.Fprintln(w, successStyle.Render("done     "+res.Customer+" -> "+output))
	}
}

func printFailure(w io.Writer, logs []string) {
	fmt.Fprintln(w, errorStyle.Render("Processing Complete, but errors are present."))
	var present []string
	for _, l := range logs {
		if l != "" {
			present = append(present, l)
		}
	}
	if len(present) > 0 {
		fmt.Fprintln(w, "Please refer to the error file: "+strings.Join(present, ", "))
	}
}

func printInspect(w io.Writer, infos []writer.SheetInfo) {
	for _, info := range infos {
		fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("%s (%d rows)", info.Name, info.DataRows)))
		for i, h := range info.Header {
			width := 0.0
			if i < len(info.Widths) {
				width = info.Widths[i]
			}
			fmt.Fprintf(w, "  %-40s %6.1f\n", h, width)
		}
	}
}
