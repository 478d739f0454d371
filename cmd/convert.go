package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/edforge/qconvert/internal/pipeline"
	"github.com/edforge/qconvert/internal/question"
	"github.com/edforge/qconvert/internal/report"
	"github.com/edforge/qconvert/internal/store"
	"github.com/edforge/qconvert/internal/ui/components"
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert legacy question files to the target schema",
	Long: "Discovers legacy question JSON under --input, runs every file through " +
		"pre-validation, transformation, and post-validation, and sorts the results " +
		"into CONVERTED and the per-stage quarantine folders under --output.",
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringP("input", "i", "INPUT", "Input directory or file path")
	convertCmd.Flags().StringP("output", "o", "OUTPUTS", "Output directory root")
	convertCmd.Flags().StringP("types", "t", "", "Comma-separated part types to convert (e.g. counting,mcq)")
	convertCmd.Flags().Bool("dry-run", false, "Run without writing files (validation only)")
	convertCmd.Flags().BoolP("verbose", "v", false, "Print detailed progress messages")
	convertCmd.Flags().Bool("no-report", false, "Skip the Excel and text log reports")
}

// outputDirs groups the per-stage destination folders of one run.
type outputDirs struct {
	converted string
	preFailed string
	convFail  string
	postFail  string
	logs      string
}

func newOutputDirs(root string) outputDirs {
	return outputDirs{
		converted: filepath.Join(root, "CONVERTED"),
		preFailed: filepath.Join(root, "PRE_CONVERSION_VALIDATION_FAILED"),
		convFail:  filepath.Join(root, "CONVERSION_FAILED"),
		postFail:  filepath.Join(root, "POST_CONVERSION_VALIDATION_FAILED"),
		logs:      filepath.Join(root, "LOGS_REPORTS"),
	}
}

func (d outputDirs) create() error {
	for _, dir := range []string{d.converted, d.preFailed, d.convFail, d.postFail, d.logs} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return nil
}

func runConvert(cmd *cobra.Command, args []string) error {
	input, _ := cmd.Flags().GetString("input")
	output, _ := cmd.Flags().GetString("output")
	typesFlag, _ := cmd.Flags().GetString("types")
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	verbose, _ := cmd.Flags().GetBool("verbose")
	noReport, _ := cmd.Flags().GetBool("no-report")

	var filterTypes []string
	if typesFlag != "" {
		filterTypes = strings.Split(typesFlag, ",")
		fmt.Printf("Filtering by question types: %s\n", strings.Join(filterTypes, ", "))
	}

	fmt.Printf("Discovering JSON files in: %s\n", input)
	files, err := pipeline.Discover(input, filterTypes)
	if err != nil {
		return fmt.Errorf("discover input files: %w", err)
	}
	fmt.Printf("Found %d files to process\n", len(files))
	if len(files) == 0 {
		fmt.Println("No files to process. Exiting.")
		return nil
	}

	dirs := newOutputDirs(output)
	if !dryRun {
		if err := dirs.create(); err != nil {
			return fmt.Errorf("create output directories: %w", err)
		}
	} else {
		fmt.Println("\n*** DRY RUN MODE - No files will be written ***")
	}

	started := time.Now()
	p := pipeline.New(ruleRegistry(cmd))
	outcomes := make([]pipeline.Outcome, 0, len(files))

	fmt.Println("\nProcessing files...")
	for i, path := range files {
		if verbose {
			fmt.Printf("[%d/%d] Processing: %s\n", i+1, len(files), filepath.Base(path))
		}

		out := p.ProcessFile(path)
		outcomes = append(outcomes, out)

		if !dryRun {
			if err := placeOutcome(out, path, dirs); err != nil {
				return fmt.Errorf("write output for %s: %w", out.Filename, err)
			}
		}

		if verbose && out.Failed() {
			fmt.Printf("  ERROR: %s - %s\n", out.Filename, strings.Join(out.Errors, "; "))
		}
		if !verbose {
			bar := components.NewProgressBar("Converting", float64(i+1)/float64(len(files)), true, 60)
			fmt.Printf("\r%s", bar.View())
		}
	}
	if !verbose {
		fmt.Println()
	}

	stats := &p.Stats
	if !dryRun && !noReport && (len(stats.Errors) > 0 || len(stats.Warnings) > 0) {
		ts := time.Now().Format("20060102_150405")
		excelPath := filepath.Join(dirs.logs, fmt.Sprintf("errors_%s.xlsx", ts))
		if err := report.WriteExcel(stats, excelPath); err != nil {
			fmt.Fprintln(os.Stderr, "Warning: Excel report failed:", err)
		} else {
			fmt.Printf("\nExcel report saved to: %s\n", excelPath)
		}
		logPath := filepath.Join(dirs.logs, fmt.Sprintf("conversion_%s.log", ts))
		if err := report.WriteTextLog(stats, logPath); err != nil {
			fmt.Fprintln(os.Stderr, "Warning: text log failed:", err)
		} else {
			fmt.Printf("Text log saved to: %s\n", logPath)
		}
	}

	fmt.Println()
	fmt.Println(report.Summary(stats))

	if !dryRun {
		recordRun(cmd, stats, outcomes, input, output, started)
	}

	if failed := stats.Failed(); failed > 0 {
		return fmt.Errorf("%d of %d files failed conversion", failed, stats.Total)
	}
	fmt.Println("\nAll files converted successfully.")
	return nil
}

// placeOutcome writes the document where its status says it belongs.
// Originals are quarantined unchanged; a post-validation failure keeps the
// converted artifact since that is what needs inspecting.
func placeOutcome(out pipeline.Outcome, srcPath string, dirs outputDirs) error {
	switch out.Status {
	case pipeline.StatusSuccess:
		return question.SaveFile(out.Converted, filepath.Join(dirs.converted, out.Filename))
	case pipeline.StatusPreValidationFailed:
		return copyFile(srcPath, filepath.Join(dirs.preFailed, out.Filename))
	case pipeline.StatusConversionFailed:
		return copyFile(srcPath, filepath.Join(dirs.convFail, out.Filename))
	case pipeline.StatusPostValidationFailed:
		return question.SaveFile(out.Converted, filepath.Join(dirs.postFail, out.Filename))
	}
	return nil
}

// recordRun persists the run to the history store. Store trouble must not
// fail a conversion that already happened, so it degrades to a warning.
func recordRun(cmd *cobra.Command, stats *pipeline.Stats, outcomes []pipeline.Outcome, input, output string, started time.Time) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Warning: run not recorded:", err)
		return
	}
	st, err := store.Open(dbPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Warning: run not recorded:", err)
		return
	}
	defer st.Close()

	run := &store.Run{
		StartedAt:            started,
		FinishedAt:           time.Now(),
		InputPath:            input,
		OutputPath:           output,
		Total:                stats.Total,
		Converted:            stats.Converted,
		PreValidationFailed:  stats.PreValidationFailed,
		ConversionFailed:     stats.ConversionFailed,
		PostValidationFailed: stats.PostValidationFailed,
		Warnings:             len(stats.Warnings),
	}
	if _, err := st.Runs().Save(cmd.Context(), run, store.ResultsFromOutcomes(outcomes)); err != nil {
		fmt.Fprintln(os.Stderr, "Warning: run not recorded:", err)
	}
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Sync()
}
