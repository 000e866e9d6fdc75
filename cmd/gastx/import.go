package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/Veraticus/gastx/internal/cli"
	"github.com/Veraticus/gastx/internal/common"
	"github.com/Veraticus/gastx/internal/config"
	"github.com/Veraticus/gastx/internal/model"
	"github.com/Veraticus/gastx/internal/ofx"
	"github.com/Veraticus/gastx/internal/report"
	"github.com/Veraticus/gastx/internal/statement"
	"github.com/Veraticus/gastx/internal/tui"
)

type fileReport struct {
	File   string         `json:"file"`
	Report *report.Upload `json:"report"`
}

func importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <files...>",
		Short: "Classify and summarize CSV or OFX/QFX statements",
		Long: `Import bank statements and print a spending report per file.

CSV exports from Nubank and Inter are recognized by their header; OFX and QFX
files are read from any bank. Transactions already seen in an earlier file
are skipped.

Examples:
  gastx import ~/Downloads/nubank-2024-03.csv
  gastx import ~/Downloads/*.ofx --json
  gastx import extrato.csv --interactive`,
		Args: cobra.MinimumNArgs(1),
		RunE: runImport,
	}

	cmd.Flags().BoolP("interactive", "i", false, "Review the classified transactions in a table")
	cmd.Flags().Bool("json", false, "Print reports as JSON")

	return cmd
}

func runImport(cmd *cobra.Command, args []string) error {
	interactive, _ := cmd.Flags().GetBool("interactive")
	asJSON, _ := cmd.Flags().GetBool("json")

	files, err := collectFiles(args)
	if err != nil {
		return err
	}

	engine, err := newEngine(appConfig)
	if err != nil {
		return err
	}

	handler := cli.NewInterruptHandler(cmd.ErrOrStderr())
	ctx := handler.HandleInterrupts(cmd.Context(), true)
	defer handler.Stop()

	bar := cli.NewProgressBar(cmd.ErrOrStderr(), len(files), "Importing statements...")
	seen := make(map[string]bool)
	var reports []fileReport

	for _, path := range files {
		if ctx.Err() != nil {
			break
		}

		stmt, err := readStatement(ctx, path)
		if err != nil {
			slog.Error("Failed to read statement", "file", path, "error", err)
			_ = bar.Add(1)
			continue
		}

		stmt.Transactions = dedupe(stmt.Transactions, seen)
		if len(stmt.Transactions) == 0 {
			slog.Warn("No new transactions in file", "file", filepath.Base(path))
			_ = bar.Add(1)
			continue
		}

		upload, err := report.Build(ctx, engine, stmt)
		if err != nil {
			if ctx.Err() != nil {
				break
			}
			return fmt.Errorf("failed to classify %s: %w", path, err)
		}
		reports = append(reports, fileReport{File: path, Report: upload})
		_ = bar.Add(1)
	}

	if handler.WasInterrupted() {
		return printReports(cmd.OutOrStdout(), reports, asJSON)
	}
	if len(reports) == 0 {
		return common.NewUserError("no transactions could be imported", common.ErrEmptyStatement)
	}

	if interactive {
		for i, fr := range reports {
			reviewed, err := tui.Run(ctx, fr.Report.Transactions, engine, tui.WithTitle(filepath.Base(fr.File)))
			if err != nil {
				return err
			}
			reports[i].Report = applyReview(fr.Report, reviewed)
		}
	}

	return printReports(cmd.OutOrStdout(), reports, asJSON)
}

// collectFiles expands globs and keeps files with a supported extension.
func collectFiles(args []string) ([]string, error) {
	var files []string
	for _, arg := range args {
		path := config.ExpandPath(arg)
		matches, err := filepath.Glob(path)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %s: %w", path, err)
		}
		if len(matches) == 0 {
			slog.Warn("No files found matching pattern", "pattern", path)
			continue
		}
		for _, match := range matches {
			if statementKind(match) == "" {
				slog.Warn("Skipping unsupported file", "file", match)
				continue
			}
			files = append(files, match)
		}
	}

	if len(files) == 0 {
		return nil, common.NewUserError("no .csv, .ofx or .qfx files found", common.ErrUnsupportedFormat)
	}
	return files, nil
}

func statementKind(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return "csv"
	case ".ofx", ".qfx":
		return "ofx"
	default:
		return ""
	}
}

func readStatement(ctx context.Context, path string) (*statement.Statement, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			slog.Warn("Failed to close file", "file", path, "error", cerr)
		}
	}()

	if statementKind(path) == "ofx" {
		return ofx.NewParser().ParseFile(ctx, f)
	}
	return statement.ParseCSV(f)
}

// dedupe drops transactions whose hash was seen in an earlier file. Repeats
// inside one statement are kept.
func dedupe(transactions []model.Transaction, seen map[string]bool) []model.Transaction {
	kept := transactions[:0]
	for _, txn := range transactions {
		if !seen[txn.Hash] {
			kept = append(kept, txn)
		}
	}
	for _, txn := range kept {
		seen[txn.Hash] = true
	}
	return kept
}

// applyReview rebuilds the category summary of u from manually reviewed
// entries. Stats keep describing the automatic pass.
func applyReview(u *report.Upload, reviewed []report.Entry) *report.Upload {
	out := *u
	out.Transactions = reviewed

	transactions := make([]model.Transaction, len(reviewed))
	for i, e := range reviewed {
		transactions[i] = model.Transaction{
			Title:    e.Title,
			Amount:   decimal.NewFromFloat(e.Amount),
			Category: e.Category,
		}
	}
	out.CategorySummary = report.Summarize(transactions)
	return &out
}

func printReports(w io.Writer, reports []fileReport, asJSON bool) error {
	if asJSON {
		return writeJSON(w, reports)
	}

	for _, fr := range reports {
		fmt.Fprintln(w, cli.RenderBox(filepath.Base(fr.File), cli.ReportOverview(fr.Report)))
		if err := cli.WriteSummary(w, fr.Report.CategorySummary); err != nil {
			return err
		}
		fmt.Fprintln(w)
	}
	return nil
}
