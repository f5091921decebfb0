package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"

	"photokeep/internal/report"
)

const (
	ansiReset  = "\x1b[0m"
	ansiRed    = "\x1b[31m"
	ansiYellow = "\x1b[33m"
)

// renderSummary prints the per-run counters as a table, followed by any
// per-file errors.
func renderSummary(out io.Writer, flowName string, dryRun bool, summary *report.Summary) {
	if summary == nil {
		return
	}

	mode := "live"
	if dryRun {
		mode = "dry-run"
	}
	fmt.Fprintf(out, "%s (%s)\n", flowName, mode)

	rows := [][]string{
		{"processed", strconv.Itoa(summary.Success)},
		{"skipped", strconv.Itoa(summary.Skipped)},
		{"errors", strconv.Itoa(summary.Failed())},
	}
	fmt.Fprintln(out, renderTable([]string{"Result", "Count"}, rows, []columnAlignment{alignLeft, alignRight}))

	colorize := shouldColorize(out)
	for _, message := range summary.Errors {
		line := "  error: " + message
		if colorize {
			line = ansiRed + line + ansiReset
		}
		fmt.Fprintln(out, line)
	}
	if dryRun && summary.Success > 0 {
		hint := "dry run: no files were changed; pass --live to apply"
		if colorize {
			hint = ansiYellow + hint + ansiReset
		}
		fmt.Fprintln(out, hint)
	}
}

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

func renderTable(headers []string, rows [][]string, aligns []columnAlignment) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, columns)
	for i := 0; i < columns; i++ {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := 0; i < columns; i++ {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	columnConfigs := make([]table.ColumnConfig, 0, columns)
	for i := 0; i < columns; i++ {
		align := text.AlignLeft
		if i < len(aligns) && aligns[i] == alignRight {
			align = text.AlignRight
		}
		columnConfigs = append(columnConfigs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(columnConfigs)

	return tw.Render()
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
