package output

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/jimmyjordanSWE/logorder/pkg/verifier"
)

// timeLayout is how timestamps appear in diagnostics, mirroring the log format.
const timeLayout = "2006-01-02 15:04:05"

// TextFormatter formats reports as human-readable text.
type TextFormatter struct {
	opts FormatOptions
}

// NewTextFormatter creates a new text formatter with the given options.
func NewTextFormatter(opts FormatOptions) *TextFormatter {
	return &TextFormatter{opts: opts}
}

// Name returns the format name.
func (f *TextFormatter) Name() string {
	return "text"
}

// Format renders the report as text.
func (f *TextFormatter) Format(ctx context.Context, report *Report, w io.Writer) error {
	if f.opts.Quiet {
		return f.formatSummary(report, w)
	}
	return f.formatFull(report, w)
}

func (f *TextFormatter) formatFull(report *Report, w io.Writer) error {
	fmt.Fprintf(w, "Checking %s...\n", report.Metadata.ResolvedPath)

	for _, failure := range report.Result.ParseFailures {
		f.formatParseFailure(&failure, w)
	}

	for _, violation := range report.Result.Violations {
		f.formatViolation(&violation, w)
	}

	if f.opts.Verbose {
		fmt.Fprintf(w, "Lines scanned: %d (%d timestamped)\n",
			report.Summary.LinesScanned,
			report.Summary.LinesTimestamped)
		fmt.Fprintf(w, "Duration: %s\n", report.Metadata.Duration.Round(time.Millisecond))
	}

	return f.formatSummary(report, w)
}

func (f *TextFormatter) formatSummary(report *Report, w io.Writer) error {
	if report.HasIssues() {
		fmt.Fprintf(w, "FAILED: found %d ordering violation(s).\n", report.Summary.Violations)
	} else {
		fmt.Fprintln(w, "SUCCESS: logs are in chronological order.")
	}
	return nil
}

func (f *TextFormatter) formatViolation(v *verifier.Violation, w io.Writer) {
	fmt.Fprintf(w, "Error at line %d: time went backwards! %s -> %s\n",
		v.LineNum,
		v.Previous.Format(timeLayout),
		v.Current.Format(timeLayout))
	fmt.Fprintf(w, "  Line: %s\n", v.Line)
}

func (f *TextFormatter) formatParseFailure(p *verifier.ParseFailure, w io.Writer) {
	fmt.Fprintf(w, "Parse error at line %d: %s\n", p.LineNum, p.Cause)
}
