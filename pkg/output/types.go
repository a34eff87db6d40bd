// Package output provides formatting and output generation for verification results.
package output

import (
	"time"

	"github.com/jimmyjordanSWE/logorder/pkg/verifier"
)

// Report is the complete verification output.
type Report struct {
	// Summary provides aggregate statistics.
	Summary Summary `json:"summary"`

	// Result contains the detailed findings.
	Result *verifier.Result `json:"result"`

	// Metadata provides context about the scan.
	Metadata Metadata `json:"metadata"`
}

// Summary provides aggregate statistics.
type Summary struct {
	// Violations is the number of ordering violations detected.
	Violations int `json:"violations"`

	// ParseFailures is the number of timestamp parse diagnostics.
	ParseFailures int `json:"parse_failures"`

	// LinesScanned is the total number of lines read.
	LinesScanned int `json:"lines_scanned"`

	// LinesTimestamped is the number of lines carrying a valid timestamp.
	LinesTimestamped int `json:"lines_timestamped"`
}

// Metadata provides context about the scan run.
type Metadata struct {
	// RequestedPath is the path the user asked for.
	RequestedPath string `json:"requested_path"`

	// ResolvedPath is the file actually scanned. Differs from RequestedPath
	// when a rotated file was selected by prefix match.
	ResolvedPath string `json:"resolved_path"`

	// Fallback is true when ResolvedPath was chosen by prefix match.
	Fallback bool `json:"fallback"`

	// ScannedAt is when the scan completed.
	ScannedAt time.Time `json:"scanned_at"`

	// Duration is how long the scan took.
	Duration time.Duration `json:"duration"`
}

// NewReport creates a Report from a verification result.
func NewReport(result *verifier.Result, requestedPath string, fallback bool) *Report {
	return &Report{
		Result: result,
		Summary: Summary{
			Violations:       len(result.Violations),
			ParseFailures:    len(result.ParseFailures),
			LinesScanned:     result.Stats.LinesScanned,
			LinesTimestamped: result.Stats.LinesTimestamped,
		},
		Metadata: Metadata{
			RequestedPath: requestedPath,
			ResolvedPath:  result.Source,
			Fallback:      fallback,
			ScannedAt:     result.Stats.EndTime,
			Duration:      result.Stats.EndTime.Sub(result.Stats.StartTime),
		},
	}
}

// HasIssues returns true if any ordering violations were detected.
func (r *Report) HasIssues() bool {
	return r.Summary.Violations > 0
}
