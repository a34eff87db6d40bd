// Package verifier checks that timestamped log lines appear in
// non-decreasing chronological order.
package verifier

import "time"

// Violation is a timestamped line whose timestamp is strictly earlier than
// the previous timestamped line's timestamp.
type Violation struct {
	// LineNum is the 1-based line number of the offending line.
	LineNum int `json:"line_num"`

	// Previous is the timestamp of the preceding timestamped line.
	Previous time.Time `json:"previous"`

	// Current is the out-of-order timestamp.
	Current time.Time `json:"current"`

	// Line is the trimmed text of the offending line.
	Line string `json:"line"`
}

// ParseFailure records a line whose leading text matched the timestamp shape
// but failed to parse into a valid time. Parse failures are diagnostics, not
// ordering violations, and never move the comparison baseline.
type ParseFailure struct {
	// LineNum is the 1-based line number.
	LineNum int `json:"line_num"`

	// Cause describes why parsing failed.
	Cause string `json:"cause"`
}

// ScanStats contains execution statistics for a scan.
type ScanStats struct {
	// LinesScanned is the total number of lines read.
	LinesScanned int `json:"lines_scanned"`

	// LinesTimestamped is the number of lines with a valid leading timestamp.
	LinesTimestamped int `json:"lines_timestamped"`

	// StartTime is when the scan began.
	StartTime time.Time `json:"start_time"`

	// EndTime is when the scan completed.
	EndTime time.Time `json:"end_time"`
}

// Result is the complete outcome of verifying one log file.
type Result struct {
	// Source is the file that was scanned.
	Source string `json:"source"`

	// Violations contains every detected ordering violation, in file order.
	Violations []Violation `json:"violations"`

	// ParseFailures contains per-line timestamp parse diagnostics.
	ParseFailures []ParseFailure `json:"parse_failures,omitempty"`

	// Stats provides scan statistics.
	Stats ScanStats `json:"stats"`
}

// HasViolations returns true if any ordering violations were detected.
func (r *Result) HasViolations() bool {
	return len(r.Violations) > 0
}
