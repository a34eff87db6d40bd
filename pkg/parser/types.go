// Package parser provides log file reading and timestamp extraction.
package parser

import "time"

// LineKind classifies a scanned log line.
type LineKind int

const (
	// LineUnstamped means no leading timestamp was found; the line is opaque.
	LineUnstamped LineKind = iota

	// LineTimestamped means a leading timestamp was extracted and parsed.
	LineTimestamped

	// LineParseError means the line matched the timestamp shape but the
	// captured text failed to parse (e.g. month 13).
	LineParseError
)

// Line is a single scanned log line with extraction results.
type Line struct {
	// Raw is the original line content.
	Raw string

	// Kind classifies the extraction outcome.
	Kind LineKind

	// Timestamp is the parsed timestamp. Zero unless Kind is LineTimestamped.
	Timestamp time.Time

	// ParseErr is the parse failure cause when Kind is LineParseError.
	ParseErr error

	// Source is the file path this line came from.
	Source string

	// LineNum is the 1-based line number in the source file.
	LineNum int
}
