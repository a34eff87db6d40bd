package parser

import (
	"errors"
	"fmt"
	"regexp"
	"time"
)

// ErrNoTimestamp indicates a line does not begin with the timestamp pattern.
var ErrNoTimestamp = errors.New("no leading timestamp")

// ParseError indicates text that matched the timestamp shape but failed to
// parse into a valid time (e.g. "2025-13-01 00:00:00").
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing timestamp %q: %v", e.Input, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// TimestampExtractor extracts and parses leading timestamps from log lines.
type TimestampExtractor struct {
	pattern *regexp.Regexp
	layout  string
}

// NewTimestampExtractor creates a new timestamp extractor.
// The pattern must capture the timestamp text in its first group.
func NewTimestampExtractor(pattern *regexp.Regexp, layout string) *TimestampExtractor {
	return &TimestampExtractor{
		pattern: pattern,
		layout:  layout,
	}
}

// Extract attempts to extract and parse a timestamp from a log line.
// Returns ErrNoTimestamp when the pattern doesn't match, and a *ParseError
// when the matched text is not a valid time.
func (e *TimestampExtractor) Extract(line string) (time.Time, error) {
	matches := e.pattern.FindStringSubmatch(line)
	if len(matches) < 2 {
		return time.Time{}, ErrNoTimestamp
	}

	// Use the first capture group as the timestamp string
	tsStr := matches[1]

	ts, err := time.Parse(e.layout, tsStr)
	if err != nil {
		return time.Time{}, &ParseError{Input: tsStr, Err: err}
	}

	return ts, nil
}
