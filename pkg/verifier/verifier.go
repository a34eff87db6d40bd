package verifier

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jimmyjordanSWE/logorder/pkg/parser"
)

// Verifier scans a line source and detects backward time jumps.
type Verifier struct{}

// New creates a Verifier.
func New() *Verifier {
	return &Verifier{}
}

// Verify scans the source and returns the ordering result.
//
// The comparison baseline starts unset and is updated by every successfully
// parsed timestamp, including out-of-order ones: each line is compared against
// its immediate timestamped predecessor, not a high-water mark. Lines without
// a timestamp and lines with unparseable timestamps never move the baseline.
// A single corrupt line never aborts the scan.
func (v *Verifier) Verify(ctx context.Context, source parser.LineSource) (*Result, error) {
	result := &Result{
		Violations:    []Violation{},
		ParseFailures: []ParseFailure{},
		Stats: ScanStats{
			StartTime: time.Now(),
		},
	}

	var (
		last    time.Time
		hasLast bool
	)

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		line, err := source.Next(ctx)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading log source: %w", err)
		}

		if result.Source == "" {
			result.Source = line.Source
		}
		result.Stats.LinesScanned++

		switch line.Kind {
		case parser.LineTimestamped:
			result.Stats.LinesTimestamped++

			if hasLast && line.Timestamp.Before(last) {
				result.Violations = append(result.Violations, Violation{
					LineNum:  line.LineNum,
					Previous: last,
					Current:  line.Timestamp,
					Line:     strings.TrimSpace(line.Raw),
				})
			}

			// Even an out-of-order timestamp becomes the new baseline.
			last = line.Timestamp
			hasLast = true

		case parser.LineParseError:
			result.ParseFailures = append(result.ParseFailures, ParseFailure{
				LineNum: line.LineNum,
				Cause:   line.ParseErr.Error(),
			})

		case parser.LineUnstamped:
			// Opaque line, skipped for ordering purposes.
		}
	}

	result.Stats.EndTime = time.Now()

	return result, nil
}
