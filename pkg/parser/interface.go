package parser

import "context"

// LineSource produces scanned log lines in file order.
type LineSource interface {
	// Next returns the next scanned line.
	// Returns io.EOF when the source is exhausted.
	Next(ctx context.Context) (*Line, error)

	// Close releases resources.
	Close() error
}
