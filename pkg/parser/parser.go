package parser

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// FileSource implements LineSource for reading a single log file.
// Files ending in .gz are decompressed transparently, so gzipped rotated
// logs verify the same as plain ones.
type FileSource struct {
	path         string
	extractor    *TimestampExtractor
	maxLineBytes int

	file    *os.File
	gz      *gzip.Reader
	scanner *bufio.Scanner
	lineNum int
	opened  bool
}

// FileSourceOption configures a FileSource.
type FileSourceOption func(*FileSource)

// WithMaxLineBytes sets the maximum accepted line length in bytes.
func WithMaxLineBytes(n int) FileSourceOption {
	return func(s *FileSource) {
		if n > 0 {
			s.maxLineBytes = n
		}
	}
}

// NewFileSource creates a LineSource reading the given file.
// The timestamp pattern and layout are used to extract timestamps from each line.
func NewFileSource(path string, pattern *regexp.Regexp, layout string, opts ...FileSourceOption) *FileSource {
	s := &FileSource{
		path:         path,
		extractor:    NewTimestampExtractor(pattern, layout),
		maxLineBytes: 1024 * 1024,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Next returns the next scanned line. Every line is returned, including those
// without a timestamp; Line.Kind carries the extraction outcome.
// Returns io.EOF when the file is exhausted.
func (s *FileSource) Next(ctx context.Context) (*Line, error) {
	// Check for context cancellation
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	if !s.opened {
		if err := s.open(); err != nil {
			return nil, err
		}
	}

	if s.scanner == nil {
		return nil, io.EOF
	}

	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return nil, fmt.Errorf("reading %s: %w", s.path, err)
		}
		return nil, io.EOF
	}

	s.lineNum++
	raw := s.scanner.Text()

	line := &Line{
		Raw:     raw,
		Source:  s.path,
		LineNum: s.lineNum,
	}

	ts, err := s.extractor.Extract(raw)
	switch {
	case err == nil:
		line.Kind = LineTimestamped
		line.Timestamp = ts
	case errors.Is(err, ErrNoTimestamp):
		line.Kind = LineUnstamped
	default:
		line.Kind = LineParseError
		line.ParseErr = err
	}

	return line, nil
}

// Close releases the underlying file handle.
func (s *FileSource) Close() error {
	if s.gz != nil {
		_ = s.gz.Close()
		s.gz = nil
	}
	if s.file != nil {
		err := s.file.Close()
		s.file = nil
		s.scanner = nil
		return err
	}
	return nil
}

func (s *FileSource) open() error {
	s.opened = true

	f, err := os.Open(s.path) // #nosec G304 -- user-provided paths are expected
	if err != nil {
		return fmt.Errorf("opening log file %s: %w", s.path, err)
	}
	s.file = f

	var r io.Reader = f
	if strings.HasSuffix(s.path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			_ = f.Close()
			s.file = nil
			return fmt.Errorf("opening gzip log file %s: %w", s.path, err)
		}
		s.gz = gz
		r = gz
	}

	s.scanner = bufio.NewScanner(r)
	s.scanner.Buffer(make([]byte, 0, 64*1024), s.maxLineBytes)
	s.lineNum = 0

	return nil
}
