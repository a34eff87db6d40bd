package detector

import "regexp"

// TimestampFormat represents a known leading-timestamp format.
type TimestampFormat struct {
	Name       string         // Human-readable name
	Pattern    *regexp.Regexp // Compiled regex (set during init)
	PatternStr string         // Pattern string for config output
	Layout     string         // Go time layout for parsing
	Example    string         // Example timestamp
}

// DefaultFormats returns the built-in timestamp formats to detect.
// Formats are ordered roughly by specificity (more specific patterns first).
func DefaultFormats() []*TimestampFormat {
	formats := []*TimestampFormat{
		// Python logging default (comma for milliseconds)
		{
			Name:       "Datetime with comma milliseconds",
			PatternStr: `^(\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2},\d{3})`,
			Layout:     "2006-01-02 15:04:05,000",
			Example:    "2025-01-28 09:03:08,123",
		},
		// Log4j-style (period for milliseconds)
		{
			Name:       "Datetime with milliseconds",
			PatternStr: `^(\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}\.\d{3})`,
			Layout:     "2006-01-02 15:04:05.000",
			Example:    "2025-01-28 09:03:08.123",
		},
		// ISO 8601 with timezone offset
		{
			Name:       "ISO 8601 with timezone",
			PatternStr: `^(\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}[+-]\d{2}:\d{2})`,
			Layout:     "2006-01-02T15:04:05-07:00",
			Example:    "2025-01-28T09:03:08+00:00",
		},
		// ISO 8601 with Z (UTC)
		{
			Name:       "ISO 8601 with Z (UTC)",
			PatternStr: `^(\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}Z)`,
			Layout:     "2006-01-02T15:04:05Z",
			Example:    "2025-01-28T09:03:08Z",
		},
		// ISO 8601 basic (with T separator)
		{
			Name:       "ISO 8601",
			PatternStr: `^(\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2})`,
			Layout:     "2006-01-02T15:04:05",
			Example:    "2025-01-28T09:03:08",
		},
		// Bracketed datetime
		{
			Name:       "Bracketed datetime",
			PatternStr: `^\[(\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2})\]`,
			Layout:     "2006-01-02 15:04:05",
			Example:    "[2025-01-28 09:03:08]",
		},
		// Plain datetime (LogOrder default, the jj-log file format)
		{
			Name:       "Plain datetime",
			PatternStr: `^(\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2})`,
			Layout:     "2006-01-02 15:04:05",
			Example:    "2025-01-28 09:03:08",
		},
		// Syslog BSD format (no year)
		{
			Name:       "Syslog (BSD)",
			PatternStr: `^(\w{3}\s+\d{1,2}\s+\d{2}:\d{2}:\d{2})`,
			Layout:     "Jan 2 15:04:05",
			Example:    "Jan  5 09:30:00",
		},
		// Unix timestamp (seconds) - at start of line
		{
			Name:       "Unix timestamp (seconds)",
			PatternStr: `^(\d{10})(?:\s|$)`,
			Layout:     LayoutUnixSeconds,
			Example:    "1705315800",
		},
	}

	// Compile all patterns
	for _, f := range formats {
		f.Pattern = regexp.MustCompile(f.PatternStr)
	}

	return formats
}
