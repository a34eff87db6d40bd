package commands

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jimmyjordanSWE/logorder/pkg/config"
	"github.com/jimmyjordanSWE/logorder/pkg/detector"
	"github.com/jimmyjordanSWE/logorder/pkg/resolver"
)

// DiagnoseOptions holds options for the diagnose command
type DiagnoseOptions struct {
	Config  string
	Verbose bool
}

// DiagnosticResult represents the result of a single diagnostic check
type DiagnosticResult struct {
	Check    string
	Status   string // "ok", "warning", "error"
	Message  string
	Details  []string
	Suggests []string
}

// NewDiagnoseCommand creates the diagnose command
func NewDiagnoseCommand() *cobra.Command {
	opts := &DiagnoseOptions{}

	cmd := &cobra.Command{
		Use:   "diagnose <log-file>",
		Short: "Diagnose common verification issues",
		Long: `Diagnose common verification issues before running a check.

This command looks for problems that would make a scan useless:
- Config file syntax (when --config is given)
- Log file resolution (including rotated-file fallback)
- Timestamp format matching against actual log lines

Example:
  logorder diagnose app.log
  logorder diagnose -c logorder.yaml -v app.log`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			return runDiagnose(ctx, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Config, "config", "c", "", "Config file (YAML); defaults apply when omitted")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Show detailed diagnostic output")

	return cmd
}

func runDiagnose(ctx context.Context, logPath string, opts *DiagnoseOptions) error {
	results := []DiagnosticResult{}

	// 1. Load config (defaults when none given)
	cfg, result := checkConfig(ctx, opts.Config)
	results = append(results, result)
	if result.Status == "error" {
		printDiagnostics(results, opts)
		return nil
	}

	// 2. Resolve the log file
	res, result := checkResolution(logPath)
	results = append(results, result)
	if result.Status == "error" {
		printDiagnostics(results, opts)
		return nil
	}

	// 3. Check the file has content
	results = append(results, checkFileContent(res.Path))

	// 4. Check timestamp format against actual lines
	results = append(results, checkTimestampFormat(ctx, cfg, res.Path))

	printDiagnostics(results, opts)
	return nil
}

func checkConfig(ctx context.Context, path string) (*config.Config, DiagnosticResult) {
	result := DiagnosticResult{
		Check: "Config",
	}

	cfg, err := config.Load(ctx, path)
	if err != nil {
		result.Status = "error"
		result.Message = fmt.Sprintf("Config not usable: %v", err)
		result.Suggests = []string{
			"Run 'logorder validate <config-file>' for details",
			"Use 'logorder detect <log-file> --write-config logorder.yaml' to generate a starter config",
		}
		return nil, result
	}

	result.Status = "ok"
	if path == "" {
		result.Message = "Using built-in defaults"
	} else {
		result.Message = fmt.Sprintf("Loaded: %s", path)
	}
	result.Details = []string{
		fmt.Sprintf("pattern: %s", cfg.TimestampFormat.Pattern),
		fmt.Sprintf("layout: %s", cfg.TimestampFormat.Layout),
	}
	return cfg, result
}

func checkResolution(logPath string) (*resolver.Resolution, DiagnosticResult) {
	result := DiagnosticResult{
		Check: "Log File",
	}

	res, err := resolver.Resolve(logPath)
	if err != nil {
		result.Status = "error"
		result.Message = fmt.Sprintf("Cannot resolve %s: %v", logPath, err)
		result.Suggests = []string{
			"Check the file path is correct",
			"Rotated files are matched by prefix: <path>.<suffix>",
		}
		return nil, result
	}

	result.Status = "ok"
	if res.Fallback {
		result.Message = fmt.Sprintf("Resolved by prefix match: %s", res.Path)
	} else {
		result.Message = fmt.Sprintf("Found: %s", res.Path)
	}
	return res, result
}

func checkFileContent(path string) DiagnosticResult {
	result := DiagnosticResult{
		Check: "File Content",
	}

	info, err := os.Stat(path)
	if err != nil {
		result.Status = "error"
		result.Message = fmt.Sprintf("Cannot access file: %v", err)
		result.Suggests = []string{"Check file permissions"}
		return result
	}
	if info.Size() == 0 {
		result.Status = "warning"
		result.Message = "File is empty; a scan will trivially succeed"
		return result
	}

	result.Status = "ok"
	result.Message = fmt.Sprintf("%d bytes", info.Size())
	return result
}

func checkTimestampFormat(ctx context.Context, cfg *config.Config, path string) DiagnosticResult {
	result := DiagnosticResult{
		Check: "Timestamp Format",
	}

	lines, err := sampleLines(path, 100)
	if err != nil {
		result.Status = "error"
		result.Message = fmt.Sprintf("Cannot read file: %v", err)
		return result
	}
	if len(lines) == 0 {
		result.Status = "warning"
		result.Message = "No lines to sample"
		return result
	}

	pattern := cfg.TimestampFormat.CompiledPattern()
	matched := 0
	for _, line := range lines {
		if pattern.MatchString(line) {
			matched++
		}
	}

	switch {
	case matched == len(lines):
		result.Status = "ok"
		result.Message = fmt.Sprintf("All %d sampled lines match the configured pattern", matched)
	case matched > 0:
		result.Status = "warning"
		result.Message = fmt.Sprintf("%d/%d sampled lines match the configured pattern", matched, len(lines))
		result.Details = []string{"Non-matching lines are skipped for ordering purposes"}
	default:
		result.Status = "error"
		result.Message = "No sampled line matches the configured pattern"
		result.Suggests = suggestFormat(ctx, path)
	}

	return result
}

// suggestFormat runs detection to propose a working pattern when the
// configured one matches nothing.
func suggestFormat(ctx context.Context, path string) []string {
	detected, err := detector.New().DetectFromFile(ctx, path)
	if err != nil || !detected.HasMatch() {
		return []string{"Run 'logorder detect' to inspect the file"}
	}

	best := detected.BestMatch()
	return []string{
		fmt.Sprintf("Detected format %q (%.0f%% confidence)", best.Format.Name, best.Confidence*100),
		fmt.Sprintf("Try pattern: '%s' with layout: \"%s\"", best.Format.PatternStr, best.Format.Layout),
	}
}

func sampleLines(path string, n int) ([]string, error) {
	// #nosec G304 - path is provided by user via CLI
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() && len(lines) < n {
		if strings.TrimSpace(scanner.Text()) != "" {
			lines = append(lines, scanner.Text())
		}
	}
	return lines, scanner.Err()
}

func printDiagnostics(results []DiagnosticResult, opts *DiagnoseOptions) {
	fmt.Println("=== LogOrder Diagnostics ===")
	fmt.Println()

	okCount := 0
	warnCount := 0
	errCount := 0

	for _, r := range results {
		// Status icon
		var icon string
		switch r.Status {
		case "ok":
			icon = "PASS"
			okCount++
		case "warning":
			icon = "WARN"
			warnCount++
		case "error":
			icon = "FAIL"
			errCount++
		}

		fmt.Printf("[%s] %s\n", icon, r.Check)
		fmt.Printf("    %s\n", r.Message)

		if opts.Verbose || r.Status != "ok" {
			for _, d := range r.Details {
				fmt.Printf("      - %s\n", d)
			}
		}

		for _, s := range r.Suggests {
			fmt.Printf("      Hint: %s\n", s)
		}

		fmt.Println()
	}

	// Summary
	fmt.Println("---")
	fmt.Printf("Summary: %d passed, %d warnings, %d errors\n", okCount, warnCount, errCount)

	if errCount > 0 {
		fmt.Println("\nFix the errors above before running a check.")
	} else if warnCount > 0 {
		fmt.Println("\nSetup is usable but has warnings.")
	} else {
		fmt.Println("\nSetup looks good!")
	}
}
