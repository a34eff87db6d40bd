package commands

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jimmyjordanSWE/logorder/pkg/config"
)

func TestNewCheckCommand(t *testing.T) {
	cmd := NewCheckCommand()

	if cmd.Use != "check <logfile>" {
		t.Errorf("Unexpected Use: %s", cmd.Use)
	}

	// Check flags exist
	flags := []string{"config", "output", "verbose", "quiet", "webhook-url", "webhook-token", "webhook-trigger"}
	for _, flag := range flags {
		if cmd.Flags().Lookup(flag) == nil {
			t.Errorf("Missing flag: %s", flag)
		}
	}
}

func TestNewDetectCommand(t *testing.T) {
	cmd := NewDetectCommand()

	if cmd.Use != "detect <log-file>" {
		t.Errorf("Unexpected Use: %s", cmd.Use)
	}

	flags := []string{"output", "sample", "all", "write-config"}
	for _, flag := range flags {
		if cmd.Flags().Lookup(flag) == nil {
			t.Errorf("Missing flag: %s", flag)
		}
	}
}

func TestNewValidateCommand(t *testing.T) {
	cmd := NewValidateCommand()

	if cmd.Use != "validate <config-file>" {
		t.Errorf("Unexpected Use: %s", cmd.Use)
	}

	if !strings.Contains(cmd.Long, "Validate") {
		t.Error("Missing description in Long")
	}
}

func TestNewDiagnoseCommand(t *testing.T) {
	cmd := NewDiagnoseCommand()

	if cmd.Use != "diagnose <log-file>" {
		t.Errorf("Unexpected Use: %s", cmd.Use)
	}
}

func TestNewVersionCommand(t *testing.T) {
	cmd := NewVersionCommand()

	if cmd.Use != "version" {
		t.Errorf("Unexpected Use: %s", cmd.Use)
	}
}

func TestRunCheck_Ordered(t *testing.T) {
	ExitCode = 0
	defer func() { ExitCode = 0 }()

	logPath := filepath.Join(t.TempDir(), "app.log")
	content := `2025-01-28 09:03:08 Thread-1 load test start
2025-01-28 09:03:10 Thread-2 load test continue
`
	if err := os.WriteFile(logPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cmd := NewCheckCommand()
	cmd.SetArgs([]string{logPath})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if ExitCode != 0 {
		t.Errorf("ExitCode = %d, want 0", ExitCode)
	}
}

func TestRunCheck_Violation(t *testing.T) {
	ExitCode = 0
	defer func() { ExitCode = 0 }()

	logPath := filepath.Join(t.TempDir(), "app.log")
	content := `2025-01-28 09:03:08 Thread-1 load test start
2025-01-28 09:03:10 Thread-2 load test continue
2025-01-28 09:03:05 Thread-3 load test anomaly
`
	if err := os.WriteFile(logPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cmd := NewCheckCommand()
	cmd.SetArgs([]string{logPath})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if ExitCode != 1 {
		t.Errorf("ExitCode = %d, want 1", ExitCode)
	}
}

func TestRunCheck_RotatedFallback(t *testing.T) {
	ExitCode = 0
	defer func() { ExitCode = 0 }()

	dir := t.TempDir()
	base := filepath.Join(dir, "stress_test_log")
	rotated := base + ".1700000500"
	if err := os.WriteFile(rotated, []byte("2025-01-28 09:03:08 only line\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cmd := NewCheckCommand()
	cmd.SetArgs([]string{base})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if ExitCode != 0 {
		t.Errorf("ExitCode = %d, want 0", ExitCode)
	}
}

func TestRunCheck_MissingFile(t *testing.T) {
	cmd := NewCheckCommand()
	cmd.SetArgs([]string{filepath.Join(t.TempDir(), "nope.log")})
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	err := cmd.Execute()
	if err == nil {
		t.Fatal("Execute() expected error for missing file")
	}
	if !strings.Contains(err.Error(), "nope.log") {
		t.Errorf("error %q does not name the requested path", err)
	}
}

func TestRunCheck_NoArgs(t *testing.T) {
	cmd := NewCheckCommand()
	cmd.SetArgs([]string{})
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	if err := cmd.Execute(); err == nil {
		t.Fatal("Execute() expected usage error with no args")
	}
}

func TestRunValidate_Success(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	content := `timestamp_format:
  pattern: '^(\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2})'
  layout: "2006-01-02 15:04:05"
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create config: %v", err)
	}

	cmd := NewValidateCommand()
	cmd.SetArgs([]string{configPath})
	if err := cmd.Execute(); err != nil {
		t.Errorf("Execute() error = %v", err)
	}
}

func TestRunValidate_Invalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	content := `timestamp_format:
  pattern: 'no-capture-group'
  layout: "2006-01-02 15:04:05"
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create config: %v", err)
	}

	cmd := NewValidateCommand()
	cmd.SetArgs([]string{configPath})
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	if err := cmd.Execute(); err == nil {
		t.Error("Execute() expected validation error")
	}
}

func TestCreateFormatter_Unknown(t *testing.T) {
	_, err := createFormatter(&CheckOptions{Output: "xml"})
	if err == nil {
		t.Error("createFormatter() expected error for unknown format")
	}
}

func TestShouldFireWebhook(t *testing.T) {
	tests := []struct {
		trigger   config.WebhookTrigger
		hasIssues bool
		want      bool
	}{
		{config.WebhookTriggerAlways, false, true},
		{config.WebhookTriggerAlways, true, true},
		{config.WebhookTriggerNever, true, false},
		{config.WebhookTriggerOnIssues, false, false},
		{config.WebhookTriggerOnIssues, true, true},
		{"", true, true},
		{"", false, false},
	}

	for _, tt := range tests {
		if got := shouldFireWebhook(tt.trigger, tt.hasIssues); got != tt.want {
			t.Errorf("shouldFireWebhook(%q, %v) = %v, want %v", tt.trigger, tt.hasIssues, got, tt.want)
		}
	}
}

func TestCollectWebhooks_MergesCLI(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Webhooks = []config.WebhookConfig{{Name: "file", URL: "https://example.com/a"}}

	opts := &CheckOptions{
		WebhookURL:     "https://example.com/b",
		WebhookTrigger: "always",
	}

	webhooks := collectWebhooks(cfg, opts)
	if len(webhooks) != 2 {
		t.Fatalf("got %d webhooks, want 2", len(webhooks))
	}
	if webhooks[1].Name != "cli" {
		t.Errorf("CLI webhook name = %q", webhooks[1].Name)
	}
	if webhooks[1].Trigger != config.WebhookTriggerAlways {
		t.Errorf("CLI webhook trigger = %q", webhooks[1].Trigger)
	}
}
