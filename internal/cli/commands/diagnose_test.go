package commands

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jimmyjordanSWE/logorder/pkg/config"
)

func TestCheckConfig_Defaults(t *testing.T) {
	cfg, result := checkConfig(context.Background(), "")
	if result.Status != "ok" {
		t.Errorf("Status = %q, want ok: %s", result.Status, result.Message)
	}
	if cfg == nil {
		t.Fatal("cfg = nil")
	}
	if !strings.Contains(result.Message, "defaults") {
		t.Errorf("Message = %q, want defaults note", result.Message)
	}
}

func TestCheckConfig_BadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("timestamp_format: [broken"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, result := checkConfig(context.Background(), path)
	if result.Status != "error" {
		t.Errorf("Status = %q, want error", result.Status)
	}
	if cfg != nil {
		t.Error("cfg should be nil on error")
	}
}

func TestCheckResolution(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "app.log")
	if err := os.WriteFile(base+".1", []byte("x\n"), 0644); err != nil {
		t.Fatal(err)
	}

	res, result := checkResolution(base)
	if result.Status != "ok" {
		t.Fatalf("Status = %q, want ok: %s", result.Status, result.Message)
	}
	if res == nil || !res.Fallback {
		t.Error("expected fallback resolution")
	}

	_, result = checkResolution(filepath.Join(dir, "missing.log"))
	if result.Status != "error" {
		t.Errorf("Status = %q, want error for missing file", result.Status)
	}
}

func TestCheckFileContent_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.log")
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatal(err)
	}

	result := checkFileContent(path)
	if result.Status != "warning" {
		t.Errorf("Status = %q, want warning for empty file", result.Status)
	}
}

func TestCheckTimestampFormat(t *testing.T) {
	ctx := context.Background()
	cfg, err := config.Load(ctx, "")
	if err != nil {
		t.Fatal(err)
	}

	dir := t.TempDir()

	matching := filepath.Join(dir, "match.log")
	if err := os.WriteFile(matching, []byte("2025-01-28 09:03:08 ok\n2025-01-28 09:03:09 ok\n"), 0644); err != nil {
		t.Fatal(err)
	}
	result := checkTimestampFormat(ctx, cfg, matching)
	if result.Status != "ok" {
		t.Errorf("Status = %q, want ok: %s", result.Status, result.Message)
	}

	mixed := filepath.Join(dir, "mixed.log")
	if err := os.WriteFile(mixed, []byte("2025-01-28 09:03:08 ok\nbare continuation line\n"), 0644); err != nil {
		t.Fatal(err)
	}
	result = checkTimestampFormat(ctx, cfg, mixed)
	if result.Status != "warning" {
		t.Errorf("Status = %q, want warning for partial match", result.Status)
	}

	none := filepath.Join(dir, "none.log")
	if err := os.WriteFile(none, []byte("[2025-01-28 09:03:08] bracketed\n"), 0644); err != nil {
		t.Fatal(err)
	}
	result = checkTimestampFormat(ctx, cfg, none)
	if result.Status != "error" {
		t.Errorf("Status = %q, want error for no match", result.Status)
	}
	// Detection should suggest the bracketed format
	found := false
	for _, s := range result.Suggests {
		if strings.Contains(s, "Bracketed") {
			found = true
		}
	}
	if !found {
		t.Errorf("Suggests = %v, want bracketed format hint", result.Suggests)
	}
}

func TestRunDiagnose(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "app.log")
	if err := os.WriteFile(logPath, []byte("2025-01-28 09:03:08 ok\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cmd := NewDiagnoseCommand()
	cmd.SetArgs([]string{logPath})
	if err := cmd.Execute(); err != nil {
		t.Errorf("Execute() error = %v", err)
	}
}
