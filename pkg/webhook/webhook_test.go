package webhook

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jimmyjordanSWE/logorder/pkg/output"
	"github.com/jimmyjordanSWE/logorder/pkg/verifier"
)

func testReport() *output.Report {
	result := &verifier.Result{
		Source: "app.log",
		Violations: []verifier.Violation{
			{
				LineNum:  3,
				Previous: time.Date(2025, 1, 28, 9, 3, 10, 0, time.UTC),
				Current:  time.Date(2025, 1, 28, 9, 3, 5, 0, time.UTC),
				Line:     "2025-01-28 09:03:05 Thread-3 load test anomaly",
			},
		},
		Stats: verifier.ScanStats{LinesScanned: 3, LinesTimestamped: 3},
	}
	return output.NewReport(result, "app.log", false)
}

func TestSend_Success(t *testing.T) {
	var gotBody []byte
	var gotContentType, gotAuth string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		gotAuth = r.Header.Get("Authorization")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient()
	resp := client.Send(context.Background(), testReport(), SendOptions{
		URL:   server.URL,
		Token: "test-token",
	})

	if !resp.Success() {
		t.Fatalf("Send() failed: status=%d err=%v", resp.StatusCode, resp.Error)
	}
	if gotContentType != "application/json" {
		t.Errorf("Content-Type = %q", gotContentType)
	}
	if gotAuth != "Bearer test-token" {
		t.Errorf("Authorization = %q", gotAuth)
	}

	// Payload is the JSON report
	var decoded map[string]interface{}
	if err := json.Unmarshal(gotBody, &decoded); err != nil {
		t.Fatalf("payload is not valid JSON: %v", err)
	}
	summary := decoded["summary"].(map[string]interface{})
	if summary["violations"].(float64) != 1 {
		t.Errorf("payload summary.violations = %v, want 1", summary["violations"])
	}
}

func TestSend_NoToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "" {
			t.Error("Authorization header set without token")
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	resp := NewClient().Send(context.Background(), testReport(), SendOptions{URL: server.URL})
	if !resp.Success() {
		t.Errorf("Send() failed: status=%d err=%v", resp.StatusCode, resp.Error)
	}
}

func TestSend_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	resp := NewClient().Send(context.Background(), testReport(), SendOptions{URL: server.URL})

	if resp.Success() {
		t.Error("Send() reported success for 500 response")
	}
	if resp.StatusCode != http.StatusInternalServerError {
		t.Errorf("StatusCode = %d, want 500", resp.StatusCode)
	}
	if resp.Error == nil {
		t.Error("Error = nil for 500 response")
	}
}

func TestSend_ConnectionRefused(t *testing.T) {
	// Point at a closed server
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	resp := NewClient().Send(context.Background(), testReport(), SendOptions{URL: url})

	if resp.Success() {
		t.Error("Send() reported success for refused connection")
	}
	if resp.Error == nil {
		t.Error("Error = nil for refused connection")
	}
}

func TestSend_Timeout(t *testing.T) {
	done := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-done
	}))
	defer func() {
		close(done)
		server.Close()
	}()

	resp := NewClient().Send(context.Background(), testReport(), SendOptions{
		URL:     server.URL,
		Timeout: 50 * time.Millisecond,
	})

	if resp.Success() {
		t.Error("Send() reported success despite timeout")
	}
	if resp.Error == nil {
		t.Error("Error = nil despite timeout")
	}
}
