package main

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/JonMunkholm/suitctl/internal/core"
)

func executeRoot(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRoot_BootstrapsCatalogAndQuits(t *testing.T) {
	path := filepath.Join(t.TempDir(), "suits.csv")

	stdout, _, err := executeRoot(t, "q\n", "--file", path)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(stdout, "Exiting program. Goodbye!") {
		t.Errorf("stdout = %q, want goodbye", stdout)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("catalog not generated: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 51 {
		t.Errorf("catalog has %d lines, want 51 (header + 50)", len(lines))
	}
}

func TestRoot_RepairsThroughCatalogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "suits.csv")
	content := "code,type,durability\n123456," + core.LabelPower + ",60\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	t.Setenv("LOG_LEVEL", "info")
	t.Setenv("LOG_FORMAT", "json")

	stdout, stderr, err := executeRoot(t, "123456\nr\nq\n", "-f", path)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(stdout, "Suit repaired! Durability increased from 60 to 85") {
		t.Errorf("stdout missing repair report:\n%s", stdout)
	}
	if strings.Contains(stdout, "session_id") {
		t.Error("log output leaked into the transcript")
	}
	if !strings.Contains(stderr, `"msg":"suit repaired"`) || !strings.Contains(stderr, `"session_id"`) {
		t.Errorf("stderr missing repair log:\n%s", stderr)
	}
	if !strings.Contains(stderr, `"msg":"catalog ready"`) || !strings.Contains(stderr, `"path":"`+filepath.ToSlash(path)) {
		t.Errorf("stderr missing catalog ready log:\n%s", stderr)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.Contains(string(data), "123456,"+core.LabelPower+",85") {
		t.Errorf("catalog not updated:\n%s", data)
	}
}

func TestRoot_CorruptCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "suits.csv")
	content := "code,type,durability\n123456," + core.LabelPower + ",sixty\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	_, _, err := executeRoot(t, "q\n", "-f", path)
	if !errors.Is(err, core.ErrDataCorruption) {
		t.Fatalf("Execute() error = %v, want data corruption", err)
	}
	if line := errorLine(err); !strings.HasPrefix(line, "Error: Catalog file is damaged (DATA001)") {
		t.Errorf("errorLine() = %q", line)
	}
}

func TestRoot_RejectsArguments(t *testing.T) {
	if _, _, err := executeRoot(t, "", "extra"); err == nil {
		t.Error("Execute() with a positional argument should fail")
	}
}

func TestErrorLine_Unmapped(t *testing.T) {
	err := errors.New("config validation: LOG_LEVEL bad")
	if got, want := errorLine(err), "Error: config validation: LOG_LEVEL bad"; got != want {
		t.Errorf("errorLine() = %q, want %q", got, want)
	}
}
