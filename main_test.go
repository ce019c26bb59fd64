package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"ICONGEN_PUBLIC_DIR", "ICONGEN_APP_DIR", "ICONGEN_FILTER", "ICONGEN_MKDIR", envComposite, envStdioLog} {
		t.Setenv(k, "")
	}
}

func TestRunWritesIconSet(t *testing.T) {
	clearEnv(t)
	root := t.TempDir()
	public := filepath.Join(root, "public")
	appDir := filepath.Join(root, "src", "app")
	var out bytes.Buffer

	err := run(context.Background(), []string{"-public-dir", public, "-app-dir", appDir, "-mkdir"}, &out)
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.Count(out.String(), "Created "); got != 5 {
		t.Errorf("got %d confirmation lines, want 5:\n%s", got, out.String())
	}
	if _, err := os.Stat(filepath.Join(appDir, "favicon.ico")); err != nil {
		t.Error(err)
	}
}

func TestRunDebugLogClosedOnFailure(t *testing.T) {
	clearEnv(t)
	wd := t.TempDir()
	prevWD, wdErr := os.Getwd()
	if wdErr != nil {
		t.Fatal(wdErr)
	}
	if err := os.Chdir(wd); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(prevWD) })

	// Output directories are missing and -mkdir is off, so the export fails
	// after the debug log is opened.
	err := run(context.Background(), []string{"-debug", "-public-dir", "nope", "-app-dir", "nope"}, &bytes.Buffer{})
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("got %v, want a not-exist error", err)
	}
	data, err := os.ReadFile(filepath.Join(wd, debugLogPath))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "debug logging enabled") || !strings.Contains(string(data), "ERR") {
		t.Errorf("debug log missing entries:\n%s", data)
	}
	// The log file was closed when run returned.
	if err := os.Remove(filepath.Join(wd, debugLogPath)); err != nil {
		t.Errorf("remove debug log: %v", err)
	}
}

func TestRunConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		env  map[string]string
	}{
		{"bad filter flag", []string{"-filter", "box"}, nil},
		{"bad composite flag", []string{"-composite", "xor"}, nil},
		{"unknown flag", []string{"-size", "64"}, nil},
		{"bad env", nil, map[string]string{"ICONGEN_MKDIR": "sometimes"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			var out bytes.Buffer
			err := run(context.Background(), tt.args, &out)
			var cfgErr configError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("got %v, want a config error", err)
			}
			if out.Len() != 0 {
				t.Errorf("nothing should be written, got %q", out.String())
			}
		})
	}
}
