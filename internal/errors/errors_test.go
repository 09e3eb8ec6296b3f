package errors

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"plain", errors.New("storage not initialized"), "Error: storage not initialized"},
		{"wrapped", fmt.Errorf("failed to load completions: %w", errors.New("disk full")), "Error: failed to load completions: disk full"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.err); got != tt.want {
				t.Errorf("Format() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatf(t *testing.T) {
	got := Formatf("invalid date %q", "2026-13-01")
	want := `Error: invalid date "2026-13-01"`
	if got != want {
		t.Errorf("Formatf() = %q, want %q", got, want)
	}
}

func TestFatal(t *testing.T) {
	if os.Getenv("TRAINLOG_TEST_FATAL") == "1" {
		Fatal(errors.New("no workout store"))
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=^TestFatal$")
	cmd.Env = append(os.Environ(), "TRAINLOG_TEST_FATAL=1")
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("Fatal() did not exit with error: %v", err)
	}
	if exitErr.ExitCode() != 1 {
		t.Errorf("exit code = %d, want 1", exitErr.ExitCode())
	}
	if !strings.Contains(stderr.String(), "Error: no workout store") {
		t.Errorf("stderr = %q", stderr.String())
	}
}

func TestFatal_NilError(t *testing.T) {
	if os.Getenv("TRAINLOG_TEST_FATAL_NIL") == "1" {
		Fatal(nil)
		os.Exit(0)
	}

	cmd := exec.Command(os.Args[0], "-test.run=^TestFatal_NilError$")
	cmd.Env = append(os.Environ(), "TRAINLOG_TEST_FATAL_NIL=1")
	if err := cmd.Run(); err != nil {
		t.Errorf("Fatal(nil) should not exit non-zero: %v", err)
	}
}
