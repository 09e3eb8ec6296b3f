package e2e

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func TestEndToEndWorkflow(t *testing.T) {
	// Allow overriding bin dir via env var, default to ../../bin (relative to tests/e2e)
	binDir := os.Getenv("TRAINLOG_BIN_DIR")
	if binDir == "" {
		binDir = filepath.Join("..", "..", "bin")
	}
	binDir, _ = filepath.Abs(binDir)

	cliPath := filepath.Join(binDir, "trainlog")
	if _, err := os.Stat(cliPath); os.IsNotExist(err) {
		t.Skipf("CLI binary not found at %s; build it with 'go build -o bin/trainlog ./cmd/trainlog'", cliPath)
	}

	tempDir := t.TempDir()
	dbPath := filepath.Join(tempDir, "trainlog", "trainlog.db")

	var env []string
	for _, e := range os.Environ() {
		if !strings.HasPrefix(e, "HOME=") && !strings.HasPrefix(e, "XDG_CONFIG_HOME=") && !strings.HasPrefix(e, "TRAINLOG_CONFIG=") {
			env = append(env, e)
		}
	}
	env = append(env,
		fmt.Sprintf("HOME=%s", tempDir),
		fmt.Sprintf("XDG_CONFIG_HOME=%s", tempDir),
		fmt.Sprintf("TRAINLOG_CONFIG=%s", dbPath),
	)

	t.Log("Initializing storage...")
	runCmd(t, cliPath, env, "init")
	if _, err := os.Stat(dbPath); err != nil {
		t.Fatalf("database not created: %v", err)
	}

	runCmd(t, cliPath, env, "settings", "--timezone", "UTC", "--reminder-time", "05:45")
	if out := runCmd(t, cliPath, env, "settings", "--list"); !strings.Contains(out, "05:45") {
		t.Errorf("settings not saved:\n%s", out)
	}

	if out := runCmd(t, cliPath, env, "day", "2026-03-21"); !strings.Contains(out, "RACE: Half") {
		t.Errorf("day output missing race:\n%s", out)
	}

	t.Log("Logging workouts...")
	runCmd(t, cliPath, env, "log", "2026-02-16", "completed")
	runCmd(t, cliPath, env, "log", "2026-02-17", "partial", "--note", "cut short")
	out := runCmd(t, cliPath, env, "history", "--from", "2026-02-16", "--to", "2026-02-22")
	if !strings.Contains(out, "cut short") {
		t.Errorf("history missing note:\n%s", out)
	}

	runCmd(t, cliPath, env, "unlog", "2026-02-16")
	if out := runCmd(t, cliPath, env, "history", "--from", "2026-02-16", "--to", "2026-02-16"); strings.Contains(out, "completed") {
		t.Errorf("unlogged day still listed:\n%s", out)
	}

	t.Log("Backing up...")
	runCmd(t, cliPath, env, "backup", "create")
	if out := runCmd(t, cliPath, env, "backup", "list"); !strings.Contains(out, "trainlog-") {
		t.Errorf("backup list empty:\n%s", out)
	}

	out = runCmd(t, cliPath, env, "export", "--format", "json")
	var doc struct {
		Weeks    []json.RawMessage `json:"weeks"`
		Workouts []json.RawMessage `json:"workouts"`
	}
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("export is not JSON: %v\n%s", err, out)
	}
	if len(doc.Weeks) == 0 || len(doc.Workouts) == 0 {
		t.Errorf("export is empty: %d weeks, %d workouts", len(doc.Weeks), len(doc.Workouts))
	}

	runCmd(t, cliPath, env, "validate")
	runCmd(t, cliPath, env, "doctor")
	if out := runCmd(t, cliPath, env, "remind", "2026-02-17", "--dry-run"); !strings.Contains(out, "W1") {
		t.Errorf("reminder text = %q", out)
	}
}

func runCmd(t *testing.T, path string, env []string, args ...string) string {
	t.Helper()
	cmd := exec.Command(path, args...)
	cmd.Env = env
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("Command %s %v failed: %v\nOutput: %s", path, args, err, out)
	}
	return string(out)
}
