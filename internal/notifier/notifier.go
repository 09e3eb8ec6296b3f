// Package notifier delivers desktop notifications through the companion tray
// app. The tray app advertises itself with a lockfile holding
// "port|pid|secret" and accepts JSON posts on 127.0.0.1.
package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	ps "github.com/mitchellh/go-ps"

	"github.com/julianstephens/trainlog/internal/constants"
	"github.com/julianstephens/trainlog/internal/logger"
)

var (
	userConfigDirFunc = os.UserConfigDir
	findProcessFunc   = ps.FindProcess

	ErrTrayNotRunning = errors.New(constants.TrayAppExecutable + " is not running")
)

// Sender is anything that can put a line of text in front of the runner.
type Sender interface {
	Notify(ctx context.Context, text string) error
}

type Payload struct {
	Text       string `json:"text"`
	DurationMs uint32 `json:"duration_ms"`
}

type Notifier struct {
	client *http.Client
}

func New() *Notifier {
	return &Notifier{client: &http.Client{Timeout: 5 * time.Second}}
}

func (n *Notifier) Notify(ctx context.Context, text string) error {
	dir, err := TrayConfigDir()
	if err != nil {
		return err
	}
	tray, err := readLockfile(filepath.Join(dir, constants.NotifierLockfileName))
	if err != nil {
		return err
	}
	if err := verifyProcess(tray.pid); err != nil {
		return err
	}

	return n.post(ctx, "http://127.0.0.1:"+strconv.Itoa(tray.port), tray.secret, Payload{
		Text:       text,
		DurationMs: constants.NotificationDurationMs,
	})
}

// TrayConfigDir returns the directory holding the tray lockfile. The tray
// app's settings.json may point it somewhere else via lockfile_dir.
func TrayConfigDir() (string, error) {
	base, err := userConfigDirFunc()
	if err != nil {
		return "", fmt.Errorf("failed to get user config dir: %w", err)
	}
	dir := filepath.Join(base, constants.TrayAppIdentifier)

	data, err := os.ReadFile(filepath.Join(dir, "settings.json"))
	if err != nil {
		return dir, nil
	}
	var store struct {
		Settings struct {
			LockfileDir string `json:"lockfile_dir"`
		} `json:"settings"`
	}
	if err := json.Unmarshal(data, &store); err != nil {
		logger.Debug("ignoring unreadable tray settings", "error", err)
		return dir, nil
	}
	if store.Settings.LockfileDir != "" {
		return store.Settings.LockfileDir, nil
	}
	return dir, nil
}

type trayInfo struct {
	port   int
	pid    int
	secret string
}

func readLockfile(path string) (trayInfo, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return trayInfo{}, ErrTrayNotRunning
	}
	return parseLockfile(string(content))
}

func parseLockfile(content string) (trayInfo, error) {
	parts := strings.Split(strings.TrimSpace(content), "|")
	if len(parts) != 3 {
		return trayInfo{}, errors.New("lockfile is malformed")
	}

	port, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return trayInfo{}, errors.New("invalid port number in lockfile")
	}
	if port < 1 || port > 65535 {
		return trayInfo{}, fmt.Errorf("port number %d is outside valid range (1-65535)", port)
	}
	pid, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return trayInfo{}, errors.New("invalid process ID in lockfile")
	}
	secret := strings.TrimSpace(parts[2])
	if secret == "" {
		return trayInfo{}, errors.New("secret in lockfile is empty")
	}
	return trayInfo{port: port, pid: pid, secret: secret}, nil
}

// verifyProcess guards against a stale lockfile whose PID was reused.
func verifyProcess(pid int) error {
	proc, err := findProcessFunc(pid)
	if err != nil || proc == nil {
		return ErrTrayNotRunning
	}
	if !strings.HasPrefix(proc.Executable(), constants.TrayAppExecutable) {
		return fmt.Errorf("process with PID %d is not %s (is %s)", pid, constants.TrayAppExecutable, proc.Executable())
	}
	return nil
}

func (n *Notifier) post(ctx context.Context, url, secret string, payload Payload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(constants.NotifierSecretHeader, secret)

	res, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach %s: %w", constants.TrayAppExecutable, err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusOK {
		return nil
	}
	msg, _ := io.ReadAll(io.LimitReader(res.Body, 4096))
	return fmt.Errorf("notification failed with status %d: %s", res.StatusCode, strings.TrimSpace(string(msg)))
}
