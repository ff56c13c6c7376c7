//go:build e2e && unix

package main

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/creack/pty"
)

var binPath = "tftlookup_e2e"

const (
	KeyEnter = "\r"
	KeyCtrlC = "\x03"
	KeyTab   = "\t"
	KeyUp    = "\x1b[A"
	KeyDown  = "\x1b[B"
	KeyQuit  = "q"
)

// strips CSI, OSC, charset and keypad sequences plus carriage returns
var ansiRe = regexp.MustCompile(
	`(?:\x1b\[[0-9;?]*[ -/]*[@-~])|` +
		`(?:\x1b\][^\x07]*\x07)|` +
		`(?:\x1b[\(\)][A-Za-z])|` +
		`(?:\x1b=|\x1b>)|` +
		`\r`,
)

// TUITestFramework drives one app process through a PTY and records
// everything it writes
type TUITestFramework struct {
	t         *testing.T
	pty       *os.File
	cmd       *exec.Cmd
	workspace string

	mu  sync.Mutex
	out bytes.Buffer
}

func NewTUITest(t *testing.T) *TUITestFramework {
	return &TUITestFramework{t: t}
}

// StartApp launches the binary on a 120x40 PTY with HOME set to the workspace
func (tf *TUITestFramework) StartApp(args ...string) error {
	tf.cmd = exec.Command(binPath, args...)
	tf.cmd.Env = append(os.Environ(),
		"TERM=xterm-256color",
		"LC_ALL=C",
		"LANG=C",
		"HOME="+tf.workspace,
		"XDG_CONFIG_HOME="+filepath.Join(tf.workspace, ".config"),
		"TFTLOOKUP_LOG_FILE="+filepath.Join(tf.workspace, "tftlookup.log"),
	)

	f, err := pty.StartWithSize(tf.cmd, &pty.Winsize{Rows: 40, Cols: 120})
	if err != nil {
		return fmt.Errorf("failed to start app in pty: %w", err)
	}
	tf.pty = f

	go tf.read()
	return nil
}

func (tf *TUITestFramework) read() {
	buf := make([]byte, 8192)
	for {
		n, err := tf.pty.Read(buf)
		if n > 0 {
			tf.mu.Lock()
			tf.out.Write(buf[:n])
			tf.mu.Unlock()
		}
		if err != nil {
			return
		}
	}
}

func (tf *TUITestFramework) SendKeys(keys string) error {
	tf.t.Helper()
	_, err := tf.pty.Write([]byte(keys))
	return err
}

func (tf *TUITestFramework) SendCtrlC() error { return tf.SendKeys(KeyCtrlC) }
func (tf *TUITestFramework) PressQuit() error { return tf.SendKeys(KeyQuit) }
func (tf *TUITestFramework) Enter() error     { return tf.SendKeys(KeyEnter) }
func (tf *TUITestFramework) Down() error      { return tf.SendKeys(KeyDown) }
func (tf *TUITestFramework) Up() error        { return tf.SendKeys(KeyUp) }
func (tf *TUITestFramework) Tab() error       { return tf.SendKeys(KeyTab) }

// Type sends text one rune at a time so each arrives as its own key
func (tf *TUITestFramework) Type(text string) error {
	tf.t.Helper()
	for _, r := range text {
		if err := tf.SendKeys(string(r)); err != nil {
			return err
		}
		time.Sleep(10 * time.Millisecond)
	}
	return nil
}

// Ready waits for the first frame
func (tf *TUITestFramework) Ready() bool {
	return tf.OutputContainsPlain("TFT Item Lookup", 5*time.Second)
}

func (tf *TUITestFramework) SeePlain(text string) bool {
	return tf.OutputContainsPlain(text, 3*time.Second)
}

// Quit leaves the search field and presses q
func (tf *TUITestFramework) Quit() error {
	if err := tf.Tab(); err != nil {
		return err
	}
	return tf.PressQuit()
}

func (tf *TUITestFramework) OutputContainsPlain(text string, timeout time.Duration) bool {
	return tf.WaitFor(func(s string) bool { return containsPlain(s, text) }, timeout)
}

// WaitFor polls the output until pred holds or the timeout passes
func (tf *TUITestFramework) WaitFor(pred func(string) bool, timeout time.Duration) bool {
	return tf.WaitForE(pred, timeout, "") == nil
}

// WaitForE is WaitFor with the tail of the output in the error
func (tf *TUITestFramework) WaitForE(pred func(string) bool, timeout time.Duration, failMsg string) error {
	deadline := time.Now().Add(timeout)
	for !pred(tf.Snapshot()) {
		if time.Now().After(deadline) {
			tail := tf.SnapshotPlain()
			if len(tail) > 4096 {
				tail = tail[len(tail)-4096:]
			}
			return fmt.Errorf("%s\n--- tail ---\n%s", failMsg, tail)
		}
		time.Sleep(25 * time.Millisecond)
	}
	return nil
}

func (tf *TUITestFramework) Snapshot() string {
	tf.mu.Lock()
	defer tf.mu.Unlock()
	return tf.out.String()
}

func (tf *TUITestFramework) SnapshotPlain() string {
	return ansiRe.ReplaceAllString(tf.Snapshot(), "")
}

// Cleanup closes the PTY, kills the app if still running and removes the workspace
func (tf *TUITestFramework) Cleanup() {
	if tf.pty != nil {
		_ = tf.pty.Close()
		tf.pty = nil
	}
	if tf.cmd != nil && tf.cmd.Process != nil {
		_ = tf.cmd.Process.Kill()
		_, _ = tf.cmd.Process.Wait()
		tf.cmd = nil
	}
	if tf.workspace != "" {
		_ = os.RemoveAll(tf.workspace)
		tf.workspace = ""
	}
}

func containsPlain(s, text string) bool {
	return strings.Contains(ansiRe.ReplaceAllString(s, ""), text)
}
