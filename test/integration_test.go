//go:build integration

package test_test

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

var testBinary string

func TestMain(m *testing.M) {
	testBinary = os.Getenv("KEYCHORD_TEST_BIN")
	if testBinary == "" {
		fmt.Fprintln(os.Stderr, "KEYCHORD_TEST_BIN not set; build the binary and point the variable at it")
		os.Exit(1)
	}
	os.Exit(m.Run())
}

func cmds(parts ...string) string {
	return strings.Join(parts, "\n") + "\n"
}

// runKeychord runs the binary in -test mode with the given stdin script
// and returns its combined output plus the log directory.
func runKeychord(t *testing.T, stdin string, args ...string) (output, logDir string) {
	t.Helper()
	logDir = t.TempDir()
	cmdArgs := append([]string{"-test", "-logpath", logDir}, args...)

	cmd := exec.Command(testBinary, cmdArgs...)
	cmd.Stdin = strings.NewReader(stdin)
	cmd.Env = os.Environ()

	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("keychord exited with error: %v\noutput: %s", err, out)
	}
	return string(out), logDir
}

func readLog(t *testing.T, logDir, filename string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(logDir, filename))
	if err != nil {
		if os.IsNotExist(err) {
			return ""
		}
		t.Fatalf("failed to read %s: %v", filename, err)
	}
	return string(data)
}

func requireFired(t *testing.T, output string, n int) {
	t.Helper()
	want := fmt.Sprintf("DONE fired=%d ", n)
	if !strings.Contains(output, want) {
		t.Fatalf("expected %q in output:\n%s", want, output)
	}
}

func TestSuccessionFires(t *testing.T) {
	out, logDir := runKeychord(t,
		cmds("PRESS leftshift", "RELEASE leftshift", "PRESS leftshift", "RELEASE leftshift", "QUIT"),
		"-double", "leftshift@300ms")
	if !strings.Contains(out, "FIRE") || !strings.Contains(out, "leftshift x2 (300ms)") {
		t.Errorf("expected a fire line for the succession, output:\n%s", out)
	}
	requireFired(t, out, 1)

	fires := readLog(t, logDir, "fires_log.txt")
	if !strings.Contains(fires, "leftshift x2 (300ms)") {
		t.Errorf("fire missing from fires_log.txt: %q", fires)
	}
}

func TestSuccessionExpires(t *testing.T) {
	out, _ := runKeychord(t,
		cmds("PRESS leftshift", "RELEASE leftshift", "SLEEP 250", "PRESS leftshift", "RELEASE leftshift", "QUIT"),
		"-double", "leftshift@100ms")
	requireFired(t, out, 0)
}

func TestCombinationFires(t *testing.T) {
	out, _ := runKeychord(t,
		cmds("PRESS leftmeta", "PRESS s", "RELEASE s", "RELEASE leftmeta", "QUIT"),
		"-combo", "leftmeta+s")
	if !strings.Contains(out, "FIRE") || !strings.Contains(out, "leftmeta+s") {
		t.Errorf("expected a fire line for the combination, output:\n%s", out)
	}
	requireFired(t, out, 1)
}

func TestCombinationRefiresWhileHeld(t *testing.T) {
	out, _ := runKeychord(t,
		cmds("PRESS leftmeta", "PRESS s", "PRESS x", "QUIT"),
		"-combo", "leftmeta+s")
	requireFired(t, out, 2)
}

func TestEdgeTriggeredFiresOncePerHold(t *testing.T) {
	out, _ := runKeychord(t,
		cmds("PRESS leftmeta", "PRESS s", "PRESS x", "QUIT"),
		"-combo", "leftmeta+s", "-edge")
	requireFired(t, out, 1)
}

func TestAutoRepeatIgnored(t *testing.T) {
	out, _ := runKeychord(t,
		cmds("PRESS a", "REPEAT a", "REPEAT a", "RELEASE a", "PRESS a", "SLEEP 100", "STATS", "QUIT"),
		"-double", "a@300ms")
	if !strings.Contains(out, "ignored=2") {
		t.Errorf("expected ignored=2 in stats, output:\n%s", out)
	}
	requireFired(t, out, 1)
}

func TestDemoSetRegistered(t *testing.T) {
	out, _ := runKeychord(t, cmds("QUIT"))
	if !strings.Contains(out, "REGISTERED leftmeta+s") {
		t.Errorf("demo combination missing, output:\n%s", out)
	}
	if !strings.Contains(out, "REGISTERED leftshift x2 (300ms)") {
		t.Errorf("demo succession missing, output:\n%s", out)
	}
}

func TestSessionLogged(t *testing.T) {
	_, logDir := runKeychord(t,
		cmds("PRESS leftmeta", "PRESS s", "QUIT"),
		"-combo", "leftmeta+s")
	diag := readLog(t, logDir, "diagnostics_log.txt")
	if !strings.Contains(diag, "session_start") {
		t.Error("expected session_start in diagnostics")
	}
	if !strings.Contains(diag, "session_end") {
		t.Error("expected session_end in diagnostics")
	}
	if !strings.Contains(diag, "fired") {
		t.Error("expected a fired entry in diagnostics")
	}
}
