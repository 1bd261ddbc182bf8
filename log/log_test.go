package log

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func setupLogDir(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	SetDir(tmp)
	t.Cleanup(func() { Close(); SetDir("") })
	return tmp
}

func TestResolveDirFlag(t *testing.T) {
	got, err := ResolveDir("/tmp/mylog")
	if err != nil {
		t.Fatal(err)
	}
	if got != "/tmp/mylog" {
		t.Errorf("got %q, want /tmp/mylog", got)
	}
}

func TestResolveDirFlagRelative(t *testing.T) {
	got, err := ResolveDir("logs")
	if err != nil {
		t.Fatal(err)
	}
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	want := filepath.Join(wd, "logs")
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestResolveDirEnv(t *testing.T) {
	t.Setenv("KEYCHORD_LOG_PATH", "/tmp/keychord-env-log")
	got, err := ResolveDir("")
	if err != nil {
		t.Fatal(err)
	}
	if got != "/tmp/keychord-env-log" {
		t.Errorf("got %q, want /tmp/keychord-env-log", got)
	}
}

func TestResolveDirDefault(t *testing.T) {
	t.Setenv("KEYCHORD_LOG_PATH", "")
	got, err := ResolveDir("")
	if err != nil {
		t.Fatal(err)
	}
	if got == "" {
		t.Error("expected non-empty default directory")
	}
}

func TestInitCreatesFiles(t *testing.T) {
	tmp := setupLogDir(t)

	if err := Init(); err != nil {
		t.Fatal(err)
	}

	for _, name := range []string{"diagnostics_log.txt", "fires_log.txt"} {
		path := filepath.Join(tmp, name)
		if _, err := os.Stat(path); err != nil {
			t.Errorf("%s not created: %v", name, err)
		}
	}
}

func TestFireLine(t *testing.T) {
	tmp := setupLogDir(t)

	if err := Init(); err != nil {
		t.Fatal(err)
	}

	FireLine("leftmeta+s")

	data, err := os.ReadFile(filepath.Join(tmp, "fires_log.txt"))
	if err != nil {
		t.Fatal(err)
	}
	line := string(data)
	if !strings.Contains(line, "leftmeta+s") {
		t.Errorf("fires_log.txt missing shortcut, got: %q", line)
	}
	// format: "2006-01-02 15:04:05\t[pid]\tlabel\n"
	if !strings.Contains(line, "\t") {
		t.Errorf("expected tab-separated format, got: %q", line)
	}
}

func TestFiredWritesDiagnostics(t *testing.T) {
	tmp := setupLogDir(t)

	if err := Init(); err != nil {
		t.Fatal(err)
	}

	Fired("leftshift x2 (300ms)")

	data, err := os.ReadFile(filepath.Join(tmp, "diagnostics_log.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "fired") {
		t.Errorf("diagnostics_log.txt missing fired event, got: %q", string(data))
	}
}

func TestHelpersNoopBeforeInit(t *testing.T) {
	// None of these may panic or write when logging is not set up.
	Fired("x")
	FireLine("x")
	Registered("combination", "x")
	DroppedAction("x")
	ActionPanic("x", "boom", nil)
	ListenStopped()
	KeyEvent("press", "a")
	SessionStart("dev", "evdev")
	SessionEnd(SessionStats{})
}

func TestCloseIdempotent(t *testing.T) {
	setupLogDir(t)

	if err := Init(); err != nil {
		t.Fatal(err)
	}
	Close()
	Close() // should not panic
}
