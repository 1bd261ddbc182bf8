package log

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	diagLog   zerolog.Logger
	diagFile  *os.File
	firesFile *os.File
	logMu     sync.Mutex
	logReady  bool
	pid       int
	dir       string
)

// SessionStats summarizes one listening session for the session_end
// log line.
type SessionStats struct {
	Pressed        uint64
	Released       uint64
	Ignored        uint64
	Fired          uint64
	ActionsRun     uint64
	ActionsDropped uint64
	ActionPanics   uint64
	Shortcuts      int
}

func ResolveDir(flagPath string) (string, error) {
	// Priority 1: -logpath flag
	if flagPath != "" {
		if !filepath.IsAbs(flagPath) {
			wd, err := os.Getwd()
			if err != nil {
				return "", err
			}
			return filepath.Join(wd, flagPath), nil
		}
		return flagPath, nil
	}

	// Priority 2: KEYCHORD_LOG_PATH environment variable
	envPath := os.Getenv("KEYCHORD_LOG_PATH")
	if envPath != "" {
		if !filepath.IsAbs(envPath) {
			wd, err := os.Getwd()
			if err != nil {
				return "", err
			}
			return filepath.Join(wd, envPath), nil
		}
		return envPath, nil
	}

	// Priority 3: Default OS-specific location
	return getDefaultDir()
}

func SetDir(d string) {
	dir = d
}

func Dir() string {
	return dir
}

func EnsureDir() error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	return nil
}

func Init() error {
	logMu.Lock()
	defer logMu.Unlock()

	if err := EnsureDir(); err != nil {
		return err
	}

	pid = os.Getpid()

	var err error

	diagPath := filepath.Join(dir, "diagnostics_log.txt")
	diagFile, err = os.OpenFile(diagPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}

	firesPath := filepath.Join(dir, "fires_log.txt")
	firesFile, err = os.OpenFile(firesPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		diagFile.Close()
		return err
	}

	consoleWriter := zerolog.ConsoleWriter{
		Out:        diagFile,
		TimeFormat: "2006-01-02 15:04:05",
		NoColor:    true,
	}
	diagLog = zerolog.New(consoleWriter).With().Timestamp().Int("pid", pid).Logger()

	logReady = true
	return nil
}

func Close() {
	logMu.Lock()
	defer logMu.Unlock()
	if diagFile != nil {
		diagFile.Close()
		diagFile = nil
	}
	if firesFile != nil {
		firesFile.Close()
		firesFile = nil
	}
	logReady = false
}

func Info(msg string) {
	if logReady {
		diagLog.Info().Msg(msg)
	}
}

func Error(msg string) {
	if logReady {
		diagLog.Error().Msg(msg)
	}
}

func Errorf(format string, args ...any) {
	if logReady {
		diagLog.Error().Msg(fmt.Sprintf(format, args...))
	}
}

func Warn(msg string) {
	if logReady {
		diagLog.Warn().Msg(msg)
	}
}

func Warnf(format string, args ...any) {
	if logReady {
		diagLog.Warn().Msg(fmt.Sprintf(format, args...))
	}
}

func SessionStart(version, backend string) {
	if !logReady {
		return
	}
	diagLog.Info().
		Str("version", version).
		Str("backend", backend).
		Msg("session_start")
}

func SessionEnd(s SessionStats) {
	if !logReady {
		return
	}
	diagLog.Info().
		Uint64("pressed", s.Pressed).
		Uint64("released", s.Released).
		Uint64("ignored", s.Ignored).
		Uint64("fired", s.Fired).
		Uint64("actions_run", s.ActionsRun).
		Uint64("actions_dropped", s.ActionsDropped).
		Uint64("action_panics", s.ActionPanics).
		Int("shortcuts", s.Shortcuts).
		Msg("session_end")
}

func Registered(kind, label string) {
	if !logReady {
		return
	}
	diagLog.Info().
		Str("kind", kind).
		Str("shortcut", label).
		Msg("registered")
}

func Removed(label string) {
	if !logReady {
		return
	}
	diagLog.Info().Str("shortcut", label).Msg("removed")
}

func Fired(label string) {
	if !logReady {
		return
	}
	diagLog.Info().Str("shortcut", label).Msg("fired")
}

// FireLine appends one line to the fire history file, the plain-text
// record of every shortcut that fired.
func FireLine(label string) {
	if !logReady {
		return
	}
	logMu.Lock()
	defer logMu.Unlock()
	line := fmt.Sprintf("%s\t[%d]\t%s\n", time.Now().Format("2006-01-02 15:04:05"), pid, label)
	firesFile.WriteString(line)
}

func DroppedAction(label string) {
	if !logReady {
		return
	}
	diagLog.Warn().Str("shortcut", label).Msg("action_dropped")
}

func ActionPanic(label string, v any, stack []byte) {
	if !logReady {
		return
	}
	diagLog.Error().
		Str("shortcut", label).
		Interface("panic", v).
		Str("stack", string(stack)).
		Msg("action_panic")
}

func ListenStopped() {
	if !logReady {
		return
	}
	diagLog.Warn().Msg("listen_stopped")
}

func KeyEvent(kind, key string) {
	if !logReady {
		return
	}
	diagLog.Debug().
		Str("kind", kind).
		Str("key", key).
		Msg("key_event")
}
