package main

import (
	"fmt"
	"io"
	"time"
)

// EventSink receives engine lifecycle and fire notifications.
// The TUI and the headless console printer both implement it.
type EventSink interface {
	ListenerReady(backend string)
	KeyEvent(kind, key string)
	Fired(label string, at time.Time)
	ListenerStopped()
}

// tuiSink forwards events to the bubbletea program.
type tuiSink struct{}

func (tuiSink) ListenerReady(backend string) { tuiSend(ListenerReadyMsg{Backend: backend}) }

func (tuiSink) KeyEvent(kind, key string) { tuiSend(KeyEventMsg{Kind: kind, Key: key}) }

func (tuiSink) Fired(label string, at time.Time) { tuiSend(FiredMsg{Label: label, At: at}) }

func (tuiSink) ListenerStopped() { tuiSend(ListenerStoppedMsg{}) }

// logSink prints events as plain lines, for headless and test runs.
type logSink struct {
	w       io.Writer
	verbose bool
}

func newLogSink(w io.Writer, verbose bool) *logSink {
	return &logSink{w: w, verbose: verbose}
}

func (s *logSink) ListenerReady(backend string) {
	fmt.Fprintf(s.w, "listening (backend: %s)\n", backend)
}

func (s *logSink) KeyEvent(kind, key string) {
	if s.verbose {
		fmt.Fprintf(s.w, "%s  %s %s\n", time.Now().Format("15:04:05.000"), kind, key)
	}
}

func (s *logSink) Fired(label string, at time.Time) {
	fmt.Fprintf(s.w, "FIRE %s  %s\n", at.Format("15:04:05.000"), label)
}

func (s *logSink) ListenerStopped() {
	fmt.Fprintln(s.w, "event stream ended")
}
