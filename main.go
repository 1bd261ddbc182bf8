package main

import (
	"flag"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"
	"sync"
	"time"

	"keychord/beep"
	"keychord/doctor"
	"keychord/hook"
	"keychord/keys"
	"keychord/log"
	"keychord/shortcut"
	"keychord/shutdown"
)

var version = "dev"

var activeEngine *shortcut.Engine
var shutdownOnce sync.Once

// stringList collects the values of a repeatable flag.
type stringList []string

func (l *stringList) String() string { return strings.Join(*l, ",") }

func (l *stringList) Set(v string) error {
	*l = append(*l, v)
	return nil
}

// engineConfig is the flag-derived shortcut setup, shared by the live
// and test-mode paths.
type engineConfig struct {
	combos     []string
	doubles    []string
	defTimeout time.Duration
	edge       bool
	queue      int
}

// applyDemoDefaults installs a demo shortcut set when the user gave
// none, so a bare invocation has something to show.
func applyDemoDefaults(cfg *engineConfig) bool {
	if len(cfg.combos) > 0 || len(cfg.doubles) > 0 {
		return false
	}
	cfg.combos = []string{"leftmeta+s"}
	cfg.doubles = []string{"leftshift"}
	return true
}

func sessionStats(st shortcut.Stats) log.SessionStats {
	return log.SessionStats{
		Pressed:        st.Pressed,
		Released:       st.Released,
		Ignored:        st.Ignored,
		Fired:          st.Fired,
		ActionsRun:     st.ActionsRun,
		ActionsDropped: st.ActionsDropped,
		ActionPanics:   st.ActionPanics,
		Shortcuts:      st.Shortcuts,
	}
}

func gracefulShutdown() {
	shutdownOnce.Do(func() {
		if activeEngine != nil {
			activeEngine.Stop()
			log.SessionEnd(sessionStats(activeEngine.Stats()))
		}
		log.Close()
		tuiMu.Lock()
		p := tuiProgram
		tuiMu.Unlock()
		if p != nil {
			p.Quit()
		}
		os.Exit(0)
	})
}

// newSource builds the event source for the chosen backend and returns
// the resolved backend name for display.
func newSource(backend string) (hook.Source, string, error) {
	switch backend {
	case "auto":
		return hook.New(), defaultBackendName, nil
	case "evdev":
		src, err := newEvdevSource()
		return src, "evdev", err
	case "gohook":
		return hook.NewPortable(), "gohook", nil
	default:
		return nil, "", fmt.Errorf("unknown backend %q (use auto, evdev, or gohook)", backend)
	}
}

// fireAction builds the action shared by all flag-registered shortcuts:
// notify the sink, append to the fires log, play the tick.
func fireAction(sink EventSink, label string) shortcut.Action {
	return func() {
		sink.Fired(label, time.Now())
		log.FireLine(label)
		beep.PlayFired()
	}
}

// registerShortcuts parses the -combo and -double specs and registers
// them on the engine. Returns the display labels in registration order.
func registerShortcuts(eng *shortcut.Engine, cfg engineConfig, sink EventSink) ([]string, error) {
	var labels []string
	var opts []shortcut.ComboOption
	if cfg.edge {
		opts = append(opts, shortcut.EdgeTriggered())
	}

	for _, spec := range cfg.combos {
		ks, err := keys.ParseCombo(spec)
		if err != nil {
			return nil, fmt.Errorf("-combo %q: %w", spec, err)
		}
		label := shortcut.ComboLabel(ks)
		if _, err := eng.RegisterCombination(ks, fireAction(sink, label), opts...); err != nil {
			return nil, fmt.Errorf("-combo %q: %w", spec, err)
		}
		labels = append(labels, label)
	}

	for _, spec := range cfg.doubles {
		k, timeout, err := keys.ParseSuccession(spec)
		if err != nil {
			return nil, fmt.Errorf("-double %q: %w", spec, err)
		}
		if timeout == 0 {
			timeout = cfg.defTimeout
		}
		label := shortcut.SuccessionLabel(k, timeout)
		if _, err := eng.RegisterSuccession(k, timeout, fireAction(sink, label)); err != nil {
			return nil, fmt.Errorf("-double %q: %w", spec, err)
		}
		labels = append(labels, label)
	}

	return labels, nil
}

func run() {
	var comboFlags, doubleFlags stringList
	flag.Var(&comboFlags, "combo", "Combination shortcut, e.g. 'leftctrl+leftshift+p' (repeatable)")
	flag.Var(&doubleFlags, "double", "Double-press shortcut, e.g. 'leftshift@300ms' (repeatable)")
	backendFlag := flag.String("backend", "auto", "Event source backend: auto, evdev, or gohook")
	headlessFlag := flag.Bool("headless", false, "Run without the terminal UI")
	beepFlag := flag.Bool("beep", true, "Audible tick when a shortcut fires")
	edgeFlag := flag.Bool("edge", false, "Combinations fire once per hold instead of on every press")
	queueFlag := flag.Int("queue", 1024, "Action queue capacity")
	doubleTimeoutFlag := flag.Duration("double-timeout", 300*time.Millisecond, "Default double-press window for -double specs without @duration")
	verboseFlag := flag.Bool("verbose", false, "Log every key event")
	versionFlag := flag.Bool("version", false, "Print version and exit")
	doctorFlag := flag.Bool("doctor", false, "Run system diagnostics and exit")
	crashFlag := flag.Bool("crash", false, "Trigger synthetic panic for testing crash logging")
	logPathFlag := flag.String("logpath", "", "log directory path (default: OS-specific location, use ./ for current dir)")
	profileFlag := flag.String("profile", "", "Enable pprof profiling server (e.g., :6060 or localhost:6060)")
	testFlag := flag.Bool("test", false, "Test mode (headless, stdin-driven)")
	flag.Parse()

	// Resolve log directory early
	logPath, err := log.ResolveDir(*logPathFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to resolve log directory: %v\n", err)
		os.Exit(1)
	}
	log.SetDir(logPath)

	if err := log.EnsureDir(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not create log directory: %v\n", err)
	}

	crashPath := filepath.Join(log.Dir(), "crash_log.txt")
	crashFile, err := os.OpenFile(crashPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err == nil {
		fmt.Fprintf(crashFile, "\n=== Session %s [pid=%d] ===\n", time.Now().Format("2006-01-02 15:04:05"), os.Getpid())
		debug.SetCrashOutput(crashFile, debug.CrashOptions{})
	}

	if *profileFlag != "" {
		go func() {
			fmt.Fprintf(os.Stderr, "pprof server listening on http://%s/debug/pprof/\n", *profileFlag)
			if err := http.ListenAndServe(*profileFlag, nil); err != nil {
				fmt.Fprintf(os.Stderr, "pprof server error: %v\n", err)
			}
		}()
	}

	if *crashFlag {
		panic("TEST CRASH: synthetic panic to verify crash logging")
	}

	if *versionFlag {
		fmt.Printf("keychord %s\n", version)
		os.Exit(0)
	}

	if *doctorFlag {
		src, _, err := newSource(*backendFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		os.Exit(doctor.Run(src))
	}

	cfg := engineConfig{
		combos:     comboFlags,
		doubles:    doubleFlags,
		defTimeout: *doubleTimeoutFlag,
		edge:       *edgeFlag,
		queue:      *queueFlag,
	}
	demo := applyDemoDefaults(&cfg)

	if !*beepFlag {
		beep.Disable()
	}

	if *testFlag {
		runTestMode(cfg)
		return
	}

	if err := log.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not init logging: %v\n", err)
	}

	src, backendName, err := newSource(*backendFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	log.SessionStart(version, backendName)
	if demo {
		log.Info("no shortcuts configured, demo set registered")
	}

	go beep.Init()

	var sink EventSink
	if *headlessFlag {
		sink = newLogSink(os.Stdout, *verboseFlag)
	} else {
		sink = tuiSink{}
	}

	verbose := *verboseFlag
	teed := hook.Tee(src, func(ev hook.Event) {
		sink.KeyEvent(ev.Kind.String(), ev.Key.String())
		if verbose {
			log.KeyEvent(ev.Kind.String(), ev.Key.String())
		}
	})

	eng := shortcut.New(teed, shortcut.WithQueueSize(cfg.queue))
	activeEngine = eng

	labels, err := registerShortcuts(eng, cfg, sink)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Start listening before the TUI takes the terminal so a failure
	// (no keyboard device, missing permissions) prints cleanly.
	if err := eng.Start(); err != nil {
		log.Errorf("engine start: %v", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	go func() {
		shutdown.Wait()
		log.Info("interrupt received, shutting down")
		gracefulShutdown()
	}()

	if *headlessFlag {
		tuiReadyOnce.Do(func() { close(tuiReady) })
		if demo {
			fmt.Println("No shortcuts given; using the demo set:")
		} else {
			fmt.Println("Shortcuts:")
		}
		for _, l := range labels {
			fmt.Printf("  %s\n", l)
		}
	} else {
		tuiMu.Lock()
		tuiProgram = NewTUIProgram(eng, labels, backendName)
		tuiMu.Unlock()

		go func() {
			if _, err := tuiProgram.Run(); err != nil {
				log.Errorf("TUI error: %v", err)
				os.Exit(1)
			}
			gracefulShutdown()
		}()

		<-tuiReady
	}

	sink.ListenerReady(backendName)
	beep.PlayReady()

	// Surface the end of the event stream (device unplugged, hook died).
	go func() {
		for eng.Running() {
			time.Sleep(500 * time.Millisecond)
		}
		sink.ListenerStopped()
	}()

	select {}
}

func main() {
	run()
}
