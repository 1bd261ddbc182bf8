package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"keychord/beep"
	"keychord/hook"
	"keychord/keys"
	"keychord/log"
	"keychord/shortcut"
)

// runTestMode drives the engine from a stdin script instead of real
// input, so end-to-end behavior can be exercised without a keyboard.
//
// Commands, one per line:
//
//	PRESS <key>     feed a key press
//	RELEASE <key>   feed a key release
//	REPEAT <key>    feed an auto-repeat transition (ignored by the engine)
//	SLEEP <ms>      pause the script
//	STATS           print the engine counters
//	QUIT            stop and exit
//
// Blank lines and lines starting with # are skipped. Every fire prints
// a "FIRE ..." line to stdout for the harness to assert on.
func runTestMode(cfg engineConfig) {
	beep.Disable()

	if err := log.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not init logging: %v\n", err)
	}
	log.SessionStart(version, "fake")

	fake := hook.NewFake()
	sink := newLogSink(os.Stdout, true)

	teed := hook.Tee(fake, func(ev hook.Event) {
		sink.KeyEvent(ev.Kind.String(), ev.Key.String())
	})
	eng := shortcut.New(teed, shortcut.WithQueueSize(cfg.queue))
	activeEngine = eng

	labels, err := registerShortcuts(eng, cfg, sink)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	for _, l := range labels {
		fmt.Printf("REGISTERED %s\n", l)
	}

	if err := eng.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("READY")

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		cmd, arg, _ := strings.Cut(line, " ")
		arg = strings.TrimSpace(arg)

		switch cmd {
		case "PRESS", "RELEASE", "REPEAT":
			k, ok := keys.FromName(arg)
			if !ok {
				fmt.Fprintf(os.Stderr, "unknown key %q\n", arg)
				continue
			}
			switch cmd {
			case "PRESS":
				fake.SimPress(k)
			case "RELEASE":
				fake.SimRelease(k)
			case "REPEAT":
				fake.SimOther(k)
			}
		case "SLEEP":
			ms, err := strconv.Atoi(arg)
			if err != nil {
				fmt.Fprintf(os.Stderr, "bad sleep %q\n", arg)
				continue
			}
			time.Sleep(time.Duration(ms) * time.Millisecond)
		case "STATS":
			st := eng.Stats()
			fmt.Printf("STATS pressed=%d released=%d ignored=%d fired=%d actions=%d dropped=%d\n",
				st.Pressed, st.Released, st.Ignored, st.Fired, st.ActionsRun, st.ActionsDropped)
		case "QUIT":
			finishTestMode(eng)
			return
		default:
			fmt.Fprintf(os.Stderr, "unknown command %q\n", cmd)
		}
	}
	finishTestMode(eng)
}

func finishTestMode(eng *shortcut.Engine) {
	// Give in-flight events a beat to reach the engine before stopping.
	time.Sleep(50 * time.Millisecond)
	eng.Stop()
	st := eng.Stats()
	fmt.Printf("DONE fired=%d actions=%d dropped=%d\n", st.Fired, st.ActionsRun, st.ActionsDropped)
	log.SessionEnd(sessionStats(st))
	log.Close()
}
