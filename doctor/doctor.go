// Package doctor runs interactive checks that the host system can
// observe global keyboard input and match shortcuts on it.
package doctor

import (
	"fmt"
	"runtime"
	"time"

	"github.com/micmonay/keybd_event"

	"keychord/hook"
	"keychord/keys"
	"keychord/shortcut"
)

// Run executes the diagnostic checks against src and returns an exit
// code (0=all pass, 1=any fail). The injection check is advisory and
// never fails the run.
func Run(src hook.Source) int {
	resetTerminal()
	setupInterruptHandler()

	fmt.Println("keychord doctor - interactive system diagnostics")
	fmt.Println("================================================")

	allPass := true

	if !checkAccess(src) {
		allPass = false
	}
	if !checkEngine() {
		allPass = false
	}
	if allPass {
		events, ok := checkLiveKeys(src)
		if !ok {
			allPass = false
		} else {
			checkInjection(events)
			src.Stop()
			resetTerminal()
		}
	}

	fmt.Println()
	if allPass {
		fmt.Println("All checks passed!")
	} else {
		fmt.Println("Some checks failed. See details above.")
	}

	if allPass {
		return 0
	}
	return 1
}

func checkAccess(src hook.Source) bool {
	fmt.Println()
	fmt.Println("[1/4] Event source access")

	msg, err := src.Diagnose()
	if err != nil {
		fmt.Printf("  FAIL: %v\n", err)
		return false
	}
	fmt.Printf("  PASS: %s\n", msg)
	return true
}

func checkEngine() bool {
	fmt.Println()
	fmt.Println("[2/4] Matching engine self-test")

	fake := hook.NewFake()
	eng := shortcut.New(fake)
	fired := make(chan struct{}, 1)
	if _, err := eng.RegisterSuccession(keys.KeyLeftShift, 300*time.Millisecond, func() { fired <- struct{}{} }); err != nil {
		fmt.Printf("  FAIL: register: %v\n", err)
		return false
	}
	if err := eng.Start(); err != nil {
		fmt.Printf("  FAIL: start: %v\n", err)
		return false
	}
	defer eng.Stop()

	fake.SimPress(keys.KeyLeftShift)
	fake.SimRelease(keys.KeyLeftShift)
	time.Sleep(50 * time.Millisecond)
	fake.SimPress(keys.KeyLeftShift)
	fake.SimRelease(keys.KeyLeftShift)

	select {
	case <-fired:
		fmt.Println("  PASS: double press detected on simulated input")
		return true
	case <-time.After(2 * time.Second):
		fmt.Println("  FAIL: engine did not fire on a simulated double press")
		return false
	}
}

func checkLiveKeys(src hook.Source) (<-chan hook.Event, bool) {
	fmt.Println()
	fmt.Println("[3/4] Live key detection")
	fmt.Println("Press any key...")

	events, err := src.Start()
	if err != nil {
		fmt.Printf("  FAIL: could not start source: %v\n", err)
		return nil, false
	}

	deadline := time.After(10 * time.Second)
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				fmt.Println("  FAIL: event stream ended unexpectedly")
				return nil, false
			}
			if ev.Kind != hook.KindPress {
				continue
			}
			fmt.Printf("  PASS: saw %s\n", ev.Key)
			// Live key capture can leave the terminal in raw mode
			resetTerminal()
			return events, true
		case <-deadline:
			fmt.Println("  FAIL: timeout waiting for a key press")
			src.Stop()
			resetTerminal()
			return nil, false
		}
	}
}

func checkInjection(events <-chan hook.Event) {
	fmt.Println()
	fmt.Println("[4/4] Key injection round-trip (advisory)")

	kb, err := keybd_event.NewKeyBonding()
	if err != nil {
		fmt.Printf("  SKIP: cannot open injector: %v\n", err)
		if runtime.GOOS == "linux" {
			fmt.Println("        (writing to /dev/uinput usually needs root or a udev rule)")
		}
		return
	}
	if runtime.GOOS == "linux" {
		// uinput devices need a moment to register
		time.Sleep(2 * time.Second)
	}

	kb.SetKeys(keybd_event.VK_F6)
	if err := kb.Launching(); err != nil {
		fmt.Printf("  SKIP: injection failed: %v\n", err)
		return
	}

	deadline := time.After(3 * time.Second)
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				fmt.Println("  SKIP: event stream ended before the injected key arrived")
				return
			}
			if ev.Kind == hook.KindPress && ev.Key == keys.KeyF6 {
				fmt.Println("  PASS: injected f6 observed by the listener")
				return
			}
		case <-deadline:
			fmt.Println("  SKIP: injected f6 not observed (injection and capture may use different devices)")
			return
		}
	}
}
