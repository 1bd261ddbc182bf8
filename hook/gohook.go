package hook

import (
	"fmt"
	"runtime"
	"sync"

	gohook "github.com/robotn/gohook"
)

// gohookSource adapts robotn/gohook's global hook. It works on X11,
// macOS, and Windows; only one instance can run per process because the
// underlying hook is global.
type gohookSource struct {
	mu      sync.Mutex
	events  chan Event
	stop    chan struct{}
	started bool
}

// NewPortable returns the gohook-backed source. On Linux prefer New,
// which reads evdev directly and also covers Wayland sessions.
func NewPortable() Source {
	return &gohookSource{}
}

func (g *gohookSource) Start() (<-chan Event, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.started {
		return nil, fmt.Errorf("gohook source already started")
	}
	raw := gohook.Start()
	g.stop = make(chan struct{})
	g.events = make(chan Event, 64)
	g.started = true
	go g.translate(raw)
	return g.events, nil
}

func (g *gohookSource) translate(raw chan gohook.Event) {
	defer close(g.events)
	for {
		select {
		case <-g.stop:
			gohook.End()
			return
		case ev, ok := <-raw:
			if !ok {
				return
			}
			out, keep := translateGohook(ev)
			if !keep {
				continue
			}
			select {
			case g.events <- out:
			case <-g.stop:
				gohook.End()
				return
			}
		}
	}
}

// translateGohook keeps keyboard transitions and drops everything else
// (mouse, hook lifecycle). Auto-repeat arrives as KeyHold and maps to
// KindOther: a held key repeating is not a new press.
func translateGohook(ev gohook.Event) (Event, bool) {
	switch ev.Kind {
	case gohook.KeyDown:
		return Event{Kind: KindPress, Key: gohookKey(ev.Rawcode), When: ev.When}, true
	case gohook.KeyUp:
		return Event{Kind: KindRelease, Key: gohookKey(ev.Rawcode), When: ev.When}, true
	case gohook.KeyHold:
		return Event{Kind: KindOther, Key: gohookKey(ev.Rawcode), When: ev.When}, true
	default:
		return Event{}, false
	}
}

func (g *gohookSource) Stop() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.started {
		return nil
	}
	close(g.stop)
	g.started = false
	return nil
}

func (g *gohookSource) Diagnose() (string, error) {
	switch runtime.GOOS {
	case "darwin":
		return "global hook via gohook; needs Input Monitoring consent (System Settings > Privacy & Security)", nil
	case "linux":
		return "global hook via gohook (X11 record extension); on Wayland use the evdev backend instead", nil
	case "windows":
		return "global hook via gohook (WH_KEYBOARD_LL)", nil
	default:
		return "global hook via gohook", nil
	}
}
