package shortcut

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"keychord/hook"
	"keychord/keys"
	"keychord/log"
)

type stats struct {
	pressed        atomic.Uint64
	released       atomic.Uint64
	ignored        atomic.Uint64
	fired          atomic.Uint64
	actionsRun     atomic.Uint64
	actionsDropped atomic.Uint64
	actionPanics   atomic.Uint64
}

// Stats is a snapshot of the engine counters.
type Stats struct {
	Pressed        uint64
	Released       uint64
	Ignored        uint64
	Fired          uint64
	ActionsRun     uint64
	ActionsDropped uint64
	ActionPanics   uint64
	Shortcuts      int
}

// Engine matches a stream of key events against registered shortcuts.
// One mutex guards the held-key state and the registry together, so
// each event is processed atomically with respect to concurrent
// registrations: a registration takes effect for the next event, never
// mid-scan.
type Engine struct {
	src hook.Source

	mu  sync.Mutex
	reg *registry
	st  *keyState

	// now stamps presses as they are processed. Overridable in tests.
	now func() time.Time

	syncRun bool
	qsize   int
	run     *runner

	started    bool
	stopped    bool
	stop       chan struct{}
	workerDone chan struct{}

	running atomic.Bool
	stats   stats
}

// Option configures an Engine.
type Option func(*Engine)

// WithQueueSize sets the action queue capacity. The default is 1024.
func WithQueueSize(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.qsize = n
		}
	}
}

// WithSynchronousActions runs actions inline on the dispatch goroutine
// instead of the action worker. A slow action then stalls event
// processing and a panicking action kills the dispatcher. Meant for
// tests and short-lived tools.
func WithSynchronousActions() Option {
	return func(e *Engine) { e.syncRun = true }
}

// New creates an engine reading from src. Register shortcuts, then
// call Start.
func New(src hook.Source, opts ...Option) *Engine {
	e := &Engine{
		src:   src,
		reg:   newRegistry(),
		st:    newKeyState(),
		now:   time.Now,
		qsize: 1024,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// RegisterCombination fires action whenever a key press finds every
// key in ks held. Duplicate keys are collapsed. Safe to call while the
// engine is running.
func (e *Engine) RegisterCombination(ks []keys.Key, action Action, opts ...ComboOption) (Handle, error) {
	if len(ks) == 0 {
		return 0, ErrNoKeys
	}
	if action == nil {
		return 0, ErrNilAction
	}

	set := make(map[keys.Key]struct{}, len(ks))
	uniq := make([]keys.Key, 0, len(ks))
	for _, k := range ks {
		if _, ok := set[k]; ok {
			continue
		}
		set[k] = struct{}{}
		uniq = append(uniq, k)
	}

	d := &definition{
		kind:   kindCombination,
		keys:   uniq,
		keySet: set,
		armed:  true,
		action: action,
		label:  ComboLabel(uniq),
	}
	for _, opt := range opts {
		opt(d)
	}

	e.mu.Lock()
	h := e.reg.add(d)
	e.mu.Unlock()
	log.Registered("combination", d.label)
	return h, nil
}

// RegisterSuccession fires action when key is pressed twice in a row
// within timeout. Any other key pressed in between breaks the pair.
// Safe to call while the engine is running.
func (e *Engine) RegisterSuccession(key keys.Key, timeout time.Duration, action Action) (Handle, error) {
	if timeout <= 0 {
		return 0, ErrTimeout
	}
	if action == nil {
		return 0, ErrNilAction
	}

	d := &definition{
		kind:    kindSuccession,
		key:     key,
		timeout: timeout,
		action:  action,
		label:   SuccessionLabel(key, timeout),
	}

	e.mu.Lock()
	h := e.reg.add(d)
	e.mu.Unlock()
	log.Registered("succession", d.label)
	return h, nil
}

// Remove unregisters a shortcut. It reports whether the handle was
// found.
func (e *Engine) Remove(h Handle) bool {
	e.mu.Lock()
	d := e.reg.remove(h)
	e.mu.Unlock()
	if d == nil {
		return false
	}
	log.Removed(d.label)
	return true
}

// Start begins consuming events on a background worker and returns
// immediately. It fails if the source cannot start. Engines are
// single-use: after Stop, Start fails.
func (e *Engine) Start() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.started {
		return ErrAlreadyStarted
	}

	events, err := e.src.Start()
	if err != nil {
		return fmt.Errorf("starting event source: %w", err)
	}

	if !e.syncRun {
		e.run = newRunner(e.qsize, &e.stats)
	}

	e.started = true
	e.stop = make(chan struct{})
	e.workerDone = make(chan struct{})
	e.running.Store(true)
	go e.dispatch(events)
	return nil
}

// Stop halts the event source, waits for the worker to exit and for
// already-queued actions to finish. Safe to call more than once.
func (e *Engine) Stop() {
	e.mu.Lock()
	if !e.started || e.stopped {
		e.mu.Unlock()
		return
	}
	e.stopped = true
	e.mu.Unlock()

	e.src.Stop()
	close(e.stop)
	<-e.workerDone
	if e.run != nil {
		e.run.stop()
	}
}

// Running reports whether the worker is consuming events. It turns
// false after Stop, or on its own if the event source dies.
func (e *Engine) Running() bool {
	return e.running.Load()
}

// Stats returns a snapshot of the engine counters.
func (e *Engine) Stats() Stats {
	e.mu.Lock()
	n := len(e.reg.defs)
	e.mu.Unlock()
	return Stats{
		Pressed:        e.stats.pressed.Load(),
		Released:       e.stats.released.Load(),
		Ignored:        e.stats.ignored.Load(),
		Fired:          e.stats.fired.Load(),
		ActionsRun:     e.stats.actionsRun.Load(),
		ActionsDropped: e.stats.actionsDropped.Load(),
		ActionPanics:   e.stats.actionPanics.Load(),
		Shortcuts:      n,
	}
}

func (e *Engine) dispatch(events <-chan hook.Event) {
	defer close(e.workerDone)
	defer e.running.Store(false)
	for {
		select {
		case <-e.stop:
			return
		case ev, ok := <-events:
			if !ok {
				// only unexpected death is worth a warning
				select {
				case <-e.stop:
				default:
					log.ListenStopped()
				}
				return
			}
			e.process(ev)
		}
	}
}

func (e *Engine) process(ev hook.Event) {
	switch ev.Kind {
	case hook.KindPress:
		e.stats.pressed.Add(1)
		e.pressKey(ev.Key)
	case hook.KindRelease:
		e.stats.released.Add(1)
		e.releaseKey(ev.Key)
	default:
		// auto-repeats and other noise
		e.stats.ignored.Add(1)
	}
}

// pressKey is the matching algorithm. Combinations are checked against
// the held set including the new key; successions compare the new
// press against the one before it. Matches are collected under the
// lock and handed to the action path after it is released.
func (e *Engine) pressKey(k keys.Key) {
	now := e.now()

	e.mu.Lock()
	prevKey, prevAt, hasPrev := e.st.press(k, now)

	var matched []*definition
	for _, d := range e.reg.defs {
		if d.kind != kindCombination {
			continue
		}
		if !e.st.holdsAll(d.keySet) {
			continue
		}
		if d.edge {
			if !d.armed {
				continue
			}
			d.armed = false
		}
		matched = append(matched, d)
	}
	for _, d := range e.reg.defs {
		if d.kind != kindSuccession {
			continue
		}
		if d.key != k || !hasPrev || prevKey != k {
			continue
		}
		if now.Sub(prevAt) <= d.timeout {
			matched = append(matched, d)
		}
	}
	e.mu.Unlock()

	for _, d := range matched {
		e.fire(d)
	}
}

func (e *Engine) releaseKey(k keys.Key) {
	e.mu.Lock()
	e.st.release(k)
	// an edge-triggered combination re-arms once a member key is let go
	for _, d := range e.reg.defs {
		if d.kind == kindCombination && d.edge && !d.armed {
			if _, ok := d.keySet[k]; ok {
				d.armed = true
			}
		}
	}
	e.mu.Unlock()
}

func (e *Engine) fire(d *definition) {
	e.stats.fired.Add(1)
	log.Fired(d.label)
	if e.syncRun {
		d.action()
		e.stats.actionsRun.Add(1)
		return
	}
	e.run.enqueue(invocation{label: d.label, action: d.action})
}
