package shortcut

import (
	"runtime/debug"
	"sync"

	"keychord/log"
)

// invocation is one fired shortcut waiting for its action to run.
type invocation struct {
	label  string
	action Action
}

// runner executes actions on a single goroutine so that a slow or
// panicking action cannot stall event processing. The queue is
// bounded; when it is full new invocations are dropped and counted
// rather than blocking the dispatcher.
type runner struct {
	queue    chan invocation
	done     chan struct{}
	stats    *stats
	stopOnce sync.Once
}

func newRunner(size int, st *stats) *runner {
	r := &runner{
		queue: make(chan invocation, size),
		done:  make(chan struct{}),
		stats: st,
	}
	go r.loop()
	return r
}

func (r *runner) loop() {
	defer close(r.done)
	for inv := range r.queue {
		r.invoke(inv)
	}
}

func (r *runner) invoke(inv invocation) {
	defer func() {
		if v := recover(); v != nil {
			r.stats.actionPanics.Add(1)
			log.ActionPanic(inv.label, v, debug.Stack())
		}
	}()
	inv.action()
	r.stats.actionsRun.Add(1)
}

// enqueue never blocks. It reports whether the invocation was accepted.
func (r *runner) enqueue(inv invocation) bool {
	select {
	case r.queue <- inv:
		return true
	default:
		r.stats.actionsDropped.Add(1)
		log.DroppedAction(inv.label)
		return false
	}
}

// stop closes the queue and waits for already-queued actions to finish.
// The caller must guarantee no further enqueues.
func (r *runner) stop() {
	r.stopOnce.Do(func() { close(r.queue) })
	<-r.done
}
