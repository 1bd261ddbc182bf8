package shortcut

import (
	"runtime"
	"sync"
	"testing"
)

func TestRunnerPreservesOrder(t *testing.T) {
	var st stats
	r := newRunner(16, &st)

	var mu sync.Mutex
	var got []int
	for i := 0; i < 5; i++ {
		i := i
		r.enqueue(invocation{label: "x", action: func() {
			mu.Lock()
			got = append(got, i)
			mu.Unlock()
		}})
	}
	r.stop()

	if len(got) != 5 {
		t.Fatalf("ran %d actions, want 5", len(got))
	}
	for i, v := range got {
		if v != i {
			t.Fatalf("order = %v, want ascending", got)
		}
	}
	if n := st.actionsRun.Load(); n != 5 {
		t.Errorf("actionsRun = %d, want 5", n)
	}
}

func TestRunnerRecoversPanic(t *testing.T) {
	var st stats
	r := newRunner(4, &st)

	ran := false
	r.enqueue(invocation{label: "bad", action: func() { panic("boom") }})
	r.enqueue(invocation{label: "good", action: func() { ran = true }})
	r.stop()

	if !ran {
		t.Fatal("action after panic never ran")
	}
	if n := st.actionPanics.Load(); n != 1 {
		t.Errorf("actionPanics = %d, want 1", n)
	}
	if n := st.actionsRun.Load(); n != 1 {
		t.Errorf("actionsRun = %d, want 1 (panicking action does not count)", n)
	}
}

func TestRunnerDropsWhenFull(t *testing.T) {
	var st stats
	r := newRunner(1, &st)

	gate := make(chan struct{})
	r.enqueue(invocation{label: "block", action: func() { <-gate }})
	// wait for the worker to take the blocking action so queue capacity
	// is deterministic
	for len(r.queue) > 0 {
		runtime.Gosched()
	}

	if !r.enqueue(invocation{label: "queued", action: func() {}}) {
		t.Fatal("second enqueue should be accepted")
	}
	if r.enqueue(invocation{label: "dropped", action: func() {}}) {
		t.Fatal("third enqueue should be dropped")
	}

	close(gate)
	r.stop()

	if n := st.actionsDropped.Load(); n != 1 {
		t.Errorf("actionsDropped = %d, want 1", n)
	}
	if n := st.actionsRun.Load(); n != 2 {
		t.Errorf("actionsRun = %d, want 2", n)
	}
}

func TestRunnerStopIdempotent(t *testing.T) {
	var st stats
	r := newRunner(4, &st)
	r.stop()
	r.stop() // should not panic
}
