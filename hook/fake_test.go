package hook

import (
	"errors"
	"testing"
	"time"

	gohook "github.com/robotn/gohook"

	"keychord/keys"
)

func waitEvent(t *testing.T, ch <-chan Event) Event {
	t.Helper()
	select {
	case ev, ok := <-ch:
		if !ok {
			t.Fatal("event channel closed")
		}
		return ev
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")
	}
	return Event{}
}

func TestFakeDeliversEvents(t *testing.T) {
	f := NewFake()
	ch, err := f.Start()
	if err != nil {
		t.Fatalf("Start: %v", err)
	}

	f.SimPress(keys.KeyA)
	f.SimRelease(keys.KeyA)

	ev := waitEvent(t, ch)
	if ev.Kind != KindPress || ev.Key != keys.KeyA {
		t.Errorf("got %v %v, want press a", ev.Kind, ev.Key)
	}
	ev = waitEvent(t, ch)
	if ev.Kind != KindRelease || ev.Key != keys.KeyA {
		t.Errorf("got %v %v, want release a", ev.Kind, ev.Key)
	}
}

func TestFakeStartErr(t *testing.T) {
	f := NewFake()
	f.StartErr = errors.New("boom")
	if _, err := f.Start(); err == nil {
		t.Fatal("expected Start to fail")
	}
}

func TestFakeStopClosesChannel(t *testing.T) {
	f := NewFake()
	ch, err := f.Start()
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	f.Stop()
	f.Stop() // second stop must not panic

	select {
	case _, ok := <-ch:
		if ok {
			t.Fatal("expected closed channel, got event")
		}
	case <-time.After(time.Second):
		t.Fatal("channel not closed after Stop")
	}
}

func TestTeeObservesAndForwards(t *testing.T) {
	f := NewFake()
	var seen []Event
	src := Tee(f, func(ev Event) { seen = append(seen, ev) })

	ch, err := src.Start()
	if err != nil {
		t.Fatalf("Start: %v", err)
	}

	f.SimPress(keys.KeyB)
	ev := waitEvent(t, ch)
	if ev.Key != keys.KeyB {
		t.Errorf("forwarded key = %v, want b", ev.Key)
	}
	if len(seen) != 1 || seen[0].Key != keys.KeyB {
		t.Errorf("observer saw %v, want one press of b", seen)
	}

	src.Stop()
	select {
	case _, ok := <-ch:
		if ok {
			t.Fatal("expected closed channel after Stop")
		}
	case <-time.After(time.Second):
		t.Fatal("output not closed after Stop")
	}
}

func TestTranslateGohookKinds(t *testing.T) {
	tests := []struct {
		raw  uint8
		want Kind
		ok   bool
	}{
		{gohook.KeyDown, KindPress, true},
		{gohook.KeyUp, KindRelease, true},
		{gohook.KeyHold, KindOther, true},
		{gohook.MouseMove, 0, false},
	}
	for _, tt := range tests {
		ev, ok := translateGohook(gohook.Event{Kind: tt.raw, Rawcode: 0x41})
		if ok != tt.ok {
			t.Errorf("raw %d: ok = %v, want %v", tt.raw, ok, tt.ok)
			continue
		}
		if ok && ev.Kind != tt.want {
			t.Errorf("raw %d: kind = %v, want %v", tt.raw, ev.Kind, tt.want)
		}
	}
}
