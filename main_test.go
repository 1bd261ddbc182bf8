package main

import (
	"slices"
	"sync"
	"testing"
	"time"

	"keychord/beep"
	"keychord/hook"
	"keychord/keys"
	"keychord/shortcut"
)

type recordingSink struct {
	mu    sync.Mutex
	fires []string
}

func (s *recordingSink) ListenerReady(backend string) {}

func (s *recordingSink) KeyEvent(kind, key string) {}

func (s *recordingSink) Fired(label string, at time.Time) {
	s.mu.Lock()
	s.fires = append(s.fires, label)
	s.mu.Unlock()
}

func (s *recordingSink) ListenerStopped() {}

func (s *recordingSink) fired() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.fires)
}

func TestStringList(t *testing.T) {
	var l stringList
	if err := l.Set("a+b"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := l.Set("c"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if got := []string(l); !slices.Equal(got, []string{"a+b", "c"}) {
		t.Fatalf("values = %v", got)
	}
	if got := l.String(); got != "a+b,c" {
		t.Fatalf("String() = %q", got)
	}
}

func TestApplyDemoDefaults(t *testing.T) {
	cfg := engineConfig{}
	if !applyDemoDefaults(&cfg) {
		t.Fatal("expected demo defaults for empty config")
	}
	if len(cfg.combos) == 0 || len(cfg.doubles) == 0 {
		t.Fatalf("demo defaults missing: %+v", cfg)
	}

	cfg = engineConfig{combos: []string{"leftctrl+c"}}
	if applyDemoDefaults(&cfg) {
		t.Fatal("demo defaults applied over explicit config")
	}
	if len(cfg.doubles) != 0 {
		t.Fatalf("doubles modified: %v", cfg.doubles)
	}
}

func TestRegisterShortcuts(t *testing.T) {
	beep.Disable()
	eng := shortcut.New(hook.NewFake(), shortcut.WithSynchronousActions())
	cfg := engineConfig{
		combos:     []string{"ctrl+shift+p"},
		doubles:    []string{"leftshift@250ms", "a"},
		defTimeout: 300 * time.Millisecond,
	}

	labels, err := registerShortcuts(eng, cfg, &recordingSink{})
	if err != nil {
		t.Fatalf("registerShortcuts: %v", err)
	}

	want := []string{
		"leftctrl+leftshift+p",
		"leftshift x2 (250ms)",
		"a x2 (300ms)",
	}
	if !slices.Equal(labels, want) {
		t.Fatalf("labels = %v, want %v", labels, want)
	}
	if got := eng.Stats().Shortcuts; got != 3 {
		t.Fatalf("registered %d shortcuts, want 3", got)
	}
}

func TestRegisterShortcutsBadSpec(t *testing.T) {
	cases := []engineConfig{
		{combos: []string{"nope+a"}},
		{combos: []string{""}},
		{doubles: []string{"nope"}},
		{doubles: []string{"a@fast"}},
	}
	for _, cfg := range cases {
		cfg.defTimeout = 300 * time.Millisecond
		eng := shortcut.New(hook.NewFake(), shortcut.WithSynchronousActions())
		if _, err := registerShortcuts(eng, cfg, &recordingSink{}); err == nil {
			t.Errorf("config %+v: expected error", cfg)
		}
	}
}

func TestShortcutFiresThroughSink(t *testing.T) {
	beep.Disable()
	fake := hook.NewFake()
	eng := shortcut.New(fake, shortcut.WithSynchronousActions())
	sink := &recordingSink{}

	cfg := engineConfig{combos: []string{"leftmeta+s"}, defTimeout: 300 * time.Millisecond}
	if _, err := registerShortcuts(eng, cfg, sink); err != nil {
		t.Fatalf("registerShortcuts: %v", err)
	}
	if err := eng.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	defer eng.Stop()

	fake.SimPress(keys.KeyLeftMeta)
	fake.SimPress(keys.KeyS)

	deadline := time.Now().Add(2 * time.Second)
	for len(sink.fired()) == 0 {
		if time.Now().After(deadline) {
			t.Fatal("fire not observed")
		}
		time.Sleep(5 * time.Millisecond)
	}
	if got := sink.fired(); got[0] != "leftmeta+s" {
		t.Fatalf("fired label = %q, want %q", got[0], "leftmeta+s")
	}
}

func TestNewSourceUnknownBackend(t *testing.T) {
	if _, _, err := newSource("x11"); err == nil {
		t.Fatal("expected error for unknown backend")
	}
}

func TestNewSourceGohook(t *testing.T) {
	src, name, err := newSource("gohook")
	if err != nil {
		t.Fatalf("newSource: %v", err)
	}
	if src == nil || name != "gohook" {
		t.Fatalf("src=%v name=%q", src, name)
	}
}
