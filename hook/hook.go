// Package hook delivers global keyboard press/release events from
// platform backends behind a common Source interface. Backends observe
// all keyboard activity regardless of window focus; they never suppress
// or modify the underlying events.
package hook

import (
	"time"

	"keychord/keys"
)

// Kind classifies a key transition.
type Kind uint8

const (
	// KindPress is a key going down.
	KindPress Kind = iota
	// KindRelease is a key coming up.
	KindRelease
	// KindOther covers transitions the engine ignores, such as OS
	// auto-repeat while a key is held.
	KindOther
)

func (k Kind) String() string {
	switch k {
	case KindPress:
		return "press"
	case KindRelease:
		return "release"
	default:
		return "other"
	}
}

// Event is one observed key transition. When is the backend's timestamp
// and is informational; shortcut timing uses the engine clock.
type Event struct {
	Kind Kind
	Key  keys.Key
	When time.Time
}

// Source is a stream of global keyboard events.
//
// Start subscribes to the platform hook and returns the event channel;
// the channel closes when the source is stopped or the platform hook
// dies. Stop is safe to call more than once. Diagnose reports whether
// the backend can observe input on this machine, with a remedy in the
// error when it cannot.
type Source interface {
	Start() (<-chan Event, error)
	Stop() error
	Diagnose() (string, error)
}
