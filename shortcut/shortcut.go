// Package shortcut detects global keyboard shortcuts in a stream of
// key press and release events.
//
// Two kinds of shortcut exist: a combination fires when all of its
// keys are held at the moment any key is pressed, and a succession
// fires when its key is pressed twice in a row within a timeout.
// Definitions are evaluated on every press, combinations before
// successions, each group in registration order. Release events only
// update the held set and never fire anything.
package shortcut

import (
	"fmt"
	"strings"
	"time"

	"keychord/keys"
)

// Action is the payload of a shortcut. Actions run on a single worker
// goroutine in firing order, so a slow action delays later actions but
// never event processing itself.
type Action func()

// Handle identifies a registered shortcut for Remove.
type Handle uint64

type kind uint8

const (
	kindCombination kind = iota
	kindSuccession
)

type definition struct {
	handle Handle
	kind   kind
	label  string
	action Action

	// combination
	keys   []keys.Key
	keySet map[keys.Key]struct{}
	edge   bool
	armed  bool

	// succession
	key     keys.Key
	timeout time.Duration
}

// ComboOption adjusts how a combination fires.
type ComboOption func(*definition)

// EdgeTriggered makes a combination fire once per hold: after firing
// it stays quiet until one of its keys is released and the full set is
// held again. The default is to fire on every press that finds the
// set held, including presses of unrelated keys.
func EdgeTriggered() ComboOption {
	return func(d *definition) { d.edge = true }
}

// ComboLabel is the display name a combination gets in logs and fire
// notifications, e.g. "leftctrl+leftshift+p".
func ComboLabel(ks []keys.Key) string {
	names := make([]string, len(ks))
	for i, k := range ks {
		names[i] = k.String()
	}
	return strings.Join(names, "+")
}

// SuccessionLabel is the display name a succession gets, e.g.
// "leftshift x2 (300ms)".
func SuccessionLabel(k keys.Key, timeout time.Duration) string {
	return fmt.Sprintf("%s x2 (%s)", k, timeout)
}
