package shortcut

import (
	"time"

	"keychord/keys"
)

// keyState tracks which keys are currently held and the most recent
// press. Pure bookkeeping; the engine decides what fires.
type keyState struct {
	held    map[keys.Key]struct{}
	lastKey keys.Key
	lastAt  time.Time
	hasLast bool
}

func newKeyState() *keyState {
	return &keyState{held: make(map[keys.Key]struct{})}
}

// press marks k held and records it as the latest press. It returns
// the previous latest press, which is what succession matching
// compares against.
func (s *keyState) press(k keys.Key, at time.Time) (prevKey keys.Key, prevAt time.Time, ok bool) {
	prevKey, prevAt, ok = s.lastKey, s.lastAt, s.hasLast
	s.held[k] = struct{}{}
	s.lastKey, s.lastAt, s.hasLast = k, at, true
	return prevKey, prevAt, ok
}

// release removes k from the held set. Releasing a key that is not
// held is a no-op, and the latest-press pair is untouched: a release
// does not interrupt a double press.
func (s *keyState) release(k keys.Key) {
	delete(s.held, k)
}

func (s *keyState) holdsAll(set map[keys.Key]struct{}) bool {
	for k := range set {
		if _, ok := s.held[k]; !ok {
			return false
		}
	}
	return true
}
