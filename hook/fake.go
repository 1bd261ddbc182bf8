package hook

import (
	"sync"
	"time"

	"keychord/keys"
)

// Fake is a scripted Source for tests and the engine self-test.
type Fake struct {
	ch   chan Event
	once sync.Once

	// StartErr, when set, is returned by Start to simulate a
	// subscription failure.
	StartErr error
}

func NewFake() *Fake {
	return &Fake{ch: make(chan Event, 64)}
}

func (f *Fake) Start() (<-chan Event, error) {
	if f.StartErr != nil {
		return nil, f.StartErr
	}
	return f.ch, nil
}

func (f *Fake) Stop() error {
	f.once.Do(func() { close(f.ch) })
	return nil
}

func (f *Fake) Diagnose() (string, error) {
	return "fake source", nil
}

func (f *Fake) SimPress(k keys.Key) {
	f.ch <- Event{Kind: KindPress, Key: k, When: time.Now()}
}

func (f *Fake) SimRelease(k keys.Key) {
	f.ch <- Event{Kind: KindRelease, Key: k, When: time.Now()}
}

// SimOther feeds an ignorable transition, like OS auto-repeat.
func (f *Fake) SimOther(k keys.Key) {
	f.ch <- Event{Kind: KindOther, Key: k, When: time.Now()}
}
