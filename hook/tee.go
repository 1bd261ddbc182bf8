package hook

// Tee wraps a Source so fn observes every event before it is forwarded.
// fn runs on the forwarding goroutine and must not block.
func Tee(src Source, fn func(Event)) Source {
	return &teeSource{inner: src, fn: fn}
}

type teeSource struct {
	inner Source
	fn    func(Event)
}

func (t *teeSource) Start() (<-chan Event, error) {
	in, err := t.inner.Start()
	if err != nil {
		return nil, err
	}
	out := make(chan Event, 64)
	go func() {
		defer close(out)
		for ev := range in {
			t.fn(ev)
			out <- ev
		}
	}()
	return out, nil
}

func (t *teeSource) Stop() error {
	return t.inner.Stop()
}

func (t *teeSource) Diagnose() (string, error) {
	return t.inner.Diagnose()
}
