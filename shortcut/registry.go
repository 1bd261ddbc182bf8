package shortcut

// registry holds definitions in registration order, which is the order
// they are evaluated and fired in. Not locked itself; the engine
// serializes all access.
type registry struct {
	defs []*definition
	next Handle
}

func newRegistry() *registry {
	return &registry{next: 1}
}

func (r *registry) add(d *definition) Handle {
	d.handle = r.next
	r.next++
	r.defs = append(r.defs, d)
	return d.handle
}

func (r *registry) remove(h Handle) *definition {
	for i, d := range r.defs {
		if d.handle == h {
			r.defs = append(r.defs[:i], r.defs[i+1:]...)
			return d
		}
	}
	return nil
}
