//go:build !linux

package hook

// New returns the default source for this platform: the portable
// gohook-based listener.
func New() Source {
	return NewPortable()
}
