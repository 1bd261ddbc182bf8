// Package shutdown delivers OS termination signals, with the right
// signal set per platform.
package shutdown

import "os"

// Wait blocks until an interrupt or termination signal arrives and
// returns it.
func Wait() os.Signal {
	ch := make(chan os.Signal, 1)
	notify(ch)
	return <-ch
}
