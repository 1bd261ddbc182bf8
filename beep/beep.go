// Package beep plays short audio cues: a chirp when listening starts,
// a tick when a shortcut fires, a low double-beep on errors.
package beep

var disabled bool

// Disable turns every Play call into a no-op.
func Disable() { disabled = true }

const (
	sampleRate = 44100

	// Fired tick: high pitch, short
	firedFreq   = 1200
	firedVolume = 0.5
	firedDecay  = 60

	// Ready chirp: medium pitch, slightly longer
	readyFreq   = 900
	readyVolume = 0.5
	readyDecay  = 40

	// Error beep: low pitch double-beep
	errorFreq   = 350
	errorVolume = 0.6
	errorDecay  = 30
)
