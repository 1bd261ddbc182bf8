//go:build !linux

package main

import (
	"fmt"

	"keychord/hook"
)

const defaultBackendName = "gohook"

func newEvdevSource() (hook.Source, error) {
	return nil, fmt.Errorf("the evdev backend is only available on linux")
}
