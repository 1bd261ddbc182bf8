//go:build linux

package main

import "keychord/hook"

const defaultBackendName = "evdev"

func newEvdevSource() (hook.Source, error) {
	return hook.New(), nil
}
