//go:build !windows

package doctor

import (
	"os"
	"os/exec"
	"os/signal"
	"syscall"
)

func resetTerminal() {
	// stty operates on its stdin, which exec gives /dev/null by default
	cmd := exec.Command("stty", "sane")
	cmd.Stdin = os.Stdin
	cmd.Run()
}

func setupInterruptHandler() {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		println("\nInterrupted")
		os.Exit(1)
	}()
}
