package server

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-ps"
)

// ErrAlreadyRunning is returned when another daemon process is found.
// Two daemons would arm and ring every alarm twice.
var ErrAlreadyRunning = errors.New("another alarmd instance is running")

// ensureSingleInstance fails when a process with this executable name is running.
func ensureSingleInstance() error {
	self, err := os.Executable()
	if err != nil {
		return fmt.Errorf("resolve executable: %w", err)
	}

	processList, err := ps.Processes()
	if err != nil {
		return fmt.Errorf("list processes: %w", err)
	}

	if pid, found := findInstance(processList, filepath.Base(self), os.Getpid()); found {
		return fmt.Errorf("%w: pid %d", ErrAlreadyRunning, pid)
	}

	return nil
}

// findInstance returns the first process other than self running executable.
func findInstance(processList []ps.Process, executable string, self int) (int, bool) {
	for _, process := range processList {
		if process.Pid() == self {
			continue
		}

		if process.Executable() == executable {
			return process.Pid(), true
		}
	}

	return 0, false
}
