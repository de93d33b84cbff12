package server

import (
	"fmt"
	"os"
	"runtime"

	"github.com/mitchellh/go-ps"
)

// baseServerExecutable is the binary name the guard looks for.
const baseServerExecutable = "emergency-server"

// errAlreadyRunning indicates a live server process was found.
var errAlreadyRunning = fmt.Errorf("%s is already running", baseServerExecutable)

// ensureSingleInstance scans the process table and fails when another server
// process is alive. Two servers would both claim ownership of the canonical
// phase, so the later one must not start.
func ensureSingleInstance() error {
	processes, err := ps.Processes()
	if err != nil {
		return fmt.Errorf("list processes: %w", err)
	}

	var (
		self   = os.Getpid()
		target = serverExecutable()
	)

	for _, process := range processes {
		if process.Pid() == self {
			continue
		}

		if process.Executable() == target {
			return errAlreadyRunning
		}
	}

	return nil
}

// serverExecutable returns the platform-specific server binary name.
func serverExecutable() string {
	if runtime.GOOS == "windows" {
		return baseServerExecutable + ".exe"
	}

	return baseServerExecutable
}
