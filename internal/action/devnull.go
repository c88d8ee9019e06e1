package action

import (
	"fmt"
	"os"
	"os/exec"
)

// RunSilenced executes argv with stdout discarded. Stderr is also
// discarded unless showErrors is set. Returns the command's exit code
// so the caller can propagate it.
func RunSilenced(argv []string, showErrors bool) (int, error) {
	if len(argv) == 0 {
		return 1, fmt.Errorf("no command provided")
	}

	// A nil writer on exec.Cmd connects the stream to the null device.
	cmd := exec.Command(argv[0], argv[1:]...)
	if showErrors {
		cmd.Stderr = os.Stderr
	}

	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return exitErr.ExitCode(), nil
		}
		return 1, fmt.Errorf("failed to execute command: %w", err)
	}
	return 0, nil
}
