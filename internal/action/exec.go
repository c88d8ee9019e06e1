package action

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/Karmanya03/Ferret/pkg/models"
	"github.com/google/shlex"
	"go.uber.org/zap"
)

// Placeholder is the token replaced with the matched path in the
// command template. When absent the path is appended as the final
// argument.
const Placeholder = "{}"

// Runner spawns the configured command once per matched entry,
// synchronously, so invocation order always equals traversal order.
type Runner struct {
	argv   []string
	logger *zap.Logger
}

// NewRunner parses the command template into argv. A template that
// cannot be tokenized is a fatal pre-traversal error.
func NewRunner(command string, logger *zap.Logger) (*Runner, error) {
	argv, err := shlex.Split(command)
	if err != nil {
		return nil, fmt.Errorf("invalid exec command %q: %w", command, err)
	}
	if len(argv) == 0 {
		return nil, fmt.Errorf("invalid exec command %q: empty command", command)
	}
	return &Runner{argv: argv, logger: logger}, nil
}

// Run executes the command against one match and returns its outcome.
// A spawn failure or non-zero exit belongs to this match alone; the
// caller keeps scanning.
func (r *Runner) Run(path string) models.ActionOutcome {
	argv := r.substitute(path)

	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	outcome := models.ActionOutcome{Path: path}
	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			outcome.ExitCode = exitErr.ExitCode()
		} else {
			outcome.Err = err
		}
	}

	if outcome.Failed() {
		r.logger.Warn("Exec action failed",
			zap.String("path", path),
			zap.Int("exit_code", outcome.ExitCode),
			zap.Error(outcome.Err))
	}
	return outcome
}

// substitute replaces the placeholder in every argv token that
// contains it, appending the path when no token does.
func (r *Runner) substitute(path string) []string {
	argv := make([]string, len(r.argv))
	replaced := false
	for i, arg := range r.argv {
		if strings.Contains(arg, Placeholder) {
			argv[i] = strings.ReplaceAll(arg, Placeholder, path)
			replaced = true
		} else {
			argv[i] = arg
		}
	}
	if !replaced {
		argv = append(argv, path)
	}
	return argv
}
