package models

// ActionOutcome records the result of running the configured command
// against exactly one matched entry. A failed action never aborts the
// remaining matches, so outcomes are collected rather than returned as
// errors.
type ActionOutcome struct {
	Path     string // Matched path the command ran against
	ExitCode int    // Exit code of the spawned process (0 on success)
	Err      error  // Spawn failure (command not found, permission denied)
}

// Failed reports whether the action failed to spawn or exited non-zero.
func (o ActionOutcome) Failed() bool {
	return o.Err != nil || o.ExitCode != 0
}
