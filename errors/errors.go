package errors

import (
	"fmt"
	"strings"
)

// Process-wide errors abort the run before any device has been touched.
// Per-device errors are caught at the state machine boundary and folded
// into that device's result so the rest of the batch can proceed.

type ValidationError struct {
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("Invalid devices input: %s", e.Reason)
}

type MissingToolError struct {
	Tools []string
}

func (e MissingToolError) Error() string {
	return fmt.Sprintf("Missing required tools: %s", strings.Join(e.Tools, ", "))
}

type PermissionError struct{}

func (e PermissionError) Error() string {
	return "This program must be run as root. Use sudo or --no-root-check to skip this check (not recommended)"
}

type TopologyError struct {
	Device string
	Cause  error
}

func (e TopologyError) Error() string {
	return fmt.Sprintf("Resolving storage topology for '%s': %s", e.Device, e.Cause.Error())
}

func (e TopologyError) Unwrap() error {
	return e.Cause
}

type ExecutionError struct {
	Tool       string
	ExitStatus int
	Stderr     string
}

func (e ExecutionError) Error() string {
	msg := fmt.Sprintf("Running %s: exit status %d", e.Tool, e.ExitStatus)
	stderr := strings.TrimSpace(e.Stderr)
	if stderr != "" {
		msg = fmt.Sprintf("%s: %s", msg, stderr)
	}
	return msg
}

type VerificationError struct {
	MountPoint string
	Before     uint64
	After      uint64
}

func (e VerificationError) Error() string {
	return fmt.Sprintf("Filesystem at '%s' reports %d bytes after resizing, smaller than %d bytes before", e.MountPoint, e.After, e.Before)
}
