package domain

import "fmt"

// LaunchError reports that the external tool could not be started at
// all (missing binary, permission denied). Kept distinct from
// ToolError so hosts can tell a missing dependency apart from invalid
// input.
type LaunchError struct {
	Tool string
	Err  error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("executing %s: %v", e.Tool, e.Err)
}

func (e *LaunchError) Unwrap() error { return e.Err }

// ToolError reports that the external tool ran and exited nonzero.
// Stderr carries the tool's standard-error text verbatim; it may be
// empty when the tool produced none.
type ToolError struct {
	ExitCode int
	Stderr   string
}

func (e *ToolError) Error() string {
	if e.Stderr == "" {
		return fmt.Sprintf("tool exited with status %d", e.ExitCode)
	}
	return e.Stderr
}

// DiscoveryError reports that file enumeration itself failed. It is
// fatal to a validation run; no per-file work happens after it.
type DiscoveryError struct {
	Dir string
	Err error
}

func (e *DiscoveryError) Error() string {
	return fmt.Sprintf("discovering KCL files in %s: %v", e.Dir, e.Err)
}

func (e *DiscoveryError) Unwrap() error { return e.Err }
