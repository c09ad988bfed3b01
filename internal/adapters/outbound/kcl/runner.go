package kcl

import (
	"bytes"
	"errors"
	"os/exec"

	"github.com/kclwrap/kclwrap/internal/domain"
)

// Runner implements domain.ToolRunner by shelling out to the kcl
// binary. Each call spawns a fresh child process and blocks until it
// exits; stdout and stderr are captured separately.
type Runner struct {
	tool string
}

// New creates a Runner for the given kcl binary name or path.
func New(tool string) *Runner {
	if tool == "" {
		tool = domain.DefaultTool
	}
	return &Runner{tool: tool}
}

// Run executes file via `kcl run` and returns captured stdout. When
// output is set the tool writes there instead and stdout is typically
// empty.
func (r *Runner) Run(file, format, output string, definitions []string) (string, error) {
	inv := domain.Invocation{
		Subcommand:  "run",
		File:        file,
		Format:      format,
		Output:      output,
		Definitions: definitions,
	}
	stdout, err := r.invoke(inv)
	if err != nil {
		return "", err
	}
	return stdout, nil
}

// Format rewrites file in canonical style via `kcl fmt`.
func (r *Runner) Format(file string) error {
	_, err := r.invoke(domain.Invocation{Subcommand: "fmt", File: file})
	return err
}

// invoke launches the tool and maps the outcome onto the domain error
// taxonomy: start failure becomes *domain.LaunchError, nonzero exit
// becomes *domain.ToolError with verbatim stderr.
func (r *Runner) invoke(inv domain.Invocation) (string, error) {
	cmd := exec.Command(r.tool, inv.Args()...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", &domain.ToolError{
				ExitCode: exitErr.ExitCode(),
				Stderr:   stderr.String(),
			}
		}
		return "", &domain.LaunchError{Tool: r.tool, Err: err}
	}

	return stdout.String(), nil
}
