package application

import (
	"fmt"

	"github.com/kclwrap/kclwrap/internal/domain"
)

// RunService executes a single KCL file through the external tool and
// composes the host-facing success marker.
type RunService struct {
	runner domain.ToolRunner
}

// NewRunService creates a RunService.
func NewRunService(runner domain.ToolRunner) *RunService {
	return &RunService{runner: runner}
}

// Run executes file and returns the success marker: the output path
// when one was requested (the tool wrote there instead of stdout),
// otherwise the captured stdout.
func (s *RunService) Run(file, format, output string, definitions []string) (string, error) {
	if format == "" {
		format = domain.DefaultFormat
	}

	stdout, err := s.runner.Run(file, format, output, definitions)
	if err != nil {
		return "", fmt.Errorf("executing KCL: %w", err)
	}

	if output != "" {
		return "✅ " + output, nil
	}
	return "✅ " + stdout, nil
}
