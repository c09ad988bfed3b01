package application

import (
	"fmt"

	"github.com/kclwrap/kclwrap/internal/domain"
)

// FormatService rewrites KCL files in canonical style via the external
// tool.
type FormatService struct {
	runner domain.ToolRunner
}

// NewFormatService creates a FormatService.
func NewFormatService(runner domain.ToolRunner) *FormatService {
	return &FormatService{runner: runner}
}

// Format formats file in place and returns a confirmation naming it.
// Formatting an already-canonical file succeeds with the same message.
func (s *FormatService) Format(file string) (string, error) {
	if err := s.runner.Format(file); err != nil {
		return "", fmt.Errorf("formatting KCL: %w", err)
	}
	return fmt.Sprintf("✅ File formatted: %s", file), nil
}
