package application

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kclwrap/kclwrap/internal/domain"
)

func TestFormatService_SuccessNamesFile(t *testing.T) {
	runner := &stubRunner{}
	svc := NewFormatService(runner)

	result, err := svc.Format("main.k")
	require.NoError(t, err)
	assert.Equal(t, "✅ File formatted: main.k", result)
	assert.Equal(t, []string{"main.k"}, runner.formatCalls)
}

func TestFormatService_IsIdempotent(t *testing.T) {
	// Formatting an already-canonical file yields the same message.
	runner := &stubRunner{}
	svc := NewFormatService(runner)

	first, err := svc.Format("main.k")
	require.NoError(t, err)
	second, err := svc.Format("main.k")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestFormatService_FailureCarriesToolError(t *testing.T) {
	runner := &stubRunner{formatErr: &domain.ToolError{ExitCode: 1, Stderr: "unexpected token"}}
	svc := NewFormatService(runner)

	_, err := svc.Format("broken.k")
	var toolErr *domain.ToolError
	require.ErrorAs(t, err, &toolErr)
	assert.Equal(t, "unexpected token", toolErr.Stderr)
}

func TestFormatService_LaunchFailureSurfaces(t *testing.T) {
	runner := &stubRunner{formatErr: &domain.LaunchError{Tool: "kcl", Err: errors.New("not found")}}
	svc := NewFormatService(runner)

	_, err := svc.Format("main.k")
	var launchErr *domain.LaunchError
	assert.ErrorAs(t, err, &launchErr)
}
