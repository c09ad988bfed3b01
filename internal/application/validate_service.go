package application

import (
	"fmt"
	"path/filepath"

	"github.com/kclwrap/kclwrap/internal/domain"
)

// ValidateService validates every KCL file under a directory by
// running each one through the external tool, sequentially, and
// folding the outcomes into a report.
//
// Execution success stands in for validity: a file that evaluates
// cleanly is reported valid. This is an approximation inherited from
// the tool's lack of a dedicated check subcommand.
type ValidateService struct {
	scanner domain.ProjectScanner
	runner  domain.ToolRunner
	gitInfo domain.GitInfo
}

// NewValidateService creates a ValidateService with its outbound
// dependencies.
func NewValidateService(scanner domain.ProjectScanner, runner domain.ToolRunner, gitInfo domain.GitInfo) *ValidateService {
	return &ValidateService{scanner: scanner, runner: runner, gitInfo: gitInfo}
}

// Validate discovers *.k files under dir and validates each one.
// Discovery failure aborts the run; per-file failures are captured in
// the report and never stop the remaining files. When changedOnly is
// set, only files git reports as modified are validated.
func (s *ValidateService) Validate(dir string, excludePaths []string, changedOnly bool) (*domain.ValidationReport, error) {
	scan, err := s.scanner.Scan(dir, excludePaths...)
	if err != nil {
		return nil, err
	}

	files := scan.KCLFiles
	if changedOnly {
		files, err = s.filterChanged(dir, files)
		if err != nil {
			return nil, err
		}
	}

	report := &domain.ValidationReport{Dir: dir}
	for _, f := range files {
		// Fixed default format; run output is discarded, only the
		// exit status matters here.
		_, runErr := s.runner.Run(filepath.Join(scan.RootPath, f), domain.DefaultFormat, "", nil)
		report.Record(f, runErr)
	}

	return report, nil
}

func (s *ValidateService) filterChanged(dir string, files []string) ([]string, error) {
	changed, err := s.gitInfo.ChangedFiles(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving changed files: %w", err)
	}

	changedSet := make(map[string]bool, len(changed))
	for _, f := range changed {
		changedSet[filepath.ToSlash(f)] = true
	}

	var kept []string
	for _, f := range files {
		if changedSet[filepath.ToSlash(f)] {
			kept = append(kept, f)
		}
	}
	return kept, nil
}
