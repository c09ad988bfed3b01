package scanner

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/kclwrap/kclwrap/internal/domain"
)

// kclExt is the configuration-language file extension we discover.
const kclExt = ".k"

var skipDirs = map[string]bool{
	".git":     true,
	".kclvm":   true,
	"external": true,
	"vendor":   true,
}

// FileScanner implements domain.ProjectScanner by walking the
// filesystem. Files come back in walk order; validation reports
// preserve that order.
type FileScanner struct{}

func New() *FileScanner {
	return &FileScanner{}
}

func (s *FileScanner) Scan(dir string, excludePaths ...string) (*domain.ScanResult, error) {
	absPath, err := filepath.Abs(dir)
	if err != nil {
		return nil, &domain.DiscoveryError{Dir: dir, Err: err}
	}

	// Merge extra excludes with built-in skip dirs.
	extraSkip := make(map[string]bool, len(excludePaths))
	for _, p := range excludePaths {
		extraSkip[strings.TrimSuffix(p, "/")] = true
	}

	result := &domain.ScanResult{RootPath: absPath}

	err = filepath.WalkDir(absPath, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			if skipDirs[d.Name()] || extraSkip[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}

		if !d.Type().IsRegular() || !strings.HasSuffix(d.Name(), kclExt) {
			return nil
		}

		relPath, _ := filepath.Rel(absPath, path)
		result.KCLFiles = append(result.KCLFiles, relPath)
		return nil
	})
	if err != nil {
		return nil, &domain.DiscoveryError{Dir: dir, Err: err}
	}

	return result, nil
}
