package domain

// ToolRunner invokes the external kcl binary. Calls block until the
// child process exits; there is no timeout, so a hung tool hangs the
// operation.
type ToolRunner interface {
	// Run executes file with the run subcommand and returns captured
	// stdout. Stdout may be empty when the tool wrote to an output
	// path instead. Failures are *LaunchError or *ToolError.
	Run(file, format, output string, definitions []string) (string, error)
	// Format rewrites file in canonical style in place.
	Format(file string) error
}

// ProjectScanner discovers KCL files under a directory root.
type ProjectScanner interface {
	Scan(dir string, excludePaths ...string) (*ScanResult, error)
}

// ScanResult holds the files discovered under RootPath. KCLFiles are
// relative to RootPath, in walk order.
type ScanResult struct {
	RootPath string   `json:"root_path"`
	KCLFiles []string `json:"kcl_files"`
}

// ConfigLoader loads the project configuration for a directory.
type ConfigLoader interface {
	Load(dir string) (ProjectConfig, error)
}

// GitInfo exposes git worktree metadata for changed-files validation.
type GitInfo interface {
	IsGitRepo(dir string) bool
	ChangedFiles(dir string) ([]string, error)
}
