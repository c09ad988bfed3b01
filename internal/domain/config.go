package domain

import "fmt"

const (
	// DefaultTool is the kcl binary resolved from PATH when the
	// project config does not override it.
	DefaultTool = "kcl"
	// DefaultFormat is the output format used when none is requested.
	DefaultFormat = "yaml"
)

// ValidFormats enumerates the output formats the kcl CLI accepts.
var ValidFormats = []string{"yaml", "json"}

// ProjectConfig holds project-level configuration loaded from .kclwrap.yaml.
type ProjectConfig struct {
	Tool         string   `yaml:"tool"          json:"tool,omitempty"`
	Format       string   `yaml:"format"        json:"format,omitempty"`
	ExcludePaths []string `yaml:"exclude_paths" json:"exclude_paths,omitempty"`
}

// DefaultConfig returns the configuration used when no .kclwrap.yaml
// exists.
func DefaultConfig() ProjectConfig {
	return ProjectConfig{Tool: DefaultTool, Format: DefaultFormat}
}

// WithDefaults returns c with unset fields replaced by defaults.
func (c ProjectConfig) WithDefaults() ProjectConfig {
	if c.Tool == "" {
		c.Tool = DefaultTool
	}
	if c.Format == "" {
		c.Format = DefaultFormat
	}
	return c
}

// Validate checks the config for invalid values and returns a
// descriptive error. Catches typos in the user's raw input before
// defaults are merged.
func (c ProjectConfig) Validate() error {
	if c.Format != "" && !isValidFormat(c.Format) {
		return fmt.Errorf("unknown format %q (valid: yaml, json)", c.Format)
	}
	for i, p := range c.ExcludePaths {
		if p == "" {
			return fmt.Errorf("exclude_paths[%d] must not be empty", i)
		}
	}
	return nil
}

func isValidFormat(f string) bool {
	for _, v := range ValidFormats {
		if f == v {
			return true
		}
	}
	return false
}
