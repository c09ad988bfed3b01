package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Invocation describes a single call to the external kcl binary.
// Constructed fresh for every call, never reused.
type Invocation struct {
	Subcommand  string
	File        string
	Format      string
	Output      string
	Definitions []string
}

// Args returns the argument list in the order the kcl CLI expects:
// subcommand, file, --format, then one -D per definition, then -o
// when an output path was requested.
func (inv Invocation) Args() []string {
	args := []string{inv.Subcommand, inv.File}
	if inv.Format != "" {
		args = append(args, "--format", inv.Format)
	}
	for _, def := range inv.Definitions {
		args = append(args, "-D", def)
	}
	if inv.Output != "" {
		args = append(args, "-o", inv.Output)
	}
	return args
}

// FileOutcome records the validation result for a single file.
type FileOutcome struct {
	File   string `json:"file"`
	Valid  bool   `json:"valid"`
	Detail string `json:"detail,omitempty"`
}

// ValidationReport aggregates per-file outcomes for a directory.
// Outcomes keep discovery order. One failing file marks the whole run
// as failing but never stops the remaining files.
type ValidationReport struct {
	Dir      string        `json:"dir"`
	Outcomes []FileOutcome `json:"outcomes"`
}

// Record classifies the result of validating file and appends it.
// A ToolError means the file itself is invalid; anything else means
// the tool could not be executed at all, which is reported as a
// distinct execution error so the two are not conflated.
func (r *ValidationReport) Record(file string, err error) {
	if err == nil {
		r.Outcomes = append(r.Outcomes, FileOutcome{File: file, Valid: true})
		return
	}

	outcome := FileOutcome{File: file}
	var toolErr *ToolError
	if errors.As(err, &toolErr) {
		outcome.Detail = toolErr.Stderr
	} else {
		outcome.Detail = fmt.Sprintf("Execution error: %v", err)
	}
	r.Outcomes = append(r.Outcomes, outcome)
}

// AllValid reports whether every recorded file passed.
func (r *ValidationReport) AllValid() bool {
	for _, o := range r.Outcomes {
		if !o.Valid {
			return false
		}
	}
	return true
}

// FilesExamined returns the number of files the report covers.
func (r *ValidationReport) FilesExamined() int {
	return len(r.Outcomes)
}

// Render produces the plain-text form of the report: a summary line,
// a blank line, then one line per file in discovery order.
func (r *ValidationReport) Render() string {
	if len(r.Outcomes) == 0 {
		return fmt.Sprintf("No KCL files found in %s", r.Dir)
	}

	summary := "❌ Errors found in some files"
	if r.AllValid() {
		summary = fmt.Sprintf("✅ All %d files are valid", len(r.Outcomes))
	}

	lines := make([]string, 0, len(r.Outcomes))
	for _, o := range r.Outcomes {
		if o.Valid {
			lines = append(lines, "✅ "+o.File)
		} else {
			lines = append(lines, fmt.Sprintf("❌ %s: %s", o.File, o.Detail))
		}
	}

	return summary + "\n\n" + strings.Join(lines, "\n")
}
