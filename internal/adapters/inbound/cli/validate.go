package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kclwrap/kclwrap/internal/adapters/outbound/config"
	"github.com/kclwrap/kclwrap/internal/adapters/outbound/gitinfo"
	"github.com/kclwrap/kclwrap/internal/adapters/outbound/kcl"
	"github.com/kclwrap/kclwrap/internal/adapters/outbound/scanner"
	"github.com/kclwrap/kclwrap/internal/adapters/outbound/tui"
	"github.com/kclwrap/kclwrap/internal/application"
)

func newValidateCmd() *cobra.Command {
	var (
		jsonOutput bool
		changed    bool
	)

	cmd := &cobra.Command{
		Use:   "validate [dir]",
		Short: "Validate all KCL files in a directory",
		Long: "Run every *.k file under a directory through the kcl compiler and report a per-file summary. " +
			"A file that evaluates cleanly is reported valid; execution success stands in for a dedicated static check.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}

			cfg, err := config.New().Load(dir)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			git := gitinfo.New()
			if changed && !git.IsGitRepo(dir) {
				return fmt.Errorf("--changed requires a git repository at %s", dir)
			}

			svc := application.NewValidateService(scanner.New(), kcl.New(cfg.Tool), git)
			report, err := svc.Validate(dir, cfg.ExcludePaths, changed)
			if err != nil {
				return fmt.Errorf("validating KCL project: %w", err)
			}

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(report); err != nil {
					return err
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderValidationReport(report))
			}

			// Exit code follows the aggregate outcome.
			if !report.AllValid() {
				invalid := 0
				for _, o := range report.Outcomes {
					if !o.Valid {
						invalid++
					}
				}
				return fmt.Errorf("validation failed: %d of %d files invalid", invalid, report.FilesExamined())
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the report as JSON")
	cmd.Flags().BoolVar(&changed, "changed", false, "Validate only files modified per git worktree status")

	return cmd
}
