package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kclwrap/kclwrap/internal/adapters/outbound/config"
	"github.com/kclwrap/kclwrap/internal/adapters/outbound/kcl"
	"github.com/kclwrap/kclwrap/internal/application"
)

func newRunCmd() *cobra.Command {
	var (
		format  string
		output  string
		defines []string
	)

	cmd := &cobra.Command{
		Use:   "run <file>",
		Short: "Execute a KCL file and print its output",
		Long:  "Execute a KCL file through the kcl compiler. Prints the rendered output, or the output path when --output is given.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file := args[0]

			// Project config lives next to the file being run.
			cfg, err := config.New().Load(filepath.Dir(file))
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			if format == "" {
				format = cfg.Format
			}

			svc := application.NewRunService(kcl.New(cfg.Tool))
			result, err := svc.Run(file, format, output, defines)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), strings.TrimRight(result, "\n"))
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format (yaml/json)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file")
	cmd.Flags().StringArrayVarP(&defines, "define", "D", nil, "Variables to define (key=value), repeatable")

	return cmd
}
