package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/kclwrap/kclwrap/internal/adapters/outbound/config"
	"github.com/kclwrap/kclwrap/internal/adapters/outbound/kcl"
	"github.com/kclwrap/kclwrap/internal/application"
)

func newFmtCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fmt <file>",
		Short: "Format a KCL file in place",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file := args[0]

			cfg, err := config.New().Load(filepath.Dir(file))
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			svc := application.NewFormatService(kcl.New(cfg.Tool))
			result, err := svc.Format(file)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), result)
			return nil
		},
	}
}
