package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/raphi011/gitlink/internal/config"
	"github.com/raphi011/gitlink/internal/doctor"
)

func newDoctorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "doctor [path]",
		Short:   "Diagnose link resolution",
		GroupID: GroupConfig,
		Args:    cobra.MaximumNArgs(1),
		Long: `Diagnose why a link cannot be built.

Checks:
- Global config file parses and validates
- Current directory is inside a git repository
- Local .gitlink.toml is valid
- A remote is configured and maps to a provider
- git, a clipboard utility and a browser opener are installed`,
		Example: `  gitlink doctor
  gitlink doctor ~/src/project`,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("get working directory: %w", err)
			}
			if len(args) > 0 {
				dir = args[0]
			}

			configPath, err := config.Path()
			if err != nil {
				return err
			}

			return doctor.Run(cmd.Context(), doctor.Options{Dir: dir, ConfigPath: configPath})
		},
	}

	return cmd
}
