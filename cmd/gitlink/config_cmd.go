package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/raphi011/gitlink/internal/config"
	"github.com/raphi011/gitlink/internal/git"
	"github.com/raphi011/gitlink/internal/log"
	"github.com/raphi011/gitlink/internal/output"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   "Manage configuration",
		Aliases: []string{"cfg"},
		GroupID: GroupConfig,
		Long: `Manage gitlink configuration.

Global config: ~/.config/gitlink/config.toml (or $GITLINK_CONFIG)
Local config:  .gitlink.toml (in the work tree root)`,
		Example: `  gitlink config init          # Create default global config
  gitlink config init --local  # Create local repo config
  gitlink config show          # Show effective config
  gitlink config path          # Print the global config path`,
	}

	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigShowCmd())
	cmd.AddCommand(newConfigPathCmd())

	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var (
		force  bool
		stdout bool
		local  bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create default config file",
		Args:  cobra.NoArgs,
		Long: `Create default config file.

Without flags, creates the global config at ~/.config/gitlink/config.toml.
With --local, creates .gitlink.toml at the root of the current work tree.`,
		Example: `  gitlink config init           # Create global config
  gitlink config init --local   # Create local repo config
  gitlink config init -f        # Overwrite existing config
  gitlink config init -s        # Print config to stdout`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			if stdout {
				if local {
					out.Print(config.DefaultLocalConfig())
				} else {
					out.Print(config.DefaultConfig())
				}
				return nil
			}

			var (
				path string
				err  error
			)
			if local {
				repo, lerr := currentRepo()
				if lerr != nil {
					return lerr
				}
				path, err = config.InitLocal(repo.WorkTree, force)
			} else {
				path, err = config.Init(force)
			}
			if err != nil {
				return fmt.Errorf("%w (use -f to overwrite)", err)
			}

			out.Printf("Created config file: %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config")
	cmd.Flags().BoolVarP(&stdout, "stdout", "s", false, "Print config to stdout")
	cmd.Flags().BoolVar(&local, "local", false, "Create per-repo .gitlink.toml instead of global config")

	return cmd
}

func newConfigShowCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show effective configuration",
		Args:  cobra.NoArgs,
		Long: `Show effective configuration.

Inside a repository the global config is merged with .gitlink.toml.
Otherwise the global config is shown.`,
		Example: `  gitlink config show                # TOML
  gitlink config show --format json  # JSON
  gitlink config show --format yaml  # YAML`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)
			out := output.FromContext(ctx)

			if err := config.ValidateFormat(format); err != nil {
				return err
			}

			resolver := config.ResolverFromContext(ctx)
			cfg := resolver.Global()
			var localPath string

			if repo, err := currentRepo(); err == nil {
				merged, err := resolver.ConfigForRepo(repo.WorkTree)
				if err != nil {
					return err
				}
				cfg = merged
				if p := filepath.Join(repo.WorkTree, config.LocalConfigFileName); exists(p) {
					localPath = p
				}
			} else {
				l.Debug("not in a repository, showing global config", "err", err)
			}

			switch format {
			case "json":
				return out.JSON(cfg)
			case "yaml":
				return out.YAML(cfg)
			}

			if globalPath, err := config.Path(); err == nil {
				out.Printf("# global: %s\n", globalPath)
			}
			if localPath != "" {
				out.Printf("# local:  %s\n", localPath)
			}
			return toml.NewEncoder(out.Writer()).Encode(cfg)
		},
	}

	cmd.Flags().StringVar(&format, "format", "toml", "Output format (toml, json, yaml)")
	_ = cmd.RegisterFlagCompletionFunc("format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return config.ValidFormats, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func newConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the global config file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.Path()
			if err != nil {
				return err
			}
			output.FromContext(cmd.Context()).Println(path)
			return nil
		},
	}
}

// currentRepo locates the repository of the working directory.
func currentRepo() (*git.Repository, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}
	return git.Locate(wd)
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
