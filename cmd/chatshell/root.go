package main

import (
	"os"

	"github.com/matheus3301/chatshell/internal/shell"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

func newRootCmd(version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "chatshell",
		Short:         "Two-screen messaging shell for the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p := paramsFrom(cmd, false)
			p.Version = version
			app := fx.New(shell.Module(p))
			if err := app.Err(); err != nil {
				return err
			}
			app.Run()
			return nil
		},
	}

	cmd.Version = version
	cmd.SetVersionTemplate("chatshell version {{.Version}}\n")
	cmd.SetOut(os.Stdout)
	cmd.SetErr(os.Stderr)

	cmd.PersistentFlags().String("config", "", "config file (default ~/.chatshell/config.toml)")
	cmd.PersistentFlags().String("log-level", "", "log level override (debug, info, warn, error)")

	cmd.AddCommand(newListCmd(), newShowCmd(), newConfigCmd())
	return cmd
}

func paramsFrom(cmd *cobra.Command, console bool) shell.Params {
	configPath, _ := cmd.Flags().GetString("config")
	level, _ := cmd.Flags().GetString("log-level")
	return shell.Params{
		ConfigPath: configPath,
		LogLevel:   level,
		Console:    console,
	}
}
