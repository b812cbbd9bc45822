package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"cleanlist/internal/app"
	"cleanlist/internal/config"
	"cleanlist/internal/logging"
	"cleanlist/internal/storage"
	"cleanlist/internal/ui"
)

var Version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "cleanlist",
		Short:         "A small task list with edit and view modes and PDF export",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(configPath, func(a *app.App, cfg config.Config) error {
				return ui.Run(a, cfg)
			})
		},
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (default: user config dir)")

	root.AddCommand(listCmd(&configPath))
	root.AddCommand(exportCmd(&configPath))
	return root
}

func listCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the task list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(*configPath, func(a *app.App, _ config.Config) error {
				return printList(cmd.OutOrStdout(), a)
			})
		},
	}
}

func exportCmd(configPath *string) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the task list to a PDF",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(*configPath, func(a *app.App, cfg config.Config) error {
				if out == "" {
					out = cfg.ExportPath
				}
				path, err := a.ExportTo(out)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default: export_path from config)")
	return cmd
}

func printList(w io.Writer, a *app.App) error {
	v := a.Render()
	if v.Empty {
		_, err := fmt.Fprintln(w, "No tasks yet.")
		return err
	}
	for _, row := range v.Rows {
		mark := " "
		if row.Completed {
			mark = "x"
		}
		if _, err := fmt.Fprintf(w, "[%s] %s\n", mark, row.Text); err != nil {
			return err
		}
	}
	return nil
}

// withApp loads config, opens storage and logging, and hands a ready App to
// fn. Everything is released when fn returns.
func withApp(configPath string, fn func(*app.App, config.Config) error) error {
	if configPath == "" {
		configPath = config.ResolveConfigPath()
	}
	cfg, err := config.LoadOrCreate(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, closer, err := logging.New(cfg.LogPath, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to open log: %w", err)
	}
	defer closer.Close()

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer store.Close()

	a := app.New(store, app.Config{
		ExportPath: cfg.ExportPath,
		DateFormat: cfg.DateFormat,
		Logger:     logger,
	})
	defer a.Close()

	err = fn(a, cfg)
	if errors.Is(err, app.ErrNothingToExport) {
		logger.Warn("export skipped", "reason", err)
	}
	return err
}
