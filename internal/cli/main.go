// Package cli is the command-line surface. Every command builds the
// application from configuration, and project-scoped commands open the
// project named by --project before running.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/slidecast/slidecast/internal/app"
	"github.com/slidecast/slidecast/internal/config"
	"github.com/slidecast/slidecast/pkg/executor"
)

func Main() {
	_ = godotenv.Load() // best-effort: load .env if present

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	root := &cobra.Command{
		Use:          "slidecast",
		Short:        "Assemble narrated slide presentations from recorded talks",
		SilenceUsage: true,
	}
	root.SetOut(os.Stdout)
	root.SetErr(os.Stderr)
	root.SilenceErrors = true

	root.PersistentFlags().String("config", "config.yaml", "Configuration file")
	root.PersistentFlags().StringP("project", "p", "", "Project name")

	root.AddCommand(
		newCmd(),
		importCmd(),
		imagesCmd(),
		extractCmd(),
		transcribeCmd(),
		correctCmd(),
		translateCmd(),
		segmentsCmd(),
		rulesCmd(),
		doctorCmd(),
		watchCmd(),
		exportCmd(),
		resetCmd(),
		statusCmd(),
	)

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// buildApp constructs the application. A missing config file falls back to
// defaults rooted in the working directory.
func buildApp(cmd *cobra.Command) (*app.App, error) {
	path, _ := cmd.Flags().GetString("config")

	cfg, err := config.Load(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		cfg = config.Default(".")
	}
	return app.New(cfg)
}

// openApp builds the application and opens the project named by --project.
func openApp(cmd *cobra.Command) (*app.App, error) {
	a, err := buildApp(cmd)
	if err != nil {
		return nil, err
	}

	name, _ := cmd.Flags().GetString("project")
	if name == "" {
		return nil, errors.New("--project is required")
	}
	if err := a.Open(cmd.Context(), name); err != nil {
		return nil, err
	}
	return a, nil
}

// eventPrinter relays tool progress and status lines to the terminal.
func eventPrinter(cmd *cobra.Command) func(executor.Event) {
	return func(ev executor.Event) {
		switch ev.Kind {
		case executor.EventProgress:
			cmd.Printf("  %3d%%\n", ev.Percent)
		case executor.EventStatus:
			cmd.Printf("  [%s] %s\n", ev.Level, ev.Message)
		}
	}
}
