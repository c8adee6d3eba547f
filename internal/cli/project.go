package cli

import (
	"context"
	"errors"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/slidecast/slidecast/internal/workflow"
)

func newCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "new <name>",
		Short: "Create a new project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := buildApp(cmd)
			if err != nil {
				return err
			}
			p, err := a.CreateProject(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			cmd.Printf("Created project %q at %s\n", p.Name, p.Path)
			return nil
		},
	}
}

func importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <image>...",
		Short: "Import slide images into the project",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			p, err := a.ImportImages(cmd.Context(), args)
			if err != nil {
				return err
			}
			cmd.Printf("Project has %d slides\n", len(p.Slides))
			return nil
		},
	}
}

func imagesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "images",
		Short: "List the project's slide images in presentation order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			paths, err := a.ListImages()
			if err != nil {
				return err
			}
			for i, p := range paths {
				cmd.Printf("%3d  %s\n", i+1, filepath.Base(p))
			}
			return nil
		},
	}
}

func watchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Watch the slides folder and keep the slide list in sync",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			cmd.Println("Watching for slide changes, Ctrl+C to stop")
			if err := a.WatchSlides(cmd.Context()); !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}
}

func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show project and workflow status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd)
			if err != nil {
				return err
			}

			p, err := a.Projects.Load(a.ProjectName())
			if err != nil {
				return err
			}
			cmd.Printf("Project:  %s\n", p.Name)
			cmd.Printf("Slides:   %d\n", len(p.Slides))
			cmd.Printf("Updated:  %s\n", p.UpdatedOn.Local().Format("2006-01-02 15:04"))

			snap := a.Workflow.Snapshot()
			cmd.Println("Workflow:")
			for s := workflow.StageExtract; s <= workflow.StageTranslate; s++ {
				mark := " "
				if snap.Stages[s].Done {
					mark = "x"
				}
				pointer := "  "
				if s == snap.Current {
					pointer = "->"
				}
				cmd.Printf("  %s [%s] %s\n", pointer, mark, s)
			}

			st := a.CheckDependencies(cmd.Context(), false)
			cmd.Printf("Tools:    ")
			if st.Ready {
				cmd.Println("ready")
			} else {
				cmd.Println("missing, run `slidecast doctor`")
			}
			return nil
		},
	}
}
