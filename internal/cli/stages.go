package cli

import (
	"github.com/spf13/cobra"

	"github.com/slidecast/slidecast/internal/workflow"
)

func extractCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "extract <video>",
		Short: "Copy the video into the project and extract its audio",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			if err := a.ExtractAudio(cmd.Context(), args[0], eventPrinter(cmd)); err != nil {
				return err
			}
			cmd.Println("Audio extracted")
			return nil
		},
	}
}

func transcribeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "transcribe",
		Short: "Transcribe the extracted audio into segments",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			if err := a.Transcribe(cmd.Context(), eventPrinter(cmd)); err != nil {
				return err
			}
			segments, err := a.Segments()
			if err != nil {
				return err
			}
			cmd.Printf("Transcribed %d segments\n", len(segments))
			return nil
		},
	}
}

func correctCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "correct",
		Short: "Apply the correction rules to all segment texts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd)
			if err != nil {
				return err
			}

			// --from joins the workflow here with existing raw engine output.
			if from, _ := cmd.Flags().GetString("from"); from != "" {
				if err := a.EnterAt(cmd.Context(), workflow.StageCorrect, from); err != nil {
					return err
				}
			}

			count, err := a.ApplyCorrections(cmd.Context())
			if err != nil {
				return err
			}
			cmd.Printf("Applied %d corrections\n", count)
			return nil
		},
	}
	cmd.Flags().String("from", "", "Enter the workflow here with an existing raw segment file")
	return cmd
}

func translateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "translate",
		Short: "Translate all segment texts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd)
			if err != nil {
				return err
			}

			if from, _ := cmd.Flags().GetString("from"); from != "" {
				if err := a.EnterAt(cmd.Context(), workflow.StageTranslate, from); err != nil {
					return err
				}
			}

			if err := a.Translate(cmd.Context(), eventPrinter(cmd)); err != nil {
				return err
			}
			cmd.Println("Translation complete")
			return nil
		},
	}
	cmd.Flags().String("from", "", "Enter the workflow here with an existing segment file")
	return cmd
}

func resetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Clear all workflow progress for the project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			if err := a.ResetWorkflow(cmd.Context()); err != nil {
				return err
			}
			cmd.Println("Workflow reset")
			return nil
		},
	}
}
