package cli

import (
	"github.com/spf13/cobra"
)

func exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the narration script as a .docx",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			out, _ := cmd.Flags().GetString("out")
			path, err := a.ExportScript(cmd.Context(), out)
			if err != nil {
				return err
			}
			cmd.Printf("Wrote %s\n", path)
			return nil
		},
	}
	cmd.Flags().String("out", "", "Output path (default: script.docx in the project)")
	return cmd
}
