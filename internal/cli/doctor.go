package cli

import (
	"github.com/spf13/cobra"

	"github.com/slidecast/slidecast/internal/tool"
)

func doctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check that the external tools and credentials are in place",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := buildApp(cmd)
			if err != nil {
				return err
			}

			st := a.CheckDependencies(cmd.Context(), true)
			printCheck(cmd, "python", st.Python, st.PythonVersion, "install Python 3 and the transcription requirements")
			printCheck(cmd, "ffmpeg", st.FFmpeg, st.FFmpegVersion, "install ffmpeg and make sure it is on PATH")

			creds, err := tool.LoadCredentials(a.Config.Paths.Data)
			if err != nil {
				return err
			}
			printCheck(cmd, "gemini key", creds.GeminiKey != "", "configured",
				"set gemini-key in translation.json or GEMINI_API_KEY")

			if st.Ready && creds.GeminiKey != "" {
				cmd.Println("\nAll checks passed")
			}
			return nil
		},
	}
}

func printCheck(cmd *cobra.Command, name string, ok bool, detail, hint string) {
	if ok {
		cmd.Printf("[ok]      %-12s %s\n", name, detail)
		return
	}
	cmd.Printf("[missing] %-12s %s\n", name, hint)
}
