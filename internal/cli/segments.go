package cli

import (
	"strconv"

	"github.com/spf13/cobra"
)

func segmentsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "segments",
		Short: "Inspect and edit the project's segments",
	}
	cmd.AddCommand(segmentsListCmd(), segmentsEditCmd(), segmentsAssignCmd())
	return cmd
}

func segmentsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List segments with their slide assignments",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			segments, err := a.Segments()
			if err != nil {
				return err
			}
			for _, s := range segments {
				slide := "-"
				if s.Slide > 0 {
					slide = strconv.Itoa(s.Slide)
				}
				cmd.Printf("%3d  [slide %s]  %s\n", s.ID, slide, s.Text)
				if s.Translation != "" {
					cmd.Printf("     %s\n", s.Translation)
				}
			}
			return nil
		},
	}
}

func segmentsEditCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "edit <id> <text>",
		Short: "Replace a segment's text",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return err
			}
			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			return a.EditSegment(cmd.Context(), id, args[1])
		},
	}
}

func segmentsAssignCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "assign <id> <slide>",
		Short: "Assign a segment to a slide (0 unassigns)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return err
			}
			slide, err := strconv.Atoi(args[1])
			if err != nil {
				return err
			}
			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			return a.AssignSlide(cmd.Context(), id, slide)
		},
	}
}
