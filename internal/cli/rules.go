package cli

import (
	"sort"

	"github.com/spf13/cobra"
)

func rulesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Manage the correction rules applied to transcriptions",
	}
	cmd.AddCommand(rulesAddCmd(), rulesListCmd(), rulesRemoveCmd())
	return cmd
}

func rulesAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <wrong> <correct>",
		Short: "Add a correction rule",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := buildApp(cmd)
			if err != nil {
				return err
			}
			return a.AddRule(cmd.Context(), args[0], args[1])
		},
	}
}

func rulesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all correction rules",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := buildApp(cmd)
			if err != nil {
				return err
			}
			rules, err := a.Rules()
			if err != nil {
				return err
			}

			keys := make([]string, 0, len(rules))
			for k := range rules {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				cmd.Printf("%q -> %q\n", k, rules[k])
			}
			return nil
		},
	}
}

func rulesRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <wrong>",
		Short: "Remove a correction rule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := buildApp(cmd)
			if err != nil {
				return err
			}
			return a.RemoveRule(cmd.Context(), args[0])
		},
	}
}
