package cmd

import (
	"github.com/spf13/cobra"

	"expense-split/core/output"
	"expense-split/core/policy"
)

func newRulesCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "Print the reimbursement policy",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := root.outputFormat()
			if err != nil {
				return err
			}
			return output.RenderRules(cmd.OutOrStdout(), format, policy.Rules())
		},
	}
}
