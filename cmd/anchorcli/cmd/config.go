package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/paw-chain/anchor/x/anchor/types"
)

// ConfigCmd groups the deployment file commands.
func ConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Deployment file utilities",
	}

	cmd.AddCommand(
		configValidateCmd(),
		configHashCmd(),
	)

	return cmd
}

func configValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file]",
		Short: "Check a deployment file against the keeper construction rules",
		Long: `Load a YAML, JSON or TOML deployment file and apply the same checks the
keeper applies at construction. Any violation fails the whole file.`,
		Example: "anchorcli config validate deployment.yaml",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := newViper(cmd.Flags())
			if err != nil {
				return err
			}
			logger, err := newLogger(cmd, v)
			if err != nil {
				return err
			}

			deployment, err := LoadDeployment(args[0])
			if err != nil {
				return err
			}
			genesis, err := deployment.ToGenesis()
			if err != nil {
				return err
			}
			if err := genesis.Validate(); err != nil {
				logger.Error("deployment rejected", "file", args[0], "error", err)
				return err
			}
			logger.Debug("deployment accepted", "file", args[0], "tokens", len(genesis.Configs))

			bounds := types.NewBounds(genesis.Params.AnchorToleranceMantissa)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "owner:          %s\n", genesis.Params.Owner)
			fmt.Fprintf(out, "anchor period:  %ds\n", genesis.Params.AnchorPeriod)
			fmt.Fprintf(out, "upper bound:    %s\n", bounds.Upper)
			fmt.Fprintf(out, "lower bound:    %s\n", bounds.Lower)
			fmt.Fprintf(out, "tokens:         %d\n", len(genesis.Configs))
			for i, config := range genesis.Configs {
				fmt.Fprintf(out, "  [%d] %-8s %-10s %s\n", i, deployment.Tokens[i].Name(), config.PriceSource, config.SymbolHash)
			}
			return nil
		},
	}
}

func configHashCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "hash [symbol]...",
		Short:   "Print the symbol hash of each symbol",
		Example: "anchorcli config hash ETH BTC",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, symbol := range args {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", types.HashSymbol(symbol), symbol)
			}
			return nil
		},
	}
}
