package cmd

import (
	"fmt"
	"strings"

	"cosmossdk.io/math"
	"github.com/spf13/cobra"

	"github.com/paw-chain/anchor/x/anchor/types"
)

// BoundsCmd prints the anchor ratio bounds derived from a tolerance.
func BoundsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bounds [tolerance]",
		Short: "Derive the anchor ratio bounds of a tolerance",
		Long: `Derive the upper and lower anchor ratio bounds of a tolerance. The
tolerance is either a decimal fraction such as 0.15 or a mantissa scaled by
1e18 such as 150000000000000000.`,
		Example: "anchorcli bounds 0.15",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tolerance, err := ParseTolerance(args[0])
			if err != nil {
				return err
			}

			bounds := types.NewBounds(tolerance)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "tolerance mantissa: %s\n", tolerance)
			fmt.Fprintf(out, "upper bound:        %s\n", bounds.Upper)
			fmt.Fprintf(out, "lower bound:        %s\n", bounds.Lower)
			return nil
		},
	}
}

// ParseTolerance reads a decimal fraction or an 18-decimal mantissa.
func ParseTolerance(value string) (math.Uint, error) {
	value = strings.TrimSpace(value)
	if !strings.Contains(value, ".") {
		tolerance, err := math.ParseUint(value)
		if err != nil {
			return math.ZeroUint(), fmt.Errorf("invalid tolerance %q: %w", value, err)
		}
		return tolerance, nil
	}

	fraction, err := math.LegacyNewDecFromStr(value)
	if err != nil {
		return math.ZeroUint(), fmt.Errorf("invalid tolerance %q: %w", value, err)
	}
	if fraction.IsNegative() {
		return math.ZeroUint(), fmt.Errorf("invalid tolerance %q: must be non-negative", value)
	}
	// LegacyDec carries 18 decimals, so its raw integer is the mantissa.
	mantissa := fraction.BigInt()
	if err := math.UintOverflow(mantissa); err != nil {
		return math.ZeroUint(), fmt.Errorf("invalid tolerance %q: %w", value, err)
	}
	return math.NewUintFromBigInt(mantissa), nil
}
