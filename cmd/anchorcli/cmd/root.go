package cmd

import (
	"fmt"
	"strings"

	"cosmossdk.io/log"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	envPrefix = "ANCHOR"

	flagLogLevel = "log-level"
)

// NewRootCmd creates the anchorcli root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "anchorcli",
		Short: "Inspect and dry-run anchored price deployments",
		Long: `anchorcli checks deployment files for the anchor module, derives symbol
hashes and anchor bounds, and replays reporter answers against an in-memory
keeper.

Every flag can also be set through an ANCHOR_ prefixed environment variable,
for example ANCHOR_LOG_LEVEL=debug.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().String(flagLogLevel, zerolog.InfoLevel.String(), "Log level (trace|debug|info|warn|error)")

	rootCmd.AddCommand(
		ConfigCmd(),
		BoundsCmd(),
		SimulateCmd(),
	)

	return rootCmd
}

// newViper binds flags to a viper instance that also reads ANCHOR_ prefixed
// environment variables.
func newViper(flags *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(flags); err != nil {
		return nil, fmt.Errorf("failed to bind flags: %w", err)
	}
	return v, nil
}

// newLogger builds the CLI logger writing to the command's stderr.
func newLogger(cmd *cobra.Command, v *viper.Viper) (log.Logger, error) {
	levelStr := v.GetString(flagLogLevel)
	level, err := zerolog.ParseLevel(levelStr)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", levelStr, err)
	}
	return log.NewLogger(cmd.ErrOrStderr(), log.LevelOption(level), log.ColorOption(false)).With("module", "anchorcli"), nil
}
