// Package cmd implements the CLI commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/zorak1103/wordpass/internal/cli"
	"github.com/zorak1103/wordpass/internal/config"
	"github.com/zorak1103/wordpass/internal/passphrase"
	"github.com/zorak1103/wordpass/internal/version"
)

var (
	cfgFile string
	verbose bool

	// Swapped in tests.
	fsys         afero.Fs = afero.NewOsFs()
	newGenerator          = func() *passphrase.Generator { return passphrase.NewGenerator(nil) }
)

var rootCmd = &cobra.Command{
	Use:   "wordpass [flags]",
	Short: "Generate a passphrase from random dictionary words",
	Long: `wordpass builds a human-readable passphrase by picking distinct words at
random from a word list and joining them with a separator.

Settings are merged from, lowest to highest priority:
  1. Built-in defaults (3 words, "-" separator, bundled word list)
  2. Configuration file ($HOME/.config/wordpass/config.yaml or --config)
  3. Environment variables (WORDPASS_COUNT, WORDPASS_SEPARATOR, WORDPASS_DICTIONARY)
  4. Command-line flags

Arguments that are not flags are ignored.`,
	Example: `  # Three words joined by "-"
  wordpass

  # Five words joined by spaces
  wordpass -c5 -s " "

  # Words from your own list, one per line
  wordpass --dictionary ~/words.txt --count 4`,
	Version:      version.GetFullVersion(),
	Args:         cobra.ArbitraryArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		settings, err := cli.Resolve(fsys, cfgFile, cmd.Flags())
		if err != nil {
			return err
		}

		if verbose {
			printSettings(cmd.ErrOrStderr(), settings)
		}

		out, err := newGenerator().Generate(settings.Passphrase)
		if err != nil {
			return err
		}

		_, _ = fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// nolint:gochecknoinits // Standard Cobra pattern for command registration
func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.config/wordpass/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print the effective settings to stderr")

	rootCmd.Flags().SortFlags = false
	config.RegisterFlags(rootCmd.Flags())
}

// IsVerbose returns whether verbose mode is enabled via the -v flag.
func IsVerbose() bool {
	return verbose
}
