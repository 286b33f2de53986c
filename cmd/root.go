package cmd

import (
	"os"

	"github.com/shlint/shlint/core/config"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var (
	cfgPath string

	// appFs is the filesystem the CLI reads scripts and config from.
	// Tests swap it for an in-memory one.
	appFs = afero.NewOsFs()

	// exitCode is the code Execute finishes with when no fatal error
	// occurred. check sets it to 1 when error-severity diagnostics were
	// found.
	exitCode int
)

func loadConfig() (*config.Configuration, error) {
	return config.Load(appFs, cfgPath)
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "shlint",
	Short: "A rule-based line scanner for shell scripts",
	Long: `shlint scans shell scripts line by line against a catalog of rules
covering common pitfalls: unquoted expansions, backtick substitution,
[ instead of [[, unchecked cd and more.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main(). Fatal errors (unreadable
// input, bad encoding, bad usage) exit 2; error-severity findings exit 1.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(2)
	}
	os.Exit(exitCode)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", ".", "config path")
}
