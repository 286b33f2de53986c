package cmd

import (
	"fmt"
	"io"
	"sync"

	multierror "github.com/hashicorp/go-multierror"
	"github.com/shlint/shlint/core/render"
	"github.com/shlint/shlint/core/scanner"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var (
	formatFlag string
	colorFlag  string
	jobsFlag   int
)

var checkCmd = &cobra.Command{
	Use:   "check FILE...",
	Short: "Scan shell scripts and report diagnostics.",
	Long: `Scan each FILE with the configured rule set and print the findings.
Use - to read a script from stdin.

Exit status is 0 when no error-severity diagnostics were found, 1 when
at least one was, and 2 when a file couldn't be read or decoded.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("format") {
			cfg.Format = formatFlag
		}
		if cmd.Flags().Changed("color") {
			cfg.Color = colorFlag
		}
		if cmd.Flags().Changed("jobs") {
			cfg.Jobs = jobsFlag
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		ruleSet, err := cfg.Rules()
		if err != nil {
			return err
		}

		renderer, err := render.New(cfg.Format, render.ColorMode(cfg.Color), cmd.OutOrStdout())
		if err != nil {
			return err
		}

		// Scans are independent, so files fan out across workers; the
		// results are rendered afterwards in argument order so output
		// stays deterministic.
		var (
			results = make([]*scanner.ScanResult, len(args))
			mu      sync.Mutex
			errs    *multierror.Error
		)
		group := new(errgroup.Group)
		group.SetLimit(cfg.Jobs)
		for i, path := range args {
			i, path := i, path
			group.Go(func() error {
				src, err := readSource(cmd.InOrStdin(), path)
				if err == nil {
					results[i], err = scanner.Scan(src, ruleSet)
				}
				if err != nil {
					mu.Lock()
					errs = multierror.Append(errs, fmt.Errorf("%s: %w", path, err))
					mu.Unlock()
				}
				return nil
			})
		}
		_ = group.Wait()

		failed := false
		for i, path := range args {
			if results[i] == nil {
				continue
			}
			if err := renderer.Render(path, results[i]); err != nil {
				return err
			}
			failed = failed || results[i].HasErrors()
		}
		if err := renderer.Close(); err != nil {
			return err
		}

		if err := errs.ErrorOrNil(); err != nil {
			return err
		}
		if failed {
			exitCode = 1
		}
		return nil
	},
}

// readSource reads one script, treating - as stdin.
func readSource(stdin io.Reader, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(stdin)
	}
	return afero.ReadFile(appFs, path)
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVar(&formatFlag, "format", "text", "output format (text|json)")
	checkCmd.Flags().StringVar(&colorFlag, "color", "auto", "colorize the output (always|auto|never)")
	checkCmd.Flags().IntVarP(&jobsFlag, "jobs", "j", 4, "number of files scanned concurrently")
}
