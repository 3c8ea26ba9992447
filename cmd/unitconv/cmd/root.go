// Package cmd implements the unitconv command-line entry point: a thin
// cobra-based shell around the internal/parser and internal/units
// packages, laid out like the teacher's cmd/dwscript/cmd package (a
// persistent flag on the root command, one file per subcommand).
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information, set by build flags.
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "unitconv",
	Short: "Natural-language unit conversion",
	Long: `unitconv interprets natural-language unit-conversion queries
("100 miles per hour in meters per second") against a universe of
physical properties and units loaded from a textual definition file.

It performs exact rational arithmetic throughout: no floating-point
error enters the conversion path.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
}
