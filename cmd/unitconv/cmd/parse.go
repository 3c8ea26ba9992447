package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/unitconv/unitconv/internal/parser"
	"github.com/unitconv/unitconv/internal/units"
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse a universe definition file and summarize it",
	Long: `parse loads a universe definition file and prints a summary of
the resulting properties and units — a debugging aid for the universe
grammar, distinct from convert's end-to-end query evaluation.`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	universe, err := parser.ParseUniverse(string(data), args[0], nil)
	if err != nil {
		printDiagnostic(err)
		os.Exit(1)
	}

	for _, p := range universe.Properties() {
		fmt.Printf("property %s (%d units)\n", p.PrimaryName(), len(p.Units()))
		for _, u := range p.Units() {
			fmt.Printf("  %s\n", describeUnit(u))
		}
	}
	return nil
}

func describeUnit(u *units.Unit) string {
	name := u.PrimaryLongName()
	if u.Offset().Sign() != 0 {
		return fmt.Sprintf("%s (x%s, %s+%s)", name, u.Multiplier(), name, u.Offset())
	}
	return fmt.Sprintf("%s (x%s)", name, u.Multiplier())
}
