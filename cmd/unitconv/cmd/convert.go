package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/unitconv/unitconv/internal/currency"
	ierrors "github.com/unitconv/unitconv/internal/errors"
	"github.com/unitconv/unitconv/internal/format"
	"github.com/unitconv/unitconv/internal/parser"
	"github.com/unitconv/unitconv/internal/units"
)

var currencyCachePath string

var convertCmd = &cobra.Command{
	Use:   "convert <universe-file> <query...>",
	Short: "Evaluate one or more conversion queries against a universe",
	Long: `convert loads a universe definition file, joins every remaining
argument with spaces, splits the joined string on commas into one or
more queries (spec.md §6), and prints one result line per query.

Examples:
  unitconv convert units.def 100 miles per hour in meters per second
  unitconv convert units.def 2 meters in inches, 1 mile in km`,
	Args: cobra.MinimumNArgs(2),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVar(&currencyCachePath, "currency-cache", "", "path to a local currency cache file (spec.md §6)")
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	file := args[0]
	data, err := os.ReadFile(file)
	if err != nil {
		return err
	}

	var loader currency.Loader
	if currencyCachePath != "" {
		loader = currency.FileLoader{Path: currencyCachePath}
	}

	universe, err := parser.ParseUniverse(string(data), file, loader)
	if err != nil {
		printDiagnostic(err)
		os.Exit(1)
	}

	queries := strings.Split(strings.Join(args[1:], " "), ",")
	formatValue := units.FormatQuantity(func(q units.Quantity) string {
		return format.Default(q.Value)
	})

	failed := false
	for _, q := range queries {
		q = strings.TrimSpace(q)
		if q == "" {
			continue
		}
		result, err := parser.ParseQuery(universe, q)
		if err != nil {
			printDiagnostic(err)
			failed = true
			continue
		}
		fmt.Println(result.ResultString(formatValue))
	}
	if failed {
		os.Exit(1)
	}
	return nil
}

// printDiagnostic renders err for direct display (spec.md §7: "a message
// suitable for direct display"), using the engine's own source-line and
// caret formatting for the taxonomy's *errors.Error, plain text otherwise.
func printDiagnostic(err error) {
	if e, ok := err.(*ierrors.Error); ok {
		fmt.Fprintln(os.Stderr, e.Format(false))
		return
	}
	fmt.Fprintln(os.Stderr, err)
}
