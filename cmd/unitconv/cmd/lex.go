package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/unitconv/unitconv/internal/lexer"
)

var lexExpr string

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a universe definition file or an inline query",
	Long: `lex tokenizes the given file (or, with -e, an inline string, or
stdin if neither is given) and prints the resulting token stream — a
debugging aid for the tokenizer the universe and query grammars share.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLex,
}

func init() {
	lexCmd.Flags().StringVarP(&lexExpr, "expression", "e", "", "tokenize an inline string instead of a file")
	rootCmd.AddCommand(lexCmd)
}

func runLex(cmd *cobra.Command, args []string) error {
	source, file, err := readSource(args, lexExpr)
	if err != nil {
		return err
	}

	l := lexer.New(source, lexer.WithFile(file))
	for {
		tok := l.NextToken()
		fmt.Printf("%4d:%-3d %-9s %q\n", tok.Start.Line, tok.Start.Column, tok.Kind, tok.Literal)
		if tok.Kind == lexer.EOF {
			break
		}
	}
	return nil
}

func readSource(args []string, expr string) (source, file string, err error) {
	if expr != "" {
		return expr, "", nil
	}
	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", "", err
		}
		return string(data), "", nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", "", err
	}
	return string(data), args[0], nil
}
