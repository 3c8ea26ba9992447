// Command unitconv evaluates natural-language unit-conversion queries
// against a user-supplied universe definition (spec.md §1).
package main

import (
	"fmt"
	"os"

	"github.com/unitconv/unitconv/cmd/unitconv/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
