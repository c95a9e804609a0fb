package main

import (
	"os"

	"github.com/spf13/cobra"

	"hel/internal/diag"
	"hel/internal/diagfmt"
	"hel/internal/source"
)

// printDiagnostics выводит отсортированные диагностики в stderr.
// Пустой bag не печатает ничего.
func printDiagnostics(cmd *cobra.Command, bag *diag.Bag, fs *source.FileSet) {
	if bag == nil || bag.Len() == 0 {
		return
	}
	bag.Sort()
	diagfmt.Pretty(os.Stderr, bag, fs, diagfmt.PrettyOpts{
		Color:     useColor(cmd),
		Context:   2,
		ShowNotes: true,
	})
}
