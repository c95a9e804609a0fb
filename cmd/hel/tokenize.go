package main

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"hel/internal/diagfmt"
	"hel/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] <file.hel|directory>",
	Short: "Tokenize a hel source file or directory",
	Long:  `Tokenize breaks down a hel source file or all *.hel files in a directory into their constituent tokens`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	tokenizeCmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}

	// Проверяем, файл это или директория
	st, err := os.Stat(filePath)
	if err != nil {
		return fmt.Errorf("failed to stat path: %w", err)
	}

	if !st.IsDir() {
		var result *driver.TokenizeResult
		result, err = driver.Tokenize(filePath, maxDiagnostics)
		if err != nil {
			return fmt.Errorf("tokenization failed: %w", err)
		}

		printDiagnostics(cmd, result.Bag, result.FileSet)

		switch format {
		case "pretty":
			return diagfmt.FormatTokensPretty(os.Stdout, result.Tokens, result.FileSet)
		case "json":
			return diagfmt.FormatTokensJSON(os.Stdout, result.Tokens)
		default:
			return fmt.Errorf("unknown format: %s", format)
		}
	}

	// Токенизация директории
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	fs, results, err := driver.TokenizeDir(cmd.Context(), filePath, maxDiagnostics, jobs)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	for _, r := range results {
		printDiagnostics(cmd, r.Bag, fs)
	}

	switch format {
	case "pretty":
		for idx, r := range results {
			if !quiet {
				if _, err := fmt.Fprintf(os.Stdout, "== %s ==\n", r.Path); err != nil {
					return err
				}
			}
			if err := diagfmt.FormatTokensPretty(os.Stdout, r.Tokens, fs); err != nil {
				return err
			}
			if !quiet && idx < len(results)-1 {
				if _, err := fmt.Fprintln(os.Stdout); err != nil {
					return err
				}
			}
		}
	case "json":
		output := make(map[string][]diagfmt.TokenOutput, len(results))
		for _, r := range results {
			output[r.Path] = diagfmt.TokenOutputsJSON(r.Tokens)
		}
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(output); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	return nil
}
