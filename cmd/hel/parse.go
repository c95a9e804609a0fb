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

var parseCmd = &cobra.Command{
	Use:   "parse [flags] <file.hel|directory>",
	Short: "Parse a hel source file or directory and output the CST",
	Long:  `Parse analyzes a hel source file or all *.hel files in a directory and outputs their concrete syntax trees`,
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().String("format", "tree", "output format (tree|json)")
	parseCmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
}

func runParse(cmd *cobra.Command, args []string) error {
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

	st, err := os.Stat(filePath)
	if err != nil {
		return fmt.Errorf("failed to stat path: %w", err)
	}

	if !st.IsDir() {
		var result *driver.ParseResult
		result, err = driver.Parse(filePath, maxDiagnostics)
		if err != nil {
			return fmt.Errorf("parsing failed: %w", err)
		}

		printDiagnostics(cmd, result.Bag, result.FileSet)

		switch format {
		case "tree", "pretty":
			return diagfmt.FormatModuleTree(os.Stdout, result.Builder, result.Module)
		case "json":
			return diagfmt.FormatModuleJSON(os.Stdout, result.Builder, result.Module)
		default:
			return fmt.Errorf("unknown format: %s", format)
		}
	}

	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	fs, results, err := driver.ParseDir(cmd.Context(), filePath, maxDiagnostics, jobs)
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}

	for _, r := range results {
		printDiagnostics(cmd, r.Bag, fs)
	}

	switch format {
	case "tree", "pretty":
		for idx, r := range results {
			if !quiet {
				if _, err := fmt.Fprintf(os.Stdout, "== %s ==\n", r.Path); err != nil {
					return err
				}
			}
			if r.Builder != nil {
				if err := diagfmt.FormatModuleTree(os.Stdout, r.Builder, r.Module); err != nil {
					return err
				}
			}
			if !quiet && idx < len(results)-1 {
				if _, err := fmt.Fprintln(os.Stdout); err != nil {
					return err
				}
			}
		}
	case "json":
		output := make(map[string]*diagfmt.CSTNode, len(results))
		for _, r := range results {
			if r.Builder == nil {
				output[r.Path] = nil
				continue
			}
			node := diagfmt.BuildModuleJSON(r.Builder, r.Module)
			output[r.Path] = &node
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
