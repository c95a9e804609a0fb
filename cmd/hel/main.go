package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"golang.org/x/term"

	"hel/internal/diagfmt"
	"hel/internal/driver"
	"hel/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "hel [file.hel]",
	Short: "hel language front-end",
	Long:  `hel tokenizes and parses hel source files, printing the syntax tree and diagnostics`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runRoot,
}

// main configures the root CLI command and executes it, exiting with
// status 1 if execution fails.
func main() {
	rootCmd.Version = version.VersionString()

	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(versionCmd)

	// Глобальные флаги
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to show")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// runRoot: с файлом — разобрать его; с директорией — загрузить пакет
// (манифест + граф импортов) и напечатать корневой модуль; без аргумента — REPL.
func runRoot(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return runRepl(cmd)
	}

	st, err := os.Stat(args[0])
	if err != nil {
		return fmt.Errorf("failed to stat path: %w", err)
	}
	if st.IsDir() {
		loader, pkg, err := loadPackage(cmd, args[0])
		if err != nil {
			return fmt.Errorf("package load failed: %w", err)
		}
		printDiagnostics(cmd, loader.Bag, loader.FileSet)
		if pkg.Root == nil {
			return nil
		}
		return diagfmt.FormatModuleTree(os.Stdout, loader.Builder, pkg.Root.CST)
	}

	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return err
	}

	result, err := driver.Parse(args[0], maxDiagnostics)
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}

	printDiagnostics(cmd, result.Bag, result.FileSet)
	return diagfmt.FormatModuleTree(os.Stdout, result.Builder, result.Module)
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// useColor решает, красить ли вывод, по значению флага --color.
func useColor(cmd *cobra.Command) bool {
	colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return false
	}
	return colorFlag == "on" || (colorFlag == "auto" && isTerminal(os.Stderr))
}
