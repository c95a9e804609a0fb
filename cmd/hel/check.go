package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"hel/internal/project"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] <file.hel|directory>",
	Short: "Load a hel package and report diagnostics",
	Long:  `Check discovers the package manifest, follows imports from the root module, and reports diagnostics for every reachable module`,
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().Bool("cache", true, "use the on-disk module cache")
}

// loadPackage загружает пакет через project.Loader, подключая дисковый
// кэш модулей, если он не выключен флагом.
func loadPackage(cmd *cobra.Command, target string) (*project.Loader, *project.Package, error) {
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return nil, nil, err
	}

	loader := project.NewLoader(maxDiagnostics)

	useCache := true
	if cmd.Flags().Lookup("cache") != nil {
		useCache, err = cmd.Flags().GetBool("cache")
		if err != nil {
			return nil, nil, err
		}
	}
	if useCache {
		// недоступный кэш — не ошибка, просто работаем без него
		if cache, err := project.OpenDiskCache("hel"); err == nil {
			loader.Cache = cache
		}
	}

	pkg, err := loader.LoadPackage(target)
	if err != nil {
		return nil, nil, err
	}
	return loader, pkg, nil
}

func runCheck(cmd *cobra.Command, args []string) error {
	loader, pkg, err := loadPackage(cmd, args[0])
	if err != nil {
		return fmt.Errorf("package load failed: %w", err)
	}

	printDiagnostics(cmd, loader.Bag, loader.FileSet)

	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return err
	}
	if !quiet {
		fmt.Fprintf(os.Stdout, "package %s: %d module(s)\n", pkg.Name, len(pkg.Modules))
		for _, name := range pkg.Order {
			module := pkg.Modules[name]
			status := "ok"
			if module.Broken {
				status = "broken"
			}
			fmt.Fprintf(os.Stdout, "  %-20s %s (%s)\n", name, module.Path, status)
		}
	}

	// диагностики сами по себе не проваливают процесс
	return nil
}
