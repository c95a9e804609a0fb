package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"hel/internal/ast"
	"hel/internal/diag"
	"hel/internal/diagfmt"
	"hel/internal/lexer"
	"hel/internal/parser"
	"hel/internal/source"
	"hel/internal/token"
)

// runRepl читает stdin построчно: приглашение "> ", разбор строки,
// печать диагностик и CST. EOF завершает цикл с нулевым кодом выхода.
func runRepl(cmd *cobra.Command) error {
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return err
	}

	prompt := isTerminal(os.Stdin)
	scanner := bufio.NewScanner(os.Stdin)

	for {
		if prompt {
			fmt.Print("> ")
		}
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		replLine(cmd, line, maxDiagnostics)
	}

	return scanner.Err()
}

// replLine разбирает одну строку. Строки, начинающиеся с top-level
// стартера, разбираются как модуль; всё остальное — как выражение.
func replLine(cmd *cobra.Command, line string, maxDiagnostics int) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("repl", []byte(line))
	file := fs.Get(fileID)

	bag := diag.NewBag(maxDiagnostics)
	lx := lexer.New(file, lexer.Options{
		Reporter: &diag.BagReporter{Bag: bag},
	})
	builder := ast.NewBuilder(ast.Hints{}, nil)
	p := parser.New(lx, builder, parser.Options{
		Reporter: &diag.BagReporter{Bag: bag},
	})

	if startsTopLevel(lx) {
		moduleID, _ := p.ParseModule()
		printDiagnostics(cmd, bag, fs)
		_ = diagfmt.FormatModuleTree(os.Stdout, builder, moduleID)
		return
	}

	exprID, ok := p.ParseExpr()
	printDiagnostics(cmd, bag, fs)
	if ok {
		_ = diagfmt.FormatExprTree(os.Stdout, builder, exprID)
	}
}

// startsTopLevel определяет по первому токену, похожа ли строка на
// top-level конструкцию модуля.
func startsTopLevel(lx *lexer.Lexer) bool {
	switch lx.Peek().Kind {
	case token.KwImport, token.KwLet, token.KwType, token.KwStruct, token.At:
		return true
	default:
		return false
	}
}
