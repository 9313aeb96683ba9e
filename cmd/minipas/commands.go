package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/gosuda/minipas"
	"github.com/gosuda/minipas/ast"
	"github.com/gosuda/minipas/interp"
	"github.com/gosuda/minipas/printer"
)

var (
	astFormat   string
	scopeFormat string
	replMode    string
)

var tokensCmd = &cobra.Command{
	Use:   "tokens [file]",
	Short: "Print the token stream of a program",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := readSource(cmd.InOrStdin(), args)
		if err != nil {
			return err
		}
		toks, err := minipas.Tokens(src)
		if err != nil {
			return withSource(err, src)
		}
		return writeTokens(cmd.OutOrStdout(), toks)
	},
}

var astCmd = &cobra.Command{
	Use:   "ast [file]",
	Short: "Print the syntax tree of a program",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := readSource(cmd.InOrStdin(), args)
		if err != nil {
			return err
		}
		prog, err := minipas.Parse(src)
		if err != nil {
			return withSource(err, src)
		}
		return writeAST(cmd.OutOrStdout(), prog, pick(astFormat, cfg.Output.ASTFormat))
	},
}

var rewriteCmd = &cobra.Command{
	Use:   "rewrite [file]",
	Short: "Print a program back as fully parenthesised source",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := readSource(cmd.InOrStdin(), args)
		if err != nil {
			return err
		}
		prog, err := minipas.Parse(src)
		if err != nil {
			return withSource(err, src)
		}
		_, err = io.WriteString(cmd.OutOrStdout(), printer.Program(prog))
		return err
	},
}

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a program and print its final scope",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := readSource(cmd.InOrStdin(), args)
		if err != nil {
			return err
		}
		in, err := minipas.Compile(src, interp.WithLogger(logger))
		if err != nil {
			return withSource(err, src)
		}
		if err := in.Run(); err != nil {
			return withSource(err, src)
		}
		return writeScope(cmd.OutOrStdout(), in.Scope(), pick(scopeFormat, cfg.Output.ScopeFormat))
	},
}

var evalCmd = &cobra.Command{
	Use:   "eval <expression>",
	Short: "Evaluate a bare arithmetic expression",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := minipas.Eval(args[0])
		if err != nil {
			return withSource(err, args[0])
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), ast.FormatNumber(v))
		return err
	},
}

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		mode := pick(replMode, cfg.REPL.Mode)
		sess := newSession(cfg, logger)
		switch mode {
		case "tui":
			return runTUI(sess, cfg)
		case "line":
			return runPlain(sess, cfg)
		default:
			return fmt.Errorf("unknown repl mode %q", mode)
		}
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "minipas", version)
	},
}

func init() {
	astCmd.Flags().StringVar(&astFormat, "format", "", "output format: tree, yaml or spew")
	runCmd.Flags().StringVar(&scopeFormat, "scope-format", "", "scope output format: text or yaml")
	replCmd.Flags().StringVar(&replMode, "mode", "", "repl frontend: tui or line")

	rootCmd.AddCommand(tokensCmd, astCmd, rewriteCmd, runCmd, evalCmd, replCmd, versionCmd)
}

// pick prefers a flag value over the configured one.
func pick(flag, configured string) string {
	if flag != "" {
		return flag
	}
	return configured
}
