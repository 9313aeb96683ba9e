package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var version = "dev"

var (
	cfgFile  string
	logLevel string

	cfg    *Config
	logger *log.Logger
)

var rootCmd = &cobra.Command{
	Use:   "minipas",
	Short: "Interpreter for a small Pascal subset",
	Long: `minipas lexes, parses and runs programs written in a small subset of
Pascal: one PROGRAM block with INTEGER/REAL variables, assignments and
arithmetic over + - * DIV /.

Source is read from the file argument, or standard input when absent or "-".`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./minipas.toml or ~/.config/minipas/config.toml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
}

func setup(cmd *cobra.Command, _ []string) error {
	var err error
	cfg, err = loadConfig(cfgFile)
	if err != nil {
		return err
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	lvl, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	logger = log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
		Level:  lvl,
		Prefix: "minipas",
	})
	return nil
}
