package main

import (
	"fmt"
	"os"

	"f1-monk/pkg/config"
	"f1-monk/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	kbFlag      string
	verboseFlag bool
	rootCmd     = &cobra.Command{
		Use:   "advisorctl",
		Short: "Operator CLI for the F1 Monk advisory engine",
	}
)

func main() {
	rootCmd.PersistentFlags().StringVarP(&kbFlag, "kb", "k", "data/knowledge_base.yaml", "knowledge base seed file")
	rootCmd.PersistentFlags().BoolVar(&verboseFlag, "verbose", false, "log engine diagnostics to stderr")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func cliLogger() *zap.Logger {
	if !verboseFlag {
		return zap.NewNop()
	}
	l, err := logger.New(config.LoggerConfig{Level: "debug", Format: "console"})
	if err != nil {
		return zap.NewNop()
	}
	return l
}
