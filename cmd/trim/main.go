package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/aledsdavies/trim/internal/logs"
	"github.com/aledsdavies/trim/pkgs/lexer"
	"github.com/spf13/cobra"
)

// Build-time variables - can be set via ldflags
var (
	Version   string = "dev"
	BuildTime string = "unknown"
	GitCommit string = "unknown"
)

// Global flags
var (
	sourceFile string
	format     string
	logLevel   string
	logFile    string
	debug      bool
)

// logger is built before every command runs
var logger *logs.Logger

// errLexical is returned when the source contains ERROR tokens. The
// diagnostics have already been printed, so main only sets the exit code.
var errLexical = errors.New("lexical errors found")

func main() {
	err := rootCmd.Execute()
	closeLogging(rootCmd, nil)
	if err != nil {
		if !errors.Is(err, errLexical) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "trim",
	Short: "Tokenize Trim source files",
	Long: `trim runs the Trim lexer over a source file and reports the token stream.
Source is read from the file given as an argument, from --file, or from stdin
when input is piped or the file is "-".`,
	SilenceUsage:       true,
	SilenceErrors:      true,
	PersistentPreRunE:  setupLogging,
	PersistentPostRunE: closeLogging,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long:  "Display version, build time, and git commit information for trim.",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "trim %s\n", Version)
		fmt.Fprintf(out, "Built: %s\n", BuildTime)
		fmt.Fprintf(out, "Commit: %s\n", GitCommit)
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&sourceFile, "file", "f", "", "Path to source file (\"-\" for stdin)")
	rootCmd.PersistentFlags().StringVar(&format, "format", "text", "Token output format: text, json or cbor")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level: debug, info, warn or error")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Also write JSON logs to this file")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Trace lexer decisions at debug level")

	// Add subcommands
	rootCmd.AddCommand(tokensCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(keywordsCmd)
	rootCmd.AddCommand(versionCmd)
}

func setupLogging(cmd *cobra.Command, args []string) error {
	level := logLevel
	if debug {
		level = "debug"
	}

	l, err := logs.New(logs.Options{
		Level:  level,
		Writer: cmd.ErrOrStderr(),
		File:   logFile,
	})
	if err != nil {
		return err
	}
	logger = l
	return nil
}

func closeLogging(cmd *cobra.Command, args []string) error {
	if logger == nil {
		return nil
	}
	err := logger.Close()
	logger = nil
	return err
}

// lexerOptions translates global flags into lexer options
func lexerOptions(extra ...lexer.LexerOpt) []lexer.LexerOpt {
	opts := extra
	if debug {
		opts = append(opts, lexer.WithDebugDetailed(), lexer.WithLogger(logger.Logger))
	}
	return opts
}
