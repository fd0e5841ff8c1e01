package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"strings"

	"github.com/aledsdavies/trim/internal/watch"
	"github.com/aledsdavies/trim/pkgs/diagnostics"
	"github.com/aledsdavies/trim/pkgs/lexer"
	"github.com/aledsdavies/trim/pkgs/tokenfmt"
	"github.com/spf13/cobra"
)

// Command specific flags
var (
	validate bool
	stats    bool
	suggest  bool
)

var tokensCmd = &cobra.Command{
	Use:   "tokens [file]",
	Short: "Print the token stream of a source file",
	Long: `Tokenize a source file and print every token, including ERROR tokens,
in the format selected by --format.`,
	Args: cobra.MaximumNArgs(1),
	RunE: tokensCommand,
}

var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Report lexical errors in a source file",
	Long: `Tokenize a source file and render a diagnostic for every ERROR token.
Exits with status 1 when any lexical error is found.`,
	Args: cobra.MaximumNArgs(1),
	RunE: checkCommand,
}

var watchCmd = &cobra.Command{
	Use:   "watch <file>",
	Short: "Re-check a source file every time it changes",
	Args:  cobra.ExactArgs(1),
	RunE:  watchCommand,
}

var keywordsCmd = &cobra.Command{
	Use:   "keywords [query]",
	Short: "List reserved keywords, optionally fuzzy matched against query",
	Args:  cobra.MaximumNArgs(1),
	RunE:  keywordsCommand,
}

func init() {
	tokensCmd.Flags().BoolVar(&validate, "validate", false, "Validate JSON output against the token schema")
	tokensCmd.Flags().BoolVar(&stats, "stats", false, "Print token counts per type to stderr")
	checkCmd.Flags().BoolVar(&suggest, "suggest", false, "Hint at names that look like misspelled keywords")
	watchCmd.Flags().BoolVar(&suggest, "suggest", false, "Hint at names that look like misspelled keywords")
}

func tokensCommand(cmd *cobra.Command, args []string) error {
	f, err := tokenfmt.ParseFormat(format)
	if err != nil {
		return err
	}
	if validate && f != tokenfmt.JSON {
		return fmt.Errorf("--validate requires --format json")
	}

	name, source, err := readSource(cmd, args)
	if err != nil {
		return err
	}

	opts := lexerOptions()
	if stats {
		opts = append(opts, lexer.WithTelemetryBasic())
	}
	lex := lexer.NewLexer(source, opts...)
	tokens := lex.Tokenize()
	logger.Info("tokenized", "file", name, "tokens", len(tokens), "errors", len(lexer.Errors(tokens)))

	var buf bytes.Buffer
	if err := tokenfmt.Write(&buf, f, tokens); err != nil {
		return fmt.Errorf("error writing tokens: %w", err)
	}
	if validate {
		if err := tokenfmt.ValidateJSON(buf.Bytes()); err != nil {
			return err
		}
	}
	if _, err := cmd.OutOrStdout().Write(buf.Bytes()); err != nil {
		return err
	}

	if stats {
		writeStats(cmd.ErrOrStderr(), lex.TokenTelemetry())
	}
	return nil
}

func writeStats(w io.Writer, telemetry map[lexer.TokenType]*lexer.TokenTelemetry) {
	types := make([]lexer.TokenType, 0, len(telemetry))
	for typ := range telemetry {
		types = append(types, typ)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })

	for _, typ := range types {
		fmt.Fprintf(w, "%s: %d\n", typ, telemetry[typ].Count)
	}
}

func checkCommand(cmd *cobra.Command, args []string) error {
	name, source, err := readSource(cmd, args)
	if err != nil {
		return err
	}
	return check(cmd, name, source)
}

// check renders diagnostics for source and returns errLexical when it
// contains ERROR tokens
func check(cmd *cobra.Command, name, source string) error {
	tokens := lexer.Tokenize(source, lexerOptions()...)

	bag := diagnostics.FromTokens(name, tokens)
	if suggest {
		diagnostics.SuggestKeywords(bag, tokens)
	}
	logger.Info("checked", "file", name, "tokens", len(tokens), "errors", bag.ErrorCount())

	emitter := diagnostics.NewEmitter(cmd.ErrOrStderr(), name, source)
	if err := emitter.EmitAll(bag); err != nil {
		return err
	}

	if bag.HasErrors() {
		return errLexical
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%d tokens)\n", name, len(tokens))
	return nil
}

func watchCommand(cmd *cobra.Command, args []string) error {
	w, err := watch.New(args[0])
	if err != nil {
		return err
	}
	defer w.Close()

	ctx, stop := signal.NotifyContext(cmdContext(cmd), os.Interrupt)
	defer stop()

	run := func() {
		data, err := os.ReadFile(args[0])
		if err != nil {
			logger.Warn("read failed", "file", args[0], "error", err)
			return
		}
		// errLexical only means diagnostics were printed
		if err := check(cmd, args[0], string(data)); err != nil && !errors.Is(err, errLexical) {
			logger.Error("check failed", "file", args[0], "error", err)
		}
	}

	run()
	logger.Info("watching", "file", w.Path())
	return w.Run(ctx, run)
}

func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func keywordsCommand(cmd *cobra.Command, args []string) error {
	query := ""
	if len(args) > 0 {
		query = args[0]
	}

	matches := diagnostics.FindKeywords(query)
	if len(matches) == 0 {
		return fmt.Errorf("no keyword matches %q", query)
	}
	_, err := fmt.Fprintln(cmd.OutOrStdout(), strings.Join(matches, "\n"))
	return err
}
