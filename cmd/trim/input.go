package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// readSource resolves the input for a command. A positional argument wins
// over --file. "-" reads stdin, as does an empty name when stdin is piped.
func readSource(cmd *cobra.Command, args []string) (name, source string, err error) {
	name = sourceFile
	if len(args) > 0 {
		name = args[0]
	}

	r, closeFn, err := getInputReader(cmd, name)
	if err != nil {
		return "", "", err
	}
	defer closeFn()

	data, err := io.ReadAll(r)
	if err != nil {
		return "", "", fmt.Errorf("error reading %s: %w", displayName(name), err)
	}
	return displayName(name), string(data), nil
}

func getInputReader(cmd *cobra.Command, file string) (io.Reader, func() error, error) {
	// Explicit stdin
	if file == "-" {
		return cmd.InOrStdin(), func() error { return nil }, nil
	}

	// Piped input when no file is given
	if file == "" {
		if hasPipedInput() {
			return cmd.InOrStdin(), func() error { return nil }, nil
		}
		return nil, nil, fmt.Errorf("no input: pass a source file or pipe source on stdin")
	}

	f, err := os.Open(file)
	if err != nil {
		return nil, nil, fmt.Errorf("error opening file %s: %w", file, err)
	}
	return f, f.Close, nil
}

// hasPipedInput detects if there's data piped to stdin
func hasPipedInput() bool {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false
	}

	// Check if stdin is not a character device (i.e., it's piped)
	return (stat.Mode() & os.ModeCharDevice) == 0
}

func displayName(file string) string {
	if file == "" || file == "-" {
		return "<stdin>"
	}
	return file
}
