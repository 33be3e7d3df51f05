// mcdat2bin - Intel microcode .dat to .bin converter
// main.go - Main entry point
// Dual-licensed under MIT and Apache 2.0

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
)

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

// run converts the single .dat file named in args[1:] and returns the
// process exit status. Usage goes to stdout, errors and logs to stderr.
func run(args []string, stdout, stderr io.Writer) int {
	command := "mcdat2bin"
	if len(args) > 0 {
		command = args[0]
		args = args[1:]
	}

	logger := newLogger(defaultLogLevel, stderr)

	paths, err := ValidatePaths(args)
	if err != nil {
		var usage *UsageError
		if errors.As(err, &usage) {
			printUsage(stdout, command)
			return ExitOK
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCodeFor(err)
	}

	res, err := NewConverter(logger).Convert(paths)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCodeFor(err)
	}

	LogSummary(logger, res)
	return ExitOK
}

func printUsage(w io.Writer, command string) {
	fmt.Fprintln(w, "Usage: "+command+" <intel microcode .dat file>")
	fmt.Fprintln(w, "Converts the ASCII hex words of a .dat file into a raw .bin image")
	fmt.Fprintln(w, "of 32-bit words in host byte order, written next to the input.")
	fmt.Fprintln(w, "An existing .bin file is never overwritten.")
}
