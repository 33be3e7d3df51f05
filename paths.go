// mcdat2bin - Intel microcode .dat to .bin converter
// paths.go - Argument validation and output path derivation
// Dual-licensed under MIT and Apache 2.0

package main

import (
	"os"
	"strings"

	"github.com/pkg/errors"
)

// ValidatePaths checks the positional arguments and derives the output path.
// The checks run in order: argument count, .dat extension, input existence,
// output existence.
func ValidatePaths(args []string) (Paths, error) {
	if len(args) != 1 {
		return Paths{}, &UsageError{Args: len(args)}
	}

	input := args[0]
	output, ok := DeriveOutputPath(input)
	if !ok {
		return Paths{}, &InvalidExtensionError{Path: input}
	}

	exists, err := fileExists(input)
	if err != nil {
		return Paths{}, errors.Wrapf(err, "failed to stat %s", input)
	}
	if !exists {
		return Paths{}, &NotFoundError{Path: input}
	}

	exists, err = fileExists(output)
	if err != nil {
		return Paths{}, errors.Wrapf(err, "failed to stat %s", output)
	}
	if exists {
		return Paths{}, &OutputExistsError{Path: output}
	}

	return Paths{Input: input, Output: output}, nil
}

// DeriveOutputPath truncates the path at the first ".dat" and appends ".bin".
// It reports false when the path does not contain ".dat" at all.
func DeriveOutputPath(input string) (string, bool) {
	idx := strings.Index(input, DatExtension)
	if idx == -1 {
		return "", false
	}
	return input[:idx] + BinExtension, true
}

func fileExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}
