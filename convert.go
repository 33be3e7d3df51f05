// mcdat2bin - Intel microcode .dat to .bin converter
// convert.go - Streaming conversion from .dat text to packed binary words
// Dual-licensed under MIT and Apache 2.0

package main

import (
	"bufio"
	"encoding/binary"
	"io"
	"log/slog"
	"os"

	"github.com/pkg/errors"
	"golang.org/x/sys/cpu"
)

// Converter turns .dat documents into raw word images
type Converter struct {
	logger *slog.Logger
	order  binary.ByteOrder
}

// NewConverter returns a converter that packs words in host byte order
func NewConverter(logger *slog.Logger) *Converter {
	return &Converter{
		logger: logger,
		order:  binary.NativeEndian,
	}
}

// ByteOrderName names the host byte order used for output words
func ByteOrderName() string {
	if cpu.IsBigEndian {
		return "big-endian"
	}
	return "little-endian"
}

// Convert reads paths.Input and writes its words to a freshly created
// paths.Output. On any failure after the output was created the partial
// file is removed; an existing file is never opened.
func (c *Converter) Convert(paths Paths) (res *Result, err error) {
	in, err := os.Open(paths.Input)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &NotFoundError{Path: paths.Input}
		}
		return nil, errors.Wrapf(err, "failed to open %s", paths.Input)
	}
	defer in.Close()

	out, err := os.OpenFile(paths.Output, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		if os.IsExist(err) {
			return nil, &OutputExistsError{Path: paths.Output}
		}
		return nil, &OpenFailureError{Path: paths.Output, Err: err}
	}
	closed := false
	defer func() {
		if !closed {
			out.Close()
		}
		if err == nil {
			return
		}
		if rmErr := os.Remove(paths.Output); rmErr != nil {
			c.logger.Warn("Failed to remove partial output.", "path", paths.Output, "error", rmErr)
			return
		}
		c.logger.Debug("Removed partial output.", "path", paths.Output)
	}()

	c.logger.Debug("Converting.", "input", paths.Input, "output", paths.Output, "byte_order", ByteOrderName())

	res = &Result{Paths: paths, ByteOrder: ByteOrderName()}
	if err = c.Encode(in, out, res); err != nil {
		return nil, err
	}

	if err = out.Sync(); err != nil {
		return nil, errors.Wrapf(err, "failed to sync %s", paths.Output)
	}
	closed = true
	if err = out.Close(); err != nil {
		return nil, errors.Wrapf(err, "failed to close %s", paths.Output)
	}

	return res, nil
}

// Encode scans r line by line and appends every parsed word to w.
// Counters and update headers are accumulated into res.
func (c *Converter) Encode(r io.Reader, w io.Writer, res *Result) error {
	scanner := newLineScanner(r)
	bw := bufio.NewWriter(w)
	tracker := &updateTracker{}

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()

		words, skipped, err := ParseLine(line, lineNo)
		if err != nil {
			return err
		}
		if skipped {
			res.CommentLines++
			continue
		}

		for _, word := range words {
			if err := binary.Write(bw, c.order, uint32(word)); err != nil {
				return errors.Wrap(err, "write")
			}
			res.WordsWritten++
			res.BytesWritten += WordSize
			tracker.Feed(word)
		}
	}
	res.LinesRead = lineNo

	if err := scanner.Err(); err != nil {
		return errors.Wrapf(err, "failed to read line %d", lineNo+1)
	}
	if err := bw.Flush(); err != nil {
		return errors.Wrap(err, "flush")
	}

	res.Updates = tracker.Headers()
	return nil
}
