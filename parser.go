// mcdat2bin - Intel microcode .dat to .bin converter
// parser.go - .dat line classification, tokenizing and word parsing
// Dual-licensed under MIT and Apache 2.0

package main

import (
	"bufio"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/ccoveille/go-safecast"
)

// newLineScanner returns a scanner over the lines of a .dat document.
// Vendor files keep lines short, but a single long line must not abort the run.
func newLineScanner(r io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)
	return scanner
}

// IsCommentLine reports whether the whole line is skipped. Any "/" counts,
// which covers both /* */ and // markers, and also drops a data line that
// happens to carry one.
func IsCommentLine(line string) bool {
	return strings.Contains(line, CommentMarker)
}

// SplitTokens breaks a data line into tokens on runs of whitespace and commas
func SplitTokens(line string, lineNo int) []Token {
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})

	tokens := make([]Token, 0, len(fields))
	for _, f := range fields {
		text := strings.Trim(f, tokenCutset)
		if text == "" {
			continue
		}
		tokens = append(tokens, Token{Text: text, Line: lineNo})
	}
	return tokens
}

// ParseWord parses a token as a base-16 unsigned 32-bit value. A leading
// 0x or 0X is accepted since vendor files write words that way.
func ParseWord(tok Token) (Word, error) {
	digits := tok.Text
	if len(digits) > 2 && digits[0] == '0' && (digits[1] == 'x' || digits[1] == 'X') {
		digits = digits[2:]
	}

	val, err := strconv.ParseUint(digits, 16, 64)
	if err != nil {
		return 0, &MalformedTokenError{Token: tok, Err: err}
	}

	word, err := safecast.ToUint32(val)
	if err != nil {
		return 0, &MalformedTokenError{Token: tok, Err: err}
	}

	return Word(word), nil
}

// ParseLine returns the words carried by one input line. Comment lines
// yield no words and skipped set to true.
func ParseLine(line string, lineNo int) (words []Word, skipped bool, err error) {
	if IsCommentLine(line) {
		return nil, true, nil
	}

	for _, tok := range SplitTokens(line, lineNo) {
		w, err := ParseWord(tok)
		if err != nil {
			return nil, false, err
		}
		words = append(words, w)
	}
	return words, false, nil
}
