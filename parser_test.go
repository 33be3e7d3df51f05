// mcdat2bin - Intel microcode .dat to .bin converter
// parser_test.go - Unit tests for line classification and token parsing
// Dual-licensed under MIT and Apache 2.0

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsCommentLine(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected bool
	}{
		{name: "block comment", line: "/* Copyright (c) 2019 Intel */", expected: true},
		{name: "line comment", line: "// 06-9e-0a", expected: true},
		{name: "comment then data", line: "/* comment */ 1234", expected: true},
		{name: "slash inside data", line: "0x00000001, 0x0000/002", expected: true},
		{name: "plain data", line: "0x00000001,\t0x000000b4,", expected: false},
		{name: "empty", line: "", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsCommentLine(tt.line))
		})
	}
}

func TestSplitTokens(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected []string
	}{
		{name: "whitespace", line: "0001 0002 0003", expected: []string{"0001", "0002", "0003"}},
		{name: "mixed commas", line: "0001, 0002,0003", expected: []string{"0001", "0002", "0003"}},
		{name: "tabs and trailing comma", line: "\t0x0001,\t0x0002,\r\n", expected: []string{"0x0001", "0x0002"}},
		{name: "only separators", line: " , ,\t, ", expected: []string{}},
		{name: "empty", line: "", expected: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := SplitTokens(tt.line, 7)

			texts := make([]string, 0, len(tokens))
			for _, tok := range tokens {
				assert.Equal(t, 7, tok.Line)
				texts = append(texts, tok.Text)
			}
			assert.Equal(t, tt.expected, texts)
		})
	}
}

func TestParseWord(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		expected    Word
		expectError bool
	}{
		{name: "upper case", text: "1A2B3C4D", expected: 0x1A2B3C4D},
		{name: "lower case", text: "deadbeef", expected: 0xDEADBEEF},
		{name: "0x prefix", text: "0x000000b4", expected: 0xB4},
		{name: "0X prefix", text: "0XCAFEBABE", expected: 0xCAFEBABE},
		{name: "short", text: "1", expected: 1},
		{name: "max", text: "FFFFFFFF", expected: 0xFFFFFFFF},
		{name: "too wide", text: "100000000", expectError: true},
		{name: "way too wide", text: "FFFFFFFFFFFFFFFFFF", expectError: true},
		{name: "not hex", text: "XYZ", expectError: true},
		{name: "bare prefix", text: "0x", expectError: true},
		{name: "negative", text: "-1", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := ParseWord(Token{Text: tt.text, Line: 3})

			if tt.expectError {
				var malformed *MalformedTokenError
				require.ErrorAs(t, err, &malformed)
				assert.Equal(t, tt.text, malformed.Token.Text)
				assert.Equal(t, 3, malformed.Token.Line)
				assert.Contains(t, err.Error(), "line 3")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, w)
		})
	}
}

func TestParseLine(t *testing.T) {
	words, skipped, err := ParseLine("/* comment */ 1234", 1)
	require.NoError(t, err)
	assert.True(t, skipped)
	assert.Empty(t, words)

	commas, _, err := ParseLine("0001, 0002,0003", 2)
	require.NoError(t, err)
	spaces, _, err := ParseLine("0001 0002 0003", 3)
	require.NoError(t, err)
	assert.Equal(t, []Word{1, 2, 3}, commas)
	assert.Equal(t, spaces, commas)

	_, _, err = ParseLine("0001 nothex 0003", 9)
	var malformed *MalformedTokenError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, "nothex", malformed.Token.Text)
	assert.Equal(t, 9, malformed.Token.Line)
}
