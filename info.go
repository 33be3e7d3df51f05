// mcdat2bin - Intel microcode .dat to .bin converter
// info.go - Update header tracking and conversion summary
// Dual-licensed under MIT and Apache 2.0

package main

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"log/slog"

	"github.com/ccoveille/go-safecast"
)

// EffectiveDataSize returns the data size in bytes, applying the 0 => 2000 rule
func (h UpdateHeader) EffectiveDataSize() uint32 {
	if h.DataSize == 0 {
		return DefaultDataSize
	}
	return h.DataSize
}

// EffectiveTotalSize returns the total update size in bytes, applying the 0 => 2048 rule
func (h UpdateHeader) EffectiveTotalSize() uint32 {
	if h.TotalSize == 0 {
		return DefaultTotalSize
	}
	return h.TotalSize
}

// DateString renders the BCD date field as MM/DD/YYYY
func (h UpdateHeader) DateString() string {
	return fmt.Sprintf("%02x/%02x/%04x", h.Date>>24, h.Date>>16&0xFF, h.Date&0xFFFF)
}

// decodeUpdateHeader lays twelve words out in host order and reads them back
// as a header, the same view a loader gets of the produced image
func decodeUpdateHeader(words []Word) (UpdateHeader, error) {
	var h UpdateHeader
	if len(words) < UpdateHeaderWords {
		return h, fmt.Errorf("need %d words for an update header, have %d", UpdateHeaderWords, len(words))
	}

	raw := make([]byte, 0, UpdateHeaderSize)
	for _, w := range words[:UpdateHeaderWords] {
		raw = binary.NativeEndian.AppendUint32(raw, uint32(w))
	}
	if err := binary.Read(bytes.NewReader(raw), binary.NativeEndian, &h); err != nil {
		return h, fmt.Errorf("failed to read update header: %v", err)
	}
	return h, nil
}

// updateTracker watches the word stream and collects the header of every
// update it passes, stepping from one update to the next by total size
type updateTracker struct {
	pos     int // index of the next word fed
	next    int // index where the next update header starts
	done    bool
	pending []Word
	headers []UpdateHeader
}

// Feed records one output word
func (t *updateTracker) Feed(w Word) {
	defer func() { t.pos++ }()

	if t.done || t.pos < t.next {
		return
	}

	t.pending = append(t.pending, w)
	if len(t.pending) < UpdateHeaderWords {
		return
	}

	h, err := decodeUpdateHeader(t.pending)
	t.pending = t.pending[:0]
	if err != nil {
		t.done = true
		return
	}
	t.headers = append(t.headers, h)

	total, err := safecast.ToInt(h.EffectiveTotalSize() / WordSize)
	if err != nil || total < UpdateHeaderWords {
		// a size smaller than its own header cannot locate the next update
		t.done = true
		return
	}
	t.next += total
}

// Headers returns the headers collected so far
func (t *updateTracker) Headers() []UpdateHeader {
	return t.headers
}

// LogSummary reports a finished conversion and describes each update found in it
func LogSummary(logger *slog.Logger, res *Result) {
	logger.Info("Conversion complete.",
		"input", res.Input,
		"output", res.Output,
		"words", res.WordsWritten,
		"bytes", res.BytesWritten,
		"comment_lines", res.CommentLines,
		"byte_order", res.ByteOrder,
	)

	var offset int64
	for i, h := range res.Updates {
		logger.Info("Update header",
			"index", i+1,
			"offset", fmt.Sprintf("0x%x", offset),
			"header_version", fmt.Sprintf("0x%x", h.HeaderVersion),
			"revision", h.UpdateRevision,
			"date", h.DateString(),
			"signature", fmt.Sprintf("0x%x", h.ProcessorSignature),
			"loader_revision", fmt.Sprintf("0x%x", h.LoaderRevision),
			"processor_flags", fmt.Sprintf("0x%x", h.ProcessorFlags),
			"data_size", h.EffectiveDataSize(),
			"total_size", h.EffectiveTotalSize(),
		)

		offset += int64(h.EffectiveTotalSize())
		if offset > res.BytesWritten {
			logger.Warn("Update extends past the end of the output.",
				"index", i+1, "end", offset, "bytes", res.BytesWritten)
		}
	}
}
