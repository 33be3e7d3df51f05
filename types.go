// mcdat2bin - Intel microcode .dat to .bin converter
// types.go - Type definitions for microcode words and update headers
// Dual-licensed under MIT and Apache 2.0

package main

// Constants
const (
	DatExtension = ".dat"
	BinExtension = ".bin"

	WordSize = 4 // bytes per packed word

	CommentMarker = "/" // any line containing this is skipped

	UpdateHeaderWords = 12                          // 48-byte update header
	UpdateHeaderSize  = UpdateHeaderWords * WordSize // 0x30
	DefaultDataSize   = 2000                        // data size when the header field is 0
	DefaultTotalSize  = 2048                        // total size when the header field is 0

	maxLineLength = 1 << 20
)

// tokenCutset is stripped from both ends of every token
const tokenCutset = ", \t\n"

// Word is one 32-bit microcode word
type Word uint32

// Token is a single hex substring taken from a data line
type Token struct {
	Text string // token after stripping
	Line int    // 1-based line number in the input
}

// Paths holds the validated input and the derived output location
type Paths struct {
	Input  string
	Output string
}

// Result describes a finished conversion
type Result struct {
	Paths
	LinesRead    int
	CommentLines int
	WordsWritten int
	BytesWritten int64
	ByteOrder    string // "little-endian" or "big-endian"

	// Updates lists the update headers found while writing, in file order
	Updates []UpdateHeader
}

// UpdateHeader represents the 48-byte header at the start of every update
// Layout:
//   0x00: HeaderVersion
//   0x04: UpdateRevision (signed)
//   0x08: Date (BCD, 0xMMDDYYYY)
//   0x0C: ProcessorSignature
//   0x10: Checksum
//   0x14: LoaderRevision
//   0x18: ProcessorFlags
//   0x1C: DataSize (0 means 2000 bytes)
//   0x20: TotalSize (0 means 2048 bytes)
//   0x24-0x2F: Reserved (12 bytes)
type UpdateHeader struct {
	HeaderVersion      uint32
	UpdateRevision     int32
	Date               uint32
	ProcessorSignature uint32
	Checksum           uint32
	LoaderRevision     uint32
	ProcessorFlags     uint32
	DataSize           uint32
	TotalSize          uint32
	Reserved           [3]uint32
}
