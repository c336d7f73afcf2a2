// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/slz

package slz

// Format selects the framing wrapped around the DEFLATE bitstream.
type Format int

const (
	// FormatDeflate emits a raw RFC 1951 bitstream with no framing.
	FormatDeflate Format = iota
	// FormatGzip emits an RFC 1952 gzip member (header, CRC-32+ISIZE trailer).
	FormatGzip
	// FormatZlib emits an RFC 1950 zlib wrapper (header, Adler-32 trailer).
	FormatZlib
)

// Level selects the encoder's compression strategy.
type Level int

const (
	// Level0 disables match finding: every block is a stored (BTYPE=00) block.
	Level0 Level = 0
	// Level1 runs the LZ77 match finder and emits fixed-Huffman (BTYPE=01)
	// blocks, falling back to stored blocks per the literal-density rule.
	Level1 Level = 1
)

// valid reports whether f is one of the three supported formats.
func (f Format) valid() bool {
	return f == FormatDeflate || f == FormatGzip || f == FormatZlib
}

// valid reports whether l is one of the two supported levels.
func (l Level) valid() bool {
	return l == Level0 || l == Level1
}
