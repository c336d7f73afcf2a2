// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/slz

package slz

// streamState tracks block-boundary progress so that exactly one BFINAL=1
// bit is emitted per stream, regardless of how many Encode calls it takes.
type streamState int

const (
	stateInit  streamState = iota // header emitted (or about to be) by Init
	stateEOB                      // between blocks; not necessarily byte-aligned
	stateFixed                    // inside an open fixed-Huffman block
	stateLast                     // BFINAL=1 sent, trailing content not yet closed
	stateDone                     // bitstream complete, trailer still pending
	stateEnd                      // terminal; further calls are no-ops
)

// Stream is a single-owner DEFLATE/GZIP/ZLIB encoder. It is created with
// NewStream, driven by Init, one or more calls to Encode, and a final call
// to Finish, and is not safe for concurrent use.
type Stream struct {
	format Format
	level  Level
	state  streamState

	bw bitWriter

	crc              uint32 // running CRC-32 (gzip only)
	adlerS1, adlerS2 uint32 // running Adler-32 accumulators (zlib only)
	ilen             uint64 // total uncompressed bytes consumed so far

	pendingLiterals []byte // literal bytes not yet written to the bitstream
	pendingBit9     int    // how many of pendingLiterals cost 9 bits under fixed Huffman

	finalSent bool // true once BFINAL=1 has been written
}

// NewStream allocates a Stream for the given format and level. level 0
// emits stored blocks only; level 1 runs the LZ77 match finder and emits
// fixed-Huffman blocks, falling back to stored blocks per the
// literal-density rule in block.go.
func NewStream(format Format, level Level) (*Stream, error) {
	if !format.valid() {
		return nil, ErrInvalidFormat
	}
	if !level.valid() {
		return nil, ErrInvalidLevel
	}
	return &Stream{
		format:  format,
		level:   level,
		state:   stateInit,
		adlerS1: 1, // RFC 1950 initial Adler-32 state is (1, 0)
	}, nil
}

// Init writes the format's framing header (if any) to out and returns the
// extended slice. It must be called exactly once, before any Encode call.
func (s *Stream) Init(out []byte) []byte {
	switch s.format {
	case FormatGzip:
		out = writeGzipHeader(out)
	case FormatZlib:
		out = writeZlibHeader(out)
	}
	s.state = stateEOB
	return out
}

// Encode compresses in, appending the resulting bytes to out, and updates
// the stream's running checksum and byte count. more indicates whether
// further Encode calls will follow with additional input; when false, any
// literal residue accumulated so far is flushed and closed out, which may
// include setting BFINAL=1 directly on the block that carries it — Finish
// still runs afterward to flush the trailing bits and write the format
// trailer, but has nothing left to close in the common case. Encode is a
// no-op once the stream has reached Finish.
func (s *Stream) Encode(out []byte, in []byte, more bool) []byte {
	if s.state == stateEnd {
		return out
	}
	if s.level.params().useMatchFinder {
		return s.encodeLevel1(out, in, more)
	}
	return s.encodeLevel0(out, in, more)
}

// Finish writes the terminal EOB/BFINAL bit and the format trailer (if
// any), then transitions the stream to its terminal state. Further Encode
// or Finish calls are no-ops returning the input slice unchanged.
func (s *Stream) Finish(out []byte) []byte {
	if s.state == stateEnd {
		return out
	}

	if s.level.params().useMatchFinder {
		out = s.finalizeFixed(out)
	} else if !s.finalSent {
		out = s.emitStoredChunk(out, nil, true)
	}

	out = s.bw.alignToByte(out)
	s.state = stateDone
	out = s.writeTrailer(out)
	s.state = stateEnd
	return out
}

// CRC32 returns the stream's running CRC-32 checksum, the same field
// original_source/src/slz.h calls strm.crc32: it is only updated for
// FormatGzip and reads zero for the other two formats.
func (s *Stream) CRC32() uint32 {
	return s.crc
}

// writeTrailer appends the format-specific trailer. Raw deflate has none.
func (s *Stream) writeTrailer(out []byte) []byte {
	switch s.format {
	case FormatGzip:
		out = s.bw.put32LE(out, s.crc)
		out = s.bw.put32LE(out, uint32(s.ilen))
	case FormatZlib:
		v := adler32Value(s.adlerS1, s.adlerS2)
		out = append(out, byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
	}
	return out
}

// MaxEncodedLen returns a safe output-buffer size for compressing n bytes
// with the given format in a single Init+Encode+Finish sequence, per the
// worst-case stored-block inflation bound plus framing overhead.
func MaxEncodedLen(n int, format Format) int {
	bound := n + n/4 + 32
	switch format {
	case FormatGzip:
		bound += 18 // 10-byte header + 8-byte trailer
	case FormatZlib:
		bound += 6 // 2-byte header + 4-byte trailer
	}
	return bound
}
