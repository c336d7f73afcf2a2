// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/slz

/*
Package slz implements a streaming, single-pass DEFLATE encoder tuned for
throughput rather than ratio: it emits only stored blocks (BTYPE=00) and
fixed-Huffman blocks (BTYPE=01), never dynamic Huffman, and finds matches
with a single-entry direct-mapped hash table (no chains, no lazy matching).
It targets CPU-bound framing work such as HTTP response compression and log
shipping, where spending cycles on optimal parsing isn't worth it.

Three wire formats share the same block encoder:

  - FormatDeflate: raw RFC 1951 bitstream, no framing.
  - FormatGzip: RFC 1952 member (10-byte header, CRC-32 + ISIZE trailer).
  - FormatZlib: RFC 1950 wrapper (2-byte header, big-endian Adler-32 trailer).

# Usage

A Stream is created once and driven by repeated calls to Encode, each
handed a chunk of input and a More flag indicating whether further chunks
will follow, then closed out by Finish:

	s, err := slz.NewStream(slz.FormatGzip, slz.Level1)
	out := make([]byte, 0, slz.MaxEncodedLen(len(chunk), slz.FormatGzip))
	out = s.Init(out)
	out = s.Encode(out, chunk, more)
	out = s.Finish(out)

Level0 emits stored blocks only (no match finding); Level1 adds the LZ77 +
fixed-Huffman path. A Stream is not safe for concurrent use; it is a
single-owner value mutated in place by its caller, matching the framing
contract in RFC 1951/1952/1950.
*/
package slz
