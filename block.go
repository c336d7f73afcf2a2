// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/slz

package slz

import "encoding/binary"

// Block-level encoding: the LZ77 match finder and fixed-Huffman/stored
// block emission that make up Level1, plus Level0's stored-only path. The
// hot loop shape follows the teacher's fast single-pass parser
// (compress_1x_fast.go): one hash lookup per input position, greedy
// extension on a hit, no lazy matching and no chaining.

// encodeLevel0 treats the entire window as literal data and writes it out
// as one or more stored blocks. No match finder runs and no fixed-Huffman
// machinery is touched, keeping a Level0 stream pure BTYPE=00 end to end.
// The final chunk of the last Encode call (more=false) carries BFINAL=1
// directly, so Finish has nothing left to close.
func (s *Stream) encodeLevel0(out []byte, in []byte, more bool) []byte {
	s.ilen += uint64(len(in))
	s.updateChecksum(in)
	if len(in) == 0 {
		return out
	}
	return s.emitStoredChunk(out, in, !more)
}

// encodeLevel1 runs the match finder over in and emits a mix of
// back-references and literal runs. Literal residue that doesn't end on a
// block-policy decision point is buffered in s.pendingLiterals and carried
// into the next Encode (or Finish) call; the hash table itself is local to
// this call, matching the per-call windowing the match finder promises (a
// match never reaches back across an Encode boundary).
func (s *Stream) encodeLevel1(out []byte, in []byte, more bool) []byte {
	s.ilen += uint64(len(in))
	s.updateChecksum(in)

	n := len(in)
	table := acquireMatchTable()
	defer releaseMatchTable(table)

	litStart := 0
	flushLocal := func(end int) {
		if end <= litStart {
			return
		}
		for _, b := range in[litStart:end] {
			if b >= 144 {
				s.pendingBit9++
			}
		}
		s.pendingLiterals = append(s.pendingLiterals, in[litStart:end]...)
		litStart = end
	}

	limit := n - matchWordLen
	pos := 0
	for pos <= limit {
		word := binary.LittleEndian.Uint32(in[pos:])
		prev, ok := table.lookupAndInsert(uint32(pos), word)
		if ok {
			maxExt := min(maxMatchLen-1, n-pos-1)
			cpl := commonPrefixLen(in[pos+1:pos+1+maxExt], in[int(prev)+1:int(prev)+1+maxExt])
			mlen := 1 + cpl
			if mlen >= minMatchLen {
				flushLocal(pos)
				out = s.flushLiterals(out, false)
				out = s.emitMatch(out, mlen, pos-int(prev))
				pos += mlen
				litStart = pos
				continue
			}
		}
		pos++
	}
	flushLocal(n)

	if !more {
		out = s.finalizeFixed(out)
	}
	return out
}

// commonPrefixLen returns how many leading bytes a and b share.
func commonPrefixLen(a, b []byte) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return i
}

// updateChecksum folds in into whichever running checksum the stream's
// format requires. Deflate has none.
func (s *Stream) updateChecksum(in []byte) {
	switch s.format {
	case FormatGzip:
		s.crc = crc32Update(s.crc, in)
	case FormatZlib:
		s.adlerS1, s.adlerS2 = adler32Update(s.adlerS1, s.adlerS2, in)
	}
}

// flushLiterals writes out s.pendingLiterals, choosing stored or
// fixed-Huffman per the literal-density rule (spec §4.2 step 3): once
// enough of the run would cost 9 bits apiece under fixed Huffman, paying
// the fixed overhead of switching to a stored block and back is cheaper.
// final marks this as the stream's terminal flush, letting a stored chunk
// carry BFINAL=1 directly on its last chunk.
func (s *Stream) flushLiterals(out []byte, final bool) []byte {
	if len(s.pendingLiterals) == 0 {
		return out
	}
	if s.pendingBit9 >= literalFallbackThreshold {
		out = s.emitStoredChunk(out, s.pendingLiterals, final)
	} else {
		out = s.emitLiteralsFixed(out, s.pendingLiterals, final)
	}
	s.pendingLiterals = s.pendingLiterals[:0]
	s.pendingBit9 = 0
	return out
}

// finalizeFixed closes out the fixed-Huffman path of a stream: it flushes
// any literal residue, marking the block it opens as final when BFINAL
// hasn't been sent yet (matching original_source/src/rfc1952.c's
// copy_lit_huff(buf, len, more), which opens the terminal literal block
// with enqueue(2 + !more, 3) instead of appending a separate empty final
// block), closes an still-open fixed block with an EOB, and only then
// falls back to an explicit empty BFINAL=1 block if nothing along the way
// already sent one. Called at the end of a final (more=false) Encode call
// and, idempotently, from Finish.
func (s *Stream) finalizeFixed(out []byte) []byte {
	out = s.flushLiterals(out, !s.finalSent)
	if s.state == stateFixed {
		out = s.emitEOB(out)
	}
	if !s.finalSent {
		out = s.emitFinalEmptyFixedBlock(out)
	}
	return out
}

// ensureFixedOpen starts a new fixed-Huffman block if none is currently
// open. final sets BFINAL=1 directly on the opened block's header instead
// of BFINAL=0, for the case where this block is known to carry the
// stream's last content; an already-open block is left untouched, since
// its header bits are already committed to the bit queue.
func (s *Stream) ensureFixedOpen(out []byte, final bool) []byte {
	if s.state == stateEOB || s.state == stateInit {
		header := uint32(0b010)
		if final {
			header = 0b011
			s.finalSent = true
		}
		out = s.bw.enqueue(out, header, 3)
		s.state = stateFixed
	}
	return out
}

// emitEOB writes the end-of-block symbol, closing whatever fixed block is
// currently open.
func (s *Stream) emitEOB(out []byte) []byte {
	code, bits := huffmanCode(eobSymbol)
	out = s.bw.enqueue(out, code, bits)
	s.state = stateEOB
	return out
}

// emitFinalEmptyFixedBlock writes the BFINAL=1, BTYPE=01 header for an
// otherwise-empty block followed immediately by its EOB, carrying the
// stream's single final bit when no stored block already did.
func (s *Stream) emitFinalEmptyFixedBlock(out []byte) []byte {
	out = s.bw.enqueue(out, 0b011, 3)
	s.state = stateFixed
	out = s.emitEOB(out)
	s.finalSent = true
	return out
}

// emitLiteralsFixed writes lits as fixed-Huffman literal symbols, opening a
// block first if none is open. final is threaded to ensureFixedOpen so a
// freshly opened block can carry BFINAL=1 directly when lits are the
// stream's terminal content.
func (s *Stream) emitLiteralsFixed(out []byte, lits []byte, final bool) []byte {
	out = s.ensureFixedOpen(out, final)
	for _, b := range lits {
		code, bits := huffmanCode(int(b))
		out = s.bw.enqueue(out, code, bits)
	}
	return out
}

// emitMatch writes a length/distance back-reference as fixed-Huffman
// symbols, opening a block first if none is open. A match is never the
// block that decides BFINAL: whether more input follows it within the
// same Encode call isn't known until the match loop finishes.
func (s *Stream) emitMatch(out []byte, length, dist int) []byte {
	out = s.ensureFixedOpen(out, false)

	sym, lbits, lval := lengthSymbol(length)
	code, bits := huffmanCode(sym)
	out = s.bw.enqueue(out, code, bits)
	if lbits > 0 {
		out = s.bw.enqueue(out, lval, lbits)
	}

	dcode, dbits, dval := distanceCode(dist)
	out = s.bw.enqueue(out, reverse5(uint32(dcode)), 5)
	if dbits > 0 {
		out = s.bw.enqueue(out, dval, dbits)
	}
	return out
}

// emitStoredChunk writes data as one or more stored (BTYPE=00) blocks,
// splitting at storedBlockMaxLen since LEN is a 16-bit field. A nil/empty
// data with final set writes a single zero-length block, used both for an
// empty stream and for the Level0 trailing marker. If a fixed block is
// currently open it is closed with an EOB first (spec §4.2 step 3).
func (s *Stream) emitStoredChunk(out []byte, data []byte, final bool) []byte {
	if s.state == stateFixed {
		out = s.emitEOB(out)
	}

	if len(data) == 0 {
		var bfinal uint32
		if final {
			bfinal = 1
		}
		out = s.bw.enqueue(out, bfinal, 3)
		out = s.bw.alignToByte(out)
		out = s.bw.put16LE(out, 0)
		out = s.bw.put16LE(out, 0xffff)
		if final {
			s.finalSent = true
			s.state = stateLast
		} else {
			s.state = stateEOB
		}
		return out
	}

	pos := 0
	for pos < len(data) {
		chunkLen := len(data) - pos
		if chunkLen > storedBlockMaxLen {
			chunkLen = storedBlockMaxLen
		}
		isLast := pos+chunkLen == len(data)

		var bfinal uint32
		if final && isLast {
			bfinal = 1
		}
		out = s.bw.enqueue(out, bfinal, 3)
		out = s.bw.alignToByte(out)
		out = s.bw.put16LE(out, uint16(chunkLen))
		out = s.bw.put16LE(out, ^uint16(chunkLen))
		out = append(out, data[pos:pos+chunkLen]...)
		pos += chunkLen

		if bfinal == 1 {
			s.finalSent = true
			s.state = stateLast
		} else {
			s.state = stateEOB
		}
	}
	return out
}
