// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/slz

package slz

// DEFLATE format constants: window/match bounds, block-type markers, and
// the hash-table sizing used by the match finder.

// Match length and distance bounds (RFC 1951 §3.2.5).
const (
	minMatchLen = 3     // shortest back-reference the format can encode
	maxMatchLen = 258   // longest back-reference the format can encode
	maxDistance = 32768 // sliding-window distance limit
)

// DEFLATE block-type header values (BFINAL in bit 0, BTYPE in bits 1-2).
const (
	btypeStored = 0 // BTYPE=00
	btypeFixed  = 1 // BTYPE=01
)

// eobSymbol is the end-of-block symbol in the literal/length alphabet.
const eobSymbol = 256

// Stored-block framing bounds (RFC 1951 §3.2.4).
const (
	storedBlockMaxLen = 65535 // LEN is a 16-bit field
	storedBlockHdrLen = 5     // BFINAL/BTYPE byte + LEN(2) + NLEN(2), post-alignment
)

// literalFallbackThreshold is the bit9 break-even point from spec §4.2: the
// cost of switching BTYPE mid-stream (EOB 7 + BTYPE 3 + alignment <=7 +
// LEN 16 + NLEN 16 + next-BTYPE 3 = 52 bits) is cheaper to pay once than to
// keep spending an extra bit per 9-bit literal.
const literalFallbackThreshold = 52

// hashBits is log2 of the match-finder hash table size (spec §2 item 4: H=13).
const hashBits = 13

// hashTableSize is the number of slots in the match finder's hash table.
const hashTableSize = 1 << hashBits

// matchWordLen is the width, in bytes, of the rolling word hashed at each
// input position (spec §4.2.a).
const matchWordLen = 4
