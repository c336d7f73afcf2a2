// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/slz

package slz

// RFC 1950 zlib header: CMF selects CM=8 (deflate) with CINFO=7 (32K
// window); FLG's FCHECK bits are computed so that the 16-bit big-endian
// value (CMF<<8)|FLG is a multiple of 31, as the RFC requires. FDICT is
// always 0 (no preset dictionary) and FLEVEL is 0 (fastest), consistent
// with the fixed-Huffman-only strategy.
const zlibCMF = 0x78

func writeZlibHeader(out []byte) []byte {
	flg := byte(0)
	if rem := (int(zlibCMF)*256 + int(flg)) % 31; rem != 0 {
		flg += byte(31 - rem)
	}
	return append(out, zlibCMF, flg)
}
