// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/slz

package slz

// RFC 1952 gzip member header: magic (0x1f, 0x8b), CM=8 (deflate), FLG=0,
// MTIME=0 (unset), XFL=4 (fastest algorithm, matching the fixed-Huffman-only
// strategy this encoder runs), OS=3 (Unix; this library has no OS-specific
// knowledge to report more precisely).
var gzipHeader = [10]byte{0x1f, 0x8b, 0x08, 0x00, 0, 0, 0, 0, 0x04, 0x03}

func writeGzipHeader(out []byte) []byte {
	return append(out, gzipHeader[:]...)
}
