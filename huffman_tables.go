// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/slz

package slz

// Fixed-Huffman and length/distance symbol tables (RFC 1951 §3.2.5, §3.2.6),
// precomputed once at process startup.

// fixedHuffman packs, for each literal/length symbol 0..287, the bit-reversed
// fixed-Huffman code in bits 4..12 and the code's bit length in bits 0..3.
// Huffman codes are packed MSB-first per RFC 1951, but this encoder's bit
// writer emits LSB-first, so the codes are pre-reversed here; emitting them
// is then just "enqueue(code, bits)".
var fixedHuffman = [288]uint16{
	0x00c8, 0x08c8, 0x04c8, 0x0cc8, 0x02c8, 0x0ac8, 0x06c8, 0x0ec8,
	0x01c8, 0x09c8, 0x05c8, 0x0dc8, 0x03c8, 0x0bc8, 0x07c8, 0x0fc8,
	0x0028, 0x0828, 0x0428, 0x0c28, 0x0228, 0x0a28, 0x0628, 0x0e28,
	0x0128, 0x0928, 0x0528, 0x0d28, 0x0328, 0x0b28, 0x0728, 0x0f28,
	0x00a8, 0x08a8, 0x04a8, 0x0ca8, 0x02a8, 0x0aa8, 0x06a8, 0x0ea8,
	0x01a8, 0x09a8, 0x05a8, 0x0da8, 0x03a8, 0x0ba8, 0x07a8, 0x0fa8,
	0x0068, 0x0868, 0x0468, 0x0c68, 0x0268, 0x0a68, 0x0668, 0x0e68,
	0x0168, 0x0968, 0x0568, 0x0d68, 0x0368, 0x0b68, 0x0768, 0x0f68,
	0x00e8, 0x08e8, 0x04e8, 0x0ce8, 0x02e8, 0x0ae8, 0x06e8, 0x0ee8,
	0x01e8, 0x09e8, 0x05e8, 0x0de8, 0x03e8, 0x0be8, 0x07e8, 0x0fe8,
	0x0018, 0x0818, 0x0418, 0x0c18, 0x0218, 0x0a18, 0x0618, 0x0e18,
	0x0118, 0x0918, 0x0518, 0x0d18, 0x0318, 0x0b18, 0x0718, 0x0f18,
	0x0098, 0x0898, 0x0498, 0x0c98, 0x0298, 0x0a98, 0x0698, 0x0e98,
	0x0198, 0x0998, 0x0598, 0x0d98, 0x0398, 0x0b98, 0x0798, 0x0f98,
	0x0058, 0x0858, 0x0458, 0x0c58, 0x0258, 0x0a58, 0x0658, 0x0e58,
	0x0158, 0x0958, 0x0558, 0x0d58, 0x0358, 0x0b58, 0x0758, 0x0f58,
	0x00d8, 0x08d8, 0x04d8, 0x0cd8, 0x02d8, 0x0ad8, 0x06d8, 0x0ed8,
	0x01d8, 0x09d8, 0x05d8, 0x0dd8, 0x03d8, 0x0bd8, 0x07d8, 0x0fd8,
	0x0139, 0x1139, 0x0939, 0x1939, 0x0539, 0x1539, 0x0d39, 0x1d39,
	0x0339, 0x1339, 0x0b39, 0x1b39, 0x0739, 0x1739, 0x0f39, 0x1f39,
	0x00b9, 0x10b9, 0x08b9, 0x18b9, 0x04b9, 0x14b9, 0x0cb9, 0x1cb9,
	0x02b9, 0x12b9, 0x0ab9, 0x1ab9, 0x06b9, 0x16b9, 0x0eb9, 0x1eb9,
	0x01b9, 0x11b9, 0x09b9, 0x19b9, 0x05b9, 0x15b9, 0x0db9, 0x1db9,
	0x03b9, 0x13b9, 0x0bb9, 0x1bb9, 0x07b9, 0x17b9, 0x0fb9, 0x1fb9,
	0x0079, 0x1079, 0x0879, 0x1879, 0x0479, 0x1479, 0x0c79, 0x1c79,
	0x0279, 0x1279, 0x0a79, 0x1a79, 0x0679, 0x1679, 0x0e79, 0x1e79,
	0x0179, 0x1179, 0x0979, 0x1979, 0x0579, 0x1579, 0x0d79, 0x1d79,
	0x0379, 0x1379, 0x0b79, 0x1b79, 0x0779, 0x1779, 0x0f79, 0x1f79,
	0x00f9, 0x10f9, 0x08f9, 0x18f9, 0x04f9, 0x14f9, 0x0cf9, 0x1cf9,
	0x02f9, 0x12f9, 0x0af9, 0x1af9, 0x06f9, 0x16f9, 0x0ef9, 0x1ef9,
	0x01f9, 0x11f9, 0x09f9, 0x19f9, 0x05f9, 0x15f9, 0x0df9, 0x1df9,
	0x03f9, 0x13f9, 0x0bf9, 0x1bf9, 0x07f9, 0x17f9, 0x0ff9, 0x1ff9,
	0x0007, 0x0407, 0x0207, 0x0607, 0x0107, 0x0507, 0x0307, 0x0707,
	0x0087, 0x0487, 0x0287, 0x0687, 0x0187, 0x0587, 0x0387, 0x0787,
	0x0047, 0x0447, 0x0247, 0x0647, 0x0147, 0x0547, 0x0347, 0x0747,
	0x0038, 0x0838, 0x0438, 0x0c38, 0x0238, 0x0a38, 0x0638, 0x0e38,}

// huffmanCode returns the bit-reversed fixed-Huffman code and its bit length
// for literal/length symbol sym (0..287).
func huffmanCode(sym int) (code uint32, bits uint32) {
	packed := fixedHuffman[sym]
	return uint32(packed >> 4), uint32(packed & 0xf)
}

// lengthTable packs, for each match length 3..258, the length symbol offset
// (257+value in bits 0..4), the extra-bit count (bits 5..7), and the extra
// value (bits 8..12). Lengths 0..2 are unused (DEFLATE's minimum match is 3).
var lengthTable = [259]uint16{
	0x0000, 0x0000, 0x0000, 0x0000, 0x0001, 0x0002, 0x0003, 0x0004,
	0x0005, 0x0006, 0x0007, 0x0028, 0x0128, 0x0029, 0x0129, 0x002a,
	0x012a, 0x002b, 0x012b, 0x004c, 0x014c, 0x024c, 0x034c, 0x004d,
	0x014d, 0x024d, 0x034d, 0x004e, 0x014e, 0x024e, 0x034e, 0x004f,
	0x014f, 0x024f, 0x034f, 0x0070, 0x0170, 0x0270, 0x0370, 0x0470,
	0x0570, 0x0670, 0x0770, 0x0071, 0x0171, 0x0271, 0x0371, 0x0471,
	0x0571, 0x0671, 0x0771, 0x0072, 0x0172, 0x0272, 0x0372, 0x0472,
	0x0572, 0x0672, 0x0772, 0x0073, 0x0173, 0x0273, 0x0373, 0x0473,
	0x0573, 0x0673, 0x0773, 0x0094, 0x0194, 0x0294, 0x0394, 0x0494,
	0x0594, 0x0694, 0x0794, 0x0894, 0x0994, 0x0a94, 0x0b94, 0x0c94,
	0x0d94, 0x0e94, 0x0f94, 0x0095, 0x0195, 0x0295, 0x0395, 0x0495,
	0x0595, 0x0695, 0x0795, 0x0895, 0x0995, 0x0a95, 0x0b95, 0x0c95,
	0x0d95, 0x0e95, 0x0f95, 0x0096, 0x0196, 0x0296, 0x0396, 0x0496,
	0x0596, 0x0696, 0x0796, 0x0896, 0x0996, 0x0a96, 0x0b96, 0x0c96,
	0x0d96, 0x0e96, 0x0f96, 0x0097, 0x0197, 0x0297, 0x0397, 0x0497,
	0x0597, 0x0697, 0x0797, 0x0897, 0x0997, 0x0a97, 0x0b97, 0x0c97,
	0x0d97, 0x0e97, 0x0f97, 0x00b8, 0x01b8, 0x02b8, 0x03b8, 0x04b8,
	0x05b8, 0x06b8, 0x07b8, 0x08b8, 0x09b8, 0x0ab8, 0x0bb8, 0x0cb8,
	0x0db8, 0x0eb8, 0x0fb8, 0x10b8, 0x11b8, 0x12b8, 0x13b8, 0x14b8,
	0x15b8, 0x16b8, 0x17b8, 0x18b8, 0x19b8, 0x1ab8, 0x1bb8, 0x1cb8,
	0x1db8, 0x1eb8, 0x1fb8, 0x00b9, 0x01b9, 0x02b9, 0x03b9, 0x04b9,
	0x05b9, 0x06b9, 0x07b9, 0x08b9, 0x09b9, 0x0ab9, 0x0bb9, 0x0cb9,
	0x0db9, 0x0eb9, 0x0fb9, 0x10b9, 0x11b9, 0x12b9, 0x13b9, 0x14b9,
	0x15b9, 0x16b9, 0x17b9, 0x18b9, 0x19b9, 0x1ab9, 0x1bb9, 0x1cb9,
	0x1db9, 0x1eb9, 0x1fb9, 0x00ba, 0x01ba, 0x02ba, 0x03ba, 0x04ba,
	0x05ba, 0x06ba, 0x07ba, 0x08ba, 0x09ba, 0x0aba, 0x0bba, 0x0cba,
	0x0dba, 0x0eba, 0x0fba, 0x10ba, 0x11ba, 0x12ba, 0x13ba, 0x14ba,
	0x15ba, 0x16ba, 0x17ba, 0x18ba, 0x19ba, 0x1aba, 0x1bba, 0x1cba,
	0x1dba, 0x1eba, 0x1fba, 0x00bb, 0x01bb, 0x02bb, 0x03bb, 0x04bb,
	0x05bb, 0x06bb, 0x07bb, 0x08bb, 0x09bb, 0x0abb, 0x0bbb, 0x0cbb,
	0x0dbb, 0x0ebb, 0x0fbb, 0x10bb, 0x11bb, 0x12bb, 0x13bb, 0x14bb,
	0x15bb, 0x16bb, 0x17bb, 0x18bb, 0x19bb, 0x1abb, 0x1bbb, 0x1cbb,
	0x1dbb, 0x1ebb, 0x001c,}

// lengthSymbol returns the length symbol (257..285), extra-bit count (0..5),
// and extra value for a match length in [3,258].
func lengthSymbol(length int) (symbol int, extraBits uint32, extraValue uint32) {
	packed := lengthTable[length]
	symbol = 257 + int(packed&0x1f)
	extraBits = uint32(packed>>5) & 0x7
	extraValue = uint32(packed>>8) & 0x1f
	return
}

// distEntry describes one distance code's extra-bit count and base distance
// (RFC 1951 §3.2.5).
type distEntry struct {
	extraBits uint32
	base      uint32
}

// distanceTable maps distance codes 0..29 to their extra-bit count and base
// distance. Codes above 3 come in pairs of doubling ranges, consistent with
// RFC 1951's table reproduced in the original encoder's header comment.
var distanceTable = [30]distEntry{
	{0, 1}, {0, 2}, {0, 3}, {0, 4},
	{1, 5}, {1, 7},
	{2, 9}, {2, 13},
	{3, 17}, {3, 25},
	{4, 33}, {4, 49},
	{5, 65}, {5, 97},
	{6, 129}, {6, 193},
	{7, 257}, {7, 385},
	{8, 513}, {8, 769},
	{9, 1025}, {9, 1537},
	{10, 2049}, {10, 3073},
	{11, 4097}, {11, 6145},
	{12, 8193}, {12, 12289},
	{13, 16385}, {13, 24577},
}

// distanceCode returns the distance code (0..29), its extra-bit count, and
// extra value for a match distance in [1,32768].
func distanceCode(dist int) (code int, extraBits uint32, extraValue uint32) {
	d := uint32(dist)
	// Binary search would work, but the table is tiny (30 entries) and this
	// scan keeps the branch predictor happy for the common small-distance case.
	for i := len(distanceTable) - 1; i >= 0; i-- {
		if d >= distanceTable[i].base {
			return i, distanceTable[i].extraBits, d - distanceTable[i].base
		}
	}
	return 0, 0, 0
}

// reverse5 bit-reverses the low 5 bits of v. Distance codes are 5 bits wide
// and, like the fixed-Huffman codes, must be emitted bit-reversed relative
// to their natural MSB-first numbering (RFC 1951 does not say this
// explicitly; empirically it is the only interpretation that interoperates
// with real decompressors).
func reverse5(v uint32) uint32 {
	var r uint32
	for i := 0; i < 5; i++ {
		r = (r << 1) | (v & 1)
		v >>= 1
	}
	return r
}
