// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/slz

package slz

// Compress compresses all of src in a single call and returns the full
// framed output for format. It is a thin convenience wrapper around
// NewStream/Init/Encode/Finish for callers that already have the whole
// input in memory.
func Compress(src []byte, format Format, level Level) ([]byte, error) {
	s, err := NewStream(format, level)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, MaxEncodedLen(len(src), format))
	out = s.Init(out)
	out = s.Encode(out, src, false)
	out = s.Finish(out)
	return out, nil
}
