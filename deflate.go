// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/slz

package slz

// Raw RFC 1951 deflate carries no framing of its own: no header, no
// trailer. FormatDeflate is handled entirely by Stream's format switches in
// stream.go falling through to their default (no-op) cases; this file
// exists so the format has a home alongside gzip.go and zlib.go.
