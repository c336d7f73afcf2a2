// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/slz

// Command slzcli streams a file (or stdin) through the slz encoder,
// writing the compressed output to stdout. It mirrors the original
// reference tool's flag set: pick a format, a level, a loop count for
// benchmarking, and a test mode that runs the encoder without writing
// anything.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"
	"github.com/woozymasta/slz"
)

const blockSize = 32768

func main() {
	var (
		level0  bool
		level1  bool
		bufSize int
		stdout  bool
		force   bool
		loops   int
		test    bool
		verbose bool
		deflate bool
		gzipFmt bool
		zlibFmt bool
	)

	pflag.BoolVarP(&level0, "level0", "0", false, "disable compression, only uses format")
	pflag.BoolVarP(&level1, "level1", "1", true, "enable compression (default)")
	pflag.IntVarP(&bufSize, "bytes", "b", 0, "only read <bytes> bytes from the input")
	pflag.BoolVarP(&stdout, "stdout", "c", true, "send output to stdout (default; output always goes there)")
	pflag.BoolVarP(&force, "force", "f", false, "force sending output to a terminal")
	pflag.IntVarP(&loops, "loops", "l", 1, "loop <loops> times over the same input (benchmarking)")
	pflag.BoolVarP(&test, "test", "t", false, "test mode: run the encoder but emit nothing")
	pflag.BoolVarP(&verbose, "verbose", "v", false, "print a totin/totout/ratio/crc32 summary to stderr")
	pflag.BoolVarP(&deflate, "deflate", "D", false, "use raw deflate output format (RFC 1951)")
	pflag.BoolVarP(&gzipFmt, "gzip", "G", false, "use gzip output format (RFC 1952) [default]")
	pflag.BoolVarP(&zlibFmt, "zlib", "Z", false, "use zlib output format (RFC 1950)")
	pflag.Parse()

	level := slz.Level1
	if level0 {
		level = slz.Level0
	}

	format := slz.FormatGzip
	switch {
	case deflate:
		format = slz.FormatDeflate
	case zlibFmt:
		format = slz.FormatZlib
	}

	if !test && !force && isTerminal(os.Stdout) {
		fmt.Fprintln(os.Stderr, "Use -f if you really want to send compressed data to a terminal, or -h for help.")
		os.Exit(1)
	}

	var input []byte
	var err error
	if args := pflag.Args(); len(args) > 0 {
		input, err = os.ReadFile(args[0])
	} else {
		input, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "read: %v\n", err)
		os.Exit(2)
	}
	if bufSize > 0 && bufSize < len(input) {
		input = input[:bufSize]
	}

	var totIn, totOut int
	var lastCRC uint32
	for ; loops > 0; loops-- {
		s, err := slz.NewStream(format, level)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}

		out := make([]byte, 0, slz.MaxEncodedLen(len(input), format))
		out = s.Init(out)
		for ofs := 0; ofs < len(input) || ofs == 0; {
			end := ofs + blockSize
			more := end < len(input)
			if end > len(input) {
				end = len(input)
			}
			out = s.Encode(out, input[ofs:end], more)
			ofs = end
			if !more {
				break
			}
		}
		out = s.Finish(out)
		lastCRC = s.CRC32()

		totIn += len(input)
		totOut += len(out)
		if !test {
			os.Stdout.Write(out)
		}
	}

	if verbose {
		ratio := float64(0)
		if totIn > 0 {
			ratio = float64(totOut) * 100.0 / float64(totIn)
		}
		fmt.Fprintf(os.Stderr, "totin=%d totout=%d ratio=%.2f%% crc32=%08x\n", totIn, totOut, ratio, lastCRC)
	}
}

// isTerminal reports whether f looks like a character device, the same
// check isatty(1) performs in the original tool.
func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
