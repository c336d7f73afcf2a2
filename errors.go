// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/slz

package slz

import "errors"

// Sentinel errors returned by the encoder and CLI.
var (
	// ErrInvalidLevel is returned when Level is outside {Level0, Level1}.
	ErrInvalidLevel = errors.New("slz: invalid level")
	// ErrInvalidFormat is returned when Format is not one of FormatDeflate,
	// FormatGzip, FormatZlib.
	ErrInvalidFormat = errors.New("slz: invalid format")
)
