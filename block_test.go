package slz

import (
	"bytes"
	"compress/flate"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// highBitRun returns n distinct bytes, all >= 144, so that no 4-byte word
// repeats and the match finder leaves every byte as a pending literal.
func highBitRun(n int) []byte {
	data := make([]byte, n)
	for i := range data {
		data[i] = byte(144 + i)
	}
	return data
}

// A run of 52+ high-bit literals must compress smaller than if every byte
// cost a full 9 bits, proving the stored fallback fired.
func TestFlushLiterals_FallsBackToStoredForHighBitRun(t *testing.T) {
	// Bytes >= 144 cost 9 bits each under fixed Huffman; a run at or above
	// literalFallbackThreshold should trigger the stored-block fallback.
	data := highBitRun(literalFallbackThreshold + 10)

	s, err := NewStream(FormatDeflate, Level1)
	require.NoError(t, err)
	out := s.Init(nil)
	out = s.Encode(out, data, false)
	out = s.Finish(out)

	r := flate.NewReader(bytes.NewReader(out))
	defer r.Close()
	got, err := readAllFlate(t, r)
	require.NoError(t, err)
	assert.Equal(t, data, got)

	// A stored block costs 5 header bytes plus the raw payload; under the
	// ceil((3+9*len+7)/8) bytes that literalFallbackThreshold+10 9-bit codes
	// would cost in a fixed block.
	assert.Less(t, len(out), len(data)+storedBlockHdrLen+1)
}

func TestFlushLiterals_StaysFixedForShortHighBitRun(t *testing.T) {
	data := highBitRun(literalFallbackThreshold - 10)

	s, err := NewStream(FormatDeflate, Level1)
	require.NoError(t, err)
	out := s.Init(nil)
	out = s.Encode(out, data, false)
	out = s.Finish(out)

	got, err := readAllFlate(t, flate.NewReader(bytes.NewReader(out)))
	require.NoError(t, err)
	assert.Equal(t, data, got)

	// The first block header's BTYPE (bits 1-2) must be fixed Huffman.
	assert.Equal(t, byte(btypeFixed), (out[0]>>1)&3)
}

func readAllFlate(t *testing.T, r flateReadCloser) ([]byte, error) {
	t.Helper()
	defer r.Close()
	var buf bytes.Buffer
	_, err := buf.ReadFrom(r)
	return buf.Bytes(), err
}

type flateReadCloser interface {
	Read(p []byte) (int, error)
	Close() error
}
