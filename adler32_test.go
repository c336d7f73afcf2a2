package slz

import (
	"hash/adler32"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdler32Update_MatchesStdlib(t *testing.T) {
	cases := [][]byte{
		nil,
		[]byte("a"),
		[]byte("Wikipedia"),
		make([]byte, 6000), // exceeds NMAX, exercises the blocking reduction
	}
	for i := range cases[3] {
		cases[3][i] = byte(i)
	}

	for _, data := range cases {
		s1, s2 := adler32Update(1, 0, data)
		got := adler32Value(s1, s2)
		want := adler32.Checksum(data)
		assert.Equal(t, want, got, "mismatch for %d-byte input", len(data))
	}
}

func TestAdler32Update_ChainedCallsMatchSinglePass(t *testing.T) {
	full := make([]byte, 20000)
	for i := range full {
		full[i] = byte(i * 3)
	}

	s1, s2 := uint32(1), uint32(0)
	for _, chunk := range [][]byte{full[:5000], full[5000:5552], full[5552:], nil} {
		s1, s2 = adler32Update(s1, s2, chunk)
	}

	assert.Equal(t, adler32.Checksum(full), adler32Value(s1, s2))
}
