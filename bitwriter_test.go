package slz

import "testing"

func TestBitWriter_EnqueueFlushesWholeBytes(t *testing.T) {
	var bw bitWriter
	var out []byte

	out = bw.enqueue(out, 0b101, 3)
	if len(out) != 0 {
		t.Fatalf("expected no bytes flushed yet, got %d", len(out))
	}

	out = bw.enqueue(out, 0b10101, 5)
	if len(out) != 1 {
		t.Fatalf("expected exactly one byte flushed, got %d", len(out))
	}
	// low 3 bits from the first enqueue, then 5 bits from the second, LSB-first.
	want := byte(0b101) | byte(0b10101)<<3
	if out[0] != want {
		t.Fatalf("got %08b want %08b", out[0], want)
	}
}

func TestBitWriter_AlignToByteDiscardsPadding(t *testing.T) {
	var bw bitWriter
	var out []byte

	out = bw.enqueue(out, 1, 1)
	out = bw.alignToByte(out)
	if len(out) != 1 {
		t.Fatalf("expected one padded byte, got %d", len(out))
	}
	if bw.qbits != 0 {
		t.Fatalf("expected qbits reset to 0, got %d", bw.qbits)
	}

	out = bw.alignToByte(out)
	if len(out) != 1 {
		t.Fatalf("aligning an already-aligned writer must not emit a byte, got %d total", len(out))
	}
}

func TestBitWriter_Put16And32LE(t *testing.T) {
	var bw bitWriter
	var out []byte
	out = bw.put16LE(out, 0x1234)
	out = bw.put32LE(out, 0xdeadbeef)

	want := []byte{0x34, 0x12, 0xef, 0xbe, 0xad, 0xde}
	if len(out) != len(want) {
		t.Fatalf("got %d bytes, want %d", len(out), len(want))
	}
	for i := range want {
		if out[i] != want[i] {
			t.Fatalf("byte %d: got %02x want %02x", i, out[i], want[i])
		}
	}
}
