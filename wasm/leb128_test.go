package wasm

import "testing"

func TestUvarintRoundTrip(t *testing.T) {
	cases := []uint64{0, 1, 63, 64, 127, 128, 300, 16384, 1 << 20, 1 << 40}
	for _, n := range cases {
		buf := putUvarint(nil, n)
		got, consumed := uvarint(buf)
		if got != n {
			t.Errorf("uvarint(putUvarint(%d)) = %d", n, got)
		}
		if consumed != len(buf) {
			t.Errorf("uvarint consumed %d bytes, encoding was %d bytes", consumed, len(buf))
		}
	}
}

func TestVarintRoundTrip(t *testing.T) {
	cases := []int64{0, 1, -1, 63, -64, 64, -65, 128, -129, 1 << 20, -(1 << 20)}
	for _, n := range cases {
		buf := putVarint(nil, n)
		got, consumed := varint(buf)
		if got != n {
			t.Errorf("varint(putVarint(%d)) = %d", n, got)
		}
		if consumed != len(buf) {
			t.Errorf("varint consumed %d bytes, encoding was %d bytes", consumed, len(buf))
		}
	}
}

func TestUvarintMultiByteShape(t *testing.T) {
	buf := putUvarint(nil, 300)
	if len(buf) != 2 {
		t.Fatalf("expected 300 to encode in 2 bytes, got %d: %v", len(buf), buf)
	}
	if buf[0] != 0xAC || buf[1] != 0x02 {
		t.Fatalf("unexpected encoding for 300: %v", buf)
	}
}
