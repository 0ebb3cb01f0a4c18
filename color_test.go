package astra

import "testing"

func TestColorMulScalarClamps(t *testing.T) {
	c := Color{200, 100, 0}
	got := c.MulScalar(2)
	if got != (Color{255, 200, 0}) {
		t.Fatalf("MulScalar(2) = %v", got)
	}
	if got := c.MulScalar(-1); got != (Color{0, 0, 0}) {
		t.Fatalf("MulScalar(-1) = %v", got)
	}
}

func TestColorLerp(t *testing.T) {
	a := Color{0, 0, 0}
	b := Color{255, 255, 255}
	if got := a.Lerp(b, 0); got != a {
		t.Fatalf("Lerp(0) = %v", got)
	}
	if got := a.Lerp(b, 1); got != b {
		t.Fatalf("Lerp(1) = %v", got)
	}
	// t outside [0,1] clamps instead of overshooting.
	if got := a.Lerp(b, 2); got != b {
		t.Fatalf("Lerp(2) = %v", got)
	}
	mid := a.Lerp(b, 0.5)
	if mid.R < 126 || mid.R > 128 {
		t.Fatalf("Lerp(0.5) = %v", mid)
	}
}

func TestColorPackRoundTrip(t *testing.T) {
	c := Color{0x12, 0x34, 0x56}
	if c.Pack() != 0x123456 {
		t.Fatalf("Pack = %#x", c.Pack())
	}
	if UnpackColor(c.Pack()) != c {
		t.Fatalf("round trip = %v", UnpackColor(c.Pack()))
	}
}

func TestHexColor(t *testing.T) {
	if got := HexColor("ff8844"); got != (Color{0xff, 0x88, 0x44}) {
		t.Fatalf("HexColor(ff8844) = %v", got)
	}
	if got := HexColor("#ff8844"); got != (Color{0xff, 0x88, 0x44}) {
		t.Fatalf("HexColor(#ff8844) = %v", got)
	}
	if got := HexColor("777"); got != (Color{0x77, 0x77, 0x77}) {
		t.Fatalf("HexColor(777) = %v", got)
	}
}

func TestColorMean(t *testing.T) {
	if got := White.Mean(); got != 1 {
		t.Fatalf("White.Mean = %v", got)
	}
	if got := Black.Mean(); got != 0 {
		t.Fatalf("Black.Mean = %v", got)
	}
}
