package v128

import (
	"math"
	"testing"
)

func TestAnyTrue(t *testing.T) {
	if Zero[int8]().AnyTrue() {
		t.Error("AnyTrue(zero): got true")
	}
	if !Zero[int8]().NotAnyTrue() {
		t.Error("NotAnyTrue(zero): got false")
	}

	// A single set bit in the last lane is enough.
	v := Zero[uint8]().ReplaceLane(15, 0x80)
	if !v.AnyTrue() || v.NotAnyTrue() {
		t.Errorf("AnyTrue with one bit: got %v / NotAnyTrue %v", v.AnyTrue(), v.NotAnyTrue())
	}

	// -0.0 is a nonzero bit pattern.
	f := Splat(math.Copysign(0, -1))
	if !f.AnyTrue() {
		t.Error("AnyTrue(-0.0): got false")
	}

	// A compare mask feeds straight into AnyTrue.
	a := LoadSlice([]int32{1, 2, 3, 4})
	if !a.Gt(Splat[int32](3)).AnyTrue() {
		t.Error("AnyTrue(a > 3): got false")
	}
	if a.Gt(Splat[int32](4)).AnyTrue() {
		t.Error("AnyTrue(a > 4): got true")
	}
}

func TestAllTrue(t *testing.T) {
	if !Splat[int16](1).AllTrue() {
		t.Error("AllTrue(splat 1): got false")
	}
	if LoadSlice([]int32{1, 2, 0, 4}).AllTrue() {
		t.Error("AllTrue with a zero lane: got true")
	}
	// 0x0100 has a zero low byte but is a nonzero 16-bit lane.
	if !Splat[uint16](0x0100).AllTrue() {
		t.Error("AllTrue(splat 0x0100): got false")
	}
	if Splat[uint16](0x0100).AsUint8().AllTrue() {
		t.Error("AllTrue as u8x16: got true")
	}
}

func TestEqNeq(t *testing.T) {
	a := LoadSlice([]int64{1, 2})
	b := LoadSlice([]int64{1, 2})
	c := LoadSlice([]int64{1, 3})

	if !a.Eq(b) || a.Neq(b) {
		t.Error("Eq/Neq on identical vectors")
	}
	if a.Eq(c) || !a.Neq(c) {
		t.Error("Eq/Neq on different vectors")
	}

	// Whole-register comparison: identical NaNs are equal, -0 and +0 are not.
	nan := Splat(float32(math.NaN()))
	if !nan.Eq(nan) {
		t.Error("Eq(NaN, NaN) bit pattern: got false")
	}
	if Splat(0.0).Eq(Splat(math.Copysign(0, -1))) {
		t.Error("Eq(+0, -0) bit pattern: got true")
	}
}
