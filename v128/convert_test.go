package v128

import (
	"math"
	"testing"
)

func checkAsRoundTrip[T, U Lanes](t *testing.T, v Vec128[T]) {
	t.Helper()
	u := As[U](v)
	if u.Len() != NumLanes[U]() {
		t.Errorf("As[%s](%s): got %d lanes, want %d", KindOf[U](), KindOf[T](), u.Len(), NumLanes[U]())
	}
	if u.Bits() != v.Bits() {
		t.Errorf("As[%s](%s) changed bits: %#x vs %#x", KindOf[U](), KindOf[T](), u.Bits(), v.Bits())
	}
	if back := As[T](u); !back.Eq(v) {
		t.Errorf("As[%s](As[%s]) is not the identity: %v vs %v", KindOf[T](), KindOf[U](), back, v)
	}
}

func checkAsAll[T Lanes](t *testing.T, v Vec128[T]) {
	t.Helper()
	checkAsRoundTrip[T, int8](t, v)
	checkAsRoundTrip[T, uint8](t, v)
	checkAsRoundTrip[T, int16](t, v)
	checkAsRoundTrip[T, uint16](t, v)
	checkAsRoundTrip[T, int32](t, v)
	checkAsRoundTrip[T, uint32](t, v)
	checkAsRoundTrip[T, int64](t, v)
	checkAsRoundTrip[T, uint64](t, v)
	checkAsRoundTrip[T, float32](t, v)
	checkAsRoundTrip[T, float64](t, v)
}

func TestAsRoundTrip(t *testing.T) {
	// Include NaN bit patterns: reinterpretation must not canonicalize them.
	raw := V128{0x7ff8_0000_dead_beef, 0xffc0_0001_7fa0_0001}
	checkAsAll(t, FromBits[int8](raw))
	checkAsAll(t, FromBits[uint16](raw))
	checkAsAll(t, FromBits[int32](raw))
	checkAsAll(t, FromBits[uint64](raw))
	checkAsAll(t, FromBits[float32](raw))
	checkAsAll(t, FromBits[float64](raw))
}

func TestAsShorthands(t *testing.T) {
	v := Splat[float32](1)
	if got := v.AsUint32().Get(0); got != math.Float32bits(1) {
		t.Errorf("AsUint32(1.0): got %#x, want %#x", got, math.Float32bits(1))
	}
	if got := v.AsInt8().Len(); got != 16 {
		t.Errorf("AsInt8: got %d lanes, want 16", got)
	}
	if got := v.AsFloat64().Len(); got != 2 {
		t.Errorf("AsFloat64: got %d lanes, want 2", got)
	}

	d := Splat(-2.0)
	if got := d.AsInt64().Get(1); got != int64(math.Float64bits(-2)) {
		t.Errorf("AsInt64(-2.0): got %#x", got)
	}
	if !d.AsUint8().AsInt16().AsUint16().AsInt32().AsFloat32().AsUint64().AsFloat64().Eq(d) {
		t.Error("chained As* shorthands changed the bits")
	}
}
