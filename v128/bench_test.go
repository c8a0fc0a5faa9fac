package v128

import "testing"

var (
	sinkF32 Vec128[float32]
	sinkI16 Vec128[int16]
	sinkI32 Vec128[int32]
)

func BenchmarkAddFloat32(b *testing.B) {
	x := LoadSlice([]float32{1, 2, 3, 4})
	y := Splat[float32](0.5)
	for b.Loop() {
		x = x.Add(y)
	}
	sinkF32 = x
}

func BenchmarkQFMAFloat32(b *testing.B) {
	x := LoadSlice([]float32{1, 2, 3, 4})
	y := Splat[float32](1.0001)
	z := Splat[float32](0.25)
	for b.Loop() {
		x = QFMA(x, y, z)
	}
	sinkF32 = x
}

func BenchmarkMinFloat32(b *testing.B) {
	x := LoadSlice([]float32{1, -2, 3, -4})
	y := Splat[float32](0)
	for b.Loop() {
		x = x.Min(y)
	}
	sinkF32 = x
}

func BenchmarkAvgrInt16(b *testing.B) {
	x := Splat[int16](100)
	y := Splat[int16](-7)
	for b.Loop() {
		x = Avgr(x, y)
	}
	sinkI16 = x
}

func BenchmarkDot(b *testing.B) {
	x := Splat[int16](3)
	y := Splat[int16](-5)
	var r Vec128[int32]
	for b.Loop() {
		r = r.Add(Dot(x, y))
	}
	sinkI32 = r
}

func BenchmarkProcessWithTail(b *testing.B) {
	data := make([]float32, 1027)
	out := make([]float32, len(data))
	two := Splat[float32](2)
	for b.Loop() {
		ProcessWithTail[float32](len(data),
			func(offset int) {
				LoadSlice(data[offset:]).Mul(two).StoreSlice(out[offset:])
			},
			func(offset, count int) {
				LoadSlice(data[offset : offset+count]).Mul(two).StoreSlice(out[offset : offset+count])
			},
		)
	}
}
