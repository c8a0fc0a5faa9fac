// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package v128

import "math"

// Avgr computes the lane-wise rounding average (a + b + 1) >> 1 without
// overflowing the lane. For uint8 and uint16 lanes this is i8x16.avgr_u and
// i16x8.avgr_u; signed lanes use the same formula with an arithmetic shift.
func Avgr[T Integers](a, b Vec128[T]) Vec128[T] {
	// a + b == (a|b) + (a&b), so (a+b+1)>>1 == (a|b) - ((a^b)>>1).
	return binaryOp(a, b, func(x, y T) T { return (x | y) - ((x ^ y) >> 1) })
}

// Dot multiplies the signed 16-bit lanes of a and b and adds adjacent pairs
// of products into 32-bit lanes (i32x4.dot_i16x8_s):
//
//	r[i] = a[2i]*b[2i] + a[2i+1]*b[2i+1]
//
// The sum wraps on the single overflowing input, -32768 in all four lanes.
func Dot(a, b Vec128[int16]) Vec128[int32] {
	var r Vec128[int32]
	al, bl, rl := a.lanes(), b.lanes(), r.lanes()
	for i := range rl {
		rl[i] = int32(al[2*i])*int32(bl[2*i]) + int32(al[2*i+1])*int32(bl[2*i+1])
	}
	return r
}

// TruncSat32 converts float32 lanes to 32-bit integer lanes, truncating
// toward zero. Values beyond the range of U saturate to its minimum or
// maximum and NaN becomes 0 (i32x4.trunc_sat_f32x4_s / _u).
//
// Usage:
//
//	i := v128.TruncSat32[int32](f)
func TruncSat32[U Int32s](v Vec128[float32]) Vec128[U] {
	var r Vec128[U]
	vl, rl := v.lanes(), r.lanes()
	for i, f := range vl {
		rl[i] = truncSat[U](float64(f))
	}
	return r
}

// TruncSat64 converts float64 lanes to 64-bit integer lanes with the same
// saturating contract as TruncSat32.
func TruncSat64[U Int64s](v Vec128[float64]) Vec128[U] {
	var r Vec128[U]
	vl, rl := v.lanes(), r.lanes()
	for i, f := range vl {
		rl[i] = truncSat[U](f)
	}
	return r
}

func truncSat[U Int32s | Int64s](f float64) U {
	var zero U
	switch any(zero).(type) {
	case int32:
		return U(truncSatInt32(f))
	case uint32:
		return U(truncSatUint32(f))
	case int64:
		return U(truncSatInt64(f))
	case uint64:
		return U(truncSatUint64(f))
	}
	return zero
}

func truncSatInt32(f float64) int32 {
	switch {
	case math.IsNaN(f):
		return 0
	case f >= 0x1p31:
		return math.MaxInt32
	case f < -0x1p31:
		return math.MinInt32
	default:
		return int32(f)
	}
}

func truncSatUint32(f float64) uint32 {
	switch {
	case math.IsNaN(f), f < 0:
		return 0
	case f >= 0x1p32:
		return math.MaxUint32
	default:
		return uint32(f)
	}
}

func truncSatInt64(f float64) int64 {
	switch {
	case math.IsNaN(f):
		return 0
	case f >= 0x1p63:
		return math.MaxInt64
	case f < -0x1p63:
		return math.MinInt64
	default:
		return int64(f)
	}
}

func truncSatUint64(f float64) uint64 {
	switch {
	case math.IsNaN(f), f < 0:
		return 0
	case f >= 0x1p64:
		return math.MaxUint64
	default:
		return uint64(f)
	}
}
