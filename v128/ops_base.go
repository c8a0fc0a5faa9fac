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

// This file provides the lane-wise arithmetic and comparison operations.
// Integer arithmetic wraps on overflow and float arithmetic follows IEEE 754,
// which is what Go's own operators do for each lane type.

// Add performs lane-wise addition.
func (v Vec128[T]) Add(o Vec128[T]) Vec128[T] {
	return binaryOp(v, o, func(x, y T) T { return x + y })
}

// Sub performs lane-wise subtraction.
func (v Vec128[T]) Sub(o Vec128[T]) Vec128[T] {
	return binaryOp(v, o, func(x, y T) T { return x - y })
}

// Mul performs lane-wise multiplication, keeping the low bits for integers.
func (v Vec128[T]) Mul(o Vec128[T]) Vec128[T] {
	return binaryOp(v, o, func(x, y T) T { return x * y })
}

// Neg negates every lane. Unsigned lanes wrap.
func (v Vec128[T]) Neg() Vec128[T] {
	return unaryOp(v, func(x T) T { return -x })
}

// Div performs lane-wise division. Only float lanes can be divided;
// division by zero yields an infinity or NaN as IEEE 754 prescribes.
func Div[T Floats](a, b Vec128[T]) Vec128[T] {
	return binaryOp(a, b, func(x, y T) T { return x / y })
}

// Sqrt computes the square root of every lane.
// Negative lanes yield NaN.
func Sqrt[T Floats](v Vec128[T]) Vec128[T] {
	// Rounding the float64 root to float32 is exact, so both widths are
	// correctly rounded.
	return unaryOp(v, func(x T) T { return T(math.Sqrt(float64(x))) })
}

// Abs computes the absolute value of every lane.
//
// Float lanes have their sign bit cleared, so Abs(-0) is +0 and NaN stays NaN.
// Signed integer lanes wrap: the minimum value is its own absolute value.
// Unsigned lanes are returned unchanged.
func (v Vec128[T]) Abs() Vec128[T] {
	switch k := KindOf[T](); {
	case k == KindFloat32:
		return Vec128[T]{raw: V128{v.raw[0] &^ 0x8000_0000_8000_0000, v.raw[1] &^ 0x8000_0000_8000_0000}}
	case k == KindFloat64:
		return Vec128[T]{raw: V128{v.raw[0] &^ (1 << 63), v.raw[1] &^ (1 << 63)}}
	case k.IsSigned():
		return unaryOp(v, func(x T) T {
			if x < 0 {
				return -x
			}
			return x
		})
	default:
		return v
	}
}

// Min returns the lane-wise minimum.
//
// For float lanes this matches f32x4.min / f64x2.min: if either lane is NaN
// the result is NaN, and -0 is treated as smaller than +0.
func (v Vec128[T]) Min(o Vec128[T]) Vec128[T] {
	return binaryOp(v, o, minLane[T])
}

// Max returns the lane-wise maximum.
//
// For float lanes this matches f32x4.max / f64x2.max: if either lane is NaN
// the result is NaN, and +0 is treated as larger than -0.
func (v Vec128[T]) Max(o Vec128[T]) Vec128[T] {
	return binaryOp(v, o, maxLane[T])
}

func minLane[T Lanes](x, y T) T {
	switch {
	case isNaN(x) || isNaN(y):
		return x + y
	case x < y:
		return x
	case y < x:
		return y
	case signBit(x):
		return x
	default:
		return y
	}
}

func maxLane[T Lanes](x, y T) T {
	switch {
	case isNaN(x) || isNaN(y):
		return x + y
	case x > y:
		return x
	case y > x:
		return y
	case signBit(x):
		return y
	default:
		return x
	}
}

// Lt compares lane-wise a < b and returns a mask: every bit of a lane is set
// where the comparison holds and clear where it does not.
// Unsigned lanes compare unsigned; float lanes with NaN compare false.
func (v Vec128[T]) Lt(o Vec128[T]) Vec128[T] {
	return compareOp(v, o, func(x, y T) bool { return x < y })
}

// Gt compares lane-wise a > b and returns a mask, see Lt.
func (v Vec128[T]) Gt(o Vec128[T]) Vec128[T] {
	return compareOp(v, o, func(x, y T) bool { return x > y })
}

// Le compares lane-wise a <= b and returns a mask, see Lt.
func (v Vec128[T]) Le(o Vec128[T]) Vec128[T] {
	return compareOp(v, o, func(x, y T) bool { return x <= y })
}

// Ge compares lane-wise a >= b and returns a mask, see Lt.
func (v Vec128[T]) Ge(o Vec128[T]) Vec128[T] {
	return compareOp(v, o, func(x, y T) bool { return x >= y })
}

// Equal compares lane values for equality and returns a mask, see Lt.
// Unlike Eq this compares values, so NaN lanes are unequal and -0 equals +0.
func (v Vec128[T]) Equal(o Vec128[T]) Vec128[T] {
	return compareOp(v, o, func(x, y T) bool { return x == y })
}

// NotEqual is the lane-wise complement of Equal.
func (v Vec128[T]) NotEqual(o Vec128[T]) Vec128[T] {
	return compareOp(v, o, func(x, y T) bool { return x != y })
}

func binaryOp[T Lanes](a, b Vec128[T], op func(x, y T) T) Vec128[T] {
	var r Vec128[T]
	al, bl, rl := a.lanes(), b.lanes(), r.lanes()
	for i := range rl {
		rl[i] = op(al[i], bl[i])
	}
	return r
}

func unaryOp[T Lanes](v Vec128[T], op func(x T) T) Vec128[T] {
	var r Vec128[T]
	vl, rl := v.lanes(), r.lanes()
	for i := range rl {
		rl[i] = op(vl[i])
	}
	return r
}

func compareOp[T Lanes](a, b Vec128[T], pred func(x, y T) bool) Vec128[T] {
	var r Vec128[T]
	al, bl := a.lanes(), b.lanes()
	rb := r.bytes()
	size := 16 / len(al)
	for i := range al {
		if pred(al[i], bl[i]) {
			for j := i * size; j < (i+1)*size; j++ {
				rb[j] = 0xff
			}
		}
	}
	return r
}

// isNaN reports whether x is a NaN. It is always false for integer lanes.
func isNaN[T Lanes](x T) bool {
	return x != x
}

// signBit reports whether the sign bit of x is set, including for -0.
func signBit[T Lanes](x T) bool {
	switch f := any(x).(type) {
	case float32:
		return math.Signbit(float64(f))
	case float64:
		return math.Signbit(f)
	}
	return x < 0
}
