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

import "unsafe"

// The bitwise operations act on the raw register and are legal for every lane
// type, floats included.

// And performs a bitwise AND.
func (v Vec128[T]) And(o Vec128[T]) Vec128[T] {
	return Vec128[T]{raw: V128{v.raw[0] & o.raw[0], v.raw[1] & o.raw[1]}}
}

// Or performs a bitwise OR.
func (v Vec128[T]) Or(o Vec128[T]) Vec128[T] {
	return Vec128[T]{raw: V128{v.raw[0] | o.raw[0], v.raw[1] | o.raw[1]}}
}

// Xor performs a bitwise XOR.
func (v Vec128[T]) Xor(o Vec128[T]) Vec128[T] {
	return Vec128[T]{raw: V128{v.raw[0] ^ o.raw[0], v.raw[1] ^ o.raw[1]}}
}

// AndNot computes v & ^o.
func (v Vec128[T]) AndNot(o Vec128[T]) Vec128[T] {
	return Vec128[T]{raw: V128{v.raw[0] &^ o.raw[0], v.raw[1] &^ o.raw[1]}}
}

// Not returns the bitwise complement of the whole register.
func (v Vec128[T]) Not() Vec128[T] {
	return Vec128[T]{raw: V128{^v.raw[0], ^v.raw[1]}}
}

// Bitselect takes each bit from a where mask is set and from b where it is
// clear. Combined with a compare mask it selects whole lanes.
func Bitselect[T Lanes](a, b, mask Vec128[T]) Vec128[T] {
	return a.And(mask).Or(b.AndNot(mask))
}

// ShiftLeft shifts every lane left by n bits.
// The shift amount is taken modulo the lane width, as i32x4.shl does.
func ShiftLeft[T Integers](v Vec128[T], n int) Vec128[T] {
	s := shiftAmount[T](n)
	return unaryOp(v, func(x T) T { return x << s })
}

// ShiftRight shifts every lane right by n bits.
// Signed lanes shift arithmetically (sign-extended) and unsigned lanes
// logically (zero-filled). The shift amount is taken modulo the lane width.
func ShiftRight[T Integers](v Vec128[T], n int) Vec128[T] {
	s := shiftAmount[T](n)
	return unaryOp(v, func(x T) T { return x >> s })
}

func shiftAmount[T Integers](n int) uint {
	var dummy T
	return uint(n) & uint(unsafe.Sizeof(dummy)*8-1)
}
