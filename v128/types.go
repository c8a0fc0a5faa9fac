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

// Package v128 provides a generic 128-bit SIMD vector value type.
//
// A Vec128[T] is 16 bytes interpreted as 16/sizeof(T) lanes of T, where T is
// one of the ten numeric kinds int8 through uint64, float32 and float64.
// Operations that are legal on every lane kind are methods; operations that
// are restricted to some kinds (shifts, square root, saturating truncation)
// are package functions with a narrower type constraint, so an illegal
// combination does not compile.
//
// Basic usage:
//
//	import "github.com/ajroetker/go-simd128/v128"
//
//	a := v128.Load[int32](buf)
//	b := v128.Splat[int32](3)
//	a.Add(b).StoreAt(buf)
//
// Lane semantics follow the WebAssembly SIMD128 instruction set.
package v128

import "unsafe"

// Floats is a constraint for floating-point lane types.
type Floats interface {
	float32 | float64
}

// SignedInts is a constraint for signed integer lane types.
type SignedInts interface {
	int8 | int16 | int32 | int64
}

// UnsignedInts is a constraint for unsigned integer lane types.
type UnsignedInts interface {
	uint8 | uint16 | uint32 | uint64
}

// Integers is a constraint for all integer lane types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is the closed set of types that can be stored in a Vec128 lane.
type Lanes interface {
	Floats | Integers
}

// Int32s is the set of 32-bit integer lane types, the targets of TruncSat32.
type Int32s interface {
	int32 | uint32
}

// Int64s is the set of 64-bit integer lane types, the targets of TruncSat64.
type Int64s interface {
	int64 | uint64
}

// V128 is an untyped 128-bit register value.
//
// Element 0 holds the first 8 bytes of the in-memory image and element 1 the
// last 8, in native byte order.
type V128 [2]uint64

// Vec128 is a 128-bit vector whose lanes are interpreted as T.
//
// It is a plain value: assignment copies it, and every operation returns a
// new Vec128 rather than modifying the receiver. The zero value has every
// lane set to zero.
type Vec128[T Lanes] struct {
	raw V128
}

// NumLanes returns the number of T lanes in a Vec128, 16/sizeof(T).
func NumLanes[T Lanes]() int {
	var dummy T
	return 16 / int(unsafe.Sizeof(dummy))
}

// Len returns the number of lanes in v.
func (v Vec128[T]) Len() int {
	return NumLanes[T]()
}

// Bits returns the raw bit pattern of v.
func (v Vec128[T]) Bits() V128 {
	return v.raw
}

// Bytes returns the in-memory image of v.
func (v Vec128[T]) Bytes() [16]byte {
	return *v.bytes()
}

// lanes views the register as a slice of T. The slice aliases v.
func (v *Vec128[T]) lanes() []T {
	return unsafe.Slice((*T)(unsafe.Pointer(&v.raw)), NumLanes[T]())
}

// bytes views the register as its 16-byte in-memory image. The array aliases v.
func (v *Vec128[T]) bytes() *[16]byte {
	return (*[16]byte)(unsafe.Pointer(&v.raw))
}
