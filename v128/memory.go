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

// Load creates a vector from the first 16 bytes of src.
// The bytes are interpreted as lanes of T in native byte order.
func Load[T Lanes](src []byte) Vec128[T] {
	var v Vec128[T]
	copy(v.bytes()[:], src[:16])
	return v
}

// LoadPtr creates a vector from the 16 bytes starting at p.
// No alignment is required. The caller guarantees p addresses 16 readable bytes.
func LoadPtr[T Lanes](p unsafe.Pointer) Vec128[T] {
	var v Vec128[T]
	copy(v.bytes()[:], unsafe.Slice((*byte)(p), 16))
	return v
}

// LoadSlice creates a vector from the first Len lanes of src.
// If src is shorter than that, the remaining lanes are zero.
func LoadSlice[T Lanes](src []T) Vec128[T] {
	var v Vec128[T]
	copy(v.lanes(), src)
	return v
}

// Splat creates a vector with every lane set to value.
func Splat[T Lanes](value T) Vec128[T] {
	var v Vec128[T]
	lanes := v.lanes()
	for i := range lanes {
		lanes[i] = value
	}
	return v
}

// Zero returns a vector with every bit cleared.
func Zero[T Lanes]() Vec128[T] {
	return Vec128[T]{}
}

// LoadSplat reads one T from the start of src and broadcasts it to every lane.
func LoadSplat[T Lanes](src []byte) Vec128[T] {
	var value T
	size := int(unsafe.Sizeof(value))
	copy(unsafe.Slice((*byte)(unsafe.Pointer(&value)), size), src[:size])
	return Splat(value)
}

// LoadSplatPtr reads one T at p and broadcasts it to every lane.
// No alignment is required.
func LoadSplatPtr[T Lanes](p unsafe.Pointer) Vec128[T] {
	var value T
	size := int(unsafe.Sizeof(value))
	copy(unsafe.Slice((*byte)(unsafe.Pointer(&value)), size), unsafe.Slice((*byte)(p), size))
	return Splat(value)
}

// FromBits reinterprets a raw 128-bit value as a vector of T.
func FromBits[T Lanes](raw V128) Vec128[T] {
	return Vec128[T]{raw: raw}
}

// FromBytes reinterprets a 16-byte memory image as a vector of T.
func FromBytes[T Lanes](b [16]byte) Vec128[T] {
	var v Vec128[T]
	*v.bytes() = b
	return v
}

// StoreAt writes the 16 bytes of v to the start of dst and returns v
// unchanged, so stores can be chained.
func (v Vec128[T]) StoreAt(dst []byte) Vec128[T] {
	copy(dst[:16], v.bytes()[:])
	return v
}

// StorePtr writes the 16 bytes of v starting at p and returns v unchanged.
// No alignment is required. The caller guarantees p addresses 16 writable bytes.
func (v Vec128[T]) StorePtr(p unsafe.Pointer) Vec128[T] {
	copy(unsafe.Slice((*byte)(p), 16), v.bytes()[:])
	return v
}

// StoreSlice writes the lanes of v to dst.
// If dst is shorter than Len, only len(dst) lanes are written.
func (v Vec128[T]) StoreSlice(dst []T) {
	copy(dst, v.lanes())
}
