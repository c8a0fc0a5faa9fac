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

import (
	"fmt"
	"unsafe"
)

// Get returns lane i of v.
// It panics if i is not in [0, Len()).
func (v Vec128[T]) Get(i int) T {
	checkLane[T](i)
	return v.GetUnchecked(i)
}

// GetUnchecked returns lane i of v without a bounds check.
// The caller guarantees 0 <= i < Len(); any other index reads outside
// the register.
func (v Vec128[T]) GetUnchecked(i int) T {
	var dummy T
	return *(*T)(unsafe.Add(unsafe.Pointer(&v.raw), uintptr(i)*unsafe.Sizeof(dummy)))
}

// ReplaceLane returns a copy of v with lane i set to value.
// It panics if i is not in [0, Len()).
func (v Vec128[T]) ReplaceLane(i int, value T) Vec128[T] {
	checkLane[T](i)
	return v.ReplaceLaneUnchecked(i, value)
}

// ReplaceLaneUnchecked returns a copy of v with lane i set to value, without
// a bounds check. The caller guarantees 0 <= i < Len().
func (v Vec128[T]) ReplaceLaneUnchecked(i int, value T) Vec128[T] {
	*(*T)(unsafe.Add(unsafe.Pointer(&v.raw), uintptr(i)*unsafe.Sizeof(value))) = value
	return v
}

// Lanes returns a copy of the lanes of v as a slice.
// This is primarily for testing and should not be used in performance-critical code.
func (v Vec128[T]) Lanes() []T {
	out := make([]T, v.Len())
	copy(out, v.lanes())
	return out
}

func checkLane[T Lanes](i int) {
	if n := NumLanes[T](); uint(i) >= uint(n) {
		panic(fmt.Sprintf("v128: lane index %d out of range [0:%d]", i, n))
	}
}
