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

// AnyTrue returns true if any bit of the register is set (v128.any_true).
func (v Vec128[T]) AnyTrue() bool {
	return v.raw[0]|v.raw[1] != 0
}

// NotAnyTrue returns true if every bit of the register is clear.
func (v Vec128[T]) NotAnyTrue() bool {
	return !v.AnyTrue()
}

// AllTrue returns true if every lane has at least one bit set.
// Lanes are tested by bit pattern, so a -0.0 float lane counts as true.
func (v Vec128[T]) AllTrue() bool {
	b := v.bytes()
	size := 16 / v.Len()
	for lane := 0; lane < 16; lane += size {
		var acc byte
		for _, x := range b[lane : lane+size] {
			acc |= x
		}
		if acc == 0 {
			return false
		}
	}
	return true
}

// Eq reports whether v and o have identical bit patterns.
// It compares the whole register, not lane values: NaN lanes with the same
// payload are equal and -0 differs from +0.
func (v Vec128[T]) Eq(o Vec128[T]) bool {
	return v.raw == o.raw
}

// Neq reports whether v and o differ in any bit.
func (v Vec128[T]) Neq(o Vec128[T]) bool {
	return v.raw != o.raw
}
