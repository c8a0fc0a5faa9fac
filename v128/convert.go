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

//go:generate go run ../cmd/v128gen -output as_gen.go -pkg v128

// As reinterprets the bits of v as lanes of U (bit cast, no value conversion).
// Changing the lane width changes the lane count: As[uint8] of a
// Vec128[int32] has 16 lanes.
//
// Usage:
//
//	bytes := v128.As[uint8](v)
//
// The As* methods in as_gen.go are shorthands for each lane type.
func As[U, T Lanes](v Vec128[T]) Vec128[U] {
	return Vec128[U]{raw: v.raw}
}
