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

import "strconv"

// Kind identifies a lane type.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindInt8
	KindUint8
	KindInt16
	KindUint16
	KindInt32
	KindUint32
	KindInt64
	KindUint64
	KindFloat32
	KindFloat64
)

// KindOf returns the Kind of lane type T.
func KindOf[T Lanes]() Kind {
	var zero T
	switch any(zero).(type) {
	case int8:
		return KindInt8
	case uint8:
		return KindUint8
	case int16:
		return KindInt16
	case uint16:
		return KindUint16
	case int32:
		return KindInt32
	case uint32:
		return KindUint32
	case int64:
		return KindInt64
	case uint64:
		return KindUint64
	case float32:
		return KindFloat32
	case float64:
		return KindFloat64
	default:
		return KindInvalid
	}
}

// Size returns the lane size in bytes, or 0 for KindInvalid.
func (k Kind) Size() int {
	switch k {
	case KindInt8, KindUint8:
		return 1
	case KindInt16, KindUint16:
		return 2
	case KindInt32, KindUint32, KindFloat32:
		return 4
	case KindInt64, KindUint64, KindFloat64:
		return 8
	default:
		return 0
	}
}

// Lanes returns how many lanes of this kind fit in 128 bits.
func (k Kind) Lanes() int {
	if s := k.Size(); s > 0 {
		return 16 / s
	}
	return 0
}

// IsFloat reports whether k is a floating-point kind.
func (k Kind) IsFloat() bool {
	return k == KindFloat32 || k == KindFloat64
}

// IsSigned reports whether k is a signed integer kind.
func (k Kind) IsSigned() bool {
	switch k {
	case KindInt8, KindInt16, KindInt32, KindInt64:
		return true
	}
	return false
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindInt8:
		return "i8"
	case KindUint8:
		return "u8"
	case KindInt16:
		return "i16"
	case KindUint16:
		return "u16"
	case KindInt32:
		return "i32"
	case KindUint32:
		return "u32"
	case KindInt64:
		return "i64"
	case KindUint64:
		return "u64"
	case KindFloat32:
		return "f32"
	case KindFloat64:
		return "f64"
	default:
		return "invalid"
	}
}

// Shape returns the WebAssembly-style shape name, e.g. "i32x4".
func (k Kind) Shape() string {
	if k == KindInvalid {
		return "invalid"
	}
	return k.String() + "x" + strconv.Itoa(k.Lanes())
}
