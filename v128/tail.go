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

// ProcessWithTail is a helper for walking a slice of T one Vec128 at a time.
//
// It calls:
//   - fullFn(offset) for each full vector (offset is the starting index)
//   - tailFn(offset, count) once for the tail if size is not a multiple of NumLanes[T]()
//
// Example:
//
//	v128.ProcessWithTail[float32](len(data),
//	    func(offset int) {
//	        v := v128.LoadSlice(data[offset:])
//	        v.Add(v).StoreSlice(output[offset:])
//	    },
//	    func(offset, count int) {
//	        // LoadSlice zero-fills and StoreSlice truncates.
//	        v := v128.LoadSlice(data[offset : offset+count])
//	        v.Add(v).StoreSlice(output[offset : offset+count])
//	    },
//	)
func ProcessWithTail[T Lanes](size int, fullFn func(offset int), tailFn func(offset, count int)) {
	lanes := NumLanes[T]()

	fullVectors := size / lanes
	for i := 0; i < fullVectors; i++ {
		fullFn(i * lanes)
	}

	remaining := size % lanes
	if remaining > 0 {
		tailFn(fullVectors*lanes, remaining)
	}
}

// ProcessWithTailNoMask is similar to ProcessWithTail but doesn't require
// a tail function. Instead, it processes an overlapping vector for the tail,
// so fullFn must be safe to apply twice to the same elements.
// size must be at least NumLanes[T]().
func ProcessWithTailNoMask[T Lanes](size int, fullFn func(offset int)) {
	lanes := NumLanes[T]()

	fullVectors := size / lanes
	for i := 0; i < fullVectors; i++ {
		fullFn(i * lanes)
	}

	// The last full vector overlaps the previous one.
	if size%lanes > 0 && fullVectors > 0 {
		fullFn(size - lanes)
	}
}

// AlignedSize rounds up size to the next multiple of NumLanes[T]().
// This is useful for allocating buffers that will be processed whole vectors at a time.
func AlignedSize[T Lanes](size int) int {
	lanes := NumLanes[T]()
	return ((size + lanes - 1) / lanes) * lanes
}

// IsAligned returns true if size is a multiple of NumLanes[T]().
func IsAligned[T Lanes](size int) bool {
	return size%NumLanes[T]() == 0
}
