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
	"os"
	"strconv"
)

// Level names the native 128-bit vector extension of the host.
//
// Every operation in this package produces the same bits on every level;
// the level is reported for diagnostics and benchmarking.
type Level int

const (
	// LevelScalar indicates no usable 128-bit vector extension.
	LevelScalar Level = iota

	// LevelSSE2 indicates SSE2, the x86-64 baseline.
	LevelSSE2

	// LevelSSE41 indicates SSE4.1 (blends, 8/32-bit min/max, 64-bit equality).
	LevelSSE41

	// LevelNEON indicates ARM Advanced SIMD.
	LevelNEON
)

// String returns a human-readable name for the level.
func (l Level) String() string {
	switch l {
	case LevelScalar:
		return "scalar"
	case LevelSSE2:
		return "sse2"
	case LevelSSE41:
		return "sse4.1"
	case LevelNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// currentLevel is the detected level for this runtime.
// Set by init() in dispatch_*.go files.
var currentLevel Level

// hasFMA reports a hardware fused multiply-add.
// Set by init() in dispatch_*.go files.
var hasFMA bool

// CurrentLevel returns the host's 128-bit vector extension.
func CurrentLevel() Level {
	return currentLevel
}

// CurrentName returns a human-readable name for CurrentLevel.
func CurrentName() string {
	return currentLevel.String()
}

// HasFMA reports whether the host has a fused multiply-add instruction.
// QFMA and QFMS round once either way.
func HasFMA() bool {
	return hasFMA
}

// NoSimdEnv checks if the V128_NO_SIMD environment variable is set.
// When set, the host is reported as LevelScalar regardless of CPU features.
func NoSimdEnv() bool {
	val := os.Getenv("V128_NO_SIMD")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}
