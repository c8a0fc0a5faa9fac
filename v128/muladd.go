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
	"math"
	"math/big"
)

// QFMA computes a*b + c for every lane with a single rounding, the result
// a hardware fused multiply-add produces.
func QFMA[T Floats](a, b, c Vec128[T]) Vec128[T] {
	var r Vec128[T]
	al, bl, cl, rl := a.lanes(), b.lanes(), c.lanes(), r.lanes()
	for i := range rl {
		rl[i] = fmaLane(al[i], bl[i], cl[i])
	}
	return r
}

// QFMS computes a*b - c for every lane with a single rounding.
func QFMS[T Floats](a, b, c Vec128[T]) Vec128[T] {
	var r Vec128[T]
	al, bl, cl, rl := a.lanes(), b.lanes(), c.lanes(), r.lanes()
	for i := range rl {
		rl[i] = fmaLane(al[i], bl[i], -cl[i])
	}
	return r
}

func fmaLane[T Floats](x, y, z T) T {
	switch xv := any(x).(type) {
	case float32:
		return any(fma32(xv, any(y).(float32), any(z).(float32))).(T)
	case float64:
		return any(math.FMA(xv, any(y).(float64), any(z).(float64))).(T)
	}
	return x
}

// fma32Prec holds any sum of a float32 product and a float32 exactly.
const fma32Prec = 640

// fma32 computes x*y + z rounded once to float32.
//
// The product of two float32 values is exact in float64, so the only error
// is in the sum. Rounding that sum to float64 and then to float32 gives the
// correctly rounded result unless the float64 sum lands exactly on a float32
// midpoint (or overflows), in which case the sum is redone exactly.
func fma32(x, y, z float32) float32 {
	p := float64(x) * float64(y)
	r := p + float64(z)
	if math.IsNaN(r) || math.IsInf(r, 0) || r == 0 {
		return float32(r)
	}
	f := float32(r)
	if float64(f) == r {
		return f
	}
	if !math.IsInf(float64(f), 0) {
		dir := float32(math.Inf(1))
		if r < float64(f) {
			dir = float32(math.Inf(-1))
		}
		mid := (float64(f) + float64(math.Nextafter32(f, dir))) / 2
		if r != mid {
			return f
		}
	}
	sum := new(big.Float).SetPrec(fma32Prec).SetFloat64(p)
	sum.Add(sum, big.NewFloat(float64(z)))
	f, _ = sum.Float32()
	return f
}
