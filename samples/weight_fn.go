// SPDX-License-Identifier: MIT

package samples

import (
	"fmt"
	"math/rand"
)

// WeightFn produces an edge weight from the generator's RNG.
type WeightFn func(rng *rand.Rand) float64

// ConstantWeightFn always yields value. Panics if value < 0.
func ConstantWeightFn(value float64) WeightFn {
	if value < 0 {
		panic(fmt.Sprintf("ConstantWeightFn: value must be ≥ 0, got %g", value))
	}
	return func(*rand.Rand) float64 { return value }
}

// UniformWeightFn draws integer weights uniformly from [lo, hi]. Integer
// weights keep trace descriptions short. Panics unless 0 ≤ lo ≤ hi.
func UniformWeightFn(lo, hi int) WeightFn {
	if lo < 0 || hi < lo {
		panic(fmt.Sprintf("UniformWeightFn: require 0 ≤ lo ≤ hi, got lo=%d, hi=%d", lo, hi))
	}
	return func(rng *rand.Rand) float64 {
		return float64(lo + rng.Intn(hi-lo+1))
	}
}
