// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/transit/core"
)

// DefaultEdgeWeight is the travel time DefaultWeightFn assigns.
const DefaultEdgeWeight = core.UnitWeight

// WeightFn draws a travel time for one link. Results must be ≥ core.MinWeight.
type WeightFn func(rng *rand.Rand) int64

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) int64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn returns value for every link. Panics if value is outside
// [core.MinWeight, core.MaxWeight].
func ConstantWeightFn(value int64) WeightFn {
	if value < core.MinWeight || value > core.MaxWeight {
		panic(fmt.Sprintf("ConstantWeightFn: value must be in [%d, %d], got %d", core.MinWeight, core.MaxWeight, value))
	}

	return func(_ *rand.Rand) int64 {
		return value
	}
}

// UniformWeightFn draws uniformly from [min, max]. Without an RNG it
// returns min. Panics unless core.MinWeight ≤ min ≤ max ≤ core.MaxWeight.
func UniformWeightFn(min, max int64) WeightFn {
	if min < core.MinWeight || max < min || max > core.MaxWeight {
		panic(fmt.Sprintf("UniformWeightFn: require %d ≤ min ≤ max ≤ %d, got min=%d, max=%d",
			core.MinWeight, core.MaxWeight, min, max))
	}

	return func(rng *rand.Rand) int64 {
		if rng == nil || max == min {
			return min
		}

		return min + rng.Int63n(max-min+1)
	}
}

// WithConstantWeight is shorthand for WithWeightFn(ConstantWeightFn(w)).
func WithConstantWeight(w int64) BuilderOption {
	return WithWeightFn(ConstantWeightFn(w))
}

// WithUniformWeight is shorthand for WithWeightFn(UniformWeightFn(min, max)).
func WithUniformWeight(min, max int64) BuilderOption {
	return WithWeightFn(UniformWeightFn(min, max))
}
