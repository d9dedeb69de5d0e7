package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/mindelay/core"
)

// DefaultEdgeWeight is the weight assigned to each edge when no custom
// WeightFn is provided.
const DefaultEdgeWeight core.Weight = 1

// WeightFn produces an edge weight given an optional *rand.Rand source.
// It must be deterministic for a given RNG seed.
type WeightFn func(rng *rand.Rand) core.Weight

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) core.Weight {
	return DefaultEdgeWeight
}

// ConstantWeightFn returns a WeightFn that always yields value.
func ConstantWeightFn(value core.Weight) WeightFn {
	return func(_ *rand.Rand) core.Weight {
		return value
	}
}

// UniformWeightFn returns a WeightFn sampling uniformly in [min, max].
// Panics if max < min. If rng is nil, yields min.
func UniformWeightFn(min, max core.Weight) WeightFn {
	if max < min {
		panic(fmt.Sprintf("UniformWeightFn: require min ≤ max, got min=%d, max=%d", min, max))
	}
	span := int64(max) - int64(min) + 1

	return func(rng *rand.Rand) core.Weight {
		if rng == nil || span == 1 {
			return min
		}
		return min + core.Weight(rng.Int63n(span))
	}
}

// WithConstantWeight sets a fixed edge weight.
func WithConstantWeight(w core.Weight) BuilderOption {
	return WithWeightFn(ConstantWeightFn(w))
}

// WithUniformWeight sets weights ∼ U[min,max].
func WithUniformWeight(min, max core.Weight) BuilderOption {
	return WithWeightFn(UniformWeightFn(min, max))
}
