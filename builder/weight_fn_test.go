// Package builder_test contains unit tests for the WeightFn implementations
// in the builder package, covering both correct behavior and panic conditions.
package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/propgraph/builder"
)

// TestWeightFnConstructors verifies that WeightFn constructors panic
// on invalid parameters according to their documented contracts.
func TestWeightFnConstructors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		constructor func() builder.WeightFn
	}{
		{"ConstantWeightFn_negative", func() builder.WeightFn { return builder.ConstantWeightFn(-1) }},
		{"UniformWeightFn_minNegative", func() builder.WeightFn { return builder.UniformWeightFn(-1, 5) }},
		{"UniformWeightFn_maxLessThanMin", func() builder.WeightFn { return builder.UniformWeightFn(5, 4) }},
		{"NormalWeightFn_stddevNegative", func() builder.WeightFn { return builder.NormalWeightFn(0, -0.1) }},
		{"ExponentialWeightFn_zeroRate", func() builder.WeightFn { return builder.ExponentialWeightFn(0) }},
		{"ExponentialWeightFn_negativeRate", func() builder.WeightFn { return builder.ExponentialWeightFn(-1) }},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Panics(t, func() { tc.constructor() })
		})
	}
}

// TestWeightFnBehavior covers the runtime behavior of each WeightFn:
// nil RNG falls back to DefaultEdgeWeight, seeded draws stay in range.
func TestWeightFnBehavior(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 3.5, builder.ConstantWeightFn(3.5)(nil))

	samplers := map[string]builder.WeightFn{
		"uniform":     builder.UniformWeightFn(2, 4),
		"normal":      builder.NormalWeightFn(10, 2),
		"exponential": builder.ExponentialWeightFn(0.5),
	}
	for name, fn := range samplers {
		assert.Equal(t, builder.DefaultEdgeWeight, fn(nil), name)
	}

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 100; i++ {
		u := samplers["uniform"](rng)
		assert.GreaterOrEqual(t, u, 2.0)
		assert.Less(t, u, 4.0)
		assert.GreaterOrEqual(t, samplers["normal"](rng), 0.0)
		assert.GreaterOrEqual(t, samplers["exponential"](rng), 0.0)
	}

	assert.Equal(t, 5.0, builder.UniformWeightFn(5, 5)(rng))
}
