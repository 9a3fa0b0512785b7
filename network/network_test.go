// SPDX-License-Identifier: MIT

package network_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netecon/matrix"
	"github.com/katalvlaran/netecon/network"
)

func requireStochasticRows(t *testing.T, lambda *matrix.Dense) {
	t.Helper()
	sums, err := matrix.RowSums(lambda)
	require.NoError(t, err)
	for i, s := range sums {
		assert.InDelta(t, 1.0, s, 1e-12, "row %d", i)
	}
}

func TestComplete(t *testing.T) {
	t.Parallel()

	lambda, err := network.Build(network.Complete(3), network.WithLabourShare(0.4))
	require.NoError(t, err)
	r, c := lambda.Shape()
	assert.Equal(t, 3, r)
	assert.Equal(t, 4, c)
	assert.InDeltaSlice(t, []float64{0.4, 0, 0.3, 0.3}, lambda.Row(0), 1e-12)
	requireStochasticRows(t, lambda)

	lambda, err = network.Build(network.Complete(2), network.WithSelfLoops(true))
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0.5, 0.25, 0.25}, lambda.Row(1), 1e-12)
}

func TestComplete_SingleSectorIsAllLabour(t *testing.T) {
	t.Parallel()

	lambda, err := network.Build(network.Complete(1))
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 0}, lambda.Row(0))
}

func TestCycleAndStar(t *testing.T) {
	t.Parallel()

	lambda, err := network.Build(network.Cycle(3))
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5, 0, 0.5, 0}, lambda.Row(0))
	assert.Equal(t, []float64{0.5, 0.5, 0, 0}, lambda.Row(2), "the chain closes")

	lambda, err = network.Build(network.Star(4))
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0.5, 0, 0.5 / 3, 0.5 / 3, 0.5 / 3}, lambda.Row(0), 1e-12)
	assert.Equal(t, []float64{0.5, 0.5, 0, 0, 0}, lambda.Row(3))

	_, err = network.Build(network.Cycle(1))
	require.ErrorIs(t, err, network.ErrTooFewSectors)
	_, err = network.Build(network.Star(1))
	require.ErrorIs(t, err, network.ErrTooFewSectors)
}

func TestRandomSparse_Deterministic(t *testing.T) {
	t.Parallel()

	a, err := network.Build(network.RandomSparse(6, 0.4), network.WithSeed(11))
	require.NoError(t, err)
	b, err := network.Build(network.RandomSparse(6, 0.4), network.WithSeed(11))
	require.NoError(t, err)
	for i := 0; i < 6; i++ {
		assert.Equal(t, a.Row(i), b.Row(i))
		v, err := a.At(i, i+1)
		require.NoError(t, err)
		assert.Equal(t, 0.0, v, "no self-links by default")
	}
	requireStochasticRows(t, a)
}

func TestRandomSparse_Errors(t *testing.T) {
	t.Parallel()

	_, err := network.Build(network.RandomSparse(0, 0.5), network.WithSeed(1))
	require.ErrorIs(t, err, network.ErrTooFewSectors)
	_, err = network.Build(network.RandomSparse(3, 1.5), network.WithSeed(1))
	require.ErrorIs(t, err, network.ErrInvalidProbability)
	_, err = network.Build(network.RandomSparse(3, 0.5))
	require.ErrorIs(t, err, network.ErrNeedRandSource)

	// The extremes are deterministic and need no RNG.
	full, err := network.Build(network.RandomSparse(3, 1))
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0.5, 0, 0.25, 0.25}, full.Row(0), 1e-12)
	empty, err := network.Build(network.RandomSparse(3, 0))
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 0, 0, 0}, empty.Row(2))
}

func TestWeights(t *testing.T) {
	t.Parallel()

	lambda, err := network.Build(network.Complete(4),
		network.WithSeed(3), network.WithWeightFn(network.UniformWeightFn(0.5, 2)))
	require.NoError(t, err)
	requireStochasticRows(t, lambda)

	_, err = network.Build(network.Complete(2),
		network.WithWeightFn(func(*rand.Rand) float64 { return -1 }))
	require.ErrorIs(t, err, network.ErrInvalidWeight)
}

func TestOptionPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { network.WithRand(nil) })
	assert.Panics(t, func() { network.WithLabourShare(0) })
	assert.Panics(t, func() { network.WithLabourShare(1.2) })
	assert.Panics(t, func() { network.WithWeightFn(nil) })
	assert.Panics(t, func() { network.UniformWeightFn(2, 1) })
}

func TestProductivityProfile(t *testing.T) {
	t.Parallel()

	z, err := network.ProductivityProfile(10, 5, 1, 0.5)
	require.NoError(t, err)
	require.Len(t, z, 10)
	for i, v := range z {
		assert.GreaterOrEqual(t, v, 0.5-1e-12, "sector %d", i)
		assert.LessOrEqual(t, v, 1.5+1e-12, "sector %d", i)
	}
	again, err := network.ProductivityProfile(10, 5, 1, 0.5)
	require.NoError(t, err)
	assert.Equal(t, z, again, "same seed, same profile")

	flat, err := network.ProductivityProfile(4, 9, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 2, 2, 2}, flat)

	_, err = network.ProductivityProfile(0, 1, 1, 1)
	require.ErrorIs(t, err, network.ErrTooFewSectors)
	_, err = network.ProductivityProfile(3, 1, -1, 1)
	require.ErrorIs(t, err, network.ErrInvalidProfile)
}
