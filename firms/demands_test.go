// SPDX-License-Identifier: MIT

package firms_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netecon/firms"
	"github.com/katalvlaran/netecon/matrix"
)

// Two sectors, hand-computed fixtures:
//
//	λ = [[0.5, 0.3, 0.2],
//	     [0.4, 0.0, 0.6]],  p = [1.5, 0.7],  t = [2, 0.5],  b = 1.
var (
	handLambda  = [][]float64{{0.5, 0.3, 0.2}, {0.4, 0, 0.6}}
	handPrices  = []float64{1.5, 0.7}
	handTargets = []float64{2, 0.5}
)

// pNetCES is the network price index Σ_j λ_ij p̃_j^{1/(1+q)}.
func pNetCES(lambda [][]float64, prices []float64, q float64) []float64 {
	pt := append([]float64{1}, prices...)
	out := make([]float64, len(lambda))
	for i, row := range lambda {
		for j, l := range row {
			out[i] += l * math.Pow(pt[j], 1/(1+q))
		}
	}

	return out
}

func demands(t *testing.T, q float64, pNet []float64) *matrix.Dense {
	t.Helper()
	f := mustFirms(t, 2)
	d, err := f.ComputeDemands(handTargets, handPrices, pNet, q, 1, mustRows(t, handLambda))
	require.NoError(t, err)

	return d
}

func assertRows(t *testing.T, want [][]float64, got *matrix.Dense, delta float64) {
	t.Helper()
	require.Equal(t, len(want), got.Rows())
	for i, row := range want {
		assert.InDeltaSlice(t, row, got.Row(i), delta, "row %d", i)
	}
}

func TestComputeDemands_Leontief(t *testing.T) {
	t.Parallel()

	d := demands(t, 0, nil)
	assertRows(t, [][]float64{{1, 0.6, 0.4}, {0.2, 0, 0.3}}, d, tol)
}

func TestComputeDemands_CobbDouglas(t *testing.T) {
	t.Parallel()

	d := demands(t, math.Inf(1), nil)
	assertRows(t, [][]float64{
		{1.0515913, 0.4206365, 0.6009093},
		{0.1614689, 0, 0.3460047},
	}, d, 1e-6)
	assert.Equal(t, 0.0, d.Row(1)[1], "λ = 0 gives an exact zero")
}

func TestComputeDemands_CobbDouglasCostShares(t *testing.T) {
	t.Parallel()

	// Each input takes the fixed share λ_ij of the sector's spending.
	d := demands(t, math.Inf(1), nil)
	pt := append([]float64{1}, handPrices...)
	for i, row := range handLambda {
		spend := 0.0
		for j := range row {
			spend += pt[j] * d.Row(i)[j]
		}
		for j, l := range row {
			assert.InDelta(t, l, pt[j]*d.Row(i)[j]/spend, 1e-12, "share %d,%d", i, j)
		}
	}

	// A dearer input is demanded less.
	f := mustFirms(t, 2)
	dear, err := f.ComputeDemands(handTargets, []float64{1.5, 1.4}, nil, math.Inf(1), 1, mustRows(t, handLambda))
	require.NoError(t, err)
	assert.Less(t, dear.Row(0)[2], d.Row(0)[2])
	assert.Less(t, dear.Row(1)[2], d.Row(1)[2])
}

func TestComputeDemands_CES(t *testing.T) {
	t.Parallel()

	pNet := pNetCES(handLambda, handPrices, 1)
	assert.InDelta(t, 1.034755, pNet[0], 1e-6)
	d := demands(t, 1, pNet)
	assertRows(t, [][]float64{
		{1.0347555, 0.5069246, 0.4947077},
		{0.1803992, 0, 0.3234274},
	}, d, 1e-5)
}

func TestComputeDemands_LimitsMatchClosedForms(t *testing.T) {
	t.Parallel()

	leontief := demands(t, 0, nil)
	nearZero := 1e-9
	small := demands(t, nearZero, pNetCES(handLambda, handPrices, nearZero))
	for i := 0; i < 2; i++ {
		assert.InDeltaSlice(t, leontief.Row(i), small.Row(i), 1e-6)
	}

	cobb := demands(t, math.Inf(1), nil)
	large := 1e8
	big := demands(t, large, pNetCES(handLambda, handPrices, large))
	for i := 0; i < 2; i++ {
		assert.InDeltaSlice(t, cobb.Row(i), big.Row(i), 1e-6)
	}
}

func TestComputeDemands_ReturnsToScale(t *testing.T) {
	t.Parallel()

	f := mustFirms(t, 2)
	d, err := f.ComputeDemands([]float64{4, 9}, handPrices, nil, 0, 0.5, mustRows(t, handLambda))
	require.NoError(t, err)
	// T = t^{1/b} = t².
	assert.InDelta(t, 8.0, d.Row(0)[0], tol)
	assert.InDelta(t, 32.4, d.Row(1)[0], 1e-9)
}

func TestComputeDemands_Errors(t *testing.T) {
	t.Parallel()

	f := mustFirms(t, 2)
	lam := mustRows(t, handLambda)
	_, err := f.ComputeDemands(handTargets, handPrices, nil, -1, 1, lam)
	require.ErrorIs(t, err, firms.ErrInvalidElasticity)
	_, err = f.ComputeDemands(handTargets, handPrices, nil, 0, 0, lam)
	require.ErrorIs(t, err, firms.ErrInvalidReturns)
	_, err = f.ComputeDemands(handTargets, handPrices, nil, 1, 1, lam)
	require.ErrorIs(t, err, firms.ErrDimensionMismatch, "general branch needs the price index")
	_, err = f.ComputeDemands(handTargets, handPrices, nil, 0, 1, mustRows(t, [][]float64{{1, 0}, {0, 1}}))
	require.ErrorIs(t, err, firms.ErrDimensionMismatch)
}
