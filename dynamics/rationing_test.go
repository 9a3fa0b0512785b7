// SPDX-License-Identifier: MIT

package dynamics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netecon/dynamics"
	"github.com/katalvlaran/netecon/household"
	"github.com/katalvlaran/netecon/matrix"
)

// market builds a one-sector market: the household wants 2 units of the
// good, the firm wants 1 unit of labour and 2 units of the good; 0.5 units
// of labour and 3 units of the good are on offer at price 1.
func market(t *testing.T, budgetRes float64) *dynamics.Market {
	t.Helper()
	h, err := household.New(1, []float64{1}, 1, 1, 0)
	require.NoError(t, err)
	demand, err := matrix.NewDenseRows([][]float64{{0, 2}, {1, 2}})
	require.NoError(t, err)
	out, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	return &dynamics.Market{
		Demand:    demand,
		Real:      out,
		Supply:    []float64{0.5, 3},
		Total:     []float64{1, 4},
		SvsD:      []float64{0.5, 0.75},
		Prices:    []float64{1},
		BudgetRes: budgetRes,
		House:     h,
	}
}

func TestPolicies_LabourRationing(t *testing.T) {
	t.Parallel()

	for _, p := range []dynamics.RationingPolicy{
		dynamics.HouseholdPriority{}, dynamics.Proportional{}, dynamics.FirmPriority{},
	} {
		p := p
		t.Run(p.Name(), func(t *testing.T) {
			t.Parallel()

			m := market(t, 1)
			c, err := p.Clear(m)
			require.NoError(t, err)
			// Half the posted labour demand is served; income 0.5.
			assert.Equal(t, 0.5, m.Real.Row(1)[0])
			assert.Zero(t, m.Real.Row(0)[0])
			assert.Equal(t, 1.5, c.Budget)
		})
	}
}

func TestHouseholdPriority_Clear(t *testing.T) {
	t.Parallel()

	// Affordable: the household takes 2·0.75 and firms share the rest.
	m := market(t, 1)
	c, err := dynamics.HouseholdPriority{}.Clear(m)
	require.NoError(t, err)
	assert.Equal(t, 1.5, m.Real.Row(0)[1])
	assert.Equal(t, 1.0, c.BvsC)
	assert.Equal(t, 0.0, c.BudgetRes)
	assert.InDelta(t, 1.5, m.Real.Row(1)[1], 1e-15)

	// Budget-bound: budget 1 buys two thirds of the offered 1.5 units, and
	// firms get everything they asked for from what is left.
	m = market(t, 0.5)
	c, err = dynamics.HouseholdPriority{}.Clear(m)
	require.NoError(t, err)
	assert.Equal(t, 1.0, c.Budget)
	assert.InDelta(t, 1.0, m.Real.Row(0)[1], 1e-12)
	assert.LessOrEqual(t, m.Real.Row(0)[1], 1.0)
	assert.InDelta(t, 2.0/3, c.BvsC, 1e-12)
	assert.Zero(t, c.BudgetRes)
	assert.Equal(t, 2.0, m.Real.Row(1)[1])
}

func TestProportional_Clear(t *testing.T) {
	t.Parallel()

	m := market(t, 0.5)
	c, err := dynamics.Proportional{}.Clear(m)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, m.Real.Row(0)[1], 1e-12)
	assert.InDelta(t, 2.0/3, c.BvsC, 1e-12)
	// Firms are served at s_vs_d regardless of what the household left.
	assert.Equal(t, 1.5, m.Real.Row(1)[1])
}

func TestFirmPriority_Clear(t *testing.T) {
	t.Parallel()

	m := market(t, 0.5)
	c, err := dynamics.FirmPriority{}.Clear(m)
	require.NoError(t, err)
	// Firms take their full 2 units; the household is offered the 1 left.
	assert.Equal(t, 2.0, m.Real.Row(1)[1])
	assert.Equal(t, 1.0, m.Real.Row(0)[1])
	assert.Equal(t, 1.0, c.BvsC)
	assert.Zero(t, c.BudgetRes)

	// Scarce goods: firm demand exceeds supply, nothing left for the household.
	m = market(t, 5)
	m.Supply[1] = 1
	m.SvsD[1] = 0.25
	c, err = dynamics.FirmPriority{}.Clear(m)
	require.NoError(t, err)
	assert.Equal(t, 1.0, m.Real.Row(1)[1])
	assert.Zero(t, m.Real.Row(0)[1])
	assert.Equal(t, 5.5, c.BudgetRes)
}

func TestPolicies_NoFirmDemand(t *testing.T) {
	t.Parallel()

	h, err := household.New(1, []float64{1}, 1, 1, 0)
	require.NoError(t, err)
	demand, err := matrix.NewDenseRows([][]float64{{0, 1}, {0, 0}})
	require.NoError(t, err)
	for _, p := range []dynamics.RationingPolicy{
		dynamics.HouseholdPriority{}, dynamics.Proportional{}, dynamics.FirmPriority{},
	} {
		out, err := matrix.NewDense(2, 2)
		require.NoError(t, err)
		m := &dynamics.Market{
			Demand: demand, Real: out,
			Supply: []float64{1, 2}, Total: []float64{0, 1}, SvsD: []float64{1, 1},
			Prices: []float64{1}, BudgetRes: 2, House: h,
		}
		c, err := p.Clear(m)
		require.NoError(t, err, p.Name())
		assert.Equal(t, 1.0, m.Real.Row(0)[1], p.Name())
		assert.Zero(t, m.Real.Row(1)[1], p.Name())
		assert.Equal(t, 1.0, c.BudgetRes, p.Name())
	}
}

func TestPolicyByName(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"":                               dynamics.PolicyHouseholdPriority,
		dynamics.PolicyHouseholdPriority: dynamics.PolicyHouseholdPriority,
		dynamics.PolicyProportional:      dynamics.PolicyProportional,
		dynamics.PolicyFirmPriority:      dynamics.PolicyFirmPriority,
	}
	for name, want := range cases {
		p, err := dynamics.PolicyByName(name)
		require.NoError(t, err)
		assert.Equal(t, want, p.Name())
	}

	_, err := dynamics.PolicyByName("auction")
	require.ErrorIs(t, err, dynamics.ErrUnknownPolicy)
}

func TestPolicies_TwoSectorColumnScaling(t *testing.T) {
	t.Parallel()

	h, err := household.New(1, []float64{0.5, 0.5}, 1, 1, 0)
	require.NoError(t, err)
	demand, err := matrix.NewDenseRows([][]float64{{0, 1, 1}, {2, 1, 3}, {1, 2, 0}})
	require.NoError(t, err)

	for _, p := range []dynamics.RationingPolicy{
		dynamics.HouseholdPriority{}, dynamics.Proportional{}, dynamics.FirmPriority{},
	} {
		p := p
		t.Run(p.Name(), func(t *testing.T) {
			t.Parallel()

			out, err := matrix.NewDense(3, 3)
			require.NoError(t, err)
			m := &dynamics.Market{
				Demand:    demand,
				Real:      out,
				Supply:    []float64{1.5, 2, 2},
				Total:     []float64{3, 4, 4},
				SvsD:      []float64{0.5, 0.5, 0.5},
				Prices:    []float64{1, 1},
				BudgetRes: 1,
				House:     h,
			}
			_, err = p.Clear(m)
			require.NoError(t, err)

			// Labour is rationed at s_vs_d_0 whatever the goods policy.
			assert.Equal(t, []float64{1, 0.5}, []float64{out.Row(1)[0], out.Row(2)[0]})
			for i := 0; i < 3; i++ {
				for j := 0; j < 3; j++ {
					assert.LessOrEqual(t, out.Row(i)[j], demand.Row(i)[j], "real[%d][%d]", i, j)
				}
			}
			sold, err := matrix.ColSums(out)
			require.NoError(t, err)
			assert.LessOrEqual(t, sold[1], 2+1e-12)
			assert.LessOrEqual(t, sold[2], 2+1e-12)
		})
	}

	// Proportional serves every buyer half of its order.
	out, err := matrix.NewDense(3, 3)
	require.NoError(t, err)
	m := &dynamics.Market{
		Demand: demand, Real: out,
		Supply: []float64{1.5, 2, 2}, Total: []float64{3, 4, 4}, SvsD: []float64{0.5, 0.5, 0.5},
		Prices: []float64{1, 1}, BudgetRes: 1, House: h,
	}
	_, err = dynamics.Proportional{}.Clear(m)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0.5, 0.5}, out.Row(0))
	assert.Equal(t, []float64{1, 0.5, 1.5}, out.Row(1))
	assert.Equal(t, []float64{0.5, 1, 0}, out.Row(2))
}
