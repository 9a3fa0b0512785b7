// SPDX-License-Identifier: MIT

package config_test

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netecon/config"
	"github.com/katalvlaran/netecon/dynamics"
)

const twoSectorYAML = `
name: symmetric
horizon: 20
network:
  topology: explicit
  lambda:
    - [0.6, 0.2, 0.2]
    - [0.6, 0.2, 0.2]
production:
  q: inf
  b: 1
firms:
  z: [1]
  sigma: [0.1, 0.1]
  alpha: 0.1
  alpha_p: 0.1
  beta: 0.1
  beta_p: 0.1
  w: 0.1
household:
  labour: 1
  theta: [0.5]
  gamma: 1
  phi: 1
  omega_p: 0.2
initial:
  p0: [1]
  w0: 1
  g0: [1]
  s0: [0.5]
  b0: 1
rationing:
  policy: proportional
tension:
  sensitivity: 1
store:
  path: runs.db
`

func writeScenario(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad_FullScenario(t *testing.T) {
	t.Parallel()

	s, err := config.Load(writeScenario(t, twoSectorYAML))
	require.NoError(t, err)

	assert.Equal(t, "symmetric", s.Name)
	assert.Equal(t, 20, s.Horizon)
	assert.Equal(t, config.TopologyExplicit, s.Network.Topology)
	assert.Equal(t, 2, s.Network.Sectors, "sectors inferred from lambda")
	assert.True(t, math.IsInf(float64(s.Production.Q), 1))
	assert.Equal(t, "runs.db", s.Store.Path)

	eco, err := s.Economy()
	require.NoError(t, err)
	assert.Equal(t, 2, eco.N)
	assert.True(t, eco.IsCobbDouglas())
	assert.Equal(t, []float64{1, 1}, eco.Firms.Z())
	assert.Equal(t, []float64{0.5, 0.5}, eco.House.Theta())

	ic := s.InitialConditions()
	assert.Equal(t, []float64{1, 1}, ic.P0)
	assert.Equal(t, []float64{1, 1}, ic.T1, "t1 defaults to g0")
	assert.Equal(t, []float64{0.5, 0.5}, ic.S0)
	require.NotNil(t, ic.W0)
	assert.Equal(t, 1.0, *ic.W0)

	d, err := s.NewDynamics(nil)
	require.NoError(t, err)
	assert.Equal(t, dynamics.PolicyProportional, d.Policy().Name())
	require.NoError(t, d.Run())
	for tt := 1; tt < d.TMax(); tt++ {
		assert.Greater(t, d.Wages[tt], 0.0)
	}
}

func TestParse_Defaults(t *testing.T) {
	t.Parallel()

	s, err := config.Parse([]byte("network: {sectors: 4}\n"))
	require.NoError(t, err)

	assert.Equal(t, config.DefaultHorizon, s.Horizon)
	assert.Equal(t, config.TopologyComplete, s.Network.Topology)
	assert.Equal(t, config.DefaultLabourShare, s.Network.LabourShare)
	assert.Equal(t, config.DefaultReturns, s.Production.B)
	assert.Zero(t, float64(s.Production.Q))
	assert.Equal(t, config.DefaultPhi, float64(s.Household.Phi))
	assert.Equal(t, []float64{0.25}, s.Household.Theta)
	assert.Equal(t, dynamics.PolicyHouseholdPriority, mustPolicy(t, s))

	eco, err := s.Economy()
	require.NoError(t, err)
	assert.True(t, eco.IsLeontief())
	assert.Equal(t, 4, eco.N)
	assert.InDelta(t, 0.5, eco.Lambda.Row(0)[0], 1e-15)

	ic := s.InitialConditions()
	assert.Len(t, ic.P0, 4)
	assert.Equal(t, []float64{0, 0, 0, 0}, ic.S0)
	assert.Equal(t, config.DefaultBudget, *ic.B0)
}

func mustPolicy(t *testing.T, s *config.Scenario) string {
	t.Helper()
	p, err := dynamics.PolicyByName(s.Rationing.Policy)
	require.NoError(t, err)

	return p.Name()
}

func TestFloat_Decoding(t *testing.T) {
	t.Parallel()

	cases := map[string]float64{
		"q: inf":      math.Inf(1),
		"q: .inf":     math.Inf(1),
		"q: Infinity": math.Inf(1),
		"q: 0.5":      0.5,
		"q: 2":        2,
		"q: '3.25'":   3.25,
	}
	for body, want := range cases {
		s, err := config.Parse([]byte("network: {sectors: 2}\nproduction:\n  " + body + "\n"))
		require.NoError(t, err, body)
		assert.Equal(t, want, float64(s.Production.Q), body)
	}

	_, err := config.Parse([]byte("network: {sectors: 2}\nproduction: {q: fast}\n"))
	require.Error(t, err)
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")

	_, err = config.Parse([]byte("network: {sectors: 2}\nfirms: {zz: 1}\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")

	cases := []struct {
		name string
		body string
		want error
	}{
		{"horizon", "horizon: 1\nnetwork: {sectors: 2}\n", config.ErrInvalidScenario},
		{"no sectors", "horizon: 5\n", config.ErrInvalidScenario},
		{"topology", "network: {sectors: 2, topology: torus}\n", config.ErrUnknownTopology},
		{"labour share", "network: {sectors: 2, labour_share: 1.5}\n", config.ErrInvalidScenario},
		{"density", "network: {sectors: 2, topology: random, density: 2}\n", config.ErrInvalidScenario},
		{"weights", "network: {sectors: 2, weights: {min: 2, max: 1}}\n", config.ErrInvalidScenario},
		{"negative q", "network: {sectors: 2}\nproduction: {q: -1}\n", config.ErrInvalidScenario},
		{"vector length", "network: {sectors: 3}\ninitial: {p0: [1, 2]}\n", config.ErrVectorLength},
		{"z and profile", "network: {sectors: 2}\nfirms: {z: [1], productivity: {base: 1}}\n", config.ErrInvalidScenario},
		{"phi", "network: {sectors: 2}\nhousehold: {phi: -1}\n", config.ErrInvalidScenario},
		{"w0", "network: {sectors: 2}\ninitial: {w0: 0}\n", config.ErrInvalidScenario},
		{"policy", "network: {sectors: 2}\nrationing: {policy: auction}\n", dynamics.ErrUnknownPolicy},
		{"explicit rows", "network: {sectors: 3, topology: explicit, lambda: [[1, 1, 1]]}\n", config.ErrInvalidScenario},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := config.Parse([]byte(tc.body))
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestScenario_RandomTopologyReproducible(t *testing.T) {
	t.Parallel()

	body := "network: {sectors: 6, topology: random, density: 0.4, seed: 7, weights: {min: 0.5, max: 2}}\n"
	s1, err := config.Parse([]byte(body))
	require.NoError(t, err)
	s2, err := config.Parse([]byte(body))
	require.NoError(t, err)

	l1, err := s1.Lambda()
	require.NoError(t, err)
	l2, err := s2.Lambda()
	require.NoError(t, err)
	assert.Equal(t, l1.String(), l2.String())

	for i := 0; i < 6; i++ {
		assert.InDelta(t, 1.0, sum(l1.Row(i)), 1e-12)
	}
}

func sum(x []float64) float64 {
	var s float64
	for _, v := range x {
		s += v
	}

	return s
}

func TestScenario_ProductivityProfile(t *testing.T) {
	t.Parallel()

	s, err := config.Parse([]byte("network: {sectors: 5, topology: cycle}\nfirms: {productivity: {base: 2, amplitude: 0.5, seed: 3}}\n"))
	require.NoError(t, err)

	z, err := s.Productivities()
	require.NoError(t, err)
	require.Len(t, z, 5)
	for _, v := range z {
		assert.GreaterOrEqual(t, v, 1.0)
		assert.LessOrEqual(t, v, 3.0)
	}

	eco, err := s.Economy()
	require.NoError(t, err)
	assert.Equal(t, z, eco.Firms.Z())
}

func TestDynamicsOptions_Tension(t *testing.T) {
	t.Parallel()

	s, err := config.Parse([]byte("horizon: 10\nnetwork: {sectors: 2}\ntension: {sensitivity: 0}\nrationing: {policy: firm-priority}\n"))
	require.NoError(t, err)
	opts, err := s.DynamicsOptions(nil)
	require.NoError(t, err)
	assert.Len(t, opts, 2)

	d, err := s.NewDynamics(nil, dynamics.WithStorage("handle"))
	require.NoError(t, err)
	assert.Equal(t, dynamics.PolicyFirmPriority, d.Policy().Name())
	assert.Equal(t, "handle", d.Storage())
	assert.Equal(t, 10, d.TMax())
}
