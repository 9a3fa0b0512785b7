// SPDX-License-Identifier: MIT
// Package: config
//
// load.go - reading, defaulting and validating a scenario.

package config

import (
	"fmt"
	"math"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/katalvlaran/netecon/dynamics"
)

// Defaults applied to zero-valued fields.
const (
	DefaultHorizon      = 100
	DefaultLabourShare  = 0.5
	DefaultDensity      = 0.5
	DefaultReturns      = 1.0
	DefaultLabour       = 1.0
	DefaultGamma        = 1.0
	DefaultPhi          = 1.0
	DefaultPrice        = 1.0
	DefaultWage         = 1.0
	DefaultProduction   = 1.0
	DefaultBudget       = 1.0
	DefaultProductivity = 1.0
)

const minHorizon = 2

// Load reads the YAML scenario at path, applies defaults and validates it.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return Parse(data)
}

// Parse decodes a YAML scenario, applies defaults and validates it.
// Unknown keys are rejected.
func Parse(data []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.UnmarshalWithOptions(data, &s, yaml.DisallowUnknownField()); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	s.applyDefaults()
	if err := s.Validate(); err != nil {
		return nil, err
	}

	return &s, nil
}

// applyDefaults fills zero-valued fields.
func (s *Scenario) applyDefaults() {
	if s.Horizon == 0 {
		s.Horizon = DefaultHorizon
	}

	nw := &s.Network
	if nw.Topology == "" {
		nw.Topology = TopologyComplete
		if len(nw.Lambda) > 0 {
			nw.Topology = TopologyExplicit
		}
	}
	if nw.Topology == TopologyExplicit && nw.Sectors == 0 {
		nw.Sectors = len(nw.Lambda)
	}
	if nw.LabourShare == 0 {
		nw.LabourShare = DefaultLabourShare
	}
	if nw.Topology == TopologyRandom && nw.Density == 0 {
		nw.Density = DefaultDensity
	}

	if s.Production.B == 0 {
		s.Production.B = DefaultReturns
	}

	f := &s.Firms
	if len(f.Z) == 0 && f.Productivity == nil {
		f.Z = []float64{DefaultProductivity}
	}
	if len(f.Sigma) == 0 {
		f.Sigma = []float64{0}
	}

	h := &s.Household
	if h.Labour == 0 {
		h.Labour = DefaultLabour
	}
	if h.Gamma == 0 {
		h.Gamma = DefaultGamma
	}
	if h.Phi == 0 {
		h.Phi = DefaultPhi
	}
	if len(h.Theta) == 0 && nw.Sectors > 0 {
		h.Theta = []float64{1 / float64(nw.Sectors)}
	}

	ic := &s.Initial
	if len(ic.P0) == 0 {
		ic.P0 = []float64{DefaultPrice}
	}
	if ic.W0 == nil {
		w := DefaultWage
		ic.W0 = &w
	}
	if len(ic.G0) == 0 {
		ic.G0 = []float64{DefaultProduction}
	}
	if len(ic.T1) == 0 {
		ic.T1 = append([]float64(nil), ic.G0...)
	}
	if len(ic.S0) == 0 {
		ic.S0 = []float64{0}
	}
	if ic.B0 == nil {
		b := DefaultBudget
		ic.B0 = &b
	}
}

// Validate checks every field against its domain. Component constructors
// (economy, firms, household) repeat their own checks at build time.
func (s *Scenario) Validate() error {
	if s.Horizon < minHorizon {
		return invalid("horizon", "%d < %d", s.Horizon, minHorizon)
	}

	nw := s.Network
	switch nw.Topology {
	case TopologyComplete, TopologyCycle, TopologyStar, TopologyRandom, TopologyExplicit:
	default:
		return fmt.Errorf("network.topology %q: %w", nw.Topology, ErrUnknownTopology)
	}
	if nw.Sectors < 1 {
		return invalid("network.sectors", "%d < 1", nw.Sectors)
	}
	if nw.Topology == TopologyExplicit && len(nw.Lambda) != nw.Sectors {
		return invalid("network.lambda", "%d rows for %d sectors", len(nw.Lambda), nw.Sectors)
	}
	if !(nw.LabourShare > 0 && nw.LabourShare <= 1) {
		return invalid("network.labour_share", "%g not in (0,1]", nw.LabourShare)
	}
	if !(nw.Density >= 0 && nw.Density <= 1) {
		return invalid("network.density", "%g not in [0,1]", nw.Density)
	}
	if w := nw.Weights; w != nil {
		if !(w.Min >= 0 && w.Max >= w.Min) || math.IsInf(w.Max, 0) {
			return invalid("network.weights", "[%g, %g)", w.Min, w.Max)
		}
	}

	if q := float64(s.Production.Q); !(q >= 0) {
		return invalid("production.q", "%g < 0", q)
	}
	if b := s.Production.B; !(b > 0) || math.IsInf(b, 0) {
		return invalid("production.b", "%g", b)
	}

	n := nw.Sectors
	vectors := []struct {
		name string
		vec  []float64
	}{
		{"firms.z", s.Firms.Z},
		{"firms.sigma", s.Firms.Sigma},
		{"household.theta", s.Household.Theta},
		{"initial.p0", s.Initial.P0},
		{"initial.g0", s.Initial.G0},
		{"initial.t1", s.Initial.T1},
		{"initial.s0", s.Initial.S0},
	}
	for _, v := range vectors {
		if v.name == "firms.z" && s.Firms.Productivity != nil {
			continue
		}
		if len(v.vec) != 1 && len(v.vec) != n {
			return fmt.Errorf("%s has %d entries for %d sectors: %w", v.name, len(v.vec), n, ErrVectorLength)
		}
	}
	if s.Firms.Productivity != nil && len(s.Firms.Z) > 0 {
		return invalid("firms", "z and productivity are exclusive")
	}

	if phi := float64(s.Household.Phi); !(phi > 0) {
		return invalid("household.phi", "%g <= 0", phi)
	}
	if w0 := s.Initial.W0; w0 != nil && (!(*w0 > 0) || math.IsInf(*w0, 0)) {
		return invalid("initial.w0", "%g", *w0)
	}
	if sens := s.Tension.Sensitivity; sens != nil && (math.IsNaN(*sens) || math.IsInf(*sens, 0)) {
		return invalid("tension.sensitivity", "%g", *sens)
	}
	if _, err := dynamics.PolicyByName(s.Rationing.Policy); err != nil {
		return fmt.Errorf("rationing.policy: %w", err)
	}

	return nil
}

func invalid(field, format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", field, fmt.Sprintf(format, args...), ErrInvalidScenario)
}
