// SPDX-License-Identifier: MIT
// Package: config
//
// build.go - turning a validated Scenario into economy and dynamics objects.

package config

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/netecon/dynamics"
	"github.com/katalvlaran/netecon/economy"
	"github.com/katalvlaran/netecon/firms"
	"github.com/katalvlaran/netecon/household"
	"github.com/katalvlaran/netecon/matrix"
	"github.com/katalvlaran/netecon/network"
)

// broadcast expands a one-entry vector to n entries; other lengths are
// copied unchanged.
func broadcast(v []float64, n int) []float64 {
	if len(v) != 1 {
		return matrix.CopyVec(v)
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = v[0]
	}

	return out
}

// Lambda builds the n×(n+1) substitution matrix of the network section.
func (s *Scenario) Lambda() (*matrix.Dense, error) {
	nw := s.Network
	if nw.Topology == TopologyExplicit {
		lam, err := matrix.NewDenseRows(nw.Lambda)
		if err != nil {
			return nil, fmt.Errorf("network.lambda: %w", err)
		}

		return lam, nil
	}

	opts := []network.Option{
		network.WithSeed(nw.Seed),
		network.WithLabourShare(nw.LabourShare),
		network.WithSelfLoops(nw.SelfLoops),
	}
	if w := nw.Weights; w != nil {
		opts = append(opts, network.WithWeightFn(network.UniformWeightFn(w.Min, w.Max)))
	}

	var cons network.Constructor
	switch nw.Topology {
	case TopologyComplete:
		cons = network.Complete(nw.Sectors)
	case TopologyCycle:
		cons = network.Cycle(nw.Sectors)
	case TopologyStar:
		cons = network.Star(nw.Sectors)
	case TopologyRandom:
		cons = network.RandomSparse(nw.Sectors, nw.Density)
	default:
		return nil, fmt.Errorf("network.topology %q: %w", nw.Topology, ErrUnknownTopology)
	}

	lam, err := network.Build(cons, opts...)
	if err != nil {
		return nil, fmt.Errorf("network: %w", err)
	}

	return lam, nil
}

// Productivities returns z, drawn from the productivity profile when one is
// configured.
func (s *Scenario) Productivities() ([]float64, error) {
	n := s.Network.Sectors
	if p := s.Firms.Productivity; p != nil {
		z, err := network.ProductivityProfile(n, p.Seed, p.Base, p.Amplitude)
		if err != nil {
			return nil, fmt.Errorf("firms.productivity: %w", err)
		}

		return z, nil
	}

	return broadcast(s.Firms.Z, n), nil
}

// Economy builds the firms, the household and the production network.
func (s *Scenario) Economy() (*economy.Economy, error) {
	n := s.Network.Sectors
	lam, err := s.Lambda()
	if err != nil {
		return nil, err
	}
	z, err := s.Productivities()
	if err != nil {
		return nil, err
	}

	fc := s.Firms
	f, err := firms.New(z, broadcast(fc.Sigma, n), fc.Alpha, fc.AlphaP, fc.Beta, fc.BetaP, fc.W)
	if err != nil {
		return nil, fmt.Errorf("firms: %w", err)
	}

	hc := s.Household
	h, err := household.New(hc.Labour, broadcast(hc.Theta, n), hc.Gamma, float64(hc.Phi), hc.OmegaP)
	if err != nil {
		return nil, fmt.Errorf("household: %w", err)
	}

	eco, err := economy.New(lam, float64(s.Production.Q), s.Production.B, f, h)
	if err != nil {
		return nil, fmt.Errorf("economy: %w", err)
	}

	return eco, nil
}

// InitialConditions returns the initial section with scalars broadcast to
// the sector count.
func (s *Scenario) InitialConditions() dynamics.InitialConditions {
	n := s.Network.Sectors
	ic := s.Initial

	return dynamics.InitialConditions{
		P0: broadcast(ic.P0, n),
		W0: ic.W0,
		G0: broadcast(ic.G0, n),
		T1: broadcast(ic.T1, n),
		S0: broadcast(ic.S0, n),
		B0: ic.B0,
	}
}

// DynamicsOptions returns the engine options of the scenario: rationing
// policy, tension sensitivity and logger (nil keeps the default).
func (s *Scenario) DynamicsOptions(logger *slog.Logger) ([]dynamics.Option, error) {
	policy, err := dynamics.PolicyByName(s.Rationing.Policy)
	if err != nil {
		return nil, fmt.Errorf("rationing.policy: %w", err)
	}
	opts := []dynamics.Option{dynamics.WithRationing(policy)}
	if sens := s.Tension.Sensitivity; sens != nil {
		opts = append(opts, dynamics.WithTension(*sens))
	}
	if logger != nil {
		opts = append(opts, dynamics.WithLogger(logger.With("scenario", s.Name)))
	}

	return opts, nil
}

// NewDynamics builds the economy and an engine for the scenario horizon with
// its initial conditions applied. extra options are appended after the
// scenario's own.
func (s *Scenario) NewDynamics(logger *slog.Logger, extra ...dynamics.Option) (*dynamics.Dynamics, error) {
	eco, err := s.Economy()
	if err != nil {
		return nil, err
	}
	opts, err := s.DynamicsOptions(logger)
	if err != nil {
		return nil, err
	}
	d, err := dynamics.New(eco, s.Horizon, append(opts, extra...)...)
	if err != nil {
		return nil, err
	}
	d.ApplyInitialConditions(s.InitialConditions())

	return d, nil
}
