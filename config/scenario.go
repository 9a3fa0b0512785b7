// SPDX-License-Identifier: MIT
// Package: config
//
// scenario.go - the YAML schema.

package config

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Topology names accepted in network.topology.
const (
	TopologyComplete = "complete"
	TopologyCycle    = "cycle"
	TopologyStar     = "star"
	TopologyRandom   = "random"
	TopologyExplicit = "explicit"
)

// Scenario is one simulation setup.
type Scenario struct {
	Name       string     `yaml:"name"`
	Horizon    int        `yaml:"horizon"`
	Network    Network    `yaml:"network"`
	Production Production `yaml:"production"`
	Firms      Firms      `yaml:"firms"`
	Household  Household  `yaml:"household"`
	Initial    Initial    `yaml:"initial"`
	Rationing  Rationing  `yaml:"rationing"`
	Tension    Tension    `yaml:"tension"`
	Store      Store      `yaml:"store"`
}

// Network describes the supplier topology and the labour share of λ.
type Network struct {
	Topology    string       `yaml:"topology"`
	Sectors     int          `yaml:"sectors"`
	Seed        int64        `yaml:"seed"`
	LabourShare float64      `yaml:"labour_share"`
	Density     float64      `yaml:"density"`
	SelfLoops   bool         `yaml:"self_loops"`
	Weights     *WeightRange `yaml:"weights"`
	Lambda      [][]float64  `yaml:"lambda"` // topology: explicit only
}

// WeightRange draws link weights uniformly from [Min, Max).
type WeightRange struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// Production holds the CES substitution parameter q and returns to scale b.
type Production struct {
	Q Float   `yaml:"q"`
	B float64 `yaml:"b"`
}

// Firms holds the sector parameters. Z may be replaced by a Productivity
// noise profile.
type Firms struct {
	Z            []float64     `yaml:"z"`
	Productivity *Productivity `yaml:"productivity"`
	Sigma        []float64     `yaml:"sigma"`
	Alpha        float64       `yaml:"alpha"`
	AlphaP       float64       `yaml:"alpha_p"`
	Beta         float64       `yaml:"beta"`
	BetaP        float64       `yaml:"beta_p"`
	W            float64       `yaml:"w"`
}

// Productivity parameterises network.ProductivityProfile.
type Productivity struct {
	Base      float64 `yaml:"base"`
	Amplitude float64 `yaml:"amplitude"`
	Seed      int64   `yaml:"seed"`
}

// Household holds the consumer parameters.
type Household struct {
	Labour float64   `yaml:"labour"`
	Theta  []float64 `yaml:"theta"`
	Gamma  float64   `yaml:"gamma"`
	Phi    Float     `yaml:"phi"`
	OmegaP float64   `yaml:"omega_p"`
}

// Initial holds the six initial conditions, in money units.
type Initial struct {
	P0 []float64 `yaml:"p0"`
	W0 *float64  `yaml:"w0"`
	G0 []float64 `yaml:"g0"`
	T1 []float64 `yaml:"t1"`
	S0 []float64 `yaml:"s0"`
	B0 *float64  `yaml:"b0"`
}

// Rationing selects the market-clearing policy by name.
type Rationing struct {
	Policy string `yaml:"policy"`
}

// Tension scales the household's reaction to market tension.
type Tension struct {
	Sensitivity *float64 `yaml:"sensitivity"`
}

// Store enables persistence of finished runs.
type Store struct {
	Path string `yaml:"path"`
}

// Float is a float64 that also decodes "inf", "+inf" and "infinity".
type Float float64

// UnmarshalYAML implements the go-yaml interface unmarshaler.
func (f *Float) UnmarshalYAML(unmarshal func(any) error) error {
	var raw any
	if err := unmarshal(&raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case float64:
		*f = Float(v)
	case int:
		*f = Float(v)
	case int64:
		*f = Float(v)
	case uint64:
		*f = Float(v)
	case string:
		x, err := parseFloat(v)
		if err != nil {
			return err
		}
		*f = Float(x)
	default:
		return fmt.Errorf("cannot use %T as a number: %w", raw, ErrInvalidScenario)
	}

	return nil
}

func parseFloat(s string) (float64, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "inf", "+inf", ".inf", "infinity":
		return math.Inf(1), nil
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number: %w", s, ErrInvalidScenario)
	}

	return x, nil
}
