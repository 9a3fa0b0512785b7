// SPDX-License-Identifier: MIT
// Package: dynamics
//
// initial.go - the initial-condition bundle (p0, w0, g0, t1, s0, B0).
//
// Every field is optional until Run: a nil slice or nil pointer means
// "not set", and Run refuses to start while any field is missing.

package dynamics

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/netecon/matrix"
)

// InitialConditions seeds period 1 of a run.
type InitialConditions struct {
	P0 []float64 // goods prices at period 1, in money units
	W0 *float64  // wage at period 0 (the first numeraire), > 0
	G0 []float64 // production available at period 1
	T1 []float64 // production targets for period 1
	S0 []float64 // stocks at period 1
	B0 *float64  // household budget at period 1, in money units
}

// missing lists the names of the unset fields in declaration order.
func (ic InitialConditions) missing() []string {
	var out []string
	if ic.P0 == nil {
		out = append(out, "p0")
	}
	if ic.W0 == nil {
		out = append(out, "w0")
	}
	if ic.G0 == nil {
		out = append(out, "g0")
	}
	if ic.T1 == nil {
		out = append(out, "t1")
	}
	if ic.S0 == nil {
		out = append(out, "s0")
	}
	if ic.B0 == nil {
		out = append(out, "B0")
	}

	return out
}

// validate checks completeness, sizes and values for n sectors.
func (ic InitialConditions) validate(n int) error {
	if miss := ic.missing(); len(miss) > 0 {
		return fmt.Errorf("missing %s: %w", strings.Join(miss, ", "), ErrIncompleteInitialConditions)
	}
	for _, v := range []struct {
		name string
		vec  []float64
	}{{"p0", ic.P0}, {"g0", ic.G0}, {"t1", ic.T1}, {"s0", ic.S0}} {
		if len(v.vec) != n {
			return fmt.Errorf("%s has %d entries, want %d: %w", v.name, len(v.vec), n, ErrDimensionMismatch)
		}
		if !matrix.FiniteVec(v.vec) {
			return fmt.Errorf("%s: %w", v.name, ErrInvalidInitialConditions)
		}
	}
	if !(*ic.W0 > 0) || math.IsInf(*ic.W0, 0) {
		return fmt.Errorf("w0=%g must be finite and > 0: %w", *ic.W0, ErrInvalidInitialConditions)
	}
	if math.IsNaN(*ic.B0) || math.IsInf(*ic.B0, 0) {
		return fmt.Errorf("B0=%g: %w", *ic.B0, ErrInvalidInitialConditions)
	}

	return nil
}

// clone deep-copies the bundle so later caller mutation cannot leak in.
func (ic InitialConditions) clone() InitialConditions {
	out := InitialConditions{
		P0: matrix.CopyVec(ic.P0),
		G0: matrix.CopyVec(ic.G0),
		T1: matrix.CopyVec(ic.T1),
		S0: matrix.CopyVec(ic.S0),
	}
	if ic.W0 != nil {
		w := *ic.W0
		out.W0 = &w
	}
	if ic.B0 != nil {
		b := *ic.B0
		out.B0 = &b
	}

	return out
}

// SetInitialConditions replaces the whole bundle.
func (d *Dynamics) SetInitialConditions(p0 []float64, w0 float64, g0, t1, s0 []float64, b0 float64) {
	d.ic = InitialConditions{P0: p0, W0: &w0, G0: g0, T1: t1, S0: s0, B0: &b0}.clone()
	d.ranWithCurrentIC = false
}

// ApplyInitialConditions replaces the whole bundle from ic; nil fields stay unset.
func (d *Dynamics) ApplyInitialConditions(ic InitialConditions) {
	d.ic = ic.clone()
	d.ranWithCurrentIC = false
}

// SetInitialPrice sets p0.
func (d *Dynamics) SetInitialPrice(p0 []float64) {
	d.ic.P0 = matrix.CopyVec(p0)
	d.ranWithCurrentIC = false
}

// SetInitialWage sets w0.
func (d *Dynamics) SetInitialWage(w0 float64) {
	d.ic.W0 = &w0
	d.ranWithCurrentIC = false
}

// SetInitialProd sets g0.
func (d *Dynamics) SetInitialProd(g0 []float64) {
	d.ic.G0 = matrix.CopyVec(g0)
	d.ranWithCurrentIC = false
}

// SetInitialTarget sets t1.
func (d *Dynamics) SetInitialTarget(t1 []float64) {
	d.ic.T1 = matrix.CopyVec(t1)
	d.ranWithCurrentIC = false
}

// SetInitialStock sets s0.
func (d *Dynamics) SetInitialStock(s0 []float64) {
	d.ic.S0 = matrix.CopyVec(s0)
	d.ranWithCurrentIC = false
}

// SetInitialBudget sets B0.
func (d *Dynamics) SetInitialBudget(b0 float64) {
	d.ic.B0 = &b0
	d.ranWithCurrentIC = false
}

// InitialConditions returns a copy of the current bundle.
func (d *Dynamics) InitialConditions() InitialConditions { return d.ic.clone() }
