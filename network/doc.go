// SPDX-License-Identifier: MIT

// Package network builds the static input-output structure of an economy:
// who buys from whom, and with which weights.
//
// A topology Constructor (Complete, Cycle, Star, RandomSparse) yields an n×n
// supplier-weight matrix; Build turns it into the n×(n+1) substitution
// matrix λ with labour in column 0 and unit row sums, ready for
// economy.New. ProductivityProfile draws a smooth productivity vector z from
// simplex noise.
//
// Options follow the functional style:
//
//	lambda, err := network.Build(network.RandomSparse(8, 0.3),
//		network.WithSeed(42), network.WithLabourShare(0.4))
//
// Option constructors panic on meaningless values; builders return
// sentinel errors (ErrTooFewSectors, ErrInvalidProbability, ...).
package network
