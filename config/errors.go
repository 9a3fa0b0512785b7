// SPDX-License-Identifier: MIT
// Package config: sentinel errors of the scenario loader.

package config

import "errors"

var (
	// ErrInvalidScenario indicates a scenario value outside its domain.
	ErrInvalidScenario = errors.New("config: invalid scenario")

	// ErrUnknownTopology indicates an unsupported network.topology.
	ErrUnknownTopology = errors.New("config: unknown network topology")

	// ErrVectorLength indicates a vector that is neither a scalar broadcast
	// (one entry) nor one entry per sector.
	ErrVectorLength = errors.New("config: vector length must be 1 or the sector count")
)
