// SPDX-License-Identifier: MIT
// Package store: sentinel errors.

package store

import "errors"

var (
	// ErrRunIncomplete indicates SaveRun on a Dynamics without a completed run.
	ErrRunIncomplete = errors.New("store: dynamics holds no completed run")

	// ErrRunNotFound indicates an unknown run identifier.
	ErrRunNotFound = errors.New("store: run not found")

	// ErrUnknownSeries indicates a series name that is never saved.
	ErrUnknownSeries = errors.New("store: unknown series")
)
