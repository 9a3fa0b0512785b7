// SPDX-License-Identifier: MIT

package dynamics_test

import (
	"testing"

	"github.com/katalvlaran/netecon/dynamics"
	"github.com/katalvlaran/netecon/economy"
	"github.com/katalvlaran/netecon/firms"
	"github.com/katalvlaran/netecon/household"
	"github.com/katalvlaran/netecon/network"
)

// benchEconomy builds a complete n-sector CES economy.
func benchEconomy(b *testing.B, n int, q float64) *economy.Economy {
	b.Helper()
	lam, err := network.Build(network.Complete(n), network.WithLabourShare(0.4))
	if err != nil {
		b.Fatal(err)
	}
	z, sigma, theta := make([]float64, n), make([]float64, n), make([]float64, n)
	for i := range z {
		z[i], sigma[i], theta[i] = 1, 0.1, 1/float64(n)
	}
	f, err := firms.New(z, sigma, 0.1, 0.1, 0.1, 0.1, 0.1)
	if err != nil {
		b.Fatal(err)
	}
	h, err := household.New(1, theta, 1, 1, 0.2)
	if err != nil {
		b.Fatal(err)
	}
	eco, err := economy.New(lam, q, 1, f, h)
	if err != nil {
		b.Fatal(err)
	}

	return eco
}

func benchRun(b *testing.B, n, tMax int, q float64) {
	d, err := dynamics.New(benchEconomy(b, n, q), tMax, dynamics.WithFiniteChecks(false))
	if err != nil {
		b.Fatal(err)
	}
	ones := make([]float64, n)
	half := make([]float64, n)
	for i := range ones {
		ones[i], half[i] = 1, 0.5
	}
	d.SetInitialConditions(ones, 1, ones, ones, half, 1)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := d.Run(); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkRun_Small runs 10 sectors for 100 periods.
func BenchmarkRun_Small(b *testing.B) { benchRun(b, 10, 100, 1) }

// BenchmarkRun_Medium runs 50 sectors for 100 periods.
func BenchmarkRun_Medium(b *testing.B) { benchRun(b, 50, 100, 1) }

// BenchmarkRun_Leontief runs 50 Leontief sectors for 100 periods.
func BenchmarkRun_Leontief(b *testing.B) { benchRun(b, 50, 100, 0) }
