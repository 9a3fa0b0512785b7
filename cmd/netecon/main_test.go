// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netecon/store"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func symmetric(horizon int) string {
	return fmt.Sprintf(`
name: cli
horizon: %d
network:
  topology: explicit
  lambda: [[0.6, 0.2, 0.2], [0.6, 0.2, 0.2]]
production: {q: 1}
firms: {alpha: 0.1, alpha_p: 0.1, beta: 0.1, beta_p: 0.1, w: 0.1, sigma: [0.1]}
household: {omega_p: 0.2}
initial: {s0: [0.5]}
`, horizon)
}

func TestRun_SavesToStore(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	dbPath := filepath.Join(dir, "runs.db")
	cfg := writeFile(t, dir, "scenario.yaml", symmetric(12)+"store: {path: "+dbPath+"}\n")
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	require.NoError(t, run(context.Background(), logger, cfg, ""))
	require.NoError(t, run(context.Background(), logger, cfg, "second"))

	db, err := store.Open(dbPath)
	require.NoError(t, err)
	defer db.Close()
	runs, err := db.Runs()
	require.NoError(t, err)
	require.Len(t, runs, 2)
	labels := []string{runs[0].Label, runs[1].Label}
	assert.ElementsMatch(t, []string{"cli", "second"}, labels)
	assert.Equal(t, 12, runs[0].TMax)
	assert.Equal(t, 2, runs[0].N)
}

func TestRun_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	err := run(context.Background(), logger, filepath.Join(dir, "missing.yaml"), "")
	require.Error(t, err)

	cfg := writeFile(t, dir, "bad.yaml", "network: {sectors: 2, topology: torus}\n")
	require.Error(t, run(context.Background(), logger, cfg, ""))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	ok := writeFile(t, dir, "ok.yaml", symmetric(5))
	require.ErrorIs(t, run(ctx, logger, ok, ""), context.Canceled)
}
