package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"github.com/nv4dll-git/OpenPNM/config"
	"github.com/nv4dll-git/OpenPNM/store"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())

	return out.String(), err
}

func TestRunCommand(t *testing.T) {
	dir := t.TempDir()
	db := filepath.Join(dir, "runs.db")
	cfgPath := filepath.Join(dir, "sim.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`
network:
  shape: [1, 6, 6]
  spacing: 1.0e-4
phase: air
seed: 3
algorithms:
  - kind: fickian_diffusion
    inlet: left
    outlet: right
    inlet_value: 1
  - kind: stokes_flow
    inlet: left
    outlet: right
    inlet_value: 101425
    outlet_value: 101325
log_level: warn
database: `+db+`
`), 0o600))

	out, err := execute(t, "run", "--config", cfgPath)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2, out)
	require.True(t, strings.HasPrefix(lines[0], "fickian_diffusion"), lines[0])
	require.Contains(t, lines[0], "pore.concentration")
	require.True(t, strings.HasPrefix(lines[1], "stokes_flow"), lines[1])
	require.Contains(t, lines[1], "rate=")
	require.NotContains(t, out, "rate=-")

	s, err := store.Open(db)
	require.NoError(t, err)
	defer s.Close()
	runs, err := s.ListRuns(context.Background())
	require.NoError(t, err)
	require.Len(t, runs, 2)
	for _, r := range runs {
		require.Greater(t, r.Rate, 0.0)
		require.Greater(t, r.Effective, 0.0)
		require.Equal(t, 36, r.Pores)
	}
}

func TestRunCommand_InvalidConfig(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "sim.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("phase: mercury\n"), 0o600))
	_, err := execute(t, "run", "--config", cfgPath)
	require.ErrorIs(t, err, config.ErrInvalid)

	_, err = execute(t, "run", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestSimulate_AllKinds(t *testing.T) {
	cfg := config.Default()
	cfg.Phase = "water"
	cfg.Network.Shape = [3]int{3, 3, 3}
	cfg.Algorithms = nil
	for _, kind := range config.Kinds {
		cfg.Algorithms = append(cfg.Algorithms, config.AlgorithmConfig{
			Kind: kind, Inlet: "top", Outlet: "bottom", InletValue: 2, OutletValue: 1,
		})
	}
	require.NoError(t, cfg.Validate())

	outcomes, err := simulate(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)
	require.Len(t, outcomes, len(config.Kinds))
	for i, o := range outcomes {
		require.Equal(t, config.Kinds[i], o.kind)
		require.Greater(t, o.rate, 0.0, o.kind)
		require.Greater(t, o.effective, 0.0, o.kind)
	}

	cancelled, cancel := context.WithCancel(context.Background())
	cancel()
	cfg.Solver.Type = "cg"
	_, err = simulate(cancelled, cfg, zap.NewNop())
	require.ErrorIs(t, err, context.Canceled)
}

func TestBumpCommand(t *testing.T) {
	file := filepath.Join(t.TempDir(), "VERSION")
	require.NoError(t, os.WriteFile(file, []byte("1.4.2\n"), 0o600))

	out, err := execute(t, "bump", "--message", "solver presets #minor", "--file", file)
	require.NoError(t, err)
	require.Equal(t, "1.5.0\n", out)
	data, err := os.ReadFile(file)
	require.NoError(t, err)
	require.Equal(t, "1.5.0\n", string(data))

	out, err = execute(t, "bump", "--message", "docs only", "--file", file)
	require.NoError(t, err)
	require.Contains(t, out, "nothing to do")

	out, err = execute(t, "bump", "-m", "#major", "-f", file, "--dry-run")
	require.NoError(t, err)
	require.Equal(t, "2.0.0\n", out)
	data, _ = os.ReadFile(file)
	require.Equal(t, "1.5.0\n", string(data), "dry run leaves the file alone")
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	require.Equal(t, version+"\n", out)
}
