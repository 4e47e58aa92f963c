// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/nv4dll-git/OpenPNM/algorithms"
	"github.com/nv4dll-git/OpenPNM/builder"
	"github.com/nv4dll-git/OpenPNM/config"
	"github.com/nv4dll-git/OpenPNM/core"
	"github.com/nv4dll-git/OpenPNM/geometry"
	"github.com/nv4dll-git/OpenPNM/phase"
	"github.com/nv4dll-git/OpenPNM/physics"
	"github.com/nv4dll-git/OpenPNM/store"
)

func (a *app) newRunCmd() *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the algorithms of a simulation config",
		Long: `Builds the Cubic network, Spheres geometry, phase and standard physics
described by the config, runs every algorithm concurrently and prints the
inlet rate and effective coefficient of each. Runs are saved when the
config names a database.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(path)
			if err != nil {
				return err
			}
			if err = cfg.Validate(); err != nil {
				return err
			}
			if cfg.LogLevel != "" && !a.verbose {
				if err = a.level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
					return err
				}
			}
			outcomes, err := simulate(cmd.Context(), cfg, a.logger)
			if err != nil {
				return err
			}
			if err = report(cmd.OutOrStdout(), outcomes); err != nil {
				return err
			}
			if cfg.Database == "" {
				return nil
			}
			return save(cmd.Context(), cfg.Database, outcomes, a.logger)
		},
	}
	cmd.Flags().StringVarP(&path, "config", "c", "sim.yaml", "simulation config (YAML)")

	return cmd
}

// outcome is the result of one configured algorithm.
type outcome struct {
	kind      string
	transport *algorithms.Transport
	rate      float64
	effective float64
}

// simulate builds the shared network and phase, then runs the algorithms
// concurrently. They only read the network and phase.
func simulate(ctx context.Context, cfg config.Config, logger *zap.Logger) ([]outcome, error) {
	net, err := builder.Cubic(cfg.Network.Shape, cfg.Network.Spacing)
	if err != nil {
		return nil, err
	}
	ps, err := net.Pores(core.ModeOr)
	if err != nil {
		return nil, err
	}
	ts, err := net.Throats(core.ModeOr)
	if err != nil {
		return nil, err
	}
	geo, err := geometry.Spheres(net, ps, ts, cfg.Seed, geometry.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	var ph *phase.Phase
	switch cfg.Phase {
	case "water":
		ph, err = phase.Water(net)
	default:
		ph, err = phase.Air(net)
	}
	if err != nil {
		return nil, err
	}
	if _, err = physics.Standard(ph, []*geometry.Geometry{geo}, physics.WithLogger(logger)); err != nil {
		return nil, err
	}

	outcomes := make([]outcome, len(cfg.Algorithms))
	g, gctx := errgroup.WithContext(ctx)
	for i, ac := range cfg.Algorithms {
		g.Go(func() error {
			out, err := runOne(gctx, net, ph, ac, cfg, logger)
			if err != nil {
				return fmt.Errorf("%s: %w", ac.RunName(), err)
			}
			outcomes[i] = out
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}

	return outcomes, nil
}

func runOne(ctx context.Context, net *core.Network, ph *phase.Phase, ac config.AlgorithmConfig, cfg config.Config, logger *zap.Logger) (outcome, error) {
	alg, err := algorithms.New(ac.Kind, net, ph,
		algorithms.WithName(ac.RunName()),
		algorithms.WithSolver(cfg.Solver),
		algorithms.WithLogger(logger))
	if err != nil {
		return outcome{}, err
	}
	inlets, err := net.Pores(core.ModeOr, ac.Inlet)
	if err != nil {
		return outcome{}, err
	}
	outlets, err := net.Pores(core.ModeOr, ac.Outlet)
	if err != nil {
		return outcome{}, err
	}
	if err = alg.SetValueBC(inlets, ac.InletValue); err != nil {
		return outcome{}, err
	}
	if err = alg.SetValueBC(outlets, ac.OutletValue); err != nil {
		return outcome{}, err
	}
	if err = alg.Run(ctx); err != nil {
		return outcome{}, err
	}
	rate, err := alg.Rate(inlets)
	if err != nil {
		return outcome{}, err
	}
	dom, err := algorithms.InferDomain(net, inlets, outlets)
	if err != nil {
		return outcome{}, err
	}

	out := outcome{kind: ac.Kind, rate: rate[0]}
	switch a := alg.(type) {
	case *algorithms.FickianDiffusion:
		out.transport = a.Transport
		out.effective, err = a.CalcEffectiveDiffusivity(dom)
	case *algorithms.StokesFlow:
		out.transport = a.Transport
		out.effective, err = a.CalcEffectivePermeability(dom)
	case *algorithms.OhmicConduction:
		out.transport = a.Transport
		out.effective, err = a.CalcEffectiveConductivity(dom)
	case *algorithms.FourierConduction:
		out.transport = a.Transport
		out.effective, err = a.CalcEffectiveConductivity(dom)
	default:
		err = errors.New("unsupported algorithm type")
	}
	if err != nil {
		return outcome{}, err
	}

	return out, nil
}

func report(w io.Writer, outcomes []outcome) error {
	for _, o := range outcomes {
		if _, err := fmt.Fprintf(w, "%-24s %-20s rate=%.4e effective=%.4e\n",
			o.transport.Name(), o.transport.Quantity(), o.rate, o.effective); err != nil {
			return err
		}
	}
	return nil
}

func save(ctx context.Context, path string, outcomes []outcome, logger *zap.Logger) error {
	s, err := store.Open(path)
	if err != nil {
		return err
	}
	defer s.Close()
	for _, o := range outcomes {
		r, err := store.RunFrom(o.transport, o.rate, o.effective)
		if err != nil {
			return err
		}
		saved, err := s.SaveRun(ctx, r)
		if err != nil {
			return err
		}
		logger.Info("run saved", zap.String("algorithm", saved.Algorithm), zap.Stringer("id", saved.ID))
	}
	return nil
}
