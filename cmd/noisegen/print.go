package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gordonklaus/colornoise/dsp"
	"github.com/gordonklaus/colornoise/internal/config"
)

// sampler returns a function producing samples of the configured color.
func (a *app) sampler(g config.GeneratorConfig) (func() float32, error) {
	switch g.Color {
	case "white":
		r := dsp.NewRand(g.Seed)
		return func() float32 { return r.White(g.Scale) }, nil
	case "pink":
		return dsp.NewRand(g.Seed).Pink, nil
	case "brown":
		return dsp.NewRand(g.Seed).Brown, nil
	case "voss":
		seed := int64(g.Seed)
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		c, err := dsp.NewCounter(rand.New(rand.NewSource(seed)), g.Range)
		if err != nil {
			return nil, err
		}
		return func() float32 { return float32(c.Next()) }, nil
	case "table":
		start := time.Now()
		t := dsp.PinkTable()
		a.log.Debug("pink table ready", zap.Duration("elapsed", time.Since(start)))
		cursor := g.Seed
		return func() float32 { return t.Next(&cursor) }, nil
	}
	return nil, config.Error.New("unknown color %q", g.Color)
}

func (a *app) samples() ([]float32, error) {
	g := a.cfg.Generator
	next, err := a.sampler(g)
	if err != nil {
		return nil, err
	}
	a.log.Info("generating", zap.String("color", g.Color), zap.Int("count", g.Count))
	s := make([]float32, g.Count)
	for i := range s {
		s[i] = next()
	}
	return s, nil
}

func (a *app) printCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "print",
		Short: "Print one sample per line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.samples()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, v := range s {
				fmt.Fprintln(out, v)
			}
			return nil
		},
	}
}

func (a *app) fingerprintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fingerprint",
		Short: "Print a hash of the samples, to compare streams across runs and platforms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.samples()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%016x\n", dsp.Fingerprint(s))
			return nil
		},
	}
}
