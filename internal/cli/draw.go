package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dctopo/dctopo/pkg/errors"
	"github.com/dctopo/dctopo/pkg/render"
	"github.com/dctopo/dctopo/pkg/topo"
)

// drawOpts holds flags shared by every topology command.
type drawOpts struct {
	outputDir  string
	format     string
	suffix     string
	configPath string

	capacity      float64
	torCapacity   float64
	trunkCapacity float64
}

// addDrawFlags registers the shared drawing flags on cmd.
func addDrawFlags(cmd *cobra.Command, opts *drawOpts) {
	cmd.Flags().StringVarP(&opts.outputDir, "output-dir", "o", ".", "directory to write the diagram into")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format: pdf, svg, png, or dot (default pdf)")
	cmd.Flags().StringVar(&opts.suffix, "suffix", "", "suffix appended to the output file name")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "TOML config file (default dctopo.toml if present)")
	cmd.Flags().Float64Var(&opts.capacity, "capacity", 0, "label every arc with this capacity")
	cmd.Flags().Float64Var(&opts.torCapacity, "tor-capacity", 0, "label arcs touching a top-of-rack switch with this capacity")
	cmd.Flags().Float64Var(&opts.trunkCapacity, "trunk-capacity", 0, "label arcs between higher layers with this capacity")
}

// resolve merges config-file defaults into opts (flags win) and returns the
// topology options implied by the capacity settings.
func (o *drawOpts) resolve(cmd *cobra.Command) ([]topo.Option, error) {
	cfg, err := loadConfig(o.configPath)
	if err != nil {
		return nil, err
	}

	if !cmd.Flags().Changed("format") && cfg.Output.Format != "" {
		o.format = cfg.Output.Format
	}
	if o.format == "" {
		o.format = render.FormatPDF
	}
	if !cmd.Flags().Changed("output-dir") && cfg.Output.Dir != "" {
		o.outputDir = cfg.Output.Dir
	}
	if err := render.ValidateFormat(o.format); err != nil {
		return nil, err
	}

	uniform, uniformSet := o.capacity, cmd.Flags().Changed("capacity")
	torCap, torSet := o.torCapacity, cmd.Flags().Changed("tor-capacity")
	trunkCap, trunkSet := o.trunkCapacity, cmd.Flags().Changed("trunk-capacity")
	if !uniformSet && !torSet && !trunkSet {
		if cfg.Capacity.Uniform != nil {
			uniform, uniformSet = *cfg.Capacity.Uniform, true
		}
		if cfg.Capacity.ToR != nil {
			torCap, torSet = *cfg.Capacity.ToR, true
		}
		if cfg.Capacity.Trunk != nil {
			trunkCap, trunkSet = *cfg.Capacity.Trunk, true
		}
	}

	if uniformSet && (torSet || trunkSet) {
		return nil, errors.New(errors.ErrCodeInvalidParameter,
			"--capacity cannot be combined with --tor-capacity or --trunk-capacity")
	}

	switch {
	case uniformSet:
		return []topo.Option{topo.WithCapacityFunc(func(from, to int) (float64, bool) {
			return uniform, true
		})}, nil
	case torSet || trunkSet:
		return []topo.Option{topo.WithTopoCapacityFunc(func(from, to int, t *topo.Topology) (float64, bool) {
			tor, ok := t.Range(topo.LayerToR)
			if ok && (tor.Contains(from) || tor.Contains(to)) {
				return torCap, torSet
			}
			return trunkCap, trunkSet
		})}, nil
	default:
		return nil, nil
	}
}

// drawTopology generates the graph for t and writes it as a diagram.
func drawTopology(ctx context.Context, t *topo.Topology, opts *drawOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	logger.Debugf("generating %s graph", t.Family)
	g, err := t.GenGraph()
	if err != nil {
		return err
	}
	logger.Debugf("generated %d switches, %d arcs", g.NodeCount(), g.EdgeCount())

	if opts.suffix != "" {
		t.Descriptor += opts.suffix
	}

	spinner := newSpinner(ctx, fmt.Sprintf("Drawing %s...", t.Descriptor))
	spinner.Start()

	path, err := render.DrawTopology(t, g, opts.outputDir, opts.format)
	if err != nil {
		spinner.StopWithError(fmt.Sprintf("Drawing %s failed", t.Descriptor))
		return err
	}
	if spinner.Cancelled() {
		spinner.Stop()
		return ctx.Err()
	}
	spinner.Stop()

	printSuccess("Drew %s", t.Descriptor)
	printStats(g.NodeCount(), g.EdgeCount())
	printFile(path)
	prog.done(fmt.Sprintf("Generated %s", path))
	return nil
}
