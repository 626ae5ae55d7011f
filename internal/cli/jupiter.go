package cli

import (
	"github.com/spf13/cobra"

	"github.com/dctopo/dctopo/pkg/topo"
)

func newJupiterCmd() *cobra.Command {
	opts := &drawOpts{}
	var spineBlocks, aggBlocks int

	cmd := &cobra.Command{
		Use:   "jupiter",
		Short: "Draw a switch-level Google Jupiter topology",
		Long: `Draw a Google Jupiter topology at switch granularity: every switch
inside each spine block, middle block, and aggregation block appears as its
own node. Spine blocks must be at least as numerous as aggregation blocks.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			topoOpts, err := opts.resolve(cmd)
			if err != nil {
				return err
			}
			t, err := topo.NewJupiter(spineBlocks, aggBlocks, topoOpts...)
			if err != nil {
				return err
			}
			return drawTopology(cmd.Context(), t, opts)
		},
	}

	addDrawFlags(cmd, opts)
	cmd.Flags().IntVar(&spineBlocks, "spine-blocks", topo.DefaultJupiterSpineBlocks, "number of spine blocks")
	cmd.Flags().IntVar(&aggBlocks, "agg-blocks", topo.DefaultJupiterAggBlocks, "number of aggregation blocks")
	return cmd
}

func newJupiterBlockCmd() *cobra.Command {
	opts := &drawOpts{}
	var spineBlocks, aggBlocks int

	cmd := &cobra.Command{
		Use:   "jupiterblock",
		Short: "Draw a block-level Google Jupiter topology",
		Long: `Draw a Google Jupiter topology at block granularity: each spine block
and middle block collapses to a single node, which keeps large instances
drawable. Top-of-rack switches stay individual.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			topoOpts, err := opts.resolve(cmd)
			if err != nil {
				return err
			}
			t, err := topo.NewJupiterBlock(spineBlocks, aggBlocks, topoOpts...)
			if err != nil {
				return err
			}
			return drawTopology(cmd.Context(), t, opts)
		},
	}

	addDrawFlags(cmd, opts)
	cmd.Flags().IntVar(&spineBlocks, "spine-blocks", topo.DefaultJupiterSpineBlocks, "number of spine blocks")
	cmd.Flags().IntVar(&aggBlocks, "agg-blocks", topo.DefaultJupiterAggBlocks, "number of aggregation blocks")
	return cmd
}
