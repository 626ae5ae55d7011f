package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dctopo/dctopo/pkg/errors"
	"github.com/dctopo/dctopo/pkg/topo"
)

func newFatTreeCmd() *cobra.Command {
	opts := &drawOpts{}

	cmd := &cobra.Command{
		Use:   "fattree <port-count>",
		Short: "Draw a k-ary fat-tree topology",
		Long: `Draw a k-ary fat-tree topology built from identical switches with
<port-count> ports each. The port count must be positive and even; it fixes
the number of pods and the sizes of the top-of-rack, aggregation, and core
layers.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			portCount, err := strconv.Atoi(args[0])
			if err != nil {
				return errors.New(errors.ErrCodeInvalidParameter, "port count must be an integer, got %q", args[0])
			}

			topoOpts, err := opts.resolve(cmd)
			if err != nil {
				return err
			}
			t, err := topo.NewFatTree(portCount, topoOpts...)
			if err != nil {
				return err
			}
			return drawTopology(cmd.Context(), t, opts)
		},
	}

	addDrawFlags(cmd, opts)
	return cmd
}
