package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dctopo/dctopo/pkg/errors"
	"github.com/dctopo/dctopo/pkg/topo"
)

func newFabricCmd() *cobra.Command {
	opts := &drawOpts{}
	var planes, ports int

	cmd := &cobra.Command{
		Use:   "fabric <server-pods> <edge-pods>",
		Short: "Draw a Facebook Fabric topology",
		Long: `Draw a Facebook Fabric topology with <server-pods> server pods and
<edge-pods> edge pods. Each server pod carries one top-of-rack switch per
port of its fabric switches, and every fabric switch connects into one of
the spine planes.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			serverPods, err := strconv.Atoi(args[0])
			if err != nil {
				return errors.New(errors.ErrCodeInvalidParameter, "server pod count must be an integer, got %q", args[0])
			}
			edgePods, err := strconv.Atoi(args[1])
			if err != nil {
				return errors.New(errors.ErrCodeInvalidParameter, "edge pod count must be an integer, got %q", args[1])
			}

			topoOpts, err := opts.resolve(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("planes") {
				topoOpts = append(topoOpts, topo.WithPlanes(planes))
			}
			if cmd.Flags().Changed("ports") {
				topoOpts = append(topoOpts, topo.WithPortCount(ports))
			}

			t, err := topo.NewFabric(serverPods, edgePods, topoOpts...)
			if err != nil {
				return err
			}
			return drawTopology(cmd.Context(), t, opts)
		},
	}

	addDrawFlags(cmd, opts)
	cmd.Flags().IntVar(&planes, "planes", topo.DefaultFabricPlanes, "number of spine planes")
	cmd.Flags().IntVar(&ports, "ports", topo.DefaultFabricPortCount, "ports per fabric switch")
	return cmd
}
