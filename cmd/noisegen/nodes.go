package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gordonklaus/colornoise"
)

func (a *app) nodesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "nodes [package]",
		Short: "List the noise nodes of a package",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pkg := colornoise.NodePkg
			if len(args) > 0 {
				pkg = args[0]
			}
			nodes, err := colornoise.LoadCatalog(".", pkg)
			if err != nil {
				return err
			}
			a.log.Debug("loaded catalog", zap.String("package", pkg), zap.Int("nodes", len(nodes)))
			for _, n := range nodes {
				fmt.Fprintf(cmd.OutOrStdout(), "%s(%s) %s\n", n.Name, portNames(n.InPorts), portNames(n.OutPorts))
			}
			return nil
		},
	}
}

func portNames(ports []*colornoise.Port) string {
	names := make([]string, len(ports))
	for i, p := range ports {
		names[i] = p.Name
		if names[i] == "" {
			names[i] = "_"
		}
	}
	return strings.Join(names, ", ")
}
