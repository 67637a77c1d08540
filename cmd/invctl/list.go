package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/inventario-console/internal/application/entitysync"
	"github.com/jhoicas/inventario-console/internal/domain/entity"
	"github.com/jhoicas/inventario-console/internal/interfaces/cli"
)

var listCmd = &cobra.Command{
	Use:   "list [users|products|sales]",
	Short: "Muestra un listado (o los tres si no se indica tipo)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	descs := svc.Registry.All()
	if len(args) == 1 {
		d, err := lookup(args[0])
		if err != nil {
			return err
		}
		descs = []*entity.Descriptor{d}
	}

	ctls := make([]*entitysync.Controller, 0, len(descs))
	for _, d := range descs {
		ctls = append(ctls, controllerFor(cmd, d, entitysync.Bindings{}))
	}
	entitysync.LoadAll(commandContext(cmd), ctls...)

	for _, ctl := range ctls {
		fmt.Fprintln(cmd.OutOrStdout(), cli.RenderList(ctl.View().Snapshot()))
	}
	return nil
}
