package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/inventario-console/internal/application/entitysync"
	"github.com/jhoicas/inventario-console/internal/application/ports"
	"github.com/jhoicas/inventario-console/internal/domain"
	"github.com/jhoicas/inventario-console/internal/interfaces/cli"
)

var assumeYes bool

var deleteCmd = &cobra.Command{
	Use:   "delete <tipo> <id>",
	Short: "Elimina un registro tras confirmación",
	Args:  cobra.ExactArgs(2),
	RunE:  runDelete,
}

func init() {
	deleteCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "no pedir confirmación")
}

func runDelete(cmd *cobra.Command, args []string) error {
	d, err := lookup(args[0])
	if err != nil {
		return err
	}

	var confirmer ports.Confirmer = cli.NewPromptConfirmer(cmd.InOrStdin(), cmd.OutOrStdout())
	if assumeYes {
		confirmer = cli.AlwaysConfirm{}
	}

	ctl := controllerFor(cmd, d, entitysync.Bindings{Confirmer: confirmer})
	err = ctl.Delete(commandContext(cmd), args[1])
	if errors.Is(err, domain.ErrDeclined) {
		fmt.Fprintln(cmd.OutOrStdout(), "Cancelado.")
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), cli.RenderList(ctl.View().Snapshot()))
	return nil
}
