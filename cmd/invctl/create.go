package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jhoicas/inventario-console/internal/application/entitysync"
	"github.com/jhoicas/inventario-console/internal/domain/entity"
	"github.com/jhoicas/inventario-console/internal/interfaces/cli"
)

var createFields []string

var createCmd = &cobra.Command{
	Use:   "create <tipo> --set campo=valor...",
	Short: "Crea un registro y muestra el listado actualizado",
	Example: `  invctl create products --set nombre_producto=Pan --set precio=2.5 --set stock=100
  invctl create sales --set id_producto=1 --set id_usuario=7 --set cantidad=3`,
	Args: cobra.ExactArgs(1),
	RunE: runCreate,
}

func init() {
	createCmd.Flags().StringArrayVar(&createFields, "set", nil, "campo=valor (repetible)")
}

func runCreate(cmd *cobra.Command, args []string) error {
	d, err := lookup(args[0])
	if err != nil {
		return err
	}
	form := d.EmptyForm()
	for _, kv := range createFields {
		name, value, ok := strings.Cut(kv, "=")
		if !ok {
			return fmt.Errorf("--set %q: se espera campo=valor", kv)
		}
		name = strings.TrimSpace(name)
		if _, known := form[name]; !known {
			return fmt.Errorf("--set %q: campo desconocido para %s", name, d.Noun)
		}
		form[name] = strings.TrimSpace(value)
	}

	ctx := commandContext(cmd)
	if d.Kind == entity.KindSale && form[entity.SaleTotal] == "" {
		svc.Selectors.Load(ctx)
		form[entity.SaleTotal] = svc.Selectors.Book().Total(form[entity.SaleProduct], form[entity.SaleQuantity])
	}

	ctl := controllerFor(cmd, d, entitysync.Bindings{})
	if err := ctl.Create(ctx, form); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), cli.RenderList(ctl.View().Snapshot()))
	return nil
}
