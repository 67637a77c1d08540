package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jhoicas/inventario-console/internal/application/entitysync"
)

var reportOutput string

var reportCmd = &cobra.Command{
	Use:   "report <tipo>",
	Short: "Exporta el listado a PDF",
	Args:  cobra.ExactArgs(1),
	RunE:  runReport,
}

func init() {
	reportCmd.Flags().StringVarP(&reportOutput, "output", "o", "", "archivo de salida (por defecto <tipo>.pdf)")
}

func runReport(cmd *cobra.Command, args []string) error {
	d, err := lookup(args[0])
	if err != nil {
		return err
	}
	ctx := commandContext(cmd)

	ctl := controllerFor(cmd, d, entitysync.Bindings{})
	ctl.Load(ctx)

	pdf, err := svc.Reports.GenerateListReport(ctx, ctl.View().Snapshot())
	if err != nil {
		return err
	}
	out := reportOutput
	if out == "" {
		out = strings.Trim(d.CollectionPath, "/") + ".pdf"
	}
	if err := os.WriteFile(out, pdf, 0o644); err != nil {
		return fmt.Errorf("escribir %s: %w", out, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Reporte guardado en %s (%d bytes)\n", out, len(pdf))
	return nil
}
