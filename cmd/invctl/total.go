package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	totalProduct  string
	totalQuantity string
)

var totalCmd = &cobra.Command{
	Use:   "total",
	Short: "Calcula el total de una venta (precio x cantidad)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		svc.Selectors.Load(commandContext(cmd))
		book := svc.Selectors.Book()
		if _, ok := book.Price(totalProduct); !ok {
			return fmt.Errorf("producto %q no encontrado", totalProduct)
		}
		fmt.Fprintln(cmd.OutOrStdout(), book.Total(totalProduct, totalQuantity))
		return nil
	},
}

func init() {
	totalCmd.Flags().StringVarP(&totalProduct, "product", "p", "", "ID del producto")
	totalCmd.Flags().StringVarP(&totalQuantity, "quantity", "q", "1", "cantidad")
	_ = totalCmd.MarkFlagRequired("product")
}
