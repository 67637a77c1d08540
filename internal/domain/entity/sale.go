package entity

import (
	"time"
)

// Campos de venta.
const (
	SaleID       = "id_venta"
	SaleProduct  = "id_producto"
	SaleUser     = "id_usuario"
	SaleQuantity = "cantidad"
	SaleTotal    = "total"
	SaleDate     = "fecha"
)

// NewSaleDescriptor descriptor de ventas. El total llega calculado por el cliente
// (precio x cantidad) y se envía tal cual; la API no lo recalcula.
func NewSaleDescriptor() *Descriptor {
	return &Descriptor{
		Kind:           KindSale,
		Title:          "Ventas",
		Noun:           "venta",
		CollectionPath: "/sales",
		ResourcePath:   "/sale",
		IDField:        SaleID,
		Placeholder:    "No hay ventas registradas.",
		LoadingText:    "Cargando ventas...",
		CreatedMessage: "Venta registrada correctamente!",
		CreateFailed:   "Error al generar venta",
		Fields: []Field{
			{Name: SaleProduct, Label: "Producto", Input: "select", Required: true},
			{Name: SaleUser, Label: "Comprador", Input: "select", Required: true},
			{Name: SaleQuantity, Label: "Cantidad", Input: "number", Step: "1", Required: true},
			{Name: SaleDate, Label: "Fecha", Input: "datetime-local"},
			{Name: SaleTotal, Label: "Total", Input: "text", ReadOnly: true},
		},
		summarize: summarizeSale,
		coerce:    coerceSale,
	}
}

func summarizeSale(r Record) Summary {
	return Summary{
		Headline: "Venta #" + orNA(r.Text(SaleID)) + " - Producto: " + r.Text(SaleProduct) + " / Usuario: " + r.Text(SaleUser),
		Details: []string{
			"Cantidad: " + r.Text(SaleQuantity) + " | Total: $" + r.Text(SaleTotal) + " | Fecha: " + saleDate(r.Text(SaleDate)),
		},
	}
}

func saleDate(raw string) string {
	if raw == "" {
		return "Fecha N/A"
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("02/01/2006")
		}
	}
	return raw
}

func coerceSale(form FormValues, now time.Time) (Payload, error) {
	productID, err := Integer(SaleProduct, form[SaleProduct])
	if err != nil {
		return nil, err
	}
	userID, err := Integer(SaleUser, form[SaleUser])
	if err != nil {
		return nil, err
	}
	qty, err := Integer(SaleQuantity, form[SaleQuantity])
	if err != nil {
		return nil, err
	}
	total, err := FixedPoint(SaleTotal, form[SaleTotal])
	if err != nil {
		return nil, err
	}
	date, err := Timestamp(SaleDate, form[SaleDate], now)
	if err != nil {
		return nil, err
	}
	return Payload{
		SaleProduct:  productID,
		SaleUser:     userID,
		SaleQuantity: qty,
		SaleTotal:    total,
		SaleDate:     date,
	}, nil
}
