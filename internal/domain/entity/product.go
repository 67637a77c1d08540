package entity

import (
	"strings"
	"time"
)

// Campos de producto.
const (
	ProductID          = "id_producto"
	ProductName        = "nombre_producto"
	ProductDescription = "descripcion"
	ProductPrice       = "precio"
	ProductStock       = "stock"
	ProductCategory    = "categoria"
	ProductImage       = "imagen"
)

// NewProductDescriptor descriptor de productos. El precio viaja como texto decimal
// ("2.50") porque el backend lo guarda como string; el stock como entero.
func NewProductDescriptor() *Descriptor {
	return &Descriptor{
		Kind:           KindProduct,
		Title:          "Productos",
		Noun:           "producto",
		CollectionPath: "/products",
		ResourcePath:   "/product",
		IDField:        ProductID,
		Placeholder:    "No hay productos registrados.",
		LoadingText:    "Cargando productos...",
		CreatedMessage: "Producto creado correctamente!",
		CreateFailed:   "Error al crear producto",
		Fields: []Field{
			{Name: ProductName, Label: "Nombre", Input: "text", Required: true},
			{Name: ProductDescription, Label: "Descripción", Input: "textarea"},
			{Name: ProductPrice, Label: "Precio", Input: "number", Step: "0.01", Required: true},
			{Name: ProductStock, Label: "Stock", Input: "number", Step: "1", Required: true},
			{Name: ProductCategory, Label: "Categoría", Input: "text"},
			{Name: ProductImage, Label: "Imagen (URL)", Input: "text"},
		},
		summarize: summarizeProduct,
		coerce:    coerceProduct,
	}
}

func summarizeProduct(r Record) Summary {
	return Summary{
		Headline: "ID: " + orNA(r.Text(ProductID)) + " - " + r.Text(ProductName),
		Details: []string{
			"Categoría: " + r.Text(ProductCategory),
			"Precio: $" + r.Text(ProductPrice) + " | Stock: " + r.Text(ProductStock),
		},
	}
}

func coerceProduct(form FormValues, _ time.Time) (Payload, error) {
	price, err := FixedPoint(ProductPrice, form[ProductPrice])
	if err != nil {
		return nil, err
	}
	stock, err := Integer(ProductStock, form[ProductStock])
	if err != nil {
		return nil, err
	}
	p := Payload{
		ProductName:        strings.TrimSpace(form[ProductName]),
		ProductDescription: strings.TrimSpace(form[ProductDescription]),
		ProductPrice:       price,
		ProductStock:       stock,
		ProductCategory:    strings.TrimSpace(form[ProductCategory]),
	}
	if img := strings.TrimSpace(form[ProductImage]); img != "" {
		p[ProductImage] = img
	}
	return p, nil
}
