package entitysync

import (
	"context"
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-console/internal/application/dto"
	"github.com/jhoicas/inventario-console/internal/domain/entity"
)

// PriceBook precio unitario por ID de producto (texto). Se reemplaza completo en cada carga.
type PriceBook struct {
	mu     sync.RWMutex
	prices map[string]decimal.Decimal
}

// NewPriceBook crea un libro vacío.
func NewPriceBook() *PriceBook {
	return &PriceBook{prices: map[string]decimal.Decimal{}}
}

// Replace sustituye todos los precios.
func (b *PriceBook) Replace(prices map[string]decimal.Decimal) {
	b.mu.Lock()
	b.prices = prices
	b.mu.Unlock()
}

// Price precio del producto; false si no existe.
func (b *PriceBook) Price(productID string) (decimal.Decimal, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	p, ok := b.prices[strings.TrimSpace(productID)]
	return p, ok
}

// Total precio x cantidad con dos decimales. De la cantidad solo cuenta el entero
// inicial ("3abc" y "3.7" valen 3); producto desconocido o cantidad sin dígitos
// iniciales cuentan como 0.
func (b *PriceBook) Total(productID, quantity string) string {
	price, _ := b.Price(productID)
	return price.Mul(leadingInteger(quantity)).StringFixed(2)
}

// leadingInteger signo opcional seguido de los dígitos iniciales del texto.
func leadingInteger(text string) decimal.Decimal {
	s := strings.TrimSpace(text)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return decimal.Zero
	}
	n, err := decimal.NewFromString(s[:end])
	if err != nil {
		return decimal.Zero
	}
	return n
}

// SaleSelectors carga los selectores de producto y comprador del formulario de ventas
// y, como efecto, reconstruye el PriceBook.
type SaleSelectors struct {
	fetcher  *Fetcher
	products *entity.Descriptor
	users    *entity.Descriptor
	book     *PriceBook

	mu   sync.RWMutex
	last dto.SaleFormOptions
}

// NewSaleSelectors construye el cargador de selectores.
func NewSaleSelectors(fetcher *Fetcher, products, users *entity.Descriptor, book *PriceBook) *SaleSelectors {
	if book == nil {
		book = NewPriceBook()
	}
	return &SaleSelectors{fetcher: fetcher, products: products, users: users, book: book}
}

// Book libro de precios asociado.
func (s *SaleSelectors) Book() *PriceBook { return s.book }

// Load obtiene productos y usuarios y arma las opciones.
func (s *SaleSelectors) Load(ctx context.Context) dto.SaleFormOptions {
	products := s.fetcher.FetchCollection(ctx, s.products.CollectionPath)
	users := s.fetcher.FetchCollection(ctx, s.users.CollectionPath)

	opts := dto.SaleFormOptions{
		Products: make([]dto.Option, 0, len(products)),
		Users:    make([]dto.Option, 0, len(users)),
	}
	prices := make(map[string]decimal.Decimal, len(products))
	for _, p := range products {
		id := s.products.IDOf(p)
		opts.Products = append(opts.Products, dto.Option{Value: id, Label: p.Text(entity.ProductName)})
		price, err := decimal.NewFromString(strings.TrimSpace(p.Text(entity.ProductPrice)))
		if err != nil {
			price = decimal.Zero
		}
		prices[id] = price
	}
	s.book.Replace(prices)

	for _, u := range users {
		opts.Users = append(opts.Users, dto.Option{
			Value: s.users.IDOf(u),
			Label: u.TextOr(entity.UserName, entity.UserLegacyName),
		})
	}

	s.mu.Lock()
	s.last = opts
	s.mu.Unlock()
	return opts
}

// Options últimas opciones cargadas.
func (s *SaleSelectors) Options() dto.SaleFormOptions {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.last
}
