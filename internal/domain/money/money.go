// Package money define la aritmética monetaria compartida por todos los tipos de orden.
//
// Contrato: todo valor monetario tiene exactamente dos decimales; cada campo derivado se
// redondea una sola vez (half-up, alejándose de cero) inmediatamente después de calcularse
// y nunca se vuelve a redondear. Los agregados son sumas de campos ya redondeados.
package money

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Ordenes-api/internal/domain"
)

// Places decimales de todo monto.
const Places = 2

// Amounts agrupa los tres montos derivados de una línea o de una orden completa.
type Amounts struct {
	Taxable decimal.Decimal
	Tax     decimal.Decimal
	Total   decimal.Decimal
}

// Zero devuelve montos en cero.
func Zero() Amounts {
	return Amounts{Taxable: decimal.Zero, Tax: decimal.Zero, Total: decimal.Zero}
}

// Round redondea half-up a dos decimales.
func Round(d decimal.Decimal) decimal.Decimal {
	return d.Round(Places)
}

// Line calcula los montos de una línea:
//
//	taxable = round(qty × price)
//	tax     = round(taxable × rate / 100)
//	total   = taxable + tax
func Line(quantity, unitPrice, taxRatePercent decimal.Decimal) Amounts {
	taxable := Round(quantity.Mul(unitPrice))
	tax := Round(taxable.Mul(taxRatePercent).Shift(-2))
	return Amounts{
		Taxable: taxable,
		Tax:     tax,
		Total:   taxable.Add(tax),
	}
}

// Add suma dos montos campo a campo (sin re-redondear).
func (a Amounts) Add(b Amounts) Amounts {
	return Amounts{
		Taxable: a.Taxable.Add(b.Taxable),
		Tax:     a.Tax.Add(b.Tax),
		Total:   a.Total.Add(b.Total),
	}
}

// Sum agrega una lista de montos.
func Sum(items ...Amounts) Amounts {
	total := Zero()
	for _, it := range items {
		total = total.Add(it)
	}
	return total
}

// NewQuantity interpreta una cantidad no negativa.
func NewQuantity(raw string) (decimal.Decimal, error) {
	d, err := parse("quantity", raw)
	if err != nil {
		return decimal.Zero, err
	}
	if d.IsNegative() {
		return decimal.Zero, domain.NewValidationError("quantity", "no puede ser negativa")
	}
	return d, nil
}

// NewSignedQuantity interpreta una cantidad que puede ser negativa (devoluciones, ajustes).
func NewSignedQuantity(raw string) (decimal.Decimal, error) {
	return parse("quantity", raw)
}

// NewUnitPrice interpreta un precio unitario no negativo con máximo dos decimales.
func NewUnitPrice(raw string) (decimal.Decimal, error) {
	d, err := parse("unit_price", raw)
	if err != nil {
		return decimal.Zero, err
	}
	if d.IsNegative() {
		return decimal.Zero, domain.NewValidationError("unit_price", "no puede ser negativo")
	}
	if !d.Equal(d.Truncate(Places)) {
		return decimal.Zero, domain.NewValidationError("unit_price", "admite máximo dos decimales")
	}
	return d, nil
}

// NewTaxRate interpreta una tasa de impuesto en porcentaje (no negativa).
func NewTaxRate(raw string) (decimal.Decimal, error) {
	d, err := parse("tax_rate", raw)
	if err != nil {
		return decimal.Zero, err
	}
	if d.IsNegative() {
		return decimal.Zero, domain.NewValidationError("tax_rate", "no puede ser negativa")
	}
	return d, nil
}

func parse(field, raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero, domain.NewValidationError(field, "es obligatorio")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, domain.NewValidationError(field, "debe ser numérico")
	}
	return d, nil
}
