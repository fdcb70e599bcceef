// Package order contiene el colector de líneas de una orden aún no confirmada (borrador).
//
// Un Draft pertenece a quien lo crea (un handler HTTP, un controlador de UI); no es seguro
// para uso concurrente y nunca se comparte entre peticiones.
package order

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Ordenes-api/internal/domain"
	"github.com/jhoicas/Ordenes-api/internal/domain/entity"
	"github.com/jhoicas/Ordenes-api/internal/domain/money"
)

// Draft acumula las líneas de una orden en memoria y mantiene sus totales al día.
type Draft struct {
	Number       string // vacío = se asigna al confirmar
	Kind         string
	Date         time.Time
	PartyID      string
	PartyName    string // tercero registrado o cliente de mostrador sin registro
	PartyPhone   string
	PartyAddress string

	lines  []entity.OrderLine
	totals money.Amounts
}

// NewDraft crea un borrador vacío del tipo indicado.
func NewDraft(kind string, date time.Time) (*Draft, error) {
	if !entity.ValidOrderKind(kind) {
		return nil, domain.NewValidationError("kind", "tipo de orden desconocido")
	}
	if date.IsZero() {
		date = time.Now()
	}
	return &Draft{Kind: kind, Date: date, totals: money.Zero()}, nil
}

// Add agrega una línea libre (sin producto) y recalcula los totales.
func (d *Draft) Add(description, quantity, unitPrice, taxRate string) (entity.OrderLine, error) {
	return d.AddProduct("", description, quantity, unitPrice, taxRate)
}

// AddProduct agrega una línea que referencia un producto del catálogo.
func (d *Draft) AddProduct(productID, description, quantity, unitPrice, taxRate string) (entity.OrderLine, error) {
	desc := strings.TrimSpace(description)
	if desc == "" {
		return entity.OrderLine{}, domain.NewValidationError("description", "es obligatoria")
	}
	line, err := d.buildLine(quantity, unitPrice, taxRate)
	if err != nil {
		return entity.OrderLine{}, err
	}
	line.ProductID = strings.TrimSpace(productID)
	line.Description = desc
	d.lines = append(d.lines, line)
	d.recompute()
	return line, nil
}

// Update reemplaza cantidad, precio y tasa de la línea index; los derivados se recalculan.
func (d *Draft) Update(index int, quantity, unitPrice, taxRate string) (entity.OrderLine, error) {
	if index < 0 || index >= len(d.lines) {
		return entity.OrderLine{}, domain.ErrIndexOutOfRange
	}
	line, err := d.buildLine(quantity, unitPrice, taxRate)
	if err != nil {
		return entity.OrderLine{}, err
	}
	line.ProductID = d.lines[index].ProductID
	line.Description = d.lines[index].Description
	d.lines[index] = line
	d.recompute()
	return line, nil
}

// Remove elimina la línea index y recalcula los totales.
func (d *Draft) Remove(index int) error {
	if index < 0 || index >= len(d.lines) {
		return domain.ErrIndexOutOfRange
	}
	d.lines = append(d.lines[:index], d.lines[index+1:]...)
	d.recompute()
	return nil
}

// Totals devuelve los totales agregados (sin efectos secundarios).
func (d *Draft) Totals() money.Amounts {
	return d.totals
}

// Len cantidad de líneas.
func (d *Draft) Len() int { return len(d.lines) }

// Lines devuelve una copia de las líneas en orden de captura.
func (d *Draft) Lines() []entity.OrderLine {
	out := make([]entity.OrderLine, len(d.lines))
	copy(out, d.lines)
	return out
}

// Snapshot devuelve una copia de las líneas (con su posición) y los totales calculados a partir
// de exactamente esas líneas. Es lo que se persiste al confirmar.
func (d *Draft) Snapshot() ([]entity.OrderLine, money.Amounts) {
	lines := d.Lines()
	amounts := make([]money.Amounts, len(lines))
	for i := range lines {
		lines[i].Position = i + 1
		amounts[i] = lineAmounts(lines[i])
	}
	return lines, money.Sum(amounts...)
}

// Validate verifica que el borrador pueda confirmarse: mínimo de líneas y tercero si el tipo lo exige.
func (d *Draft) Validate(minLines int) error {
	if !entity.ValidOrderKind(d.Kind) {
		return domain.NewValidationError("kind", "tipo de orden desconocido")
	}
	if len(d.lines) < minLines {
		return domain.NewValidationError("items", "la orden no tiene suficientes líneas")
	}
	if entity.RequiresParty(d.Kind) && strings.TrimSpace(d.PartyID) == "" {
		return domain.NewValidationError("party_id", "es obligatorio para este tipo de orden")
	}
	if d.Number != "" && strings.TrimSpace(d.Number) != d.Number {
		return domain.NewValidationError("number", "no admite espacios al inicio o al final")
	}
	for _, l := range d.lines {
		if entity.StockSign(d.Kind) != 0 && l.ProductID == "" {
			return domain.NewValidationError("product_id", "cada línea debe referenciar un producto")
		}
	}
	return nil
}

func (d *Draft) buildLine(quantity, unitPrice, taxRate string) (entity.OrderLine, error) {
	var (
		qty decimal.Decimal
		err error
	)
	if entity.AllowsNegativeQuantity(d.Kind) {
		qty, err = money.NewSignedQuantity(quantity)
	} else {
		qty, err = money.NewQuantity(quantity)
	}
	if err != nil {
		return entity.OrderLine{}, err
	}
	price, err := money.NewUnitPrice(unitPrice)
	if err != nil {
		return entity.OrderLine{}, err
	}
	rate, err := money.NewTaxRate(taxRate)
	if err != nil {
		return entity.OrderLine{}, err
	}
	a := money.Line(qty, price, rate)
	return entity.OrderLine{
		Quantity:     qty,
		UnitPrice:    price,
		TaxRate:      rate,
		TaxableValue: a.Taxable,
		TaxAmount:    a.Tax,
		LineTotal:    a.Total,
	}, nil
}

func (d *Draft) recompute() {
	total := money.Zero()
	for _, l := range d.lines {
		total = total.Add(lineAmounts(l))
	}
	d.totals = total
}

func lineAmounts(l entity.OrderLine) money.Amounts {
	return money.Amounts{Taxable: l.TaxableValue, Tax: l.TaxAmount, Total: l.LineTotal}
}
