package model

import "github.com/shopspring/decimal"

// Line is a single item of an invoice, expense or generator.
type Line struct {
	ID                   *int64           `json:"id,omitempty"`
	Name                 string           `json:"name,omitempty"`
	Quantity             *decimal.Decimal `json:"quantity,omitempty"`
	UnitName             *string          `json:"unit_name,omitempty"`
	UnitPrice            *decimal.Decimal `json:"unit_price,omitempty"`
	VatRate              *decimal.Decimal `json:"vat_rate,omitempty"`
	UnitPriceWithoutVat  *decimal.Decimal `json:"unit_price_without_vat,omitempty"`
	UnitPriceWithVat     *decimal.Decimal `json:"unit_price_with_vat,omitempty"`
	TotalPriceWithoutVat *decimal.Decimal `json:"total_price_without_vat,omitempty"`
	TotalVat             *decimal.Decimal `json:"total_vat,omitempty"`
	NativeTotalWithVat   *decimal.Decimal `json:"native_total_price_with_vat,omitempty"`
	// Destroy asks the API to delete the line with ID.
	Destroy              bool             `json:"_destroy,omitempty"`
}

// LineHolder is implemented by records that carry lines.
type LineHolder interface {
	LineItems() []Line
	SetLineItems([]Line)
}

// ReplaceLines returns next followed by a destroy marker for every line of
// previous that has an ID not reused in next. A PATCH keeps the lines it
// does not mention, so removed lines have to be named.
func ReplaceLines(previous, next []Line) []Line {
	kept := make(map[int64]bool, len(next))
	for _, line := range next {
		if line.ID != nil {
			kept[*line.ID] = true
		}
	}

	out := append(make([]Line, 0, len(next)+len(previous)), next...)
	for _, line := range previous {
		if line.ID == nil || kept[*line.ID] {
			continue
		}
		id := *line.ID
		out = append(out, Line{ID: &id, Destroy: true})
	}
	return out
}

type VatRateSummary struct {
	VatRate        *decimal.Decimal `json:"vat_rate,omitempty"`
	Base           *decimal.Decimal `json:"base,omitempty"`
	Vat            *decimal.Decimal `json:"vat,omitempty"`
	Currency       *string          `json:"currency,omitempty"`
	NativeBase     *decimal.Decimal `json:"native_base,omitempty"`
	NativeVat      *decimal.Decimal `json:"native_vat,omitempty"`
	NativeCurrency *string          `json:"native_currency,omitempty"`
}
