package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Generator is an invoice template, optionally issuing invoices on a schedule.
type Generator struct {
	ID               *int64           `json:"id,omitempty"`
	CustomID         *string          `json:"custom_id,omitempty"`
	Name             *string          `json:"name,omitempty"`
	Recurring        bool             `json:"recurring"`
	SubjectID        *int64           `json:"subject_id,omitempty"`
	StartDate        *Date            `json:"start_date,omitempty"`
	EndDate          *Date            `json:"end_date,omitempty"`
	MonthsPeriod     *int64           `json:"months_period,omitempty"`
	NextOccurrenceOn *Date            `json:"next_occurrence_on,omitempty"`
	Due              *int64           `json:"due,omitempty"`
	Note             *string          `json:"note,omitempty"`
	FooterNote       *string          `json:"footer_note,omitempty"`
	Tags             []string         `json:"tags,omitzero"`
	BankAccount      *string          `json:"bank_account,omitempty"`
	PaymentMethod    *string          `json:"payment_method,omitempty"`
	Currency         *string          `json:"currency,omitempty"`
	ExchangeRate     *decimal.Decimal `json:"exchange_rate,omitempty"`
	Language         *string          `json:"language,omitempty"`
	VatPriceMode     *string          `json:"vat_price_mode,omitempty"`
	Subtotal         *decimal.Decimal `json:"subtotal,omitempty"`
	Total            *decimal.Decimal `json:"total,omitempty"`
	NativeSubtotal   *decimal.Decimal `json:"native_subtotal,omitempty"`
	NativeTotal      *decimal.Decimal `json:"native_total,omitempty"`
	Lines            []Line           `json:"lines,omitzero"`
	HTMLURL          *string          `json:"html_url,omitempty"`
	URL              *string          `json:"url,omitempty"`
	SubjectURL       *string          `json:"subject_url,omitempty"`
	CreatedAt        *time.Time       `json:"created_at,omitempty"`
	UpdatedAt        *time.Time       `json:"updated_at,omitempty"`
}

func (g *Generator) Identifier() *int64 { return g.ID }

func (g *Generator) LineItems() []Line { return g.Lines }

func (g *Generator) SetLineItems(lines []Line) { g.Lines = lines }
