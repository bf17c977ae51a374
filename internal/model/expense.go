package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Expense struct {
	ID                     *int64           `json:"id,omitempty"`
	CustomID               *string          `json:"custom_id,omitempty"`
	Number                 *string          `json:"number,omitempty"`
	OriginalNumber         *string          `json:"original_number,omitempty"`
	VariableSymbol         *string          `json:"variable_symbol,omitempty"`
	SupplierName           *string          `json:"supplier_name,omitempty"`
	SupplierRegistrationNo *string          `json:"supplier_registration_no,omitempty"`
	SupplierVatNo          *string          `json:"supplier_vat_no,omitempty"`
	SubjectID              *int64           `json:"subject_id,omitempty"`
	Status                 *string          `json:"status,omitempty"`
	DocumentType           *string          `json:"document_type,omitempty"`
	IssuedOn               *Date            `json:"issued_on,omitempty"`
	TaxableFulfillmentDue  *Date            `json:"taxable_fulfillment_due,omitempty"`
	ReceivedOn             *Date            `json:"received_on,omitempty"`
	DueOn                  *Date            `json:"due_on,omitempty"`
	PaidOn                 *Date            `json:"paid_on,omitempty"`
	Description            *string          `json:"description,omitempty"`
	PrivateNote            *string          `json:"private_note,omitempty"`
	Tags                   []string         `json:"tags,omitzero"`
	BankAccount            *string          `json:"bank_account,omitempty"`
	IBAN                   *string          `json:"iban,omitempty"`
	PaymentMethod          *string          `json:"payment_method,omitempty"`
	Currency               *string          `json:"currency,omitempty"`
	ExchangeRate           *decimal.Decimal `json:"exchange_rate,omitempty"`
	VatPriceMode           *string          `json:"vat_price_mode,omitempty"`
	TaxDeductible          *bool            `json:"tax_deductible,omitempty"`
	Subtotal               *decimal.Decimal `json:"subtotal,omitempty"`
	Total                  *decimal.Decimal `json:"total,omitempty"`
	NativeSubtotal         *decimal.Decimal `json:"native_subtotal,omitempty"`
	NativeTotal            *decimal.Decimal `json:"native_total,omitempty"`
	Lines                  []Line           `json:"lines,omitzero"`
	VatRatesSummary        []VatRateSummary `json:"vat_rates_summary,omitempty"`
	Payments               []Payment        `json:"payments,omitempty"`
	LockedAt               *time.Time       `json:"locked_at,omitempty"`
	HTMLURL                *string          `json:"html_url,omitempty"`
	URL                    *string          `json:"url,omitempty"`
	SubjectURL             *string          `json:"subject_url,omitempty"`
	CreatedAt              *time.Time       `json:"created_at,omitempty"`
	UpdatedAt              *time.Time       `json:"updated_at,omitempty"`
}

func (e *Expense) Identifier() *int64 { return e.ID }

func (e *Expense) LineItems() []Line { return e.Lines }

func (e *Expense) SetLineItems(lines []Line) { e.Lines = lines }
