package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Invoice struct {
	ID                    *int64           `json:"id,omitempty"`
	CustomID              *string          `json:"custom_id,omitempty"`
	DocumentType          *string          `json:"document_type,omitempty"`
	Number                *string          `json:"number,omitempty"`
	VariableSymbol        *string          `json:"variable_symbol,omitempty"`
	SubjectID             *int64           `json:"subject_id,omitempty"`
	GeneratorID           *int64           `json:"generator_id,omitempty"`
	RelatedID             *int64           `json:"related_id,omitempty"`
	Status                *string          `json:"status,omitempty"`
	OrderNumber           *string          `json:"order_number,omitempty"`
	ClientName            *string          `json:"client_name,omitempty"`
	ClientRegistrationNo  *string          `json:"client_registration_no,omitempty"`
	ClientVatNo           *string          `json:"client_vat_no,omitempty"`
	IssuedOn              *Date            `json:"issued_on,omitempty"`
	TaxableFulfillmentDue *Date            `json:"taxable_fulfillment_due,omitempty"`
	Due                   *int64           `json:"due,omitempty"`
	DueOn                 *Date            `json:"due_on,omitempty"`
	SentAt                *time.Time       `json:"sent_at,omitempty"`
	PaidOn                *Date            `json:"paid_on,omitempty"`
	CancelledAt           *time.Time       `json:"cancelled_at,omitempty"`
	Note                  *string          `json:"note,omitempty"`
	FooterNote            *string          `json:"footer_note,omitempty"`
	PrivateNote           *string          `json:"private_note,omitempty"`
	Tags                  []string         `json:"tags,omitzero"`
	BankAccount           *string          `json:"bank_account,omitempty"`
	IBAN                  *string          `json:"iban,omitempty"`
	PaymentMethod         *string          `json:"payment_method,omitempty"`
	Currency              *string          `json:"currency,omitempty"`
	ExchangeRate          *decimal.Decimal `json:"exchange_rate,omitempty"`
	Language              *string          `json:"language,omitempty"`
	VatPriceMode          *string          `json:"vat_price_mode,omitempty"`
	Subtotal              *decimal.Decimal `json:"subtotal,omitempty"`
	Total                 *decimal.Decimal `json:"total,omitempty"`
	NativeSubtotal        *decimal.Decimal `json:"native_subtotal,omitempty"`
	NativeTotal           *decimal.Decimal `json:"native_total,omitempty"`
	RemainingAmount       *decimal.Decimal `json:"remaining_amount,omitempty"`
	RemainingNativeAmount *decimal.Decimal `json:"remaining_native_amount,omitempty"`
	Lines                 []Line           `json:"lines,omitzero"`
	VatRatesSummary       []VatRateSummary `json:"vat_rates_summary,omitempty"`
	Payments              []Payment        `json:"payments,omitempty"`
	HTMLURL               *string          `json:"html_url,omitempty"`
	PublicHTMLURL         *string          `json:"public_html_url,omitempty"`
	URL                   *string          `json:"url,omitempty"`
	PDFURL                *string          `json:"pdf_url,omitempty"`
	SubjectURL            *string          `json:"subject_url,omitempty"`
	CreatedAt             *time.Time       `json:"created_at,omitempty"`
	UpdatedAt             *time.Time       `json:"updated_at,omitempty"`
}

func (i *Invoice) Identifier() *int64 { return i.ID }

func (i *Invoice) LineItems() []Line { return i.Lines }

func (i *Invoice) SetLineItems(lines []Line) { i.Lines = lines }
