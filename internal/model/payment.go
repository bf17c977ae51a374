package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment is recorded against an invoice or an expense; the parent decides which.
type Payment struct {
	ID                 *int64           `json:"id,omitempty"`
	PaidOn             *Date            `json:"paid_on,omitempty"`
	Currency           *string          `json:"currency,omitempty"`
	Amount             *decimal.Decimal `json:"amount,omitempty"`
	NativeAmount       *decimal.Decimal `json:"native_amount,omitempty"`
	MarkDocumentAsPaid *bool            `json:"mark_document_as_paid,omitempty"`
	VariableSymbol     *string          `json:"variable_symbol,omitempty"`
	BankAccountID      *int64           `json:"bank_account_id,omitempty"`
	TaxDocumentID      *int64           `json:"tax_document_id,omitempty"`
	CreatedAt          *time.Time       `json:"created_at,omitempty"`
	UpdatedAt          *time.Time       `json:"updated_at,omitempty"`
}

func (p *Payment) Identifier() *int64 { return p.ID }

// Message is an e-mail delivery of an invoice. It has no identity of its own.
type Message struct {
	Email     string  `json:"email"`
	EmailCopy *string `json:"email_copy,omitempty"`
	Subject   *string `json:"subject,omitempty"`
	Message   *string `json:"message,omitempty"`
}

func (m *Message) Identifier() *int64 { return nil }
