package model

import "time"

// Account is the Fakturoid account the credentials belong to. It is read-only.
type Account struct {
	Subdomain       *string    `json:"subdomain,omitempty"`
	Plan            *string    `json:"plan,omitempty"`
	PlanPrice       *int64     `json:"plan_price,omitempty"`
	PlanPaidUsers   *int64     `json:"plan_paid_users,omitempty"`
	InvoiceEmail    *string    `json:"invoice_email,omitempty"`
	Phone           *string    `json:"phone,omitempty"`
	Web             *string    `json:"web,omitempty"`
	Name            *string    `json:"name,omitempty"`
	FullName        *string    `json:"full_name,omitempty"`
	RegistrationNo  *string    `json:"registration_no,omitempty"`
	VatNo           *string    `json:"vat_no,omitempty"`
	VatMode         *string    `json:"vat_mode,omitempty"`
	VatPriceMode    *string    `json:"vat_price_mode,omitempty"`
	Street          *string    `json:"street,omitempty"`
	City            *string    `json:"city,omitempty"`
	Zip             *string    `json:"zip,omitempty"`
	Country         *string    `json:"country,omitempty"`
	Currency        *string    `json:"currency,omitempty"`
	Unit            *string    `json:"unit_name,omitempty"`
	VatRate         *int64     `json:"vat_rate,omitempty"`
	DisplayedNote   *string    `json:"displayed_note,omitempty"`
	InvoiceLanguage *string    `json:"invoice_language,omitempty"`
	Due             *int64     `json:"due,omitempty"`
	CreatedAt       *time.Time `json:"created_at,omitempty"`
	UpdatedAt       *time.Time `json:"updated_at,omitempty"`
}

type BankAccount struct {
	ID                *int64     `json:"id,omitempty"`
	Name              *string    `json:"name,omitempty"`
	Currency          *string    `json:"currency,omitempty"`
	Number            *string    `json:"number,omitempty"`
	IBAN              *string    `json:"iban,omitempty"`
	SwiftBIC          *string    `json:"swift_bic,omitempty"`
	Pairing           *bool      `json:"pairing,omitempty"`
	ExpensePairing    *bool      `json:"expense_pairing,omitempty"`
	PaymentAdjustment *bool      `json:"payment_adjustment,omitempty"`
	Default           *bool      `json:"default,omitempty"`
	CreatedAt         *time.Time `json:"created_at,omitempty"`
	UpdatedAt         *time.Time `json:"updated_at,omitempty"`
}
