package model

import "time"

type Subject struct {
	ID                           *int64     `json:"id,omitempty"`
	CustomID                     *string    `json:"custom_id,omitempty"`
	UserID                       *int64     `json:"user_id,omitempty"`
	Type                         *string    `json:"type,omitempty"`
	Name                         *string    `json:"name,omitempty"`
	FullName                     *string    `json:"full_name,omitempty"`
	Email                        *string    `json:"email,omitempty"`
	EmailCopy                    *string    `json:"email_copy,omitempty"`
	Phone                        *string    `json:"phone,omitempty"`
	Web                          *string    `json:"web,omitempty"`
	Street                       *string    `json:"street,omitempty"`
	City                         *string    `json:"city,omitempty"`
	Zip                          *string    `json:"zip,omitempty"`
	Country                      *string    `json:"country,omitempty"`
	RegistrationNo               *string    `json:"registration_no,omitempty"`
	VatNo                        *string    `json:"vat_no,omitempty"`
	LocalVatNo                   *string    `json:"local_vat_no,omitempty"`
	BankAccount                  *string    `json:"bank_account,omitempty"`
	IBAN                         *string    `json:"iban,omitempty"`
	SwiftBIC                     *string    `json:"swift_bic,omitempty"`
	VariableSymbol               *string    `json:"variable_symbol,omitempty"`
	Due                          *int64     `json:"due,omitempty"`
	Currency                     *string    `json:"currency,omitempty"`
	Language                     *string    `json:"language,omitempty"`
	PrivateNote                  *string    `json:"private_note,omitempty"`
	SettingInvoicePDFAttachments *string    `json:"setting_invoice_pdf_attachments,omitempty"`
	HTMLURL                      *string    `json:"html_url,omitempty"`
	URL                          *string    `json:"url,omitempty"`
	CreatedAt                    *time.Time `json:"created_at,omitempty"`
	UpdatedAt                    *time.Time `json:"updated_at,omitempty"`
}

func (s *Subject) Identifier() *int64 { return s.ID }
