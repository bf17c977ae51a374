package model

// Kind names a remote collection. The value doubles as its URL path segment.
type Kind string

const (
	KindAccount     Kind = "account"
	KindBankAccount Kind = "bank_accounts"
	KindSubject     Kind = "subjects"
	KindInvoice     Kind = "invoices"
	KindExpense     Kind = "expenses"
	KindGenerator   Kind = "generators"
	KindPayment     Kind = "payments"
	KindMessage     Kind = "message"
)

// Scope places a sub-resource under its parent record, e.g. a payment under an invoice.
type Scope struct {
	Kind Kind
	ID   int64
}

// Identified is implemented by records that carry a remote identifier.
type Identified interface {
	Identifier() *int64
}
