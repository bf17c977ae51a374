package tools

import (
	"github.com/hance08/fakturoid-mcp/internal/model"
	"github.com/hance08/fakturoid-mcp/internal/request"
)

var expenses = Entity[model.Expense, *model.Expense]{
	Kind:     model.KindExpense,
	Singular: "expense",
	ListParams: []request.Param{
		integer("subject_id", "Filter by subject (supplier) ID"),
		date("since", "Return expenses created since this date"),
		date("updated_since", "Return expenses updated since this date"),
		str("number", "Filter by expense number"),
		str("status", "Filter by status (open, overdue, paid)"),
		str("custom_id", "Filter by custom identifier"),
		str("variable_symbol", "Filter by variable symbol"),
	},
	CreateParams: []request.Param{
		required(integer("subject_id", "Supplier subject ID")),
		lines(true),
		date("issued_on", "Issue date"),
		date("taxable_fulfillment_due", "Taxable fulfillment date"),
		date("due_on", "Due date"),
		str("currency", "Currency code (e.g. CZK, EUR)"),
		str("payment_method", "Payment method (bank, cash, cod, card, paypal, custom)"),
		renamed(str("note", "Note on the expense"), "private_note"),
		str("variable_symbol", "Variable symbol"),
		str("custom_id", "Custom identifier"),
		tags(),
	},
	UpdateParams: join(
		updatable(
			date("due_on", "Due date"),
			str("currency", "Currency code (e.g. CZK, EUR)"),
			str("payment_method", "Payment method"),
			renamed(str("note", "Note on the expense"), "private_note"),
			str("variable_symbol", "Variable symbol"),
			str("custom_id", "Custom identifier"),
		),
		[]request.Param{lines(false)},
	),
}

var expenseDocument = document{
	kind:     model.KindExpense,
	singular: "expense",
	events:   "remove_payment, deliver, pay, lock, unlock",
	payment:  paymentParams(),
}

func expenseOperations() []Operation {
	return append(expenses.Operations(),
		expenseDocument.fireEvent(),
		expenseDocument.createPayment(),
		expenseDocument.deletePayment(),
	)
}
