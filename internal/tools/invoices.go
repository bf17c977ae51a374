package tools

import (
	"context"

	"github.com/hance08/fakturoid-mcp/internal/envelope"
	"github.com/hance08/fakturoid-mcp/internal/model"
	"github.com/hance08/fakturoid-mcp/internal/request"
)

var invoices = Entity[model.Invoice, *model.Invoice]{
	Kind:     model.KindInvoice,
	Singular: "invoice",
	ListParams: []request.Param{
		integer("subject_id", "Filter by subject (client) ID"),
		date("since", "Return invoices created since this date"),
		date("updated_since", "Return invoices updated since this date"),
		str("number", "Filter by invoice number"),
		str("status", "Filter by status (open, sent, overdue, paid, cancelled)"),
		str("custom_id", "Filter by custom identifier"),
		{
			Name:        "proforma",
			Field:       "document_type",
			Kind:        request.Bool,
			Presence:    request.OmitAbsent,
			Description: "True for proforma invoices, false for regular",
			Map:         documentType,
		},
	},
	CreateParams: []request.Param{
		required(integer("subject_id", "Client subject ID")),
		lines(true),
		integer("due", "Number of days until due"),
		date("issued_on", "Issue date"),
		date("taxable_fulfillment_due", "Taxable fulfillment date"),
		str("currency", "Currency code (e.g. CZK, EUR)"),
		str("payment_method", "Payment method (bank, cash, cod, card, paypal, custom)"),
		str("note", "Note on the invoice"),
		{
			Name:        "proforma",
			Field:       "document_type",
			Kind:        request.Bool,
			Presence:    request.OmitDefault,
			Default:     false,
			Description: "Whether this is a proforma invoice",
			Map:         documentType,
		},
		str("custom_id", "Custom identifier"),
		str("order_number", "Order number"),
		tags(),
	},
	UpdateParams: join(
		[]request.Param{integer("due", "Number of days until due")},
		updatable(
			str("currency", "Currency code (e.g. CZK, EUR)"),
			str("payment_method", "Payment method"),
			str("note", "Note on the invoice"),
			str("custom_id", "Custom identifier"),
			str("order_number", "Order number"),
		),
		[]request.Param{lines(false)},
	),
}

var invoiceDocument = document{
	kind:     model.KindInvoice,
	singular: "invoice",
	events: "mark_as_sent, deliver, pay, pay_proforma, pay_partial_proforma, " +
		"remove_payment, deliver_reminder, cancel, undo_cancel",
	extras: []request.Param{
		date("paid_on", "Payment date, required for the pay event"),
		{Name: "paid_amount", Kind: request.Number, Presence: request.OmitAbsent, Description: "Payment amount, required for the pay event"},
	},
	requires: map[string][]string{"pay": {"paid_on", "paid_amount"}},
	payment: append(paymentParams(), request.Param{
		Name:        "mark_document_as_paid",
		Kind:        request.Bool,
		Presence:    request.OmitDefault,
		Default:     true,
		Description: "Whether to mark the invoice as fully paid",
	}),
}

var messageParams = []request.Param{
	required(str("email", "Recipient email address")),
	renamed(str("email_subject", "Custom email subject line"), "subject"),
	renamed(str("email_body", "Custom email body text"), "message"),
}

func sendInvoiceMessage() Operation {
	return Operation{
		Name:        "send_invoice_message",
		Title:       "Send invoice",
		Description: "Send an invoice via email.",
		Entity:      string(model.KindInvoice),
		Params:      join([]request.Param{idParam("invoice_id", "The invoice ID to send")}, messageParams),
		Handler: func(ctx context.Context, store RecordStore, args map[string]any) (string, error) {
			id, err := identifier(args, "invoice_id")
			if err != nil {
				return "", err
			}
			values, err := request.Build(messageParams, args)
			if err != nil {
				return "", err
			}
			message := &model.Message{}
			if err := request.Apply(message, values); err != nil {
				return "", err
			}
			if err := store.Save(ctx, model.KindMessage, message, model.Scope{Kind: model.KindInvoice, ID: id}); err != nil {
				return "", err
			}
			return envelope.Confirm("invoice_id", id, "email", message.Email), nil
		},
	}
}

func invoiceOperations() []Operation {
	return append(invoices.Operations(),
		invoiceDocument.fireEvent(),
		invoiceDocument.createPayment(),
		invoiceDocument.deletePayment(),
		sendInvoiceMessage(),
	)
}
