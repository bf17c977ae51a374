package tools

import (
	"github.com/hance08/fakturoid-mcp/internal/model"
	"github.com/hance08/fakturoid-mcp/internal/request"
)

var generators = Entity[model.Generator, *model.Generator]{
	Kind:            model.KindGenerator,
	Singular:        "generator",
	Label:           "invoice generator (template)",
	ListDescription: "List invoice generators (templates).",
	ListParams: []request.Param{
		boolean("recurring", "True for recurring generators, false for simple templates"),
		integer("subject_id", "Filter by subject (client) ID"),
		date("since", "Return generators created since this date"),
	},
	CreateParams: []request.Param{
		required(str("name", "Generator name")),
		required(integer("subject_id", "Client subject ID")),
		lines(true),
		{
			Name:        "recurring",
			Kind:        request.Bool,
			Presence:    request.Always,
			Default:     false,
			Description: "Whether this is a recurring generator",
		},
		integer("due", "Number of days until due"),
		str("currency", "Currency code (e.g. CZK, EUR)"),
		str("payment_method", "Payment method (bank, cash, cod, card, paypal, custom)"),
		str("note", "Note on generated invoices"),
		tags(),
	},
	UpdateParams: join(
		updatable(str("name", "Generator name")),
		[]request.Param{integer("due", "Number of days until due")},
		updatable(
			str("currency", "Currency code (e.g. CZK, EUR)"),
			str("payment_method", "Payment method"),
			str("note", "Note on generated invoices"),
		),
		[]request.Param{lines(false)},
	),
}

func generatorOperations() []Operation {
	return generators.Operations()
}
