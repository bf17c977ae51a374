package tools

import (
	"context"

	"github.com/hance08/fakturoid-mcp/internal/convert"
	"github.com/hance08/fakturoid-mcp/internal/envelope"
	"github.com/hance08/fakturoid-mcp/internal/model"
	"github.com/hance08/fakturoid-mcp/internal/request"
)

func subjectFields() []request.Param {
	return []request.Param{
		str("street", "Street address"),
		str("city", "City"),
		renamed(str("zip_code", "ZIP/postal code"), "zip"),
		str("country", "Country code (e.g. CZ)"),
		str("registration_no", "Company registration number (ICO)"),
		str("vat_no", "VAT number (DIC)"),
		str("email", "Email address"),
		str("phone", "Phone number"),
		str("web", "Website URL"),
		str("full_name", "Full name of the contact person"),
	}
}

var subjects = Entity[model.Subject, *model.Subject]{
	Kind:            model.KindSubject,
	Singular:        "subject",
	Label:           "subject (contact/client)",
	ListDescription: "List all subjects (contacts/clients) in Fakturoid.",
	ListParams: []request.Param{
		date("since", "Return subjects created since this date"),
		date("updated_since", "Return subjects updated since this date"),
		str("custom_id", "Filter by custom identifier"),
	},
	CreateParams: join(
		[]request.Param{required(str("name", "Company or person name"))},
		subjectFields(),
		[]request.Param{str("custom_id", "Custom identifier")},
	),
	UpdateParams: updatable(join(
		[]request.Param{str("name", "Company or person name")},
		subjectFields(),
	)...),
}

func subjectOperations() []Operation {
	ops := subjects.Operations()
	search := Operation{
		Name:        "search_subjects",
		Title:       "Search subjects",
		Description: "Full-text search for subjects (contacts/clients).",
		Entity:      subjects.plural(),
		Params:      []request.Param{required(str("query", "Search query string"))},
		ReadOnly:    true,
		Idempotent:  true,
		Handler: func(ctx context.Context, store RecordStore, args map[string]any) (string, error) {
			query, err := requiredString(args, "query")
			if err != nil {
				return "", err
			}
			var found []model.Subject
			if err := store.Search(ctx, model.KindSubject, query, &found); err != nil {
				return "", err
			}
			return envelope.Success(convert.SerializeAll(found)), nil
		},
	}
	// list, search, get, create, update, delete
	return append([]Operation{ops[0], search}, ops[1:]...)
}
