package tools

import (
	"context"
	"fmt"

	"github.com/hance08/fakturoid-mcp/internal/convert"
	"github.com/hance08/fakturoid-mcp/internal/envelope"
	"github.com/hance08/fakturoid-mcp/internal/model"
	"github.com/hance08/fakturoid-mcp/internal/request"
)

// Entity derives the five CRUD operations for one record kind. PT is the
// pointer type of the record so that new records can be allocated generically.
type Entity[T any, PT interface {
	*T
	model.Identified
}] struct {
	Kind model.Kind
	// Singular names the record in tool names and identifier arguments, e.g. "invoice".
	Singular string
	// Label is used in descriptions, e.g. "subject (contact/client)".
	Label string

	ListDescription string
	ListParams      []request.Param
	CreateParams    []request.Param
	UpdateParams    []request.Param
}

func (e Entity[T, PT]) plural() string { return string(e.Kind) }

func (e Entity[T, PT]) label() string {
	if e.Label != "" {
		return e.Label
	}
	return e.Singular
}

func (e Entity[T, PT]) idName() string { return e.Singular + "_id" }

func (e Entity[T, PT]) idParam() request.Param {
	return idParam(e.idName(), fmt.Sprintf("ID of the %s", e.Singular))
}

// Operations returns list, get, create, update and delete in that order.
func (e Entity[T, PT]) Operations() []Operation {
	return []Operation{e.List(), e.Get(), e.Create(), e.Update(), e.Delete()}
}

func (e Entity[T, PT]) List() Operation {
	desc := e.ListDescription
	if desc == "" {
		desc = fmt.Sprintf("List %s with optional filters.", e.plural())
	}
	return Operation{
		Name:        "list_" + e.plural(),
		Title:       "List " + e.plural(),
		Description: desc,
		Entity:      e.plural(),
		Params:      e.ListParams,
		ReadOnly:    true,
		Idempotent:  true,
		Handler: func(ctx context.Context, store RecordStore, args map[string]any) (string, error) {
			values, err := request.Build(e.ListParams, args)
			if err != nil {
				return "", err
			}
			var records []T
			if err := store.List(ctx, e.Kind, values.Map(), &records); err != nil {
				return "", err
			}
			return envelope.Success(convert.SerializeAll(records)), nil
		},
	}
}

func (e Entity[T, PT]) Get() Operation {
	return Operation{
		Name:        "get_" + e.Singular,
		Title:       "Get " + e.Singular,
		Description: fmt.Sprintf("Get a single %s by ID.", e.label()),
		Entity:      e.plural(),
		Params:      []request.Param{e.idParam()},
		ReadOnly:    true,
		Idempotent:  true,
		Handler: func(ctx context.Context, store RecordStore, args map[string]any) (string, error) {
			id, err := identifier(args, e.idName())
			if err != nil {
				return "", err
			}
			record := PT(new(T))
			if err := store.Fetch(ctx, e.Kind, id, record); err != nil {
				return "", err
			}
			return envelope.Success(record), nil
		},
	}
}

func (e Entity[T, PT]) Create() Operation {
	return Operation{
		Name:        "create_" + e.Singular,
		Title:       "Create " + e.Singular,
		Description: fmt.Sprintf("Create a new %s.", e.label()),
		Entity:      e.plural(),
		Params:      e.CreateParams,
		Handler: func(ctx context.Context, store RecordStore, args map[string]any) (string, error) {
			values, err := request.Build(e.CreateParams, args)
			if err != nil {
				return "", err
			}
			record := PT(new(T))
			if err := request.Apply(record, values); err != nil {
				return "", err
			}
			if err := store.Save(ctx, e.Kind, record); err != nil {
				return "", err
			}
			return envelope.Success(record), nil
		},
	}
}

// Update fetches the current record, overwrites only the supplied
// attributes and saves it back. Arguments are validated before the fetch so
// a bad argument never reaches the remote side. Supplied lines replace the
// fetched ones; lines left out are sent as destroy markers.
func (e Entity[T, PT]) Update() Operation {
	params := append([]request.Param{e.idParam()}, e.UpdateParams...)
	return Operation{
		Name:        "update_" + e.Singular,
		Title:       "Update " + e.Singular,
		Description: fmt.Sprintf("Update an existing %s. Only the supplied fields change.", e.label()),
		Entity:      e.plural(),
		Params:      params,
		Destructive: true,
		Idempotent:  true,
		Handler: func(ctx context.Context, store RecordStore, args map[string]any) (string, error) {
			id, err := identifier(args, e.idName())
			if err != nil {
				return "", err
			}
			values, err := request.Build(e.UpdateParams, args)
			if err != nil {
				return "", err
			}
			record := PT(new(T))
			if err := store.Fetch(ctx, e.Kind, id, record); err != nil {
				return "", err
			}

			holder, hasLines := any(record).(model.LineHolder)
			var previous []model.Line
			if hasLines {
				previous = holder.LineItems()
			}

			if err := request.Apply(record, values); err != nil {
				return "", err
			}
			if _, supplied := values.Get("lines"); supplied && hasLines {
				holder.SetLineItems(model.ReplaceLines(previous, holder.LineItems()))
			}

			if err := store.Save(ctx, e.Kind, record); err != nil {
				return "", err
			}
			return envelope.Success(record), nil
		},
	}
}

func (e Entity[T, PT]) Delete() Operation {
	return Operation{
		Name:        "delete_" + e.Singular,
		Title:       "Delete " + e.Singular,
		Description: fmt.Sprintf("Delete a %s by ID.", e.label()),
		Entity:      e.plural(),
		Params:      []request.Param{e.idParam()},
		Destructive: true,
		Idempotent:  true,
		Handler: func(ctx context.Context, store RecordStore, args map[string]any) (string, error) {
			id, err := identifier(args, e.idName())
			if err != nil {
				return "", err
			}
			if err := store.Delete(ctx, e.Kind, id); err != nil {
				return "", err
			}
			return envelope.Confirm("deleted_id", id), nil
		},
	}
}
