package tools

import (
	"context"

	"github.com/hance08/fakturoid-mcp/internal/model"
)

// RecordStore is the remote accounting API. Implementations must be safe for
// concurrent use; the catalog shares one store across all invocations.
type RecordStore interface {
	// Fetch decodes the record kind/id into out.
	Fetch(ctx context.Context, kind model.Kind, id int64, out any) error
	// List decodes every record matching filter into out, a pointer to a slice.
	List(ctx context.Context, kind model.Kind, filter map[string]any, out any) error
	// Search runs a full-text query and decodes the matches into out.
	Search(ctx context.Context, kind model.Kind, query string, out any) error
	// Singleton decodes a record that exists once per account, e.g. the account itself.
	Singleton(ctx context.Context, kind model.Kind, out any) error
	// Save creates the record when it has no identifier and updates it
	// otherwise, then refreshes record with what the remote side stored.
	Save(ctx context.Context, kind model.Kind, record model.Identified, scope ...model.Scope) error
	// Delete removes the record kind/id.
	Delete(ctx context.Context, kind model.Kind, id int64, scope ...model.Scope) error
	// Fire triggers a lifecycle event such as "mark_as_sent" or "lock".
	Fire(ctx context.Context, kind model.Kind, id int64, event string, extras map[string]any) error
}
