package fakturoid

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/hance08/fakturoid-mcp/internal/model"
)

// cachedKinds are account-level collections that rarely change.
var cachedKinds = map[model.Kind]bool{
	model.KindAccount:     true,
	model.KindBankAccount: true,
}

// unpagedKinds are returned whole and ignore the page parameter.
var unpagedKinds = map[model.Kind]bool{
	model.KindBankAccount: true,
}

func collection(kind model.Kind, scope []model.Scope) string {
	path := string(kind)
	for i := len(scope) - 1; i >= 0; i-- {
		path = fmt.Sprintf("%s/%d/%s", scope[i].Kind, scope[i].ID, path)
	}
	return path
}

func member(kind model.Kind, id int64, scope []model.Scope) string {
	return fmt.Sprintf("%s/%d.json", collection(kind, scope), id)
}

func (c *Client) Fetch(ctx context.Context, kind model.Kind, id int64, out any) error {
	return c.do(ctx, http.MethodGet, member(kind, id, nil), nil, nil, out)
}

// List fetches every page of kind matching filter. Filter values are sent as
// query parameters in their string form.
func (c *Client) List(ctx context.Context, kind model.Kind, filter map[string]any, out any) error {
	query := url.Values{}
	for name, v := range filter {
		query.Set(name, fmt.Sprint(v))
	}

	path := string(kind) + ".json"
	load := func() ([]byte, error) { return c.pages(ctx, path, query) }
	if unpagedKinds[kind] {
		load = func() ([]byte, error) { return c.whole(ctx, path, query) }
	}

	var (
		data []byte
		err  error
	)
	if cachedKinds[kind] && len(filter) == 0 {
		data, err = c.cached(path, load)
	} else {
		data, err = load()
	}
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}

func (c *Client) Search(ctx context.Context, kind model.Kind, query string, out any) error {
	data, err := c.pages(ctx, string(kind)+"/search.json", url.Values{"query": {query}})
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}

func (c *Client) Singleton(ctx context.Context, kind model.Kind, out any) error {
	path := string(kind) + ".json"
	load := func() ([]byte, error) {
		var raw json.RawMessage
		if err := c.do(ctx, http.MethodGet, path, nil, nil, &raw); err != nil {
			return nil, err
		}
		return raw, nil
	}

	var (
		data []byte
		err  error
	)
	if cachedKinds[kind] {
		data, err = c.cached(path, load)
	} else {
		data, err = load()
	}
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}

// Save creates record with POST when it has no identifier and updates it
// with PATCH otherwise. The response, if any, is decoded back into record.
func (c *Client) Save(ctx context.Context, kind model.Kind, record model.Identified, scope ...model.Scope) error {
	if id := record.Identifier(); id != nil {
		return c.do(ctx, http.MethodPatch, member(kind, *id, scope), nil, record, record)
	}
	return c.do(ctx, http.MethodPost, collection(kind, scope)+".json", nil, record, record)
}

func (c *Client) Delete(ctx context.Context, kind model.Kind, id int64, scope ...model.Scope) error {
	return c.do(ctx, http.MethodDelete, member(kind, id, scope), nil, nil, nil)
}

// Fire triggers a lifecycle event. Extras such as paid_on travel in the body.
func (c *Client) Fire(ctx context.Context, kind model.Kind, id int64, event string, extras map[string]any) error {
	path := fmt.Sprintf("%s/%d/fire.json", kind, id)
	var body any
	if len(extras) > 0 {
		body = extras
	}
	return c.do(ctx, http.MethodPost, path, url.Values{"event": {event}}, body, nil)
}
