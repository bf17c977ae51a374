package tools

import (
	"context"
	"fmt"

	"github.com/hance08/fakturoid-mcp/internal/envelope"
)

// Catalog holds every operation, bound to one record store.
type Catalog struct {
	store  RecordStore
	ops    []Operation
	byName map[string]int
}

func NewCatalog(store RecordStore) *Catalog {
	c := &Catalog{store: store, byName: make(map[string]int)}
	for _, group := range [][]Operation{
		accountOperations(),
		subjectOperations(),
		invoiceOperations(),
		expenseOperations(),
		generatorOperations(),
	} {
		for _, op := range group {
			c.byName[op.Name] = len(c.ops)
			c.ops = append(c.ops, op)
		}
	}
	return c
}

// Operations returns the operations in registration order.
func (c *Catalog) Operations() []Operation {
	out := make([]Operation, len(c.ops))
	copy(out, c.ops)
	return out
}

func (c *Catalog) Lookup(name string) (Operation, bool) {
	i, ok := c.byName[name]
	if !ok {
		return Operation{}, false
	}
	return c.ops[i], true
}

// Invoke runs the named operation and returns its envelope. It never panics
// and never fails: every error becomes {"error": "..."}.
func (c *Catalog) Invoke(ctx context.Context, name string, args map[string]any) (text string) {
	op, ok := c.Lookup(name)
	if !ok {
		return envelope.Failure(fmt.Errorf("unknown tool %q", name))
	}

	defer func() {
		if r := recover(); r != nil {
			text = envelope.Failure(fmt.Errorf("internal error in %s: %v", name, r))
		}
	}()

	if args == nil {
		args = map[string]any{}
	}
	out, err := op.Handler(ctx, c.store, args)
	if err != nil {
		return envelope.Failure(err)
	}
	return out
}
