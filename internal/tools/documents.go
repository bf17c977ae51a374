package tools

import (
	"context"
	"fmt"

	"github.com/hance08/fakturoid-mcp/internal/envelope"
	"github.com/hance08/fakturoid-mcp/internal/model"
	"github.com/hance08/fakturoid-mcp/internal/request"
)

// document describes an invoice or an expense: a record that has lifecycle
// events and payments.
type document struct {
	kind     model.Kind
	singular string
	// events lists the event names for the description.
	events string
	// extras are event arguments forwarded with the event.
	extras []request.Param
	// requires names the extras that a specific event cannot do without.
	requires map[string][]string
	// payment are the arguments of a new payment.
	payment []request.Param
}

func (d document) idName() string { return d.singular + "_id" }

func (d document) fireEvent() Operation {
	params := join(
		[]request.Param{
			idParam(d.idName(), "The "+d.singular+" ID"),
			required(str("event", "Event name: "+d.events)),
		},
		d.extras,
	)
	return Operation{
		Name:        "fire_" + d.singular + "_event",
		Title:       "Fire " + d.singular + " event",
		Description: fmt.Sprintf("Fire an event on an %s to change its state.", d.singular),
		Entity:      string(d.kind),
		Params:      params,
		Destructive: true,
		Handler: func(ctx context.Context, store RecordStore, args map[string]any) (string, error) {
			id, err := identifier(args, d.idName())
			if err != nil {
				return "", err
			}
			event, err := requiredString(args, "event")
			if err != nil {
				return "", err
			}
			values, err := request.Build(d.extras, args)
			if err != nil {
				return "", err
			}
			for _, name := range d.requires[event] {
				if _, ok := values.Get(name); !ok {
					return "", &request.MissingFieldError{
						Name:   name,
						Reason: fmt.Sprintf("required for the %s event", event),
					}
				}
			}
			if err := store.Fire(ctx, d.kind, id, event, values.Map()); err != nil {
				return "", err
			}
			return envelope.Confirm(d.idName(), id, "event", event), nil
		},
	}
}

func (d document) createPayment() Operation {
	params := join([]request.Param{idParam(d.idName(), "The "+d.singular+" ID")}, d.payment)
	return Operation{
		Name:        "create_" + d.singular + "_payment",
		Title:       "Create " + d.singular + " payment",
		Description: fmt.Sprintf("Record a payment on an %s.", d.singular),
		Entity:      string(d.kind),
		Params:      params,
		Handler: func(ctx context.Context, store RecordStore, args map[string]any) (string, error) {
			id, err := identifier(args, d.idName())
			if err != nil {
				return "", err
			}
			values, err := request.Build(d.payment, args)
			if err != nil {
				return "", err
			}
			payment := &model.Payment{}
			if err := request.Apply(payment, values); err != nil {
				return "", err
			}
			if err := store.Save(ctx, model.KindPayment, payment, model.Scope{Kind: d.kind, ID: id}); err != nil {
				return "", err
			}
			return envelope.Success(payment), nil
		},
	}
}

func (d document) deletePayment() Operation {
	return Operation{
		Name:        "delete_" + d.singular + "_payment",
		Title:       "Delete " + d.singular + " payment",
		Description: fmt.Sprintf("Delete a payment from an %s.", d.singular),
		Entity:      string(d.kind),
		Params: []request.Param{
			idParam(d.idName(), "The "+d.singular+" ID"),
			idParam("payment_id", "The payment ID to delete"),
		},
		Destructive: true,
		Idempotent:  true,
		Handler: func(ctx context.Context, store RecordStore, args map[string]any) (string, error) {
			id, err := identifier(args, d.idName())
			if err != nil {
				return "", err
			}
			paymentID, err := identifier(args, "payment_id")
			if err != nil {
				return "", err
			}
			if err := store.Delete(ctx, model.KindPayment, paymentID, model.Scope{Kind: d.kind, ID: id}); err != nil {
				return "", err
			}
			return envelope.Confirm(d.idName(), id, "payment_id", paymentID), nil
		},
	}
}

func paymentParams() []request.Param {
	return []request.Param{
		required(date("paid_on", "Payment date")),
		{Name: "amount", Kind: request.Number, Required: true, Description: "Payment amount"},
		str("currency", "Currency code"),
	}
}
