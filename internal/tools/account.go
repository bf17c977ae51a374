package tools

import (
	"context"

	"github.com/hance08/fakturoid-mcp/internal/convert"
	"github.com/hance08/fakturoid-mcp/internal/envelope"
	"github.com/hance08/fakturoid-mcp/internal/model"
)

func accountOperations() []Operation {
	return []Operation{
		{
			Name:        "get_account",
			Title:       "Get account",
			Description: "Get Fakturoid account information (name, plan, etc.).",
			Entity:      "account",
			ReadOnly:    true,
			Idempotent:  true,
			Handler: func(ctx context.Context, store RecordStore, _ map[string]any) (string, error) {
				var account model.Account
				if err := store.Singleton(ctx, model.KindAccount, &account); err != nil {
					return "", err
				}
				return envelope.Success(&account), nil
			},
		},
		{
			Name:        "list_bank_accounts",
			Title:       "List bank accounts",
			Description: "List all bank accounts configured in Fakturoid.",
			Entity:      "account",
			ReadOnly:    true,
			Idempotent:  true,
			Handler: func(ctx context.Context, store RecordStore, _ map[string]any) (string, error) {
				var accounts []model.BankAccount
				if err := store.List(ctx, model.KindBankAccount, nil, &accounts); err != nil {
					return "", err
				}
				return envelope.Success(convert.SerializeAll(accounts)), nil
			},
		},
	}
}
