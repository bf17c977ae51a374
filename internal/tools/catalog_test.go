package tools

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/hance08/fakturoid-mcp/internal/envelope"
	"github.com/hance08/fakturoid-mcp/internal/model"
)

const seededInvoice = `{
	"id": 7,
	"subject_id": 3,
	"currency": "CZK",
	"note": "first",
	"lines": [
		{"name": "a", "quantity": "1", "unit_price": "10.00"},
		{"name": "b", "quantity": "1", "unit_price": "20.00"},
		{"name": "c", "quantity": "1", "unit_price": "30.00"},
		{"name": "d", "quantity": "1", "unit_price": "40.00"},
		{"name": "e", "quantity": "1", "unit_price": "50.00"}
	]
}`

func invoke(t *testing.T, store *memStore, name string, args map[string]any) string {
	t.Helper()
	return NewCatalog(store).Invoke(context.Background(), name, args)
}

func decode(t *testing.T, text string) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal([]byte(text), &out); err != nil {
		t.Fatalf("invalid JSON %q: %v", text, err)
	}
	return out
}

func lastSave(t *testing.T, store *memStore) saveCall {
	t.Helper()
	if len(store.saves) == 0 {
		t.Fatal("nothing was saved")
	}
	return store.saves[len(store.saves)-1]
}

func TestCatalog_Operations(t *testing.T) {
	want := []string{
		"get_account", "list_bank_accounts",
		"list_subjects", "search_subjects", "get_subject", "create_subject", "update_subject", "delete_subject",
		"list_invoices", "get_invoice", "create_invoice", "update_invoice", "delete_invoice",
		"fire_invoice_event", "create_invoice_payment", "delete_invoice_payment", "send_invoice_message",
		"list_expenses", "get_expense", "create_expense", "update_expense", "delete_expense",
		"fire_expense_event", "create_expense_payment", "delete_expense_payment",
		"list_generators", "get_generator", "create_generator", "update_generator", "delete_generator",
	}

	ops := NewCatalog(newMemStore()).Operations()
	if len(ops) != len(want) {
		t.Fatalf("got %d operations, want %d", len(ops), len(want))
	}
	for i, op := range ops {
		if op.Name != want[i] {
			t.Errorf("operation %d = %q, want %q", i, op.Name, want[i])
		}
		if op.Description == "" {
			t.Errorf("%s has no description", op.Name)
		}
		if op.Handler == nil {
			t.Errorf("%s has no handler", op.Name)
		}
	}
}

func TestCatalog_ReadOnlyOperations(t *testing.T) {
	c := NewCatalog(newMemStore())
	for _, op := range c.Operations() {
		readOnly := strings.HasPrefix(op.Name, "get_") ||
			strings.HasPrefix(op.Name, "list_") ||
			strings.HasPrefix(op.Name, "search_")
		if op.ReadOnly != readOnly {
			t.Errorf("%s: ReadOnly = %v, want %v", op.Name, op.ReadOnly, readOnly)
		}
		if op.ReadOnly && op.Destructive {
			t.Errorf("%s is both read-only and destructive", op.Name)
		}
	}
}

func TestUpdate_PreservesOmittedFields(t *testing.T) {
	store := newMemStore()
	store.seed(model.KindInvoice, 7, seededInvoice)

	out := invoke(t, store, "update_invoice", map[string]any{"invoice_id": float64(7), "note": "second"})
	if envelope.IsFailure(out) {
		t.Fatalf("update failed: %s", out)
	}

	body := lastSave(t, store).Body
	if body["currency"] != "CZK" {
		t.Errorf("currency = %v, want CZK", body["currency"])
	}
	if body["note"] != "second" {
		t.Errorf("note = %v, want second", body["note"])
	}
	if lines, _ := body["lines"].([]any); len(lines) != 5 {
		t.Errorf("got %d lines, want 5", len(lines))
	}

	result := decode(t, out)
	if result["currency"] != "CZK" || result["note"] != "second" {
		t.Errorf("unexpected result %s", out)
	}
}

func TestUpdate_ReplacesLines(t *testing.T) {
	store := newMemStore()
	store.seed(model.KindInvoice, 7, seededInvoice)

	out := invoke(t, store, "update_invoice", map[string]any{
		"invoice_id": float64(7),
		"lines": []any{
			map[string]any{"name": "x", "quantity": 2.0, "unit_price": 19.99},
			map[string]any{"name": "y", "quantity": 1.0, "unit_price": "0.10"},
		},
	})
	if envelope.IsFailure(out) {
		t.Fatalf("update failed: %s", out)
	}

	lines, _ := lastSave(t, store).Body["lines"].([]any)
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	first := lines[0].(map[string]any)
	if first["name"] != "x" || first["unit_price"] != "19.99" {
		t.Errorf("first line = %v", first)
	}
}

const seededLinesWithIDs = `[
	{"id": 11, "name": "a"}, {"id": 12, "name": "b"}, {"id": 13, "name": "c"},
	{"id": 14, "name": "d"}, {"id": 15, "name": "e"}
]`

func TestUpdate_EmptyLinesAreSent(t *testing.T) {
	tests := []struct {
		tool string
		kind model.Kind
		id   string
	}{
		{"update_invoice", model.KindInvoice, "invoice_id"},
		{"update_expense", model.KindExpense, "expense_id"},
		{"update_generator", model.KindGenerator, "generator_id"},
	}
	for _, tt := range tests {
		t.Run(tt.tool, func(t *testing.T) {
			store := newMemStore()
			store.seed(tt.kind, 7, seededInvoice)

			out := invoke(t, store, tt.tool, map[string]any{tt.id: float64(7), "lines": []any{}})
			if envelope.IsFailure(out) {
				t.Fatalf("update failed: %s", out)
			}

			lines, ok := lastSave(t, store).Body["lines"].([]any)
			if !ok {
				t.Fatalf("lines missing from the request: %v", lastSave(t, store).Body)
			}
			if len(lines) != 0 {
				t.Errorf("sent %d lines, want 0", len(lines))
			}
			if got, _ := decode(t, out)["lines"].([]any); len(got) != 0 {
				t.Errorf("result has %d lines, want 0", len(got))
			}
		})
	}
}

func TestUpdate_DestroysReplacedLines(t *testing.T) {
	store := newMemStore()
	store.seed(model.KindInvoice, 7, `{"id": 7, "currency": "CZK", "lines": `+seededLinesWithIDs+`}`)

	out := invoke(t, store, "update_invoice", map[string]any{
		"invoice_id": float64(7),
		"lines": []any{
			map[string]any{"id": 12.0, "name": "b2"},
			map[string]any{"name": "new"},
		},
	})
	if envelope.IsFailure(out) {
		t.Fatalf("update failed: %s", out)
	}

	sent, _ := lastSave(t, store).Body["lines"].([]any)
	var destroyed []float64
	for _, item := range sent {
		line := item.(map[string]any)
		if line["_destroy"] == true {
			destroyed = append(destroyed, line["id"].(float64))
		}
	}
	if len(sent) != 6 || len(destroyed) != 4 {
		t.Fatalf("sent %v, want 2 lines and 4 destroy markers", sent)
	}
	for i, id := range []float64{11, 13, 14, 15} {
		if destroyed[i] != id {
			t.Errorf("destroyed %v, want [11 13 14 15]", destroyed)
			break
		}
	}

	lines, _ := decode(t, out)["lines"].([]any)
	if len(lines) != 2 {
		t.Fatalf("result has %d lines, want 2", len(lines))
	}
	for _, item := range lines {
		if _, ok := item.(map[string]any)["_destroy"]; ok {
			t.Errorf("destroy marker leaked into the result: %v", item)
		}
	}
}

func TestUpdate_ClearsWithEmptyString(t *testing.T) {
	store := newMemStore()
	store.seed(model.KindInvoice, 7, seededInvoice)

	invoke(t, store, "update_invoice", map[string]any{"invoice_id": float64(7), "note": ""})

	body := lastSave(t, store).Body
	if note, ok := body["note"]; !ok || note != "" {
		t.Errorf("note = %v (present %v), want empty string sent", note, ok)
	}
}

func TestUpdate_MissingRecord(t *testing.T) {
	store := newMemStore()
	out := invoke(t, store, "update_subject", map[string]any{"subject_id": float64(1), "name": "x"})
	if out != `{"error":"record not found"}` {
		t.Errorf("got %s", out)
	}
	if len(store.saves) != 0 {
		t.Error("nothing should be saved")
	}
}

func TestDelete_Confirmation(t *testing.T) {
	tests := []struct {
		tool string
		arg  string
	}{
		{"delete_subject", "subject_id"},
		{"delete_invoice", "invoice_id"},
		{"delete_expense", "expense_id"},
		{"delete_generator", "generator_id"},
	}

	for _, tt := range tests {
		t.Run(tt.tool, func(t *testing.T) {
			store := newMemStore()
			for range 2 {
				out := invoke(t, store, tt.tool, map[string]any{tt.arg: float64(42)})
				if out != `{"success":true,"deleted_id":42}` {
					t.Errorf("got %s", out)
				}
			}
		})
	}
}

func TestDeletePayment_Confirmation(t *testing.T) {
	store := newMemStore()
	out := invoke(t, store, "delete_expense_payment", map[string]any{"expense_id": float64(5), "payment_id": float64(9)})
	if out != `{"success":true,"expense_id":5,"payment_id":9}` {
		t.Errorf("got %s", out)
	}
	if len(store.deletes) != 1 || store.deletes[0] != "expenses/5/payments/9" {
		t.Errorf("deletes = %v", store.deletes)
	}
}

func TestErrors_AreUniform(t *testing.T) {
	tests := []struct {
		tool string
		args map[string]any
	}{
		{"get_account", nil},
		{"list_invoices", nil},
		{"get_invoice", map[string]any{"invoice_id": float64(1)}},
		{"search_subjects", map[string]any{"query": "acme"}},
		{"fire_expense_event", map[string]any{"expense_id": float64(1), "event": "lock"}},
		{"delete_generator", map[string]any{"generator_id": float64(1)}},
	}

	for _, tt := range tests {
		t.Run(tt.tool, func(t *testing.T) {
			store := newMemStore()
			store.err = errors.New("boom")
			if out := invoke(t, store, tt.tool, tt.args); out != `{"error":"boom"}` {
				t.Errorf("got %s", out)
			}
		})
	}
}

func TestDelete_RejectsOutOfRangeID(t *testing.T) {
	store := newMemStore()
	out := invoke(t, store, "delete_invoice", map[string]any{"invoice_id": math.Pow(2, 63)})
	if !envelope.IsFailure(out) || !strings.Contains(out, "invoice_id") {
		t.Errorf("got %s", out)
	}
	if len(store.deletes) != 0 {
		t.Errorf("deleted %v", store.deletes)
	}
}

func TestInvoke_UnknownTool(t *testing.T) {
	out := invoke(t, newMemStore(), "launch_rocket", nil)
	if !envelope.IsFailure(out) || !strings.Contains(out, "launch_rocket") {
		t.Errorf("got %s", out)
	}
}

func TestInvoke_RecoversPanics(t *testing.T) {
	store := newMemStore()
	store.panic = true
	out := invoke(t, store, "get_account", nil)
	if !envelope.IsFailure(out) || !strings.Contains(out, "store exploded") {
		t.Errorf("got %s", out)
	}
}

func TestFireEvent_PayRequiresPayment(t *testing.T) {
	tests := []struct {
		name    string
		args    map[string]any
		missing string
	}{
		{"no extras", map[string]any{}, "paid_on"},
		{"no amount", map[string]any{"paid_on": "2024-03-01"}, "paid_amount"},
		{"empty date", map[string]any{"paid_on": "", "paid_amount": 100.0}, "paid_on"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newMemStore()
			args := map[string]any{"invoice_id": float64(7), "event": "pay"}
			for k, v := range tt.args {
				args[k] = v
			}
			out := invoke(t, store, "fire_invoice_event", args)
			if !envelope.IsFailure(out) || !strings.Contains(out, tt.missing) {
				t.Errorf("got %s, want error naming %s", out, tt.missing)
			}
			if len(store.fires) != 0 {
				t.Error("event must not reach the store")
			}
		})
	}
}

func TestFireEvent_Pay(t *testing.T) {
	store := newMemStore()
	out := invoke(t, store, "fire_invoice_event", map[string]any{
		"invoice_id":  float64(7),
		"event":       "pay",
		"paid_on":     "2024-03-01",
		"paid_amount": 1210.5,
	})
	if out != `{"success":true,"invoice_id":7,"event":"pay"}` {
		t.Fatalf("got %s", out)
	}
	fired := store.fires[0]
	if fired.Kind != model.KindInvoice || fired.ID != 7 || fired.Event != "pay" {
		t.Errorf("fired = %+v", fired)
	}
	if d, ok := fired.Extras["paid_on"].(model.Date); !ok || d.String() != "2024-03-01" {
		t.Errorf("paid_on = %v", fired.Extras["paid_on"])
	}
}

func TestFireEvent_UnknownEventIsForwarded(t *testing.T) {
	store := newMemStore()
	out := invoke(t, store, "fire_expense_event", map[string]any{"expense_id": float64(3), "event": "teleport"})
	if out != `{"success":true,"expense_id":3,"event":"teleport"}` {
		t.Errorf("got %s", out)
	}
	if len(store.fires) != 1 || store.fires[0].Event != "teleport" {
		t.Errorf("fires = %+v", store.fires)
	}
}

func TestCreateInvoice_Proforma(t *testing.T) {
	lines := []any{map[string]any{"name": "work", "unit_price": 100.0}}

	tests := []struct {
		name     string
		proforma any
		want     any
	}{
		{"absent", nil, nil},
		{"false", false, nil},
		{"true", true, "proforma"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newMemStore()
			args := map[string]any{"subject_id": float64(3), "lines": lines}
			if tt.proforma != nil {
				args["proforma"] = tt.proforma
			}
			out := invoke(t, store, "create_invoice", args)
			if envelope.IsFailure(out) {
				t.Fatalf("create failed: %s", out)
			}
			if got := lastSave(t, store).Body["document_type"]; got != tt.want {
				t.Errorf("document_type = %v, want %v", got, tt.want)
			}
			if decode(t, out)["id"] != float64(1001) {
				t.Errorf("created record has no id: %s", out)
			}
		})
	}
}

func TestCreateInvoice_InvalidDate(t *testing.T) {
	store := newMemStore()
	out := invoke(t, store, "create_invoice", map[string]any{
		"subject_id": float64(3),
		"lines":      []any{map[string]any{"name": "work"}},
		"issued_on":  "2024-13-45",
	})
	if !envelope.IsFailure(out) || !strings.Contains(out, `2024-13-45`) {
		t.Errorf("got %s", out)
	}
	if len(store.saves) != 0 {
		t.Error("nothing should be saved")
	}
}

func TestCreateInvoice_MissingLines(t *testing.T) {
	out := invoke(t, newMemStore(), "create_invoice", map[string]any{"subject_id": float64(3)})
	if !envelope.IsFailure(out) || !strings.Contains(out, "lines") {
		t.Errorf("got %s", out)
	}
}

func TestCreatePayment_MarkDocumentAsPaid(t *testing.T) {
	tests := []struct {
		name    string
		mark    any
		present bool
	}{
		{"default", nil, false},
		{"true", true, false},
		{"false", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newMemStore()
			args := map[string]any{"invoice_id": float64(7), "paid_on": "2024-03-01", "amount": 100.0}
			if tt.mark != nil {
				args["mark_document_as_paid"] = tt.mark
			}
			out := invoke(t, store, "create_invoice_payment", args)
			if envelope.IsFailure(out) {
				t.Fatalf("create failed: %s", out)
			}
			save := lastSave(t, store)
			if save.Path != "invoices/7/payments" {
				t.Errorf("path = %s", save.Path)
			}
			if _, ok := save.Body["mark_document_as_paid"]; ok != tt.present {
				t.Errorf("mark_document_as_paid present = %v, want %v", ok, tt.present)
			}
			if save.Body["amount"] != "100" || save.Body["paid_on"] != "2024-03-01" {
				t.Errorf("body = %v", save.Body)
			}
		})
	}
}

func TestCreateGenerator_RecurringAlwaysSent(t *testing.T) {
	store := newMemStore()
	out := invoke(t, store, "create_generator", map[string]any{
		"name":       "Monthly",
		"subject_id": float64(3),
		"lines":      []any{map[string]any{"name": "hosting", "unit_price": 9.9}},
	})
	if envelope.IsFailure(out) {
		t.Fatalf("create failed: %s", out)
	}
	if got, ok := lastSave(t, store).Body["recurring"]; !ok || got != false {
		t.Errorf("recurring = %v (present %v)", got, ok)
	}
}

func TestCreateSubject_RenamesZip(t *testing.T) {
	store := newMemStore()
	invoke(t, store, "create_subject", map[string]any{"name": "Acme", "zip_code": "110 00", "city": ""})

	body := lastSave(t, store).Body
	if body["zip"] != "110 00" {
		t.Errorf("zip = %v", body["zip"])
	}
	if _, ok := body["city"]; ok {
		t.Error("empty city must not be sent on create")
	}
}

func TestSendInvoiceMessage(t *testing.T) {
	store := newMemStore()
	out := invoke(t, store, "send_invoice_message", map[string]any{
		"invoice_id":    float64(7),
		"email":         "client@example.com",
		"email_subject": "Invoice",
		"email_body":    "Please pay.",
	})
	if out != `{"success":true,"invoice_id":7,"email":"client@example.com"}` {
		t.Fatalf("got %s", out)
	}
	save := lastSave(t, store)
	if save.Path != "invoices/7/message" {
		t.Errorf("path = %s", save.Path)
	}
	if save.Body["subject"] != "Invoice" || save.Body["message"] != "Please pay." {
		t.Errorf("body = %v", save.Body)
	}
}

func TestList_EmptyIsArray(t *testing.T) {
	for _, tool := range []string{"list_invoices", "list_expenses", "list_subjects", "list_generators", "list_bank_accounts"} {
		if out := invoke(t, newMemStore(), tool, nil); out != "[]" {
			t.Errorf("%s: got %s, want []", tool, out)
		}
	}
}

func TestList_Filters(t *testing.T) {
	store := newMemStore()
	invoke(t, store, "list_invoices", map[string]any{
		"subject_id": float64(0),
		"status":     "",
		"since":      "2024-01-01",
		"proforma":   false,
	})

	if _, ok := store.filter["status"]; ok {
		t.Error("empty status must be dropped")
	}
	if got := store.filter["subject_id"]; got != int64(0) {
		t.Errorf("subject_id = %v, want 0", got)
	}
	if got := store.filter["document_type"]; got != "regular" {
		t.Errorf("document_type = %v, want regular", got)
	}
	if d, ok := store.filter["since"].(model.Date); !ok || d.String() != "2024-01-01" {
		t.Errorf("since = %v", store.filter["since"])
	}
}

func TestSearchSubjects(t *testing.T) {
	store := newMemStore()
	store.seed(model.KindSubject, 1, `{"id":1,"name":"Acme"}`)
	store.seed(model.KindSubject, 2, `{"id":2,"name":"Globex"}`)

	out := invoke(t, store, "search_subjects", map[string]any{"query": "Acme"})
	var found []map[string]any
	if err := json.Unmarshal([]byte(out), &found); err != nil {
		t.Fatalf("invalid JSON %q: %v", out, err)
	}
	if len(found) != 1 || found[0]["name"] != "Acme" {
		t.Errorf("got %s", out)
	}
}
