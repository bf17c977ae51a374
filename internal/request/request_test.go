package request

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hance08/fakturoid-mcp/internal/convert"
	"github.com/hance08/fakturoid-mcp/internal/model"
)

var listParams = []Param{
	{Name: "subject_id", Kind: Integer, Presence: OmitAbsent},
	{Name: "since", Kind: Date},
	{Name: "status", Kind: String},
	{Name: "proforma", Field: "document_type", Kind: Bool, Presence: OmitAbsent, Map: func(v any) any {
		if v.(bool) {
			return "proforma"
		}
		return "regular"
	}},
}

func TestBuild_OmitsAbsentAndNull(t *testing.T) {
	values, err := Build(listParams, map[string]any{"since": nil, "status": "paid"})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(values) != 1 {
		t.Fatalf("got %d values (%v), want only status", len(values), values)
	}
	if _, ok := values.Get("since"); ok {
		t.Errorf("since must be absent, not present-with-null")
	}
	if v, _ := values.Get("status"); v != "paid" {
		t.Errorf("status = %v", v)
	}
}

func TestBuild_PresenceRules(t *testing.T) {
	tests := []struct {
		name   string
		params []Param
		args   map[string]any
		want   map[string]any
	}{
		{
			name:   "empty string filter is omitted",
			params: listParams,
			args:   map[string]any{"status": "", "since": ""},
			want:   map[string]any{},
		},
		{
			name:   "zero id is kept when explicitly supplied",
			params: listParams,
			args:   map[string]any{"subject_id": float64(0)},
			want:   map[string]any{"subject_id": int64(0)},
		},
		{
			name:   "false boolean filter is kept and mapped",
			params: listParams,
			args:   map[string]any{"proforma": false},
			want:   map[string]any{"document_type": "regular"},
		},
		{
			name:   "default-valued flag is omitted",
			params: []Param{{Name: "mark_document_as_paid", Kind: Bool, Presence: OmitDefault, Default: true}},
			args:   map[string]any{"mark_document_as_paid": true},
			want:   map[string]any{},
		},
		{
			name:   "non-default flag is sent",
			params: []Param{{Name: "mark_document_as_paid", Kind: Bool, Presence: OmitDefault, Default: true}},
			args:   map[string]any{"mark_document_as_paid": false},
			want:   map[string]any{"mark_document_as_paid": false},
		},
		{
			name:   "always uses default when absent",
			params: []Param{{Name: "recurring", Kind: Bool, Presence: Always, Default: false}},
			args:   map[string]any{},
			want:   map[string]any{"recurring": false},
		},
		{
			name:   "update fields keep empty strings",
			params: []Param{{Name: "note", Kind: String, Presence: OmitAbsent}},
			args:   map[string]any{"note": ""},
			want:   map[string]any{"note": ""},
		},
		{
			name:   "renamed field",
			params: []Param{{Name: "zip_code", Field: "zip", Kind: String}},
			args:   map[string]any{"zip_code": "11000"},
			want:   map[string]any{"zip": "11000"},
		},
		{
			name:   "undeclared arguments are ignored",
			params: listParams,
			args:   map[string]any{"unexpected": "x"},
			want:   map[string]any{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := Build(tt.params, tt.args)
			if err != nil {
				t.Fatalf("Build: %v", err)
			}
			got := values.Map()
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for k, want := range tt.want {
				if got[k] != want {
					t.Errorf("%s = %#v, want %#v", k, got[k], want)
				}
			}
		})
	}
}

func TestBuild_CoercesDates(t *testing.T) {
	values, err := Build(listParams, map[string]any{"since": "2024-03-15"})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	v, _ := values.Get("since")
	if v != model.NewDate(2024, time.March, 15) {
		t.Errorf("since = %#v", v)
	}
}

func TestBuild_MalformedDateFails(t *testing.T) {
	_, err := Build(listParams, map[string]any{"status": "paid", "since": "15/03/2024"})
	var parseErr *convert.ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("err = %v, want *convert.ParseError", err)
	}
}

func TestBuild_RequiredParameters(t *testing.T) {
	params := []Param{{Name: "name", Kind: String, Required: true}}

	_, err := Build(params, map[string]any{})
	var missing *MissingFieldError
	if !errors.As(err, &missing) || missing.Name != "name" {
		t.Fatalf("err = %v, want MissingFieldError for name", err)
	}

	_, err = Build(params, map[string]any{"name": nil})
	if !errors.As(err, &missing) {
		t.Fatalf("explicit null must count as missing, got %v", err)
	}

	values, err := Build(params, map[string]any{"name": ""})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if v, ok := values.Get("name"); !ok || v != "" {
		t.Errorf("required empty string should be forwarded, got %v %v", v, ok)
	}
}

func TestBuild_TypeErrors(t *testing.T) {
	tests := []struct {
		name  string
		param Param
		raw   any
	}{
		{"string given number", Param{Name: "status", Kind: String}, float64(3)},
		{"fractional integer", Param{Name: "due", Kind: Integer, Presence: OmitAbsent}, 1.5},
		{"integer of 2^63", Param{Name: "invoice_id", Kind: Integer, Required: true}, math.Pow(2, 63)},
		{"integer below int64", Param{Name: "invoice_id", Kind: Integer, Required: true}, -math.Pow(2, 64)},
		{"bool given object", Param{Name: "proforma", Kind: Bool, Presence: OmitAbsent}, map[string]any{"x": 1}},
		{"list with number", Param{Name: "tags", Kind: StringList}, []any{"a", float64(1)}},
		{"line with unknown key", Param{Name: "lines", Kind: Lines}, []any{map[string]any{"name": "x", "unit_prise": 1}}},
		{"lines not objects", Param{Name: "lines", Kind: Lines}, []any{"x"}},
		{"number from text", Param{Name: "amount", Kind: Number}, "12,5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build([]Param{tt.param}, map[string]any{tt.param.Name: tt.raw})
			var typeErr *TypeError
			if !errors.As(err, &typeErr) {
				t.Fatalf("err = %v, want *TypeError", err)
			}
			if typeErr.Error() == "" {
				t.Error("empty error message")
			}
		})
	}
}

func TestBuild_NumbersAreExact(t *testing.T) {
	params := []Param{{Name: "amount", Kind: Number, Required: true}}
	for _, raw := range []any{19.999, "19.999"} {
		values, err := Build(params, map[string]any{"amount": raw})
		if err != nil {
			t.Fatalf("Build(%v): %v", raw, err)
		}
		v, _ := values.Get("amount")
		if convert.Decimal(v.(decimal.Decimal)) != "19.999" {
			t.Errorf("amount from %#v = %v", raw, v)
		}
	}
}

func TestBuild_Lines(t *testing.T) {
	params := []Param{{Name: "lines", Kind: Lines, Required: true}}
	values, err := Build(params, map[string]any{"lines": []any{
		map[string]any{"name": "Hosting", "quantity": float64(2), "unit_name": "month", "unit_price": 19.999, "vat_rate": float64(21)},
		map[string]any{"name": "Setup", "unit_price": "500.00"},
	}})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	v, _ := values.Get("lines")
	lines := v.([]model.Line)
	if len(lines) != 2 {
		t.Fatalf("got %d lines", len(lines))
	}
	if lines[0].Name != "Hosting" || *lines[0].UnitName != "month" {
		t.Errorf("line 0 = %+v", lines[0])
	}
	if convert.Decimal(*lines[0].UnitPrice) != "19.999" {
		t.Errorf("unit price = %s", lines[0].UnitPrice)
	}
	if convert.Decimal(*lines[1].UnitPrice) != "500.00" {
		t.Errorf("unit price = %s", lines[1].UnitPrice)
	}
	if lines[1].Quantity != nil {
		t.Errorf("unset quantity should stay nil so the remote default applies")
	}
}

func TestApply_PreservesOmittedFields(t *testing.T) {
	currency := "CZK"
	oldNote := "old"
	id := int64(7)
	invoice := &model.Invoice{ID: &id, Currency: &currency, Note: &oldNote}

	params := []Param{
		{Name: "note", Kind: String, Presence: OmitAbsent},
		{Name: "currency", Kind: String, Presence: OmitAbsent},
	}
	values, err := Build(params, map[string]any{"note": "paid by card"})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if err := Apply(invoice, values); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	if *invoice.Currency != "CZK" {
		t.Errorf("currency changed to %q", *invoice.Currency)
	}
	if *invoice.Note != "paid by card" {
		t.Errorf("note = %q", *invoice.Note)
	}
	if oldNote != "old" {
		t.Errorf("Apply must not write through the previous pointer")
	}
}

func TestApply_ReplacesLinesWholesale(t *testing.T) {
	lineID := int64(99)
	old := make([]model.Line, 5)
	for i := range old {
		old[i] = model.Line{ID: &lineID, Name: "old"}
	}
	expense := &model.Expense{Lines: old}

	params := []Param{{Name: "lines", Kind: Lines, Presence: OmitAbsent}}
	values, err := Build(params, map[string]any{"lines": []any{
		map[string]any{"name": "a"},
		map[string]any{"name": "b"},
	}})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if err := Apply(expense, values); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	if len(expense.Lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(expense.Lines))
	}
	for i, line := range expense.Lines {
		if line.ID != nil {
			t.Errorf("line %d kept id from the replaced line", i)
		}
	}
	if expense.Lines[0].Name != "a" || expense.Lines[1].Name != "b" {
		t.Errorf("lines = %+v", expense.Lines)
	}
}

func TestApply_Errors(t *testing.T) {
	if err := Apply(model.Invoice{}, nil); err == nil {
		t.Error("non-pointer record should fail")
	}
	err := Apply(&model.Invoice{}, Values{{Field: "no_such_field", Value: "x"}})
	if err == nil {
		t.Error("unknown attribute should fail")
	}
}
