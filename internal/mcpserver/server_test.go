package mcpserver

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/hance08/fakturoid-mcp/internal/model"
	"github.com/hance08/fakturoid-mcp/internal/store"
	"github.com/hance08/fakturoid-mcp/internal/tools"
)

// stubStore serves a fixed account and fails every record lookup.
type stubStore struct{}

func (stubStore) Fetch(context.Context, model.Kind, int64, any) error {
	return errors.New("fakturoid: 404 Not Found")
}

func (stubStore) List(_ context.Context, _ model.Kind, _ map[string]any, out any) error {
	return json.Unmarshal([]byte("[]"), out)
}

func (stubStore) Search(_ context.Context, _ model.Kind, _ string, out any) error {
	return json.Unmarshal([]byte("[]"), out)
}

func (stubStore) Singleton(_ context.Context, _ model.Kind, out any) error {
	return json.Unmarshal([]byte(`{"subdomain":"acme","name":"Acme s.r.o."}`), out)
}

func (stubStore) Save(context.Context, model.Kind, model.Identified, ...model.Scope) error {
	return nil
}

func (stubStore) Delete(context.Context, model.Kind, int64, ...model.Scope) error { return nil }

func (stubStore) Fire(context.Context, model.Kind, int64, string, map[string]any) error {
	return nil
}

type memJournal struct {
	mu    sync.Mutex
	calls []*store.ToolCall
	err   error
}

func (j *memJournal) RecordCall(call *store.ToolCall) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.calls = append(j.calls, call)
	return j.err
}

func newTestServer(journal Journal) *Server {
	return New(tools.NewCatalog(stubStore{}), journal, nil, "test")
}

// rpc sends one JSON-RPC message and returns the decoded "result".
func rpc(t *testing.T, s *Server, method string, params any) map[string]any {
	t.Helper()
	msg, err := json.Marshal(map[string]any{"jsonrpc": "2.0", "id": 1, "method": method, "params": params})
	if err != nil {
		t.Fatal(err)
	}
	resp := s.MCP().HandleMessage(context.Background(), msg)
	data, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("marshal response: %v", err)
	}
	var decoded struct {
		Result map[string]any `json:"result"`
		Error  any            `json:"error"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("decode response %s: %v", data, err)
	}
	if decoded.Error != nil {
		t.Fatalf("%s failed: %s", method, data)
	}
	return decoded.Result
}

func callTool(t *testing.T, s *Server, name string, args map[string]any) (string, bool) {
	t.Helper()
	result := rpc(t, s, "tools/call", map[string]any{"name": name, "arguments": args})
	content, _ := result["content"].([]any)
	if len(content) != 1 {
		t.Fatalf("got %d content blocks, want 1", len(content))
	}
	block := content[0].(map[string]any)
	isError, _ := result["isError"].(bool)
	return block["text"].(string), isError
}

func TestServer_ListsEveryOperation(t *testing.T) {
	s := newTestServer(nil)
	result := rpc(t, s, "tools/list", map[string]any{})

	listed, _ := result["tools"].([]any)
	ops := tools.NewCatalog(stubStore{}).Operations()
	if len(listed) != len(ops) {
		t.Fatalf("listed %d tools, want %d", len(listed), len(ops))
	}

	byName := make(map[string]map[string]any)
	for _, item := range listed {
		tool := item.(map[string]any)
		byName[tool["name"].(string)] = tool
	}

	account := byName["get_account"]
	annotations := account["annotations"].(map[string]any)
	if annotations["readOnlyHint"] != true {
		t.Errorf("get_account annotations = %v", annotations)
	}

	del := byName["delete_invoice"]["annotations"].(map[string]any)
	if del["destructiveHint"] != true || del["readOnlyHint"] != false {
		t.Errorf("delete_invoice annotations = %v", del)
	}

	schema := byName["create_invoice"]["inputSchema"].(map[string]any)
	required, _ := schema["required"].([]any)
	if len(required) != 2 || required[0] != "subject_id" || required[1] != "lines" {
		t.Errorf("create_invoice required = %v", required)
	}
	props := schema["properties"].(map[string]any)
	if props["lines"].(map[string]any)["type"] != "array" {
		t.Errorf("lines schema = %v", props["lines"])
	}
	if props["issued_on"].(map[string]any)["pattern"] == nil {
		t.Errorf("issued_on has no date pattern: %v", props["issued_on"])
	}
}

func TestServer_CallSuccess(t *testing.T) {
	text, isError := callTool(t, newTestServer(nil), "get_account", nil)
	if isError {
		t.Fatalf("unexpected error: %s", text)
	}
	if !strings.Contains(text, `"subdomain":"acme"`) {
		t.Errorf("text = %s", text)
	}
}

func TestServer_CallFailureSetsIsError(t *testing.T) {
	text, isError := callTool(t, newTestServer(nil), "get_invoice", map[string]any{"invoice_id": 5})
	if !isError {
		t.Error("isError not set")
	}
	if text != `{"error":"fakturoid: 404 Not Found"}` {
		t.Errorf("text = %s", text)
	}
}

func TestServer_JournalsWrites(t *testing.T) {
	journal := &memJournal{}
	s := newTestServer(journal)

	callTool(t, s, "get_account", nil)
	callTool(t, s, "delete_invoice", map[string]any{"invoice_id": 42})
	callTool(t, s, "update_invoice", map[string]any{"invoice_id": 7, "note": "x"})

	if len(journal.calls) != 2 {
		t.Fatalf("journaled %d calls, want 2", len(journal.calls))
	}
	deleted := journal.calls[0]
	if deleted.Tool != "delete_invoice" || !deleted.Success || deleted.Arguments != `{"invoice_id":42}` {
		t.Errorf("delete entry = %+v", deleted)
	}
	updated := journal.calls[1]
	if updated.Success || updated.Error != "fakturoid: 404 Not Found" {
		t.Errorf("update entry = %+v", updated)
	}
}

func TestServer_JournalFailureIsInvisible(t *testing.T) {
	journal := &memJournal{err: errors.New("disk full")}
	text, isError := callTool(t, newTestServer(journal), "delete_subject", map[string]any{"subject_id": 3})
	if isError || text != `{"success":true,"deleted_id":3}` {
		t.Errorf("text = %s, isError = %v", text, isError)
	}
}

func TestServer_CallJournalsOnlyKnownWrites(t *testing.T) {
	journal := &memJournal{}
	s := newTestServer(journal)

	text, failed := s.Call(context.Background(), "shred_invoice", nil)
	if !failed || text != `{"error":"unknown tool \"shred_invoice\""}` {
		t.Errorf("text = %s, failed = %v", text, failed)
	}
	if _, failed := s.Call(context.Background(), "delete_generator", nil); !failed {
		t.Error("missing generator_id should fail")
	}

	if len(journal.calls) != 1 {
		t.Fatalf("journaled %d calls, want 1", len(journal.calls))
	}
	if call := journal.calls[0]; call.Tool != "delete_generator" || call.Arguments != "{}" || call.Success {
		t.Errorf("entry = %+v", call)
	}
}

func TestServer_Healthz(t *testing.T) {
	ts := httptest.NewServer(newTestServer(nil).Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK || string(body) != "ok" {
		t.Errorf("status %d body %q", resp.StatusCode, body)
	}
}
