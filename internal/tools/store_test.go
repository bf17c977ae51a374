package tools

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/hance08/fakturoid-mcp/internal/model"
)

var errNotFound = errors.New("record not found")

type saveCall struct {
	Path string
	Body map[string]any
}

type fireCall struct {
	Kind   model.Kind
	ID     int64
	Event  string
	Extras map[string]any
}

// memStore keeps records as JSON documents keyed by collection path.
type memStore struct {
	mu      sync.Mutex
	records map[string]map[int64][]byte
	nextID  int64

	saves   []saveCall
	fires   []fireCall
	deletes []string
	filter  map[string]any

	err   error
	panic bool
}

func newMemStore() *memStore {
	return &memStore{records: make(map[string]map[int64][]byte), nextID: 1000}
}

func path(kind model.Kind, scope []model.Scope) string {
	p := string(kind)
	for _, s := range scope {
		p = fmt.Sprintf("%s/%d/%s", s.Kind, s.ID, p)
	}
	return p
}

func (s *memStore) seed(kind model.Kind, id int64, doc string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.records[string(kind)] == nil {
		s.records[string(kind)] = make(map[int64][]byte)
	}
	s.records[string(kind)][id] = []byte(doc)
}

func (s *memStore) fail() error {
	if s.panic {
		panic("store exploded")
	}
	return s.err
}

func (s *memStore) Fetch(_ context.Context, kind model.Kind, id int64, out any) error {
	if err := s.fail(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.records[string(kind)][id]
	if !ok {
		return errNotFound
	}
	return json.Unmarshal(data, out)
}

func (s *memStore) all(kind model.Kind, match func([]byte) bool) []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]int64, 0, len(s.records[string(kind)]))
	for id := range s.records[string(kind)] {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	docs := make([][]byte, 0, len(ids))
	for _, id := range ids {
		if doc := s.records[string(kind)][id]; match(doc) {
			docs = append(docs, doc)
		}
	}
	return append(append([]byte("["), bytes.Join(docs, []byte(","))...), ']')
}

func (s *memStore) List(_ context.Context, kind model.Kind, filter map[string]any, out any) error {
	if err := s.fail(); err != nil {
		return err
	}
	s.filter = filter
	return json.Unmarshal(s.all(kind, func([]byte) bool { return true }), out)
}

func (s *memStore) Search(_ context.Context, kind model.Kind, query string, out any) error {
	if err := s.fail(); err != nil {
		return err
	}
	return json.Unmarshal(s.all(kind, func(doc []byte) bool {
		return bytes.Contains(doc, []byte(query))
	}), out)
}

func (s *memStore) Singleton(_ context.Context, kind model.Kind, out any) error {
	if err := s.fail(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.records[string(kind)][0]
	if !ok {
		return errNotFound
	}
	return json.Unmarshal(data, out)
}

func (s *memStore) Save(_ context.Context, kind model.Kind, record model.Identified, scope ...model.Scope) error {
	if err := s.fail(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	body, err := json.Marshal(record)
	if err != nil {
		return err
	}
	var sent map[string]any
	if err := json.Unmarshal(body, &sent); err != nil {
		return err
	}
	p := path(kind, scope)
	s.saves = append(s.saves, saveCall{Path: p, Body: sent})

	// Like the API, drop destroyed lines and answer with the stored record.
	if holder, ok := record.(model.LineHolder); ok && holder.LineItems() != nil {
		kept := make([]model.Line, 0, len(holder.LineItems()))
		for _, line := range holder.LineItems() {
			if !line.Destroy {
				kept = append(kept, line)
			}
		}
		holder.SetLineItems(kept)
	}

	id := record.Identifier()
	if id == nil {
		s.nextID++
		if err := json.Unmarshal(fmt.Appendf(nil, `{"id":%d}`, s.nextID), record); err != nil {
			return err
		}
		id = &s.nextID
	}
	if body, err = json.Marshal(record); err != nil {
		return err
	}
	if s.records[p] == nil {
		s.records[p] = make(map[int64][]byte)
	}
	s.records[p][*id] = body
	return nil
}

func (s *memStore) Delete(_ context.Context, kind model.Kind, id int64, scope ...model.Scope) error {
	if err := s.fail(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	p := path(kind, scope)
	s.deletes = append(s.deletes, fmt.Sprintf("%s/%d", p, id))
	delete(s.records[p], id)
	return nil
}

func (s *memStore) Fire(_ context.Context, kind model.Kind, id int64, event string, extras map[string]any) error {
	if err := s.fail(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fires = append(s.fires, fireCall{Kind: kind, ID: id, Event: event, Extras: extras})
	return nil
}
