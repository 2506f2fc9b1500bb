package store

import (
	"context"
	"fmt"
	"reflect"
	"sort"
	"sync"
	"time"
)

// MemoryStore implements Client in process memory. It mirrors the vendor
// transforms' semantics (set-union, set-removal, commit-time timestamps) and
// backs tests and credential-less development runs.
type MemoryStore struct {
	mu          sync.Mutex
	collections map[string]map[string]map[string]interface{}
	nextID      int
}

// NewMemoryStore creates an empty MemoryStore
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{collections: make(map[string]map[string]map[string]interface{})}
}

// Add creates a new document with an auto-generated ID
func (s *MemoryStore) Add(ctx context.Context, collection string, data map[string]interface{}) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	id := fmt.Sprintf("doc-%06d", s.nextID)

	doc := make(map[string]interface{}, len(data))
	for k, v := range data {
		doc[k] = resolveMemoryValue(nil, v)
	}

	if s.collections[collection] == nil {
		s.collections[collection] = make(map[string]map[string]interface{})
	}
	s.collections[collection][id] = doc
	return id, nil
}

// Set creates or replaces a document with a caller-chosen ID
func (s *MemoryStore) Set(ctx context.Context, collection, id string, data map[string]interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := make(map[string]interface{}, len(data))
	for k, v := range data {
		doc[k] = resolveMemoryValue(nil, v)
	}
	if s.collections[collection] == nil {
		s.collections[collection] = make(map[string]map[string]interface{})
	}
	s.collections[collection][id] = doc
	return nil
}

// Get retrieves a document by ID
func (s *MemoryStore) Get(ctx context.Context, collection, id string) (*Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.collections[collection][id]
	if !ok {
		return nil, ErrNotFound
	}
	return &Document{ID: id, Data: deepCopyMap(doc)}, nil
}

// List retrieves all documents in a collection ordered by the given field
func (s *MemoryStore) List(ctx context.Context, collection, orderBy string, desc bool) ([]*Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var docs []*Document
	for id, doc := range s.collections[collection] {
		docs = append(docs, &Document{ID: id, Data: deepCopyMap(doc)})
	}

	sort.Slice(docs, func(i, j int) bool {
		less := lessValue(docs[i].Data[orderBy], docs[j].Data[orderBy], docs[i].ID, docs[j].ID)
		if desc {
			return !less
		}
		return less
	})
	return docs, nil
}

// Query retrieves documents whose field equals value
func (s *MemoryStore) Query(ctx context.Context, collection, field string, value interface{}) ([]*Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var docs []*Document
	for id, doc := range s.collections[collection] {
		if reflect.DeepEqual(doc[field], value) {
			docs = append(docs, &Document{ID: id, Data: deepCopyMap(doc)})
		}
	}
	sort.Slice(docs, func(i, j int) bool { return docs[i].ID < docs[j].ID })
	return docs, nil
}

// Update applies field updates to an existing document
func (s *MemoryStore) Update(ctx context.Context, collection, id string, updates []Update) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.collections[collection][id]
	if !ok {
		return ErrNotFound
	}
	for _, u := range updates {
		doc[u.Path] = resolveMemoryValue(doc[u.Path], u.Value)
	}
	return nil
}

// Delete removes a document; deleting an absent document succeeds
func (s *MemoryStore) Delete(ctx context.Context, collection, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.collections[collection], id)
	return nil
}

// Close is a no-op for the in-memory store
func (s *MemoryStore) Close() error { return nil }

// resolveMemoryValue applies transform sentinels against the current field value
func resolveMemoryValue(current, v interface{}) interface{} {
	switch tv := v.(type) {
	case ServerTimestampValue:
		return time.Now().UTC()
	case ArrayUnionValue:
		arr := toSlice(current)
		for _, elem := range tv.Elems {
			if !containsElem(arr, elem) {
				arr = append(arr, deepCopyValue(elem))
			}
		}
		return arr
	case ArrayRemoveValue:
		arr := toSlice(current)
		kept := make([]interface{}, 0, len(arr))
		for _, existing := range arr {
			if !containsElem(tv.Elems, existing) {
				kept = append(kept, existing)
			}
		}
		return kept
	default:
		return deepCopyValue(v)
	}
}

func toSlice(v interface{}) []interface{} {
	if arr, ok := v.([]interface{}); ok {
		return arr
	}
	return []interface{}{}
}

func containsElem(arr []interface{}, elem interface{}) bool {
	for _, existing := range arr {
		if reflect.DeepEqual(existing, elem) {
			return true
		}
	}
	return false
}

func deepCopyMap(m map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(m))
	for k, v := range m {
		out[k] = deepCopyValue(v)
	}
	return out
}

func deepCopyValue(v interface{}) interface{} {
	switch tv := v.(type) {
	case map[string]interface{}:
		return deepCopyMap(tv)
	case []interface{}:
		out := make([]interface{}, len(tv))
		for i, e := range tv {
			out[i] = deepCopyValue(e)
		}
		return out
	default:
		return v
	}
}

// lessValue orders documents by a field, falling back to ID for stability
func lessValue(a, b interface{}, aID, bID string) bool {
	at, aok := a.(time.Time)
	bt, bok := b.(time.Time)
	if aok && bok {
		if !at.Equal(bt) {
			return at.Before(bt)
		}
		return aID < bID
	}
	as, aok := a.(string)
	bs, bok := b.(string)
	if aok && bok && as != bs {
		return as < bs
	}
	return aID < bID
}
