package database

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// Memory is an in-memory Store. It mirrors the Firestore semantics the
// repositories rely on (store-assigned ids, field-level merge upserts)
// and iterates documents in insertion order, making it the substitute
// store for unit tests.
type Memory struct {
	mu    sync.RWMutex
	docs  map[string]map[string]map[string]any
	order map[string][]string
}

func NewMemory() *Memory {
	return &Memory{
		docs:  make(map[string]map[string]map[string]any),
		order: make(map[string][]string),
	}
}

func (m *Memory) GetByID(_ context.Context, collection, id string) (Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	fields, ok := m.docs[collection][id]
	if !ok {
		return Document{}, ErrNotFound
	}
	return Document{ID: id, Fields: cloneFields(fields)}, nil
}

func (m *Memory) QueryEquals(_ context.Context, collection, field string, value any) ([]Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var docs []Document
	for _, id := range m.order[collection] {
		fields := m.docs[collection][id]
		if fields[field] == value {
			docs = append(docs, Document{ID: id, Fields: cloneFields(fields)})
		}
	}
	return docs, nil
}

func (m *Memory) QueryAll(_ context.Context, collection string) ([]Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var docs []Document
	for _, id := range m.order[collection] {
		docs = append(docs, Document{ID: id, Fields: cloneFields(m.docs[collection][id])})
	}
	return docs, nil
}

func (m *Memory) Insert(_ context.Context, collection string, fields map[string]any) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.docs[collection] == nil {
		m.docs[collection] = make(map[string]map[string]any)
	}
	id := uuid.NewString()
	m.docs[collection][id] = cloneFields(fields)
	m.order[collection] = append(m.order[collection], id)
	return id, nil
}

func (m *Memory) UpdateMerge(_ context.Context, collection, id string, partial map[string]any) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	fields, ok := m.docs[collection][id]
	if !ok {
		// Same as the Firestore update primitive: no implicit create.
		return ErrNotFound
	}
	for key, value := range partial {
		fields[key] = value
	}
	return nil
}

func (m *Memory) DeleteByID(_ context.Context, collection, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.docs[collection][id]; !ok {
		return nil
	}
	delete(m.docs[collection], id)
	ids := m.order[collection]
	for i, existing := range ids {
		if existing == id {
			m.order[collection] = append(ids[:i], ids[i+1:]...)
			break
		}
	}
	return nil
}

func cloneFields(fields map[string]any) map[string]any {
	out := make(map[string]any, len(fields))
	for key, value := range fields {
		out[key] = value
	}
	return out
}
