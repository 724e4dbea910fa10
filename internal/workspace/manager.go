// Package workspace tracks the documents a client has open, keyed by
// filesystem path.
package workspace

import (
	"fmt"
	"sync"
)

type Manager struct {
	docs map[string]*Document
	mu   sync.RWMutex
}

func NewManager() *Manager {
	return &Manager{docs: make(map[string]*Document)}
}

func (m *Manager) OpenDocument(path, content string) (*Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.docs[path]; exists {
		return nil, fmt.Errorf("document already open: %s", path)
	}

	doc := NewDocument(path, content)
	m.docs[path] = doc
	return doc, nil
}

func (m *Manager) GetDocument(path string) (*Document, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	doc, exists := m.docs[path]
	return doc, exists
}

func (m *Manager) CloseDocument(path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.docs[path]; !exists {
		return fmt.Errorf("document not found: %s", path)
	}
	delete(m.docs, path)
	return nil
}

func (m *Manager) CloseAll() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs = make(map[string]*Document)
}
