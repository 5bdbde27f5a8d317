// Package memory holds process-local adapters used when no external store is
// configured, and in tests.
package memory

import (
	"context"
	"sync"

	"github.com/99minutos/label-system/internal/core/domain"
)

// TemplateStore keeps templates in a map. Stored values are copies, so
// callers can keep mutating what they passed in.
type TemplateStore struct {
	mu        sync.RWMutex
	templates map[string]domain.NamedTemplate
	order     []string
}

func NewTemplateStore() *TemplateStore {
	return &TemplateStore{templates: make(map[string]domain.NamedTemplate)}
}

func (s *TemplateStore) Get(_ context.Context, name string) (*domain.NamedTemplate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.templates[name]
	if !ok {
		return nil, domain.ErrTemplateNotFound
	}
	return &t, nil
}

func (s *TemplateStore) Set(_ context.Context, t *domain.NamedTemplate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.templates[t.Name]; !ok {
		s.order = append(s.order, t.Name)
	}
	s.templates[t.Name] = *t
	return nil
}

func (s *TemplateStore) Delete(_ context.Context, name string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.templates[name]; !ok {
		return false, nil
	}
	delete(s.templates, name)
	for i, n := range s.order {
		if n == name {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true, nil
}

// List returns names in insertion order.
func (s *TemplateStore) List(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]string{}, s.order...), nil
}

func (s *TemplateStore) Ping(_ context.Context) error { return nil }
