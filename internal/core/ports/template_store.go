package ports

import (
	"context"

	"github.com/99minutos/label-system/internal/core/domain"
)

// TemplateStore is the keyed persistence behind named templates.
// Names are matched exactly: case-sensitive, no trimming.
type TemplateStore interface {
	// Get returns domain.ErrTemplateNotFound when name is absent.
	Get(ctx context.Context, name string) (*domain.NamedTemplate, error)
	// Set inserts or replaces the template stored under t.Name.
	Set(ctx context.Context, t *domain.NamedTemplate) error
	// Delete removes name and reports whether it existed.
	Delete(ctx context.Context, name string) (bool, error)
	// List returns every stored name in the store's native order.
	List(ctx context.Context) ([]string, error)
	// Ping checks the backing medium is reachable.
	Ping(ctx context.Context) error
}
