package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/99minutos/label-system/internal/core/domain"
)

func TestTemplateStore_RoundTrip(t *testing.T) {
	s := NewTemplateStore()
	ctx := context.Background()

	in := &domain.NamedTemplate{Name: "Home", Fields: domain.ShipmentInput{RecipientName: "Ada"}}
	require.NoError(t, s.Set(ctx, in))
	in.Fields.RecipientName = "mutated"

	got, err := s.Get(ctx, "Home")
	require.NoError(t, err)
	assert.Equal(t, "Ada", got.Fields.RecipientName)

	_, err = s.Get(ctx, "home")
	assert.True(t, errors.Is(err, domain.ErrTemplateNotFound), "names are case-sensitive")
}

func TestTemplateStore_ListKeepsInsertionOrder(t *testing.T) {
	s := NewTemplateStore()
	ctx := context.Background()

	for _, n := range []string{"b", "a", "c", "a"} {
		require.NoError(t, s.Set(ctx, &domain.NamedTemplate{Name: n}))
	}
	names, err := s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a", "c"}, names)

	removed, err := s.Delete(ctx, "a")
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = s.Delete(ctx, "a")
	require.NoError(t, err)
	assert.False(t, removed)

	names, _ = s.List(ctx)
	assert.Equal(t, []string{"b", "c"}, names)
}

func TestTemplateStore_Concurrent(t *testing.T) {
	s := NewTemplateStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			name := fmt.Sprintf("t%d", i%10)
			_ = s.Set(ctx, &domain.NamedTemplate{Name: name})
			_, _ = s.Get(ctx, name)
			_, _ = s.List(ctx)
		}(i)
	}
	wg.Wait()

	names, err := s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, names, 10)
}
