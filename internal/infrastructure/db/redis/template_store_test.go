package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/99minutos/label-system/internal/core/domain"
)

func newTestStore(t *testing.T) (*TemplateStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client, err := Connect(context.Background(), Config{Addr: mr.Addr()})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return NewTemplateStore(client, ""), mr
}

func TestTemplateStore_SetGet(t *testing.T) {
	s, mr := newTestStore(t)
	ctx := context.Background()

	updated := time.Date(2025, time.April, 7, 9, 0, 0, 0, time.UTC)
	in := &domain.NamedTemplate{
		Name:      "warehouse",
		Fields:    domain.ShipmentInput{Courier: "dpd", RecipientPostcode: "N4 9PT", SignatureRequired: true},
		UpdatedAt: updated,
	}
	require.NoError(t, s.Set(ctx, in))

	got, err := s.Get(ctx, "warehouse")
	require.NoError(t, err)
	assert.Equal(t, in.Fields, got.Fields)
	assert.True(t, updated.Equal(got.UpdatedAt))

	raw := mr.HGet(DefaultTemplatesKey, "warehouse")
	assert.Contains(t, raw, `"recipient_postcode":"N4 9PT"`)
}

func TestTemplateStore_Missing(t *testing.T) {
	s, _ := newTestStore(t)

	_, err := s.Get(context.Background(), "nope")
	assert.True(t, errors.Is(err, domain.ErrTemplateNotFound))
}

func TestTemplateStore_DeleteAndList(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	for _, n := range []string{"zeta", "alpha"} {
		require.NoError(t, s.Set(ctx, &domain.NamedTemplate{Name: n}))
	}
	names, err := s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "zeta"}, names)

	removed, err := s.Delete(ctx, "zeta")
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = s.Delete(ctx, "zeta")
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestTemplateStore_CorruptValue(t *testing.T) {
	s, mr := newTestStore(t)
	mr.HSet(DefaultTemplatesKey, "broken", "{not json")

	_, err := s.Get(context.Background(), "broken")
	require.Error(t, err)
	assert.False(t, errors.Is(err, domain.ErrTemplateNotFound))
}

func TestTemplateStore_PingFailsWhenServerStops(t *testing.T) {
	s, mr := newTestStore(t)
	require.NoError(t, s.Ping(context.Background()))

	mr.Close()
	assert.Error(t, s.Ping(context.Background()))
}
