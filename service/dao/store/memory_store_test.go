package store

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/fluxblock/service/dao"
)

type record struct {
	ID   string
	Tags []string
}

func newStore() *MemoryStore[string, record] {
	return NewMemoryStore[string, record](func(r *record) string { return r.ID },
		WithFilter[string, record]("tag", func(r *record, value interface{}) bool {
			return strings.Contains(strings.Join(r.Tags, ","), value.(string))
		}))
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := newStore()
	for _, id := range []string{"c", "a", "b"} {
		require.NoError(t, store.Save(ctx, &record{ID: id, Tags: []string{"tag-" + id}}))
	}
	assert.True(t, errors.Is(store.Save(ctx, nil), dao.ErrNilEntity))
	assert.True(t, errors.Is(store.Save(ctx, &record{}), dao.ErrInvalidID))

	require.NoError(t, store.Save(ctx, &record{ID: "c", Tags: []string{"updated"}}))
	records, err := store.List(ctx)
	require.NoError(t, err)
	var ids []string
	for _, r := range records {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []string{"c", "a", "b"}, ids)
	assert.Equal(t, []string{"updated"}, records[0].Tags)

	loaded, err := store.Load(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "a", loaded.ID)

	require.NoError(t, store.Delete(ctx, "a"))
	_, err = store.Load(ctx, "a")
	assert.True(t, errors.Is(err, dao.ErrNotFound))
	assert.True(t, errors.Is(store.Delete(ctx, "a"), dao.ErrNotFound))
	assert.Equal(t, 2, store.Len())
}

func TestMemoryStore_ListFilter(t *testing.T) {
	ctx := context.Background()
	store := newStore()
	require.NoError(t, store.Save(ctx, &record{ID: "1", Tags: []string{"web"}}))
	require.NoError(t, store.Save(ctx, &record{ID: "2", Tags: []string{"electron"}}))

	records, err := store.List(ctx, dao.NewParameter("tag", "web"))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "1", records[0].ID)

	_, err = store.List(ctx, dao.NewParameter("state", "x"))
	assert.True(t, errors.Is(err, dao.ErrUnsupportedParameter))
}
