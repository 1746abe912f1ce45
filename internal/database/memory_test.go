package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_GetByID(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	t.Run("returns ErrNotFound for absent id", func(t *testing.T) {
		_, err := store.GetByID(ctx, CollectionBooks, "missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("returns the stored body with the id", func(t *testing.T) {
		id, err := store.Insert(ctx, CollectionBooks, map[string]any{"title": "Dune"})
		require.NoError(t, err)

		doc, err := store.GetByID(ctx, CollectionBooks, id)
		require.NoError(t, err)
		assert.Equal(t, id, doc.ID)
		assert.Equal(t, "Dune", doc.Fields["title"])
	})
}

func TestMemory_Insert_AssignsDistinctIDs(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	first, err := store.Insert(ctx, CollectionAuthors, map[string]any{"email": "a@x.com"})
	require.NoError(t, err)
	second, err := store.Insert(ctx, CollectionAuthors, map[string]any{"email": "a@x.com"})
	require.NoError(t, err)

	assert.NotEmpty(t, first)
	assert.NotEqual(t, first, second)
}

func TestMemory_QueryEquals(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	_, err := store.Insert(ctx, CollectionBooks, map[string]any{"uid": "user-1", "title": "Mine"})
	require.NoError(t, err)
	_, err = store.Insert(ctx, CollectionBooks, map[string]any{"uid": "user-2", "title": "Theirs"})
	require.NoError(t, err)

	docs, err := store.QueryEquals(ctx, CollectionBooks, "uid", "user-1")
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "Mine", docs[0].Fields["title"])

	none, err := store.QueryEquals(ctx, CollectionBooks, "uid", "nobody")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestMemory_QueryAll_InsertionOrder(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	for _, title := range []string{"first", "second", "third"} {
		_, err := store.Insert(ctx, CollectionBooks, map[string]any{"title": title})
		require.NoError(t, err)
	}

	docs, err := store.QueryAll(ctx, CollectionBooks)
	require.NoError(t, err)
	require.Len(t, docs, 3)
	assert.Equal(t, "first", docs[0].Fields["title"])
	assert.Equal(t, "third", docs[2].Fields["title"])
}

func TestMemory_UpdateMerge(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	t.Run("overwrites only the given fields", func(t *testing.T) {
		id, err := store.Insert(ctx, CollectionBooks, map[string]any{
			"title": "Old Title",
			"price": "10",
		})
		require.NoError(t, err)

		require.NoError(t, store.UpdateMerge(ctx, CollectionBooks, id, map[string]any{"title": "New Title"}))

		doc, err := store.GetByID(ctx, CollectionBooks, id)
		require.NoError(t, err)
		assert.Equal(t, "New Title", doc.Fields["title"])
		assert.Equal(t, "10", doc.Fields["price"])
	})

	t.Run("rejects an absent id without creating a document", func(t *testing.T) {
		err := store.UpdateMerge(ctx, CollectionBooks, "fresh-id", map[string]any{"title": "Created"})
		assert.ErrorIs(t, err, ErrNotFound)

		_, err = store.GetByID(ctx, CollectionBooks, "fresh-id")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestMemory_DeleteByID(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	id, err := store.Insert(ctx, CollectionBooks, map[string]any{"title": "Doomed"})
	require.NoError(t, err)

	require.NoError(t, store.DeleteByID(ctx, CollectionBooks, id))
	_, err = store.GetByID(ctx, CollectionBooks, id)
	assert.ErrorIs(t, err, ErrNotFound)

	// Deleting an already-absent id is indistinguishable from success.
	assert.NoError(t, store.DeleteByID(ctx, CollectionBooks, id))
}

func TestMemory_ReturnsCopies(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	id, err := store.Insert(ctx, CollectionBooks, map[string]any{"title": "Stable"})
	require.NoError(t, err)

	doc, err := store.GetByID(ctx, CollectionBooks, id)
	require.NoError(t, err)
	doc.Fields["title"] = "Mutated"

	again, err := store.GetByID(ctx, CollectionBooks, id)
	require.NoError(t, err)
	assert.Equal(t, "Stable", again.Fields["title"])
}
