package authors

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookcase-app/bookcase/internal/database"
	"github.com/bookcase-app/bookcase/internal/entities"
)

func setupRepository(t *testing.T) (*database.Memory, *Repository) {
	t.Helper()
	store := database.NewMemory()
	repo := NewRepository(store)
	repo.now = func() time.Time {
		return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	}
	return store, repo
}

func validAuthor(uid string) entities.NewAuthor {
	return entities.NewAuthor{
		FirstName: "J.R.R.",
		LastName:  "Tolkien",
		Email:     "jrr@x.com",
		UID:       uid,
	}
}

func TestRepository_Create(t *testing.T) {
	t.Run("reports every missing required field", func(t *testing.T) {
		_, repo := setupRepository(t)

		_, err := repo.Create(context.Background(), entities.NewAuthor{})

		var verr *entities.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, []string{"first_name", "last_name", "email", "uid"}, verr.Missing)
	})

	t.Run("reports a single missing field by name", func(t *testing.T) {
		_, repo := setupRepository(t)
		input := validAuthor("user-1")
		input.Email = ""

		_, err := repo.Create(context.Background(), input)

		var verr *entities.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, []string{"email"}, verr.Missing)
	})

	t.Run("applies creation defaults", func(t *testing.T) {
		_, repo := setupRepository(t)

		author, err := repo.Create(context.Background(), validAuthor("user-1"))

		require.NoError(t, err)
		assert.NotEmpty(t, author.FirebaseKey)
		assert.Equal(t, entities.DefaultAuthorImage, author.Image)
		assert.False(t, author.Favorite)
		assert.Equal(t, "2024-05-01T12:00:00Z", author.CreatedAt)
	})

	t.Run("keeps a supplied image and favorite flag", func(t *testing.T) {
		_, repo := setupRepository(t)
		input := validAuthor("user-1")
		input.Image = "/portraits/tolkien.png"
		input.Favorite = true

		author, err := repo.Create(context.Background(), input)

		require.NoError(t, err)
		assert.Equal(t, "/portraits/tolkien.png", author.Image)
		assert.True(t, author.Favorite)
	})
}

func TestRepository_Get(t *testing.T) {
	t.Run("returns the author with its key attached", func(t *testing.T) {
		_, repo := setupRepository(t)
		created, err := repo.Create(context.Background(), validAuthor("user-1"))
		require.NoError(t, err)

		author, err := repo.Get(context.Background(), created.FirebaseKey)

		require.NoError(t, err)
		assert.Equal(t, created.FirebaseKey, author.FirebaseKey)
		assert.Equal(t, "Tolkien", author.LastName)
	})

	t.Run("signals NotFound for an absent id", func(t *testing.T) {
		_, repo := setupRepository(t)

		_, err := repo.Get(context.Background(), "no-such-author")

		assert.ErrorIs(t, err, database.ErrNotFound)
	})
}

func TestRepository_List(t *testing.T) {
	t.Run("filters by owner", func(t *testing.T) {
		_, repo := setupRepository(t)
		_, err := repo.Create(context.Background(), validAuthor("user-1"))
		require.NoError(t, err)
		_, err = repo.Create(context.Background(), validAuthor("user-2"))
		require.NoError(t, err)

		authors, err := repo.List(context.Background(), "user-1")

		require.NoError(t, err)
		require.Len(t, authors, 1)
		assert.Equal(t, "user-1", authors[0].UID)
	})

	t.Run("returns an empty slice without fallback", func(t *testing.T) {
		_, repo := setupRepository(t)
		_, err := repo.Create(context.Background(), validAuthor("user-2"))
		require.NoError(t, err)

		authors, err := repo.List(context.Background(), "user-1")

		require.NoError(t, err)
		assert.NotNil(t, authors)
		assert.Empty(t, authors)
	})
}

func TestRepository_Update(t *testing.T) {
	t.Run("merges only the supplied fields and stamps updatedAt", func(t *testing.T) {
		store, repo := setupRepository(t)
		created, err := repo.Create(context.Background(), validAuthor("user-1"))
		require.NoError(t, err)

		email := "tolkien@middleearth.example"
		err = repo.Update(context.Background(), created.FirebaseKey, entities.AuthorPatch{Email: &email})
		require.NoError(t, err)

		doc, err := store.GetByID(context.Background(), database.CollectionAuthors, created.FirebaseKey)
		require.NoError(t, err)
		assert.Equal(t, email, doc.Fields["email"])
		assert.Equal(t, "J.R.R.", doc.Fields["first_name"])
		assert.Equal(t, "2024-05-01T12:00:00Z", doc.Fields["updatedAt"])
	})
}

func TestRepository_Delete(t *testing.T) {
	t.Run("removes the author", func(t *testing.T) {
		_, repo := setupRepository(t)
		created, err := repo.Create(context.Background(), validAuthor("user-1"))
		require.NoError(t, err)

		require.NoError(t, repo.Delete(context.Background(), created.FirebaseKey))

		_, err = repo.Get(context.Background(), created.FirebaseKey)
		assert.ErrorIs(t, err, database.ErrNotFound)
	})

	t.Run("succeeds for an already-absent id", func(t *testing.T) {
		_, repo := setupRepository(t)
		assert.NoError(t, repo.Delete(context.Background(), "already-gone"))
	})
}
