// Package authors provides catalog operations for author records.
//
// This package implements the AuthorsStore interface defined in
// internal/http/authors.go.
package authors

import (
	"context"
	"time"

	"github.com/bookcase-app/bookcase/internal/database"
	"github.com/bookcase-app/bookcase/internal/entities"
)

// Repository handles author reads and writes against the document store.
//
// Id-based operations (Get, Update, Delete) act on the identifier alone
// and do not re-check ownership: the HTTP layer is trusted to have
// resolved the caller's access to the record.
type Repository struct {
	store database.Store
	now   func() time.Time
}

func NewRepository(store database.Store) *Repository {
	return &Repository{store: store, now: time.Now}
}

// Get returns a single author by its store key.
func (r *Repository) Get(ctx context.Context, id string) (entities.Author, error) {
	doc, err := r.store.GetByID(ctx, database.CollectionAuthors, id)
	if err != nil {
		return entities.Author{}, err
	}
	return entities.AuthorFromDocument(doc.ID, doc.Fields), nil
}

// List returns the authors owned by uid. An owner with no records gets
// an empty slice; unlike books there is no fallback to unowned data.
func (r *Repository) List(ctx context.Context, uid string) ([]entities.Author, error) {
	docs, err := r.store.QueryEquals(ctx, database.CollectionAuthors, "uid", uid)
	if err != nil {
		return nil, err
	}
	authors := make([]entities.Author, 0, len(docs))
	for _, doc := range docs {
		authors = append(authors, entities.AuthorFromDocument(doc.ID, doc.Fields))
	}
	return authors, nil
}

// Create validates and persists a new author. Every missing required
// field is reported in a single ValidationError.
func (r *Repository) Create(ctx context.Context, input entities.NewAuthor) (entities.Author, error) {
	var missing []string
	if input.FirstName == "" {
		missing = append(missing, "first_name")
	}
	if input.LastName == "" {
		missing = append(missing, "last_name")
	}
	if input.Email == "" {
		missing = append(missing, "email")
	}
	if input.UID == "" {
		missing = append(missing, "uid")
	}
	if len(missing) > 0 {
		return entities.Author{}, &entities.ValidationError{Missing: missing}
	}

	image := input.Image
	if image == "" {
		image = entities.DefaultAuthorImage
	}

	fields := map[string]any{
		"first_name": input.FirstName,
		"last_name":  input.LastName,
		"email":      input.Email,
		"image":      image,
		"favorite":   input.Favorite,
		"uid":        input.UID,
		"createdAt":  r.now().UTC().Format(time.RFC3339),
	}
	id, err := r.store.Insert(ctx, database.CollectionAuthors, fields)
	if err != nil {
		return entities.Author{}, err
	}
	return entities.AuthorFromDocument(id, fields), nil
}

// Update merges the patch over the stored document and stamps updatedAt.
// Fields not present in the patch are untouched; an absent id signals
// NotFound.
func (r *Repository) Update(ctx context.Context, id string, patch entities.AuthorPatch) error {
	fields := patch.Fields()
	fields["updatedAt"] = r.now().UTC().Format(time.RFC3339)
	return r.store.UpdateMerge(ctx, database.CollectionAuthors, id, fields)
}

// Delete hard-deletes the author. Books referencing it are left as they
// are; a dangling author_id is a representable state.
func (r *Repository) Delete(ctx context.Context, id string) error {
	return r.store.DeleteByID(ctx, database.CollectionAuthors, id)
}
