// Package search implements the federated catalog search across the
// book and author collections.
package search

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/bookcase-app/bookcase/internal/database"
	"github.com/bookcase-app/bookcase/internal/entities"
)

// Service runs case-insensitive substring queries over both collections
// and merges the matches into one envelope. It scans through the store
// directly rather than the per-entity repositories: the scan is
// read-only and deliberately unscoped, so matches from any owner come
// back stamped with the requesting uid. Results keep store iteration
// order; there is no ranking.
type Service struct {
	store database.Store
}

func NewService(store database.Store) *Service {
	return &Service{store: store}
}

// Search returns every book whose title or description contains the
// query, and every author whose full name or email contains it. Both
// uid and query are required; each missing one is named in the
// ValidationError.
func (s *Service) Search(ctx context.Context, uid, query string) (entities.SearchResults, error) {
	var missing []string
	if uid == "" {
		missing = append(missing, "uid")
	}
	if query == "" {
		missing = append(missing, "q")
	}
	if len(missing) > 0 {
		return entities.SearchResults{}, &entities.ValidationError{Missing: missing}
	}

	needle := strings.ToLower(query)

	// The two collection scans are independent; run them concurrently.
	var bookDocs, authorDocs []database.Document
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		bookDocs, err = s.store.QueryAll(gctx, database.CollectionBooks)
		return err
	})
	g.Go(func() error {
		var err error
		authorDocs, err = s.store.QueryAll(gctx, database.CollectionAuthors)
		return err
	})
	if err := g.Wait(); err != nil {
		return entities.SearchResults{}, err
	}

	results := entities.SearchResults{
		Books:   []entities.Book{},
		Authors: []entities.Author{},
		Query:   needle,
	}

	for _, doc := range bookDocs {
		book := entities.BookFromDocument(doc.ID, doc.Fields)
		if !contains(book.Title, needle) && !contains(book.Description, needle) {
			continue
		}
		book.UID = uid
		book.Type = entities.TypeBook
		results.Books = append(results.Books, book)
	}

	for _, doc := range authorDocs {
		author := entities.AuthorFromDocument(doc.ID, doc.Fields)
		fullName := author.FirstName + " " + author.LastName
		if !contains(fullName, needle) && !contains(author.Email, needle) {
			continue
		}
		author.UID = uid
		author.Type = entities.TypeAuthor
		results.Authors = append(results.Authors, author)
	}

	return results, nil
}

func contains(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), needle)
}
