package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bookcase-app/bookcase/internal/entities"
)

// AuthorsStore defines the repository operations used by the authors API.
type AuthorsStore interface {
	Get(ctx context.Context, id string) (entities.Author, error)
	List(ctx context.Context, uid string) ([]entities.Author, error)
	Create(ctx context.Context, input entities.NewAuthor) (entities.Author, error)
	Update(ctx context.Context, id string, patch entities.AuthorPatch) error
	Delete(ctx context.Context, id string) error
}

type AuthorsController struct {
	store AuthorsStore
}

func NewAuthorsController(store AuthorsStore) *AuthorsController {
	return &AuthorsController{store: store}
}

// ListAuthors returns the caller's authors.
// GET /api/authors?uid=...
func (ac *AuthorsController) ListAuthors(c *gin.Context) {
	uid, ok := requireQuery(c, "uid")
	if !ok {
		return
	}

	authors, err := ac.store.List(c.Request.Context(), uid)
	if err != nil {
		respondInternalError(c, err, "list authors")
		return
	}

	c.JSON(http.StatusOK, authors)
}

// GetAuthor returns a single author.
// GET /api/authors/:id
func (ac *AuthorsController) GetAuthor(c *gin.Context) {
	author, err := ac.store.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondRepositoryError(c, err, "author", "get author")
		return
	}

	c.JSON(http.StatusOK, author)
}

// CreateAuthor creates a new author from the JSON body.
// POST /api/authors
func (ac *AuthorsController) CreateAuthor(c *gin.Context) {
	var input entities.NewAuthor
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	author, err := ac.store.Create(c.Request.Context(), input)
	if err != nil {
		respondRepositoryError(c, err, "author", "create author")
		return
	}

	c.JSON(http.StatusCreated, author)
}

// UpdateAuthor merges a partial body over the stored author.
// PATCH /api/authors/:id
func (ac *AuthorsController) UpdateAuthor(c *gin.Context) {
	id := c.Param("id")

	var patch entities.AuthorPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	if err := ac.store.Update(c.Request.Context(), id, patch); err != nil {
		respondRepositoryError(c, err, "author", "update author")
		return
	}

	c.JSON(http.StatusOK, MutationResponse{Success: true, FirebaseKey: id})
}

// DeleteAuthor removes an author. Their books are left in place, even
// though their author_id now dangles.
// DELETE /api/authors/:id
func (ac *AuthorsController) DeleteAuthor(c *gin.Context) {
	if err := ac.store.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondRepositoryError(c, err, "author", "delete author")
		return
	}

	c.JSON(http.StatusOK, MutationResponse{Success: true})
}
