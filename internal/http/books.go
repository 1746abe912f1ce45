package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bookcase-app/bookcase/internal/entities"
)

// BooksStore defines the repository operations used by the books API.
type BooksStore interface {
	Get(ctx context.Context, id string) (entities.Book, error)
	List(ctx context.Context, uid string) ([]entities.Book, error)
	Create(ctx context.Context, input entities.NewBook) (entities.Book, error)
	Update(ctx context.Context, id string, patch entities.BookPatch) error
	Delete(ctx context.Context, id string) error
}

type BooksController struct {
	store BooksStore
}

func NewBooksController(store BooksStore) *BooksController {
	return &BooksController{store: store}
}

// ListBooks returns the caller's books, with the unowned-data fallback
// applied by the repository.
// GET /api/books?uid=...
func (bc *BooksController) ListBooks(c *gin.Context) {
	uid, ok := requireQuery(c, "uid")
	if !ok {
		return
	}

	books, err := bc.store.List(c.Request.Context(), uid)
	if err != nil {
		respondInternalError(c, err, "list books")
		return
	}

	c.JSON(http.StatusOK, books)
}

// GetBook returns a single book, price always numeric.
// GET /api/books/:id
func (bc *BooksController) GetBook(c *gin.Context) {
	book, err := bc.store.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondRepositoryError(c, err, "book", "get book")
		return
	}

	c.JSON(http.StatusOK, book)
}

// CreateBook creates a new book from the JSON body.
// POST /api/books
func (bc *BooksController) CreateBook(c *gin.Context) {
	var input entities.NewBook
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	book, err := bc.store.Create(c.Request.Context(), input)
	if err != nil {
		respondRepositoryError(c, err, "book", "create book")
		return
	}

	c.JSON(http.StatusCreated, book)
}

// UpdateBook merges a partial body over the stored book.
// PATCH /api/books/:id
func (bc *BooksController) UpdateBook(c *gin.Context) {
	id := c.Param("id")

	var patch entities.BookPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	if err := bc.store.Update(c.Request.Context(), id, patch); err != nil {
		respondRepositoryError(c, err, "book", "update book")
		return
	}

	c.JSON(http.StatusOK, MutationResponse{Success: true, FirebaseKey: id})
}

// DeleteBook removes a book. No cascade in either direction.
// DELETE /api/books/:id
func (bc *BooksController) DeleteBook(c *gin.Context) {
	if err := bc.store.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondRepositoryError(c, err, "book", "delete book")
		return
	}

	c.JSON(http.StatusOK, MutationResponse{Success: true})
}
