package http

import (
	"github.com/gin-gonic/gin"

	"github.com/bookcase-app/bookcase/internal/database"
)

// RouterConfig carries the dependencies for the HTTP router. Everything
// is an explicit injected dependency, keeping the controllers testable
// against a substitute store.
type RouterConfig struct {
	Authors AuthorsStore
	Books   BooksStore
	Search  Searcher
	Store   database.Store
	Version string
}

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	authors := NewAuthorsController(cfg.Authors)
	books := NewBooksController(cfg.Books)
	search := NewSearchController(cfg.Search)
	health := NewHealthController(cfg.Store, cfg.Version)

	api := router.Group("/api")
	{
		api.GET("/authors", authors.ListAuthors)
		api.POST("/authors", authors.CreateAuthor)
		api.GET("/authors/:id", authors.GetAuthor)
		api.PATCH("/authors/:id", authors.UpdateAuthor)
		api.DELETE("/authors/:id", authors.DeleteAuthor)

		api.GET("/books", books.ListBooks)
		api.POST("/books", books.CreateBook)
		api.GET("/books/:id", books.GetBook)
		api.PATCH("/books/:id", books.UpdateBook)
		api.DELETE("/books/:id", books.DeleteBook)

		api.GET("/search", search.Search)

		api.GET("/health", health.Status)
	}

	return router
}
