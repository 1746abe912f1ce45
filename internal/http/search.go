package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bookcase-app/bookcase/internal/entities"
)

// Searcher runs the federated search across books and authors.
type Searcher interface {
	Search(ctx context.Context, uid, query string) (entities.SearchResults, error)
}

type SearchController struct {
	engine Searcher
}

func NewSearchController(engine Searcher) *SearchController {
	return &SearchController{engine: engine}
}

// Search returns the merged book and author matches for a query.
// GET /api/search?uid=...&q=...
func (sc *SearchController) Search(c *gin.Context) {
	results, err := sc.engine.Search(c.Request.Context(), c.Query("uid"), c.Query("q"))
	if err != nil {
		respondRepositoryError(c, err, "search", "search")
		return
	}

	c.JSON(http.StatusOK, results)
}
