package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/devtushar001/ietark/app/catalog"
	"github.com/devtushar001/ietark/pkg/response"
)

// CatalogController serves the static tools/games catalogue.
type CatalogController struct{}

func NewCatalogController() *CatalogController {
	return &CatalogController{}
}

// List returns the full catalogue, or one category of it when ?category= is
// given.
//
//	GET /api/tools
//	GET /api/tools?category=basic
func (c *CatalogController) List(w http.ResponseWriter, r *http.Request) {
	if category := r.URL.Query().Get("category"); category != "" {
		tools := catalog.ByCategory(category)
		if tools == nil {
			response.BadRequest(w, "Unknown category: "+category)
			return
		}
		response.Success(w, "Tools fetched", tools)
		return
	}
	response.Success(w, "Tools fetched", catalog.All())
}

// Show returns a single catalogue entry by id.
//
//	GET /api/tools/{id}
func (c *CatalogController) Show(w http.ResponseWriter, r *http.Request) {
	tool, ok := catalog.ByID(chi.URLParam(r, "id"))
	if !ok {
		response.NotFound(w, "Tool not found")
		return
	}
	response.Success(w, "Tool fetched", tool)
}

// Categories returns the difficulty buckets in display order.
//
//	GET /api/tools/categories
func (c *CatalogController) Categories(w http.ResponseWriter, r *http.Request) {
	response.Success(w, "Categories fetched", catalog.Categories)
}
