package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/devtushar001/ietark/app/repositories"
	"github.com/devtushar001/ietark/pkg/logger"
	"github.com/devtushar001/ietark/pkg/response"
)

// ProductController serves the shop's product listing.
type ProductController struct {
	products *repositories.ProductRepository
}

func NewProductController() *ProductController {
	return &ProductController{products: repositories.NewProductRepository()}
}

// List returns every product in the shop.
//
//	GET /api/products
func (c *ProductController) List(w http.ResponseWriter, r *http.Request) {
	products, err := c.products.All()
	if err != nil {
		logger.WithCtx(r.Context()).Error("product listing failed", "error", err)
		response.ServerError(w, "Could not load products")
		return
	}
	response.Success(w, "Products fetched", products)
}

// Show returns a single product by id.
//
//	GET /api/products/{id}
func (c *ProductController) Show(w http.ResponseWriter, r *http.Request) {
	product, err := c.products.FindByID(chi.URLParam(r, "id"))
	if err != nil {
		response.NotFound(w, "Product not found")
		return
	}
	response.Success(w, "Product fetched", product)
}
