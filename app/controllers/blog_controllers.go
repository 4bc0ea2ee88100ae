package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/devtushar001/ietark/app/repositories"
	"github.com/devtushar001/ietark/pkg/logger"
	"github.com/devtushar001/ietark/pkg/response"
)

// BlogController serves the blog listing and individual posts.
type BlogController struct {
	blogs *repositories.BlogRepository
}

func NewBlogController() *BlogController {
	return &BlogController{blogs: repositories.NewBlogRepository()}
}

// List returns every blog post, newest first.
//
//	GET /api/blogs
func (c *BlogController) List(w http.ResponseWriter, r *http.Request) {
	posts, err := c.blogs.All()
	if err != nil {
		logger.WithCtx(r.Context()).Error("blog listing failed", "error", err)
		response.ServerError(w, "Could not load blogs")
		return
	}
	response.Success(w, "Blogs fetched", posts)
}

// Show returns a single post by slug.
//
//	GET /api/blogs/{slug}
func (c *BlogController) Show(w http.ResponseWriter, r *http.Request) {
	post, err := c.blogs.FindBySlug(chi.URLParam(r, "slug"))
	if err != nil {
		response.NotFound(w, "Blog not found")
		return
	}
	response.Success(w, "Blog fetched", post)
}
