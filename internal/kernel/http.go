// Package kernel assembles the HTTP surface: the global middleware stack,
// the application routes, and the operational endpoints.
package kernel

import (
	"net/http"
	"time"

	"github.com/devtushar001/ietark/app/routes"
	"github.com/devtushar001/ietark/pkg/metrics"
	"github.com/devtushar001/ietark/pkg/middleware"
	"github.com/devtushar001/ietark/pkg/reqid"
	"github.com/devtushar001/ietark/pkg/response"
	"github.com/devtushar001/ietark/pkg/router"
)

// HTTPKernel owns the router with all middleware and routes mounted.
type HTTPKernel struct {
	router *router.Router
}

// NewHTTPKernel builds the full handler chain. Middleware order matters:
// metrics wraps everything so panics and rate-limited requests still count,
// Recovery sits above the request-scoped middleware, and the request ID must
// be assigned before the logger runs.
func NewHTTPKernel() *HTTPKernel {
	r := router.New()

	r.Use(
		metrics.Middleware(),
		middleware.Recovery,
		reqid.Middleware(),
		middleware.Logger,
		middleware.CORS(middleware.DefaultCORSOptions()),
		middleware.RateLimit(120, time.Minute),
	)

	routes.RegisterAPI(r)

	r.Get("/healthz", "healthz", func(w http.ResponseWriter, _ *http.Request) {
		response.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Get("/metrics", "metrics", metrics.Handler())

	return &HTTPKernel{router: r}
}

// Handler returns the assembled http.Handler.
func (k *HTTPKernel) Handler() http.Handler {
	return k.router.Handler()
}

// Router exposes the underlying router, mainly for route listing.
func (k *HTTPKernel) Router() *router.Router {
	return k.router
}
