package routes

import (
	"github.com/devtushar001/ietark/app/controllers"
	"github.com/devtushar001/ietark/app/repositories"
	"github.com/devtushar001/ietark/app/services"
	"github.com/devtushar001/ietark/config"
	"github.com/devtushar001/ietark/pkg/middleware"
	"github.com/devtushar001/ietark/pkg/razorpay"
	"github.com/devtushar001/ietark/pkg/router"
)

// RegisterAPI mounts every /api route. The catalogue, blog and product
// listings are public; the order routes require a bearer token.
func RegisterAPI(r *router.Router) {
	catalogController := controllers.NewCatalogController()
	blogController := controllers.NewBlogController()
	productController := controllers.NewProductController()

	userRepo := repositories.NewUserRepository()
	orderRepo := repositories.NewOrderRepository()
	checkout := services.NewCheckoutService(
		razorpay.New(config.RazorpayKeyID(), config.RazorpayKeySecret()),
		repositories.NewProductRepository(),
		orderRepo,
		userRepo,
	)
	orderController := controllers.NewOrderController(checkout, userRepo, orderRepo)

	api := r.Group("/api")

	api.Get("/tools", "tools.index", catalogController.List)
	api.Get("/tools/categories", "tools.categories", catalogController.Categories)
	api.Get("/tools/{id}", "tools.show", catalogController.Show)

	api.Get("/blogs", "blogs.index", blogController.List)
	api.Get("/blogs/{slug}", "blogs.show", blogController.Show)

	api.Get("/products", "products.index", productController.List)
	api.Get("/products/{id}", "products.show", productController.Show)

	order := api.Group("/order", middleware.Auth)
	order.Get("", "order.index", orderController.MyOrders)
	order.Post("/create", "order.create", orderController.PlaceOrder)
	order.Post("/verify", "order.verify", orderController.VerifyPayment)
}
