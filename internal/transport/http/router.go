package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tuilatri/Amazon-Clone/internal/domain"
)

type Handlers struct {
	Auth    *AuthHandler
	Profile *ProfileHandler
	Catalog *CatalogHandler
	Cart    *CartHandler
	Order   *OrderHandler
	Admin   *AdminHandler
}

// NewRouter wires every route group: public catalog and auth, the
// token-guarded shopping surface and the admin dashboard.
func NewRouter(h Handlers) *gin.Engine {
	r := gin.Default()
	r.Use(Metrics())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	auth := r.Group("/api/auth")
	{
		auth.POST("/register", h.Auth.Register)
		auth.POST("/login", h.Auth.Login)
		auth.POST("/forgot-password", h.Auth.ForgotPassword)
		auth.POST("/reset-password", h.Auth.ResetPassword)
	}

	catalog := r.Group("/api/products")
	{
		catalog.GET("/home", h.Catalog.Home)
		catalog.GET("/grouped", h.Catalog.Grouped)
		catalog.GET("/search", h.Catalog.Search)
		catalog.GET("/trending", h.Catalog.Trending)
		catalog.GET("/categories", h.Catalog.Categories)
		catalog.GET("/category/:category", h.Catalog.ByCategory)
		catalog.GET("/:id", h.Catalog.Product)
		catalog.GET("/:id/related", h.Catalog.Related)
	}

	user := r.Group("/api", JWTAuth())
	{
		user.GET("/profile", h.Profile.Get)
		user.PUT("/profile", h.Profile.Update)

		user.GET("/cart", h.Cart.Get)
		user.POST("/cart", h.Cart.Add)
		user.PUT("/cart/:productId", h.Cart.UpdateQty)
		user.DELETE("/cart/:productId", h.Cart.Remove)
		user.DELETE("/cart", h.Cart.Clear)

		user.GET("/checkout", h.Order.Checkout)
		user.POST("/orders", h.Order.Create)
		user.GET("/orders", h.Order.List)
		user.GET("/orders/:id", h.Order.Get)
		user.PUT("/orders/:id/cancel", h.Order.Cancel)
	}

	admin := r.Group("/api/admin", JWTAuth(), RequireRole(domain.RoleAdmin.String()))
	{
		admin.GET("/stats", h.Admin.Stats)
		admin.GET("/orders/status-counts", h.Admin.OrderStatusCounts)
		admin.GET("/orders", h.Admin.Orders)
		admin.GET("/orders/:id", h.Admin.Order)
		admin.PUT("/orders/:id/status", h.Admin.SetOrderStatus)

		admin.GET("/users", h.Admin.Users)
		admin.GET("/users/export", h.Admin.ExportCustomers)
		admin.GET("/users/:id", h.Admin.User)
		admin.PUT("/users/:id", h.Admin.UpdateUser)
		admin.PUT("/users/:id/status", h.Admin.SetUserStatus)
		admin.PUT("/users/bulk-status", h.Admin.BulkSetUserStatus)
		admin.GET("/users/:id/orders", h.Admin.UserOrders)
	}

	return r
}
