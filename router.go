package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sweetpencilbd/api/handlers"
)

func SetupRouter(h *handlers.Handler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(handlers.RequestIDMiddleware())
	r.Use(handlers.LoggingMiddleware())

	// Liveness
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "server is running on sweetPencilBD")
	})

	r.POST("/login", h.Login)

	// Products
	r.POST("/add-product", h.AddProduct)
	r.GET("/show-product", h.ListProducts)
	r.GET("/products", h.ListProducts)
	r.GET("/stock", h.Stock)
	r.GET("/products-report", h.ProductsReport)
	r.GET("/show-product/:id", h.GetProduct)
	r.GET("/singleProduct/:id", h.GetProduct)
	r.GET("/products/:id", h.GetProduct)
	r.PUT("/updateProduct/:id", h.UpdateProduct)
	r.PUT("/products/:id", h.UpdateProduct)
	r.PUT("/product-info/:id", h.UpdateProductStock)
	r.DELETE("/delete/:id", h.DeleteProduct)
	r.DELETE("/products/:id", h.DeleteProduct)

	// Orders
	r.POST("/place-order", h.PlaceOrder)
	r.GET("/orders", h.ListOrders)
	r.DELETE("/orders/:id", h.DeleteOrder)

	// Customers
	r.POST("/add-customer", h.AddCustomer)
	r.GET("/customers", h.ListCustomers)
	r.DELETE("/customers/:id", h.DeleteCustomer)

	// Banners, gallery, videos
	r.POST("/create-banner", h.CreateBanner)
	r.GET("/get-banner", h.ListBanners)
	r.DELETE("/banner-delete/:id", h.DeleteBanner)
	r.POST("/create-gallery", h.CreateGallery)
	r.GET("/gallery", h.ListGalleries)
	r.DELETE("/gallery-delete/:id", h.DeleteGallery)
	r.POST("/create-video", h.CreateVideo)
	r.GET("/videos", h.ListVideos)
	r.DELETE("/video-delete/:id", h.DeleteVideo)

	// Dashboard
	r.GET("/api/dashboard-counts", h.DashboardCounts)

	return r
}
