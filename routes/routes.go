package routes

import (
	"littlelemon-api/handlers"
	"littlelemon-api/middleware"
	"littlelemon-api/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {
	// ── Public routes ──────────────────────────────────────────────
	r.GET("/menu-items/", handlers.ListMenuItems)
	r.GET("/categories/", handlers.ListCategories)
	r.POST("/register/", handlers.Register)
	r.POST("/api-token-auth/", handlers.ObtainToken)

	// ── Authenticated routes ───────────────────────────────────────
	auth := r.Group("/")
	auth.Use(middleware.AuthRequired())
	{
		auth.POST("/menu-items/", handlers.CreateMenuItem)
		auth.GET("/users/me/", handlers.Me)
		auth.GET("/manager-view/", handlers.ManagerView)

		auth.GET("/cart/", handlers.GetCart)
		auth.POST("/cart/", handlers.AddToCart)
		auth.DELETE("/cart/", handlers.ClearCart)

		auth.GET("/orders/", handlers.GetMyOrders)
		auth.POST("/orders/", handlers.PlaceOrder)
	}

	// ── Manager routes ─────────────────────────────────────────────
	manager := r.Group("/")
	manager.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleManager))
	{
		manager.PATCH("/menu-items/:id/featured/", handlers.UpdateFeatured)
		manager.POST("/groups/delivery-crew/users/", handlers.AddDeliveryCrewUser)
		manager.DELETE("/groups/delivery-crew/users/", handlers.RemoveDeliveryCrewUser)
		manager.PATCH("/orders/:id/assign/", handlers.AssignOrder)
	}

	// ── Delivery crew routes ───────────────────────────────────────
	crew := r.Group("/delivery")
	crew.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleDeliveryCrew))
	{
		crew.GET("/orders/", handlers.GetDeliveryOrders)
		crew.PATCH("/orders/:id/delivered/", handlers.MarkDelivered)
	}

	// ── Admin routes ───────────────────────────────────────────────
	admin := r.Group("/groups/manager")
	admin.Use(middleware.AuthRequired(), middleware.AdminRequired())
	{
		admin.POST("/users/", handlers.AddManagerUser)
		admin.DELETE("/users/", handlers.RemoveManagerUser)
	}
}
