package routes

import (
	"os"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/mwhitfield/shopcore/controllers"
	"github.com/mwhitfield/shopcore/middleware"
)

// SetupRouter initializes and returns the Gin router with all routes
func SetupRouter() *gin.Engine {
	router := gin.Default()

	// Session middleware carries the active cart id across requests
	sessionKey := os.Getenv("SESSION_KEY")
	if sessionKey == "" {
		sessionKey = "shopcore-dev-key"
	}
	store := cookie.NewStore([]byte(sessionKey))
	store.Options(sessions.Options{
		MaxAge:   60 * 60 * 24, // 1 day
		Path:     "/",
		Secure:   false, // Set to true in production with HTTPS
		HttpOnly: true,
	})
	router.Use(sessions.Sessions("shopcore", store))

	// API version group
	api := router.Group("/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", controllers.Register)
			auth.POST("/login", controllers.Login)
		}

		// Cart works for guests and logged-in users alike
		cart := api.Group("/cart")
		{
			cart.GET("", controllers.GetCart)
			cart.POST("/items", controllers.AddCartItem)
			cart.PUT("/items/:productId", controllers.UpdateCartItem)
			cart.DELETE("/items/:productId", controllers.RemoveCartItem)
		}

		// Address book (protected)
		addresses := api.Group("/addresses")
		addresses.Use(middleware.AuthMiddleware())
		{
			addresses.GET("", controllers.GetAddresses)
			addresses.GET("/:id", controllers.GetAddress)
			addresses.POST("", controllers.AddAddress)
			addresses.PUT("/:id", controllers.EditAddress)
			addresses.DELETE("/:id", controllers.DeleteAddress)
		}

		// Payment methods (protected)
		payments := api.Group("/payments")
		payments.Use(middleware.AuthMiddleware())
		{
			payments.GET("", controllers.GetAllPayments)
			payments.GET("/:id", controllers.GetPayment)
			payments.POST("", controllers.PostPayment)
			payments.PUT("/:id", controllers.PutPayment)
			payments.DELETE("/:id", controllers.DeletePayment)
		}
	}

	return router
}
