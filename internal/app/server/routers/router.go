package routers

import (
	"github.com/gin-gonic/gin"

	"fooddel/backend/internal/app/pkg/logger"
	"fooddel/backend/internal/app/server/handlers/cart"
	"fooddel/backend/internal/app/server/handlers/order"
	"fooddel/backend/internal/app/server/handlers/user"
	"fooddel/backend/internal/app/server/middlewares"
)

// SetupRoutes 配置所有路由，使用 Route Group 分类
func SetupRoutes(
	orderHandler *order.OrderHandler,
	userHandler *user.UserHandler,
	cartHandler *cart.CartHandler,
	log logger.Logger,
	jwtSecret string,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(middlewares.CORS())
	r.Use(middlewares.Logger(log))
	r.Use(middlewares.ErrorHandler())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": "fooddel-backend",
			"message": "Service is running",
		})
	})

	api := r.Group("/api")
	{
		orders := api.Group("/order")
		{
			orders.POST("/place", orderHandler.Place)
			orders.GET("/list", orderHandler.List)
			orders.POST("/status", orderHandler.UpdateStatus)
			orders.POST("/verify", orderHandler.Verify)
			orders.GET("/userorders", middlewares.Auth(jwtSecret), orderHandler.UserOrders)
		}

		users := api.Group("/user")
		{
			users.POST("/register", userHandler.Register)
			users.POST("/login", userHandler.Login)
			users.POST("/otp", userHandler.VerifyOTP)
		}

		carts := api.Group("/cart", middlewares.Auth(jwtSecret))
		{
			carts.POST("/add", cartHandler.Add)
			carts.POST("/remove", cartHandler.Remove)
			carts.GET("/get", cartHandler.Get)
		}
	}

	return r
}
