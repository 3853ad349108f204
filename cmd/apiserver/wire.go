package main

import (
	"github.com/gin-gonic/gin"

	"fooddel/backend/internal/app/config"
	"fooddel/backend/internal/app/domains/modules/mdorder"
	"fooddel/backend/internal/app/domains/modules/mduser"
	"fooddel/backend/internal/app/domains/repo/rporder"
	"fooddel/backend/internal/app/domains/repo/rpuser"
	"fooddel/backend/internal/app/domains/services/svcart"
	"fooddel/backend/internal/app/domains/services/svorder"
	"fooddel/backend/internal/app/domains/services/svuser"
	"fooddel/backend/internal/app/infra/persistence/mysql"
	"fooddel/backend/internal/app/infra/persistence/redis"
	"fooddel/backend/internal/app/pkg/logger"
	"fooddel/backend/internal/app/server/handlers/cart"
	"fooddel/backend/internal/app/server/handlers/order"
	"fooddel/backend/internal/app/server/handlers/user"
	"fooddel/backend/internal/app/server/routers"
)

// App 应用聚合
type App struct {
	Engine *gin.Engine
	Logger logger.Logger
}

// InitializeApp 手工依赖装配
func InitializeApp(cfg *config.Config) (*App, func(), error) {
	log, err := logger.NewZapLogger(cfg.App.LogLevel)
	if err != nil {
		return nil, nil, err
	}

	db, err := mysql.Open(cfg.MySQL.DSN)
	if err != nil {
		return nil, nil, err
	}

	otpStore, err := redis.NewOTPStore(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		return nil, nil, err
	}

	// 仓储层
	orderRepo := rporder.NewOrderRepository(db)
	userRepo := rpuser.NewUserRepository(db)

	// 模块层
	orderModule := mdorder.NewOrderModule(db, orderRepo, userRepo)
	userModule := mduser.NewUserModule(userRepo)

	// 服务层
	orderService := svorder.NewOrderService(orderModule, log)
	userService := svuser.NewUserService(
		userModule, otpStore, log,
		cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, cfg.Auth.OTPTTL,
	)
	cartService := svcart.NewCartService(userModule)

	// HTTP 层
	orderHandler := order.NewOrderHandler(orderService, log)
	userHandler := user.NewUserHandler(userService, log)
	cartHandler := cart.NewCartHandler(cartService, log)

	engine := routers.SetupRoutes(orderHandler, userHandler, cartHandler, log, cfg.Auth.JWTSecret)

	cleanup := func() {
		_ = otpStore.Close()
		_ = log.Sync()
	}

	return &App{Engine: engine, Logger: log}, cleanup, nil
}
