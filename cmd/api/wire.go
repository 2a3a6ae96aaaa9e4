//go:build wireinject
// +build wireinject

// Wire依赖注入配置
//
// Wire在编译期生成依赖组装代码:
// Step 1: 编写本文件,定义Providers和Injector
// Step 2: 运行 `wire gen ./cmd/api`
// Step 3: Wire生成wire_gen.go,包含完整的依赖创建代码

package main

import (
	"github.com/gin-gonic/gin"
	"github.com/google/wire"
	goredis "github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	appauthor "github.com/kohyli/bookstore/internal/application/author"
	appbook "github.com/kohyli/bookstore/internal/application/book"
	apporder "github.com/kohyli/bookstore/internal/application/order"
	appuser "github.com/kohyli/bookstore/internal/application/user"
	"github.com/kohyli/bookstore/internal/domain/order"
	"github.com/kohyli/bookstore/internal/domain/user"
	"github.com/kohyli/bookstore/internal/infrastructure/config"
	"github.com/kohyli/bookstore/internal/infrastructure/persistence/mysql"
	"github.com/kohyli/bookstore/internal/infrastructure/persistence/redis"
	"github.com/kohyli/bookstore/internal/interface/http/handler"
	"github.com/kohyli/bookstore/internal/interface/http/middleware"
	"github.com/kohyli/bookstore/pkg/jwt"
	"github.com/kohyli/bookstore/pkg/metrics"
)

// infrastructureSet 基础设施层依赖
var infrastructureSet = wire.NewSet(
	config.Load,
	mysql.NewDB,
	redis.NewClient,
)

// repositorySet 仓储层依赖
var repositorySet = wire.NewSet(
	mysql.NewAuthorRepository,
	mysql.NewBookRepository,
	mysql.NewUserRepository,
	mysql.NewOrderRepository,
	provideTxManager,
)

// domainSet 领域层依赖
var domainSet = wire.NewSet(
	user.NewService,
)

// applicationSet 应用层依赖
var applicationSet = wire.NewSet(
	appbook.NewListBooksUseCase,
	appbook.NewGetBookUseCase,
	appbook.NewMonthlyBestsellersUseCase,
	appauthor.NewListAuthorsUseCase,
	appauthor.NewGetAuthorUseCase,
	appauthor.NewListAuthorBooksUseCase,
	appuser.NewSignupUseCase,
	appuser.NewLoginUseCase,
	appuser.NewLogoutUseCase,
	appuser.NewDeleteAccountUseCase,
	apporder.NewPlaceOrderUseCase,
	apporder.NewCancelOrderUseCase,
	apporder.NewGetOrderUseCase,
	apporder.NewListOrdersUseCase,
	apporder.NewListUserOrdersUseCase,
)

// middlewareSet 中间件依赖
var middlewareSet = wire.NewSet(
	provideJWTManager,
	provideTokenBlacklist,
	middleware.NewAuthMiddleware,
)

// handlerSet HTTP处理器依赖
var handlerSet = wire.NewSet(
	handler.NewBookHandler,
	handler.NewAuthorHandler,
	handler.NewUserHandler,
	handler.NewOrderHandler,
)

// provideJWTManager 从配置创建JWT管理器
func provideJWTManager(cfg *config.Config) *jwt.Manager {
	return jwt.NewManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpire)
}

// provideTokenBlacklist 从Redis客户端创建Token黑名单
func provideTokenBlacklist(client *goredis.Client) *redis.TokenBlacklist {
	return redis.NewTokenBlacklist(client)
}

// provideTxManager 事务管理器(接口绑定)
// 用例依赖order.TxManager接口,此处绑定MySQL实现
func provideTxManager(db *gorm.DB) order.TxManager {
	return mysql.NewTxManager(db)
}

// provideGinEngine 创建并配置Gin引擎
func provideGinEngine(
	cfg *config.Config,
	bookHandler *handler.BookHandler,
	authorHandler *handler.AuthorHandler,
	userHandler *handler.UserHandler,
	orderHandler *handler.OrderHandler,
	authMiddleware *middleware.AuthMiddleware,
) *gin.Engine {
	metrics.InitMetrics()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	r.Use(middleware.Metrics())
	registerRoutes(r, bookHandler, authorHandler, userHandler, orderHandler, authMiddleware)
	return r
}

// InitializeApp 初始化整个应用(Injector)
// Wire会按依赖链顺序调用所有构造函数
func InitializeApp() (*gin.Engine, error) {
	wire.Build(
		infrastructureSet,
		repositorySet,
		domainSet,
		applicationSet,
		middlewareSet,
		handlerSet,
		provideGinEngine,
	)
	return nil, nil
}
