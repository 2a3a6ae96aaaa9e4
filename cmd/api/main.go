package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/kohyli/bookstore/docs"
	appauthor "github.com/kohyli/bookstore/internal/application/author"
	appbook "github.com/kohyli/bookstore/internal/application/book"
	apporder "github.com/kohyli/bookstore/internal/application/order"
	appuser "github.com/kohyli/bookstore/internal/application/user"
	"github.com/kohyli/bookstore/internal/domain/user"
	"github.com/kohyli/bookstore/internal/infrastructure/config"
	"github.com/kohyli/bookstore/internal/infrastructure/persistence/mysql"
	"github.com/kohyli/bookstore/internal/infrastructure/persistence/redis"
	"github.com/kohyli/bookstore/internal/interface/http/handler"
	"github.com/kohyli/bookstore/internal/interface/http/middleware"
	"github.com/kohyli/bookstore/pkg/jwt"
	"github.com/kohyli/bookstore/pkg/metrics"
	"github.com/kohyli/bookstore/pkg/response"
)

// @title           Kohyli Bookstore API
// @version         1.0
// @description     书店门面服务:图书/作者目录、用户注册登录、下单与月度畅销榜
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

// main 主程序入口
// 说明:手动依赖注入(wire.go提供等价的注入器定义)
func main() {
	// 1. 加载配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	fmt.Printf("✓ config loaded\n")
	fmt.Printf("  - port: %d\n", cfg.Server.Port)
	fmt.Printf("  - mode: %s\n", cfg.Server.Mode)
	fmt.Printf("  - database: %s:%d/%s\n", cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)
	fmt.Printf("  - redis: %s\n", cfg.Redis.Addr())

	// 2. 初始化指标
	metrics.InitMetrics()

	// 3. 初始化存储连接
	db, err := mysql.NewDB(cfg)
	if err != nil {
		log.Fatalf("failed to init database: %v", err)
	}

	redisClient, err := redis.NewClient(cfg)
	if err != nil {
		log.Fatalf("failed to init redis: %v", err)
	}

	// 4. 依赖注入(手动组装)
	// Repository ← Service ← UseCase ← Handler

	// 基础设施层
	authorRepo := mysql.NewAuthorRepository(db)
	bookRepo := mysql.NewBookRepository(db)
	userRepo := mysql.NewUserRepository(db)
	orderRepo := mysql.NewOrderRepository(db)
	txManager := mysql.NewTxManager(db)
	blacklist := redis.NewTokenBlacklist(redisClient)
	jwtManager := jwt.NewManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpire)

	// 领域层
	userService := user.NewService(userRepo)

	// 应用层
	listBooksUseCase := appbook.NewListBooksUseCase(bookRepo)
	getBookUseCase := appbook.NewGetBookUseCase(bookRepo)
	bestsellersUseCase := appbook.NewMonthlyBestsellersUseCase(orderRepo, bookRepo)
	listAuthorsUseCase := appauthor.NewListAuthorsUseCase(authorRepo)
	getAuthorUseCase := appauthor.NewGetAuthorUseCase(authorRepo)
	listAuthorBooksUseCase := appauthor.NewListAuthorBooksUseCase(bookRepo)
	signupUseCase := appuser.NewSignupUseCase(userService)
	loginUseCase := appuser.NewLoginUseCase(userService, jwtManager)
	logoutUseCase := appuser.NewLogoutUseCase(jwtManager, blacklist)
	deleteAccountUseCase := appuser.NewDeleteAccountUseCase(userRepo)
	placeOrderUseCase := apporder.NewPlaceOrderUseCase(orderRepo, bookRepo, userRepo, txManager)
	cancelOrderUseCase := apporder.NewCancelOrderUseCase(orderRepo, txManager)
	getOrderUseCase := apporder.NewGetOrderUseCase(orderRepo, bookRepo)
	listOrdersUseCase := apporder.NewListOrdersUseCase(orderRepo)
	listUserOrdersUseCase := apporder.NewListUserOrdersUseCase(orderRepo)

	// 接口层
	bookHandler := handler.NewBookHandler(listBooksUseCase, getBookUseCase, bestsellersUseCase)
	authorHandler := handler.NewAuthorHandler(listAuthorsUseCase, getAuthorUseCase, listAuthorBooksUseCase)
	userHandler := handler.NewUserHandler(signupUseCase, loginUseCase, logoutUseCase, deleteAccountUseCase, listUserOrdersUseCase)
	orderHandler := handler.NewOrderHandler(placeOrderUseCase, cancelOrderUseCase, getOrderUseCase, listOrdersUseCase)
	authMiddleware := middleware.NewAuthMiddleware(jwtManager, blacklist)

	// 5. 初始化Gin引擎
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()
	r.Use(middleware.Metrics())

	// 6. 注册路由
	registerRoutes(r, bookHandler, authorHandler, userHandler, orderHandler, authMiddleware)

	// 7. 启动服务
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	fmt.Printf("\n🚀 server started\n")
	fmt.Printf("   api:     http://localhost%s\n", addr)
	fmt.Printf("   health:  http://localhost%s/ping\n", addr)
	fmt.Printf("   metrics: http://localhost%s/metrics\n", addr)
	fmt.Printf("   swagger: http://localhost%s/swagger/index.html\n\n", addr)

	if err := r.Run(addr); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}

// registerRoutes 注册路由
func registerRoutes(
	r *gin.Engine,
	bookHandler *handler.BookHandler,
	authorHandler *handler.AuthorHandler,
	userHandler *handler.UserHandler,
	orderHandler *handler.OrderHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	// 欢迎页与健康检查
	r.GET("/", func(c *gin.Context) {
		response.Success(c, gin.H{"message": "Welcome to the Kohyli Bookstore API"})
	})
	r.GET("/ping", func(c *gin.Context) {
		response.Success(c, gin.H{"message": "pong", "status": "healthy"})
	})

	// 可观测性与文档
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 图书模块(公开)
	books := r.Group("/books")
	{
		books.GET("", bookHandler.ListBooks)
		books.GET("/bestsellers/monthly", bookHandler.MonthlyBestsellers)
		books.GET("/:id", bookHandler.GetBook)
	}

	// 作者模块(公开)
	authors := r.Group("/authors")
	{
		authors.GET("", authorHandler.ListAuthors)
		authors.GET("/:id", authorHandler.GetAuthor)
		authors.GET("/:id/books", authorHandler.ListAuthorBooks)
	}

	// 用户模块
	users := r.Group("/users")
	{
		users.POST("/signup", userHandler.Signup)
		users.POST("/login", userHandler.Login)

		// 需要登录
		users.POST("/logout", authMiddleware.RequireAuth(), userHandler.Logout)
		users.DELETE("/delete", authMiddleware.RequireAuth(), userHandler.DeleteAccount)
		users.GET("/orders", authMiddleware.RequireAuth(), userHandler.MyOrders)
	}

	// 订单模块
	orders := r.Group("/orders")
	{
		orders.GET("", orderHandler.ListOrders)
		orders.GET("/:id", orderHandler.GetOrder)
		orders.PATCH("/:id/cancel", orderHandler.CancelOrder)
		orders.POST("/:user_id", orderHandler.PlaceOrder)
	}
}
