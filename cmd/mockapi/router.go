package main

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "wallet/internal/docs" // Swagger docs
	"wallet/internal/handlers"
	"wallet/internal/middleware"
	"wallet/internal/services"
)

type routerDeps struct {
	apiKey             string
	accountService     services.AccountServicer
	transactionService services.TransactionServicer
	db                 handlers.Pinger
}

func newRouter(deps routerDeps) *gin.Engine {
	accountHandler := handlers.NewAccountHandler(deps.accountService)
	transactionHandler := handlers.NewTransactionHandler(deps.transactionService)
	healthHandler := handlers.NewHealthHandler(deps.db)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.CORS())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", healthHandler.Health)

	v1 := router.Group("/api/v1")
	v1.Use(middleware.APIKeyAuth(deps.apiKey))

	accounts := v1.Group("/accounts")
	accounts.GET("", accountHandler.ListAccounts)
	accounts.GET("/:id", accountHandler.GetAccountByID)

	transactions := v1.Group("/transactions")
	transactions.GET("", transactionHandler.ListTransactions)
	transactions.POST("", transactionHandler.CreateTransaction)

	return router
}
