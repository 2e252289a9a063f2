package server

import (
	handler "catalogue-service/services/catalogue/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application.
// identityHeader names the header that marks a request as coming from a logged-in user.
func SetupRouter(catalogueService handler.CatalogueServiceInterface, identityHeader string) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery()) // recover from panics
	router.Use(RequestIDMiddleware)
	router.Use(RequestLoggerMiddleware) // custom request logging

	catalogueHandler := handler.NewCatalogueHandler(catalogueService)
	requireUser := RequireUser(identityHeader)

	router.GET("/", catalogueHandler.IndexHandler)

	catalogue := router.Group("/catalogue")
	{
		catalogue.GET("/items", catalogueHandler.ListItemsHandler)
		catalogue.GET("/items/:item_id", catalogueHandler.GetItemHandler)
		catalogue.POST("/items", requireUser, catalogueHandler.CreateItemHandler)
		catalogue.POST("/items/:item_id/deactivate", requireUser, catalogueHandler.DeactivateItemHandler)
		catalogue.GET("/search", requireUser, catalogueHandler.SearchItemsHandler)

		catalogue.POST("/sellers", catalogueHandler.CreateSellerHandler)
		catalogue.GET("/sellers", catalogueHandler.ListSellersHandler)
	}

	return router
}
