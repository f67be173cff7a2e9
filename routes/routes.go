package routes

import (
	"HighStakes/controllers"
	"HighStakes/middleware"
	"HighStakes/services/game"
	utils "HighStakes/utils"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, manager *game.Manager, tokens *middleware.RunTokens) {
	// utils global
	router.Use(utils.ErrorHandler())

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/")

	api.GET("/ping", controllers.Ping)

	api.POST("/evaluate", controllers.Evaluate())

	api.POST("/run", controllers.CreateRun(manager, tokens))

	run := api.Group("/run")
	run.Use(middleware.RunRequired(tokens))
	{
		run.GET("/me", controllers.GetRun(manager))

		run.POST("/select", controllers.SelectCard(manager))

		run.GET("/preview", controllers.PreviewHand(manager))

		run.POST("/play", controllers.PlayHand(manager))

		run.POST("/discard", controllers.DiscardCards(manager))

		run.POST("/sort", controllers.SortHand(manager))

		run.GET("/deck", controllers.GetDeck(manager))

		run.GET("/hint", controllers.GetHint(manager))

		run.POST("/restart", controllers.RestartRun(manager))

		run.DELETE("", controllers.EndRun(manager))
	}
}
