package http

import "github.com/gin-gonic/gin"

func RegisterRoutes(router gin.IRouter, games *GameHandler, engine *EngineHandler) {
	api := router.Group("/api")
	{
		api.GET("/health", games.Health)

		api.POST("/games", games.CreateGame)
		api.GET("/games/:id", games.GetGame)
		api.POST("/games/:id/moves", games.MakeMove)
		api.POST("/games/:id/reset", games.ResetGame)
		api.DELETE("/games/:id", games.DeleteGame)

		api.POST("/engine/move", engine.SuggestMove)
		api.POST("/engine/evaluate", engine.Evaluate)
		api.POST("/engine/drop", engine.Drop)
	}
}
