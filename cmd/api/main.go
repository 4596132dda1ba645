package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/iamasit07/connect4/engine/internal/config"
	"github.com/iamasit07/connect4/engine/internal/service/bot"
	"github.com/iamasit07/connect4/engine/internal/service/cleanup"
	"github.com/iamasit07/connect4/engine/internal/service/game"
	transportHttp "github.com/iamasit07/connect4/engine/internal/transport/http"
	"github.com/iamasit07/connect4/engine/internal/transport/http/middleware"
	"github.com/iamasit07/connect4/engine/internal/transport/websocket"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		if err := godotenv.Load("../.env"); err != nil {
			log.Println("No .env file found")
		}
	}

	cfg := config.LoadConfig()
	log.Printf("Board %dx%d, search depth %d, default bot %s",
		cfg.BoardRows, cfg.BoardColumns, cfg.SearchDepth, cfg.BotDifficulty)

	// 1. Initialize Services (Business Logic Layer)
	connManager := websocket.NewConnectionManager()
	sessionManager := game.NewSessionManager(game.ManagerOptions{
		Rows:        cfg.BoardRows,
		Columns:     cfg.BoardColumns,
		SearchDepth: cfg.SearchDepth,
		Notifier:    connManager,
	})
	gameService := game.NewService(sessionManager, cfg.SearchDepth)

	// 2. Initialize Background Workers
	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	cleanupWorker := cleanup.NewWorker(sessionManager, cfg.SessionIdleTTL, cfg.SessionFinishedTTL, cfg.CleanupInterval)
	cleanupWorker.Start(ctx)

	// 3. Initialize Handlers (API Layer)
	gameHandler := transportHttp.NewGameHandler(sessionManager, bot.ParseDifficulty(cfg.BotDifficulty))
	engineHandler := transportHttp.NewEngineHandler(gameService, cfg.BoardRows, cfg.BoardColumns)
	wsHandler := websocket.NewHandler(connManager, sessionManager)

	// 4. Setup Gin Router
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	transportHttp.RegisterRoutes(router, gameHandler, engineHandler)
	router.GET("/ws", wsHandler.HandleWebSocket)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("Server is shutting down...")

	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	sessionManager.Shutdown()

	log.Println("Server exited gracefully")
}
