package main

import (
	"HighStakes/config"
	_ "HighStakes/config/swagger"
	"HighStakes/middleware"
	"HighStakes/routes"
	"HighStakes/services/game"
	"HighStakes/services/socket_io"
	"HighStakes/utils"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
)

// @title High Stakes API
// @version 1.0
// @description Gin-Gonic server for the "High Stakes" card game
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
func main() {
	log.Println("Setting up server...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	if cfg.Prod {
		gin.SetMode(gin.ReleaseMode)
	}

	manager := game.NewManager(nil)
	tokens := middleware.NewRunTokens(cfg.JWTSecret, cfg.RunTokenTTL)

	r := gin.New()
	r.Use(gin.Recovery(), utils.Logger())

	middleware.SetUpMiddleware(r, cfg)

	routes.SetupRoutes(r, manager, tokens)

	sio := &socket_io.MySocketServer{}
	sio.Start(r, manager, tokens, cfg)

	go pruneIdleRuns(manager, cfg.RunIdleTTL)

	SignalC := make(chan os.Signal, 1)
	signal.Notify(SignalC, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	go func() {
		s := <-SignalC
		log.Printf("Received %v, shutting down", s)
		sio.Close()
		os.Exit(0)
	}()

	log.Printf("Server starting on port %s", cfg.Port)
	if cfg.UseHTTPS {
		if err := r.RunTLS(":"+cfg.Port, cfg.CertFile, cfg.KeyFile); err != nil {
			log.Fatalf("Error starting server: %v", err)
		}
	} else {
		if err := r.Run(":" + cfg.Port); err != nil {
			log.Fatalf("Error starting server: %v", err)
		}
	}
}

func pruneIdleRuns(manager *game.Manager, maxIdle time.Duration) {
	interval := max(maxIdle/4, time.Second)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for range ticker.C {
		if n := manager.Prune(maxIdle); n > 0 {
			log.Printf("[RUN-PRUNE] dropped %d idle runs, %d live", n, manager.Len())
		}
	}
}
