package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/glowhub/salon-scheduler/internal/config"
	dbpkg "github.com/glowhub/salon-scheduler/internal/db"
	"github.com/glowhub/salon-scheduler/internal/logger"
	"github.com/glowhub/salon-scheduler/internal/routes"
)

func main() {

	logger.Init()

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg)

	logger.L().Info("server running", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		logger.L().Fatal("failed to start server", zap.Error(err))
	}
}
