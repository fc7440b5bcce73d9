package main

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/notice-board/config"
	"github.com/yeremiapane/notice-board/database"
	"github.com/yeremiapane/notice-board/router"
	"github.com/yeremiapane/notice-board/services"
	"github.com/yeremiapane/notice-board/utils"
)

func init() {
	utils.InitLogger()
}

func main() {
	cfg := config.Load()

	if cfg.GinMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	exec := database.NewExecutor(cfg.Dialector)

	ctx := context.Background()
	if err := database.AutoMigrate(ctx, exec); err != nil {
		utils.ErrorLogger.Fatalf("Failed to AutoMigrate: %v", err)
	}

	if cfg.AdminUsername != "" && cfg.AdminPassword != "" {
		if err := services.NewAuthService(exec).EnsureAdmin(ctx, cfg.AdminUsername, cfg.AdminPassword); err != nil {
			utils.ErrorLogger.Fatalf("Failed to seed admin user: %v", err)
		}
	}

	r, err := router.SetupRouter(cfg, exec)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to set up router: %v", err)
	}

	utils.InfoLogger.Printf("Listening on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}
