package database

import (
	"context"

	"github.com/yeremiapane/notice-board/models"
	"github.com/yeremiapane/notice-board/utils"
)

// AutoMigrate creates the users and notices tables.
func AutoMigrate(ctx context.Context, e *Executor) error {
	if err := e.Migrate(ctx, &models.User{}, &models.Notice{}); err != nil {
		return err
	}
	utils.InfoLogger.Println("AutoMigrate completed.")
	return nil
}
