package services

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/notice-board/database"
	"github.com/yeremiapane/notice-board/utils"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestExecutor(t *testing.T) *database.Executor {
	utils.InitLogger()
	path := filepath.Join(t.TempDir(), "services.db")
	exec := database.NewExecutor(func() gorm.Dialector {
		return sqlite.Open(path + "?_foreign_keys=on")
	})
	require.NoError(t, database.AutoMigrate(context.Background(), exec))
	return exec
}

// steppingClock advances one minute on every call so created_at values are distinct.
func steppingClock(start time.Time) func() time.Time {
	next := start
	return func() time.Time {
		now := next
		next = next.Add(time.Minute)
		return now
	}
}
