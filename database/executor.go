package database

import (
	"context"
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/sirupsen/logrus"
	"github.com/yeremiapane/notice-board/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	// ErrStoreFailure covers every connection or statement error. The cause is logged, not returned.
	ErrStoreFailure = errors.New("store operation failed")
	// ErrDuplicate is returned by Execute when a unique constraint rejects the row.
	ErrDuplicate = errors.New("duplicate key")
)

const mysqlDuplicateEntry = 1062

// DialectorFunc builds a fresh dialector for every call.
type DialectorFunc func() gorm.Dialector

// ExecResult is what Execute reports for a successful statement.
type ExecResult struct {
	LastInsertID int64
	RowsAffected int64
}

// Executor is the only path to the database. Every call opens its own connection,
// runs exactly one parameterized statement and closes the connection again.
type Executor struct {
	dial DialectorFunc
}

func NewExecutor(dial DialectorFunc) *Executor {
	return &Executor{dial: dial}
}

func (e *Executor) open(ctx context.Context) (*gorm.DB, func(), error) {
	db, err := gorm.Open(e.dial(), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, err
	}
	sqlDB.SetMaxOpenConns(1)
	closeFn := func() {
		if err := sqlDB.Close(); err != nil {
			utils.ErrorLogger.Warnf("Error closing database connection: %v", err)
		}
	}
	return db.WithContext(ctx), closeFn, nil
}

// QueryOne scans the first row into dest. found is false when no row matched.
func (e *Executor) QueryOne(ctx context.Context, dest interface{}, query string, args ...interface{}) (bool, error) {
	db, closeFn, err := e.open(ctx)
	if err != nil {
		return false, e.fail("connect", query, err)
	}
	defer closeFn()

	result := db.Raw(query, args...).Scan(dest)
	if result.Error != nil {
		return false, e.fail("query one", query, result.Error)
	}
	return result.RowsAffected > 0, nil
}

// QueryMany scans every row into dest, which must point to a slice.
func (e *Executor) QueryMany(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	db, closeFn, err := e.open(ctx)
	if err != nil {
		return e.fail("connect", query, err)
	}
	defer closeFn()

	if err := db.Raw(query, args...).Scan(dest).Error; err != nil {
		return e.fail("query many", query, err)
	}
	return nil
}

// Execute runs a write statement and commits it.
func (e *Executor) Execute(ctx context.Context, query string, args ...interface{}) (ExecResult, error) {
	db, closeFn, err := e.open(ctx)
	if err != nil {
		return ExecResult{}, e.fail("connect", query, err)
	}
	defer closeFn()

	res, err := db.Statement.ConnPool.ExecContext(ctx, query, args...)
	if err != nil {
		if isDuplicate(db, err) {
			utils.InfoLogger.WithField("query", query).Info("Unique constraint rejected row")
			return ExecResult{}, ErrDuplicate
		}
		return ExecResult{}, e.fail("execute", query, err)
	}

	var out ExecResult
	if out.RowsAffected, err = res.RowsAffected(); err != nil {
		return ExecResult{}, e.fail("rows affected", query, err)
	}
	if out.RowsAffected > 0 {
		if out.LastInsertID, err = res.LastInsertId(); err != nil {
			return ExecResult{}, e.fail("last insert id", query, err)
		}
	}
	return out, nil
}

// Migrate creates or updates the tables for the given models.
func (e *Executor) Migrate(ctx context.Context, dst ...interface{}) error {
	db, closeFn, err := e.open(ctx)
	if err != nil {
		return e.fail("connect", "automigrate", err)
	}
	defer closeFn()

	if err := db.AutoMigrate(dst...); err != nil {
		return e.fail("automigrate", "automigrate", err)
	}
	return nil
}

func (e *Executor) fail(op, query string, err error) error {
	utils.ErrorLogger.WithFields(logrus.Fields{
		"op":    op,
		"query": strings.Join(strings.Fields(query), " "),
	}).Errorf("Error executing query: %v", err)
	return ErrStoreFailure
}

func isDuplicate(db *gorm.DB, err error) bool {
	if translator, ok := db.Dialector.(gorm.ErrorTranslator); ok {
		if errors.Is(translator.Translate(err), gorm.ErrDuplicatedKey) {
			return true
		}
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) && myErr.Number == mysqlDuplicateEntry {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
