package database

import (
	"context"
	"os"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/waitlist-simple/models"
)

const (
	connectTimeout = 10 * time.Second
	pingTimeout    = 3 * time.Second
)

var (
	mu sync.Mutex
	db *gorm.DB
)

// Conn returns the shared GORM handle, establishing it lazily on first use.
// A broken connection is detected by ping and re-established on the next
// call instead of being held as a fatal state.
func Conn(ctx context.Context) (*gorm.DB, error) {
	mu.Lock()
	defer mu.Unlock()

	if db != nil {
		if err := ping(ctx, db); err == nil {
			return db.WithContext(ctx), nil
		}
		logrus.Warn("Database connection lost, reconnecting")
		db = nil
	}

	conn, err := open(ctx)
	if err != nil {
		return nil, err
	}
	db = conn
	return db.WithContext(ctx), nil
}

// Reset drops the cached handle. The next Conn call reconnects.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	db = nil
}

func open(ctx context.Context) (*gorm.DB, error) {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return nil, errors.New("DATABASE_URL is not set")
	}

	gormLogger := logger.New(
		logrus.StandardLogger(),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			ParameterizedQueries:      true,
		},
	)

	conn, err := gorm.Open(postgres.Open(dbURL), &gorm.Config{
		Logger: gormLogger,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to database")
	}

	sqlDB, err := conn.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get SQL DB")
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		return nil, errors.Wrap(err, "database unreachable")
	}

	if err := conn.AutoMigrate(
		&models.Project{},
		&models.WaitlistEntry{},
		&models.User{},
	); err != nil {
		return nil, errors.Wrap(err, "failed to auto migrate")
	}

	logrus.Info("Connected to database")
	return conn, nil
}

func ping(ctx context.Context, conn *gorm.DB) error {
	sqlDB, err := conn.DB()
	if err != nil {
		return err
	}
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	return sqlDB.PingContext(pingCtx)
}
