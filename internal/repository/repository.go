package repository

import (
	"fmt"
	"github.com/dinerozz/user-registry/config"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
	"net/url"
	"time"
)

// NewRepository opens (or creates) the SQLite file at cfg.Path. The schema is
// not touched here; call Migrate once after opening.
func NewRepository(cfg config.DatabaseConfig, log *zap.Logger) (*sqlx.DB, error) {
	// escaped so '?', '#' and '%' in the path do not end up in the query
	path := (&url.URL{Path: cfg.Path}).EscapedPath()
	dsn := fmt.Sprintf("file:%s?_busy_timeout=%d&_journal_mode=WAL&_foreign_keys=on",
		path, cfg.BusyTimeoutMs)

	db, err := sqlx.Connect("sqlite3", dsn)
	if err != nil {
		log.Error("❌ Error connecting to database", zap.String("path", cfg.Path), zap.Error(err))
		return nil, err
	}

	err = db.Ping()
	if err != nil {
		log.Error("❌ Error pinging database", zap.String("path", cfg.Path), zap.Error(err))
		_ = db.Close()
		return nil, err
	}

	// sqlite serializes writers anyway; a small pool keeps readers concurrent
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxOpenConns)
	db.SetConnMaxLifetime(5 * time.Minute)

	log.Info("✅ Connected to database", zap.String("path", cfg.Path))

	return db, nil
}
