// Package store owns the database handle shared by repositories and the
// statement adapter. All writes are serialized through a single mutex and
// run inside a transaction, so concurrent requests never interleave
// mutations even on engines that allow more than one writer.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"gorm.io/gorm"

	"calorietracker/internal/model"
)

// Store provides durable storage for users, products, meal entries and the
// supporting recipe, goal and consultation tables.
type Store struct {
	db      *gorm.DB
	sqlDB   *sql.DB
	dialect string

	writeMu sync.Mutex
}

// New wraps an opened GORM connection and creates any missing tables and indexes.
// Calling it against an existing database is a no-op for the schema.
func New(db *gorm.DB) (*Store, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("sql handle: %w", err)
	}

	if err := db.AutoMigrate(model.All()...); err != nil {
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &Store{
		db:      db,
		sqlDB:   sqlDB,
		dialect: db.Dialector.Name(),
	}, nil
}

// Dialect returns the name of the underlying engine ("sqlite", "mysql", "postgres").
func (s *Store) Dialect() string {
	return s.dialect
}

// DB returns a session for reads bound to ctx.
func (s *Store) DB(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx)
}

// Write runs fn in a transaction while holding the writer lock.
// fn must use only the tx it is given; the lock is held until commit or rollback.
func (s *Store) Write(ctx context.Context, fn func(tx *gorm.DB) error) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	return s.db.WithContext(ctx).Transaction(fn)
}

// Ping verifies the connection is alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.sqlDB.PingContext(ctx)
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}
