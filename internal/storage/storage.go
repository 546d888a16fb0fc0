package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-landing/internal/catalog"
	"github.com/goliatone/go-landing/internal/domains"
	"github.com/goliatone/go-landing/internal/orders"
	"github.com/goliatone/go-landing/internal/pages"
	"github.com/goliatone/go-landing/internal/sections"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/schema"
)

var (
	ErrProviderUnsupported = errors.New("storage: provider must be sqlite or postgres")
	ErrDSNRequired         = errors.New("storage: dsn is required")
)

// Models lists every table owned by the builder in creation order.
func Models() []any {
	return []any{
		(*catalog.Descriptor)(nil),
		(*pages.Page)(nil),
		(*sections.Section)(nil),
		(*orders.Order)(nil),
		(*domains.Domain)(nil),
	}
}

// Open connects a bun DB for provider ("sqlite" or "postgres").
func Open(provider, dsn string) (*bun.DB, error) {
	if strings.TrimSpace(dsn) == "" {
		return nil, ErrDSNRequired
	}

	var (
		driver  string
		dialect schema.Dialect
	)
	switch strings.ToLower(strings.TrimSpace(provider)) {
	case "sqlite", "sqlite3":
		driver, dialect = "sqlite3", sqlitedialect.New()
	case "postgres", "postgresql":
		driver, dialect = "postgres", pgdialect.New()
	default:
		return nil, fmt.Errorf("%w: %q", ErrProviderUnsupported, provider)
	}

	sqlDB, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("storage: open %s: %w", driver, err)
	}
	db := bun.NewDB(sqlDB, dialect)
	if driver == "sqlite3" {
		// sqlite serialises writers; a single connection keeps in-memory DSNs coherent.
		db.SetMaxOpenConns(1)
	}
	return db, nil
}

// CreateTables creates every model table that does not exist yet.
func CreateTables(ctx context.Context, db *bun.DB) error {
	for _, model := range Models() {
		if _, err := db.NewCreateTable().Model(model).IfNotExists().Exec(ctx); err != nil {
			return fmt.Errorf("storage: create table for %T: %w", model, err)
		}
	}
	return nil
}
