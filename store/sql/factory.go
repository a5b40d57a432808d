package sqlstore

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/goliatone/go-eaccounting/core"
	persistence "github.com/goliatone/go-persistence-bun"
	repository "github.com/goliatone/go-repository-bun"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// NewTokenStore builds a token store on top of an existing database
// handle. The client may be a *bun.DB or anything exposing DB() *bun.DB
// (go-persistence-bun's Client). The codec defaults to the JSON token
// codec when nil.
func NewTokenStore(client any, codec core.TokenCodec) (*TokenStore, error) {
	db, err := resolveBunDB(client)
	if err != nil {
		return nil, err
	}
	if codec == nil {
		codec = core.JSONTokenCodec{}
	}

	repo := repository.NewRepository[*tokenRecord](db, tokenHandlers())
	if validator, ok := repo.(repository.Validator); ok {
		if err := validator.Validate(); err != nil {
			return nil, fmt.Errorf("sqlstore: invalid token repository wiring: %w", err)
		}
	}

	return &TokenStore{db: db, repo: repo, codec: codec}, nil
}

type clientConfig struct {
	driver string
	server string
	debug  bool
}

func (c clientConfig) GetDebug() bool {
	return c.debug
}

func (c clientConfig) GetDriver() string {
	return c.driver
}

func (c clientConfig) GetServer() string {
	return c.server
}

func (c clientConfig) GetPingTimeout() time.Duration {
	return 5 * time.Second
}

func (c clientConfig) GetOtelIdentifier() string {
	return "go-eaccounting"
}

// NewSQLiteClient opens a sqlite database and wraps it in a persistence
// client ready for migration registration.
func NewSQLiteClient(dsn string) (*persistence.Client, error) {
	dsn = strings.TrimSpace(dsn)
	if dsn == "" {
		return nil, fmt.Errorf("sqlstore: sqlite dsn is required")
	}
	sqlDB, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlstore: open sqlite db: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	client, err := persistence.New(clientConfig{driver: "sqlite3", server: dsn}, sqlDB, sqlitedialect.New())
	if err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("sqlstore: new sqlite persistence client: %w", err)
	}
	return client, nil
}

// NewPostgresClient opens a postgres database and wraps it in a
// persistence client ready for migration registration.
func NewPostgresClient(dsn string) (*persistence.Client, error) {
	dsn = strings.TrimSpace(dsn)
	if dsn == "" {
		return nil, fmt.Errorf("sqlstore: postgres dsn is required")
	}
	sqlDB, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlstore: open postgres db: %w", err)
	}

	client, err := persistence.New(clientConfig{driver: "postgres", server: dsn}, sqlDB, pgdialect.New())
	if err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("sqlstore: new postgres persistence client: %w", err)
	}
	return client, nil
}

func resolveBunDB(candidate any) (*bun.DB, error) {
	switch typed := candidate.(type) {
	case nil:
		return nil, fmt.Errorf("sqlstore: persistence client is required")
	case *bun.DB:
		return typed, nil
	case interface{ DB() *bun.DB }:
		db := typed.DB()
		if db == nil {
			return nil, fmt.Errorf("sqlstore: persistence client returned nil bun db")
		}
		return db, nil
	default:
		return nil, fmt.Errorf("sqlstore: unsupported persistence client type %T", candidate)
	}
}
