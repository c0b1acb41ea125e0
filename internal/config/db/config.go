package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib" // драйвер pgx для database/sql (нужен миграциям)
)

// ErrEmptyDSN возвращается при попытке подключиться без строки подключения
var ErrEmptyDSN = errors.New("database DSN is required")

// Config содержит настройки пула подключений к PostgreSQL
type Config struct {
	DSN               string
	MaxConns          int32
	MinConns          int32
	MaxConnLifetime   time.Duration
	MaxConnIdleTime   time.Duration
	HealthCheckPeriod time.Duration
	ConnectTimeout    time.Duration
}

// NewConfig создает конфигурацию подключения к БД
func NewConfig(dsn string) *Config {
	return &Config{
		DSN:               dsn,
		MaxConns:          10,
		MinConns:          1,
		MaxConnLifetime:   time.Hour,
		MaxConnIdleTime:   30 * time.Minute,
		HealthCheckPeriod: time.Minute,
		ConnectTimeout:    5 * time.Second,
	}
}

// Connect открывает пул pgx и *sql.DB для миграций и проверяет оба подключения
func (c *Config) Connect(ctx context.Context) (*DBAdapter, error) {
	if c.DSN == "" {
		return nil, ErrEmptyDSN
	}

	ctx, cancel := context.WithTimeout(ctx, c.ConnectTimeout)
	defer cancel()

	sqlDB, err := c.openSQL(ctx)
	if err != nil {
		return nil, err
	}

	pool, err := c.openPool(ctx)
	if err != nil {
		sqlDB.Close()
		return nil, err
	}

	return NewDBAdapter(pool, sqlDB), nil
}

func (c *Config) openSQL(ctx context.Context) (*sql.DB, error) {
	sqlDB, err := sql.Open("pgx", c.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open sql database: %w", err)
	}

	sqlDB.SetMaxOpenConns(int(c.MaxConns))
	sqlDB.SetMaxIdleConns(int(c.MinConns))
	sqlDB.SetConnMaxLifetime(c.MaxConnLifetime)
	sqlDB.SetConnMaxIdleTime(c.MaxConnIdleTime)

	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return sqlDB, nil
}

func (c *Config) openPool(ctx context.Context) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(c.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	poolConfig.MaxConns = c.MaxConns
	poolConfig.MinConns = c.MinConns
	poolConfig.MaxConnLifetime = c.MaxConnLifetime
	poolConfig.MaxConnIdleTime = c.MaxConnIdleTime
	poolConfig.HealthCheckPeriod = c.HealthCheckPeriod

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping connection pool: %w", err)
	}

	return pool, nil
}

//go:generate mockery --name Database

// Database минимальный интерфейс БД, нужный приложению и обработчику /ping
type Database interface {
	Ping(ctx context.Context) error
	Close()
}

// DBAdapter объединяет пул pgx (запросы) и *sql.DB (миграции)
type DBAdapter struct {
	Pool  *pgxpool.Pool
	SQLDB *sql.DB
}

// NewDBAdapter создает новый адаптер
func NewDBAdapter(pool *pgxpool.Pool, sqlDB *sql.DB) *DBAdapter {
	return &DBAdapter{
		Pool:  pool,
		SQLDB: sqlDB,
	}
}

func (d *DBAdapter) Ping(ctx context.Context) error {
	return d.Pool.Ping(ctx)
}

func (d *DBAdapter) Close() {
	d.Pool.Close()
	if d.SQLDB != nil {
		d.SQLDB.Close()
	}
}

// DB возвращает *sql.DB для golang-migrate
func (d *DBAdapter) DB() *sql.DB {
	return d.SQLDB
}
