package database

import (
	"context"
	"fmt"

	"story-time/internal/logger"

	"github.com/jmoiron/sqlx"
	_ "github.com/sijms/go-ora/v2" // Oracle driver
)

// DriverName is the database/sql name go-ora registers.
const DriverName = "oracle"

// NewSQLXOracleDB connects to Oracle with go-ora and pings it.
func NewSQLXOracleDB(ctx context.Context, dsn string) (*sqlx.DB, error) {
	db, err := sqlx.ConnectContext(ctx, DriverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Oracle database: %w", err)
	}
	logger.Get().Info("Successfully connected to Oracle database")
	return db, nil
}
