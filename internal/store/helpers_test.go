// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-recipe-keeper/internal/config"
	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
	"github.com/MKhiriev/go-recipe-keeper/models"
)

func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return newDB(conn, config.DriverPostgres, logger.Nop()), mock
}

// newSQLiteDB opens a migrated SQLite database in a temp directory.
func newSQLiteDB(t *testing.T) *DB {
	t.Helper()
	ctx := context.Background()

	db, err := NewConnectSQLite(ctx, config.DB{
		DSN:    filepath.Join(t.TempDir(), "store.db"),
		Driver: config.DriverSQLite,
	}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	_, err = db.Migrate(ctx)
	require.NoError(t, err)
	return db
}

func createTestUser(t *testing.T, db *DB, email string) models.User {
	t.Helper()
	user, err := NewUserRepository(db, logger.Nop()).CreateUser(context.Background(), models.User{
		Email:        email,
		Name:         "Test",
		PasswordHash: "hash",
		Permissions:  models.DefaultPermissions(),
	})
	require.NoError(t, err)
	return user
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}
