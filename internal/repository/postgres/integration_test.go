//go:build integration

package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"loyaltyapi/internal/database/migration"
)

// newTestDB starts a throwaway PostgreSQL container and applies the schema.
func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	ctx := context.Background()

	c, err := tcpostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:16-alpine"),
		tcpostgres.WithDatabase("loyalty"),
		tcpostgres.WithUsername("loyalty"),
		tcpostgres.WithPassword("loyalty"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Terminate(context.Background()) })

	connStr, err := c.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := sql.Open("pgx", connStr)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, migration.EnsureMigrated(ctx, db, zerolog.Nop(), "testcontainer"))
	return db
}

func TestIntegration_Repositories(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)

	var clientID int64
	err := db.QueryRowContext(ctx, `
		INSERT INTO clients (document_type_id, document_number, first_name, last_name, email, phone)
		SELECT id, '123', 'Ana', 'Rojas', 'ana@example.com', '3001234567' FROM document_types WHERE code = 'CC'
		RETURNING id`).Scan(&clientID)
	require.NoError(t, err)

	_, err = db.ExecContext(ctx, `
		INSERT INTO purchases (client_id, amount, purchase_date, description, order_number) VALUES
		($1, 100.50, '2024-01-05 10:00:00', 'Zapatos', NULL),
		($1, 50.00,  '2024-01-01 09:00:00', NULL, 'ORD-1')`, clientID)
	require.NoError(t, err)

	_, err = db.ExecContext(ctx, `
		INSERT INTO clients (document_type_id, document_number, first_name, last_name, email, phone)
		SELECT id, '123', 'Dup', 'Dup', 'dup@example.com', '1' FROM document_types WHERE code = 'CC'`)
	assert.Error(t, err, "(document_type_id, document_number) must be unique")

	dt, err := NewDocumentTypePostgres(db).FindByCode(ctx, "CC")
	require.NoError(t, err)

	_, err = NewDocumentTypePostgres(db).FindByCode(ctx, "cc")
	assert.ErrorIs(t, err, sql.ErrNoRows)

	c, err := NewClientPostgres(db).FindByTypeAndNumber(ctx, dt.ID, "123")
	require.NoError(t, err)
	assert.Equal(t, clientID, c.ID)
	require.Len(t, c.Purchases, 2)
	assert.Equal(t, "100.5", c.Purchases[0].Amount.String())
	assert.Equal(t, "50", c.Purchases[1].Amount.String())

	items, err := NewPurchasePostgres(db).FindSince(ctx, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "123", items[0].Client.DocumentNumber)
	assert.Equal(t, "CC", items[0].Client.DocumentType.Code)
}
