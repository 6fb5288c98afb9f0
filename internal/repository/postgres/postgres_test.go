package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var clientColumns = []string{
	"id", "document_type_id", "dt_id", "code", "name",
	"document_number", "first_name", "last_name", "email", "phone",
	"created_at", "updated_at",
}

var purchaseColumns = []string{
	"id", "client_id", "amount", "purchase_date", "description", "order_number", "created_at",
}

var purchaseWithClientColumns = []string{
	"id", "client_id", "amount", "purchase_date", "description", "order_number", "created_at",
	"document_type_id", "code", "name",
	"document_number", "first_name", "last_name", "email", "phone",
	"created_at", "updated_at",
}

func TestDocumentTypePostgres_FindByCode(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewDocumentTypePostgres(db)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM document_types WHERE code = ?").
			WithArgs("CC").
			WillReturnRows(sqlmock.NewRows([]string{"id", "code", "name"}).AddRow(1, "CC", "Cédula de ciudadanía"))

		dt, err := repo.FindByCode(ctx, "CC")

		require.NoError(t, err)
		assert.Equal(t, int64(1), dt.ID)
		assert.Equal(t, "CC", dt.Code)
		assert.Equal(t, "Cédula de ciudadanía", dt.Name)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM document_types WHERE code = ?").
			WithArgs("XX").
			WillReturnRows(sqlmock.NewRows([]string{"id", "code", "name"}))

		dt, err := repo.FindByCode(ctx, "XX")

		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.Nil(t, dt)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClientPostgres_FindByTypeAndNumber(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewClientPostgres(db)
	ctx := context.Background()
	now := time.Date(2024, 1, 10, 8, 0, 0, 0, time.UTC)

	t.Run("client with purchases", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM clients c JOIN document_types dt (.+) WHERE c.document_type_id = \\$1 AND c.document_number = \\$2").
			WithArgs(int64(1), "123").
			WillReturnRows(sqlmock.NewRows(clientColumns).
				AddRow(7, 1, 1, "CC", "Cédula de ciudadanía", "123", "Ana", "Rojas", "ana@example.com", "3001234567", now, now))

		mock.ExpectQuery("SELECT (.+) FROM purchases WHERE client_id = \\$1 ORDER BY id").
			WithArgs(int64(7)).
			WillReturnRows(sqlmock.NewRows(purchaseColumns).
				AddRow(11, 7, "100.50", time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), "Zapatos", nil, now).
				AddRow(12, 7, "50.00", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), nil, "ORD-1", now))

		c, err := repo.FindByTypeAndNumber(ctx, 1, "123")

		require.NoError(t, err)
		assert.Equal(t, int64(7), c.ID)
		assert.Equal(t, "CC", c.DocumentType.Code)
		assert.Equal(t, "Ana", c.FirstName)
		require.Len(t, c.Purchases, 2)
		assert.Equal(t, "100.5", c.Purchases[0].Amount.String())
		require.NotNil(t, c.Purchases[0].Description)
		assert.Equal(t, "Zapatos", *c.Purchases[0].Description)
		assert.Nil(t, c.Purchases[0].OrderNumber)
		assert.Nil(t, c.Purchases[1].Description)
		assert.Equal(t, "ORD-1", *c.Purchases[1].OrderNumber)
	})

	t.Run("client without purchases", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM clients c").
			WithArgs(int64(1), "456").
			WillReturnRows(sqlmock.NewRows(clientColumns).
				AddRow(8, 1, 1, "CC", "Cédula de ciudadanía", "456", "Luis", "Páez", "luis@example.com", "3000000000", now, now))
		mock.ExpectQuery("SELECT (.+) FROM purchases").
			WithArgs(int64(8)).
			WillReturnRows(sqlmock.NewRows(purchaseColumns))

		c, err := repo.FindByTypeAndNumber(ctx, 1, "456")

		require.NoError(t, err)
		assert.NotNil(t, c.Purchases)
		assert.Empty(t, c.Purchases)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM clients c").
			WithArgs(int64(1), "missing").
			WillReturnError(sql.ErrNoRows)

		c, err := repo.FindByTypeAndNumber(ctx, 1, "missing")

		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.Nil(t, c)
	})

	t.Run("purchase query error", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM clients c").
			WithArgs(int64(1), "789").
			WillReturnRows(sqlmock.NewRows(clientColumns).
				AddRow(9, 1, 1, "CC", "Cédula de ciudadanía", "789", "Eva", "Gil", "eva@example.com", "1", now, now))
		mock.ExpectQuery("SELECT (.+) FROM purchases").
			WithArgs(int64(9)).
			WillReturnError(errors.New("conn reset"))

		c, err := repo.FindByTypeAndNumber(ctx, 1, "789")

		assert.ErrorContains(t, err, "load purchases: conn reset")
		assert.Nil(t, c)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPurchasePostgres_FindSince(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPurchasePostgres(db)
	ctx := context.Background()
	since := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	now := time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)

	t.Run("joins clients and shares owners", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM purchases p JOIN clients c (.+) WHERE p.purchase_date >= \\$1 ORDER BY p.id").
			WithArgs(since).
			WillReturnRows(sqlmock.NewRows(purchaseWithClientColumns).
				AddRow(1, 7, "3000000.00", since, nil, nil, now, 1, "CC", "Cédula", "123", "Ana", "Rojas", "ana@example.com", "300", now, now).
				AddRow(2, 8, "10.00", since, "x", "y", now, 2, "NIT", "NIT", "900", "Acme", "SAS", "acme@example.com", "601", now, now).
				AddRow(3, 7, "2500000.00", now, nil, nil, now, 1, "CC", "Cédula", "123", "Ana", "Rojas", "ana@example.com", "300", now, now))

		items, err := repo.FindSince(ctx, since)

		require.NoError(t, err)
		require.Len(t, items, 3)
		assert.Same(t, items[0].Client, items[2].Client)
		assert.Equal(t, int64(7), items[0].Client.ID)
		assert.Equal(t, "CC", items[0].Client.DocumentType.Code)
		assert.Equal(t, int64(1), items[0].Client.DocumentType.ID)
		assert.Equal(t, "NIT", items[1].Client.DocumentType.Code)
		assert.Equal(t, "y", *items[1].OrderNumber)
	})

	t.Run("empty window", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM purchases p").
			WithArgs(since).
			WillReturnRows(sqlmock.NewRows(purchaseWithClientColumns))

		items, err := repo.FindSince(ctx, since)

		require.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("query error", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM purchases p").
			WithArgs(since).
			WillReturnError(errors.New("db down"))

		items, err := repo.FindSince(ctx, since)

		assert.EqualError(t, err, "db down")
		assert.Nil(t, items)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
