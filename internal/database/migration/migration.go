package migration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

type migrationStep struct {
	Name string
	SQL  string
}

var steps = []migrationStep{
	{
		Name: "create_table_document_types",
		SQL: `CREATE TABLE IF NOT EXISTS document_types (
  id   BIGSERIAL    PRIMARY KEY,
  code VARCHAR(10)  NOT NULL UNIQUE,
  name VARCHAR(100) NOT NULL
);`,
	},
	{
		Name: "create_table_clients",
		SQL: `CREATE TABLE IF NOT EXISTS clients (
  id               BIGSERIAL    PRIMARY KEY,
  document_type_id BIGINT       NOT NULL REFERENCES document_types (id),
  document_number  VARCHAR(30)  NOT NULL,
  first_name       VARCHAR(100) NOT NULL,
  last_name        VARCHAR(100) NOT NULL,
  email            VARCHAR(200) NOT NULL,
  phone            VARCHAR(30)  NOT NULL,
  created_at       TIMESTAMP    NOT NULL DEFAULT (now() AT TIME ZONE 'utc'),
  updated_at       TIMESTAMP    NOT NULL DEFAULT (now() AT TIME ZONE 'utc')
);`,
	},
	{
		Name: "create_unique_index_clients_document",
		SQL:  `CREATE UNIQUE INDEX IF NOT EXISTS ux_clients_document ON clients (document_type_id, document_number);`,
	},
	{
		Name: "create_table_purchases",
		SQL: `CREATE TABLE IF NOT EXISTS purchases (
  id            BIGSERIAL     PRIMARY KEY,
  client_id     BIGINT        NOT NULL REFERENCES clients (id),
  amount        NUMERIC(18,2) NOT NULL,
  purchase_date TIMESTAMP     NOT NULL,
  description   TEXT,
  order_number  VARCHAR(100),
  created_at    TIMESTAMP     NOT NULL DEFAULT (now() AT TIME ZONE 'utc')
);`,
	},
	{
		Name: "create_index_purchases_client_id",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_purchases_client_id ON purchases (client_id);`,
	},
	{
		Name: "create_index_purchases_purchase_date",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_purchases_purchase_date ON purchases (purchase_date);`,
	},
	{
		Name: "seed_document_types",
		SQL: `INSERT INTO document_types (code, name) VALUES
  ('CC',  'Cédula de ciudadanía'),
  ('CE',  'Cédula de extranjería'),
  ('NIT', 'Número de identificación tributaria'),
  ('PAS', 'Pasaporte'),
  ('TI',  'Tarjeta de identidad')
ON CONFLICT (code) DO NOTHING;`,
	},
}

// EnsureMigrated checks whether the 'clients' table exists and runs the schema steps if it doesn't.
func EnsureMigrated(ctx context.Context, db *sql.DB, log zerolog.Logger, dbHost string) error {
	start := time.Now()
	log = log.With().Str("component", "database").Str("db_host", dbHost).Logger()

	log.Info().Str("event", "db_migration_check").Msg("checking schema")

	var exists bool
	query := "SELECT to_regclass('public.clients') IS NOT NULL"
	if err := db.QueryRowContext(ctx, query).Scan(&exists); err != nil {
		log.Error().Err(err).
			Str("event", "db_migration_failed").
			Int64("duration_ms", time.Since(start).Milliseconds()).
			Msg("failed to check sentinel table")
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		log.Info().
			Str("event", "db_migration_skip").
			Int64("duration_ms", time.Since(start).Milliseconds()).
			Msg("schema already exists, skipping migration")
		return nil
	}

	log.Info().Str("event", "db_migration_start").Int("steps", len(steps)).Msg("applying schema")

	for _, step := range steps {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			log.Error().Err(err).
				Str("event", "db_migration_failed").
				Str("migration_step", step.Name).
				Int64("duration_ms", time.Since(start).Milliseconds()).
				Msg("migration step failed")
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		log.Debug().
			Str("event", "db_migration_step").
			Str("migration_step", step.Name).
			Int64("step_duration_ms", time.Since(stepStart).Milliseconds()).
			Msg("step applied")
	}

	log.Info().
		Str("event", "db_migration_success").
		Int64("duration_ms", time.Since(start).Milliseconds()).
		Msg("schema migrated")

	return nil
}
