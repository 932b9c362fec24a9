package postgresql

import (
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"freight-admin/migrations"
)

// Migrate applies every pending embedded migration. goose works on
// database/sql, so a short-lived handle is opened through the pgx stdlib driver.
func Migrate(dsn string, schema string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("open migration connection: %w", err)
	}
	defer db.Close()

	if schema != "" && schema != "public" {
		db.SetMaxOpenConns(1)
		if _, err := db.Exec(fmt.Sprintf(`CREATE SCHEMA IF NOT EXISTS %q`, schema)); err != nil {
			return fmt.Errorf("create schema %s: %w", schema, err)
		}
		if _, err := db.Exec(fmt.Sprintf(`SET search_path TO %q`, schema)); err != nil {
			return fmt.Errorf("set search_path: %w", err)
		}
	}

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}
