package store

import "fmt"

// currentSchemaVersion is the latest schema version.
const currentSchemaVersion = 1

// Migrate runs forward migrations to bring the database schema up to date.
func (db *DB) Migrate() error {
	// Create the schema_version table if it does not exist.
	if _, err := db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER NOT NULL
		)
	`); err != nil {
		return fmt.Errorf("creating schema_version table: %w", err)
	}

	version := 0
	row := db.conn.QueryRow("SELECT version FROM schema_version LIMIT 1")
	if err := row.Scan(&version); err != nil {
		// No rows means version 0 (fresh database).
		version = 0
	}

	if version < 1 {
		if err := db.migrateV1(); err != nil {
			return fmt.Errorf("migration v1: %w", err)
		}
	}

	return nil
}

// migrateV1 creates all initial tables and indexes.
func (db *DB) migrateV1() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS resumes (
			id          TEXT PRIMARY KEY,
			name        TEXT NOT NULL,
			file_name   TEXT,
			stored_name TEXT,
			size_bytes  INTEGER NOT NULL DEFAULT 0,
			file_path   TEXT,
			uploaded_at TEXT NOT NULL
		)`,

		// resume_id is deliberately not a foreign key: a resume reference
		// is a weak relation and may dangle after a forced removal.
		`CREATE TABLE IF NOT EXISTS applications (
			id         TEXT PRIMARY KEY,
			job_title  TEXT NOT NULL,
			company    TEXT NOT NULL,
			stage      TEXT NOT NULL,
			resume_id  TEXT,
			notes      TEXT,
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)`,

		`CREATE INDEX IF NOT EXISTS idx_applications_stage ON applications(stage)`,
		`CREATE INDEX IF NOT EXISTS idx_applications_resume ON applications(resume_id)`,
		`CREATE INDEX IF NOT EXISTS idx_applications_company ON applications(company)`,
	}

	for _, stmt := range statements {
		if _, err := db.conn.Exec(stmt); err != nil {
			return err
		}
	}

	// Record the schema version.
	if _, err := db.conn.Exec("DELETE FROM schema_version"); err != nil {
		return err
	}
	if _, err := db.conn.Exec("INSERT INTO schema_version (version) VALUES (?)", currentSchemaVersion); err != nil {
		return err
	}

	return nil
}
