package store

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/tallgrass-systems/jobfunnel/internal/model"
	"github.com/tallgrass-systems/jobfunnel/internal/pipeline"
)

// InsertApplication stores a new application. A missing ID is minted; the
// created/updated timestamps are set to now.
func (db *DB) InsertApplication(a *model.Application) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	a.CreatedAt = now
	a.UpdatedAt = now

	_, err := db.conn.Exec(
		`INSERT INTO applications (id, job_title, company, stage, resume_id, notes, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.JobTitle, a.Company, string(a.Stage), nullable(a.ResumeID), a.Notes,
		now.Format(time.RFC3339), now.Format(time.RFC3339),
	)
	return err
}

// GetApplication returns an application by ID, or ErrNotFound.
func (db *DB) GetApplication(id string) (*model.Application, error) {
	row := db.conn.QueryRow(
		`SELECT id, job_title, company, stage, resume_id, notes, created_at, updated_at
		 FROM applications WHERE id = ?`, id,
	)
	return scanApplication(row)
}

// ListApplications returns all applications, most recent first.
func (db *DB) ListApplications() ([]model.Application, error) {
	rows, err := db.conn.Query(
		`SELECT id, job_title, company, stage, resume_id, notes, created_at, updated_at
		 FROM applications ORDER BY created_at DESC, id`,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var apps []model.Application
	for rows.Next() {
		var a model.Application
		var resumeID, notes sql.NullString
		var createdAt, updatedAt string
		if err := rows.Scan(&a.ID, &a.JobTitle, &a.Company, (*string)(&a.Stage), &resumeID, &notes, &createdAt, &updatedAt); err != nil {
			return nil, err
		}
		a.ResumeID = resumeID.String
		a.Notes = notes.String
		a.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		a.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
		apps = append(apps, a)
	}
	return apps, rows.Err()
}

// SetApplicationStage moves an application to a new stage, refreshing its
// updated timestamp. The created timestamp is immutable.
func (db *DB) SetApplicationStage(id string, stage pipeline.Stage) error {
	result, err := db.conn.Exec(
		"UPDATE applications SET stage = ?, updated_at = ? WHERE id = ?",
		string(stage), time.Now().UTC().Format(time.RFC3339), id,
	)
	if err != nil {
		return err
	}
	return requireRow(result)
}

// UpdateApplication rewrites the mutable fields of an application.
func (db *DB) UpdateApplication(a *model.Application) error {
	result, err := db.conn.Exec(
		`UPDATE applications SET job_title = ?, company = ?, stage = ?, resume_id = ?, notes = ?, updated_at = ?
		 WHERE id = ?`,
		a.JobTitle, a.Company, string(a.Stage), nullable(a.ResumeID), a.Notes,
		time.Now().UTC().Format(time.RFC3339), a.ID,
	)
	if err != nil {
		return err
	}
	return requireRow(result)
}

// DeleteApplication permanently removes an application. There is no
// soft delete.
func (db *DB) DeleteApplication(id string) error {
	result, err := db.conn.Exec("DELETE FROM applications WHERE id = ?", id)
	if err != nil {
		return err
	}
	return requireRow(result)
}

func scanApplication(row *sql.Row) (*model.Application, error) {
	var a model.Application
	var resumeID, notes sql.NullString
	var createdAt, updatedAt string
	err := row.Scan(&a.ID, &a.JobTitle, &a.Company, (*string)(&a.Stage), &resumeID, &notes, &createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	a.ResumeID = resumeID.String
	a.Notes = notes.String
	a.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	a.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
	return &a, nil
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func requireRow(result sql.Result) error {
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
