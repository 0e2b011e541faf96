package store

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/tallgrass-systems/jobfunnel/internal/model"
)

// InsertResume stores a new resume record. A missing ID is minted; the
// upload timestamp is set to now and is immutable afterwards.
func (db *DB) InsertResume(r *model.Resume) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	r.UploadedAt = time.Now().UTC()

	_, err := db.conn.Exec(
		`INSERT INTO resumes (id, name, file_name, stored_name, size_bytes, file_path, uploaded_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.Name, r.FileName, r.StoredName, r.SizeBytes, r.FilePath,
		r.UploadedAt.Format(time.RFC3339),
	)
	return err
}

// GetResume returns a resume by ID, or ErrNotFound.
func (db *DB) GetResume(id string) (*model.Resume, error) {
	row := db.conn.QueryRow(
		"SELECT id, name, file_name, stored_name, size_bytes, file_path, uploaded_at FROM resumes WHERE id = ?", id,
	)
	var r model.Resume
	var uploadedAt string
	err := row.Scan(&r.ID, &r.Name, &r.FileName, &r.StoredName, &r.SizeBytes, &r.FilePath, &uploadedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	r.UploadedAt, _ = time.Parse(time.RFC3339, uploadedAt)
	return &r, nil
}

// ListResumes returns all resumes in upload order.
func (db *DB) ListResumes() ([]model.Resume, error) {
	rows, err := db.conn.Query(
		"SELECT id, name, file_name, stored_name, size_bytes, file_path, uploaded_at FROM resumes ORDER BY uploaded_at, id",
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var resumes []model.Resume
	for rows.Next() {
		var r model.Resume
		var uploadedAt string
		if err := rows.Scan(&r.ID, &r.Name, &r.FileName, &r.StoredName, &r.SizeBytes, &r.FilePath, &uploadedAt); err != nil {
			return nil, err
		}
		r.UploadedAt, _ = time.Parse(time.RFC3339, uploadedAt)
		resumes = append(resumes, r)
	}
	return resumes, rows.Err()
}

// RenameResume changes a resume's user-assigned label.
func (db *DB) RenameResume(id, name string) error {
	result, err := db.conn.Exec("UPDATE resumes SET name = ? WHERE id = ?", name, id)
	if err != nil {
		return err
	}
	return requireRow(result)
}

// ResumeUsageCount returns how many applications reference the resume.
func (db *DB) ResumeUsageCount(id string) (int, error) {
	var n int
	err := db.conn.QueryRow("SELECT COUNT(*) FROM applications WHERE resume_id = ?", id).Scan(&n)
	return n, err
}

// DeleteResume removes a resume record. It refuses with ErrResumeInUse
// while any application still references the resume, so a normal delete
// can never create a dangling reference.
func (db *DB) DeleteResume(id string) error {
	n, err := db.ResumeUsageCount(id)
	if err != nil {
		return err
	}
	if n > 0 {
		return ErrResumeInUse
	}

	result, err := db.conn.Exec("DELETE FROM resumes WHERE id = ?", id)
	if err != nil {
		return err
	}
	return requireRow(result)
}
