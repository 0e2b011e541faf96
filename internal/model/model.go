// Package model defines the tracked entities: job applications and resume
// variants. Both are owned by the store; everything downstream treats them
// as immutable snapshot values.
package model

import (
	"time"

	"github.com/tallgrass-systems/jobfunnel/internal/pipeline"
)

// Application is one tracked job application.
type Application struct {
	ID       string         `json:"id"`
	JobTitle string         `json:"job_title"`
	Company  string         `json:"company"`
	Stage    pipeline.Stage `json:"stage"`

	// ResumeID is a weak reference to a Resume. Empty means no resume
	// attached. It may dangle if the referenced resume was removed.
	ResumeID string `json:"resume_id,omitempty"`

	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HasResume reports whether the application references any resume,
// whether or not that reference currently resolves.
func (a Application) HasResume() bool {
	return a.ResumeID != ""
}

// Resume is one uploaded resume variant.
type Resume struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	FileName   string `json:"file_name,omitempty"`
	StoredName string `json:"stored_name,omitempty"`
	SizeBytes  int64  `json:"size_bytes,omitempty"`
	FilePath   string `json:"file_path,omitempty"`

	UploadedAt time.Time `json:"uploaded_at"`
}

// Snapshot is a complete point-in-time copy of both collections, read
// together so analytics never see a torn pair.
type Snapshot struct {
	Applications []Application `json:"applications"`
	Resumes      []Resume      `json:"resumes"`
	TakenAt      time.Time     `json:"taken_at"`
}
