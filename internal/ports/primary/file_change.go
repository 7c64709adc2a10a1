package primary

import "context"

// FileChangeService defines the primary port for file-change recording.
type FileChangeService interface {
	// RecordFileChange appends a file change, optionally linked to the step
	// that produced it, and returns its row ID.
	RecordFileChange(ctx context.Context, req RecordFileChangeRequest) (*RecordFileChangeResponse, error)
}

// RecordFileChangeRequest contains parameters for recording a file change.
type RecordFileChangeRequest struct {
	SessionID    string
	FilePath     string
	ChangeType   string
	StepID       *int64
	OldPath      string
	Description  string
	LinesAdded   *int
	LinesRemoved *int
}

// RecordFileChangeResponse contains the result of recording a file change.
type RecordFileChangeResponse struct {
	ChangeID int64 `json:"change_id"`
}

// FileChange is the caller-facing view of a file-change row.
type FileChange struct {
	ID           int64  `json:"id"`
	SessionID    string `json:"session_id"`
	StepID       *int64 `json:"step_id,omitempty"`
	Timestamp    int64  `json:"timestamp"`
	FilePath     string `json:"file_path"`
	ChangeType   string `json:"change_type"`
	OldPath      string `json:"old_path,omitempty"`
	Description  string `json:"description,omitempty"`
	LinesAdded   *int   `json:"lines_added,omitempty"`
	LinesRemoved *int   `json:"lines_removed,omitempty"`
}
