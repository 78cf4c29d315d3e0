package domain

import (
	"fmt"
	"time"
)

// UploadStatus is the outcome of one import batch.
type UploadStatus string

const (
	UploadStatusSuccess UploadStatus = "success"
	UploadStatusError   UploadStatus = "error"
)

// IsValid reports whether s is a known status.
func (s UploadStatus) IsValid() bool {
	switch s {
	case UploadStatusSuccess, UploadStatusError:
		return true
	}
	return false
}

// ParseUploadStatus converts a stored string into an UploadStatus.
func ParseUploadStatus(s string) (UploadStatus, error) {
	status := UploadStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("unknown upload status %q", s)
	}
	return status, nil
}

// UploadHistory records one batch import. Its IsActive flag gates the
// visibility of every prompt that references it.
type UploadHistory struct {
	ID           string
	FileName     string
	UploadDate   time.Time
	Status       UploadStatus
	IsActive     bool
	PromptCount  int
	ErrorMessage *string
}
