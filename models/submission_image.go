package models

import (
	"time"
)

// Stored values for SubmissionImage.ValidationResult.
const (
	ValidationResultYes = "yes"
	ValidationResultNo  = "no"
)

// SubmissionImage is one uploaded photo together with its recorded verdict.
// Rows are append-only: re-uploading a category adds another row, it never
// updates an existing one.
type SubmissionImage struct {
	ImageID          string     `gorm:"primaryKey;column:image_id;size:36" json:"image_id"`
	SubmissionID     string     `gorm:"column:submission_id;index" json:"submission_id"`
	ImageType        string     `gorm:"column:image_type" json:"image_type"`
	OriginalFilename string     `gorm:"column:original_filename" json:"original_filename"`
	StoredPath       string     `gorm:"column:stored_path" json:"stored_path"`
	ValidationResult string     `gorm:"column:validation_result" json:"validation_result"`
	ValidationReason string     `gorm:"column:validation_reason" json:"validation_reason"`
	CreateAt         *time.Time `gorm:"column:create_at" json:"create_at"`
}

// TableName overrides
func (SubmissionImage) TableName() string {
	return "submission_images"
}

func (img *SubmissionImage) IsValid() bool {
	return img.ValidationResult == ValidationResultYes
}
