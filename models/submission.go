package models

import (
	"time"
)

// Submission statuses. Status is only ever moved forward by the completion
// tracker; nothing transitions a submission out of "complete".
const (
	SubmissionStatusPending  = "pending"
	SubmissionStatusComplete = "complete"
)

type Submission struct {
	SubmissionID string     `gorm:"primaryKey;column:submission_id;size:36" json:"submission_id"`
	UserID       string     `gorm:"column:user_id" json:"user_id"`
	VehicleMake  string     `gorm:"column:vehicle_make" json:"vehicle_make"`
	VehicleModel string     `gorm:"column:vehicle_model" json:"vehicle_model"`
	VehicleYear  int        `gorm:"column:vehicle_year" json:"vehicle_year"`
	Status       string     `gorm:"column:status" json:"status"`
	CreateAt     *time.Time `gorm:"column:create_at" json:"create_at"`
	UpdateAt     *time.Time `gorm:"column:update_at" json:"update_at"`

	// Relations
	Images []SubmissionImage `gorm:"foreignKey:SubmissionID" json:"images,omitempty"`
}

// TableName overrides
func (Submission) TableName() string {
	return "submissions"
}

func (s *Submission) IsComplete() bool {
	return s.Status == SubmissionStatusComplete
}
