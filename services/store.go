package services

import (
	"errors"
	"fmt"

	"car-inspection-api/models"

	"gorm.io/gorm"
)

// ErrSubmissionNotFound is returned by store lookups for unknown submission ids.
var ErrSubmissionNotFound = errors.New("submission not found")

// SubmissionStore isolates the core services from persistence mechanics so
// they can be unit-tested without a real database.
type SubmissionStore interface {
	InsertSubmission(submission *models.Submission) error
	GetSubmission(submissionID string) (*models.Submission, error)
	InsertImage(image *models.SubmissionImage) error
	CountImages(submissionID string) (int64, error)
	GetImages(submissionID string) ([]models.SubmissionImage, error)
	UpdateStatus(submissionID, status string) error
}

// GormSubmissionStore is the MySQL-backed SubmissionStore.
type GormSubmissionStore struct {
	db *gorm.DB
}

func NewGormSubmissionStore(db *gorm.DB) *GormSubmissionStore {
	return &GormSubmissionStore{db: db}
}

func (s *GormSubmissionStore) InsertSubmission(submission *models.Submission) error {
	if err := s.db.Create(submission).Error; err != nil {
		return fmt.Errorf("failed to insert submission: %w", err)
	}
	return nil
}

func (s *GormSubmissionStore) GetSubmission(submissionID string) (*models.Submission, error) {
	var submission models.Submission
	err := s.db.Where("submission_id = ?", submissionID).First(&submission).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubmissionNotFound
		}
		return nil, fmt.Errorf("failed to load submission: %w", err)
	}
	return &submission, nil
}

func (s *GormSubmissionStore) InsertImage(image *models.SubmissionImage) error {
	if err := s.db.Create(image).Error; err != nil {
		return fmt.Errorf("failed to insert submission image: %w", err)
	}
	return nil
}

func (s *GormSubmissionStore) CountImages(submissionID string) (int64, error) {
	var count int64
	err := s.db.Model(&models.SubmissionImage{}).
		Where("submission_id = ?", submissionID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count submission images: %w", err)
	}
	return count, nil
}

func (s *GormSubmissionStore) GetImages(submissionID string) ([]models.SubmissionImage, error) {
	var images []models.SubmissionImage
	err := s.db.Where("submission_id = ?", submissionID).
		Order("create_at ASC").
		Find(&images).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load submission images: %w", err)
	}
	return images, nil
}

func (s *GormSubmissionStore) UpdateStatus(submissionID, status string) error {
	err := s.db.Model(&models.Submission{}).
		Where("submission_id = ?", submissionID).
		Update("status", status).Error
	if err != nil {
		return fmt.Errorf("failed to update submission status: %w", err)
	}
	return nil
}
