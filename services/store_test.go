package services

import (
	"sync"

	"car-inspection-api/models"
)

// memoryStore is an in-memory SubmissionStore for unit tests.
type memoryStore struct {
	mu          sync.Mutex
	submissions map[string]*models.Submission
	images      map[string][]models.SubmissionImage

	insertImageErr error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		submissions: make(map[string]*models.Submission),
		images:      make(map[string][]models.SubmissionImage),
	}
}

func (m *memoryStore) InsertSubmission(submission *models.Submission) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := *submission
	m.submissions[submission.SubmissionID] = &copied
	return nil
}

func (m *memoryStore) GetSubmission(submissionID string) (*models.Submission, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	submission, ok := m.submissions[submissionID]
	if !ok {
		return nil, ErrSubmissionNotFound
	}
	copied := *submission
	return &copied, nil
}

func (m *memoryStore) InsertImage(image *models.SubmissionImage) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.insertImageErr != nil {
		return m.insertImageErr
	}
	m.images[image.SubmissionID] = append(m.images[image.SubmissionID], *image)
	return nil
}

func (m *memoryStore) CountImages(submissionID string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.images[submissionID])), nil
}

func (m *memoryStore) GetImages(submissionID string) ([]models.SubmissionImage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.SubmissionImage(nil), m.images[submissionID]...), nil
}

func (m *memoryStore) UpdateStatus(submissionID, status string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	// Like an UPDATE that matches zero rows, an unknown id is not an error.
	if submission, ok := m.submissions[submissionID]; ok {
		submission.Status = status
	}
	return nil
}
