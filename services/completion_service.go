package services

import (
	"sync"

	"car-inspection-api/config"
	"car-inspection-api/models"
)

// CompletionService decides whether an upload is admissible and when a
// submission transitions from pending to complete.
//
// The completion rule is count-based: a submission is complete once it has at
// least as many image rows as there are required categories, regardless of
// which categories those rows cover or whether any of them passed validation.
type CompletionService struct {
	store SubmissionStore

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewCompletionService(store SubmissionStore) *CompletionService {
	return &CompletionService{
		store: store,
		locks: make(map[string]*sync.Mutex),
	}
}

// IsKnownImageType reports whether imageType is one of the required photo
// categories. Uploads naming any other type must be rejected before any file
// I/O or validation happens.
func (s *CompletionService) IsKnownImageType(imageType string) bool {
	_, ok := config.RequirementByType(imageType)
	return ok
}

// RecordImage persists one image row with its verdict already computed, then
// recomputes the parent submission's status. The insert and the recompute run
// under a per-submission lock so two concurrent uploads cannot interleave
// between the count and the status write.
func (s *CompletionService) RecordImage(image *models.SubmissionImage) (string, error) {
	lock := s.lockFor(image.SubmissionID)
	lock.Lock()
	defer lock.Unlock()

	if err := s.store.InsertImage(image); err != nil {
		return "", err
	}
	return s.recomputeStatusLocked(image.SubmissionID)
}

// RecomputeStatus re-derives the submission status from its image count.
// It is monotonic: it only ever writes "complete" and never moves a
// submission back to pending.
func (s *CompletionService) RecomputeStatus(submissionID string) (string, error) {
	lock := s.lockFor(submissionID)
	lock.Lock()
	defer lock.Unlock()

	return s.recomputeStatusLocked(submissionID)
}

func (s *CompletionService) recomputeStatusLocked(submissionID string) (string, error) {
	count, err := s.store.CountImages(submissionID)
	if err != nil {
		return "", err
	}
	if count < int64(config.RequiredImageCount()) {
		return models.SubmissionStatusPending, nil
	}
	if err := s.store.UpdateStatus(submissionID, models.SubmissionStatusComplete); err != nil {
		return "", err
	}
	return models.SubmissionStatusComplete, nil
}

func (s *CompletionService) lockFor(submissionID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.locks[submissionID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[submissionID] = lock
	}
	return lock
}
