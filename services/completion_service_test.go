package services

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"car-inspection-api/config"
	"car-inspection-api/models"
)

func newPendingSubmission(t *testing.T, store *memoryStore, id string) *models.Submission {
	t.Helper()
	now := time.Now()
	submission := &models.Submission{
		SubmissionID: id,
		UserID:       "token-1",
		VehicleMake:  "Toyota",
		VehicleModel: "Corolla",
		VehicleYear:  2020,
		Status:       models.SubmissionStatusPending,
		CreateAt:     &now,
	}
	if err := store.InsertSubmission(submission); err != nil {
		t.Fatalf("InsertSubmission returned error: %v", err)
	}
	return submission
}

func newImageRow(submissionID, imageType, result string) *models.SubmissionImage {
	now := time.Now()
	return &models.SubmissionImage{
		ImageID:          fmt.Sprintf("img-%d", time.Now().UnixNano()),
		SubmissionID:     submissionID,
		ImageType:        imageType,
		ValidationResult: result,
		ValidationReason: "Valid image",
		CreateAt:         &now,
	}
}

func TestIsKnownImageType(t *testing.T) {
	svc := NewCompletionService(newMemoryStore())

	for _, req := range config.ImageRequirements() {
		if !svc.IsKnownImageType(req.Type) {
			t.Errorf("expected %q to be a known image type", req.Type)
		}
	}

	for _, unknown := range []string{"windshield", "FRONT", "", "trunk"} {
		if svc.IsKnownImageType(unknown) {
			t.Errorf("expected %q to be rejected", unknown)
		}
	}
}

// Characterization of the literal completion rule: the count of image rows is
// all that matters. Eight uploads of the same single category complete the
// submission even though seven categories were never covered.
func TestCompletionByCountIgnoresCategoryCoverage(t *testing.T) {
	store := newMemoryStore()
	svc := NewCompletionService(store)
	newPendingSubmission(t, store, "sub-1")

	required := config.RequiredImageCount()
	for i := 1; i < required; i++ {
		status, err := svc.RecordImage(newImageRow("sub-1", "front", models.ValidationResultYes))
		if err != nil {
			t.Fatalf("RecordImage %d returned error: %v", i, err)
		}
		if status != models.SubmissionStatusPending {
			t.Fatalf("after %d of %d uploads expected pending, got %q", i, required, status)
		}
	}

	status, err := svc.RecordImage(newImageRow("sub-1", "front", models.ValidationResultYes))
	if err != nil {
		t.Fatalf("final RecordImage returned error: %v", err)
	}
	if status != models.SubmissionStatusComplete {
		t.Fatalf("expected complete after %d uploads, got %q", required, status)
	}

	stored, err := store.GetSubmission("sub-1")
	if err != nil {
		t.Fatalf("GetSubmission returned error: %v", err)
	}
	if !stored.IsComplete() {
		t.Fatalf("expected stored status complete, got %q", stored.Status)
	}
}

// Invalid verdicts count toward completion just like valid ones.
func TestCompletionCountsInvalidImages(t *testing.T) {
	store := newMemoryStore()
	svc := NewCompletionService(store)
	newPendingSubmission(t, store, "sub-1")

	var status string
	var err error
	for i := 0; i < config.RequiredImageCount(); i++ {
		status, err = svc.RecordImage(newImageRow("sub-1", "front", models.ValidationResultNo))
		if err != nil {
			t.Fatalf("RecordImage returned error: %v", err)
		}
	}
	if status != models.SubmissionStatusComplete {
		t.Fatalf("expected complete, got %q", status)
	}
}

// Re-uploading an already-validated category appends a second row; nothing is
// replaced or rejected.
func TestDuplicateCategoryAppendsRow(t *testing.T) {
	store := newMemoryStore()
	svc := NewCompletionService(store)
	newPendingSubmission(t, store, "sub-1")

	if _, err := svc.RecordImage(newImageRow("sub-1", "vin", models.ValidationResultYes)); err != nil {
		t.Fatalf("first RecordImage returned error: %v", err)
	}
	if _, err := svc.RecordImage(newImageRow("sub-1", "vin", models.ValidationResultYes)); err != nil {
		t.Fatalf("second RecordImage returned error: %v", err)
	}

	images, err := store.GetImages("sub-1")
	if err != nil {
		t.Fatalf("GetImages returned error: %v", err)
	}
	if len(images) != 2 {
		t.Fatalf("expected 2 image rows, got %d", len(images))
	}
}

func TestStatusNeverRevertsFromComplete(t *testing.T) {
	store := newMemoryStore()
	svc := NewCompletionService(store)
	newPendingSubmission(t, store, "sub-1")

	for i := 0; i < config.RequiredImageCount()+3; i++ {
		if _, err := svc.RecordImage(newImageRow("sub-1", "back", models.ValidationResultYes)); err != nil {
			t.Fatalf("RecordImage returned error: %v", err)
		}
	}

	status, err := svc.RecomputeStatus("sub-1")
	if err != nil {
		t.Fatalf("RecomputeStatus returned error: %v", err)
	}
	if status != models.SubmissionStatusComplete {
		t.Fatalf("expected complete, got %q", status)
	}
}

func TestRecordImagePropagatesInsertError(t *testing.T) {
	store := newMemoryStore()
	store.insertImageErr = errors.New("disk full")
	svc := NewCompletionService(store)
	newPendingSubmission(t, store, "sub-1")

	if _, err := svc.RecordImage(newImageRow("sub-1", "front", models.ValidationResultYes)); err == nil {
		t.Fatal("expected insert error to propagate")
	}
	count, _ := store.CountImages("sub-1")
	if count != 0 {
		t.Fatalf("expected no image rows after failed insert, got %d", count)
	}
}

func TestConcurrentUploadsKeepConsistentCount(t *testing.T) {
	store := newMemoryStore()
	svc := NewCompletionService(store)
	newPendingSubmission(t, store, "sub-1")

	required := config.RequiredImageCount()
	var wg sync.WaitGroup
	for i := 0; i < required; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := svc.RecordImage(newImageRow("sub-1", "left", models.ValidationResultYes)); err != nil {
				t.Errorf("RecordImage returned error: %v", err)
			}
		}()
	}
	wg.Wait()

	count, err := store.CountImages("sub-1")
	if err != nil {
		t.Fatalf("CountImages returned error: %v", err)
	}
	if count != int64(required) {
		t.Fatalf("expected %d image rows, got %d", required, count)
	}

	stored, err := store.GetSubmission("sub-1")
	if err != nil {
		t.Fatalf("GetSubmission returned error: %v", err)
	}
	if !stored.IsComplete() {
		t.Fatalf("expected complete after %d concurrent uploads, got %q", required, stored.Status)
	}
}
