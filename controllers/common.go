package controllers

import (
	"os"
	"sync"

	"car-inspection-api/config"
	"car-inspection-api/services"
)

var (
	completionOnce sync.Once
	completionSvc  *services.CompletionService

	validationOnce sync.Once
	validationSvc  *services.ValidationService
)

func submissionStore() services.SubmissionStore {
	return services.NewGormSubmissionStore(config.DB)
}

// completionService returns the shared completion tracker. It has to be a
// singleton because it owns the per-submission locks.
func completionService() *services.CompletionService {
	completionOnce.Do(func() {
		completionSvc = services.NewCompletionService(services.NewGormSubmissionStore(config.DB))
	})
	return completionSvc
}

func validationService() *services.ValidationService {
	validationOnce.Do(func() {
		model := os.Getenv("OLLAMA_MODEL")
		if model == "" {
			model = "llava:latest"
		}
		client := services.NewOllamaClient(os.Getenv("OLLAMA_BASE_URL"))
		validationSvc = services.NewValidationService(client, model)
	})
	return validationSvc
}

func uploadDir() string {
	path := os.Getenv("UPLOAD_PATH")
	if path == "" {
		path = "./uploads"
	}
	return path
}

func reportDir() string {
	path := os.Getenv("REPORT_PATH")
	if path == "" {
		path = "./reports"
	}
	return path
}
