package services

import (
	"context"
	"fmt"
	"os"
	"strings"

	"car-inspection-api/config"
)

// VerdictSource records how a verdict was produced. It lets telemetry tell
// "the model said invalid" apart from "the model was unreachable" without
// changing the recorded outcome.
type VerdictSource string

const (
	VerdictFromModel VerdictSource = "model"
	VerdictFromError VerdictSource = "error"
)

// Verdict is the outcome of classifying one image against one category's
// requirement.
type Verdict struct {
	Valid  bool          `json:"valid"`
	Reason string        `json:"reason"`
	Source VerdictSource `json:"-"`
}

// VisionChatClient is the vision-inference collaborator: send an image and a
// prompt, receive free text.
type VisionChatClient interface {
	ChatVision(ctx context.Context, model, prompt string, image []byte) (string, error)
}

// ValidationService asks the vision model whether an uploaded photo satisfies
// its category requirement and turns the free-text answer into a verdict.
type ValidationService struct {
	client VisionChatClient
	model  string
}

func NewValidationService(client VisionChatClient, model string) *ValidationService {
	return &ValidationService{client: client, model: model}
}

// Classify runs the stored image at imagePath through the vision model using
// the prompt fixed for imageType. Inference failures are never propagated: an
// image that cannot be inspected is recorded as invalid (fail closed).
func (s *ValidationService) Classify(ctx context.Context, imagePath, imageType string) Verdict {
	req, ok := config.RequirementByType(imageType)
	if !ok {
		return errorVerdict(fmt.Errorf("no validation prompt for image type %q", imageType))
	}

	image, err := os.ReadFile(imagePath)
	if err != nil {
		return errorVerdict(err)
	}

	raw, err := s.client.ChatVision(ctx, s.model, req.Prompt, image)
	if err != nil {
		return errorVerdict(err)
	}

	return classifyResponse(raw)
}

// classifyResponse applies the substring rules to the raw model text. The
// checks are literal substring tests, not semantic ones: a response that
// contains "invalid" still passes the validity check because "invalid"
// contains "valid".
func classifyResponse(raw string) Verdict {
	content := strings.ToLower(strings.TrimSpace(raw))

	verdict := Verdict{
		Valid:  strings.Contains(content, "yes") || strings.Contains(content, "valid"),
		Reason: "Valid image",
		Source: VerdictFromModel,
	}
	if strings.Contains(content, "no") || strings.Contains(content, "invalid") {
		verdict.Reason = content
	}
	return verdict
}

func errorVerdict(err error) Verdict {
	return Verdict{
		Valid:  false,
		Reason: fmt.Sprintf("Validation error: %v", err),
		Source: VerdictFromError,
	}
}
