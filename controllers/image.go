package controllers

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"car-inspection-api/config"
	"car-inspection-api/models"
	"car-inspection-api/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UploadImage stores one photo for a submission, runs it through the vision
// validator and records the verdict. The image row is written even when the
// model rejects the photo; only structural failures (unknown category,
// storage errors) abort the request.
func UploadImage(c *gin.Context) {
	submissionID := c.Param("id")

	// Validate image type before any side effect
	imageType := c.PostForm("image_type")
	if !completionService().IsKnownImageType(imageType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid image type"})
		return
	}

	// Get uploaded file
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}

	uploadPath := uploadDir()
	if err := os.MkdirAll(uploadPath, os.ModePerm); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create upload directory"})
		return
	}

	// Deterministic location keyed by submission and category: a re-upload
	// overwrites the stored bytes but still appends a fresh image row below.
	filename := utils.ImageFilename(submissionID, imageType, file.Filename)
	fullPath := filepath.Join(uploadPath, filename)

	// Save file
	if err := c.SaveUploadedFile(file, fullPath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save file"})
		return
	}

	// The classifier only ever runs on bytes that made it to disk.
	verdict := validationService().Classify(c.Request.Context(), fullPath, imageType)

	result := models.ValidationResultNo
	if verdict.Valid {
		result = models.ValidationResultYes
	}

	now := time.Now()
	image := models.SubmissionImage{
		ImageID:          uuid.New().String(),
		SubmissionID:     submissionID,
		ImageType:        imageType,
		OriginalFilename: file.Filename,
		StoredPath:       fullPath,
		ValidationResult: result,
		ValidationReason: verdict.Reason,
		CreateAt:         &now,
	}

	// Snapshot the prior status so a pending -> complete transition can be
	// detected for the notification below.
	priorSubmission, priorErr := submissionStore().GetSubmission(submissionID)

	status, err := completionService().RecordImage(&image)
	if err != nil {
		// Delete uploaded file if database save fails
		os.Remove(fullPath)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save image info"})
		return
	}

	if priorErr == nil && !priorSubmission.IsComplete() && status == models.SubmissionStatusComplete {
		go notifySubmissionComplete(priorSubmission)
	}

	c.JSON(http.StatusOK, gin.H{
		"id":        image.ImageID,
		"valid":     verdict.Valid,
		"reason":    verdict.Reason,
		"image_url": "/uploads/" + filename,
	})
}

// notifySubmissionComplete mails the owner once all required images are in.
// Best effort: the owner reference is an opaque token and may not match a
// registered account, and SMTP may not be configured.
func notifySubmissionComplete(submission *models.Submission) {
	var user models.User
	if err := config.DB.Where("user_id = ? AND delete_at IS NULL", submission.UserID).
		First(&user).Error; err != nil {
		return
	}

	subject := "Vehicle inspection submission complete"
	html := fmt.Sprintf(
		"<p>All required photos for your %d %s %s have been received.</p>"+
			"<p>Submission ID: %s</p>",
		submission.VehicleYear, submission.VehicleMake, submission.VehicleModel,
		submission.SubmissionID,
	)

	if err := config.SendMail([]string{user.Email}, subject, html); err != nil {
		log.Printf("Warning: completion mail for submission %s not sent: %v", submission.SubmissionID, err)
	}
}
