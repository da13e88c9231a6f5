package controllers

import (
	"errors"
	"net/http"
	"time"

	"car-inspection-api/config"
	"car-inspection-api/middleware"
	"car-inspection-api/models"
	"car-inspection-api/services"
	"car-inspection-api/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CreateSubmissionRequest struct {
	VehicleMake  string `json:"vehicle_make" binding:"required"`
	VehicleModel string `json:"vehicle_model" binding:"required"`
	VehicleYear  int    `json:"vehicle_year" binding:"required"`
}

// CreateSubmission opens a new vehicle submission for the calling token.
// The bearer token is stored verbatim as the owning-user reference; it is an
// opaque credential supplied by a trusted caller, not a verified identity.
func CreateSubmission(c *gin.Context) {
	var req CreateSubmissionRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !utils.ValidateVehicleYear(req.VehicleYear) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid vehicle year"})
		return
	}

	userToken := middleware.BearerToken(c)

	now := time.Now()
	submission := models.Submission{
		SubmissionID: uuid.New().String(),
		UserID:       userToken,
		VehicleMake:  utils.SanitizeInput(req.VehicleMake),
		VehicleModel: utils.SanitizeInput(req.VehicleModel),
		VehicleYear:  req.VehicleYear,
		Status:       models.SubmissionStatusPending,
		CreateAt:     &now,
		UpdateAt:     &now,
	}

	if err := submissionStore().InsertSubmission(&submission); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create submission"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":              submission.SubmissionID,
		"status":          submission.Status,
		"required_images": config.ImageRequirements(),
	})
}

// GetSubmission returns one submission with its uploaded image rows.
func GetSubmission(c *gin.Context) {
	submissionID := c.Param("id")

	store := submissionStore()
	submission, err := store.GetSubmission(submissionID)
	if err != nil {
		if errors.Is(err, services.ErrSubmissionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Submission not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load submission"})
		return
	}

	images, err := store.GetImages(submissionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load submission images"})
		return
	}
	submission.Images = images

	c.JSON(http.StatusOK, gin.H{"submission": submission})
}

// GetImageRequirements lists the fixed required photo categories.
func GetImageRequirements(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"required_images": config.ImageRequirements(),
	})
}
