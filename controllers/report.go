package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"car-inspection-api/services"

	"github.com/gin-gonic/gin"
)

// GetSubmissionReport regenerates the PDF inspection report and returns it
// as a download. No caching: every call reflects the current image rows.
func GetSubmissionReport(c *gin.Context) {
	submissionID := c.Param("id")

	reportSvc := services.NewReportService(submissionStore(), reportDir())
	pdfPath, err := reportSvc.Generate(submissionID)
	if err != nil {
		if errors.Is(err, services.ErrSubmissionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Submission not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate report"})
		return
	}

	c.FileAttachment(pdfPath, fmt.Sprintf("inspection_report_%s.pdf", submissionID))
}
