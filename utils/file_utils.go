package utils

import (
	"path/filepath"
	"strings"
)

// ImageFilename builds the deterministic stored name for an uploaded photo:
// <submissionID>_<imageType><ext>. Uploading the same category twice reuses
// the same name, so the newer bytes replace the older ones on disk.
func ImageFilename(submissionID, imageType, originalFilename string) string {
	ext := strings.ToLower(filepath.Ext(originalFilename))
	return submissionID + "_" + imageType + ext
}
