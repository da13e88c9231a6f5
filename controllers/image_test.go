package controllers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func newUploadRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/api/v1/submissions/:id/images", UploadImage)
	return router
}

func multipartUpload(t *testing.T, imageType string, withFile bool) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	if err := writer.WriteField("image_type", imageType); err != nil {
		t.Fatalf("failed to write field: %v", err)
	}
	if withFile {
		part, err := writer.CreateFormFile("file", "photo.jpg")
		if err != nil {
			t.Fatalf("failed to create form file: %v", err)
		}
		if _, err := part.Write([]byte("jpeg bytes")); err != nil {
			t.Fatalf("failed to write file part: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("failed to close writer: %v", err)
	}
	return body, writer.FormDataContentType()
}

// An unknown category is rejected before any side effect: no stored file, no
// database row, no classifier call.
func TestUploadImageRejectsUnknownCategory(t *testing.T) {
	uploadPath := t.TempDir()
	t.Setenv("UPLOAD_PATH", uploadPath)

	router := newUploadRouter()
	body, contentType := multipartUpload(t, "windshield", true)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/submissions/sub-1/images", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
	if !strings.Contains(w.Body.String(), "Invalid image type") {
		t.Errorf("body = %s", w.Body.String())
	}

	entries, err := os.ReadDir(uploadPath)
	if err != nil {
		t.Fatalf("failed to read upload dir: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected no stored files, found %d", len(entries))
	}
}

func TestUploadImageRequiresFile(t *testing.T) {
	t.Setenv("UPLOAD_PATH", t.TempDir())

	router := newUploadRouter()
	body, contentType := multipartUpload(t, "front", false)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/submissions/sub-1/images", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
	if !strings.Contains(w.Body.String(), "No file uploaded") {
		t.Errorf("body = %s", w.Body.String())
	}
}
